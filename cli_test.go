package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engineinput "boxplay/pkg/engine/input"
)

// runCLI runs the app with keys on stdin and returns what it printed
func runCLI(t *testing.T, keys string, args ...string) (string, error) {
	t.Helper()
	color.Enable = false
	t.Cleanup(func() { color.Enable = true })

	dir := t.TempDir()
	out := &bytes.Buffer{}
	app := newCLIApp(strings.NewReader(keys), out)
	base := []string{
		"boxplay",
		"--config", filepath.Join(dir, "missing.yaml"),
		"--locales", filepath.Join(dir, "locales"),
		"--log", filepath.Join(dir, "boxplay.log"),
	}
	err := app.Run(append(base, args...))
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := runCLI(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "KIND")
	for _, name := range []string{"animals", "numbers", "proverb", "recipe", "colors", "fruit"} {
		assert.Contains(t, out, name)
	}
}

func TestPlay_CrosswordToCompletion(t *testing.T) {
	out, err := runCLI(t, "PINKAVSKY", "crossword", "--seed", "1", "colors")
	require.NoError(t, err)
	assert.Contains(t, out, "crossword: colors")
	assert.Regexp(t, `SUMMARY_SOLVED\s+1/1`, out)
	assert.Contains(t, out, "GOODBYE")
}

func TestPlay_QuitEarly(t *testing.T) {
	out, err := runCLI(t, "q", "order", "proverb")
	require.NoError(t, err)
	assert.Regexp(t, `SUMMARY_SOLVED\s+0/1`, out)
}

func TestPlay_UnknownPuzzle(t *testing.T) {
	_, err := runCLI(t, "", "memory", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestPlay_BadOverride(t *testing.T) {
	_, err := runCLI(t, "", "--set", "shuffles", "order")
	require.Error(t, err)
}

func TestPlay_LogFileWritten(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "play.log")
	color.Enable = false
	defer func() { color.Enable = true }()

	app := newCLIApp(strings.NewReader("q"), &bytes.Buffer{})
	err := app.Run([]string{"boxplay", "--config", filepath.Join(dir, "none.yaml"), "--log", logPath, "--set", "log_level=debug", "wordsearch", "fruit"})
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "game built")
	assert.Contains(t, string(data), "session started")
}

func TestMenuThenPlay(t *testing.T) {
	out, err := runCLI(t, "j\r")
	require.NoError(t, err)
	assert.Contains(t, out, "animals")
	assert.Contains(t, out, "memory: numbers")
	assert.Regexp(t, `SUMMARY_SOLVED\s+0/1`, out)
}

func TestMenuQuit(t *testing.T) {
	out, err := runCLI(t, "")
	require.NoError(t, err)
	assert.NotContains(t, out, "SUMMARY_SOLVED")
}

func TestBindings(t *testing.T) {
	out, err := runCLI(t, "", "bindings")
	require.NoError(t, err)
	assert.Contains(t, out, "BINDINGS_ACTION")
	assert.Regexp(t, `Dump Board\s+! f12`, out)
	assert.Regexp(t, `Quit\s+escape q quit`, out)
	assert.NotContains(t, out, "Type")
}

func TestBindings_FromConfig(t *testing.T) {
	t.Cleanup(func() { engineinput.SetSingleBinding(engineinput.ActionRestart, "f5") })
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "boxplay.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("key_bindings:\n  restart: r\n"), 0o644))

	out := &bytes.Buffer{}
	err := newCLIApp(strings.NewReader(""), out).Run([]string{"boxplay", "--config", cfgPath, "--locales", dir, "bindings"})
	require.NoError(t, err)
	assert.Regexp(t, `Restart\s+r\n`, out.String())
}

func TestBindings_UnknownAction(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "boxplay.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("key_bindings:\n  fly: x\n"), 0o644))

	err := newCLIApp(strings.NewReader(""), &bytes.Buffer{}).Run([]string{"boxplay", "--config", cfgPath, "--locales", dir, "bindings"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fly")
}
