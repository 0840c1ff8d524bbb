package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gameerrors "boxplay/pkg/game/errors"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 31, cfg.Shuffles)
	assert.Equal(t, 3.0, cfg.TrembleThreshold)
	assert.Equal(t, 100, cfg.ShuffleRetries)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxplay.yaml")
	data := "shuffles: 5\ndrag_cells: true\nwildcard: \"_\"\ncell_size:\n  width: 40\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Shuffles)
	assert.True(t, cfg.DragCells)
	assert.Equal(t, '_', cfg.WildcardRune())
	assert.Equal(t, 40.0, cfg.CellSize.Width)
	assert.Equal(t, float64(DefaultCellHeight), cfg.CellSize.Height)
	assert.Equal(t, DefaultAlphabet, cfg.Alphabet)
}

func TestLoad_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shuffles: [1, 2"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, gameerrors.Is(err, gameerrors.ErrInvalidConfig))
}

func TestNormalize(t *testing.T) {
	cfg := &Config{
		Shuffles:         -4,
		TrembleThreshold: -1,
		ShuffleRetries:   -1,
		Wildcard:         "ab",
		LogLevel:         "loud",
	}
	cfg.Normalize()
	assert.Equal(t, 0, cfg.Shuffles)
	assert.Equal(t, DefaultTrembleThreshold, cfg.TrembleThreshold)
	assert.Equal(t, 0, cfg.ShuffleRetries)
	assert.Equal(t, DefaultWildcard, cfg.Wildcard)
	assert.Equal(t, DefaultLocale, cfg.Locale)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyOverrides([]string{"shuffles=0", "case_sensitive = true", "log_level=debug"}))
	assert.Equal(t, 0, cfg.Shuffles)
	assert.True(t, cfg.CaseSensitive)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())

	err := cfg.ApplyOverrides([]string{"shuffles"})
	assert.True(t, gameerrors.Is(err, gameerrors.ErrInvalidConfig))
}

func TestLoad_KeyBindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.yaml")
	require.NoError(t, os.WriteFile(path, []byte("key_bindings:\n  hint: \"h\"\n  dump_board: \"d\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"hint": "h", "dump_board": "d"}, cfg.KeyBindings)
}
