package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxplay/pkg/engine/input"
	"boxplay/pkg/game/activity"
	"boxplay/pkg/game/config"
	"boxplay/pkg/game/renderer"
	"boxplay/pkg/game/state"
)

func newTUI(keys string) (*TUIRenderer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	t := New(input.NewReader(strings.NewReader(keys)), out, nil)
	t.Init()
	return t, out
}

func TestGetInput_MapsKeys(t *testing.T) {
	tui, _ := newTUI("\x1b[Ax\r")
	assert.Equal(t, input.ActionCursorUp, tui.GetInput().Action)
	assert.Equal(t, input.ActionNone, tui.GetInput().Action)
	assert.Equal(t, input.ActionConfirm, tui.GetInput().Action)
	assert.Equal(t, input.ActionQuit, tui.GetInput().Action, "end of input quits")
}

func TestGetInput_TextEntry(t *testing.T) {
	tui, _ := newTUI("hq\t")
	tui.textEntry = true
	assert.Equal(t, input.Intent{Action: input.ActionTypeChar, Char: 'h'}, tui.GetInput())
	assert.Equal(t, input.Intent{Action: input.ActionTypeChar, Char: 'q'}, tui.GetInput())
	assert.Equal(t, input.ActionToggleDirection, tui.GetInput().Action)
}

func TestFormatText(t *testing.T) {
	color.Enable = false
	defer func() { color.Enable = true }()
	tui, _ := newTUI("")
	assert.Equal(t, "press enter now", tui.FormatText("press ACTION{enter} now"))
	assert.Equal(t, "score 3", tui.FormatText("score %d", 3))
	assert.Contains(t, tui.FormatText("NOPE{x}"), "function not found")
}

func TestRenderFrame(t *testing.T) {
	color.Enable = false
	defer func() { color.Enable = true }()
	cfg := config.DefaultConfig()
	cfg.Shuffles = 0
	o := activity.NewOrdering([]activity.Target{{Text: "alpha"}, {Text: "beta"}}, activity.Options{Config: cfg})
	o.Start(nil)
	g := state.NewGame(nil)
	g.Activity = o
	g.Puzzle = "demo"
	g.AddMessage("hello there")

	tui, out := newTUI("")
	tui.RenderFrame(g)
	text := out.String()
	assert.Contains(t, text, renderer.Status(g))
	assert.Contains(t, text, "[ alpha ]")
	assert.Contains(t, text, "  beta  ")
	assert.Contains(t, text, "hello there")
	assert.False(t, tui.textEntry)

	cw := activity.NewCrossword([]string{"AB"}, nil, activity.Options{})
	cw.Start(nil)
	g.Activity = cw
	out.Reset()
	tui.RenderFrame(g)
	require.True(t, tui.textEntry)
}
