package menu

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engineinput "boxplay/pkg/engine/input"
	"boxplay/pkg/game/renderer"
)

// scriptScreen replays intents and quits once they run out
type scriptScreen struct {
	intents []engineinput.Action
	clears  int
}

func (s *scriptScreen) Clear() { s.clears++ }

func (s *scriptScreen) GetInput() engineinput.Intent {
	if len(s.intents) == 0 {
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
	a := s.intents[0]
	s.intents = s.intents[1:]
	return engineinput.Intent{Action: a}
}

func (s *scriptScreen) StyleText(text string, _ renderer.TextStyle) string { return text }

func (s *scriptScreen) FormatText(msg string, args ...any) string { return fmt.Sprintf(msg, args...) }

func TestPickPuzzle_SkipsHeadings(t *testing.T) {
	s := &scriptScreen{intents: []engineinput.Action{engineinput.ActionCursorDown, engineinput.ActionConfirm}}
	out := &bytes.Buffer{}
	p, ok := PickPuzzle(s, out)
	require.True(t, ok)
	assert.Equal(t, "numbers", p.Name)
	assert.Equal(t, 2, s.clears)
	assert.Contains(t, out.String(), "> "+"  animals")
}

func TestPickPuzzle_WrapsAround(t *testing.T) {
	s := &scriptScreen{intents: []engineinput.Action{engineinput.ActionCursorUp, engineinput.ActionConfirm}}
	p, ok := PickPuzzle(s, &bytes.Buffer{})
	require.True(t, ok)
	assert.Equal(t, "fruit", p.Name)
}

func TestPickPuzzle_Quit(t *testing.T) {
	s := &scriptScreen{intents: []engineinput.Action{engineinput.ActionCursorDown, engineinput.ActionHint}}
	_, ok := PickPuzzle(s, &bytes.Buffer{})
	assert.False(t, ok)
}

func TestStep(t *testing.T) {
	items := []MenuItem{&KindItem{}, &PuzzleItem{}, &KindItem{}, &PuzzleItem{}}
	assert.Equal(t, 3, step(items, 1, 1))
	assert.Equal(t, 1, step(items, 3, 1))
	assert.Equal(t, 3, step(items, 1, -1))
	assert.Equal(t, 1, step([]MenuItem{&KindItem{}, &PuzzleItem{}}, 1, 1), "a lone item stays selected")
}
