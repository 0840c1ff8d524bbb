package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxplay/pkg/engine/geom"
	"boxplay/pkg/engine/input"
	"boxplay/pkg/engine/textgrid"
)

func newCrossword(t *testing.T, sink ProgressSink) *Crossword {
	t.Helper()
	c := NewCrossword([]string{"AB*", "*CD"}, nil, Options{Sink: sink})
	c.Start(nil)
	require.Equal(t, 4, c.FreeCells())
	return c
}

func cursor(c *Crossword) textgrid.Pos {
	p, _ := c.Grid().Cursor()
	return p
}

func TestCrossword_StartClearsAndLocks(t *testing.T) {
	c := newCrossword(t, nil)
	assert.Equal(t, "  *", c.Grid().Line(0))
	assert.Equal(t, "*  ", c.Grid().Line(1))
	assert.Equal(t, textgrid.Pos{X: 0, Y: 0}, cursor(c))
	assert.Zero(t, c.Progress())
}

func TestCrossword_TypingFillsAndCompletes(t *testing.T) {
	sink := &fakeSink{}
	c := newCrossword(t, sink)

	c.TypeChar('A')
	assert.Equal(t, textgrid.Pos{X: 1, Y: 0}, cursor(c))
	c.TypeChar('B')
	assert.Equal(t, textgrid.Pos{X: 1, Y: 1}, cursor(c), "locked cells skipped across the row end")
	c.TypeChar('X')
	require.Len(t, sink.actions, 3)
	assert.False(t, sink.last().OK)
	assert.Equal(t, "1,1", sink.last().Dest)
	assert.Equal(t, 0.5, c.Progress())

	hint, ok := c.Hint()
	require.True(t, ok)
	assert.Equal(t, textgrid.Pos{X: 1, Y: 1}, hint)

	c.MoveCursor(textgrid.Left)
	c.TypeChar('c')
	c.TypeChar('D')
	assert.True(t, c.Finished())
	assert.Equal(t, []bool{true}, sink.ends)
	assert.Equal(t, 4, sink.last().Score)

	c.TypeChar('Z')
	assert.Len(t, sink.actions, 5, "no input after completion")
}

func TestCrossword_EraseAndLockedCells(t *testing.T) {
	c := newCrossword(t, nil)
	c.TypeChar('A')
	c.MoveCursor(textgrid.Left)
	c.Erase()
	assert.Equal(t, ' ', c.Grid().CharAt(0, 0))
	assert.False(t, c.Grid().SetCharAt(2, 0, 'Q'))
}

func TestCrossword_PointerMovesCursorAndToggles(t *testing.T) {
	c := newCrossword(t, nil)
	side := c.Grid().CellRect(0, 0).Dim.Width

	c.Dispatch(input.PointerEvent{Kind: input.PointerDown, Point: geom.Pt(side*1.5, side*0.5)})
	assert.Equal(t, textgrid.Pos{X: 1, Y: 0}, cursor(c))
	assert.True(t, c.Horizontal())

	c.Dispatch(input.PointerEvent{Kind: input.PointerDown, Point: geom.Pt(side*1.5, side*0.5)})
	assert.False(t, c.Horizontal())

	c.Dispatch(input.PointerEvent{Kind: input.PointerDown, Point: geom.Pt(side*2.5, side*0.5)})
	assert.Equal(t, textgrid.Pos{X: 1, Y: 0}, cursor(c), "locked cell not selectable")

	// vertical entry moves down
	c.TypeChar('B')
	assert.Equal(t, textgrid.Pos{X: 1, Y: 1}, cursor(c))
}
