package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxplay/pkg/engine/boxes"
	"boxplay/pkg/engine/content"
	"boxplay/pkg/engine/geom"
	"boxplay/pkg/engine/textgrid"
	"boxplay/pkg/game/activity"
	"boxplay/pkg/game/config"
	"boxplay/pkg/game/state"
)

func still() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Shuffles = 0
	return cfg
}

func TestBoard_Matching(t *testing.T) {
	bag := content.TextBag("X", "Y")
	grid := boxes.BuildGrid(bag, bag, boxes.Spec{Rows: 1, Cols: 2, CellSize: geom.Size{Width: 50, Height: 50}})
	m := activity.NewMatching(grid, activity.Options{Config: still()})
	m.Start(nil)
	g := state.NewGame(nil)
	g.Activity = m

	board := Board(g)
	rows, cols := BoardSize(board)
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, IconHidden, board[0][0].Text)
	assert.Equal(t, StyleHidden, board[0][0].Style)
	assert.True(t, board[0][0].Focus)

	c := grid.CellByLocation(1)
	m.PointerDown(c.Bounds().Center(), c)
	board = Board(g)
	assert.Equal(t, "Y", board[0][1].Text)
	assert.Equal(t, StyleSelected, board[0][1].Style)
	assert.Equal(t, c.Bounds(), board[0][1].Rect)
}

func TestBoard_OrderingRowsFollowParagraphs(t *testing.T) {
	o := activity.NewOrdering([]activity.Target{
		{Text: "a"}, {Text: "b"}, {Text: "c", Paragraph: 1},
	}, activity.Options{Config: still()})
	o.Start(nil)
	g := state.NewGame(nil)
	g.Activity = o
	g.Cursor.Col = 2

	board := Board(g)
	require.Len(t, board, 2)
	assert.Len(t, board[0], 2)
	assert.Equal(t, "c", board[1][0].Text)
	assert.True(t, board[1][0].Focus)

	idx, ok := TargetAt(g, geom.Pt(10, TargetSize.Height+10))
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	_, ok = TargetAt(g, geom.Pt(-5, -5))
	assert.False(t, ok)
}

func TestBoard_Crossword(t *testing.T) {
	c := activity.NewCrossword([]string{"A*", "BC"}, nil, activity.Options{})
	c.Start(nil)
	g := state.NewGame(nil)
	g.Activity = c

	board := Board(g)
	assert.Equal(t, IconLocked, board[0][1].Text)
	assert.Equal(t, StyleLocked, board[0][1].Style)
	assert.Equal(t, IconBlank, board[1][0].Text)
	assert.Equal(t, StyleCursor, board[0][0].Style)

	c.TypeChar('A')
	board = Board(g)
	assert.Equal(t, "A", board[0][0].Text)
	assert.Equal(t, StyleCursor, board[1][0].Style)
}

func TestBoard_WordSearchMarks(t *testing.T) {
	ws := activity.NewWordSearch([]string{"AB", "CD"}, []string{"AB"}, activity.Options{})
	ws.Start(nil)
	g := state.NewGame(nil)
	g.Activity = ws

	words, found := Words(g)
	assert.Equal(t, []string{"AB"}, words)
	assert.Equal(t, []bool{false}, found)

	ws.SelectCells(textgrid.Pos{X: 0, Y: 0}, textgrid.Pos{X: 1, Y: 0})
	_, found = Words(g)
	assert.Equal(t, []bool{true}, found)
	board := Board(g)
	assert.Equal(t, StyleMarked, board[0][1].Style)
	assert.Equal(t, StyleNormal, board[1][1].Style)
}

func TestStatus(t *testing.T) {
	assert.Empty(t, Status(state.NewGame(nil)))

	o := activity.NewOrdering([]activity.Target{{Text: "a"}, {Text: "b"}}, activity.Options{Config: still()})
	o.Start(nil)
	g := state.NewGame(nil)
	g.Activity = o
	g.Puzzle = "demo"
	assert.Equal(t, "order: demo  100%", Status(g))
}
