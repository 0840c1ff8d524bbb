package gameplay

import (
	"boxplay/pkg/engine/textgrid"
	"boxplay/pkg/game/activity"
	"boxplay/pkg/game/renderer"
	"boxplay/pkg/game/state"
)

// MoveCursor moves the keyboard cursor one step in d, clamped to the board.
// The crossword keeps its own cursor, which skips locked cells and wraps.
func MoveCursor(g *state.Game, d textgrid.Direction) {
	if g.Activity == nil || !d.IsValid() {
		return
	}
	if c, ok := g.Activity.(*activity.Crossword); ok {
		c.MoveCursor(d)
		if cur, on := c.Grid().Cursor(); on {
			g.Cursor = state.Position{Row: cur.Y, Col: cur.X}
		}
		return
	}

	board := renderer.Board(g)
	if len(board) == 0 {
		return
	}
	if _, ok := g.Activity.(*activity.Ordering); ok {
		moveOrderingCursor(g, board, d)
		return
	}

	dx, dy := d.Delta()
	row := clamp(g.Cursor.Row+dy, 0, len(board)-1)
	col := clamp(g.Cursor.Col+dx, 0, len(board[row])-1)
	g.Cursor = state.Position{Row: row, Col: col}
}

// moveOrderingCursor walks targets in display order. Up and down jump to the
// same slot of the neighbouring paragraph.
func moveOrderingCursor(g *state.Game, board [][]renderer.Cell, d textgrid.Direction) {
	total := 0
	row, slot := 0, 0
	for r, cells := range board {
		for i, c := range cells {
			if c.Col == g.Cursor.Col {
				row, slot = r, i
			}
		}
		total += len(cells)
	}

	switch d {
	case textgrid.Left:
		g.Cursor.Col = clamp(g.Cursor.Col-1, 0, total-1)
	case textgrid.Right:
		g.Cursor.Col = clamp(g.Cursor.Col+1, 0, total-1)
	case textgrid.Up, textgrid.Down:
		_, dy := d.Delta()
		next := clamp(row+dy, 0, len(board)-1)
		cells := board[next]
		g.Cursor.Col = cells[clamp(slot, 0, len(cells)-1)].Col
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
