// Package renderer holds the rendering backends and the board layout they
// share. Layout turns the active controller into rows of styled cells; the
// terminal backend prints them and the graphical backend fills their
// rectangles.
package renderer

import (
	"fmt"
	"strings"

	"boxplay/pkg/engine/boxes"
	"boxplay/pkg/engine/geom"
	"boxplay/pkg/engine/textgrid"
	"boxplay/pkg/game/activity"
	"boxplay/pkg/game/state"
)

// Glyphs used by text boards
const (
	IconHidden = "?"
	IconLocked = "█"
	IconBlank  = "·"
)

// TargetSize is the surface size of one ordering target
var TargetSize = geom.Size{Width: 96, Height: 40}

// Cell is one drawable unit of the board
type Cell struct {
	Row   int
	Col   int
	Text  string
	Style TextStyle
	Rect  geom.Rect
	// Focus marks the keyboard cursor
	Focus bool
}

// Board lays out the active activity of g. Rows may differ in length for
// ordering boards.
func Board(g *state.Game) [][]Cell {
	if g == nil {
		return nil
	}
	switch a := g.Activity.(type) {
	case *activity.Matching:
		return matchingBoard(g, a)
	case *activity.Ordering:
		return orderingBoard(g, a)
	case *activity.Crossword:
		cur, _ := a.Grid().Cursor()
		return textBoard(a.Grid(), func(x, y int) (string, TextStyle, bool) {
			if a.Grid().CellAttribute(x, y, textgrid.AttrLocked) {
				return IconLocked, StyleLocked, false
			}
			ch := a.Grid().CharAt(x, y)
			text := string(ch)
			if ch == ' ' {
				text = IconBlank
			}
			focus := cur.X == x && cur.Y == y
			if focus {
				return text, StyleCursor, true
			}
			return text, StyleNormal, false
		})
	case *activity.WordSearch:
		anchor, anchored := a.Anchor()
		return textBoard(a.Grid(), func(x, y int) (string, TextStyle, bool) {
			text := string(a.Grid().CharAt(x, y))
			focus := g.Cursor.Row == y && g.Cursor.Col == x
			switch {
			case anchored && anchor.X == x && anchor.Y == y:
				return text, StyleSelected, focus
			case a.Grid().CellAttribute(x, y, textgrid.AttrMarked):
				return text, StyleMarked, focus
			}
			return text, StyleNormal, focus
		})
	}
	return nil
}

// TargetAt returns the display index of the ordering target under p
func TargetAt(g *state.Game, p geom.Point) (int, bool) {
	o, ok := g.Activity.(*activity.Ordering)
	if !ok {
		return 0, false
	}
	for _, row := range orderingBoard(g, o) {
		for _, c := range row {
			if c.Rect.Contains(p) {
				return c.Col, true
			}
		}
	}
	return 0, false
}

func matchingBoard(g *state.Game, m *activity.Matching) [][]Cell {
	grid := m.Grid()
	var pending *boxes.Cell
	if m.Connector().Active() {
		pending = m.Connector().Cell()
	}
	rows := make([][]Cell, grid.Rows())
	grid.ForEachCell(func(row, col int, c *boxes.Cell) {
		cell := Cell{Row: row, Col: col, Text: IconHidden, Style: StyleHidden, Rect: c.Bounds()}
		switch {
		case c.IsSolved():
			cell.Text, cell.Style = c.CurrentContent().String(), StyleSolved
		case c == pending:
			cell.Text, cell.Style = c.CurrentContent().String(), StyleSelected
		case c.IsActive():
			cell.Text, cell.Style = c.CurrentContent().String(), StyleRevealed
		}
		cell.Focus = g.Cursor.Row == row && g.Cursor.Col == col
		rows[row] = append(rows[row], cell)
	})
	return rows
}

// orderingBoard puts each paragraph on its own row. Col is the display index
// of the target.
func orderingBoard(g *state.Game, o *activity.Ordering) [][]Cell {
	var rows [][]Cell
	current := o.Current()
	para := -1
	x := 0.0
	for i, t := range o.Targets() {
		if t.Paragraph != para || len(rows) == 0 {
			rows = append(rows, nil)
			para = t.Paragraph
			x = 0
		}
		r := len(rows) - 1
		cell := Cell{
			Row:   r,
			Col:   i,
			Text:  t.Text,
			Style: StyleNormal,
			Rect:  geom.R(x, float64(r)*TargetSize.Height, TargetSize.Width, TargetSize.Height),
			Focus: g.Cursor.Col == i,
		}
		if t == current {
			cell.Style = StyleSelected
		}
		rows[r] = append(rows[r], cell)
		x += TargetSize.Width
	}
	return rows
}

func textBoard(grid *textgrid.Grid, draw func(x, y int) (string, TextStyle, bool)) [][]Cell {
	rows := make([][]Cell, grid.Rows())
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			text, style, focus := draw(x, y)
			rows[y] = append(rows[y], Cell{
				Row:   y,
				Col:   x,
				Text:  text,
				Style: style,
				Rect:  grid.CellRect(x, y),
				Focus: focus,
			})
		}
	}
	return rows
}

// BoardSize returns the number of rows and the longest row of a board
func BoardSize(board [][]Cell) (rows, cols int) {
	for _, r := range board {
		cols = max(cols, len(r))
	}
	return len(board), cols
}

// Status returns the one line summary of the active activity
func Status(g *state.Game) string {
	if g == nil || g.Activity == nil {
		return ""
	}
	a := g.Activity
	parts := []string{
		fmt.Sprintf("%s: %s", a.Kind(), g.Puzzle),
		fmt.Sprintf("%3.0f%%", a.Progress()*100),
	}
	if g.Reporter != nil {
		actions, score, elapsed := g.Reporter.Counters(a.Name())
		parts = append(parts,
			fmt.Sprintf("actions %s", actions),
			fmt.Sprintf("score %s", score),
			fmt.Sprintf("time %s", elapsed),
		)
	}
	return strings.Join(parts, "  ")
}

// Words lists the words of a word search with the found ones flagged
func Words(g *state.Game) ([]string, []bool) {
	ws, ok := g.Activity.(*activity.WordSearch)
	if !ok {
		return nil, nil
	}
	words := ws.Words()
	found := make([]bool, len(words))
	for i, w := range words {
		found[i] = ws.IsFound(w)
	}
	return words, found
}
