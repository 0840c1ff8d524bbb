package gameplay

import (
	engineinput "boxplay/pkg/engine/input"
	"boxplay/pkg/game/activity"
	"boxplay/pkg/game/renderer"
	"boxplay/pkg/game/state"
)

// dispatcher is implemented by activities that hit test pointer events
// themselves
type dispatcher interface {
	Dispatch(ev engineinput.PointerEvent)
}

// Confirm picks whatever is under the keyboard cursor. Grid activities get a
// click at the cell center, which leaves a first pick pending like a
// trembling tap would.
func Confirm(g *state.Game) {
	switch a := g.Activity.(type) {
	case *activity.Ordering:
		targets := a.Targets()
		if g.Cursor.Col >= 0 && g.Cursor.Col < len(targets) {
			a.TargetClick(targets[g.Cursor.Col])
		}
	case *activity.Crossword:
		// characters are typed directly
	case dispatcher:
		cell, ok := cursorCell(g)
		if !ok {
			return
		}
		p := cell.Rect.Center()
		a.Dispatch(engineinput.PointerEvent{Kind: engineinput.PointerDown, Point: p})
		a.Dispatch(engineinput.PointerEvent{Kind: engineinput.PointerUp, Point: p})
	}
}

// ProcessPointer routes a pointer event in board coordinates to the activity
// and moves the keyboard cursor to the pressed cell
func ProcessPointer(g *state.Game, ev engineinput.PointerEvent) {
	if g.Activity == nil {
		return
	}
	if ev.Kind == engineinput.PointerDown {
		followPointer(g, ev)
	}
	switch a := g.Activity.(type) {
	case *activity.Ordering:
		if ev.Kind != engineinput.PointerDown {
			return
		}
		if idx, ok := renderer.TargetAt(g, ev.Point); ok {
			a.TargetClick(a.Targets()[idx])
		}
	case dispatcher:
		a.Dispatch(ev)
	}
}

func followPointer(g *state.Game, ev engineinput.PointerEvent) {
	for _, row := range renderer.Board(g) {
		for _, c := range row {
			if c.Rect.Contains(ev.Point) {
				g.Cursor = state.Position{Row: c.Row, Col: c.Col}
				return
			}
		}
	}
}

func cursorCell(g *state.Game) (renderer.Cell, bool) {
	board := renderer.Board(g)
	if g.Cursor.Row < 0 || g.Cursor.Row >= len(board) {
		return renderer.Cell{}, false
	}
	row := board[g.Cursor.Row]
	if g.Cursor.Col < 0 || g.Cursor.Col >= len(row) {
		return renderer.Cell{}, false
	}
	return row[g.Cursor.Col], true
}
