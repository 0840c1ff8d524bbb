package textgrid

import "strings"

// Cursor returns the cursor position and whether the cursor is in use
func (g *Grid) Cursor() (Pos, bool) {
	return g.cursor, g.useCursor
}

// SetUseCursor enables or disables the cursor
func (g *Grid) SetUseCursor(on bool) {
	g.useCursor = on
}

// SetCursorAt places the cursor on a valid cell. With skipLocked, landing on
// a locked cell advances the cursor to the next free cell.
func (g *Grid) SetCursorAt(x, y int, skipLocked bool) {
	if !g.IsValidCell(x, y) {
		return
	}
	g.cursor = Pos{X: x, Y: y}
	g.useCursor = true
	if skipLocked && g.attrs[y][x].Locked {
		g.MoveCursor(1, 0, skipLocked)
	}
}

// MoveCursor moves the cursor one step by (dx, dy) with wraparound. With
// skipLocked, locked cells are jumped over.
func (g *Grid) MoveCursor(dx, dy int, skipLocked bool) {
	if !g.useCursor {
		return
	}
	attr := AttrNone
	if skipLocked {
		attr = AttrLocked
	}
	next := g.FindNextCellWithAttr(g.cursor, attr, dx, dy, false)
	if next != g.cursor {
		g.SetCursorAt(next.X, next.Y, skipLocked)
	}
}

// MoveCursorDir moves the cursor in a direction
func (g *Grid) MoveCursorDir(d Direction, skipLocked bool) {
	dx, dy := d.Delta()
	g.MoveCursor(dx, dy, skipLocked)
}

// EnterChar writes ch under the cursor and advances it. Horizontal entry
// moves right, vertical entry moves down.
func (g *Grid) EnterChar(ch rune, horizontal bool) bool {
	if !g.useCursor {
		return false
	}
	if !g.SetCharAt(g.cursor.X, g.cursor.Y, ch) {
		return false
	}
	if horizontal {
		g.MoveCursor(1, 0, true)
	} else {
		g.MoveCursor(0, 1, true)
	}
	return true
}

// FindNextCellWithAttr scans from start in steps of (dx, dy) until it finds a
// cell whose attr state equals want. Leaving a row wraps to the next or
// previous row; leaving a column wraps to the next or previous column; the
// whole grid wraps at its ends. The scan stops when it comes back to start,
// so a fruitless scan returns start itself. A start outside the grid is
// returned unchanged.
func (g *Grid) FindNextCellWithAttr(start Pos, attr Attr, dx, dy int, want bool) Pos {
	if (dx == 0 && dy == 0) || !g.IsValidCell(start.X, start.Y) {
		return start
	}
	p := Pos{X: start.X + dx, Y: start.Y + dy}
	for {
		if p.X < 0 {
			p.X = g.cols - 1
			if p.Y > 0 {
				p.Y--
			} else {
				p.Y = g.rows - 1
			}
		} else if p.X >= g.cols {
			p.X = 0
			if p.Y < g.rows-1 {
				p.Y++
			} else {
				p.Y = 0
			}
		}
		if p.Y < 0 {
			p.Y = g.rows - 1
			if p.X > 0 {
				p.X--
			} else {
				p.X = g.cols - 1
			}
		} else if p.Y >= g.rows {
			p.Y = 0
			if p.X < g.cols-1 {
				p.X++
			} else {
				p.X = 0
			}
		}
		if p == start || g.CellAttribute(p.X, p.Y, attr) == want {
			return p
		}
		p.X += dx
		p.Y += dy
	}
}

// FindFreeCell walks from (dx, dy) steps away from start without wrapping and
// returns the first unlocked cell.
func (g *Grid) FindFreeCell(from Pos, dx, dy int) (Pos, bool) {
	if dx == 0 && dy == 0 {
		return Pos{}, false
	}
	p := from
	for {
		p.X += dx
		p.Y += dy
		if !g.IsValidCell(p.X, p.Y) {
			return Pos{}, false
		}
		if !g.attrs[p.Y][p.X].Locked {
			return p, true
		}
	}
}

// IsIntoBlacks reports whether both neighbours along the axis are locked or
// outside the grid
func (g *Grid) IsIntoBlacks(p Pos, horizontal bool) bool {
	if horizontal {
		return (p.X <= 0 || g.CellAttribute(p.X-1, p.Y, AttrLocked)) &&
			(p.X >= g.cols-1 || g.CellAttribute(p.X+1, p.Y, AttrLocked))
	}
	return (p.Y <= 0 || g.CellAttribute(p.X, p.Y-1, AttrLocked)) &&
		(p.Y >= g.rows-1 || g.CellAttribute(p.X, p.Y+1, AttrLocked))
}

// IsIntoWhites reports whether both neighbours along the axis exist and are
// unlocked
func (g *Grid) IsIntoWhites(p Pos, horizontal bool) bool {
	if horizontal {
		return p.X > 0 && !g.CellAttribute(p.X-1, p.Y, AttrLocked) &&
			p.X < g.cols-1 && !g.CellAttribute(p.X+1, p.Y, AttrLocked)
	}
	return p.Y > 0 && !g.CellAttribute(p.X, p.Y-1, AttrLocked) &&
		p.Y < g.rows-1 && !g.CellAttribute(p.X, p.Y+1, AttrLocked)
}

// ItemFor returns the word numbers of a cell: X counts the horizontal words
// before it in its row, Y the vertical words above it in its column. Words
// are runs of unlocked cells separated by locked ones.
func (g *Grid) ItemFor(x, y int) (Pos, bool) {
	if !g.IsValidCell(x, y) {
		return Pos{}, false
	}
	var item Pos
	inBlack, started := false, false
	for px := 0; px < x; px++ {
		if g.attrs[y][px].Locked {
			if !inBlack {
				if started {
					item.X++
				}
				inBlack = true
			}
		} else {
			started = true
			inBlack = false
		}
	}
	inBlack, started = false, false
	for py := 0; py < y; py++ {
		if g.attrs[py][x].Locked {
			if !inBlack {
				if started {
					item.Y++
				}
				inBlack = true
			}
		} else {
			started = true
			inBlack = false
		}
	}
	return item, true
}

// line walks a horizontal, vertical or 45° diagonal segment
func (g *Grid) line(x0, y0, x1, y1 int, fn func(x, y int)) bool {
	if !g.IsValidCell(x0, y0) || !g.IsValidCell(x1, y1) {
		return false
	}
	dx, dy := x1-x0, y1-y0
	if dx != 0 && dy != 0 && abs(dx) != abs(dy) {
		return false
	}
	steps := max(abs(dx), abs(dy))
	if steps > 0 {
		dx /= steps
		dy /= steps
	}
	for i := 0; i <= steps; i++ {
		fn(x0+dx*i, y0+dy*i)
	}
	return true
}

// StringBetween reads the characters from (x0, y0) to (x1, y1) inclusive.
// Segments that are not straight or diagonal yield an empty string.
func (g *Grid) StringBetween(x0, y0, x1, y1 int) string {
	var sb strings.Builder
	g.line(x0, y0, x1, y1, func(x, y int) {
		sb.WriteRune(g.chars[y][x])
	})
	return sb.String()
}

// SetAttributeBetween sets an attribute along the same segments StringBetween
// reads
func (g *Grid) SetAttributeBetween(x0, y0, x1, y1 int, attr Attr, on bool) {
	g.line(x0, y0, x1, y1, func(x, y int) {
		g.attrs[y][x].Set(attr, on)
	})
}

func sameRune(a, b rune, caseSensitive bool) bool {
	if a == b {
		return true
	}
	if caseSensitive {
		return false
	}
	return strings.EqualFold(string(a), string(b))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
