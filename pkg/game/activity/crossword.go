package activity

import (
	"fmt"
	"math/rand/v2"
	"unicode/utf8"

	"boxplay/pkg/engine/geom"
	"boxplay/pkg/engine/input"
	"boxplay/pkg/engine/textgrid"
	"boxplay/pkg/game/config"
)

// Crossword is a fill-in character grid. Wildcard cells are locked black
// cells; every other cell starts blank and is filled through the cursor.
type Crossword struct {
	base
	grid       *textgrid.Grid
	lines      []string
	answers    []string
	horizontal bool
}

// NewCrossword builds a crossword. lines hold the solution with the wildcard
// marking black cells; answers default to lines.
func NewCrossword(lines, answers []string, opts Options) *Crossword {
	c := &Crossword{
		base:       newBase(KindCrossword, opts),
		lines:      lines,
		answers:    answers,
		horizontal: true,
	}
	if len(c.answers) == 0 {
		c.answers = lines
	}
	c.grid = newTextGrid(lines, c.cfg)
	return c
}

// Grid returns the character grid being played
func (c *Crossword) Grid() *textgrid.Grid {
	return c.grid
}

// Horizontal reports the entry direction
func (c *Crossword) Horizontal() bool {
	return c.horizontal
}

// Start clears the grid, locks black cells and places the cursor on the
// first free cell
func (c *Crossword) Start(_ *rand.Rand) {
	c.grid.SetChars(c.lines)
	c.grid.SetAnswers(c.answers)
	c.grid.SetCellAttributes(true, true)
	c.grid.SetCursorAt(0, 0, true)
	c.horizontal = true
	c.log.Info().Int("rows", c.grid.Rows()).Int("cols", c.grid.Cols()).Msg("crossword started")
	c.begin()
}

// FreeCells counts the cells the player has to fill
func (c *Crossword) FreeCells() int {
	return c.grid.NumCells() - c.grid.LockedCells().Size()
}

// Progress returns the fraction of free cells holding the right character
func (c *Crossword) Progress() float64 {
	free := c.FreeCells()
	if free == 0 {
		return 0
	}
	return float64(c.grid.CountCoincidences(c.cfg.CaseSensitive)) / float64(free)
}

// CurrentItem returns the horizontal and vertical word numbers under the cursor
func (c *Crossword) CurrentItem() (textgrid.Pos, bool) {
	cur, on := c.grid.Cursor()
	if !on {
		return textgrid.Pos{}, false
	}
	return c.grid.ItemFor(cur.X, cur.Y)
}

// MoveCursor moves the cursor one free cell in direction d
func (c *Crossword) MoveCursor(d textgrid.Direction) {
	if !c.playing || !d.IsValid() {
		return
	}
	c.grid.MoveCursorDir(d, true)
}

// ToggleDirection switches between horizontal and vertical entry
func (c *Crossword) ToggleDirection() {
	c.horizontal = !c.horizontal
}

// TypeChar writes ch under the cursor, advances it and judges the cell
func (c *Crossword) TypeChar(ch rune) {
	if !c.playing || ch == utf8.RuneError {
		return
	}
	at, on := c.grid.Cursor()
	if !on || !c.grid.EnterChar(ch, c.horizontal) {
		return
	}
	ok := c.grid.IsCellOk(at.X, at.Y, c.cfg.CaseSensitive)
	score := c.grid.CountCoincidences(c.cfg.CaseSensitive)
	c.report(Action{
		Type:     ActionWrite,
		Source:   string(ch),
		Dest:     fmt.Sprintf("%d,%d", at.X, at.Y),
		OK:       ok,
		Progress: c.Progress(),
		Score:    score,
	})
	if score == c.FreeCells() {
		c.finish(true)
		return
	}
	c.playEvent(EventClick)
}

// Erase blanks the cell under the cursor
func (c *Crossword) Erase() {
	if !c.playing {
		return
	}
	if at, on := c.grid.Cursor(); on {
		c.grid.SetCharAt(at.X, at.Y, ' ')
	}
}

// Hint returns the first free cell holding a wrong character
func (c *Crossword) Hint() (textgrid.Pos, bool) {
	for y := 0; y < c.grid.Rows(); y++ {
		for x := 0; x < c.grid.Cols(); x++ {
			if !c.grid.CellAttribute(x, y, textgrid.AttrLocked) && !c.grid.IsCellOk(x, y, c.cfg.CaseSensitive) {
				return textgrid.Pos{X: x, Y: y}, true
			}
		}
	}
	return textgrid.Pos{}, false
}

// PointerDown moves the cursor to the clicked cell. Clicking the cursor cell
// again toggles the entry direction.
func (c *Crossword) PointerDown(p geom.Point) {
	if !c.playing {
		return
	}
	pos, ok := c.grid.LogicalCoords(p)
	if !ok || c.grid.CellAttribute(pos.X, pos.Y, textgrid.AttrLocked) {
		return
	}
	if cur, on := c.grid.Cursor(); on && cur == pos {
		c.ToggleDirection()
		return
	}
	c.grid.SetCursorAt(pos.X, pos.Y, true)
}

// Dispatch routes pointer events; only presses matter here
func (c *Crossword) Dispatch(ev input.PointerEvent) {
	if ev.Kind == input.PointerDown {
		c.PointerDown(ev.Point)
	}
}

func newTextGrid(lines []string, cfg *config.Config) *textgrid.Grid {
	cols := 0
	for _, l := range lines {
		cols = max(cols, utf8.RuneCountInString(l))
	}
	side := cfg.CellSize.Height / 2
	return textgrid.New(textgrid.Options{
		Rows:            len(lines),
		Cols:            cols,
		CellSize:        geom.Size{Width: side, Height: side},
		Border:          true,
		Wildcard:        cfg.WildcardRune(),
		Alphabet:        cfg.Alphabet,
		WildTransparent: cfg.WildTransparent,
	})
}
