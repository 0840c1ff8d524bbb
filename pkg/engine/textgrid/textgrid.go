// Package textgrid implements a dense character matrix used by crossword and
// scramble style activities. Every cell holds the character currently shown,
// the expected answer and a set of attributes; a single cursor moves over the
// grid with typewriter-style wraparound.
package textgrid

import (
	"math/rand/v2"

	"github.com/zyedidia/generic/mapset"

	"boxplay/pkg/engine/geom"
)

// Defaults taken from the content description format
const (
	DefaultWildcard = '*'
	DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	MinCellSize     = 12
	DefaultCellSize = 20
)

const blank rune = ' '

// Pos is a cell coordinate: X is the column, Y the row
type Pos struct {
	X int
	Y int
}

// Options configures a new Grid
type Options struct {
	Rows            int
	Cols            int
	CellSize        geom.Size
	Origin          geom.Point
	Border          bool
	Wildcard        rune
	Alphabet        string
	WildTransparent bool
}

// Grid is a rows × cols character matrix
type Grid struct {
	rows int
	cols int

	chars   [][]rune
	answers [][]rune
	attrs   [][]Attrs

	cellSize geom.Size
	origin   geom.Point
	border   bool

	wildcard        rune
	alphabet        []rune
	wildTransparent bool

	cursor    Pos
	useCursor bool
}

// New creates a grid filled with blanks
func New(opts Options) *Grid {
	g := &Grid{
		rows:            max(1, opts.Rows),
		cols:            max(1, opts.Cols),
		origin:          opts.Origin,
		border:          opts.Border,
		wildcard:        opts.Wildcard,
		alphabet:        []rune(opts.Alphabet),
		wildTransparent: opts.WildTransparent,
	}
	if g.wildcard == 0 {
		g.wildcard = DefaultWildcard
	}
	if len(g.alphabet) == 0 {
		g.alphabet = []rune(DefaultAlphabet)
	}
	g.cellSize = geom.Size{
		Width:  cellDim(opts.CellSize.Width),
		Height: cellDim(opts.CellSize.Height),
	}
	g.SetChars(nil)
	return g
}

func cellDim(v float64) float64 {
	if v <= 0 {
		return DefaultCellSize
	}
	return max(v, MinCellSize)
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// Wildcard returns the placeholder character
func (g *Grid) Wildcard() rune {
	return g.wildcard
}

// NumCells returns rows*cols
func (g *Grid) NumCells() int {
	return g.rows * g.cols
}

// Border reports whether cells are drawn with a border
func (g *Grid) Border() bool {
	return g.border
}

// SetChars loads the visible characters, one string per row. Missing rows and
// short rows are padded with blanks; extra characters are dropped. The answers
// are reset to the same characters and every attribute is cleared.
func (g *Grid) SetChars(lines []string) {
	g.chars = matrix(lines, g.rows, g.cols)
	g.answers = matrix(lines, g.rows, g.cols)
	g.attrs = make([][]Attrs, g.rows)
	for y := range g.attrs {
		g.attrs[y] = make([]Attrs, g.cols)
	}
}

// SetAnswers loads the expected characters, padded like SetChars
func (g *Grid) SetAnswers(lines []string) {
	g.answers = matrix(lines, g.rows, g.cols)
}

func matrix(lines []string, rows, cols int) [][]rune {
	m := make([][]rune, rows)
	for y := 0; y < rows; y++ {
		var line []rune
		if y < len(lines) {
			line = []rune(lines[y])
		}
		m[y] = make([]rune, cols)
		for x := 0; x < cols; x++ {
			if x < len(line) {
				m[y][x] = line[x]
			} else {
				m[y][x] = blank
			}
		}
	}
	return m
}

// IsValidCell checks if x/y is within grid bounds
func (g *Grid) IsValidCell(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// CharAt returns the visible character, or a blank when out of bounds
func (g *Grid) CharAt(x, y int) rune {
	if !g.IsValidCell(x, y) {
		return blank
	}
	return g.chars[y][x]
}

// AnswerAt returns the expected character, or a blank when out of bounds
func (g *Grid) AnswerAt(x, y int) rune {
	if !g.IsValidCell(x, y) {
		return blank
	}
	return g.answers[y][x]
}

// SetCharAt writes a character. Locked cells are never written; the return
// value reports whether the cell changed.
func (g *Grid) SetCharAt(x, y int, ch rune) bool {
	if !g.IsValidCell(x, y) || g.attrs[y][x].Locked {
		return false
	}
	g.chars[y][x] = ch
	return true
}

// Line returns the visible characters of row y
func (g *Grid) Line(y int) string {
	if y < 0 || y >= g.rows {
		return ""
	}
	return string(g.chars[y])
}

// Randomize replaces every wildcard in the visible characters with a random
// character from the alphabet. Other cells are untouched.
func (g *Grid) Randomize(rng *rand.Rand) {
	if rng == nil {
		return
	}
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.chars[y][x] == g.wildcard {
				g.chars[y][x] = g.alphabet[rng.IntN(len(g.alphabet))]
			}
		}
	}
}

// SetCellAttributes resets every attribute. With lockWild, wildcard cells
// become locked; with clearChars, every other cell is blanked.
func (g *Grid) SetCellAttributes(lockWild, clearChars bool) {
	locked := LockedAttrs(g.wildTransparent)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if lockWild && g.chars[y][x] == g.wildcard {
				g.attrs[y][x] = locked
				continue
			}
			g.attrs[y][x] = Attrs{}
			if clearChars {
				g.chars[y][x] = blank
			}
		}
	}
}

// SetCellLocked locks or unlocks a single cell
func (g *Grid) SetCellLocked(x, y int, locked bool) {
	if !g.IsValidCell(x, y) {
		return
	}
	if locked {
		g.attrs[y][x] = LockedAttrs(g.wildTransparent)
	} else {
		g.attrs[y][x] = Attrs{}
	}
}

// LockedCells returns the set of locked positions
func (g *Grid) LockedCells() mapset.Set[Pos] {
	set := mapset.New[Pos]()
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.attrs[y][x].Locked {
				set.Put(Pos{X: x, Y: y})
			}
		}
	}
	return set
}

// Attributes returns the attribute set of a cell, empty when out of bounds
func (g *Grid) Attributes(x, y int) Attrs {
	if !g.IsValidCell(x, y) {
		return Attrs{}
	}
	return g.attrs[y][x]
}

// CellAttribute reports whether a cell has the attribute. Out of bounds
// cells have none.
func (g *Grid) CellAttribute(x, y int, attr Attr) bool {
	if !g.IsValidCell(x, y) {
		return false
	}
	return g.attrs[y][x].Has(attr)
}

// SetAttribute turns one attribute of a cell on or off
func (g *Grid) SetAttribute(x, y int, attr Attr, on bool) {
	if !g.IsValidCell(x, y) {
		return
	}
	g.attrs[y][x].Set(attr, on)
}

// SetAllCellsAttribute turns one attribute on or off everywhere
func (g *Grid) SetAllCellsAttribute(attr Attr, on bool) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			g.attrs[y][x].Set(attr, on)
		}
	}
}

// CountCharsLike counts the visible cells holding ch
func (g *Grid) CountCharsLike(ch rune) int {
	n := 0
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.chars[y][x] == ch {
				n++
			}
		}
	}
	return n
}

// IsCellOk returns true if the visible character is not the wildcard and
// matches the answer
func (g *Grid) IsCellOk(x, y int, caseSensitive bool) bool {
	if !g.IsValidCell(x, y) {
		return false
	}
	ch := g.chars[y][x]
	if ch == g.wildcard {
		return false
	}
	return sameRune(ch, g.answers[y][x], caseSensitive)
}

// CountCoincidences counts the cells satisfying IsCellOk
func (g *Grid) CountCoincidences(caseSensitive bool) int {
	n := 0
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.IsCellOk(x, y, caseSensitive) {
				n++
			}
		}
	}
	return n
}

// CellRect returns the rectangle of a cell in surface coordinates
func (g *Grid) CellRect(x, y int) geom.Rect {
	return geom.R(
		g.origin.X+float64(x)*g.cellSize.Width,
		g.origin.Y+float64(y)*g.cellSize.Height,
		g.cellSize.Width,
		g.cellSize.Height,
	)
}

// Bounds returns the rectangle covered by the grid
func (g *Grid) Bounds() geom.Rect {
	return geom.R(g.origin.X, g.origin.Y,
		g.cellSize.Width*float64(g.cols), g.cellSize.Height*float64(g.rows))
}

// LogicalCoords converts a surface point into a cell position
func (g *Grid) LogicalCoords(p geom.Point) (Pos, bool) {
	if !g.Bounds().Contains(p) {
		return Pos{}, false
	}
	pos := Pos{
		X: int((p.X - g.origin.X) / g.cellSize.Width),
		Y: int((p.Y - g.origin.Y) / g.cellSize.Height),
	}
	return pos, g.IsValidCell(pos.X, pos.Y)
}
