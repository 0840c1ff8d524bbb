package boxes

import (
	"math/rand/v2"

	"boxplay/pkg/engine/content"
	"boxplay/pkg/engine/geom"
)

// DefaultCellSize is used when a grid spec has no cell size
var DefaultCellSize = geom.Size{Width: 80, Height: 60}

// Arrangement decides where the second bag goes in a two-bag grid
type Arrangement int

// Arrangement constants
const (
	AboveBelow Arrangement = iota // second half below the first (rows doubled)
	SideBySide                    // second half right of the first (cols doubled)
)

// Spec describes the layout of a grid built from content bags
type Spec struct {
	Rows        int
	Cols        int
	CellSize    geom.Size
	Border      bool
	Origin      geom.Point
	Arrangement Arrangement
}

// Grid is a rectangular arrangement of cells. Cell i sits at row i/cols,
// column i%cols and has LocationID i.
type Grid struct {
	cells    []*Cell
	rows     int
	cols     int
	cellSize geom.Size
	origin   geom.Point
	border   bool
}

// NewGrid creates a grid of empty cells. Dimensions below 1 are raised to 1.
func NewGrid(rows, cols int, cellSize geom.Size, border bool) *Grid {
	g := &Grid{}
	g.Build(rows, cols, cellSize, border)
	return g
}

// Build (re)initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int, cellSize geom.Size, border bool) {
	g.rows = max(1, rows)
	g.cols = max(1, cols)
	if cellSize.Width <= 0 || cellSize.Height <= 0 {
		cellSize = DefaultCellSize
	}
	g.cellSize = cellSize
	g.border = border

	g.cells = make([]*Cell, g.rows*g.cols)
	for i := range g.cells {
		g.cells[i] = NewCell(i, g.cellRect(i))
	}
}

// BuildGrid creates a grid from one or two content bags.
//
// With a single bag the grid holds one pass of its content and each cell is
// paired with itself (its index, or the unit id when the bag uses ids). With
// a second bag the grid is doubled according to the arrangement and cells in
// both halves that share an index share a pair id. Missing content is padded
// with blank units.
func BuildGrid(a, b *content.Bag, spec Spec) *Grid {
	rows, cols := max(1, spec.Rows), max(1, spec.Cols)
	n := rows * cols

	gridRows, gridCols := rows, cols
	if b != nil {
		if spec.Arrangement == SideBySide {
			gridCols *= 2
		} else {
			gridRows *= 2
		}
	}

	g := NewGrid(gridRows, gridCols, spec.CellSize, spec.Border)
	g.SetOrigin(spec.Origin)

	fill := func(bag *content.Bag, offset int) {
		for j := 0; j < n; j++ {
			c := g.cells[offset+j]
			u := bag.At(j)
			if u == nil {
				u = content.Blank()
			}
			c.SetContent(u)
			c.OrderID = j
			if bag.UseIDs() {
				c.SetDefaultPairID()
			} else {
				c.PairID = j
			}
		}
	}

	if b == nil {
		fill(a, 0)
		return g
	}
	fill(a, 0)
	fill(b, n)
	if a.UseIDs() != b.UseIDs() {
		// mixed pairing modes: fall back to positional pairing on both halves
		for j := 0; j < n; j++ {
			g.cells[j].PairID = j
			g.cells[n+j].PairID = j
		}
	}
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Len returns the number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// Border reports whether cells are drawn with a border
func (g *Grid) Border() bool {
	return g.border
}

// CellSize returns the size of one cell
func (g *Grid) CellSize() geom.Size {
	return g.cellSize
}

// Bounds returns the rectangle covered by the whole grid
func (g *Grid) Bounds() geom.Rect {
	return geom.Rect{
		Pos: g.origin,
		Dim: geom.Size{
			Width:  g.cellSize.Width * float64(g.cols),
			Height: g.cellSize.Height * float64(g.rows),
		},
	}
}

// SetOrigin moves the grid and all of its cells
func (g *Grid) SetOrigin(p geom.Point) {
	g.origin = p
	for i, c := range g.cells {
		c.SetBounds(g.cellRect(i))
	}
}

func (g *Grid) cellRect(i int) geom.Rect {
	row, col := i/g.cols, i%g.cols
	return geom.R(
		g.origin.X+float64(col)*g.cellSize.Width,
		g.origin.Y+float64(row)*g.cellSize.Height,
		g.cellSize.Width,
		g.cellSize.Height,
	)
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CellAt returns the cell at the given position, or nil if out of bounds
func (g *Grid) CellAt(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row*g.cols+col]
}

// CellByLocation returns the cell with the given location id, or nil
func (g *Grid) CellByLocation(id int) *Cell {
	if id < 0 || id >= len(g.cells) {
		return nil
	}
	return g.cells[id]
}

// Cells returns the cells in location order
func (g *Grid) Cells() []*Cell {
	cp := make([]*Cell, len(g.cells))
	copy(cp, g.cells)
	return cp
}

// FindCellAt returns the cell under p, or nil if p is outside the grid
func (g *Grid) FindCellAt(p geom.Point) *Cell {
	if !g.Bounds().Contains(p) {
		return nil
	}
	col := int((p.X - g.origin.X) / g.cellSize.Width)
	row := int((p.Y - g.origin.Y) / g.cellSize.Height)
	return g.CellAt(row, col)
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for i, c := range g.cells {
		fn(i/g.cols, i%g.cols, c)
	}
}

// CountCellsWithPairID counts the cells whose pair id equals target
func (g *Grid) CountCellsWithPairID(target int) int {
	n := 0
	for _, c := range g.cells {
		if c.PairID == target {
			n++
		}
	}
	return n
}

// IsSolved returns true if every cell is solved
func (g *Grid) IsSolved() bool {
	return g.CountCellsWithPairID(Solved) == len(g.cells)
}

// SetAllActive shows or hides every cell
func (g *Grid) SetAllActive(v bool) {
	for _, c := range g.cells {
		c.SetActive(v)
	}
}

// Shuffle scrambles the grid content with steps random swaps. Content and
// pairing travel between cells; locations stay put.
func (g *Grid) Shuffle(rng *rand.Rand, steps, retryCap int) {
	Shuffle(len(g.cells), steps, retryCap, rng, func(i, j int) {
		g.cells[i].ExchangeContent(g.cells[j])
	})
}

// cellState is what a cell holds at one location
type cellState struct {
	content    *content.Unit
	altContent *content.Unit
	orderID    int
	pairID     int
	alternate  bool
}

// Layout is a saved arrangement of a grid's content and pairing
type Layout []cellState

// Layout saves the current content, order and pair ids of every cell
func (g *Grid) Layout() Layout {
	l := make(Layout, len(g.cells))
	for i, c := range g.cells {
		l[i] = cellState{
			content:    c.content,
			altContent: c.altContent,
			orderID:    c.OrderID,
			pairID:     c.PairID,
			alternate:  c.alternate,
		}
	}
	return l
}

// Restore puts a saved layout back. Cells come back face up; layouts of
// another size are ignored.
func (g *Grid) Restore(l Layout) {
	if len(l) != len(g.cells) {
		return
	}
	for i, c := range g.cells {
		st := l[i]
		c.Clear()
		if st.content != nil {
			c.SetContent(st.content)
		}
		c.SetAltContent(st.altContent)
		c.SetAlternate(st.alternate)
		c.OrderID = st.orderID
		c.PairID = st.pairID
		c.SetInverted(false)
	}
}

// Validate checks the grid for structural issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.rows*g.cols != len(g.cells) {
		return "grid cell count does not match its dimensions"
	}
	for i, c := range g.cells {
		if c == nil {
			return "grid has a missing cell"
		}
		if c.LocationID != i {
			return "grid cell location does not match its slot"
		}
	}
	return ""
}
