package boxes

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxplay/pkg/engine/content"
	"boxplay/pkg/engine/geom"
)

func TestNewGrid_NormalisesDimensions(t *testing.T) {
	g := NewGrid(0, -3, geom.Size{}, false)
	assert.Equal(t, 1, g.Rows())
	assert.Equal(t, 1, g.Cols())
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, DefaultCellSize, g.CellSize())
	assert.Empty(t, g.Validate())
}

func TestNewGrid_LocationsCoverEverySlot(t *testing.T) {
	g := NewGrid(3, 4, geom.Size{Width: 10, Height: 10}, true)
	require.Equal(t, 12, g.Len())
	seen := map[int]bool{}
	g.ForEachCell(func(row, col int, c *Cell) {
		assert.Equal(t, row*4+col, c.LocationID)
		seen[c.LocationID] = true
	})
	assert.Len(t, seen, 12)
	assert.True(t, g.Border())
	assert.Empty(t, g.Validate())
}

func TestGrid_CellAtOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2, geom.Size{Width: 10, Height: 10}, false)
	assert.Nil(t, g.CellAt(-1, 0))
	assert.Nil(t, g.CellAt(0, 2))
	assert.Nil(t, g.CellAt(2, 0))
	assert.Nil(t, g.CellByLocation(4))
	assert.Nil(t, g.CellByLocation(-1))
	assert.Same(t, g.CellAt(1, 1), g.CellByLocation(3))
}

func TestGrid_FindCellAt(t *testing.T) {
	g := NewGrid(2, 3, geom.Size{Width: 10, Height: 20}, false)
	g.SetOrigin(geom.Pt(100, 50))

	tests := []struct {
		name string
		p    geom.Point
		want int
	}{
		{"top-left corner", geom.Pt(100, 50), 0},
		{"inside second column", geom.Pt(115, 60), 1},
		{"bottom row", geom.Pt(125, 75), 5},
		{"left of grid", geom.Pt(99, 60), -1},
		{"right edge is exclusive", geom.Pt(130, 60), -1},
		{"below grid", geom.Pt(110, 90), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := g.FindCellAt(tt.p)
			if tt.want < 0 {
				assert.Nil(t, c)
				return
			}
			require.NotNil(t, c)
			assert.Equal(t, tt.want, c.LocationID)
			assert.True(t, c.Contains(tt.p))
		})
	}
}

func TestBuildGrid_SingleBagSelfPairs(t *testing.T) {
	g := BuildGrid(content.TextBag("A", "B", "C", "D"), nil, Spec{Rows: 2, Cols: 2})
	require.Equal(t, 4, g.Len())
	for i, c := range g.Cells() {
		assert.Equal(t, i, c.PairID)
		assert.Equal(t, i, c.OrderID)
		assert.True(t, c.IsAtPlace())
	}
	assert.Equal(t, "C", g.CellAt(1, 0).Content().Text)
}

func TestBuildGrid_SingleBagUsesIDs(t *testing.T) {
	bag := content.NewBag([]*content.Unit{content.Text(7, "x"), content.Text(9, "y")}, true)
	g := BuildGrid(bag, nil, Spec{Rows: 1, Cols: 2})
	assert.Equal(t, 7, g.CellByLocation(0).PairID)
	assert.Equal(t, 9, g.CellByLocation(1).PairID)
}

func TestBuildGrid_PadsShortBag(t *testing.T) {
	g := BuildGrid(content.TextBag("A"), nil, Spec{Rows: 1, Cols: 3})
	require.Equal(t, 3, g.Len())
	assert.Equal(t, "A", g.CellByLocation(0).Content().Text)
	assert.True(t, g.CellByLocation(1).Content().IsEmpty())
	assert.True(t, g.CellByLocation(2).Content().IsEmpty())
}

func TestBuildGrid_TwoBagsEveryPairIDTwice(t *testing.T) {
	for _, arr := range []Arrangement{AboveBelow, SideBySide} {
		bag := content.TextBag("A", "B", "C", "D", "E", "F")
		g := BuildGrid(bag, bag, Spec{Rows: 2, Cols: 3, Arrangement: arr})
		require.Equal(t, 12, g.Len())
		if arr == AboveBelow {
			assert.Equal(t, 4, g.Rows())
			assert.Equal(t, 3, g.Cols())
		} else {
			assert.Equal(t, 2, g.Rows())
			assert.Equal(t, 6, g.Cols())
		}
		counts := map[int]int{}
		for _, c := range g.Cells() {
			counts[c.PairID]++
		}
		for id, n := range counts {
			assert.Equalf(t, 2, n, "pair id %d", id)
		}
		assert.Len(t, counts, 6)
	}
}

func TestBuildGrid_SecondBagRelatedContent(t *testing.T) {
	g := BuildGrid(content.TextBag("dog", "cat"), content.TextBag("perro", "gato"), Spec{Rows: 1, Cols: 2})
	assert.Equal(t, "dog", g.CellByLocation(0).Content().Text)
	assert.Equal(t, "perro", g.CellByLocation(2).Content().Text)
	assert.Equal(t, g.CellByLocation(1).PairID, g.CellByLocation(3).PairID)
}

func TestGrid_CountCellsWithPairID(t *testing.T) {
	bag := content.TextBag("X", "Y")
	g := BuildGrid(bag, bag, Spec{Rows: 1, Cols: 2})
	assert.Equal(t, 0, g.CountCellsWithPairID(Solved))
	g.CellByLocation(0).MarkSolved()
	g.CellByLocation(2).MarkSolved()
	assert.Equal(t, 2, g.CountCellsWithPairID(Solved))
	assert.False(t, g.IsSolved())
	g.CellByLocation(1).MarkSolved()
	g.CellByLocation(3).MarkSolved()
	assert.True(t, g.IsSolved())
}

func contentMultiset(g *Grid) []string {
	var out []string
	for _, c := range g.Cells() {
		out = append(out, c.Content().Text)
	}
	sort.Strings(out)
	return out
}

func TestGrid_ShuffleKeepsMultisetAndLocations(t *testing.T) {
	bag := content.TextBag("A", "B", "C", "D", "E", "F", "G", "H")
	g := BuildGrid(bag, bag, Spec{Rows: 2, Cols: 4})
	before := contentMultiset(g)

	g.Shuffle(rand.New(rand.NewPCG(1, 2)), 31, DefaultRetryCap)

	assert.Equal(t, before, contentMultiset(g))
	for i, c := range g.Cells() {
		assert.Equal(t, i, c.LocationID)
	}
	assert.Empty(t, g.Validate())

	// pairing still links equal content
	byPair := map[int][]*Cell{}
	for _, c := range g.Cells() {
		byPair[c.PairID] = append(byPair[c.PairID], c)
	}
	for _, cells := range byPair {
		require.Len(t, cells, 2)
		assert.True(t, cells[0].IsEquivalent(cells[1], true))
	}
}

func TestGrid_ShuffleDeterministicWithSeed(t *testing.T) {
	build := func() *Grid {
		g := BuildGrid(content.TextBag("A", "B", "C", "D", "E", "F"), nil, Spec{Rows: 2, Cols: 3})
		g.Shuffle(rand.New(rand.NewPCG(42, 42)), 10, DefaultRetryCap)
		return g
	}
	a, b := build(), build()
	for i := range a.Cells() {
		assert.Equal(t, a.CellByLocation(i).Content().Text, b.CellByLocation(i).Content().Text)
	}
}

func TestGrid_SetOriginMovesCells(t *testing.T) {
	g := NewGrid(1, 2, geom.Size{Width: 10, Height: 10}, false)
	g.SetOrigin(geom.Pt(5, 5))
	assert.Equal(t, geom.R(15, 5, 10, 10), g.CellByLocation(1).Bounds())
	assert.Equal(t, geom.R(5, 5, 20, 10), g.Bounds())
}

func TestGrid_RestoreLayout(t *testing.T) {
	bag := content.TextBag("a", "b")
	g := BuildGrid(bag, bag, Spec{Rows: 1, Cols: 2})
	c0 := g.CellByLocation(0)
	c0.SetAltContent(content.Text(9, "alt"))
	saved := g.Layout()

	g.Shuffle(rand.New(rand.NewPCG(3, 3)), 31, DefaultRetryCap)
	g.CellByLocation(0).MarkSolved()
	g.CellByLocation(1).SwitchToAlt()
	g.SetAllActive(false)

	g.Restore(saved)
	assert.Equal(t, []int{0, 1, 0, 1}, []int{
		g.CellByLocation(0).PairID, g.CellByLocation(1).PairID,
		g.CellByLocation(2).PairID, g.CellByLocation(3).PairID,
	})
	assert.Equal(t, "a", g.CellByLocation(0).Content().Text)
	assert.Equal(t, "alt", g.CellByLocation(0).AltContent().Text)
	assert.False(t, g.CellByLocation(1).IsAlternate())
	assert.Equal(t, 1, g.CellByLocation(3).OrderID)
	for _, c := range g.Cells() {
		assert.True(t, c.IsActive())
	}

	g.Restore(saved[:1])
	assert.Equal(t, 4, g.Len(), "layouts of another size are ignored")
}
