package activity

import (
	"math/rand/v2"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"boxplay/pkg/engine/geom"
	"boxplay/pkg/engine/gesture"
	"boxplay/pkg/engine/input"
	"boxplay/pkg/engine/textgrid"
)

// WordSearch hides words in a scrambled character grid. Wildcard cells are
// noise filled from the alphabet at start; the player marks a word by
// dragging, or clicking, from its first to its last letter.
type WordSearch struct {
	base
	grid  *textgrid.Grid
	lines []string
	words []string
	found mapset.Set[string]
	conn  *gesture.Connector
}

// NewWordSearch builds a word search from the grid lines and the words hidden
// in them
func NewWordSearch(lines, words []string, opts Options) *WordSearch {
	w := &WordSearch{
		base:  newBase(KindWordSearch, opts),
		lines: lines,
		found: mapset.New[string](),
		conn:  gesture.NewConnector(),
	}
	seen := mapset.New[string]()
	for _, word := range words {
		word = strings.TrimSpace(word)
		key := word
		if !w.cfg.CaseSensitive {
			key = strings.ToUpper(word)
		}
		if word == "" || seen.Has(key) {
			continue
		}
		seen.Put(key)
		w.words = append(w.words, word)
	}
	w.grid = newTextGrid(lines, w.cfg)
	return w
}

// Grid returns the character grid being played
func (w *WordSearch) Grid() *textgrid.Grid {
	return w.grid
}

// Words returns the hidden words
func (w *WordSearch) Words() []string {
	return w.words
}

// IsFound reports whether a word was already marked
func (w *WordSearch) IsFound(word string) bool {
	return w.found.Has(word)
}

// Start fills the noise cells and starts play
func (w *WordSearch) Start(rng *rand.Rand) {
	w.conn.End()
	w.found = mapset.New[string]()
	w.grid.SetChars(w.lines)
	w.grid.Randomize(rng)
	w.grid.SetCellAttributes(false, false)
	w.log.Info().Int("words", len(w.words)).Msg("word search started")
	w.begin()
}

// Anchor returns the cell a pending selection starts from
func (w *WordSearch) Anchor() (textgrid.Pos, bool) {
	if !w.conn.Active() {
		return textgrid.Pos{}, false
	}
	return w.grid.LogicalCoords(w.conn.Origin())
}

// Progress returns the fraction of words found
func (w *WordSearch) Progress() float64 {
	if len(w.words) == 0 {
		return 0
	}
	return float64(w.found.Size()) / float64(len(w.words))
}

// Dispatch routes pointer events
func (w *WordSearch) Dispatch(ev input.PointerEvent) {
	switch ev.Kind {
	case input.PointerDown:
		w.PointerDown(ev.Point)
	case input.PointerMove:
		w.conn.MoveTo(ev.Point)
	case input.PointerUp:
		w.PointerUp(ev.Point)
	case input.PointerCancel:
		w.conn.End()
	}
}

// PointerDown anchors a selection, or ends the pending one
func (w *WordSearch) PointerDown(p geom.Point) {
	if !w.playing {
		return
	}
	if w.conn.Active() {
		w.Select(w.conn.Origin(), p)
		return
	}
	if _, ok := w.grid.LogicalCoords(p); ok {
		w.conn.Begin(p, nil)
	}
}

// PointerUp ends a drag. A trembling release keeps the selection pending.
func (w *WordSearch) PointerUp(p geom.Point) {
	if !w.playing || !w.conn.Active() || w.conn.IsTremble(p, w.cfg.TrembleThreshold) {
		return
	}
	w.Select(w.conn.Origin(), p)
}

// Select judges the straight line between two surface points
func (w *WordSearch) Select(from, to geom.Point) {
	w.conn.End()
	a, ok1 := w.grid.LogicalCoords(from)
	b, ok2 := w.grid.LogicalCoords(to)
	if !ok1 || !ok2 {
		return
	}
	w.SelectCells(a, b)
}

// SelectCells judges the characters between two cells, read in either
// direction
func (w *WordSearch) SelectCells(a, b textgrid.Pos) {
	if !w.playing {
		return
	}
	s := w.grid.StringBetween(a.X, a.Y, b.X, b.Y)
	if len([]rune(s)) < 2 {
		return
	}
	word, ok := w.match(s)
	if ok {
		w.found.Put(word)
		w.grid.SetAttributeBetween(a.X, a.Y, b.X, b.Y, textgrid.AttrMarked, true)
	}
	w.report(Action{
		Type:     ActionMatch,
		Source:   s,
		Dest:     word,
		OK:       ok,
		Progress: w.Progress(),
		Score:    w.found.Size(),
	})
	if ok && w.found.Size() == len(w.words) {
		w.finish(true)
		return
	}
	if ok {
		w.playEvent(EventActionOk)
	} else {
		w.playEvent(EventActionError)
	}
}

func (w *WordSearch) match(s string) (string, bool) {
	rev := reverse(s)
	for _, word := range w.words {
		if w.found.Has(word) {
			continue
		}
		if w.same(s, word) || w.same(rev, word) {
			return word, true
		}
	}
	return "", false
}

func (w *WordSearch) same(a, b string) bool {
	if w.cfg.CaseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
