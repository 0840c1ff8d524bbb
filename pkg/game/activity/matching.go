package activity

import (
	"math/rand/v2"

	"boxplay/pkg/engine/boxes"
	"boxplay/pkg/engine/geom"
	"boxplay/pkg/engine/gesture"
	"boxplay/pkg/engine/input"
)

// MatchState is the state of a memory game
type MatchState int

const (
	StateIdle MatchState = iota
	StateAwaitingFirstPick
	StateOneRevealed
	StateSolved
)

// String returns the state name
func (s MatchState) String() string {
	switch s {
	case StateAwaitingFirstPick:
		return "awaiting-first-pick"
	case StateOneRevealed:
		return "one-revealed"
	case StateSolved:
		return "solved"
	default:
		return "idle"
	}
}

// Matching is the memory-pair game. Cells start face down (inactive); a
// gesture reveals one cell and a second pick judges the pair.
type Matching struct {
	base
	grid    *boxes.Grid
	built   boxes.Layout
	conn    *gesture.Connector
	surface Surface
}

// NewMatching wraps a built grid. Hit testing goes through opts.Surface, or
// the grid itself when no surface is given.
func NewMatching(grid *boxes.Grid, opts Options) *Matching {
	m := &Matching{
		base:    newBase(KindMatching, opts),
		grid:    grid,
		built:   grid.Layout(),
		conn:    gesture.NewConnector(),
		surface: opts.Surface,
	}
	if m.surface == nil {
		m.surface = grid
	}
	return m
}

// Grid returns the grid being played
func (m *Matching) Grid() *boxes.Grid {
	return m.grid
}

// Connector returns the gesture in progress, for renderers drawing the drag line
func (m *Matching) Connector() *gesture.Connector {
	return m.conn
}

// State returns the current state
func (m *Matching) State() MatchState {
	switch {
	case m.finished:
		return StateSolved
	case !m.playing:
		return StateIdle
	case m.conn.Active():
		return StateOneRevealed
	default:
		return StateAwaitingFirstPick
	}
}

// Start restores the built pairing, shuffles the grid, turns every cell face
// down and starts play. Pairs solved in an earlier run are playable again.
func (m *Matching) Start(rng *rand.Rand) {
	m.conn.End()
	m.grid.Restore(m.built)
	m.grid.Shuffle(rng, m.cfg.Shuffles, m.cfg.ShuffleRetries)
	m.grid.SetAllActive(false)
	m.log.Info().Int("cells", m.grid.Len()).Msg("memory game started")
	m.begin()
}

// Solved returns the number of cells already paired
func (m *Matching) Solved() int {
	return m.grid.CountCellsWithPairID(boxes.Solved)
}

// Progress returns the solved fraction of the grid
func (m *Matching) Progress() float64 {
	if m.grid.Len() == 0 {
		return 0
	}
	return float64(m.Solved()) / float64(m.grid.Len())
}

// Dispatch resolves the hit cell through the surface and routes the event
func (m *Matching) Dispatch(ev input.PointerEvent) {
	switch ev.Kind {
	case input.PointerDown:
		m.PointerDown(ev.Point, m.surface.FindCellAt(ev.Point))
	case input.PointerMove:
		m.PointerMove(ev.Point)
	case input.PointerUp:
		m.PointerUp(ev.Point, m.surface.FindCellAt(ev.Point))
	case input.PointerCancel:
		m.PointerCancel()
	}
}

// PointerDown handles a press. With no gesture pending it reveals the cell
// under the pointer; otherwise it is the second pick.
func (m *Matching) PointerDown(p geom.Point, hit *boxes.Cell) {
	if !m.playing {
		return
	}
	m.press(p, m.own(hit), false)
}

// PointerMove tracks the drag
func (m *Matching) PointerMove(p geom.Point) {
	if !m.playing {
		return
	}
	m.conn.MoveTo(p)
}

// PointerUp handles a release. A release close to where the gesture began
// is a trembling click and leaves the gesture pending.
func (m *Matching) PointerUp(p geom.Point, hit *boxes.Cell) {
	if !m.playing {
		return
	}
	if m.conn.Active() && m.conn.IsTremble(p, m.cfg.TrembleThreshold) {
		return
	}
	m.press(p, m.own(hit), true)
}

// PointerCancel drops the pending gesture without judging it. The revealed
// cell is turned face down again.
func (m *Matching) PointerCancel() {
	if !m.conn.Active() {
		return
	}
	bx := m.conn.Cell()
	m.conn.End()
	if bx != nil && !bx.IsSolved() {
		bx.SetActive(false)
	}
}

// own filters out cells that do not belong to this grid
func (m *Matching) own(c *boxes.Cell) *boxes.Cell {
	if c == nil || m.grid.CellByLocation(c.LocationID) != c {
		return nil
	}
	return c
}

func (m *Matching) press(p geom.Point, hit *boxes.Cell, up bool) {
	if !m.conn.Active() {
		if up {
			return
		}
		m.stopMedia()
		m.reveal(p, hit)
		return
	}

	m.stopMedia()
	bx1 := m.conn.Cell()
	m.conn.End()
	bx2 := hit

	switch {
	case bx1 != nil && !bx1.IsSolved() && bx2 != nil && !bx2.IsSolved():
		if bx1 == bx2 {
			// same cell: no judgement
			m.playEvent(EventClick)
			bx1.SetActive(false)
			return
		}
		m.judge(p, bx1, bx2)
	case bx1 != nil && !bx1.IsSolved():
		bx1.SetActive(false)
	}
}

func (m *Matching) reveal(p geom.Point, bx *boxes.Cell) {
	if bx == nil || bx.IsSolved() {
		return
	}
	if !m.playCell(bx) {
		m.playEvent(EventClick)
	}
	bx.SetActive(true)
	m.conn.Begin(p, bx)
}

func (m *Matching) judge(p geom.Point, bx1, bx2 *boxes.Cell) {
	ok := bx1.PairID == bx2.PairID ||
		bx1.IsCurrentContentEquivalent(bx2, m.cfg.CaseSensitive)
	if ok {
		bx1.MarkSolved()
		bx1.SetActive(true)
		bx2.MarkSolved()
		bx2.SetActive(true)
	} else {
		bx1.SetActive(false)
		if m.cfg.DragCells {
			bx2.SetActive(false)
		} else {
			// the second pick stays revealed and becomes the pending one
			bx2.SetActive(true)
			m.conn.Begin(p, bx2)
		}
	}

	played := m.playCell(bx2)
	solved := m.Solved()
	m.report(Action{
		Type:     ActionMatch,
		Source:   bx1.Description(),
		Dest:     bx2.Description(),
		OK:       ok,
		Progress: m.Progress(),
		Score:    solved / 2,
	})
	if ok && solved == m.grid.Len() {
		m.finish(true)
		return
	}
	if !played {
		if ok {
			m.playEvent(EventActionOk)
		} else {
			m.playEvent(EventActionError)
		}
	}
}
