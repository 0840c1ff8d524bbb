package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"boxplay/pkg/game/activity"
	"boxplay/pkg/game/state"
)

// AddDefaultHints seeds the general hints shown when an activity has no
// targeted one
func AddDefaultHints(g *state.Game) {
	switch g.Activity.Kind() {
	case activity.KindMatching:
		g.AddHint(gotext.Get("HINT_MATCHING"))
		g.AddHint(gotext.Get("HINT_MATCHING_CANCEL"))
	case activity.KindOrdering:
		g.AddHint(gotext.Get("HINT_ORDERING"))
	case activity.KindCrossword:
		g.AddHint(gotext.Get("HINT_CROSSWORD_DIRECTION"))
	case activity.KindWordSearch:
		g.AddHint(gotext.Get("HINT_WORDSEARCH"))
	}
}

// ShowHint adds a hint for the current position to the message log.
// Ordering and crossword hints point at a concrete mistake; the others
// fall back to the general hints.
func ShowHint(g *state.Game) {
	switch a := g.Activity.(type) {
	case *activity.Ordering:
		if t := a.Hint(); t != nil {
			logMessage(g, fmt.Sprintf(gotext.Get("HINT_ORDER_TARGET"), t.Text))
			return
		}
	case *activity.Crossword:
		if pos, ok := a.Hint(); ok {
			a.Grid().SetCursorAt(pos.X, pos.Y, true)
			logMessage(g, gotext.Get("HINT_CROSSWORD_CELL"))
			return
		}
	case *activity.WordSearch:
		for _, w := range a.Words() {
			if !a.IsFound(w) {
				logMessage(g, fmt.Sprintf(gotext.Get("HINT_WORD"), len([]rune(w)), string([]rune(w)[0])))
				return
			}
		}
	}
	if len(g.Hints) == 0 {
		return
	}
	idx := 0
	if g.Rng != nil {
		idx = g.Rng.IntN(len(g.Hints))
	}
	logMessage(g, g.Hints[idx])
}
