package state

import (
	"fmt"
	"math/rand/v2"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"boxplay/pkg/game/activity"
	"boxplay/pkg/game/report"
)

const maxMessages = 5

// Position is the keyboard cursor over the board. Ordering boards use Col
// as the index of the target in display order.
type Position struct {
	Row int
	Col int
}

// Game is the state of one play run: the active controller, the message log
// and the reporter results go to
type Game struct {
	Activity activity.Controller

	// Puzzle is the name of the content being played
	Puzzle string

	Reporter *report.Reporter

	Messages []string

	Hints []string

	Seed uint64

	Rng *rand.Rand

	Cursor Position

	QuitRequested bool

	// DumpDir is where board dumps are written; empty is the working directory
	DumpDir string

	completed mapset.Set[string]
}

// NewGame creates a game reporting to r. A nil reporter keeps only messages.
func NewGame(r *report.Reporter) *Game {
	return &Game{
		Reporter:  r,
		Messages:  make([]string, 0),
		completed: mapset.New[string](),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// AddHint adds a hint to the game
func (g *Game) AddHint(hint string) {
	g.Hints = append(g.Hints, hint)
}

// IsCompleted reports whether an activity was solved during this game
func (g *Game) IsCompleted(name string) bool {
	return g.completed.Has(name)
}

// ReportAction logs a player message for the move and forwards it to the
// reporter
func (g *Game) ReportAction(name string, a activity.Action) error {
	switch a.Type {
	case activity.ActionMatch:
		if a.OK {
			g.AddMessage(fmt.Sprintf(gotext.Get("MATCH_OK"), a.Score))
		} else {
			g.AddMessage(gotext.Get("MATCH_FAIL"))
		}
	case activity.ActionPlace:
		if a.OK {
			g.AddMessage(fmt.Sprintf(gotext.Get("PLACE_OK"), a.Source))
		} else {
			g.AddMessage(fmt.Sprintf(gotext.Get("PLACE_FAIL"), a.Source))
		}
	}
	if g.Reporter == nil {
		return nil
	}
	return g.Reporter.ReportAction(name, a)
}

// ReportActivityEnd marks the activity completed and forwards the result
func (g *Game) ReportActivityEnd(name string, ok bool) error {
	if ok {
		g.completed.Put(name)
		g.AddMessage(gotext.Get("ACTIVITY_DONE"))
	}
	if g.Reporter == nil {
		return nil
	}
	return g.Reporter.ReportActivityEnd(name, ok)
}
