package gameplay

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"

	"boxplay/pkg/game/activity"
	"boxplay/pkg/game/config"
	"boxplay/pkg/game/puzzles"
	"boxplay/pkg/game/report"
	"boxplay/pkg/game/state"
)

// Settings are the inputs of a new game
type Settings struct {
	Config *config.Config
	// Seed drives every shuffle. Zero picks one from the clock.
	Seed     uint64
	Reporter *report.Reporter
	Logger   *zerolog.Logger
	DumpDir  string
}

// BuildGame creates a game playing p and starts its activity
func BuildGame(p puzzles.Puzzle, s Settings) (*state.Game, error) {
	g := state.NewGame(s.Reporter)
	g.Puzzle = p.Name
	g.DumpDir = s.DumpDir

	// Store the seed so a run can be replayed
	seed := s.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g.Seed = seed
	g.Rng = rand.New(rand.NewPCG(seed, seed))

	ctrl, err := p.Build(activity.Options{
		Config: s.Config,
		Logger: s.Logger,
		Sink:   g,
	})
	if err != nil {
		return nil, err
	}
	g.Activity = ctrl
	AddDefaultHints(g)

	if err := startActivity(g); err != nil {
		return nil, err
	}

	g.ClearMessages()
	logMessage(g, fmt.Sprintf(gotext.Get("WELCOME"), p.Title))
	return g, nil
}

// Restart reshuffles and restarts the current activity as a new run
func Restart(g *state.Game) error {
	if g.Activity == nil {
		return nil
	}
	if err := startActivity(g); err != nil {
		return err
	}
	logMessage(g, gotext.Get("RESTARTED"))
	return nil
}

func startActivity(g *state.Game) error {
	if g.Reporter != nil && g.Reporter.Session() != nil {
		if _, err := g.Reporter.NewActivity(g.Activity.Name()); err != nil {
			return err
		}
	}
	g.Cursor = state.Position{}
	g.Activity.Start(g.Rng)
	return nil
}

func logMessage(g *state.Game, msg string) {
	g.AddMessage(msg)
}
