package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	engineinput "boxplay/pkg/engine/input"
	"boxplay/pkg/game/activity"
	"boxplay/pkg/game/config"
	gameerrors "boxplay/pkg/game/errors"
	"boxplay/pkg/game/gameplay"
	"boxplay/pkg/game/menu"
	"boxplay/pkg/game/puzzles"
	"boxplay/pkg/game/renderer"
	ebitenrenderer "boxplay/pkg/game/renderer/ebiten"
	"boxplay/pkg/game/renderer/tui"
	"boxplay/pkg/game/report"
	"boxplay/pkg/game/state"
)

// newCLIApp creates the CLI application with all commands. Keys are read
// from in and the terminal renderer prints to out. Without a command a menu
// of the built-in puzzles is shown.
func newCLIApp(in io.Reader, out io.Writer) *cli.App {
	keys := engineinput.NewReader(in)
	app := &cli.App{
		Name:    "boxplay",
		Usage:   "Grid and text puzzles for the terminal and the desktop",
		Version: Version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "boxplay.yaml", Usage: "YAML settings file"},
			&cli.StringSliceFlag{Name: "set", Usage: "Override a setting, key=value (repeatable)"},
			&cli.StringFlag{Name: "locales", Value: "locales", Usage: "Directory holding the message catalogs"},
			&cli.StringFlag{Name: "log", Usage: "Write logs to this file instead of stderr"},
		},
		Commands: []*cli.Command{
			playCmd(activity.KindMatching, "Find the pairs", keys, out),
			playCmd(activity.KindOrdering, "Put the words back in order", keys, out),
			playCmd(activity.KindCrossword, "Fill in the crossword", keys, out),
			playCmd(activity.KindWordSearch, "Find the hidden words", keys, out),
			listCmd(out),
			bindingsCmd(out),
		},
		Before: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			gotext.Configure(c.String("locales"), cfg.Locale, "default")
			return applyBindings(cfg)
		},
		Action: func(c *cli.Context) error {
			screen := tui.New(keys, out, nil)
			screen.Init()
			p, ok := menu.PickPuzzle(screen, out)
			if !ok {
				return nil
			}
			return play(c, p, keys, out)
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// playCmd creates the command that plays one activity kind
func playCmd(kind activity.Kind, usage string, keys *engineinput.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      kind.String(),
		Usage:     usage,
		ArgsUsage: "[puzzle]",
		Flags: []cli.Flag{
			&cli.Uint64Flag{Name: "seed", Aliases: []string{"s"}, Usage: "Shuffle seed (0 picks one)"},
			&cli.BoolFlag{Name: "gui", Aliases: []string{"g"}, Usage: "Open a window instead of playing in the terminal"},
		},
		Action: func(c *cli.Context) error {
			p, err := puzzles.Find(kind, c.Args().First())
			if err != nil {
				return err
			}
			return play(c, p, keys, out)
		},
	}
}

// play builds a game for p and runs it until the player quits
func play(c *cli.Context, p puzzles.Puzzle, keys *engineinput.Reader, out io.Writer) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(c, cfg, c.Bool("gui"))
	if err != nil {
		return err
	}
	defer closeLog()

	rep := report.New(&logger)
	session, err := rep.NewSession("boxplay")
	if err != nil {
		return err
	}
	g, err := gameplay.BuildGame(p, gameplay.Settings{
		Config:   cfg,
		Seed:     c.Uint64("seed"),
		Reporter: rep,
		Logger:   &logger,
		DumpDir:  cfg.DumpDir,
	})
	if err != nil {
		return err
	}
	logger.Info().Str("puzzle", p.Name).Uint64("seed", g.Seed).Msg("game built")

	if c.Bool("gui") {
		err = runGUI(g, &logger)
	} else {
		runTUI(g, keys, out, &logger)
	}
	rep.EndSession()
	printSummary(out, session)
	return err
}

// listCmd creates the list command
func listCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the built-in puzzles",
		Action: func(c *cli.Context) error {
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tPUZZLE\tTITLE")
			for _, p := range puzzles.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Kind, p.Name, p.Title)
			}
			return w.Flush()
		},
	}
}

// bindingsCmd creates the bindings command
func bindingsCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "bindings",
		Usage: "List the key bindings in effect",
		Action: func(c *cli.Context) error {
			byAction := engineinput.GetBindingsByAction()
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\n", gotext.Get("BINDINGS_ACTION"), gotext.Get("BINDINGS_KEYS"))
			for _, a := range engineinput.Actions() {
				fmt.Fprintf(w, "%s\t%s\n", engineinput.ActionName(a), strings.Join(byAction[a], " "))
			}
			return w.Flush()
		},
	}
}

// applyBindings rebinds the actions named in the key_bindings setting. All
// names are checked before anything is rebound.
func applyBindings(cfg *config.Config) error {
	actions := make(map[engineinput.Action]string, len(cfg.KeyBindings))
	for name, code := range cfg.KeyBindings {
		a, ok := engineinput.ParseAction(name)
		if !ok {
			return gameerrors.NewInvalidConfig("key_bindings", fmt.Errorf("unknown action %q", name))
		}
		actions[a] = code
	}
	for a, code := range actions {
		engineinput.SetSingleBinding(a, code)
	}
	return nil
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyOverrides(c.StringSlice("set")); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes to the --log file when given. Terminal play without a log
// file only lets warnings through, so info lines do not tear the board.
func newLogger(c *cli.Context, cfg *config.Config, gui bool) (zerolog.Logger, func(), error) {
	level := cfg.Level()
	path := c.String("log")
	if path == "" {
		if !gui && level < zerolog.WarnLevel {
			level = zerolog.WarnLevel
		}
		w := zerolog.ConsoleWriter{Out: os.Stderr}
		return zerolog.New(w).Level(level).With().Timestamp().Logger(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, err
	}
	return zerolog.New(f).Level(level).With().Timestamp().Logger(), func() { f.Close() }, nil
}

// runTUI is the terminal main loop: draw, read one key, apply it
func runTUI(g *state.Game, keys *engineinput.Reader, out io.Writer, logger *zerolog.Logger) {
	renderer.SetRenderer(tui.New(keys, out, logger))
	renderer.Init()
	for !g.QuitRequested {
		renderer.Clear()
		renderer.RenderFrame(g)
		gameplay.ProcessIntent(g, renderer.GetInput())
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, gotext.Get("GOODBYE"))
}

// runGUI opens the window; input is applied from the Ebiten update loop
func runGUI(g *state.Game, logger *zerolog.Logger) error {
	r := ebitenrenderer.New(
		func(intent engineinput.Intent) { gameplay.ProcessIntent(g, intent) },
		func(ev engineinput.PointerEvent) { gameplay.ProcessPointer(g, ev) },
		logger,
	)
	renderer.SetRenderer(r)
	renderer.Init()
	return r.Run(g)
}

func printSummary(out io.Writer, s *report.Session) {
	if s == nil {
		return
	}
	sum := s.Summary()
	fmt.Fprintf(out, "%s %s\n", gotext.Get("SESSION"), s.ID)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%d/%d\n", gotext.Get("SUMMARY_SOLVED"), sum.Solved, sum.Activities)
	fmt.Fprintf(w, "%s\t%d\n", gotext.Get("SUMMARY_ACTIONS"), sum.Actions)
	fmt.Fprintf(w, "%s\t%d\n", gotext.Get("SUMMARY_SCORE"), sum.Score)
	fmt.Fprintf(w, "%s\t%d%%\n", gotext.Get("SUMMARY_PRECISION"), sum.Precision)
	w.Flush()
}
