// Package activity holds the interaction state machines of the playable
// activities: memory matching, text ordering, crosswords and word searches.
//
// Controllers are synchronous. Every pointer, click or key event is handled to
// completion before the call returns. Rendering, media playback and progress
// reporting are collaborators reached through small interfaces; their
// failures are logged and never stop a controller from taking more input.
package activity

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"boxplay/pkg/engine/boxes"
	"boxplay/pkg/engine/content"
	"boxplay/pkg/engine/geom"
	"boxplay/pkg/game/config"
	gameerrors "boxplay/pkg/game/errors"
)

// Kind selects the activity variant
type Kind int

const (
	KindMatching Kind = iota
	KindOrdering
	KindCrossword
	KindWordSearch
)

// String returns the command name of the activity kind
func (k Kind) String() string {
	switch k {
	case KindMatching:
		return "memory"
	case KindOrdering:
		return "order"
	case KindCrossword:
		return "crossword"
	case KindWordSearch:
		return "wordsearch"
	default:
		return "unknown"
	}
}

// Kinds returns every activity kind
func Kinds() []Kind {
	return []Kind{KindMatching, KindOrdering, KindCrossword, KindWordSearch}
}

// ParseKind maps a command name back to a Kind
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, gameerrors.NewNotFound("activity " + s)
}

// ActionType is the kind of move reported to the progress sink
type ActionType string

const (
	ActionMatch ActionType = "MATCH"
	ActionPlace ActionType = "PLACE"
	ActionWrite ActionType = "WRITE"
)

// Action is one judged move
type Action struct {
	Type   ActionType
	Source string
	Dest   string
	OK     bool
	// Progress is the solved fraction of the activity, 0..1
	Progress float64
	// Score counts solved units: pairs, placed targets or correct characters
	Score int
}

// MediaEvent names a system sound
type MediaEvent string

const (
	EventStart       MediaEvent = "start"
	EventClick       MediaEvent = "click"
	EventActionOk    MediaEvent = "actionOk"
	EventActionError MediaEvent = "actionError"
	EventFinishedOk  MediaEvent = "finishedOk"
)

// Surface hit-tests points against the cells it draws
type Surface interface {
	FindCellAt(p geom.Point) *boxes.Cell
}

// MediaPlayer plays cell content and system sounds. Calls are fire and forget.
type MediaPlayer interface {
	boxes.ContentPlayer
	Stop()
	PlayEvent(ev MediaEvent)
}

// ProgressSink records judged moves and the end of each activity
type ProgressSink interface {
	ReportAction(activity string, a Action) error
	ReportActivityEnd(activity string, ok bool) error
}

// Controller is the part every activity shares
type Controller interface {
	Kind() Kind
	Name() string
	Start(rng *rand.Rand)
	Playing() bool
	Finished() bool
	// Progress is the solved fraction, 0..1
	Progress() float64
}

// Options configures a controller
type Options struct {
	Name    string
	Config  *config.Config
	Logger  *zerolog.Logger
	Media   MediaPlayer
	Sink    ProgressSink
	Surface Surface
}

// Content is the already-parsed description an activity is built from
type Content struct {
	// Matching
	Primary   *content.Bag
	Secondary *content.Bag
	Rows      int
	Cols      int

	// Ordering
	Targets []Target

	// Crossword and word search
	Lines   []string
	Answers []string
	Words   []string
}

// New builds a controller of the given kind
func New(kind Kind, c Content, opts Options) (Controller, error) {
	switch kind {
	case KindMatching:
		if c.Primary.Len() == 0 {
			return nil, gameerrors.NewInvalidContent(kind.String(), "empty content bag")
		}
		for _, bag := range []*content.Bag{c.Primary, c.Secondary} {
			if bag.UseIDs() && !bag.HasDistinctIDs() {
				return nil, gameerrors.NewInvalidContent(kind.String(), "content ids are not distinct")
			}
		}
		cfg := opts.config()
		spec := boxes.Spec{
			Rows:     c.Rows,
			Cols:     c.Cols,
			CellSize: geom.Size{Width: cfg.CellSize.Width, Height: cfg.CellSize.Height},
			Border:   true,
		}
		second := c.Secondary
		if second == nil {
			second = c.Primary
		}
		return NewMatching(boxes.BuildGrid(c.Primary, second, spec), opts), nil
	case KindOrdering:
		if len(c.Targets) == 0 {
			return nil, gameerrors.NewInvalidContent(kind.String(), "no targets")
		}
		return NewOrdering(c.Targets, opts), nil
	case KindCrossword:
		if len(c.Lines) == 0 {
			return nil, gameerrors.NewInvalidContent(kind.String(), "no grid lines")
		}
		return NewCrossword(c.Lines, c.Answers, opts), nil
	case KindWordSearch:
		if len(c.Lines) == 0 || len(c.Words) == 0 {
			return nil, gameerrors.NewInvalidContent(kind.String(), "no grid lines or words")
		}
		return NewWordSearch(c.Lines, c.Words, opts), nil
	}
	return nil, gameerrors.NewNotFound("activity " + kind.String())
}

func (o Options) config() *config.Config {
	if o.Config == nil {
		return config.DefaultConfig()
	}
	return o.Config
}

// base carries the collaborators and lifecycle flags shared by controllers
type base struct {
	kind     Kind
	name     string
	cfg      *config.Config
	log      zerolog.Logger
	media    MediaPlayer
	sink     ProgressSink
	playing  bool
	finished bool
}

func newBase(kind Kind, opts Options) base {
	name := opts.Name
	if name == "" {
		name = kind.String()
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return base{
		kind:  kind,
		name:  name,
		cfg:   opts.config(),
		log:   logger.With().Str("activity", name).Logger(),
		media: opts.Media,
		sink:  opts.Sink,
	}
}

// Kind returns the activity kind
func (b *base) Kind() Kind {
	return b.kind
}

// Name returns the activity name used in reports
func (b *base) Name() string {
	return b.name
}

// Playing returns true between Start and completion
func (b *base) Playing() bool {
	return b.playing
}

// Finished returns true once the activity is complete
func (b *base) Finished() bool {
	return b.finished
}

func (b *base) begin() {
	b.playing = true
	b.finished = false
	b.playEvent(EventStart)
}

func (b *base) report(a Action) {
	b.log.Debug().
		Str("type", string(a.Type)).
		Str("source", a.Source).
		Str("dest", a.Dest).
		Bool("ok", a.OK).
		Float64("progress", a.Progress).
		Msg("action")
	if b.sink == nil {
		return
	}
	if err := b.sink.ReportAction(b.name, a); err != nil {
		b.log.Warn().Err(gameerrors.NewCollaborator("progress sink", err)).Msg("report action failed")
	}
}

// finish fires the completion signal. It runs at most once per Start.
func (b *base) finish(ok bool) {
	if b.finished {
		return
	}
	b.finished = true
	b.playing = false
	b.log.Info().Bool("ok", ok).Msg("activity finished")
	if ok {
		b.playEvent(EventFinishedOk)
	}
	if b.sink == nil {
		return
	}
	if err := b.sink.ReportActivityEnd(b.name, ok); err != nil {
		b.log.Warn().Err(gameerrors.NewCollaborator("progress sink", err)).Msg("report end failed")
	}
}

func (b *base) playEvent(ev MediaEvent) {
	if b.media != nil {
		b.media.PlayEvent(ev)
	}
}

func (b *base) stopMedia() {
	if b.media != nil {
		b.media.Stop()
	}
}

// playCell plays the cell media and reports whether anything was played
func (b *base) playCell(c *boxes.Cell) bool {
	if b.media == nil {
		return false
	}
	return c.PlayMedia(b.media)
}
