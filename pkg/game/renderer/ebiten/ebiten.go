// Package ebiten provides an Ebiten-based 2D graphical renderer. Mouse and
// touch input go through the layered input pipeline and reach the activity
// as pointer events; keys become intents.
package ebiten

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"

	"boxplay/pkg/engine/geom"
	engineinput "boxplay/pkg/engine/input"
	"boxplay/pkg/game/activity"
	"boxplay/pkg/game/renderer"
	"boxplay/pkg/game/state"
)

// IntentFunc receives the intents decoded from the keyboard
type IntentFunc func(engineinput.Intent)

// PointerFunc receives pointer events in board coordinates
type PointerFunc func(engineinput.PointerEvent)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	game      *state.Game
	onIntent  IntentFunc
	onPointer PointerFunc
	log       zerolog.Logger

	debouncer *engineinput.Debouncer
	// pointer tracking for move events
	lastPointer geom.Point
	dragFrom    geom.Point
	mouseDown   bool
	touchID     ebiten.TouchID
	touching    bool
	textEntry   bool
	zoom        float64

	// reused per-frame buffers
	keys     []ebiten.Key
	chars    []rune
	touchIDs []ebiten.TouchID

	monoFontSource     *text.GoTextFaceSource
	cachedCellFace     *text.GoTextFace
	cachedCellFontSize float64
	cachedUIFace       *text.GoTextFace

	regexpMarkup *regexp.Regexp
}

// New creates a graphical renderer feeding input to the callbacks
func New(onIntent IntentFunc, onPointer PointerFunc, logger *zerolog.Logger) *EbitenRenderer {
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &EbitenRenderer{
		windowWidth:  800,
		windowHeight: 600,
		onIntent:     onIntent,
		onPointer:    onPointer,
		log:          l,
		debouncer:    engineinput.NewDebouncer(),
		zoom:         1,
		regexpMarkup: regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:?]+)}`),
	}
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() {
	if err := e.loadFonts(); err != nil {
		e.log.Error().Err(err).Msg("font load failed")
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("boxplay")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Clear is a no-op: every Draw repaints the whole screen
func (e *EbitenRenderer) Clear() {}

// RenderFrame sets the game drawn by the next frames
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.game = g
	if g != nil && g.Activity != nil {
		e.textEntry = g.Activity.Kind() == activity.KindCrossword
	}
}

// GetInput returns ActionNone: input arrives through Update
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// StyleText returns the text unchanged; colors are applied when drawing
func (e *EbitenRenderer) StyleText(text string, _ renderer.TextStyle) string {
	return text
}

// FormatText formats a message and resolves markup to plain text
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)
	for _, match := range e.regexpMarkup.FindAllStringSubmatch(ret, -1) {
		val := match[2]
		if match[1] == "GT" {
			val = gotext.Get(match[2])
		}
		ret = strings.Replace(ret, match[0], val, -1)
	}
	return ret
}

// ShowMessage adds a message to the game's log
func (e *EbitenRenderer) ShowMessage(msg string) {
	if e.game != nil {
		e.game.AddMessage(msg)
	}
}

// GetViewportSize returns the window size in pixels (rows, cols)
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	w, h := ebiten.WindowSize()
	if w == 0 || h == 0 {
		return e.windowHeight, e.windowWidth
	}
	return h, w
}

// Layout returns the game's logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run starts the Ebiten game loop and blocks until the window closes
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.RenderFrame(g)
	if g != nil && g.Activity != nil {
		ebiten.SetWindowTitle(kindLabel(g.Activity.Kind(), g.Puzzle))
	}
	e.log.Info().Msg("opening window")
	return ebiten.RunGame(e)
}

// boardOrigin is where board coordinate (0, 0) is drawn
func (e *EbitenRenderer) boardOrigin() geom.Point {
	return geom.Pt(boardMargin, boardMargin+headerHeight)
}

// toBoard converts screen pixels to board coordinates
func (e *EbitenRenderer) toBoard(x, y int) geom.Point {
	o := e.boardOrigin()
	return geom.Pt((float64(x)-o.X)/e.zoom, (float64(y)-o.Y)/e.zoom)
}

// toScreen converts a board rectangle to screen pixels
func (e *EbitenRenderer) toScreen(r geom.Rect) geom.Rect {
	o := e.boardOrigin()
	return geom.R(o.X+r.Pos.X*e.zoom, o.Y+r.Pos.Y*e.zoom, r.Dim.Width*e.zoom, r.Dim.Height*e.zoom)
}
