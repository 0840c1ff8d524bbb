package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"boxplay/pkg/engine/geom"
	engineinput "boxplay/pkg/engine/input"
)

// keyCodes maps named Ebiten keys to the raw codes used by the bindings
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:     "arrow_up",
	ebiten.KeyArrowDown:   "arrow_down",
	ebiten.KeyArrowLeft:   "arrow_left",
	ebiten.KeyArrowRight:  "arrow_right",
	ebiten.KeyEnter:       "enter",
	ebiten.KeyNumpadEnter: "enter",
	ebiten.KeySpace:       "space",
	ebiten.KeyBackspace:   "backspace",
	ebiten.KeyDelete:      "delete",
	ebiten.KeyTab:         "tab",
	ebiten.KeyEscape:      "escape",
	ebiten.KeyF5:          "f5",
	ebiten.KeyF12:         "f12",
}

// Update handles input (Ebiten interface). Input is applied to the game
// synchronously, so Draw always sees a settled state.
func (e *EbitenRenderer) Update() error {
	if e.game != nil && e.game.QuitRequested {
		return ebiten.Termination
	}

	e.handleZoom()
	e.checkKeys()
	e.checkMouse()
	e.checkTouch()

	if e.game != nil && e.game.QuitRequested {
		return ebiten.Termination
	}
	return nil
}

// handleZoom handles Ctrl+= and Ctrl+- for board scaling
func (e *EbitenRenderer) handleZoom() {
	if !ebiten.IsKeyPressed(ebiten.KeyControl) {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.zoom = min(maxZoom, e.zoom+zoomStep)
		e.invalidateFontCache()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.zoom = max(minZoom, e.zoom-zoomStep)
		e.invalidateFontCache()
	}
}

// checkKeys turns named keys and typed characters into intents
func (e *EbitenRenderer) checkKeys() {
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		return
	}
	now := time.Now()
	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		code, ok := keyCodes[k]
		if !ok {
			continue
		}
		e.sendKey(engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code, Timestamp: now})
	}

	e.chars = ebiten.AppendInputChars(e.chars[:0])
	for _, r := range e.chars {
		if r <= ' ' {
			continue
		}
		e.sendKey(engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: string(r), Timestamp: now})
	}
}

func (e *EbitenRenderer) sendKey(raw engineinput.RawInput) {
	ev, ok := e.debouncer.Debounce(raw)
	if !ok || e.onIntent == nil {
		return
	}
	var intent engineinput.Intent
	if e.textEntry {
		intent = engineinput.MapToTextIntent(ev)
	} else {
		intent = engineinput.MapToIntent(ev)
	}
	if intent.Action == engineinput.ActionNone {
		return
	}
	e.log.Debug().Str("code", ev.Code).Str("action", engineinput.ActionName(intent.Action)).Msg("key")
	e.onIntent(intent)
}

// checkMouse reports left button presses, drags and releases
func (e *EbitenRenderer) checkMouse() {
	x, y := ebiten.CursorPosition()
	p := e.toBoard(x, y)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		e.mouseDown = true
		e.sendPointer(engineinput.DeviceMouse, engineinput.PointerDown, p, true)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		e.mouseDown = false
		e.sendPointer(engineinput.DeviceMouse, engineinput.PointerUp, p, true)
	case e.mouseDown && p != e.lastPointer:
		e.sendPointer(engineinput.DeviceMouse, engineinput.PointerMove, p, true)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && e.mouseDown {
		e.mouseDown = false
		e.sendPointer(engineinput.DeviceMouse, engineinput.PointerCancel, p, true)
	}
}

// checkTouch follows the first touch of a gesture. Released touches have no
// position any more, so the up event is sent without a point.
func (e *EbitenRenderer) checkTouch() {
	if e.touching {
		if inpututil.IsTouchJustReleased(e.touchID) {
			e.touching = false
			e.sendPointer(engineinput.DeviceTouch, engineinput.PointerUp, geom.Point{}, false)
			return
		}
		x, y := ebiten.TouchPosition(e.touchID)
		if p := e.toBoard(x, y); p != e.lastPointer {
			e.sendPointer(engineinput.DeviceTouch, engineinput.PointerMove, p, true)
		}
		return
	}
	e.touchIDs = inpututil.AppendJustPressedTouchIDs(e.touchIDs[:0])
	if len(e.touchIDs) == 0 {
		return
	}
	e.touchID = e.touchIDs[0]
	e.touching = true
	x, y := ebiten.TouchPosition(e.touchID)
	e.sendPointer(engineinput.DeviceTouch, engineinput.PointerDown, e.toBoard(x, y), true)
}

func (e *EbitenRenderer) sendPointer(dev engineinput.Device, kind engineinput.PointerKind, p geom.Point, hasPoint bool) {
	ev, ok := e.debouncer.Debounce(engineinput.RawInput{
		Device:    dev,
		Pointer:   kind,
		Point:     p,
		HasPoint:  hasPoint,
		Timestamp: time.Now(),
	})
	if !ok {
		return
	}
	pe, ok := engineinput.ToPointerEvent(ev)
	if !ok {
		return
	}
	e.lastPointer = pe.Point
	if pe.Kind == engineinput.PointerDown {
		e.dragFrom = pe.Point
	}
	if e.onPointer != nil {
		e.onPointer(pe)
	}
}
