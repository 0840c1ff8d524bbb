package input

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"boxplay/pkg/engine/geom"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTouch
	DeviceTerminal
)

// String returns the device name
func (d Device) String() string {
	switch d {
	case DeviceKeyboard:
		return "keyboard"
	case DeviceMouse:
		return "mouse"
	case DeviceTouch:
		return "touch"
	case DeviceTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Action represents a high‑level intent of the player.
type Action int

const (
	ActionNone Action = iota

	// Cursor movement
	ActionCursorUp
	ActionCursorDown
	ActionCursorLeft
	ActionCursorRight

	// Activity
	ActionConfirm  // pick the cell or target under the cursor
	ActionTypeChar // enter a character in a character grid
	ActionErase    // clear the character under the cursor
	ActionToggleDirection

	// Meta / UI
	ActionHint
	ActionRestart
	ActionQuit
	ActionDumpBoard
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Char is only set for ActionTypeChar.
type Intent struct {
	Action Action
	Char   rune
}

// PointerKind is the phase of a pointer gesture
type PointerKind int

const (
	PointerNone PointerKind = iota
	PointerDown
	PointerMove
	PointerUp
	PointerCancel
)

// String returns the pointer phase name
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "none"
	}
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Keyboard sources fill Code (e.g. "arrow_up", "enter", "a"); pointer sources
// fill Pointer and, when the device knows it, Point.
type RawInput struct {
	Device    Device
	Code      string
	Pointer   PointerKind
	Point     geom.Point
	HasPoint  bool
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing. Pointer
// events always carry a point here.
type DebouncedInput struct {
	Device  Device
	Code    string
	Pointer PointerKind
	Point   geom.Point
}

// IsPointer returns true for pointer phases
func (d DebouncedInput) IsPointer() bool {
	return d.Pointer != PointerNone
}

// PointerEvent is the pointer side of the 4th layer
type PointerEvent struct {
	Kind  PointerKind
	Point geom.Point
}

// Debouncer turns raw events into debounced ones. Touch devices report the end
// of a gesture without coordinates; the debouncer resolves those to the last
// point it saw for the same gesture.
type Debouncer struct {
	last    geom.Point
	hasLast bool
}

// NewDebouncer returns a debouncer with no pointer history
func NewDebouncer() *Debouncer {
	return &Debouncer{}
}

// Debounce converts a raw event. The second result is false when the event
// should be dropped: pointer events without coordinates and no history.
func (d *Debouncer) Debounce(raw RawInput) (DebouncedInput, bool) {
	ev := DebouncedInput{Device: raw.Device, Code: raw.Code, Pointer: raw.Pointer}
	if raw.Pointer == PointerNone {
		return ev, true
	}
	switch {
	case raw.HasPoint:
		ev.Point = raw.Point
	case d.hasLast:
		ev.Point = d.last
	default:
		return ev, false
	}
	d.last, d.hasLast = ev.Point, true
	if raw.Pointer == PointerUp || raw.Pointer == PointerCancel {
		d.hasLast = false
	}
	return ev, true
}

// NewDebouncedInput converts a raw event without pointer history.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	ev, _ := NewDebouncer().Debounce(raw)
	return ev
}

// ToPointerEvent extracts the pointer event of a debounced input
func ToPointerEvent(ev DebouncedInput) (PointerEvent, bool) {
	if !ev.IsPointer() {
		return PointerEvent{}, false
	}
	return PointerEvent{Kind: ev.Pointer, Point: ev.Point}, true
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Cursor movement (arrows, Vim)
	"arrow_up":    ActionCursorUp,
	"k":           ActionCursorUp,
	"arrow_down":  ActionCursorDown,
	"j":           ActionCursorDown,
	"arrow_left":  ActionCursorLeft,
	"h":           ActionCursorLeft,
	"arrow_right": ActionCursorRight,
	"l":           ActionCursorRight,

	// Picking
	"enter": ActionConfirm,
	"space": ActionConfirm,

	// Character grid editing
	"backspace": ActionErase,
	"delete":    ActionErase,
	"tab":       ActionToggleDirection,

	// Help / hint
	"?":    ActionHint,
	"hint": ActionHint,

	"f5":      ActionRestart,
	"restart": ActionRestart,

	// Developer
	"f12": ActionDumpBoard,
	"!":   ActionDumpBoard,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// reserved codes are never removed or rebound
var reserved = map[string]bool{
	"arrow_up": true, "arrow_down": true, "arrow_left": true, "arrow_right": true,
	"enter": true, "escape": true,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// MapToTextIntent is MapToIntent for character entry: single printable
// characters become ActionTypeChar instead of their bindings, while named
// keys keep working.
func MapToTextIntent(ev DebouncedInput) Intent {
	if utf8.RuneCountInString(ev.Code) == 1 {
		r, _ := utf8.DecodeRuneInString(ev.Code)
		if r > ' ' && r != utf8.RuneError && r != '?' {
			return Intent{Action: ActionTypeChar, Char: r}
		}
	}
	return MapToIntent(ev)
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionCursorUp:
		return "Cursor Up"
	case ActionCursorDown:
		return "Cursor Down"
	case ActionCursorLeft:
		return "Cursor Left"
	case ActionCursorRight:
		return "Cursor Right"
	case ActionConfirm:
		return "Pick"
	case ActionTypeChar:
		return "Type"
	case ActionErase:
		return "Erase"
	case ActionToggleDirection:
		return "Toggle Direction"
	case ActionHint:
		return "Hint"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionDumpBoard:
		return "Dump Board"
	default:
		return "None"
	}
}

// ParseAction maps a name such as "hint" or "cursor_up" to its action. Names
// are ActionName values, case-insensitive, with underscores for spaces.
func ParseAction(name string) (Action, bool) {
	want := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", " "))
	for a := ActionCursorUp; a <= ActionDumpBoard; a++ {
		if strings.ToLower(ActionName(a)) == want {
			return a, true
		}
	}
	return ActionNone, false
}

// Actions returns every bindable action in menu order
func Actions() []Action {
	var out []Action
	for a := ActionCursorUp; a <= ActionDumpBoard; a++ {
		if a != ActionTypeChar {
			out = append(out, a)
		}
	}
	return out
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help screens don't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all non-reserved bindings for the given action
// with a single code.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}
