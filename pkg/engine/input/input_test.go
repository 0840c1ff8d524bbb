package input

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxplay/pkg/engine/geom"
)

func TestReader_ReadKey(t *testing.T) {
	r := NewReader(strings.NewReader("a\x1b[A\x1b[D\r\x7f\tZé\x1b[3~ "))
	want := []string{"a", "arrow_up", "arrow_left", "enter", "backspace", "tab", "Z", "é", "delete", "space"}
	for _, w := range want {
		got, err := r.ReadKey()
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}
	_, err := r.ReadKey()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_CtrlC(t *testing.T) {
	r := NewReader(strings.NewReader("\x03"))
	_, err := r.ReadKey()
	assert.ErrorIs(t, err, ErrInterrupted)
}

func TestReader_ReadLine(t *testing.T) {
	r := NewReader(strings.NewReader("memory\r\nlast"))
	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "memory", line)
	line, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "last", line)
	_, err = r.ReadLine()
	assert.Error(t, err)
}

func TestDebouncer_TouchEndUsesLastPoint(t *testing.T) {
	d := NewDebouncer()

	_, ok := d.Debounce(RawInput{Device: DeviceTouch, Pointer: PointerUp})
	assert.False(t, ok, "no history yet")

	ev, ok := d.Debounce(RawInput{Device: DeviceTouch, Pointer: PointerDown, Point: geom.Pt(3, 4), HasPoint: true})
	require.True(t, ok)
	assert.Equal(t, geom.Pt(3, 4), ev.Point)

	_, _ = d.Debounce(RawInput{Device: DeviceTouch, Pointer: PointerMove, Point: geom.Pt(20, 4), HasPoint: true})
	ev, ok = d.Debounce(RawInput{Device: DeviceTouch, Pointer: PointerUp})
	require.True(t, ok)
	assert.Equal(t, geom.Pt(20, 4), ev.Point)

	pe, ok := ToPointerEvent(ev)
	require.True(t, ok)
	assert.Equal(t, PointerUp, pe.Kind)

	_, ok = d.Debounce(RawInput{Device: DeviceTouch, Pointer: PointerUp})
	assert.False(t, ok, "history cleared after release")
}

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionCursorUp},
		{"k", ActionCursorUp},
		{"enter", ActionConfirm},
		{"q", ActionQuit},
		{"f5", ActionRestart},
		{"nonsense", ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, MapToIntent(DebouncedInput{Code: tt.code}).Action)
		})
	}
}

func TestMapToTextIntent(t *testing.T) {
	in := MapToTextIntent(DebouncedInput{Code: "q"})
	assert.Equal(t, ActionTypeChar, in.Action)
	assert.Equal(t, 'q', in.Char)

	assert.Equal(t, ActionCursorLeft, MapToTextIntent(DebouncedInput{Code: "arrow_left"}).Action)
	assert.Equal(t, ActionErase, MapToTextIntent(DebouncedInput{Code: "backspace"}).Action)
	assert.Equal(t, ActionHint, MapToTextIntent(DebouncedInput{Code: "?"}).Action)
}

func TestSetSingleBinding_KeepsReserved(t *testing.T) {
	SetSingleBinding(ActionHint, "enter")
	assert.Equal(t, ActionConfirm, MapToIntent(DebouncedInput{Code: "enter"}).Action)
	assert.Equal(t, ActionNone, MapToIntent(DebouncedInput{Code: "?"}).Action)

	SetSingleBinding(ActionHint, "?")
	assert.Equal(t, ActionHint, MapToIntent(DebouncedInput{Code: "?"}).Action)
	assert.Contains(t, GetBindingsByAction()[ActionHint], "?")
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		name string
		want Action
		ok   bool
	}{
		{"hint", ActionHint, true},
		{"cursor_up", ActionCursorUp, true},
		{" Toggle Direction ", ActionToggleDirection, true},
		{"dump_board", ActionDumpBoard, true},
		{"none", ActionNone, false},
		{"fly", ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAction(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActions_SkipsTyping(t *testing.T) {
	acts := Actions()
	assert.NotContains(t, acts, ActionTypeChar)
	assert.Equal(t, ActionCursorUp, acts[0])
	assert.Equal(t, ActionDumpBoard, acts[len(acts)-1])
}
