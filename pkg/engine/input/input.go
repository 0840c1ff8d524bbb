package input

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the player presses Ctrl+C in raw mode
var ErrInterrupted = errors.New("input interrupted")

// Reader reads keys and lines from a terminal or any byte stream. When the
// source is a terminal, key reads switch it to raw mode for the duration of
// the read so arrow keys arrive without Enter.
type Reader struct {
	src io.Reader
	buf *bufio.Reader
	fd  int
	tty bool
}

// NewReader wraps src. An *os.File attached to a terminal enables raw mode.
func NewReader(src io.Reader) *Reader {
	r := &Reader{src: src, buf: bufio.NewReader(src), fd: -1}
	if f, ok := src.(*os.File); ok {
		r.fd = int(f.Fd())
		r.tty = term.IsTerminal(r.fd)
	}
	return r
}

// NewStdinReader reads from os.Stdin
func NewStdinReader() *Reader {
	return NewReader(os.Stdin)
}

// ReadLine reads a line, without the trailing newline
func (r *Reader) ReadLine() (string, error) {
	line, err := r.buf.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadRaw reads one key and wraps it as a terminal RawInput
func (r *Reader) ReadRaw() (RawInput, error) {
	code, err := r.ReadKey()
	if err != nil {
		return RawInput{}, err
	}
	return RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}, nil
}

// ReadKey reads a single key press and returns its code: "arrow_up",
// "enter", "backspace", "escape", "tab", "space" or the typed character.
func (r *Reader) ReadKey() (string, error) {
	if r.tty {
		oldState, err := term.MakeRaw(r.fd)
		if err != nil {
			return "", err
		}
		defer term.Restore(r.fd, oldState)
	}

	b, err := r.buf.ReadByte()
	if err != nil {
		return "", err
	}
	switch b {
	case 3:
		return "", ErrInterrupted
	case '\r', '\n':
		return "enter", nil
	case '\t':
		return "tab", nil
	case ' ':
		return "space", nil
	case 127, 8:
		return "backspace", nil
	case 0x1b:
		return r.readEscape(), nil
	}

	if b < 0x80 {
		return string(rune(b)), nil
	}
	// multi-byte UTF-8 character
	if err := r.buf.UnreadByte(); err != nil {
		return "", err
	}
	ch, _, err := r.buf.ReadRune()
	if err != nil {
		return "", err
	}
	return string(ch), nil
}

// readEscape decodes CSI (ESC [) and SS3 (ESC O) sequences. A lone escape is
// reported as "escape".
func (r *Reader) readEscape() string {
	if r.buf.Buffered() == 0 && r.tty {
		return "escape"
	}
	b2, err := r.buf.ReadByte()
	if err != nil {
		return "escape"
	}
	if b2 != '[' && b2 != 'O' {
		_ = r.buf.UnreadByte()
		return "escape"
	}
	b3, err := r.buf.ReadByte()
	if err != nil {
		return "escape"
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	case '3':
		// ESC [ 3 ~
		if next, err := r.buf.ReadByte(); err == nil && next != '~' {
			_ = r.buf.UnreadByte()
		}
		return "delete"
	case '1':
		// ESC [ 1 5 ~
		if d, err := r.buf.ReadByte(); err == nil && d == '5' {
			_, _ = r.buf.ReadByte()
			return "f5"
		}
	}
	return ""
}
