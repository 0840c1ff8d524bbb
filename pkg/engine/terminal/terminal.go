// Package terminal measures the output terminal and lays text out in it
package terminal

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size is a terminal size in character cells
type Size struct {
	Width  int
	Height int
}

// SizeOf returns the size of the terminal behind fd, or the defaults when fd
// is not a terminal
func SizeOf(fd int) Size {
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return Size{Width: DefaultWidth, Height: DefaultHeight}
	}
	return Size{Width: width, Height: height}
}

// Stdout returns the size of the terminal standard output writes to
func Stdout() Size {
	return SizeOf(int(os.Stdout.Fd()))
}

// VisibleWidth counts the printed cells of s, ignoring color codes
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(color.ClearCode(s))
}

// Indent returns the left padding that centers content cells in width
func Indent(width, content int) int {
	return max(0, (width-content)/2)
}

// Center pads s so it is centered in width
func Center(s string, width int) string {
	return strings.Repeat(" ", Indent(width, VisibleWidth(s))) + s
}

// Rule draws a horizontal line spanning width with label in the middle
func Rule(label string, width int) string {
	if label == "" {
		return strings.Repeat("─", max(1, width))
	}
	label = " " + label + " "
	n := utf8.RuneCountInString(label)
	side := max(1, (width-n)/2)
	return strings.Repeat("─", side) + label + strings.Repeat("─", max(1, width-side-n))
}
