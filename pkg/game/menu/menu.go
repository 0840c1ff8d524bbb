// Package menu provides a generic menu system and the puzzle picker built on it.
package menu

import (
	"fmt"
	"io"

	engineinput "boxplay/pkg/engine/input"
	"boxplay/pkg/game/renderer"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler handles menu item selection and activation.
type MenuHandler interface {
	// OnSelect is called when an item is selected (navigated to).
	OnSelect(item MenuItem, index int)

	// OnActivate is called when an item is activated (e.g., Enter pressed).
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int) (shouldClose bool, helpText string)
	// OnExit is called when the menu is exited.
	OnExit()
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the menu instructions.
	GetInstructions(selected MenuItem) string
}

// Screen is the part of a renderer a menu needs
type Screen interface {
	Clear()
	GetInput() engineinput.Intent
	StyleText(text string, style renderer.TextStyle) string
	FormatText(msg string, args ...any) string
}

// RunMenu runs a generic menu with the given items and handler until an
// item closes it or the player quits.
func RunMenu(s Screen, out io.Writer, items []MenuItem, handler MenuHandler) {
	selected := -1
	helpText := ""

	// Find first selectable item
	for i, item := range items {
		if item.IsSelectable() {
			selected = i
			break
		}
	}
	if selected < 0 {
		handler.OnExit()
		return
	}
	handler.OnSelect(items[selected], selected)

	for {
		s.Clear()
		renderMenu(s, out, items, selected, helpText, handler)

		intent := s.GetInput()
		switch intent.Action {
		case engineinput.ActionCursorUp:
			selected = step(items, selected, -1)
			helpText = ""
			handler.OnSelect(items[selected], selected)
		case engineinput.ActionCursorDown:
			selected = step(items, selected, 1)
			helpText = ""
			handler.OnSelect(items[selected], selected)
		case engineinput.ActionConfirm:
			shouldClose, newHelpText := handler.OnActivate(items[selected], selected)
			helpText = newHelpText
			if shouldClose {
				handler.OnExit()
				return
			}
		case engineinput.ActionQuit:
			handler.OnExit()
			return
		default:
			// Ignore other actions while in menu
		}
	}
}

// step returns the next selectable item in direction dir, wrapping around
func step(items []MenuItem, selected, dir int) int {
	n := len(items)
	for i := 1; i < n; i++ {
		next := ((selected+dir*i)%n + n) % n
		if items[next].IsSelectable() {
			return next
		}
	}
	return selected
}

func renderMenu(s Screen, out io.Writer, items []MenuItem, selected int, helpText string, handler MenuHandler) {
	fmt.Fprintln(out, s.StyleText(handler.GetTitle(), renderer.StyleTitle))
	fmt.Fprintln(out)

	for i, item := range items {
		label := item.GetLabel()
		switch {
		case !item.IsSelectable():
			fmt.Fprintln(out, s.StyleText(label, renderer.StyleSubtle))
		case i == selected:
			fmt.Fprintln(out, "> "+s.StyleText(label, renderer.StyleSelected))
		default:
			fmt.Fprintln(out, "  "+label)
		}
	}
	fmt.Fprintln(out)

	if text := items[selected].GetHelpText(); text != "" {
		fmt.Fprintln(out, s.StyleText(text, renderer.StyleSubtle))
	}
	if helpText != "" {
		fmt.Fprintln(out, helpText)
	}
	if instructions := handler.GetInstructions(items[selected]); instructions != "" {
		fmt.Fprintln(out, s.FormatText(instructions))
	}
}
