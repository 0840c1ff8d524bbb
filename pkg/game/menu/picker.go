package menu

import (
	"io"

	"github.com/leonelquinteros/gotext"

	"boxplay/pkg/game/activity"
	"boxplay/pkg/game/puzzles"
)

// KindItem is a heading grouping the puzzles of one activity kind
type KindItem struct {
	Kind activity.Kind
}

// GetLabel returns the display label for this menu item.
func (k *KindItem) GetLabel() string {
	return k.Kind.String()
}

// IsSelectable returns false: headings only group puzzles
func (k *KindItem) IsSelectable() bool {
	return false
}

// GetHelpText returns help text for this menu item.
func (k *KindItem) GetHelpText() string {
	return ""
}

// PuzzleItem represents a playable puzzle in the picker.
type PuzzleItem struct {
	Puzzle puzzles.Puzzle
}

// GetLabel returns the display label for this menu item.
func (p *PuzzleItem) GetLabel() string {
	return "  " + p.Puzzle.Name
}

// IsSelectable returns whether this item can be selected.
func (p *PuzzleItem) IsSelectable() bool {
	return true
}

// GetHelpText returns the puzzle title
func (p *PuzzleItem) GetHelpText() string {
	return p.Puzzle.Title
}

// PuzzlePicker handles the puzzle selection menu.
type PuzzlePicker struct {
	chosen puzzles.Puzzle
	picked bool
}

// GetTitle returns the menu title.
func (h *PuzzlePicker) GetTitle() string {
	return "boxplay"
}

// GetInstructions returns the menu instructions.
func (h *PuzzlePicker) GetInstructions(selected MenuItem) string {
	return "ACTION{arrows}: " + gotext.Get("HELP_MOVE") + "  ACTION{enter}: " + gotext.Get("HELP_PICK") + "  ACTION{escape}: " + gotext.Get("HELP_QUIT")
}

// OnSelect is called when an item is selected.
func (h *PuzzlePicker) OnSelect(item MenuItem, index int) {}

// OnActivate closes the menu with the puzzle under the cursor.
func (h *PuzzlePicker) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	if p, ok := item.(*PuzzleItem); ok {
		h.chosen = p.Puzzle
		h.picked = true
		return true, ""
	}
	return false, ""
}

// OnExit is called when the menu is exited.
func (h *PuzzlePicker) OnExit() {}

// GetMenuItems lists every built-in puzzle under a heading per kind
func (h *PuzzlePicker) GetMenuItems() []MenuItem {
	var items []MenuItem
	for _, k := range activity.Kinds() {
		ps := puzzles.ForKind(k)
		if len(ps) == 0 {
			continue
		}
		items = append(items, &KindItem{Kind: k})
		for _, p := range ps {
			items = append(items, &PuzzleItem{Puzzle: p})
		}
	}
	return items
}

// PickPuzzle runs the picker. The second result is false when the player
// quit without choosing.
func PickPuzzle(s Screen, out io.Writer) (puzzles.Puzzle, bool) {
	handler := &PuzzlePicker{}
	RunMenu(s, out, handler.GetMenuItems(), handler)
	return handler.chosen, handler.picked
}
