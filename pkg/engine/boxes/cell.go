// Package boxes provides the cells and grids that activities are played on.
// A cell is a fixed slot; the content it shows can travel between slots
// (shuffling, swapping) while its location never changes.
package boxes

import (
	"boxplay/pkg/engine/content"
	"boxplay/pkg/engine/geom"
)

// Solved is the pair id of a cell that has been matched or placed
const Solved = -1

// ContentPlayer plays the media attached to a content unit. It reports
// whether something was actually played.
type ContentPlayer interface {
	PlayContent(u *content.Unit, c *Cell) bool
}

// Cell represents a single addressable slot in a grid
type Cell struct {
	// LocationID is the slot index in the owning grid; it never changes
	LocationID int

	// OrderID is the slot this cell's content belongs at, -1 if not applicable
	OrderID int

	// PairID links cells that must be matched together; Solved once matched
	PairID int

	content    *content.Unit
	altContent *content.Unit

	alternate bool
	active    bool
	inverted  bool

	bounds geom.Rect
}

// NewCell creates an empty, inactive cell at the given location
func NewCell(locationID int, bounds geom.Rect) *Cell {
	return &Cell{
		LocationID: locationID,
		OrderID:    locationID,
		bounds:     bounds,
	}
}

// Bounds returns the cell rectangle in surface coordinates
func (c *Cell) Bounds() geom.Rect {
	return c.bounds
}

// SetBounds moves/resizes the cell
func (c *Cell) SetBounds(r geom.Rect) {
	c.bounds = r
}

// Contains reports whether p falls inside the cell
func (c *Cell) Contains(p geom.Point) bool {
	return c != nil && c.bounds.Contains(p)
}

// Content returns the primary content
func (c *Cell) Content() *content.Unit {
	return c.content
}

// AltContent returns the secondary content, or nil
func (c *Cell) AltContent() *content.Unit {
	return c.altContent
}

// CurrentContent returns the content being displayed right now
func (c *Cell) CurrentContent() *content.Unit {
	if c.alternate {
		return c.altContent
	}
	return c.content
}

// SetContent assigns the primary content. A nil unit clears the cell.
func (c *Cell) SetContent(u *content.Unit) {
	if u == nil {
		c.Clear()
		return
	}
	c.content = u
	c.active = true
}

// SetAltContent assigns the secondary content
func (c *Cell) SetAltContent(u *content.Unit) {
	c.altContent = u
}

// SwitchToAlt shows the alternate content. Returns false when there is
// nothing to switch to or the cell already shows it.
func (c *Cell) SwitchToAlt() bool {
	if c.alternate || c.altContent.IsEmpty() {
		return false
	}
	c.alternate = true
	return true
}

// IsAlternate returns true if the alternate content is showing
func (c *Cell) IsAlternate() bool {
	return c.alternate
}

// SetAlternate selects which content is current
func (c *Cell) SetAlternate(v bool) {
	c.alternate = v
}

// IsActive returns true if the cell is face up and accepts gestures
func (c *Cell) IsActive() bool {
	return c.active
}

// SetActive shows (true) or hides (false) the cell content
func (c *Cell) SetActive(v bool) {
	c.active = v
}

// IsInverted returns the display-only inversion flag
func (c *Cell) IsInverted() bool {
	return c.inverted
}

// SetInverted sets the display-only inversion flag
func (c *Cell) SetInverted(v bool) {
	c.inverted = v
}

// IsSolved returns true once the cell has been matched
func (c *Cell) IsSolved() bool {
	return c.PairID == Solved
}

// MarkSolved moves the cell to its terminal state
func (c *Cell) MarkSolved() {
	c.PairID = Solved
}

// AssignPairID sets the pair id unless the cell is already solved.
// Returns false when the assignment was refused.
func (c *Cell) AssignPairID(id int) bool {
	if c.IsSolved() {
		return false
	}
	c.PairID = id
	return true
}

// SetDefaultPairID pairs the cell by its content id
func (c *Cell) SetDefaultPairID() {
	if c.content == nil {
		c.PairID = Solved
		return
	}
	c.PairID = c.content.ID
}

// IsAtPlace returns true if the content sits in the slot it belongs to
func (c *Cell) IsAtPlace() bool {
	return c.OrderID == c.LocationID
}

// IsEquivalent compares the primary contents of two cells
func (c *Cell) IsEquivalent(other *Cell, caseSensitive bool) bool {
	if c == nil || other == nil {
		return false
	}
	return content.IsEquivalent(c.content, other.content, caseSensitive)
}

// IsCurrentContentEquivalent compares what both cells currently display
func (c *Cell) IsCurrentContentEquivalent(other *Cell, caseSensitive bool) bool {
	if c == nil || other == nil {
		return false
	}
	return content.IsEquivalent(c.CurrentContent(), other.CurrentContent(), caseSensitive)
}

// ExchangeContent swaps content and pairing metadata with another cell.
// Locations and bounds stay where they are.
func (c *Cell) ExchangeContent(other *Cell) {
	if c == nil || other == nil || c == other {
		return
	}
	c.content, other.content = other.content, c.content
	c.altContent, other.altContent = other.altContent, c.altContent
	c.OrderID, other.OrderID = other.OrderID, c.OrderID
	c.PairID, other.PairID = other.PairID, c.PairID
	c.alternate, other.alternate = other.alternate, c.alternate
	c.active, other.active = other.active, c.active
	c.inverted, other.inverted = other.inverted, c.inverted
}

// ExchangeLocation swaps position and location id with another cell,
// keeping each cell's content. Used by layouts where cells move on screen.
func (c *Cell) ExchangeLocation(other *Cell) {
	if c == nil || other == nil || c == other {
		return
	}
	c.bounds, other.bounds = other.bounds, c.bounds
	c.LocationID, other.LocationID = other.LocationID, c.LocationID
}

// PlayMedia asks the player to play the current content.
// Returns false when there is nothing playable.
func (c *Cell) PlayMedia(p ContentPlayer) bool {
	if p == nil {
		return false
	}
	u := c.CurrentContent()
	if !u.HasMedia() {
		return false
	}
	return p.PlayContent(u, c)
}

// Description returns the primary content description
func (c *Cell) Description() string {
	if c == nil || c.content == nil {
		return ""
	}
	return c.content.Description()
}

// String implements fmt.Stringer
func (c *Cell) String() string {
	return c.CurrentContent().String()
}

// Clear removes all content and hides the cell
func (c *Cell) Clear() {
	c.content = nil
	c.altContent = nil
	c.OrderID = -1
	c.alternate = false
	c.active = false
}
