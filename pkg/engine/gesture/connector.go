// Package gesture tracks a single in-progress pointer gesture on an activity
// surface.
package gesture

import (
	"boxplay/pkg/engine/boxes"
	"boxplay/pkg/engine/geom"
)

// DefaultTrembleThreshold is the release distance in pixels below which a drag
// counts as a click
const DefaultTrembleThreshold = 3.0

// Connector holds the state of the current gesture. At most one gesture is
// active at a time; Begin while active re-anchors it.
type Connector struct {
	active bool
	origin geom.Point
	dest   geom.Point
	cell   *boxes.Cell
}

// NewConnector returns an idle connector
func NewConnector() *Connector {
	return &Connector{}
}

// Begin anchors a new gesture at p. cell may be nil.
func (c *Connector) Begin(p geom.Point, cell *boxes.Cell) {
	c.active = true
	c.origin = p
	c.dest = p
	c.cell = cell
}

// MoveTo updates the destination of an active gesture
func (c *Connector) MoveTo(p geom.Point) {
	if c.active {
		c.dest = p
	}
}

// End finishes the gesture. It returns true only for the call that actually
// deactivated it.
func (c *Connector) End() bool {
	if !c.active {
		return false
	}
	c.active = false
	c.cell = nil
	return true
}

// Active returns true while a gesture is in progress
func (c *Connector) Active() bool {
	return c.active
}

// Origin returns the point the gesture started at
func (c *Connector) Origin() geom.Point {
	return c.origin
}

// Dest returns the last known pointer position
func (c *Connector) Dest() geom.Point {
	return c.dest
}

// Cell returns the cell the gesture is anchored to, if any
func (c *Connector) Cell() *boxes.Cell {
	return c.cell
}

// IsTremble reports whether releasing at p is close enough to the origin to
// be a click rather than a drag
func (c *Connector) IsTremble(p geom.Point, threshold float64) bool {
	return c.origin.DistanceTo(p) <= threshold
}
