// Package geom provides the small set of 2D primitives shared by grids,
// gestures and renderers.
package geom

import "math"

// Point is a position in surface coordinates (pixels).
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{x, y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// DistanceTo returns the euclidean distance between p and q
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Size is a width/height pair
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle
type Rect struct {
	Pos Point
	Dim Size
}

// R builds a Rect from its position and dimensions
func R(x, y, w, h float64) Rect {
	return Rect{Pos: Point{X: x, Y: y}, Dim: Size{Width: w, Height: h}}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive so adjacent cells never both claim a point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Pos.X && p.X < r.Pos.X+r.Dim.Width &&
		p.Y >= r.Pos.Y && p.Y < r.Pos.Y+r.Dim.Height
}

// Center returns the middle point of r
func (r Rect) Center() Point {
	return Point{X: r.Pos.X + r.Dim.Width/2, Y: r.Pos.Y + r.Dim.Height/2}
}

// Grow returns r enlarged by dx/dy on every side
func (r Rect) Grow(dx, dy float64) Rect {
	return R(r.Pos.X-dx, r.Pos.Y-dy, r.Dim.Width+2*dx, r.Dim.Height+2*dy)
}

// IsEmpty reports whether r has no area
func (r Rect) IsEmpty() bool {
	return r.Dim.Width <= 0 || r.Dim.Height <= 0
}
