// Package core provides fundamental types and utilities for the jump platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "cmp"

// Rect is an integer cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w x h rectangle centered in an outerW x outerH area.
func CenteredRect(outerW, outerH, w, h int) Rect {
	return Rect{X: (outerW - w) / 2, Y: (outerH - h) / 2, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world coordinates.
// Y grows downward, so Top < Bottom for any box with area.
type Box struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{
		Left:   b.Left + dx,
		Top:    b.Top + dy,
		Right:  b.Right + dx,
		Bottom: b.Bottom + dy,
	}
}

// Intersects reports whether two boxes overlap.
// Inequalities are strict: boxes that only share an edge do not intersect.
func (b Box) Intersects(o Box) bool {
	return b.Left < o.Right && b.Right > o.Left && b.Top < o.Bottom && b.Bottom > o.Top
}

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
