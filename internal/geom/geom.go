// Package geom holds the small amount of 2D geometry shared by the main grid
// and the footer strip.
package geom

// Point is a cursor position in container coordinates.
type Point struct {
	X float64
	Y float64
}

// Pt builds a Point from integer cell coordinates.
func Pt(x, y int) Point {
	return Point{X: float64(x), Y: float64(y)}
}

// Rect is an axis-aligned rectangle. X/Y is the top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// R builds a Rect from integer cell coordinates.
func R(x, y, w, h int) Rect {
	return Rect{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// MidY returns the vertical center of r.
func (r Rect) MidY() float64 {
	return r.Y + r.H/2
}

// TopHalf returns the upper half of r.
func (r Rect) TopHalf() Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H / 2}
}

// BottomHalf returns the lower half of r.
func (r Rect) BottomHalf() Rect {
	return Rect{X: r.X, Y: r.Y + r.H/2, W: r.W, H: r.H / 2}
}
