// Package core provides small geometry helpers shared by the view code and
// the terminal front end. It has no external dependencies.
package core

// Rect is an axis-aligned screen area in pixels.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Div scales every coordinate down by d. Divisors below 2 return r unchanged.
func (r Rect) Div(d int) Rect {
	if d <= 1 {
		return r
	}
	return Rect{X: r.X / d, Y: r.Y / d, W: r.W / d, H: r.H / d}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
