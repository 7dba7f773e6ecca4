package adventure

import "math"

// DefaultFPS is the engine tick rate used when a configuration asks for zero.
const DefaultFPS = 24

// epsilon floors every denominator in the geometry and projection math.
const epsilon = 1e-6

// Point is an immutable 2D coordinate. Depending on context it lives in
// model space, world space (X lateral, Y depth) or screen space (Y up).
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Size is the desired physical extent of an entity in world units.
type Size struct {
	Height, Width, Depth float64
}

// Rect is an axis-aligned rectangle. Screen-space rectangles have their
// origin at the bottom-left, with Y increasing upward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Expand grows the rectangle on every side by frac of its width and height.
func (r Rect) Expand(frac float64) Rect {
	padX := frac * r.Width
	padY := frac * r.Height
	return Rect{
		X:      r.X - padX,
		Y:      r.Y - padY,
		Width:  r.Width + 2*padX,
		Height: r.Height + 2*padY,
	}
}

// Centre returns the midpoint of the rectangle.
func (r Rect) Centre() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// floor returns max(v, epsilon).
func floor(v float64) float64 {
	if v < epsilon {
		return epsilon
	}
	return v
}
