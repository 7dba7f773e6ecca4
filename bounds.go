package adventure

import "math"

// Bounds is an axis-aligned box in model space.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// unitBounds is the fallback for empty geometry.
var unitBounds = Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}

// Width returns the horizontal extent, never less than epsilon.
func (b Bounds) Width() float64 { return floor(b.MaxX - b.MinX) }

// Height returns the vertical extent, never less than epsilon.
func (b Bounds) Height() float64 { return floor(b.MaxY - b.MinY) }

// MidX returns the horizontal centre.
func (b Bounds) MidX() float64 { return (b.MinX + b.MaxX) / 2 }

// BoundsOf scans every point of every frame. Geometry with no points yields
// the unit box; an axis with (near) zero extent is widened to one unit from
// its minimum so it can safely divide.
func BoundsOf(anim *Animation) Bounds {
	b := Bounds{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	seen := false
	grow := func(p Point) {
		if !p.IsFinite() {
			return
		}
		seen = true
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	for _, frame := range anim.Frames() {
		for _, d := range frame {
			switch d := d.(type) {
			case Segment:
				grow(d.Start)
				grow(d.End)
			case Fill:
				for _, p := range d.points {
					grow(p)
				}
			}
		}
	}
	if !seen {
		return unitBounds
	}
	if b.MaxX-b.MinX <= epsilon {
		b.MaxX = b.MinX + 1
	}
	if b.MaxY-b.MinY <= epsilon {
		b.MaxY = b.MinY + 1
	}
	return b
}
