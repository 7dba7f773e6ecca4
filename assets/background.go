package assets

import (
	"fmt"
	"math"

	"github.com/phanxgames/adventure"
)

// Background kinds accepted by NewBackground.
const (
	BackgroundDay   = "Day"
	BackgroundNight = "Night"
)

var dayAnim = adventure.NewAnimation(concat(
	fill("b", 0, 0.5, 1, 0.5, 1, 1, 0, 1),
	fill("g", 0, 0, 1, 0, 1, 0.5, 0, 0.5),
))

var nightAnim = adventure.NewAnimation(concat(
	fill("midnightblue", 0, 0.5, 1, 0.5, 1, 1, 0, 1),
	fill("darkgreen", 0, 0, 1, 0, 1, 0.5, 0, 0.5),
	moon(0.82, 0.85, 0.04, 12),
))

// moon returns a regular n-gon approximating a disc.
func moon(cx, cy, r float64, n int) adventure.Frame {
	xy := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		xy = append(xy, cx+r*cos, cy+r*sin)
	}
	return fill("lightyellow", xy...)
}

func newBackground(name string, anim *adventure.Animation) *adventure.Entity {
	return adventure.NewEntity(name, anim, adventure.Point{}, adventure.Size{Height: 1, Width: 1, Depth: 1})
}

// NewDay returns a blue sky over green grass, laid out in the unit square.
func NewDay() *adventure.Entity { return newBackground(BackgroundDay, dayAnim) }

// NewNight returns a dark sky with a moon over dark grass.
func NewNight() *adventure.Entity { return newBackground(BackgroundNight, nightAnim) }

// NewBackground builds the named background.
func NewBackground(kind string) (*adventure.Entity, error) {
	switch kind {
	case BackgroundDay:
		return NewDay(), nil
	case BackgroundNight:
		return NewNight(), nil
	default:
		return nil, fmt.Errorf("unknown background %q", kind)
	}
}
