package assets

import (
	"math"

	"github.com/phanxgames/adventure"
)

const (
	// GuestSpeed is how fast guests walk into the park, in world units per second.
	GuestSpeed = 1.0
	// GuestLifetime is how long a guest stays before leaving, in seconds.
	GuestLifetime = 30.0
	guestFPS      = 4
)

var guestShirts = []string{"r", "b", "m", "c", "orange", "purple"}

var guestAnims = func() []*adventure.Animation {
	anims := make([]*adventure.Animation, len(guestShirts))
	for i, shirt := range guestShirts {
		anims[i] = guestAnimation(shirt)
	}
	return anims
}()

func guestAnimation(shirt string) *adventure.Animation {
	limb := adventure.MustLineStyle("k", 1.5)
	body := adventure.MustLineStyle(shirt, 3)

	head := make([]float64, 0, 16)
	for i := 0; i < 8; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / 8)
		head = append(head, 0.5+0.1*cos, 0.85+0.1*sin)
	}
	torso := concat(
		fill("peachpuff", head...),
		polyline(body, 0.5, 0.35, 0.5, 0.75),
	)

	stride := concat(torso,
		polyline(limb, 0.35, 0, 0.5, 0.35, 0.65, 0),
		polyline(limb, 0.3, 0.45, 0.5, 0.65, 0.7, 0.45),
	)
	passing := concat(torso,
		polyline(limb, 0.45, 0, 0.5, 0.35, 0.55, 0),
		polyline(limb, 0.42, 0.42, 0.5, 0.65, 0.58, 0.42),
	)
	return adventure.NewAnimation(stride, passing)
}

// guest walks forward until its lifetime runs out.
type guest struct {
	age float64
}

func (g *guest) Update(e *adventure.Entity, c adventure.Clock) {
	dt := c.Delta()
	if !(dt > 0) {
		return
	}
	e.Position.Y += GuestSpeed * dt
	g.age += dt
	if g.age >= GuestLifetime {
		e.Dead = true
	}
}

// guestCount cycles shirt colors across guests.
var guestCount int

// NewGuest creates a walking stick-figure guest at pos. It suits
// adventure.GuestFactory.
func NewGuest(pos adventure.Point) *adventure.Entity {
	anim := guestAnims[guestCount%len(guestAnims)]
	guestCount++
	e := adventure.NewEntity("guest", anim, pos, adventure.Size{Height: 1.8, Width: 0.6})
	e.FPS = guestFPS
	e.Behavior = &guest{}
	return e
}
