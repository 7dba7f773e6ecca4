package assets

import "github.com/phanxgames/adventure"

// hubPivot is the axle centre in model space.
var hubPivot = adventure.Point{X: 0.4635, Y: 0.5438}

// wheelSpeed is the hub's angular speed in radians per second.
const wheelSpeed = 0.25

var ferrisWheelAnim = adventure.NewAnimation(concat(wheelBase, wheelHub))

type ferrisWheel struct {
	state *Ride
	angle float64
}

func (w *ferrisWheel) ride() *Ride { return w.state }

func (w *ferrisWheel) Update(_ *adventure.Entity, c adventure.Clock) {
	dt := c.Delta()
	w.state.advance(dt)
	if w.state.Running() && dt > 0 {
		w.angle -= wheelSpeed * dt
	}
}

func (w *ferrisWheel) Frame(_ *adventure.Entity, _, _ int) adventure.Frame {
	return concat(wheelBase, adventure.RotateFrame(wheelHub, w.angle, hubPivot))
}

// NewFerrisWheel builds a ferris wheel whose hub turns clockwise while the
// ride runs.
func NewFerrisWheel(pos adventure.Point, capacity int, rideTime float64) *adventure.Entity {
	e := adventure.NewEntity(KindFerrisWheel, ferrisWheelAnim, pos,
		adventure.Size{Height: 12, Width: 10, Depth: 3})
	e.FPS = 12
	e.Behavior = &ferrisWheel{state: newRide(KindFerrisWheel, capacity, rideTime)}
	return e
}
