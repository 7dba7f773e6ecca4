package assets

import (
	"math"

	"github.com/phanxgames/adventure"
)

// shipPivot is the mast head the hull swings from.
var shipPivot = adventure.Point{X: 0.5313, Y: 0.7204}

const (
	shipAmplitude = 20 * math.Pi / 180
	shipPeriod    = 2.0
	shipPhase     = math.Pi / 6
	// shipSettle is how fast the swing amplitude follows the run state, per second.
	shipSettle = 0.5
)

var shipAnim = adventure.NewAnimation(concat(shipMastFrame, shipBase, shipHull, shipHullTrim, shipCore))

var shipSwinging = concat(shipHull, shipHullTrim, shipCore)

type pirateShip struct {
	state *Ride
	swing float64 // seconds of swing so far
	amp   float64 // fraction of shipAmplitude
	angle float64
}

func (s *pirateShip) ride() *Ride { return s.state }

func (s *pirateShip) Update(_ *adventure.Entity, c adventure.Clock) {
	dt := c.Delta()
	if !(dt > 0) {
		dt = 0
	}
	s.state.advance(dt)
	if s.state.Running() {
		s.amp = math.Min(1, s.amp+shipSettle*dt)
	} else {
		s.amp = math.Max(0, s.amp-shipSettle*dt)
	}
	if s.amp > 0 {
		s.swing += dt
	} else {
		s.swing = 0
	}
	s.angle = s.amp * shipAmplitude * math.Sin(2*math.Pi*s.swing/shipPeriod+shipPhase)
}

func (s *pirateShip) Frame(_ *adventure.Entity, _, _ int) adventure.Frame {
	return concat(shipMastFrame, shipBase, adventure.RotateFrame(shipSwinging, s.angle, shipPivot))
}

// NewPirateShip builds a pirate ship whose hull swings ±20° every two
// seconds while the ride runs.
func NewPirateShip(pos adventure.Point, capacity int, rideTime float64) *adventure.Entity {
	e := adventure.NewEntity(KindPirateShip, shipAnim, pos,
		adventure.Size{Height: 20, Width: 10, Depth: 5})
	e.Behavior = &pirateShip{state: newRide(KindPirateShip, capacity, rideTime), amp: 1}
	return e
}
