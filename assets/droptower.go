package assets

import (
	"math"

	"github.com/phanxgames/adventure"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TowerState is the phase of a drop tower's cycle.
type TowerState uint8

const (
	TowerStopped TowerState = iota
	TowerAscending
	TowerDescending
	TowerWaitingBottom
)

func (s TowerState) String() string {
	switch s {
	case TowerStopped:
		return "stopped"
	case TowerAscending:
		return "ascending"
	case TowerDescending:
		return "descending"
	case TowerWaitingBottom:
		return "waiting_bottom"
	default:
		return "unknown"
	}
}

const (
	towerSeatMin     = -0.5
	towerSeatMax     = 0.0
	towerAscent      = 3.0 // seconds from bottom to top
	towerGravity     = -4.0
	towerMaxFall     = -2.5
	towerBrakeHeight = 0.25
	towerWaitBottom  = 1.0
)

var towerStatic = concat(towerFrame, towerBaseUpper, towerBaseLower,
	towerBannerEnds, towerBannerBase, towerBannerStripes)

var towerSeat = concat(towerSeatFrame, towerSeatBacks, towerSeatCage)

var towerAnim = adventure.NewAnimation(concat(towerStatic, towerSeat))

// DropTower is the Behavior of a drop tower entity. The seat is eased up
// the tower, falls under gravity with braking near the bottom, then waits
// before the next climb.
type DropTower struct {
	state    *Ride
	phase    TowerState
	seatY    float64
	velocity float64
	wait     float64
	climb    *gween.Tween
}

func (t *DropTower) ride() *Ride { return t.state }

// State returns the current phase.
func (t *DropTower) State() TowerState { return t.phase }

// SeatOffset returns the seat's vertical offset in model units, between
// -0.5 (bottom) and 0 (top).
func (t *DropTower) SeatOffset() float64 { return t.seatY }

// Toggle starts a stopped tower from the bottom or stops a moving one in
// place.
func (t *DropTower) Toggle() {
	if t.phase == TowerStopped {
		t.startClimb()
		return
	}
	t.phase = TowerStopped
	t.velocity = 0
	t.climb = nil
}

func (t *DropTower) startClimb() {
	t.phase = TowerAscending
	t.climb = gween.New(float32(t.seatY), towerSeatMax, float32(towerAscent), ease.OutCubic)
}

func (t *DropTower) Update(_ *adventure.Entity, c adventure.Clock) {
	dt := c.Delta()
	if !(dt > 0) {
		return
	}
	t.state.advance(dt)

	switch t.phase {
	case TowerAscending:
		y, done := t.climb.Update(float32(dt))
		t.seatY = float64(y)
		if done || t.seatY >= towerSeatMax {
			t.seatY = towerSeatMax
			t.velocity = 0
			t.climb = nil
			t.phase = TowerDescending
		}

	case TowerDescending:
		t.velocity = math.Max(t.velocity+towerGravity*dt, towerMaxFall)
		t.seatY += t.velocity * dt
		if t.seatY <= towerSeatMin+towerBrakeHeight {
			dist := math.Abs(t.seatY - towerSeatMin)
			t.velocity *= math.Max(0.15, math.Min(0.95, dist*4.5))
		}
		if t.seatY <= towerSeatMin {
			t.seatY = towerSeatMin
			t.velocity = 0
			t.wait = towerWaitBottom
			t.phase = TowerWaitingBottom
		}

	case TowerWaitingBottom:
		t.wait -= dt
		if t.wait <= 0 && t.state.Running() {
			t.startClimb()
		}
	}
}

func (t *DropTower) Frame(_ *adventure.Entity, _, _ int) adventure.Frame {
	return concat(towerStatic, adventure.TranslateFrame(towerSeat, 0, t.seatY))
}

// NewDropTower builds a drop tower that starts climbing immediately.
func NewDropTower(pos adventure.Point, capacity int, rideTime float64) *adventure.Entity {
	e := adventure.NewEntity(KindDropTower, towerAnim, pos,
		adventure.Size{Height: 20, Width: 10, Depth: 5})
	t := &DropTower{
		state: newRide(KindDropTower, capacity, rideTime),
		phase: TowerStopped,
		seatY: towerSeatMin,
	}
	t.Toggle()
	e.Behavior = t
	return e
}
