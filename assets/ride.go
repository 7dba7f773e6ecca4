package assets

import (
	"fmt"
	"sort"

	"github.com/phanxgames/adventure"
)

// DefaultLoadTime is how long a ride stays stopped between runs, in seconds.
const DefaultLoadTime = 3.0

// Ride is the operating state shared by every ride: capacity and a
// run/load cycle. A ride runs for RideTime seconds, then stops for LoadTime
// seconds to load guests. A RideTime of zero runs forever.
type Ride struct {
	Kind string
	// Capacity is the scenario's max_capacity. It is informational: no
	// guest boards rides, so it never affects the run/load cycle.
	Capacity int
	RideTime float64
	LoadTime float64

	halted  bool
	loading bool
	phase   float64
}

func newRide(kind string, capacity int, rideTime float64) *Ride {
	return &Ride{
		Kind:     kind,
		Capacity: max(capacity, 0),
		RideTime: max(rideTime, 0),
		LoadTime: DefaultLoadTime,
	}
}

// Running reports whether the ride is in motion.
func (r *Ride) Running() bool {
	return !r.halted && !r.loading
}

// Toggle halts a running ride or resumes a halted one.
func (r *Ride) Toggle() {
	r.halted = !r.halted
}

// advance moves the run/load cycle forward by dt seconds.
func (r *Ride) advance(dt float64) {
	if r.halted || r.RideTime <= 0 || !(dt > 0) {
		return
	}
	r.phase += dt
	if !r.loading && r.phase >= r.RideTime {
		r.loading = true
		r.phase = 0
	} else if r.loading && r.phase >= r.LoadTime {
		r.loading = false
		r.phase = 0
	}
}

// rideBehavior is implemented by every ride's entity Behavior.
type rideBehavior interface {
	ride() *Ride
}

// RideOf returns the ride state behind e, if e is a ride.
func RideOf(e *adventure.Entity) (*Ride, bool) {
	if e == nil {
		return nil, false
	}
	rb, ok := e.Behavior.(rideBehavior)
	if !ok {
		return nil, false
	}
	return rb.ride(), true
}

// Ride kinds accepted by NewRide.
const (
	KindFerrisWheel = "FerrisWheel"
	KindPirateShip  = "PirateShip"
	KindDropTower   = "DropTower"
)

// RideFactory builds a ride entity.
type RideFactory func(pos adventure.Point, capacity int, rideTime float64) *adventure.Entity

var rideFactories = map[string]RideFactory{
	KindFerrisWheel: NewFerrisWheel,
	KindPirateShip:  NewPirateShip,
	KindDropTower:   NewDropTower,
}

// RideKinds returns the registered ride kinds in sorted order.
func RideKinds() []string {
	kinds := make([]string, 0, len(rideFactories))
	for k := range rideFactories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// NewRide builds a ride of the named kind.
func NewRide(kind string, pos adventure.Point, capacity int, rideTime float64) (*adventure.Entity, error) {
	factory, ok := rideFactories[kind]
	if !ok {
		return nil, fmt.Errorf("unknown ride type %q", kind)
	}
	return factory(pos, capacity, rideTime), nil
}
