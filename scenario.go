package adventure

import (
	"fmt"

	"github.com/google/uuid"
)

// Rules are the park-wide limits of a scenario.
type Rules struct {
	MaxGuests int
	SpawnRate float64
	TargetFPS int
}

// Scenario is a ready-to-load park: a background, rides, and the rules for
// the guest spawner placed at Entrance.
type Scenario struct {
	ID         uuid.UUID
	Name       string
	Background *Entity
	Rules      Rules
	Rides      []*Entity
	Entrance   Point
	NewGuest   GuestFactory
}

// NewScenario creates an empty scenario with a fresh ID.
func NewScenario(name string, rules Rules) *Scenario {
	return &Scenario{
		ID:    uuid.New(),
		Name:  name,
		Rules: rules,
	}
}

// AddRide appends a ride entity.
func (s *Scenario) AddRide(ride *Entity) {
	if ride != nil {
		s.Rides = append(s.Rides, ride)
	}
}

func (s *Scenario) String() string {
	return fmt.Sprintf("%s (%d rides, max %d guests at %.2f/s, %d fps)",
		s.Name, len(s.Rides), s.Rules.MaxGuests, s.Rules.SpawnRate, s.Rules.TargetFPS)
}
