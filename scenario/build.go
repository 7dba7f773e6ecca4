package scenario

import (
	"fmt"

	"github.com/phanxgames/adventure"
	"github.com/phanxgames/adventure/assets"
)

// Build validates doc and creates the live scenario: background, rides at
// their positions (Z becomes elevation), and guests from assets.NewGuest.
// The entrance defaults to the world origin.
func Build(doc *Document) (*adventure.Scenario, error) {
	if doc == nil {
		return nil, fmt.Errorf("build scenario: nil document")
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	s := adventure.NewScenario(doc.Name, adventure.Rules{
		MaxGuests: *doc.Rules.MaxGuests,
		SpawnRate: *doc.Rules.SpawnRate,
		TargetFPS: *doc.Rules.TargetFPS,
	})

	bg, err := assets.NewBackground(doc.Background)
	if err != nil {
		return nil, fmt.Errorf("build scenario: %w", err)
	}
	s.Background = bg

	for i, r := range doc.Rides {
		pos, elevation := r.Position.point()
		ride, err := assets.NewRide(r.Type, pos, *r.MaxCapacity, *r.RideTime)
		if err != nil {
			return nil, fmt.Errorf("build scenario: rides[%d]: %w", i, err)
		}
		ride.Elevation = elevation
		s.AddRide(ride)
	}

	if doc.Entrance != nil {
		s.Entrance, _ = doc.Entrance.point()
	}
	s.NewGuest = assets.NewGuest
	return s, nil
}

func (p *Position) point() (adventure.Point, float64) {
	var pt adventure.Point
	var z float64
	if p.X != nil {
		pt.X = *p.X
	}
	if p.Y != nil {
		pt.Y = *p.Y
	}
	if p.Z != nil {
		z = *p.Z
	}
	return pt, z
}
