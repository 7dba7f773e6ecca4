package ecs

import (
	"github.com/phanxgames/adventure"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// LifecycleEventType is the Donburi event type for adventure lifecycle
// events. Subscribe to this in your ECS systems to hear about guests and
// rides entering or leaving the park.
var LifecycleEventType = events.NewEventType[adventure.LifecycleEvent]()

// ParkEntity is the component mirrored for every live park entity.
type ParkEntity struct {
	ID        uint32
	Name      string
	X, Y      float64
	AddedTick int
}

// ParkEntityComponent holds ParkEntity data.
var ParkEntityComponent = donburi.NewComponentType[ParkEntity]()

var parkQuery = donburi.NewQuery(filter.Contains(ParkEntityComponent))

// DonburiSink is an adventure.EventSink backed by a Donburi world.
type DonburiSink struct {
	world  donburi.World
	mirror map[uint32]donburi.Entity
}

// NewDonburiSink creates a sink publishing to LifecycleEventType in world.
// Events are queued; consume them with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{world: world, mirror: make(map[uint32]donburi.Entity)}
}

// EmitEvent publishes event and updates the mirror.
func (s *DonburiSink) EmitEvent(event adventure.LifecycleEvent) {
	switch event.Type {
	case adventure.EventEntityAdded:
		if _, ok := s.mirror[event.EntityID]; !ok {
			ent := s.world.Create(ParkEntityComponent)
			ParkEntityComponent.SetValue(s.world.Entry(ent), ParkEntity{
				ID:        event.EntityID,
				Name:      event.Name,
				X:         event.X,
				Y:         event.Y,
				AddedTick: event.Tick,
			})
			s.mirror[event.EntityID] = ent
		}
	case adventure.EventEntityRemoved:
		if ent, ok := s.mirror[event.EntityID]; ok {
			if s.world.Valid(ent) {
				s.world.Remove(ent)
			}
			delete(s.mirror, event.EntityID)
		}
	}
	LifecycleEventType.Publish(s.world, event)
}

// Lookup returns the mirrored component for a park entity ID.
func (s *DonburiSink) Lookup(id uint32) (ParkEntity, bool) {
	ent, ok := s.mirror[id]
	if !ok || !s.world.Valid(ent) {
		return ParkEntity{}, false
	}
	return *ParkEntityComponent.Get(s.world.Entry(ent)), true
}

// Count returns the number of mirrored park entities in the world.
func (s *DonburiSink) Count() int {
	return parkQuery.Count(s.world)
}
