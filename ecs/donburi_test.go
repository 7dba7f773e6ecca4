package ecs

import (
	"testing"

	"github.com/phanxgames/adventure"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []adventure.LifecycleEvent
	LifecycleEventType.Subscribe(world, func(w donburi.World, e adventure.LifecycleEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(adventure.LifecycleEvent{
		Type:     adventure.EventEntityAdded,
		EntityID: 42,
		Name:     "guest",
		X:        1,
		Y:        2,
		Tick:     3,
	})
	sink.EmitEvent(adventure.LifecycleEvent{
		Type:     adventure.EventEntityRemoved,
		EntityID: 42,
	})

	// Events are queued; process them.
	LifecycleEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e0 := received[0]; e0.Type != adventure.EventEntityAdded || e0.EntityID != 42 || e0.Name != "guest" {
		t.Errorf("event 0: %+v", e0)
	}
	if e1 := received[1]; e1.Type != adventure.EventEntityRemoved {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink adventure.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_Mirror(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	sink.EmitEvent(adventure.LifecycleEvent{Type: adventure.EventEntityAdded, EntityID: 1, Name: "a", X: 5, Y: 6})
	sink.EmitEvent(adventure.LifecycleEvent{Type: adventure.EventEntityAdded, EntityID: 2, Name: "b"})
	sink.EmitEvent(adventure.LifecycleEvent{Type: adventure.EventEntityAdded, EntityID: 1, Name: "dup"})

	if got := sink.Count(); got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}
	pe, ok := sink.Lookup(1)
	if !ok || pe.Name != "a" || pe.X != 5 || pe.Y != 6 {
		t.Errorf("Lookup(1) = %+v, %v", pe, ok)
	}

	sink.EmitEvent(adventure.LifecycleEvent{Type: adventure.EventEntityRemoved, EntityID: 1})
	if got := sink.Count(); got != 1 {
		t.Errorf("Count after remove = %d, want 1", got)
	}
	if _, ok := sink.Lookup(1); ok {
		t.Error("Lookup(1) should fail after remove")
	}
}

func TestDonburiSink_WithEngine(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	eng := adventure.NewEngine(adventure.DefaultEngineConfig(), adventure.NewHeadlessRenderer(1))
	eng.SetEventSink(sink)

	anim := adventure.NewAnimation(adventure.Frame{
		adventure.Segment{Start: adventure.Point{}, End: adventure.Point{X: 1, Y: 1}, Style: adventure.MustLineStyle("k", 1)},
	})
	e := adventure.NewEntity("box", anim, adventure.Point{Y: 5}, adventure.Size{Height: 1, Width: 1})
	eng.Add(e)
	if got := sink.Count(); got != 1 {
		t.Fatalf("Count after Add = %d, want 1", got)
	}
	eng.Remove(e)
	if got := sink.Count(); got != 0 {
		t.Errorf("Count after Remove = %d, want 0", got)
	}
}
