package adventure

import (
	"math"
	"math/rand/v2"
	"testing"
)

func staticGuest(p Point) *Entity {
	return NewEntity("guest", nil, p, Size{Height: 1.8, Width: 0.6})
}

func spawnerEngine(rate float64, maxGuests int) (*Engine, *Spawner) {
	e := NewEngine(DefaultEngineConfig(), NewHeadlessRenderer(0))
	e.SetClock(NewStepClock(0.5))
	ent := NewSpawner(e, Point{0, 0}, SpawnerConfig{
		Rate:      rate,
		MaxGuests: maxGuests,
		NewGuest:  staticGuest,
		Rand:      rand.New(rand.NewPCG(1, 2)),
	})
	e.Add(ent)
	return e, ent.Behavior.(*Spawner)
}

func TestSpawnerCapacity(t *testing.T) {
	e, s := spawnerEngine(2, 3)
	for tick := 1; tick <= 3; tick++ {
		e.Tick()
		if got := len(s.Tracked()); got != tick {
			t.Fatalf("after tick %d: tracked = %d, want %d", tick, got, tick)
		}
	}
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	if got := len(s.Tracked()); got != 3 {
		t.Errorf("tracked = %d, want 3", got)
	}
	if e.Len() != 4 {
		t.Errorf("Len = %d, want spawner + 3 guests", e.Len())
	}
}

func TestSpawnerRefillsAfterOutOfBandRemoval(t *testing.T) {
	e, s := spawnerEngine(2, 3)
	for i := 0; i < 5; i++ {
		e.Tick()
	}
	e.Remove(s.Tracked()[0])
	e.Tick()
	if got := len(s.Tracked()); got != 3 {
		t.Errorf("tracked = %d, want 3 after refill", got)
	}
	if e.Len() != 4 {
		t.Errorf("Len = %d, want 4", e.Len())
	}
}

func TestSpawnerDespawnsDeadAndDistantGuests(t *testing.T) {
	e, s := spawnerEngine(2, 3)
	for i := 0; i < 3; i++ {
		e.Tick()
	}
	g := s.Tracked()
	g[0].Dead = true
	g[1].Position.Y = 25
	keep := g[2]

	e.Tick()
	if e.Contains(g[0]) || e.Contains(g[1]) {
		t.Error("dead or distant guest still in the world")
	}
	if !e.Contains(keep) {
		t.Error("live guest despawned")
	}
}

func TestSpawnerJitterWithinRadius(t *testing.T) {
	e, s := spawnerEngine(2, 3)
	for i := 0; i < 3; i++ {
		e.Tick()
	}
	for _, g := range s.Tracked() {
		if math.Abs(g.Position.X) > 0.05 || math.Abs(g.Position.Y) > 0.05 {
			t.Errorf("guest at %v, outside the spawn radius", g.Position)
		}
	}
}

func TestSpawnerDisabled(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		max  int
	}{
		{"zero rate", 0, 3},
		{"negative rate", -1, 3},
		{"NaN rate", math.NaN(), 3},
		{"zero capacity", 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, s := spawnerEngine(tt.rate, tt.max)
			for i := 0; i < 5; i++ {
				e.Tick()
			}
			if len(s.Tracked()) != 0 || e.Len() != 1 {
				t.Errorf("tracked = %d, Len = %d; want 0, 1", len(s.Tracked()), e.Len())
			}
		})
	}
}

func TestSpawnerNilGuestSkipped(t *testing.T) {
	e := NewEngine(DefaultEngineConfig(), nil)
	e.SetClock(NewStepClock(1))
	ent := NewSpawner(e, Point{}, SpawnerConfig{
		Rate:      1,
		MaxGuests: 2,
		NewGuest:  func(Point) *Entity { return nil },
	})
	e.Add(ent)
	e.Tick()
	if e.Len() != 1 {
		t.Errorf("Len = %d, want 1", e.Len())
	}
}

func TestSpawnerDefaults(t *testing.T) {
	ent := NewSpawner(NewEngine(DefaultEngineConfig(), nil), Point{3, 4}, SpawnerConfig{})
	s := ent.Behavior.(*Spawner)
	def := DefaultSpawnerConfig()
	if s.cfg.Radius != def.Radius || s.cfg.Boundary != def.Boundary {
		t.Errorf("cfg = %+v, want default radius and boundary", s.cfg)
	}
	if ent.Animation() != spawnerIcon || ent.Position != (Point{3, 4}) {
		t.Error("spawner entity not built from the icon at its position")
	}
}
