package adventure

import (
	"math"
	"math/rand/v2"

	"go.uber.org/zap"
)

// World is the live collection a Spawner adds guests to. Engine implements it.
type World interface {
	Add(entities ...*Entity)
	Remove(e *Entity) bool
	Contains(e *Entity) bool
}

// GuestFactory creates a guest entity standing at pos.
type GuestFactory func(pos Point) *Entity

// SpawnerConfig configures a Spawner.
type SpawnerConfig struct {
	// Rate is guests per second. Zero disables spawning.
	Rate float64
	// MaxGuests caps the tracked population. Zero or negative disables spawning.
	MaxGuests int
	// Radius is the maximum jitter applied to each spawn position per axis.
	Radius float64
	// Boundary despawns guests whose world Y exceeds it.
	Boundary float64
	// NewGuest builds each guest. Required for spawning.
	NewGuest GuestFactory
	// Icon is drawn at the spawner position. Nil selects a small signpost.
	Icon *Animation
	// Rand supplies jitter. Nil uses the global source.
	Rand   *rand.Rand
	Logger *zap.Logger
}

// DefaultSpawnerConfig returns a config with the stock radius and boundary
// and spawning disabled.
func DefaultSpawnerConfig() SpawnerConfig {
	return SpawnerConfig{
		Radius:   0.05,
		Boundary: 20,
	}
}

// Spawner is the Behavior of a spawner entity: it keeps a capacity-bounded
// population of guests alive in a World.
type Spawner struct {
	world    World
	cfg      SpawnerConfig
	interval float64
	timer    float64
	tracked  []*Entity
	log      *zap.Logger
}

var spawnerIcon = NewAnimation(Frame{
	Segment{Point{0, 0}, Point{0, 0.6}, MustLineStyle("darkgray", 2)},
	Segment{Point{0, 0.6}, Point{0.2, 0.8}, MustLineStyle("darkgray", 2)},
	Segment{Point{0, 0.6}, Point{-0.2, 0.8}, MustLineStyle("darkgray", 2)},
	Segment{Point{-0.15, 0}, Point{0.15, 0}, MustLineStyle("darkgray", 2)},
})

// NewSpawner creates a spawner entity at position whose Behavior is a
// *Spawner feeding world. Zero Radius and Boundary take the defaults.
func NewSpawner(world World, position Point, cfg SpawnerConfig) *Entity {
	def := DefaultSpawnerConfig()
	if cfg.Radius <= 0 {
		cfg.Radius = def.Radius
	}
	if cfg.Boundary == 0 {
		cfg.Boundary = def.Boundary
	}
	if cfg.Icon == nil {
		cfg.Icon = spawnerIcon
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Rate < 0 || !isFinite(cfg.Rate) {
		cfg.Rate = 0
	}

	s := &Spawner{
		world:    world,
		cfg:      cfg,
		interval: math.Inf(1),
		log:      cfg.Logger,
	}
	if cfg.Rate > 0 {
		s.interval = 1 / cfg.Rate
	}

	e := NewEntity("spawner", cfg.Icon, position, Size{Height: 1, Width: 1, Depth: 1})
	e.Behavior = s
	return e
}

// Tracked returns the guests this spawner currently accounts for. The
// returned slice MUST NOT be mutated.
func (s *Spawner) Tracked() []*Entity { return s.tracked }

// reconcile drops guests that left the world by other means.
func (s *Spawner) reconcile() int {
	kept := s.tracked[:0]
	for _, g := range s.tracked {
		if s.world.Contains(g) {
			kept = append(kept, g)
		}
	}
	clear(s.tracked[len(kept):])
	s.tracked = kept
	return len(s.tracked)
}

func (s *Spawner) enabled() bool {
	return s.cfg.MaxGuests > 0 && !math.IsInf(s.interval, 1) && s.cfg.NewGuest != nil
}

// Update spawns due guests and despawns finished ones.
func (s *Spawner) Update(e *Entity, c Clock) {
	if !s.enabled() {
		return
	}
	s.reconcile()

	if dt := c.Delta(); dt > 0 && isFinite(dt) {
		s.timer += dt
	}

	for s.timer >= s.interval && s.reconcile() < s.cfg.MaxGuests {
		s.spawn(e.Position)
		s.timer -= s.interval
	}

	kept := s.tracked[:0]
	for _, g := range s.tracked {
		if g.Position.Y > s.cfg.Boundary || g.Dead {
			s.world.Remove(g)
			s.log.Debug("guest despawned", zap.Uint32("id", g.ID))
			continue
		}
		kept = append(kept, g)
	}
	clear(s.tracked[len(kept):])
	s.tracked = kept
}

func (s *Spawner) spawn(origin Point) {
	r := s.cfg.Radius
	pos := Point{origin.X + s.jitter(r), origin.Y + s.jitter(r)}
	g := s.cfg.NewGuest(pos)
	if g == nil {
		return
	}
	s.world.Add(g)
	s.tracked = append(s.tracked, g)
	s.log.Debug("guest spawned",
		zap.Uint32("id", g.ID),
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y))
}

// jitter returns a uniform value in [-r, r].
func (s *Spawner) jitter(r float64) float64 {
	var u float64
	if s.cfg.Rand != nil {
		u = s.cfg.Rand.Float64()
	} else {
		u = rand.Float64()
	}
	return (2*u - 1) * r
}
