package adventure

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// EngineConfig holds the Engine's tunables.
type EngineConfig struct {
	// FPS is the target tick rate. Zero or negative selects DefaultFPS.
	FPS int
	// Viewport is the screen-space rectangle the camera projects into.
	Viewport Rect
	// Projection holds the camera's projection constants.
	Projection ProjectionConfig
}

// DefaultEngineConfig returns a 24 fps engine projecting into the unit square.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		FPS:        DefaultFPS,
		Viewport:   Rect{X: 0, Y: 0, Width: 1, Height: 1},
		Projection: DefaultProjectionConfig(),
	}
}

// mutation is a queued change to the live collection.
type mutation struct {
	add    bool
	entity *Entity
}

// Engine owns the live entity collection, the camera and the clock, and
// drives the fixed per-tick pipeline: clock, input, camera, update, commit,
// depth sort, projection, render.
type Engine struct {
	fps      int
	renderer Renderer
	camera   *Camera
	input    *Input
	clock    TickClock
	log      *zap.Logger
	sink     EventSink
	debug    bool
	script   *InputScript

	background *Entity
	entities   []*Entity
	snapshot   []*Entity

	updating bool
	pending  []mutation

	sorter depthSorter
	order  []*Entity
	meter  fpsMeter
	ticks  int
}

// NewEngine creates an engine rendering to r. r may be nil until a backend
// attaches itself with SetRenderer.
func NewEngine(cfg EngineConfig, r Renderer) *Engine {
	if cfg.Viewport.Width <= 0 || cfg.Viewport.Height <= 0 {
		cfg.Viewport = DefaultEngineConfig().Viewport
	}
	cam := NewCamera(cfg.Viewport)
	if cfg.Projection != (ProjectionConfig{}) {
		cam.Projection = cfg.Projection
	}
	e := &Engine{
		renderer: r,
		camera:   cam,
		input:    NewInput(),
		clock:    NewSystemClock(),
		log:      zap.NewNop(),
	}
	e.SetFPS(cfg.FPS)
	return e
}

// SetRenderer replaces the output collaborator. Window backends that are
// created after the engine attach themselves here.
func (e *Engine) SetRenderer(r Renderer) {
	e.renderer = r
}

// SetLogger sets the logger. A nil logger disables logging.
func (e *Engine) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	e.log = l
}

// SetClock replaces the time source. Use a StepClock for reproducible runs.
func (e *Engine) SetClock(c TickClock) {
	if c != nil {
		e.clock = c
	}
}

// SetEventSink sets the optional lifecycle event receiver.
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}

// SetDebugMode enables or disables per-tick timing stats at debug level.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// SetInputScript attaches a script that drives Input one step per tick.
func (e *Engine) SetInputScript(s *InputScript) {
	e.script = s
}

// SetBackground sets the entity drawn behind everything in viewport space.
// It is updated every tick but never depth sorted.
func (e *Engine) SetBackground(bg *Entity) {
	e.background = bg
}

// SetFPS sets the target tick rate. Zero or negative selects DefaultFPS.
func (e *Engine) SetFPS(fps int) {
	if fps <= 0 {
		fps = DefaultFPS
	}
	e.fps = fps
}

// FPS returns the target tick rate.
func (e *Engine) FPS() int { return e.fps }

// Camera returns the engine's camera.
func (e *Engine) Camera() *Camera { return e.camera }

// Input returns the held-key state the camera reads each tick.
func (e *Engine) Input() *Input { return e.input }

// Clock returns the engine's time source.
func (e *Engine) Clock() Clock { return e.clock }

// Background returns the background entity, or nil.
func (e *Engine) Background() *Entity { return e.background }

// Ticks returns the number of completed ticks.
func (e *Engine) Ticks() int { return e.ticks }

// ActualFPS returns the most recently measured tick rate.
func (e *Engine) ActualFPS() float64 { return e.meter.Rate() }

// DrawOrder returns the entities of the last tick in paint order, farthest
// first. The returned slice MUST NOT be mutated.
func (e *Engine) DrawOrder() []*Entity { return e.order }

// Entities returns the live collection in update order. The returned slice
// MUST NOT be mutated.
func (e *Engine) Entities() []*Entity { return e.entities }

// Len returns the size of the live collection.
func (e *Engine) Len() int { return len(e.entities) }

// Add inserts entities at the end of the live collection. During the update
// phase the insert is deferred until every entity has been updated, so a
// freshly spawned entity is never updated in the tick it was created.
// Adding an entity that is already present is a no-op.
func (e *Engine) Add(entities ...*Entity) {
	for _, ent := range entities {
		if ent == nil {
			continue
		}
		if e.updating {
			if !e.Contains(ent) {
				e.pending = append(e.pending, mutation{add: true, entity: ent})
			}
			continue
		}
		e.addNow(ent)
	}
}

// Remove takes ent out of the live collection, deferred like Add during the
// update phase. It reports whether ent was present.
func (e *Engine) Remove(ent *Entity) bool {
	if ent == nil || !e.Contains(ent) {
		return false
	}
	if e.updating {
		e.pending = append(e.pending, mutation{entity: ent})
		return true
	}
	return e.removeNow(ent)
}

// Contains reports whether ent is in the live collection, counting changes
// queued during the current update phase.
func (e *Engine) Contains(ent *Entity) bool {
	present := e.indexOf(ent) >= 0
	for _, m := range e.pending {
		if m.entity == ent {
			present = m.add
		}
	}
	return present
}

func (e *Engine) indexOf(ent *Entity) int {
	for i, x := range e.entities {
		if x == ent {
			return i
		}
	}
	return -1
}

func (e *Engine) addNow(ent *Entity) bool {
	if e.indexOf(ent) >= 0 {
		return false
	}
	e.entities = append(e.entities, ent)
	e.emit(EventEntityAdded, ent)
	return true
}

func (e *Engine) removeNow(ent *Entity) bool {
	i := e.indexOf(ent)
	if i < 0 {
		return false
	}
	copy(e.entities[i:], e.entities[i+1:])
	e.entities[len(e.entities)-1] = nil
	e.entities = e.entities[:len(e.entities)-1]
	e.emit(EventEntityRemoved, ent)
	return true
}

// commit applies the mutations queued during the update phase in order.
func (e *Engine) commit() (added, removed int) {
	for _, m := range e.pending {
		if m.add {
			if e.addNow(m.entity) {
				added++
			}
		} else if e.removeNow(m.entity) {
			removed++
		}
	}
	clear(e.pending)
	e.pending = e.pending[:0]
	return added, removed
}

func (e *Engine) emit(t EventType, ent *Entity) {
	if e.sink == nil {
		return
	}
	e.sink.EmitEvent(LifecycleEvent{
		Type:     t,
		EntityID: ent.ID,
		Name:     ent.Name,
		X:        ent.Position.X,
		Y:        ent.Position.Y,
		Tick:     e.ticks,
	})
}

// Tick runs one full pipeline step. Frames are selected with the clock's
// tick count, the same value behaviors read from Clock.Ticks.
func (e *Engine) Tick() {
	var stats tickStats
	var t0 time.Time

	e.clock.Tick()
	dt := e.clock.Delta()
	tick := e.clock.Ticks()

	if e.script != nil {
		e.script.step(e.input)
	}
	e.camera.Update(e.input, dt)

	if e.debug {
		t0 = time.Now()
	}

	if e.background != nil {
		e.background.Update(e.clock)
	}
	e.snapshot = append(e.snapshot[:0], e.entities...)
	e.updating = true
	for _, ent := range e.snapshot {
		ent.Update(e.clock)
	}
	e.updating = false
	clear(e.snapshot)

	if e.debug {
		stats.updateTime = time.Since(t0)
		t0 = time.Now()
	}

	stats.added, stats.removed = e.commit()

	if e.debug {
		stats.commitTime = time.Since(t0)
		t0 = time.Now()
	}

	e.sorter.reset(e.entities, e.camera)
	e.sorter.sort()
	e.order = e.order[:0]
	for _, it := range e.sorter.items {
		e.order = append(e.order, it.entity)
	}

	if e.debug {
		stats.sortTime = time.Since(t0)
		t0 = time.Now()
	}

	batches := make([]Frame, 0, len(e.order)+1)
	if e.background != nil {
		if f := e.camera.ProjectBackground(e.background.Frame(tick, e.fps)); len(f) > 0 {
			batches = append(batches, f)
		}
	}
	for _, ent := range e.order {
		if f := e.camera.ProjectEntity(ent, ent.Frame(tick, e.fps)); len(f) > 0 {
			batches = append(batches, f)
		}
	}

	if e.debug {
		stats.projectTime = time.Since(t0)
		t0 = time.Now()
	}

	if e.renderer != nil {
		e.renderer.Render(batches)
	}

	if e.debug {
		stats.renderTime = time.Since(t0)
		stats.entities = len(e.entities)
		stats.batches = len(batches)
		stats.primitives = PrimitiveCount(batches)
		e.debugLog(stats)
		e.debugCheckEntityCount()
	}

	if e.meter.observe(dt) {
		e.log.Debug("tick rate", zap.Float64("fps", e.meter.Rate()), zap.Int("target", e.fps))
	}
	e.ticks++
}

// running is the loop-continues predicate, checked once per tick.
func (e *Engine) running(ctx context.Context) bool {
	return ctx.Err() == nil && e.renderer != nil && e.renderer.IsOpen() && !e.input.CloseRequested()
}

// Run ticks until the renderer closes, input requests close, or ctx is
// cancelled, sleeping between ticks to approximate the target rate. It
// returns ctx.Err() on cancellation and nil otherwise.
func (e *Engine) Run(ctx context.Context) error {
	period := time.Second / time.Duration(e.fps)
	e.log.Info("engine started",
		zap.Int("fps", e.fps),
		zap.Int("entities", len(e.entities)))

	for e.running(ctx) {
		start := time.Now()
		e.Tick()
		wait := period - time.Since(start)
		if wait <= 0 {
			continue
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
	}

	e.log.Info("engine stopped",
		zap.Int("ticks", e.ticks),
		zap.Float64("fps", e.meter.Rate()))
	return ctx.Err()
}

// LoadScenario installs a scenario: its background, every ride, and a
// spawner at the entrance when the rules allow guests.
func (e *Engine) LoadScenario(s *Scenario) error {
	if s == nil {
		return errors.New("load scenario: nil scenario")
	}
	if s.Rules.TargetFPS > 0 {
		e.SetFPS(s.Rules.TargetFPS)
	}
	if s.Background != nil {
		e.SetBackground(s.Background)
	}
	e.Add(s.Rides...)
	if s.Rules.MaxGuests > 0 && s.Rules.SpawnRate > 0 && s.NewGuest != nil {
		e.Add(NewSpawner(e, s.Entrance, SpawnerConfig{
			Rate:      s.Rules.SpawnRate,
			MaxGuests: s.Rules.MaxGuests,
			NewGuest:  s.NewGuest,
			Logger:    e.log,
		}))
	}
	e.log.Info("scenario loaded",
		zap.String("id", s.ID.String()),
		zap.String("name", s.Name),
		zap.Int("rides", len(s.Rides)),
		zap.Int("max_guests", s.Rules.MaxGuests),
		zap.Float64("spawn_rate", s.Rules.SpawnRate))
	return nil
}
