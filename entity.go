package adventure

// Behavior is the per-tick hook of an entity kind. Update is called at most
// once per tick and must read time only through c.
type Behavior interface {
	Update(e *Entity, c Clock)
}

// BehaviorFunc adapts a plain function to Behavior.
type BehaviorFunc func(e *Entity, c Clock)

// Update calls f(e, c).
func (f BehaviorFunc) Update(e *Entity, c Clock) { f(e, c) }

// FrameSource is implemented by behaviors that build their own model-space
// geometry each tick instead of playing the animation as-is. During
// Engine.Tick, tick equals the Clock.Ticks value seen by Update.
type FrameSource interface {
	Frame(e *Entity, tick, engineFPS int) Frame
}

// entityIDCounter is a plain counter (no atomic: the core is single-threaded).
var entityIDCounter uint32

func nextEntityID() uint32 {
	entityIDCounter++
	return entityIDCounter
}

// Entity is a live, positioned, animated object. The Animation is shared;
// everything else is owned by this instance.
type Entity struct {
	// Identity
	ID   uint32
	Name string

	// Pose (world space: X lateral, Y depth)
	Position  Point
	Elevation float64
	Size      Size

	// Model-space pose applied to every frame, in radians about Pivot.
	Rotation float64
	Pivot    Point

	// FPS is the animation playback rate.
	FPS int

	// Dead flags the entity for removal by whoever owns its lifecycle.
	Dead bool

	Behavior Behavior
	UserData any

	anim   *Animation
	bounds Bounds
	scaleX float64
	scaleY float64
}

// NewEntity binds anim to a new entity at position with the given physical
// size. Bounds and scale are derived once here.
func NewEntity(name string, anim *Animation, position Point, size Size) *Entity {
	e := &Entity{
		ID:       nextEntityID(),
		Name:     name,
		Position: position,
		Size:     size,
		FPS:      DefaultFPS,
		anim:     anim,
	}
	e.bounds = BoundsOf(anim)
	e.scaleX = size.Width / e.bounds.Width()
	e.scaleY = size.Height / e.bounds.Height()
	return e
}

// Animation returns the shared animation template.
func (e *Entity) Animation() *Animation { return e.anim }

// Bounds returns the model-space bounds of the animation.
func (e *Entity) Bounds() Bounds { return e.bounds }

// Scale returns the per-axis factors mapping model units to world units.
func (e *Entity) Scale() (sx, sy float64) { return e.scaleX, e.scaleY }

// Update runs the behavior hook.
func (e *Entity) Update(c Clock) {
	if e.Behavior != nil {
		e.Behavior.Update(e, c)
	}
}

// Frame returns the current model-space frame. Frames without a pose
// rotation are returned as stored and MUST NOT be mutated.
func (e *Entity) Frame(tick, engineFPS int) Frame {
	var frame Frame
	if src, ok := e.Behavior.(FrameSource); ok {
		frame = src.Frame(e, tick, engineFPS)
	} else {
		frame = e.anim.CurrentFrame(tick, e.FPS, engineFPS)
	}
	return RotateFrame(frame, e.Rotation, e.Pivot)
}

// WorldFrame returns the current frame in world units: model geometry
// scaled to Size, horizontally centred on Position and resting on it.
func (e *Entity) WorldFrame(tick, engineFPS int) Frame {
	m := multiplyAffine(
		scaleTranslate(1, 1, e.Position),
		scaleTranslate(e.scaleX, e.scaleY, Point{-e.bounds.MidX() * e.scaleX, -e.bounds.MinY * e.scaleY}),
	)
	return TransformFrame(e.Frame(tick, engineFPS), m)
}
