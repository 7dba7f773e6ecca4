package adventure

// Renderer is the output collaborator of the Engine. Render receives the
// tick's batches already in screen space and back-to-front order; it must
// paint them in the order given.
type Renderer interface {
	IsOpen() bool
	Render(batches []Frame)
}

// HeadlessRenderer discards output but records what it was given. It stays
// open for MaxTicks renders (forever when MaxTicks <= 0) or until Close.
type HeadlessRenderer struct {
	MaxTicks int

	ticks      int
	closed     bool
	last       []Frame
	primitives int
	total      int
}

// NewHeadlessRenderer creates a renderer that closes after maxTicks renders.
func NewHeadlessRenderer(maxTicks int) *HeadlessRenderer {
	return &HeadlessRenderer{MaxTicks: maxTicks}
}

// IsOpen reports whether more ticks should be rendered.
func (r *HeadlessRenderer) IsOpen() bool {
	if r.closed {
		return false
	}
	return r.MaxTicks <= 0 || r.ticks < r.MaxTicks
}

// Render records the batches.
func (r *HeadlessRenderer) Render(batches []Frame) {
	r.ticks++
	r.last = batches
	r.primitives = PrimitiveCount(batches)
	r.total += r.primitives
}

// Close stops the renderer.
func (r *HeadlessRenderer) Close() { r.closed = true }

// Ticks returns the number of Render calls so far.
func (r *HeadlessRenderer) Ticks() int { return r.ticks }

// LastBatches returns the batches of the most recent Render call.
func (r *HeadlessRenderer) LastBatches() []Frame { return r.last }

// LastPrimitives returns the primitive count of the most recent Render call.
func (r *HeadlessRenderer) LastPrimitives() int { return r.primitives }

// TotalPrimitives returns the primitive count over all Render calls.
func (r *HeadlessRenderer) TotalPrimitives() int { return r.total }
