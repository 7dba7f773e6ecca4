package adventure

// Animation is an ordered, looping sequence of Frames (a sprite sheet).
// It is immutable after construction and may be shared by any number of
// entities.
type Animation struct {
	frames []Frame
}

// NewAnimation creates an Animation from the given frames. The frame list is
// copied; the frames themselves are shared and MUST NOT be mutated afterward.
func NewAnimation(frames ...Frame) *Animation {
	return &Animation{frames: append([]Frame(nil), frames...)}
}

// Len returns the number of frames.
func (a *Animation) Len() int {
	if a == nil {
		return 0
	}
	return len(a.frames)
}

// Frames returns the frame list. The returned slice MUST NOT be mutated.
func (a *Animation) Frames() []Frame {
	if a == nil {
		return nil
	}
	return a.frames
}

// FrameIndex returns floor(tick * animFPS / engineFPS) mod Len(). The second
// result is false when the animation has no frames. A non-positive engineFPS
// is treated as DefaultFPS.
func (a *Animation) FrameIndex(tick, animFPS, engineFPS int) (int, bool) {
	n := a.Len()
	if n == 0 {
		return 0, false
	}
	if engineFPS <= 0 {
		engineFPS = DefaultFPS
	}
	// Integer floor division keeps the index exact for any tick count.
	num := int64(tick) * int64(animFPS)
	den := int64(engineFPS)
	q := num / den
	if num%den != 0 && num < 0 {
		q--
	}
	idx := int(q % int64(n))
	if idx < 0 {
		idx += n
	}
	return idx, true
}

// CurrentFrame returns the frame to show at the given tick. An animation with
// no frames yields an empty Frame: the entity is valid but invisible.
func (a *Animation) CurrentFrame(tick, animFPS, engineFPS int) Frame {
	idx, ok := a.FrameIndex(tick, animFPS, engineFPS)
	if !ok {
		return nil
	}
	return a.frames[idx]
}
