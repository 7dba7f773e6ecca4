package adventure

import "sort"

// Key identifies a logical key. Backends translate their own key codes to
// these names.
type Key string

const (
	KeyUp       Key = "up"     // pan forward (into the scene)
	KeyDown     Key = "down"   // pan backward
	KeyLeft     Key = "left"   // pan left
	KeyRight    Key = "right"  // pan right
	KeyZoomIn   Key = "z"      // zoom in
	KeyZoomOut  Key = "c"      // zoom out
	KeyRotateCC Key = "r"      // rotate pan direction counter-clockwise
	KeyRotateCW Key = "f"      // rotate pan direction clockwise
	KeySlower   Key = "a"      // decrease movement speed
	KeyFaster   Key = "d"      // increase movement speed
	KeyEscape   Key = "escape" // close the window
)

// Input is the set of currently held keys plus a close request. The camera
// consumes the held set once per tick.
type Input struct {
	held           map[Key]bool
	closeRequested bool
}

// NewInput creates an empty input state.
func NewInput() *Input {
	return &Input{held: make(map[Key]bool)}
}

// Press records a key-down edge. Escape is not held; it requests close.
func (in *Input) Press(k Key) {
	if k == KeyEscape {
		in.closeRequested = true
		return
	}
	in.held[k] = true
}

// Release records a key-up edge.
func (in *Input) Release(k Key) {
	delete(in.held, k)
}

// IsHeld reports whether k is currently held.
func (in *Input) IsHeld(k Key) bool {
	return in.held[k]
}

// Held returns the held keys in sorted order.
func (in *Input) Held() []Key {
	keys := make([]Key, 0, len(in.held))
	for k := range in.held {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// SetHeld replaces the held set wholesale. Backends that poll the keyboard
// each frame use this instead of edges.
func (in *Input) SetHeld(keys []Key) {
	clear(in.held)
	for _, k := range keys {
		if k == KeyEscape {
			continue
		}
		in.held[k] = true
	}
}

// RequestClose asks the engine loop to stop after the current tick.
func (in *Input) RequestClose() {
	in.closeRequested = true
}

// CloseRequested reports whether a close was requested.
func (in *Input) CloseRequested() bool {
	return in.closeRequested
}

// axis returns +1, -1 or 0 for a pair of opposing keys.
func (in *Input) axis(pos, neg Key) float64 {
	v := 0.0
	if in.held[pos] {
		v++
	}
	if in.held[neg] {
		v--
	}
	return v
}
