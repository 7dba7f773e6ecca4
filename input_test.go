package adventure

import (
	"reflect"
	"testing"
)

func TestInputHeldSorted(t *testing.T) {
	in := NewInput()
	in.Press(KeyZoomIn)
	in.Press(KeyDown)
	in.Press(KeyFaster)
	want := []Key{KeyFaster, KeyDown, KeyZoomIn}
	if got := in.Held(); !reflect.DeepEqual(got, want) {
		t.Errorf("Held = %v, want %v", got, want)
	}
	in.Release(KeyDown)
	if in.IsHeld(KeyDown) {
		t.Error("released key still held")
	}
}

func TestInputEscapeRequestsClose(t *testing.T) {
	in := NewInput()
	in.SetHeld([]Key{KeyUp, KeyEscape})
	if in.IsHeld(KeyEscape) || in.CloseRequested() {
		t.Error("SetHeld should ignore escape")
	}
	if !in.IsHeld(KeyUp) {
		t.Error("SetHeld dropped up")
	}
	in.Press(KeyEscape)
	if !in.CloseRequested() || in.IsHeld(KeyEscape) {
		t.Error("Press(escape) should request close without holding")
	}
}

func TestInputSetHeldReplaces(t *testing.T) {
	in := NewInput()
	in.Press(KeyLeft)
	in.SetHeld([]Key{KeyRight})
	if in.IsHeld(KeyLeft) || !in.IsHeld(KeyRight) {
		t.Errorf("Held = %v, want [right]", in.Held())
	}
	if in.axis(KeyRight, KeyLeft) != 1 {
		t.Error("axis(right, left) != 1")
	}
}

func TestInputScriptSteps(t *testing.T) {
	script, err := LoadInputScript([]byte(`
steps:
  - {action: hold, key: up}
  - {action: hold, key: z}
  - {action: wait, ticks: 2}
  - {action: release, key: up}
  - {action: close}
`))
	if err != nil {
		t.Fatalf("LoadInputScript: %v", err)
	}
	in := NewInput()

	script.step(in)
	if !in.IsHeld(KeyUp) || !in.IsHeld(KeyZoomIn) {
		t.Fatalf("tick 1 held = %v", in.Held())
	}
	script.step(in)
	if !in.IsHeld(KeyUp) || script.Done() {
		t.Fatal("tick 2 should still be waiting")
	}
	script.step(in)
	if in.IsHeld(KeyUp) || !in.CloseRequested() {
		t.Errorf("tick 3: held = %v, close = %v", in.Held(), in.CloseRequested())
	}
	if !script.Done() {
		t.Error("script not done")
	}
	script.step(in)
}

func TestInputScriptJSON(t *testing.T) {
	script, err := LoadInputScript([]byte(`{"steps": [{"action": "hold", "key": "left"}]}`))
	if err != nil {
		t.Fatalf("LoadInputScript: %v", err)
	}
	in := NewInput()
	script.step(in)
	if !in.IsHeld(KeyLeft) || !script.Done() {
		t.Errorf("held = %v, done = %v", in.Held(), script.Done())
	}
}

func TestLoadInputScriptErrors(t *testing.T) {
	tests := map[string]string{
		"empty":          "steps: []",
		"unknown action": "steps:\n  - {action: jump}",
		"hold no key":    "steps:\n  - {action: hold}",
		"bad yaml":       "steps: [",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadInputScript([]byte(data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
