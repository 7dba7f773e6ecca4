package adventure

import (
	"reflect"
	"testing"
)

func lineFrame(x0, y0, x1, y1 float64) Frame {
	return Frame{Segment{Start: Point{x0, y0}, End: Point{x1, y1}, Style: MustLineStyle("k", 1)}}
}

func TestFrameIndexSequence(t *testing.T) {
	anim := NewAnimation(lineFrame(0, 0, 1, 1), lineFrame(0, 1, 1, 0))
	want := []int{0, 0, 1, 1, 0, 0, 1, 1}
	for tick, w := range want {
		got, ok := anim.FrameIndex(tick, 12, 24)
		if !ok || got != w {
			t.Errorf("FrameIndex(%d) = %d, %v; want %d", tick, got, ok, w)
		}
	}
}

func TestFrameIndexZeroEngineFPS(t *testing.T) {
	anim := NewAnimation(lineFrame(0, 0, 1, 1), lineFrame(0, 1, 1, 0))
	got, _ := anim.FrameIndex(1, 24, 0)
	if got != 1 {
		t.Errorf("FrameIndex with engine fps 0 = %d, want 1 (DefaultFPS)", got)
	}
}

func TestEmptyAnimationIsInvisible(t *testing.T) {
	anim := NewAnimation()
	if _, ok := anim.FrameIndex(3, 12, 24); ok {
		t.Error("FrameIndex ok for an empty animation")
	}
	if f := anim.CurrentFrame(3, 12, 24); len(f) != 0 {
		t.Errorf("CurrentFrame = %v, want empty", f)
	}
	var nilAnim *Animation
	if nilAnim.Len() != 0 || nilAnim.Frames() != nil {
		t.Error("nil animation not empty")
	}
}

func TestBoundsOf(t *testing.T) {
	anim := NewAnimation(
		lineFrame(0.05, 0.2, 0.5, 0.9),
		Frame{MustFill([]Point{{0.95, 0.1}, {0.5, 0.5}, {0.6, 0.3}}, "r")},
	)
	b := BoundsOf(anim)
	want := Bounds{MinX: 0.05, MaxX: 0.95, MinY: 0.1, MaxY: 0.9}
	if b != want {
		t.Errorf("BoundsOf = %+v, want %+v", b, want)
	}
	if !approxEqual(b.MidX(), 0.5, 1e-12) {
		t.Errorf("MidX = %v, want 0.5", b.MidX())
	}
}

func TestBoundsOfEmptyIsUnit(t *testing.T) {
	if b := BoundsOf(NewAnimation()); b != unitBounds {
		t.Errorf("BoundsOf(empty) = %+v, want unit box", b)
	}
}

func TestEntityScale(t *testing.T) {
	anim := NewAnimation(lineFrame(0.05, 0, 0.95, 1))
	e := NewEntity("e", anim, Point{}, Size{Height: 5, Width: 10})
	sx, sy := e.Scale()
	if !approxEqual(sx, 11.111, 1e-3) {
		t.Errorf("scaleX = %v, want ~11.111", sx)
	}
	if !approxEqual(sy, 5, 1e-12) {
		t.Errorf("scaleY = %v, want 5", sy)
	}
}

func TestEntityScaleDegenerateWidth(t *testing.T) {
	anim := NewAnimation(lineFrame(0.5, 0, 0.5, 1))
	e := NewEntity("pole", anim, Point{}, Size{Height: 1, Width: 10})
	sx, _ := e.Scale()
	if !approxEqual(sx, 10, 1e-12) {
		t.Errorf("scaleX = %v, want 10", sx)
	}
}

func TestEntityIDsUnique(t *testing.T) {
	a := NewEntity("a", nil, Point{}, Size{Height: 1, Width: 1})
	b := NewEntity("b", nil, Point{}, Size{Height: 1, Width: 1})
	if a.ID == b.ID {
		t.Errorf("IDs collide: %d", a.ID)
	}
}

func TestEntityFrameIdempotent(t *testing.T) {
	anim := NewAnimation(lineFrame(0, 0, 1, 1), lineFrame(0, 1, 1, 0))
	e := NewEntity("e", anim, Point{}, Size{Height: 1, Width: 1})
	e.Rotation = 0.3
	a := e.Frame(5, 24)
	b := e.Frame(5, 24)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Frame not idempotent: %v vs %v", a, b)
	}
}

func TestEntityFrameDoesNotMutateAnimation(t *testing.T) {
	anim := NewAnimation(lineFrame(0, 0, 1, 0))
	e := NewEntity("e", anim, Point{}, Size{Height: 1, Width: 1})
	e.Rotation = 1
	_ = e.Frame(0, 24)
	seg := anim.Frames()[0][0].(Segment)
	if seg.End != (Point{1, 0}) {
		t.Errorf("shared animation mutated: End = %v", seg.End)
	}
}

func TestEntityUpdateCallsBehavior(t *testing.T) {
	calls := 0
	e := NewEntity("e", nil, Point{}, Size{Height: 1, Width: 1})
	e.Behavior = BehaviorFunc(func(ent *Entity, c Clock) {
		calls++
		ent.Position.Y += c.Delta()
	})
	clk := NewStepClock(0.5)
	clk.Tick()
	e.Update(clk)
	if calls != 1 || e.Position.Y != 0.5 {
		t.Errorf("calls = %d, Y = %v; want 1, 0.5", calls, e.Position.Y)
	}
}

type frameBehavior struct{}

func (frameBehavior) Update(*Entity, Clock) {}

func (frameBehavior) Frame(_ *Entity, tick, _ int) Frame {
	return lineFrame(0, 0, float64(tick), 0)
}

func TestEntityFrameSource(t *testing.T) {
	e := NewEntity("e", NewAnimation(lineFrame(0, 0, 1, 1)), Point{}, Size{Height: 1, Width: 1})
	e.Behavior = frameBehavior{}
	seg := e.Frame(7, 24)[0].(Segment)
	if seg.End != (Point{7, 0}) {
		t.Errorf("End = %v, want (7,0) from the behavior", seg.End)
	}
}

func TestEntityWorldFrame(t *testing.T) {
	anim := NewAnimation(lineFrame(0, 0, 2, 1))
	e := NewEntity("e", anim, Point{X: 10, Y: 20}, Size{Height: 4, Width: 6})
	seg := e.WorldFrame(0, 24)[0].(Segment)
	if !approxEqual(seg.Start.X, 7, 1e-9) || !approxEqual(seg.Start.Y, 20, 1e-9) {
		t.Errorf("Start = %v, want (7,20)", seg.Start)
	}
	if !approxEqual(seg.End.X, 13, 1e-9) || !approxEqual(seg.End.Y, 24, 1e-9) {
		t.Errorf("End = %v, want (13,24)", seg.End)
	}
}
