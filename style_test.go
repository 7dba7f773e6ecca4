package adventure

import (
	"errors"
	"math"
	"testing"
)

func TestNewLineStyleDefaults(t *testing.T) {
	s, err := NewLineStyle("b", 2)
	if err != nil {
		t.Fatalf("NewLineStyle: %v", err)
	}
	if s.Dash() != DashSolid || s.Marker() != MarkerNone || s.Opacity() != 1 {
		t.Errorf("defaults = %q %q %v, want solid, none, 1", s.Dash(), s.Marker(), s.Opacity())
	}
	if s.Color() != "b" || s.Weight() != 2 {
		t.Errorf("Color/Weight = %q/%v", s.Color(), s.Weight())
	}
}

func TestNewLineStyleRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		color string
		w     float64
		opts  []LineOption
		field string
	}{
		{"unknown color", "notacolor", 1, nil, "color"},
		{"negative weight", "r", -1, nil, "weight"},
		{"NaN weight", "r", math.NaN(), nil, "weight"},
		{"infinite weight", "r", math.Inf(1), nil, "weight"},
		{"bad dash", "r", 1, []LineOption{WithDash("~")}, "dash"},
		{"bad marker", "r", 1, []LineOption{WithMarker("*")}, "marker"},
		{"opacity above one", "r", 1, []LineOption{WithOpacity(1.5)}, "opacity"},
		{"NaN opacity", "r", 1, []LineOption{WithOpacity(math.NaN())}, "opacity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLineStyle(tt.color, tt.w, tt.opts...)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestZeroWeightAllowed(t *testing.T) {
	if _, err := NewLineStyle("k", 0); err != nil {
		t.Errorf("weight 0: %v", err)
	}
}

func TestMustLineStylePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLineStyle did not panic on an unknown color")
		}
	}()
	MustLineStyle("nope", 1)
}

func TestResolveColor(t *testing.T) {
	for _, name := range []string{"b", "g", "r", "c", "m", "y", "k", "w", "sandybrown", "darkgray", "peachpuff"} {
		if _, ok := ResolveColor(name); !ok {
			t.Errorf("ResolveColor(%q) failed", name)
		}
	}
	if _, ok := ResolveColor("Blue"); ok {
		t.Error("ResolveColor accepted a capitalised name")
	}
}

func TestFadedStaysValid(t *testing.T) {
	s := MustLineStyle("r", 4, WithOpacity(0.8))
	f := s.faded(0.5, 2, DashDashed)
	if !approxEqual(f.Opacity(), 0.4, 1e-12) {
		t.Errorf("Opacity = %v, want 0.4", f.Opacity())
	}
	if f.Weight() != 4 {
		t.Errorf("Weight = %v, want 4 (multiplier clamped to 1)", f.Weight())
	}
	if f.Dash() != DashDashed {
		t.Errorf("Dash = %q, want --", f.Dash())
	}
	if err := f.validate(); err != nil {
		t.Errorf("faded style invalid: %v", err)
	}
	if s.Dash() != DashSolid {
		t.Error("faded mutated the original style")
	}
}

func TestNewFill(t *testing.T) {
	pts := []Point{{0, 0}, {1, 0}, {0, 1}}
	f, err := NewFill(pts, "g", WithFillOpacity(0.5))
	if err != nil {
		t.Fatalf("NewFill: %v", err)
	}
	pts[0] = Point{9, 9}
	if f.Points()[0] != (Point{0, 0}) {
		t.Error("NewFill did not copy its points")
	}
	if f.EdgeColor() != "g" {
		t.Errorf("EdgeColor = %q, want fill color", f.EdgeColor())
	}
	if f.Opacity() != 0.5 {
		t.Errorf("Opacity = %v, want 0.5", f.Opacity())
	}

	f, err = NewFill(pts, "g", WithEdgeColor("k"))
	if err != nil || f.EdgeColor() != "k" {
		t.Errorf("EdgeColor = %q (%v), want k", f.EdgeColor(), err)
	}
}

func TestNewFillRejectsInvalid(t *testing.T) {
	pts := []Point{{0, 0}, {1, 0}, {0, 1}}
	if _, err := NewFill(pts, "nope"); err == nil {
		t.Error("unknown fill color accepted")
	}
	if _, err := NewFill(pts, "g", WithEdgeColor("nope")); err == nil {
		t.Error("unknown edge color accepted")
	}
	if _, err := NewFill(pts, "g", WithFillOpacity(-0.1)); err == nil {
		t.Error("negative opacity accepted")
	}
}
