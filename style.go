package adventure

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// ValidationError reports a drawing primitive built with an invalid field.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// shortColors are the single-letter color codes accepted alongside the
// SVG color names.
var shortColors = map[string]color.RGBA{
	"b": {0x1f, 0x3f, 0xbf, 0xff},
	"g": {0x00, 0x80, 0x00, 0xff},
	"r": {0xff, 0x00, 0x00, 0xff},
	"c": {0x00, 0xbf, 0xbf, 0xff},
	"m": {0xbf, 0x00, 0xbf, 0xff},
	"y": {0xbf, 0xbf, 0x00, 0xff},
	"k": {0x00, 0x00, 0x00, 0xff},
	"w": {0xff, 0xff, 0xff, 0xff},
}

// ResolveColor maps a color name to its RGBA value. Accepted names are the
// single-letter codes b, g, r, c, m, y, k, w and every SVG 1.1 color name
// (lowercase, e.g. "sandybrown").
func ResolveColor(name string) (color.RGBA, bool) {
	if c, ok := shortColors[name]; ok {
		return c, true
	}
	c, ok := colornames.Map[name]
	return c, ok
}

// Dash selects the stroke pattern of a line.
type Dash string

const (
	DashSolid   Dash = "-"  // continuous stroke
	DashDashed  Dash = "--" // long dashes
	DashDashDot Dash = "-." // dash followed by a dot
	DashDotted  Dash = ":"  // dots
)

func (d Dash) valid() bool {
	switch d {
	case DashSolid, DashDashed, DashDashDot, DashDotted:
		return true
	}
	return false
}

// Marker selects the symbol drawn at each endpoint of a line.
type Marker string

const (
	MarkerNone    Marker = ""
	MarkerCircle  Marker = "o"
	MarkerSquare  Marker = "s"
	MarkerTriUp   Marker = "^"
	MarkerTriDown Marker = "v"
	MarkerCross   Marker = "x"
	MarkerPlus    Marker = "+"
)

func (m Marker) valid() bool {
	switch m {
	case MarkerNone, MarkerCircle, MarkerSquare, MarkerTriUp, MarkerTriDown, MarkerCross, MarkerPlus:
		return true
	}
	return false
}

// LineStyle describes how a Segment is stroked. A LineStyle can only be
// obtained through NewLineStyle, so every value in circulation is valid.
type LineStyle struct {
	color   string
	weight  float64
	dash    Dash
	marker  Marker
	opacity float64
}

// LineOption customises a LineStyle under construction.
type LineOption func(*LineStyle)

// WithDash sets the stroke pattern. Default DashSolid.
func WithDash(d Dash) LineOption {
	return func(s *LineStyle) { s.dash = d }
}

// WithMarker sets the endpoint marker. Default MarkerNone.
func WithMarker(m Marker) LineOption {
	return func(s *LineStyle) { s.marker = m }
}

// WithOpacity sets the stroke opacity in [0, 1]. Default 1.
func WithOpacity(a float64) LineOption {
	return func(s *LineStyle) { s.opacity = a }
}

// NewLineStyle builds a validated LineStyle.
func NewLineStyle(colorName string, weight float64, opts ...LineOption) (LineStyle, error) {
	s := LineStyle{
		color:   colorName,
		weight:  weight,
		dash:    DashSolid,
		marker:  MarkerNone,
		opacity: 1,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.validate(); err != nil {
		return LineStyle{}, err
	}
	return s, nil
}

// MustLineStyle is like NewLineStyle but panics on invalid input. Intended
// for static asset tables.
func MustLineStyle(colorName string, weight float64, opts ...LineOption) LineStyle {
	s, err := NewLineStyle(colorName, weight, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s LineStyle) validate() error {
	if _, ok := ResolveColor(s.color); !ok {
		return &ValidationError{Field: "color", Value: s.color, Reason: "unknown color name"}
	}
	if !isFinite(s.weight) || s.weight < 0 {
		return &ValidationError{Field: "weight", Value: s.weight, Reason: "must be a finite value >= 0"}
	}
	if !s.dash.valid() {
		return &ValidationError{Field: "dash", Value: s.dash, Reason: "unknown dash style"}
	}
	if !s.marker.valid() {
		return &ValidationError{Field: "marker", Value: s.marker, Reason: "unknown marker"}
	}
	if err := validateOpacity(s.opacity); err != nil {
		return err
	}
	return nil
}

func validateOpacity(a float64) error {
	if !(a >= 0 && a <= 1) {
		return &ValidationError{Field: "opacity", Value: a, Reason: "must be within [0, 1]"}
	}
	return nil
}

// Color returns the color name.
func (s LineStyle) Color() string { return s.color }

// Weight returns the stroke width.
func (s LineStyle) Weight() float64 { return s.weight }

// Dash returns the stroke pattern.
func (s LineStyle) Dash() Dash { return s.dash }

// Marker returns the endpoint marker.
func (s LineStyle) Marker() Marker { return s.marker }

// Opacity returns the stroke opacity.
func (s LineStyle) Opacity() float64 { return s.opacity }

// faded derives a weaker copy used for extruded geometry. Multipliers are
// clamped to [0, 1] so the result stays valid.
func (s LineStyle) faded(opacityMul, weightMul float64, dash Dash) LineStyle {
	s.opacity *= clamp01(opacityMul)
	s.weight *= clamp01(weightMul)
	if dash != "" {
		s.dash = dash
	}
	return s
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
