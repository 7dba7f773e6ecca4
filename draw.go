package adventure

// Draw is a single drawing primitive: either a Segment or a Fill. The set of
// implementations is closed; renderers switch on the concrete type.
type Draw interface {
	isDraw()
}

// Segment is a straight stroke between two points.
type Segment struct {
	Start, End Point
	Style      LineStyle
}

func (Segment) isDraw() {}

// Fill is a closed polygon. Vertex order is significant for triangulation
// and side-face synthesis, not for area.
type Fill struct {
	points    []Point
	color     string
	opacity   float64
	edgeColor string
}

func (Fill) isDraw() {}

// FillOption customises a Fill under construction.
type FillOption func(*Fill)

// WithFillOpacity sets the fill opacity in [0, 1]. Default 1.
func WithFillOpacity(a float64) FillOption {
	return func(f *Fill) { f.opacity = a }
}

// WithEdgeColor sets the outline color. Default is the fill color.
func WithEdgeColor(name string) FillOption {
	return func(f *Fill) { f.edgeColor = name }
}

// NewFill builds a validated Fill. The points slice is copied.
func NewFill(points []Point, colorName string, opts ...FillOption) (Fill, error) {
	f := Fill{
		points:  append([]Point(nil), points...),
		color:   colorName,
		opacity: 1,
	}
	for _, opt := range opts {
		opt(&f)
	}
	if _, ok := ResolveColor(f.color); !ok {
		return Fill{}, &ValidationError{Field: "color", Value: f.color, Reason: "unknown color name"}
	}
	if f.edgeColor != "" {
		if _, ok := ResolveColor(f.edgeColor); !ok {
			return Fill{}, &ValidationError{Field: "edge color", Value: f.edgeColor, Reason: "unknown color name"}
		}
	}
	if err := validateOpacity(f.opacity); err != nil {
		return Fill{}, err
	}
	return f, nil
}

// MustFill is like NewFill but panics on invalid input. Intended for static
// asset tables.
func MustFill(points []Point, colorName string, opts ...FillOption) Fill {
	f, err := NewFill(points, colorName, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Points returns the polygon vertices. The returned slice MUST NOT be mutated.
func (f Fill) Points() []Point { return f.points }

// Color returns the fill color name.
func (f Fill) Color() string { return f.color }

// Opacity returns the fill opacity.
func (f Fill) Opacity() float64 { return f.opacity }

// EdgeColor returns the outline color name, falling back to the fill color.
func (f Fill) EdgeColor() string {
	if f.edgeColor == "" {
		return f.color
	}
	return f.edgeColor
}

// withPoints returns a copy of f with new vertices and the opacity scaled.
func (f Fill) withPoints(points []Point, opacityMul float64) Fill {
	f.points = points
	f.opacity *= clamp01(opacityMul)
	return f
}

// Frame is one still image: draws in paint order.
type Frame []Draw

// mapFrame returns a new Frame with every point passed through fn.
func mapFrame(frame Frame, fn func(Point) Point) Frame {
	if len(frame) == 0 {
		return nil
	}
	out := make(Frame, 0, len(frame))
	for _, d := range frame {
		switch d := d.(type) {
		case Segment:
			out = append(out, Segment{Start: fn(d.Start), End: fn(d.End), Style: d.Style})
		case Fill:
			pts := make([]Point, len(d.points))
			for i, p := range d.points {
				pts[i] = fn(p)
			}
			out = append(out, d.withPoints(pts, 1))
		}
	}
	return out
}

// PrimitiveCount returns the total number of draws across batches.
func PrimitiveCount(batches []Frame) int {
	n := 0
	for _, b := range batches {
		n += len(b)
	}
	return n
}
