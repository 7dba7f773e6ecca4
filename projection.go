package adventure

import "math"

// ProjectionConfig holds the empirically tuned constants of the
// pseudo-perspective projection. All of them may be overridden per camera.
type ProjectionConfig struct {
	// Epsilon floors every denominator; distances at or below it are culled.
	Epsilon float64
	// DistanceK is the numerator of the perspective scale (K).
	DistanceK float64
	// HeightK multiplies the camera height in the height ratio (K2).
	HeightK float64
	// WorldXFactor converts lateral world offsets into screen offsets.
	WorldXFactor float64
	// CullPad grows the viewport by this fraction before culling.
	CullPad float64

	// Extrude enables the synthetic back and side faces.
	Extrude bool
	// BackOpacity and BackWeight scale the style of back faces.
	BackOpacity float64
	BackWeight  float64
	// SideOpacity and SideWeight scale the style of connecting side geometry.
	SideOpacity float64
	SideWeight  float64
}

// DefaultProjectionConfig returns the stock projection constants.
func DefaultProjectionConfig() ProjectionConfig {
	return ProjectionConfig{
		Epsilon:      epsilon,
		DistanceK:    10,
		HeightK:      10,
		WorldXFactor: 0.1,
		CullPad:      0.05,
		Extrude:      true,
		BackOpacity:  0.45,
		BackWeight:   0.6,
		SideOpacity:  0.25,
		SideWeight:   0.5,
	}
}

func (c *Camera) eps() float64 {
	if c.Projection.Epsilon > 0 {
		return c.Projection.Epsilon
	}
	return epsilon
}

// Distance returns how far p lies in front of the camera plane.
func (c *Camera) Distance(p Point) float64 {
	return p.Y - c.Position.Y
}

// HorizonY returns the screen Y of the horizon line (viewport centre).
func (c *Camera) HorizonY() float64 {
	return c.Viewport.Y + c.Viewport.Height/2
}

// CentreX returns the screen X the camera looks along.
func (c *Camera) CentreX() float64 {
	return c.Viewport.X + c.Viewport.Width/2
}

// GroundY returns the screen Y where an entity at distance d stands:
// horizonY - horizonSpeed / max(d, eps). Nearer entities stand lower.
func (c *Camera) GroundY(d float64) float64 {
	return c.HorizonY() - c.HorizonSpeed/math.Max(d, c.eps())
}

// PerspectiveScale returns zoom * renderDistanceScale * K / max(d, eps).
func (c *Camera) PerspectiveScale(d float64) float64 {
	return math.Max(c.Zoom, MinZoom) * c.RenderDistanceScale * c.Projection.DistanceK / math.Max(d, c.eps())
}

// HeightRatio returns entityHeight / (cameraHeight * K2).
func (c *Camera) HeightRatio(entityHeight float64) float64 {
	eps := c.eps()
	return math.Max(entityHeight, eps) / math.Max(c.Height*c.Projection.HeightK, eps)
}

// InView reports whether p is finite and inside the padded viewport.
func (c *Camera) InView(p Point) bool {
	return inView(c.Viewport.Expand(c.Projection.CullPad), p)
}

func inView(vp Rect, p Point) bool {
	return p.IsFinite() && vp.Contains(p.X, p.Y)
}

// view is the projection of one depth slice of an entity.
type view struct {
	centreX float64
	groundY float64
	worldX  float64
	shape   float64
}

func (c *Camera) viewAt(e *Entity, d float64) view {
	persp := c.PerspectiveScale(d)
	return view{
		centreX: c.CentreX(),
		groundY: c.GroundY(d),
		worldX:  (e.Position.X - c.Position.X) * c.Projection.WorldXFactor * persp,
		shape:   persp * c.HeightRatio(e.Size.Height),
	}
}

func (v view) project(l Point) Point {
	return Point{v.centreX + v.worldX + l.X*v.shape, v.groundY + l.Y*v.shape}
}

func (v view) projectAll(local []Point) []Point {
	out := make([]Point, len(local))
	for i, p := range local {
		out[i] = v.project(p)
	}
	return out
}

// localFrame converts model-space geometry to normalised local units:
// horizontally centred on the bounds, resting on the bounds' floor, scaled
// to Size and divided by the target height.
func (c *Camera) localFrame(e *Entity, model Frame) Frame {
	h := math.Max(e.Size.Height, c.eps())
	sx, sy := e.Scale()
	b := e.Bounds()
	midX, minY := b.MidX(), b.MinY
	lift := e.Elevation / h
	return mapFrame(model, func(p Point) Point {
		return Point{(p.X - midX) * sx / h, (p.Y-minY)*sy/h + lift}
	})
}

// ProjectEntity converts e's model-space frame into screen-space draws.
// Entities at or behind the camera plane produce nothing. When the entity
// has depth, every back face is emitted first, then the side geometry,
// then the front faces. Primitives entirely outside the padded viewport, or
// with any non-finite coordinate, are dropped.
func (c *Camera) ProjectEntity(e *Entity, model Frame) Frame {
	eps := c.eps()
	d := c.Distance(e.Position)
	if !(d > eps) || len(model) == 0 {
		return nil
	}
	local := c.localFrame(e, model)
	vp := c.Viewport.Expand(c.Projection.CullPad)
	front := c.viewAt(e, d)
	cfg := c.Projection

	out := make(Frame, 0, len(local))
	depth := e.Size.Depth
	if cfg.Extrude && depth > eps && isFinite(depth) {
		back := c.viewAt(e, d+depth)

		for _, dr := range local {
			switch dr := dr.(type) {
			case Segment:
				out = appendSegment(out, vp, back.project(dr.Start), back.project(dr.End),
					dr.Style.faded(cfg.BackOpacity, cfg.BackWeight, ""))
			case Fill:
				out = appendFill(out, vp, dr, back.projectAll(dr.points), cfg.BackOpacity)
			}
		}

		for _, dr := range local {
			switch dr := dr.(type) {
			case Segment:
				side := dr.Style.faded(cfg.SideOpacity, cfg.SideWeight, DashDashed)
				out = appendSegment(out, vp, front.project(dr.Start), back.project(dr.Start), side)
				out = appendSegment(out, vp, front.project(dr.End), back.project(dr.End), side)
			case Fill:
				n := len(dr.points)
				if n < 3 {
					continue
				}
				f := front.projectAll(dr.points)
				b := back.projectAll(dr.points)
				for i := 0; i < n; i++ {
					j := (i + 1) % n
					out = appendFill(out, vp, dr, []Point{f[i], f[j], b[j], b[i]}, cfg.SideOpacity)
				}
			}
		}
	}

	for _, dr := range local {
		switch dr := dr.(type) {
		case Segment:
			out = appendSegment(out, vp, front.project(dr.Start), front.project(dr.End), dr.Style)
		case Fill:
			out = appendFill(out, vp, dr, front.projectAll(dr.points), 1)
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// ProjectBackground maps a unit-square frame onto the viewport without any
// camera transform.
func (c *Camera) ProjectBackground(frame Frame) Frame {
	vp := c.Viewport
	padded := vp.Expand(c.Projection.CullPad)
	out := make(Frame, 0, len(frame))
	toScreen := func(p Point) Point {
		return Point{vp.X + p.X*vp.Width, vp.Y + p.Y*vp.Height}
	}
	for _, dr := range frame {
		switch dr := dr.(type) {
		case Segment:
			out = appendSegment(out, padded, toScreen(dr.Start), toScreen(dr.End), dr.Style)
		case Fill:
			pts := make([]Point, len(dr.points))
			for i, p := range dr.points {
				pts[i] = toScreen(p)
			}
			out = appendFill(out, padded, dr, pts, 1)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// appendSegment keeps the segment when both endpoints are finite and at
// least one lies in view.
func appendSegment(out Frame, vp Rect, s, e Point, style LineStyle) Frame {
	if !s.IsFinite() || !e.IsFinite() {
		return out
	}
	if !inView(vp, s) && !inView(vp, e) {
		return out
	}
	return append(out, Segment{Start: s, End: e, Style: style})
}

// appendFill keeps the polygon when it has at least three finite vertices
// and any of them lies in view.
func appendFill(out Frame, vp Rect, src Fill, pts []Point, opacityMul float64) Frame {
	if len(pts) < 3 {
		return out
	}
	visible := false
	for _, p := range pts {
		if !p.IsFinite() {
			return out
		}
		if !visible && vp.Contains(p.X, p.Y) {
			visible = true
		}
	}
	if !visible {
		return out
	}
	return append(out, src.withPoints(pts, opacityMul))
}
