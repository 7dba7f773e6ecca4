package ebitenview

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/adventure"
)

// whitePixel is the source image for solid-color triangles.
var whitePixel *ebiten.Image

// ensureWhitePixel returns the lazily-initialized 1x1 white pixel.
func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// pixelMap converts y-up viewport coordinates into y-down pixels.
type pixelMap struct {
	vp   adventure.Rect
	w, h float64
}

func (m pixelMap) apply(p adventure.Point) (float32, float32) {
	x := (p.X - m.vp.X) / m.vp.Width * m.w
	y := m.h - (p.Y-m.vp.Y)/m.vp.Height*m.h
	return float32(x), float32(y)
}

// resolve returns the named color with opacity applied.
func resolve(name string, opacity float64) color.NRGBA {
	c, ok := adventure.ResolveColor(name)
	if !ok {
		c = color.RGBA{0, 0, 0, 0xff}
	}
	a := math.Max(0, math.Min(1, opacity))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}

// drawBatches paints every primitive in order.
func drawBatches(dst *ebiten.Image, m pixelMap, batches []adventure.Frame, lineScale float64) {
	for _, frame := range batches {
		for _, d := range frame {
			switch d := d.(type) {
			case adventure.Segment:
				drawSegment(dst, m, d, lineScale)
			case adventure.Fill:
				drawFill(dst, m, d)
			}
		}
	}
}

func drawSegment(dst *ebiten.Image, m pixelMap, s adventure.Segment, lineScale float64) {
	st := s.Style
	width := st.Weight() * lineScale
	clr := resolve(st.Color(), st.Opacity())
	x0, y0 := m.apply(s.Start)
	x1, y1 := m.apply(s.End)

	clip := targetClip(m.w, m.h)
	for _, sp := range dashSpans(float64(x0), float64(y0), float64(x1), float64(y1), dashPattern(st.Dash(), width), clip) {
		vector.StrokeLine(dst, float32(sp.x0), float32(sp.y0), float32(sp.x1), float32(sp.y1),
			float32(math.Max(width, 0.5)), clr, true)
	}

	if st.Marker() != adventure.MarkerNone {
		size := float32(math.Max(3*width, 3))
		drawMarker(dst, st.Marker(), x0, y0, size, clr)
		drawMarker(dst, st.Marker(), x1, y1, size, clr)
	}
}

func drawMarker(dst *ebiten.Image, mk adventure.Marker, x, y, size float32, clr color.Color) {
	r := size / 2
	switch mk {
	case adventure.MarkerCircle:
		vector.DrawFilledCircle(dst, x, y, r, clr, true)
	case adventure.MarkerSquare:
		vector.DrawFilledRect(dst, x-r, y-r, size, size, clr, true)
	case adventure.MarkerTriUp:
		fillPolygon(dst, []float32{x, y - r, x + r, y + r, x - r, y + r}, clr)
	case adventure.MarkerTriDown:
		fillPolygon(dst, []float32{x, y + r, x - r, y - r, x + r, y - r}, clr)
	case adventure.MarkerCross:
		vector.StrokeLine(dst, x-r, y-r, x+r, y+r, 1, clr, true)
		vector.StrokeLine(dst, x-r, y+r, x+r, y-r, 1, clr, true)
	case adventure.MarkerPlus:
		vector.StrokeLine(dst, x-r, y, x+r, y, 1, clr, true)
		vector.StrokeLine(dst, x, y-r, x, y+r, 1, clr, true)
	}
}

func drawFill(dst *ebiten.Image, m pixelMap, f adventure.Fill) {
	pts := f.Points()
	if len(pts) < 3 {
		return
	}
	xy := make([]float32, 0, 2*len(pts))
	for _, p := range pts {
		x, y := m.apply(p)
		xy = append(xy, x, y)
	}
	fillPolygon(dst, xy, resolve(f.Color(), f.Opacity()))

	if f.EdgeColor() != f.Color() {
		edge := resolve(f.EdgeColor(), f.Opacity())
		n := len(xy) / 2
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			vector.StrokeLine(dst, xy[2*i], xy[2*i+1], xy[2*j], xy[2*j+1], 1, edge, true)
		}
	}
}

// fillPolygon draws the polygon xy (x, y pairs) as a triangle fan. The
// even-odd fill rule makes the fan correct for concave polygons too.
func fillPolygon(dst *ebiten.Image, xy []float32, clr color.Color) {
	verts, inds := buildPolygonFan(xy, clr)
	if len(inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.FillRule = ebiten.FillRuleEvenOdd
	dst.DrawTriangles(verts, inds, ensureWhitePixel(), &op)
}

// buildPolygonFan triangulates a polygon as a fan around its first vertex.
// Vertices sample the centre of the white pixel and carry the color.
func buildPolygonFan(xy []float32, clr color.Color) ([]ebiten.Vertex, []uint16) {
	n := len(xy) / 2
	if n < 3 || n > math.MaxUint16 {
		return nil, nil
	}
	// Vertex colors are straight alpha; color.Color is premultiplied.
	r, g, b, a := clr.RGBA()
	var cr, cg, cb float32
	if a > 0 {
		cr = float32(r) / float32(a)
		cg = float32(g) / float32(a)
		cb = float32(b) / float32(a)
	}
	ca := float32(a) / 0xffff

	verts := make([]ebiten.Vertex, n)
	for i := range verts {
		verts[i] = ebiten.Vertex{
			DstX:   xy[2*i],
			DstY:   xy[2*i+1],
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	inds := make([]uint16, (n-2)*3)
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
	return verts, inds
}
