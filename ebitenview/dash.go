package ebitenview

import (
	"math"

	"github.com/phanxgames/adventure"
)

// dashPattern returns alternating on/off lengths in pixels for d at the
// given stroke width. A nil pattern means a solid stroke.
func dashPattern(d adventure.Dash, width float64) []float64 {
	w := math.Max(width, 1)
	switch d {
	case adventure.DashDashed:
		return []float64{3.7 * w, 1.6 * w}
	case adventure.DashDashDot:
		return []float64{6.4 * w, 1.6 * w, 1 * w, 1.6 * w}
	case adventure.DashDotted:
		return []float64{1 * w, 1.65 * w}
	default:
		return nil
	}
}

// maxDashSpans caps the spans one segment may produce. Longer dashed lines
// are stroked solid.
const maxDashSpans = 4096

// dashMargin pads the clip rectangle so stroke caps at the edges survive.
const dashMargin = 16

// span is one visible piece of a dashed stroke.
type span struct {
	x0, y0, x1, y1 float64
}

// clipRect is an axis-aligned pixel rectangle.
type clipRect struct {
	minX, minY, maxX, maxY float64
}

// targetClip returns the pixel bounds of a w×h target padded by dashMargin.
func targetClip(w, h float64) clipRect {
	return clipRect{-dashMargin, -dashMargin, w + dashMargin, h + dashMargin}
}

// clipSegment returns the parameter range [t0, t1] of (x0,y0)-(x1,y1) that
// lies inside r (Liang-Barsky). ok is false when nothing is inside.
func clipSegment(x0, y0, x1, y1 float64, r clipRect) (t0, t1 float64, ok bool) {
	dx, dy := x1-x0, y1-y0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - r.minX, r.maxX - x0, y0 - r.minY, r.maxY - y0}
	t0, t1 = 0, 1
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, false
			}
			continue
		}
		v := q[i] / p[i]
		if p[i] < 0 {
			if v > t1 {
				return 0, 0, false
			}
			t0 = math.Max(t0, v)
		} else {
			if v < t0 {
				return 0, 0, false
			}
			t1 = math.Min(t1, v)
		}
	}
	return t0, t1, true
}

func finiteCoords(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// dashSpans splits the part of (x0,y0)-(x1,y1) inside clip into the visible
// spans of pattern. The pattern phase is measured from the unclipped start,
// so clipping never shifts the dashes.
func dashSpans(x0, y0, x1, y1 float64, pattern []float64, clip clipRect) []span {
	if !finiteCoords(x0, y0, x1, y1) {
		return nil
	}
	t0, t1, ok := clipSegment(x0, y0, x1, y1, clip)
	if !ok {
		return nil
	}
	dx, dy := x1-x0, y1-y0
	clipped := span{x0 + dx*t0, y0 + dy*t0, x0 + dx*t1, y0 + dy*t1}

	length := math.Hypot(dx, dy)
	if len(pattern) == 0 || length == 0 {
		return []span{clipped}
	}
	var period float64
	for _, p := range pattern {
		period += p
	}
	start, end := t0*length, t1*length
	if !(period > 0) || (end-start)/period*float64(len(pattern)) > 2*maxDashSpans {
		return []span{clipped}
	}

	// Find the pattern entry and the offset into it at start.
	i := 0
	phase := math.Mod(start, period)
	for k := 0; k < len(pattern) && phase >= pattern[i]; k++ {
		phase -= pattern[i]
		i = (i + 1) % len(pattern)
	}

	ux, uy := dx/length, dy/length
	spans := make([]span, 0, int((end-start)/period+1)*(len(pattern)+1)/2)
	pos := start
	for pos < end {
		stop := math.Min(pos+pattern[i]-phase, end)
		if i%2 == 0 && stop > pos {
			spans = append(spans, span{x0 + ux*pos, y0 + uy*pos, x0 + ux*stop, y0 + uy*stop})
		}
		pos = stop
		phase = 0
		i = (i + 1) % len(pattern)
	}
	return spans
}
