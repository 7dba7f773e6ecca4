package assets

import "github.com/phanxgames/adventure"

// polyline returns the segments joining consecutive (x, y) pairs of xy.
func polyline(style adventure.LineStyle, xy ...float64) adventure.Frame {
	pts := points(xy...)
	frame := make(adventure.Frame, 0, len(pts))
	for i := 1; i < len(pts); i++ {
		frame = append(frame, adventure.Segment{Start: pts[i-1], End: pts[i], Style: style})
	}
	return frame
}

// fill returns a one-polygon frame.
func fill(color string, xy ...float64) adventure.Frame {
	return adventure.Frame{adventure.MustFill(points(xy...), color)}
}

// fillEdged is fill with a distinct outline color.
func fillEdged(color, edge string, xy ...float64) adventure.Frame {
	return adventure.Frame{adventure.MustFill(points(xy...), color, adventure.WithEdgeColor(edge))}
}

func points(xy ...float64) []adventure.Point {
	if len(xy)%2 != 0 {
		panic("assets: odd coordinate count")
	}
	pts := make([]adventure.Point, 0, len(xy)/2)
	for i := 0; i < len(xy); i += 2 {
		pts = append(pts, adventure.Point{X: xy[i], Y: xy[i+1]})
	}
	return pts
}

// concat joins frames into a new frame.
func concat(parts ...adventure.Frame) adventure.Frame {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make(adventure.Frame, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
