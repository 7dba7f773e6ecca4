package adventure

import "math"

// Affine is a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// identityTransform is the identity affine matrix.
var identityTransform = Affine{1, 0, 0, 1, 0, 0}

// rotateAbout returns Translate(pivot) * Rotate(angle) * Translate(-pivot).
func rotateAbout(angle float64, pivot Point) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{
		cos, sin,
		-sin, cos,
		pivot.X - cos*pivot.X + sin*pivot.Y,
		pivot.Y - sin*pivot.X - cos*pivot.Y,
	}
}

// scaleTranslate returns Translate(t) * Scale(sx, sy).
func scaleTranslate(sx, sy float64, t Point) Affine {
	return Affine{sx, 0, 0, sy, t.X, t.Y}
}

// multiplyAffine multiplies two affine matrices: result = p * c.
func multiplyAffine(p, c Affine) Affine {
	return Affine{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// Apply transforms a point.
func (m Affine) Apply(p Point) Point {
	return Point{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// TransformFrame returns a new Frame with every point transformed by m.
func TransformFrame(frame Frame, m Affine) Frame {
	if m == identityTransform {
		return frame
	}
	return mapFrame(frame, m.Apply)
}

// RotateFrame returns frame rotated by angle radians (counter-clockwise)
// about pivot.
func RotateFrame(frame Frame, angle float64, pivot Point) Frame {
	if angle == 0 {
		return frame
	}
	return TransformFrame(frame, rotateAbout(angle, pivot))
}

// TranslateFrame returns frame shifted by (dx, dy).
func TranslateFrame(frame Frame, dx, dy float64) Frame {
	if dx == 0 && dy == 0 {
		return frame
	}
	return TransformFrame(frame, Affine{1, 0, 0, 1, dx, dy})
}
