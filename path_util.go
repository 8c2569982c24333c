package easel

import (
	"math"
)

// EllipsePos returns the position on an ellipse with radii rx and ry, rotated by phi radians, centered at (cx,cy), at angle theta in radians.
func EllipsePos(rx, ry, phi, cx, cy, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	x := cx + rx*costheta*cosphi - ry*sintheta*sinphi
	y := cy + rx*costheta*sinphi + ry*sintheta*cosphi
	return Point{x, y}
}

// ellipseDeriv returns the derivative of the ellipse parametrization at angle theta, in the CCW direction.
func ellipseDeriv(rx, ry, phi, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	dx := -rx*sintheta*cosphi - ry*costheta*sinphi
	dy := -rx*sintheta*sinphi + ry*costheta*cosphi
	return Point{dx, dy}
}

// ellipseRadiiCorrection returns the scale factor for rx and ry so that the ellipse can span from start to end.
func ellipseRadiiCorrection(start Point, rx, ry, phi float64, end Point) float64 {
	diff := start.Sub(end)
	sinphi, cosphi := math.Sincos(phi)
	x1p := (cosphi*diff.X + sinphi*diff.Y) / 2.0
	y1p := (-sinphi*diff.X + cosphi*diff.Y) / 2.0
	return math.Sqrt(x1p*x1p/rx/rx + y1p*y1p/ry/ry)
}

// ellipseToCenter converts to the center arc format and returns the center point, the start angle and the end angle, with angles in radians. The rotation phi is in radians. When the end point equals the start point, the center is set to the start point and both angles are zero.
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func ellipseToCenter(x1, y1, rx, ry, phi float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64) {
	if Equal(x1, x2) && Equal(y1, y2) {
		return x1, y1, 0.0, 0.0
	}

	sinphi, cosphi := math.Sincos(phi)
	x1p := cosphi*(x1-x2)/2.0 + sinphi*(y1-y2)/2.0
	y1p := -sinphi*(x1-x2)/2.0 + cosphi*(y1-y2)/2.0

	// scale radii up if the arc constraint cannot be satisfied
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if 1.0 < radiiCheck {
		radiiScale := math.Sqrt(radiiCheck)
		rx *= radiiScale
		ry *= radiiScale
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0 // catch rounding errors
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosphi*cxp - sinphi*cyp + (x1+x2)/2.0
	cy := sinphi*cxp + cosphi*cyp + (y1+y2)/2.0

	// specify U and V vectors, the angles follow from their directions
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(ux / math.Sqrt(ux*ux+uy*uy))
	if uy < 0.0 {
		theta = -theta
	}
	theta = angleNorm(theta)

	deltaAcos := (ux*vx + uy*vy) / math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy))
	deltaAcos = math.Min(1.0, math.Max(-1.0, deltaAcos)) // catch rounding errors
	delta := math.Acos(deltaAcos)
	if ux*vy-uy*vx < 0.0 {
		delta = -delta
	}
	if !sweep && 0.0 < delta {
		delta -= 2.0 * math.Pi
	} else if sweep && delta < 0.0 {
		delta += 2.0 * math.Pi
	}
	return cx, cy, theta, theta + delta
}

// flattenEllipticArc approximates the arc from start to end by line segments appended to p, keeping the sagitta within tolerance.
func flattenEllipticArc(p *Path, start Point, rx, ry, phi float64, large, sweep bool, end Point, tolerance float64) {
	cx, cy, theta0, theta1 := ellipseToCenter(start.X, start.Y, rx, ry, phi, large, sweep, end.X, end.Y)

	r := math.Max(rx, ry)
	dtheta := math.Pi / 2.0
	if tolerance < r {
		dtheta = 2.0 * math.Acos(1.0-tolerance/r)
	}
	n := int(math.Ceil(math.Abs(theta1-theta0) / dtheta))
	for i := 1; i < n; i++ {
		theta := theta0 + (theta1-theta0)*float64(i)/float64(n)
		pos := EllipsePos(rx, ry, phi, cx, cy, theta)
		p.LineTo(pos.X, pos.Y)
	}
	p.LineTo(end.X, end.Y)
}

// arcToCube approximates the arc from start to end by cubic Béziers appended to p, using one Bézier per quadrant.
func arcToCube(p *Path, start Point, rx, ry, phi float64, large, sweep bool, end Point) {
	cx, cy, theta0, theta1 := ellipseToCenter(start.X, start.Y, rx, ry, phi, large, sweep, end.X, end.Y)
	n := int(math.Ceil(math.Abs(theta1-theta0) / (0.5 * math.Pi)))
	if n == 0 {
		p.LineTo(end.X, end.Y)
		return
	}

	dtheta := (theta1 - theta0) / float64(n)
	tanHalf := math.Tan(dtheta / 2.0)
	alpha := math.Sin(dtheta) * (math.Sqrt(4.0+3.0*tanHalf*tanHalf) - 1.0) / 3.0
	for i := 0; i < n; i++ {
		thetaA := theta0 + float64(i)*dtheta
		thetaB := thetaA + dtheta
		posA := EllipsePos(rx, ry, phi, cx, cy, thetaA)
		posB := EllipsePos(rx, ry, phi, cx, cy, thetaB)
		if i == n-1 {
			posB = end
		}
		cp1 := posA.Add(ellipseDeriv(rx, ry, phi, thetaA).Mul(alpha))
		cp2 := posB.Sub(ellipseDeriv(rx, ry, phi, thetaB).Mul(alpha))
		p.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, posB.X, posB.Y)
	}
}

////////////////////////////////////////////////////////////////

func quadraticToCubicBezier(p0, p1, p2 Point) (Point, Point) {
	c1 := p0.Interpolate(p1, 2.0/3.0)
	c2 := p2.Interpolate(p1, 2.0/3.0)
	return c1, c2
}

func quadraticBezierPos(p0, p1, p2 Point, t float64) Point {
	p0 = p0.Mul((1.0 - t) * (1.0 - t))
	p1 = p1.Mul(2.0 * t * (1.0 - t))
	p2 = p2.Mul(t * t)
	return p0.Add(p1).Add(p2)
}

func cubicBezierPos(p0, p1, p2, p3 Point, t float64) Point {
	p0 = p0.Mul((1.0 - t) * (1.0 - t) * (1.0 - t))
	p1 = p1.Mul(3.0 * t * (1.0 - t) * (1.0 - t))
	p2 = p2.Mul(3.0 * t * t * (1.0 - t))
	p3 = p3.Mul(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

func splitCubicBezier(p0, p1, p2, p3 Point, t float64) (Point, Point, Point, Point, Point, Point, Point, Point) {
	pm := p1.Interpolate(p2, t)

	q0 := p0
	q1 := p0.Interpolate(p1, t)
	q2 := q1.Interpolate(pm, t)

	r3 := p3
	r2 := p2.Interpolate(p3, t)
	r1 := pm.Interpolate(r2, t)

	r0 := q2.Interpolate(r1, t)
	q3 := r0
	return q0, q1, q2, q3, r0, r1, r2, r3
}

// split the curve and replace it by lines as long as maximum deviation = flatness is maintained
func flattenSmoothCubicBezier(p *Path, p0, p1, p2, p3 Point, flatness float64) {
	t := 0.0
	for t < 1.0 {
		s2nom := (p2.X-p0.X)*(p1.Y-p0.Y) - (p2.Y-p0.Y)*(p1.X-p0.X)
		s2denom := math.Hypot(p1.X-p0.X, p1.Y-p0.Y)
		if s2nom*s2denom == 0.0 {
			break
		}
		t = 2.0 * math.Sqrt(flatness/3.0*math.Abs(s2denom/s2nom))
		if t >= 1.0 {
			break
		}
		_, _, _, _, p0, p1, p2, p3 = splitCubicBezier(p0, p1, p2, p3, t)
		p.LineTo(p0.X, p0.Y)
	}
	p.LineTo(p3.X, p3.Y)
}

func findInflectionPointsCubicBezier(p0, p1, p2, p3 Point) (float64, float64) {
	ax := -p0.X + 3.0*p1.X - 3.0*p2.X + p3.X
	ay := -p0.Y + 3.0*p1.Y - 3.0*p2.Y + p3.Y
	bx := 3.0*p0.X - 6.0*p1.X + 3.0*p2.X
	by := 3.0*p0.Y - 6.0*p1.Y + 3.0*p2.Y
	cx := -3.0*p0.X + 3.0*p1.X
	cy := -3.0*p0.Y + 3.0*p1.Y

	tcusp := -0.5 * ((ay*cx - ax*cy) / (ay*bx - ax*by))
	if !(tcusp >= 0.0 && tcusp <= 1.0) { // handles NaN and Infs too
		return math.NaN(), math.NaN()
	}

	discriminant := tcusp*tcusp - ((by*cx-bx*cy)/(ay*bx-ax*by))/3.0
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		return tcusp, math.NaN()
	}
	q := math.Sqrt(discriminant)
	return tcusp - q, tcusp + q
}

func findInflectionPointRange(p0, p1, p2, p3 Point, t, flatness float64) (float64, float64) {
	if math.IsNaN(t) {
		return math.Inf(1), math.Inf(1)
	}

	// we state that s(t) = 3*s2*t^2 + (s3 - 3*s2)*t^3 (see paper on the r-s coordinate system)
	// with s(t) aligned perpendicular to the curve at t = 0
	// then we impose that s(tf) = flatness and find tf
	// at inflection points however, s2 = 0, so that s(t) = s3*t^3

	_, _, _, _, p0, p1, p2, p3 = splitCubicBezier(p0, p1, p2, p3, t)
	nr := p1.Sub(p0)
	ns := p3.Sub(p0)
	if nr.X == 0.0 && nr.Y == 0.0 {
		// if p0=p1, then rn (the velocity at t=0) needs adjustment
		// nr = lim[t->0](B'(t)) = 3*(p1-p0) + 6*t*((p1-p0)+(p2-p1)) + second order terms of t
		// if (p1-p0)->0, we use (p2-p1)
		nr = p2.Sub(p1)
	}

	if nr.X == 0.0 && nr.Y == 0.0 {
		// if rn is still zero, this curve has p0=p1=p2, so it is straight
		return 0.0, 1.0
	}

	s3 := math.Abs(ns.X*nr.Y-ns.Y*nr.X) / math.Hypot(nr.X, nr.Y)
	if s3 == 0.0 {
		return 0.0, 1.0 // can approximate whole curve linearly
	}

	tf := math.Cbrt(flatness / s3)
	return t - tf*(1-t), t + tf*(1-t)
}

// flattenCubicBezier appends a linear approximation of the Bézier to p, the pen must be at p0.
// see Flat, precise flattening of cubic Bezier path and offset curves, by T.F. Hain et al., 2005
// https://www.sciencedirect.com/science/article/pii/S0097849305001287
func flattenCubicBezier(p *Path, p0, p1, p2, p3 Point, flatness float64) {
	// 0 <= t1 <= 1 if t1 exists
	// 0 <= t2 <= 1 and t1 < t2 if t2 exists
	t1, t2 := findInflectionPointsCubicBezier(p0, p1, p2, p3)
	if math.IsNaN(t1) && math.IsNaN(t2) {
		// There are no inflection points or cusps, approximate linearly by subdivision.
		flattenSmoothCubicBezier(p, p0, p1, p2, p3, flatness)
		return
	}

	// t1min <= t1max; with t1min <= 1 and t2max >= 0
	// t2min <= t2max; with t2min <= 1 and t2max >= 0
	t1min, t1max := findInflectionPointRange(p0, p1, p2, p3, t1, flatness)
	t2min, t2max := findInflectionPointRange(p0, p1, p2, p3, t2, flatness)

	if math.IsNaN(t2) && t1min <= 0.0 && 1.0 <= t1max {
		// There is no second inflection point, and the first inflection point can be entirely approximated linearly.
		p.LineTo(p3.X, p3.Y)
		return
	}

	if 0.0 < t1min {
		// Flatten up to t1min
		q0, q1, q2, q3, _, _, _, _ := splitCubicBezier(p0, p1, p2, p3, t1min)
		flattenSmoothCubicBezier(p, q0, q1, q2, q3, flatness)
	}

	if 0.0 < t1max && t1max < 1.0 && t1max < t2min {
		// t1 and t2 ranges do not overlap, approximate t1 linearly
		_, _, _, _, q0, q1, q2, q3 := splitCubicBezier(p0, p1, p2, p3, t1max)
		p.LineTo(q0.X, q0.Y)
		if 1.0 <= t2min {
			// No t2 present, approximate the rest linearly by subdivision
			flattenSmoothCubicBezier(p, q0, q1, q2, q3, flatness)
			return
		}
	} else if 1.0 <= t2min {
		// t1 and t2 overlap but past the curve, approximate linearly
		p.LineTo(p3.X, p3.Y)
		return
	}

	// t1 and t2 exist and ranges might overlap
	if 0.0 < t2min {
		if t2min < t1max {
			// t2 range starts inside t1 range, approximate t1 range linearly
			_, _, _, _, q0, _, _, _ := splitCubicBezier(p0, p1, p2, p3, t1max)
			p.LineTo(q0.X, q0.Y)
		} else if 0.0 < t1max {
			// no overlap
			_, _, _, _, q0, q1, q2, q3 := splitCubicBezier(p0, p1, p2, p3, t1max)
			t2minq := (t2min - t1max) / (1 - t1max)
			q0, q1, q2, q3, _, _, _, _ = splitCubicBezier(q0, q1, q2, q3, t2minq)
			flattenSmoothCubicBezier(p, q0, q1, q2, q3, flatness)
		} else {
			// no t1, approximate up to t2min linearly by subdivision
			q0, q1, q2, q3, _, _, _, _ := splitCubicBezier(p0, p1, p2, p3, t2min)
			flattenSmoothCubicBezier(p, q0, q1, q2, q3, flatness)
		}
	}

	// handle (the rest of) t2
	if t2max < 1.0 {
		_, _, _, _, q0, q1, q2, q3 := splitCubicBezier(p0, p1, p2, p3, t2max)
		p.LineTo(q0.X, q0.Y)
		flattenSmoothCubicBezier(p, q0, q1, q2, q3, flatness)
	} else {
		// t2max extends beyond 1
		p.LineTo(p3.X, p3.Y)
	}
}
