package easel

import (
	"math"
)

// Capper implements Cap, with p the path to append to, halfWidth the half width of the stroke, pivot the pivot point around which to construct a cap, and n0 the normal at the open end of the path. The length of n0 is equal to the halfWidth.
type Capper interface {
	Cap(*Path, float64, Point, Point)
}

// CapperFunc maps a function to a Capper.
type CapperFunc func(*Path, float64, Point, Point)

func (f CapperFunc) Cap(p *Path, halfWidth float64, pivot, n0 Point) {
	f(p, halfWidth, pivot, n0)
}

// RoundCapper caps the start or end of a path by a round cap.
var RoundCapper Capper = CapperFunc(roundCapper)

func roundCapper(p *Path, halfWidth float64, pivot, n0 Point) {
	end := pivot.Sub(n0)
	p.ArcTo(halfWidth, halfWidth, 0.0, false, true, end.X, end.Y)
}

// ButtCapper caps the start or end of a path by a butt cap.
var ButtCapper Capper = CapperFunc(buttCapper)

func buttCapper(p *Path, halfWidth float64, pivot, n0 Point) {
	end := pivot.Sub(n0)
	p.LineTo(end.X, end.Y)
}

// SquareCapper caps the start or end of a path by a square cap.
var SquareCapper Capper = CapperFunc(squareCapper)

func squareCapper(p *Path, halfWidth float64, pivot, n0 Point) {
	e := n0.Rot90CCW()
	corner1 := pivot.Add(e).Add(n0)
	corner2 := pivot.Add(e).Sub(n0)
	end := pivot.Sub(n0)
	p.LineTo(corner1.X, corner1.Y)
	p.LineTo(corner2.X, corner2.Y)
	p.LineTo(end.X, end.Y)
}

// Joiner implements Join, with rhs the right-hand and lhs the left-hand path to append to, halfWidth the half width of the stroke, pivot the point where the two line segments meet, and n0 and n1 the normals at the end of the previous and the start of the next segment. The lengths of n0 and n1 are equal to the halfWidth.
type Joiner interface {
	Join(*Path, *Path, float64, Point, Point, Point)
}

// JoinerFunc maps a function to a Joiner.
type JoinerFunc func(*Path, *Path, float64, Point, Point, Point)

func (f JoinerFunc) Join(rhs, lhs *Path, halfWidth float64, pivot, n0, n1 Point) {
	f(rhs, lhs, halfWidth, pivot, n0, n1)
}

// BevelJoiner connects two path segments by a linear join.
var BevelJoiner Joiner = JoinerFunc(bevelJoiner)

func bevelJoiner(rhs, lhs *Path, halfWidth float64, pivot, n0, n1 Point) {
	if n0.Equals(n1) {
		return
	}

	rEnd := pivot.Add(n1)
	lEnd := pivot.Sub(n1)
	rhs.LineTo(rEnd.X, rEnd.Y)
	lhs.LineTo(lEnd.X, lEnd.Y)
}

// RoundJoiner connects two path segments by a round join.
var RoundJoiner Joiner = JoinerFunc(roundJoiner)

func roundJoiner(rhs, lhs *Path, halfWidth float64, pivot, n0, n1 Point) {
	if n0.Equals(n1) {
		return
	}

	rEnd := pivot.Add(n1)
	lEnd := pivot.Sub(n1)
	cw := 0.0 <= n0.Rot90CW().Dot(n1)
	if cw { // bend to the right, ie. CW
		rhs.LineTo(rEnd.X, rEnd.Y)
		lhs.ArcTo(halfWidth, halfWidth, 0.0, false, false, lEnd.X, lEnd.Y)
	} else { // bend to the left, ie. CCW
		rhs.ArcTo(halfWidth, halfWidth, 0.0, false, true, rEnd.X, rEnd.Y)
		lhs.LineTo(lEnd.X, lEnd.Y)
	}
}

type strokeSegment struct {
	p0, p1 Point
	n      Point
}

// offsetPolyline offsets a flattened subpath to both sides and returns the right-hand and left-hand outlines. When the subpath is open, both sides are merged and capped into a single outline and the left-hand return value is nil.
func offsetPolyline(p *Path, halfWidth float64, cr Capper, jr Joiner) (*Path, *Path) {
	closed := false
	var segments []strokeSegment
	for scanner := p.Scanner(); scanner.Scan(); {
		cmd := scanner.Cmd()
		if cmd == MoveToCmd {
			continue
		}

		start, end := scanner.Start(), scanner.End()
		if !start.Equals(end) {
			n := end.Sub(start).Rot90CW().Norm(halfWidth)
			segments = append(segments, strokeSegment{start, end, n})
		}
		if cmd == CloseCmd {
			closed = true
		}
	}
	if len(segments) == 0 {
		return nil, nil
	}

	rhs, lhs := &Path{}, &Path{}
	rStart := segments[0].p0.Add(segments[0].n)
	lStart := segments[0].p0.Sub(segments[0].n)
	rhs.MoveTo(rStart.X, rStart.Y)
	lhs.MoveTo(lStart.X, lStart.Y)
	for i, cur := range segments {
		rEnd := cur.p1.Add(cur.n)
		lEnd := cur.p1.Sub(cur.n)
		rhs.LineTo(rEnd.X, rEnd.Y)
		lhs.LineTo(lEnd.X, lEnd.Y)

		// join with the next segment on the outside of the bend
		if i+1 < len(segments) {
			jr.Join(rhs, lhs, halfWidth, cur.p1, cur.n, segments[i+1].n)
		} else if closed {
			jr.Join(rhs, lhs, halfWidth, cur.p1, cur.n, segments[0].n)
		}
	}

	if closed {
		rhs.closeMerged()
		lhs.closeMerged()
		return rhs, lhs
	}

	// cap the ends and merge both sides into a single outline
	lhs = lhs.Reverse()
	cr.Cap(rhs, halfWidth, segments[len(segments)-1].p1, segments[len(segments)-1].n)
	rhs.Join(lhs)
	cr.Cap(rhs, halfWidth, segments[0].p0, segments[0].n.Neg())
	rhs.closeMerged()
	return rhs, nil
}

// Stroke converts the path into a filled path tracing its outline with width w. It uses cr to cap the start and end of open subpaths and jr to join the line segments of the flattened path. Closed subpaths become an outer and an inner outline running in opposite directions, leaving the interior open under the non-zero winding rule. The tolerance is the maximum deviation from the original path when flattening its curves.
func (p *Path) Stroke(w float64, cr Capper, jr Joiner, tolerance float64) *Path {
	if w <= 0.0 {
		return &Path{}
	}
	if cr == nil {
		cr = ButtCapper
	}
	if jr == nil {
		jr = RoundJoiner
	}

	sp := &Path{}
	halfWidth := w / 2.0
	for _, ps := range p.Flatten(tolerance).Split() {
		rhs, lhs := offsetPolyline(ps, halfWidth, cr, jr)
		if rhs == nil {
			continue
		} else if lhs == nil { // open subpath
			sp.Append(rhs)
			continue
		}

		// the inner outline must run opposite to the outer outline
		if ps.CCW() {
			lhs = lhs.Reverse()
		} else {
			rhs = rhs.Reverse()
		}
		sp.Append(rhs)
		sp.Append(lhs)
	}
	return sp
}

// Dash returns a new path that consists of dashes of the given lengths separated by gaps, walking the path from the given offset into the pattern. An odd number of lengths is repeated to form dash-gap pairs, and a negative offset wraps around the pattern. The path is flattened first. When no lengths are given, or any of them is not positive, the path is returned unchanged.
func (p *Path) Dash(offset float64, d ...float64) *Path {
	if len(d) == 0 {
		return p
	}
	for _, length := range d {
		if length <= 0.0 {
			return p
		}
	}
	if len(d)%2 == 1 {
		d = append(d, d...)
	}

	q := &Path{}
	for _, ps := range p.Flatten(0.0).Split() {
		q.Append(dashPolyline(ps, offset, d))
	}
	return q
}

func dashPolyline(ps *Path, offset float64, d []float64) *Path {
	period := 0.0
	for _, length := range d {
		period += length
	}

	pos := math.Mod(offset, period)
	if pos < 0.0 {
		pos += period
	}
	i := 0
	for d[i] <= pos {
		pos -= d[i]
		i = (i + 1) % len(d)
	}
	rem := d[i] - pos // remaining length of the current pattern element
	on := i%2 == 0

	coords := ps.Coords()
	if ps.Closed() {
		coords = append(coords, coords[0])
	}

	q := &Path{}
	cur := coords[0]
	if on {
		q.MoveTo(cur.X, cur.Y)
	}
	for j := 1; j < len(coords); j++ {
		end := coords[j]
		segLen := end.Sub(cur).Length()
		for rem < segLen {
			mid := cur.Interpolate(end, rem/segLen)
			if on {
				q.LineTo(mid.X, mid.Y)
			} else {
				q.MoveTo(mid.X, mid.Y)
			}
			segLen -= rem
			cur = mid

			i = (i + 1) % len(d)
			rem = d[i]
			on = !on
		}
		rem -= segLen
		if on {
			q.LineTo(end.X, end.Y)
		}
		cur = end
	}
	return q
}
