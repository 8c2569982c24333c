package easel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tolerance is the default maximum deviation between the original path and
// its flattened counterpart, in millimeters.
var Tolerance = 0.01

// Path segment commands. Each segment is stored in the data array as
// [cmd, values..., endX, endY, cmd], with the command value repeated at both
// ends so that the array can be scanned in either direction.
const (
	MoveToCmd = 1.0 << iota // MoveToCmd is a MoveTo command
	LineToCmd               // LineToCmd is a LineTo command
	QuadToCmd               // QuadToCmd is a QuadTo command
	CubeToCmd               // CubeToCmd is a CubeTo command
	ArcToCmd                // ArcToCmd is an ArcTo command
	CloseCmd                // CloseCmd is a Close command
)

// cmdLen returns the number of values (including the repeated commands) that a command occupies in the data array.
func cmdLen(cmd float64) int {
	switch cmd {
	case MoveToCmd, LineToCmd, CloseCmd:
		return 4
	case QuadToCmd:
		return 6
	case CubeToCmd, ArcToCmd:
		return 8
	}
	panic(fmt.Sprintf("unknown path command '%v'", cmd))
}

// toArcFlags unpacks the large and sweep boolean flags from their packed float representation.
func toArcFlags(f float64) (bool, bool) {
	large := f == 1.0 || f == 3.0
	sweep := f == 2.0 || f == 3.0
	return large, sweep
}

// fromArcFlags packs the large and sweep boolean flags into one float.
func fromArcFlags(large, sweep bool) float64 {
	f := 0.0
	if large {
		f += 1.0
	}
	if sweep {
		f += 2.0
	}
	return f
}

// Path defines a vector path in 2D, built up from MoveTo, LineTo, QuadTo,
// CubeTo, ArcTo and Close segments. The zero value is an empty path ready
// for use. Paths are not safe for concurrent use.
type Path struct {
	d []float64
}

// Empty returns true if the path does not draw anything.
func (p *Path) Empty() bool {
	return p == nil || len(p.d) <= cmdLen(MoveToCmd)
}

// Closed returns true if the last subpath of p is a closed path.
func (p *Path) Closed() bool {
	return 0 < len(p.d) && p.d[len(p.d)-1] == CloseCmd
}

// Copy returns a copy of p.
func (p *Path) Copy() *Path {
	q := &Path{d: make([]float64, len(p.d))}
	copy(q.d, p.d)
	return q
}

// Reset clears the path but retains the allocated memory for reuse.
func (p *Path) Reset() {
	p.d = p.d[:0]
}

// Len returns the number of segments.
func (p *Path) Len() int {
	n := 0
	for i := 0; i < len(p.d); i += cmdLen(p.d[i]) {
		n++
	}
	return n
}

// Equals returns true if p and q are equal within tolerance Epsilon.
func (p *Path) Equals(q *Path) bool {
	if len(p.d) != len(q.d) {
		return false
	}
	for i := 0; i < len(p.d); i++ {
		if !Equal(p.d[i], q.d[i]) {
			return false
		}
	}
	return true
}

// Pos returns the current position of the path, which is the end point of the last segment.
func (p *Path) Pos() Point {
	if 0 < len(p.d) {
		return Point{p.d[len(p.d)-3], p.d[len(p.d)-2]}
	}
	return Point{}
}

// StartPos returns the start point of the current subpath, ie. it returns the position of the last MoveTo segment.
func (p *Path) StartPos() Point {
	for i := len(p.d); 0 < i; {
		cmd := p.d[i-1]
		if cmd == MoveToCmd {
			return Point{p.d[i-3], p.d[i-2]}
		}
		i -= cmdLen(cmd)
	}
	return Point{}
}

// Coords returns the start and end point coordinates of all segments.
func (p *Path) Coords() []Point {
	coords := []Point{}
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		i += cmdLen(cmd)
		if cmd != CloseCmd {
			coords = append(coords, Point{p.d[i-3], p.d[i-2]})
		}
	}
	return coords
}

// Scanner returns a forward scanner over the segments of p.
func (p *Path) Scanner() *PathScanner {
	return &PathScanner{p: p, i: -1}
}

// ReverseScanner returns a backward scanner over the segments of p.
func (p *Path) ReverseScanner() *PathReverseScanner {
	return &PathReverseScanner{p: p, i: len(p.d)}
}

// MoveTo moves the path to (x,y) without connecting the path. It starts a new independent subpath. Multiple subpaths can be useful when negating parts of a previous path by overlapping it with a path in the opposite direction. Overlapping paths combine under the non-zero winding rule.
func (p *Path) MoveTo(x, y float64) *Path {
	if 0 < len(p.d) && p.d[len(p.d)-1] == MoveToCmd {
		p.d[len(p.d)-3] = x
		p.d[len(p.d)-2] = y
		return p
	}
	p.d = append(p.d, MoveToCmd, x, y, MoveToCmd)
	return p
}

// LineTo adds a linear path to (x,y).
func (p *Path) LineTo(x, y float64) *Path {
	start := p.Pos()
	end := Point{x, y}
	if start.Equals(end) {
		return p
	}
	if len(p.d) == 0 {
		p.MoveTo(0.0, 0.0)
	}
	p.d = append(p.d, LineToCmd, end.X, end.Y, LineToCmd)
	return p
}

// QuadTo adds a quadratic Bézier path with control point (cpx,cpy) and end point (x,y).
func (p *Path) QuadTo(cpx, cpy, x, y float64) *Path {
	start := p.Pos()
	cp := Point{cpx, cpy}
	end := Point{x, y}
	if start.Equals(cp) && start.Equals(end) {
		return p
	}
	if len(p.d) == 0 {
		p.MoveTo(0.0, 0.0)
	}
	p.d = append(p.d, QuadToCmd, cp.X, cp.Y, end.X, end.Y, QuadToCmd)
	return p
}

// CubeTo adds a cubic Bézier path with control points (cpx1,cpy1) and (cpx2,cpy2) and end point (x,y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) *Path {
	start := p.Pos()
	cp1 := Point{cpx1, cpy1}
	cp2 := Point{cpx2, cpy2}
	end := Point{x, y}
	if start.Equals(cp1) && start.Equals(cp2) && start.Equals(end) {
		return p
	}
	if len(p.d) == 0 {
		p.MoveTo(0.0, 0.0)
	}
	p.d = append(p.d, CubeToCmd, cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y, CubeToCmd)
	return p
}

// ArcTo adds an arc with radii rx and ry, with rot the counter clockwise rotation with respect to the coordinate system in degrees, large and sweep booleans (see https://developer.mozilla.org/en-US/docs/Web/SVG/Tutorial/Paths#Arcs), and (x,y) the end position of the pen. The start position of the pen was given by a previous command's end point.
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) *Path {
	start := p.Pos()
	end := Point{x, y}
	if start.Equals(end) {
		return p
	}
	if Equal(rx, 0.0) || math.IsInf(rx, 0) || Equal(ry, 0.0) || math.IsInf(ry, 0) {
		return p.LineTo(end.X, end.Y)
	}

	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if Equal(rx, ry) {
		rot = 0.0 // circle
	} else if rx < ry {
		rx, ry = ry, rx
		rot += 90.0
	}

	phi := angleNorm(rot * math.Pi / 180.0)
	if math.Pi <= phi { // phi is canonical within 0 <= phi < 180
		phi -= math.Pi
	}

	// scale radii up if they cannot fulfill the arc constraint
	lambda := ellipseRadiiCorrection(start, rx, ry, phi, end)
	if 1.0 < lambda {
		rx *= lambda
		ry *= lambda
	}

	if len(p.d) == 0 {
		p.MoveTo(0.0, 0.0)
	}
	p.d = append(p.d, ArcToCmd, rx, ry, phi, fromArcFlags(large, sweep), end.X, end.Y, ArcToCmd)
	return p
}

// Arc adds an elliptical arc with radii rx and ry, with rot the counter clockwise rotation in degrees, and theta0 and theta1 the angles in degrees of the ellipse (before rot is applied) between which the arc will run. If theta0 < theta1, the arc will run in a CCW direction. If the difference between theta0 and theta1 is bigger than 360 degrees, one full circle will be drawn and the remaining part of diff % 360, e.g. a difference of 810 degrees will draw one full circle and an arc over 90 degrees.
func (p *Path) Arc(rx, ry, rot, theta0, theta1 float64) *Path {
	phi := rot * math.Pi / 180.0
	theta0 *= math.Pi / 180.0
	theta1 *= math.Pi / 180.0
	dtheta := math.Abs(theta1 - theta0)

	sweep := theta0 < theta1
	large := math.Mod(dtheta, 2.0*math.Pi) > math.Pi
	p0 := EllipsePos(rx, ry, phi, 0.0, 0.0, theta0)
	p1 := EllipsePos(rx, ry, phi, 0.0, 0.0, theta1)

	start := p.Pos()
	center := start.Sub(p0)
	if dtheta >= 2.0*math.Pi {
		startOpposite := center.Sub(p0)
		p.ArcTo(rx, ry, rot, large, sweep, startOpposite.X, startOpposite.Y)
	}
	end := center.Add(p1)
	return p.ArcTo(rx, ry, rot, large, sweep, end.X, end.Y)
}

// Close closes a (sub)path with a line segment to the start of the subpath. It is equivalent to LineTo(start), but it draws a line between both the end and start of the subpath, without the need for a nib or cap.
func (p *Path) Close() *Path {
	if len(p.d) == 0 || p.Closed() {
		return p
	}
	start := p.StartPos()
	p.d = append(p.d, CloseCmd, start.X, start.Y, CloseCmd)
	return p
}

// closeMerged closes the current subpath, dropping a trailing line segment that already returns to the start since Close draws that line itself.
func (p *Path) closeMerged() *Path {
	if n := len(p.d); 2*cmdLen(MoveToCmd) <= n && p.d[n-1] == LineToCmd {
		start := p.StartPos()
		if Equal(p.d[n-3], start.X) && Equal(p.d[n-2], start.Y) {
			p.d = p.d[:n-cmdLen(LineToCmd)]
		}
	}
	return p.Close()
}

// Append appends path q to p and returns the extended path p.
func (p *Path) Append(q *Path) *Path {
	if q == nil || len(q.d) == 0 {
		return p
	}
	if q.d[0] != MoveToCmd {
		p.MoveTo(0.0, 0.0)
	}
	p.d = append(p.d, q.d...)
	return p
}

// Join joins path q to p and returns the extended path p. When p ends where q starts, q continues the last subpath of p instead of starting its own.
func (p *Path) Join(q *Path) *Path {
	if q == nil || len(q.d) == 0 {
		return p
	} else if len(p.d) == 0 || p.d[len(p.d)-1] == CloseCmd || q.d[0] != MoveToCmd {
		return p.Append(q)
	}

	x0, y0 := p.d[len(p.d)-3], p.d[len(p.d)-2]
	x1, y1 := q.d[1], q.d[2]
	if Equal(x0, x1) && Equal(y0, y1) {
		p.d = append(p.d, q.d[cmdLen(MoveToCmd):]...)
	} else {
		p.d = append(p.d, q.d...)
	}
	return p
}

// Translate returns a copy of p translated by (x,y).
func (p *Path) Translate(x, y float64) *Path {
	return p.Transform(Identity.Translate(x, y))
}

// Transform returns a copy of p transformed by affine transformation matrix m.
func (p *Path) Transform(m Matrix) *Path {
	p = p.Copy()
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		switch cmd {
		case MoveToCmd, LineToCmd, CloseCmd:
			end := m.Dot(Point{p.d[i+1], p.d[i+2]})
			p.d[i+1] = end.X
			p.d[i+2] = end.Y
		case QuadToCmd:
			cp := m.Dot(Point{p.d[i+1], p.d[i+2]})
			end := m.Dot(Point{p.d[i+3], p.d[i+4]})
			p.d[i+1] = cp.X
			p.d[i+2] = cp.Y
			p.d[i+3] = end.X
			p.d[i+4] = end.Y
		case CubeToCmd:
			cp1 := m.Dot(Point{p.d[i+1], p.d[i+2]})
			cp2 := m.Dot(Point{p.d[i+3], p.d[i+4]})
			end := m.Dot(Point{p.d[i+5], p.d[i+6]})
			p.d[i+1] = cp1.X
			p.d[i+2] = cp1.Y
			p.d[i+3] = cp2.X
			p.d[i+4] = cp2.Y
			p.d[i+5] = end.X
			p.d[i+6] = end.Y
		case ArcToCmd:
			rx, ry, phi := p.d[i+1], p.d[i+2], p.d[i+3]
			large, sweep := toArcFlags(p.d[i+4])
			end := m.Dot(Point{p.d[i+5], p.d[i+6]})

			// the axes of the transformed ellipse are the conjugate diameters
			// of the mapped axis vectors
			sinphi, cosphi := math.Sincos(phi)
			u := Point{
				m[0][0]*rx*cosphi + m[0][1]*rx*sinphi,
				m[1][0]*rx*cosphi + m[1][1]*rx*sinphi,
			}
			v := Point{
				-m[0][0]*ry*sinphi + m[0][1]*ry*cosphi,
				-m[1][0]*ry*sinphi + m[1][1]*ry*cosphi,
			}
			t0 := 0.5 * math.Atan2(2.0*u.Dot(v), u.Dot(u)-v.Dot(v))
			sint0, cost0 := math.Sincos(t0)
			major := Point{u.X*cost0 + v.X*sint0, u.Y*cost0 + v.Y*sint0}
			minor := Point{v.X*cost0 - u.X*sint0, v.Y*cost0 - u.Y*sint0}

			rx, ry = major.Length(), minor.Length()
			phi = major.Angle()
			if rx < ry {
				rx, ry = ry, rx
				phi += 0.5 * math.Pi
			}
			phi = angleNorm(phi)
			if math.Pi <= phi {
				phi -= math.Pi
			}
			if m.Det() < 0.0 {
				sweep = !sweep
			}

			p.d[i+1] = rx
			p.d[i+2] = ry
			p.d[i+3] = phi
			p.d[i+4] = fromArcFlags(large, sweep)
			p.d[i+5] = end.X
			p.d[i+6] = end.Y
		}
		i += cmdLen(cmd)
	}
	return p
}

// Bounds returns the exact bounding box rectangle of the path.
func (p *Path) Bounds() Rect {
	if len(p.d) < 4 {
		return Rect{}
	}

	// first command is a MoveTo
	start, end := Point{p.d[1], p.d[2]}, Point{}
	xmin, xmax := start.X, start.X
	ymin, ymax := start.Y, start.Y
	for i := 4; i < len(p.d); {
		cmd := p.d[i]
		switch cmd {
		case MoveToCmd, LineToCmd, CloseCmd:
			end = Point{p.d[i+1], p.d[i+2]}
		case QuadToCmd:
			cp := Point{p.d[i+1], p.d[i+2]}
			end = Point{p.d[i+3], p.d[i+4]}

			if tdenom := start.X - 2.0*cp.X + end.X; !Equal(tdenom, 0.0) {
				if t := (start.X - cp.X) / tdenom; 0.0 < t && t < 1.0 {
					x := quadraticBezierPos(start, cp, end, t).X
					xmin = math.Min(xmin, x)
					xmax = math.Max(xmax, x)
				}
			}
			if tdenom := start.Y - 2.0*cp.Y + end.Y; !Equal(tdenom, 0.0) {
				if t := (start.Y - cp.Y) / tdenom; 0.0 < t && t < 1.0 {
					y := quadraticBezierPos(start, cp, end, t).Y
					ymin = math.Min(ymin, y)
					ymax = math.Max(ymax, y)
				}
			}
		case CubeToCmd:
			cp1 := Point{p.d[i+1], p.d[i+2]}
			cp2 := Point{p.d[i+3], p.d[i+4]}
			end = Point{p.d[i+5], p.d[i+6]}

			a := -start.X + 3.0*cp1.X - 3.0*cp2.X + end.X
			b := 2.0*start.X - 4.0*cp1.X + 2.0*cp2.X
			c := -start.X + cp1.X
			t1, t2 := solveQuadraticFormula(a, b, c)
			for _, t := range []float64{t1, t2} {
				if !math.IsNaN(t) && 0.0 < t && t < 1.0 {
					x := cubicBezierPos(start, cp1, cp2, end, t).X
					xmin = math.Min(xmin, x)
					xmax = math.Max(xmax, x)
				}
			}

			a = -start.Y + 3.0*cp1.Y - 3.0*cp2.Y + end.Y
			b = 2.0*start.Y - 4.0*cp1.Y + 2.0*cp2.Y
			c = -start.Y + cp1.Y
			t1, t2 = solveQuadraticFormula(a, b, c)
			for _, t := range []float64{t1, t2} {
				if !math.IsNaN(t) && 0.0 < t && t < 1.0 {
					y := cubicBezierPos(start, cp1, cp2, end, t).Y
					ymin = math.Min(ymin, y)
					ymax = math.Max(ymax, y)
				}
			}
		case ArcToCmd:
			rx, ry, phi := p.d[i+1], p.d[i+2], p.d[i+3]
			large, sweep := toArcFlags(p.d[i+4])
			end = Point{p.d[i+5], p.d[i+6]}
			cx, cy, theta0, theta1 := ellipseToCenter(start.X, start.Y, rx, ry, phi, large, sweep, end.X, end.Y)

			// find the four extremes (top, bottom, left, right) and apply them
			// when they lie on the arc
			sinphi, cosphi := math.Sincos(phi)
			thetaRight := math.Atan2(-ry*sinphi, rx*cosphi)
			thetaTop := math.Atan2(rx*cosphi, ry*sinphi)
			thetaLeft := thetaRight + math.Pi
			thetaBottom := thetaTop + math.Pi
			dx := math.Sqrt(rx*rx*cosphi*cosphi + ry*ry*sinphi*sinphi)
			dy := math.Sqrt(rx*rx*sinphi*sinphi + ry*ry*cosphi*cosphi)
			if angleBetween(thetaLeft, theta0, theta1) {
				xmin = math.Min(xmin, cx-dx)
			}
			if angleBetween(thetaRight, theta0, theta1) {
				xmax = math.Max(xmax, cx+dx)
			}
			if angleBetween(thetaBottom, theta0, theta1) {
				ymin = math.Min(ymin, cy-dy)
			}
			if angleBetween(thetaTop, theta0, theta1) {
				ymax = math.Max(ymax, cy+dy)
			}
		}
		i += cmdLen(cmd)

		xmin = math.Min(xmin, end.X)
		xmax = math.Max(xmax, end.X)
		ymin = math.Min(ymin, end.Y)
		ymax = math.Max(ymax, end.Y)
		start = end
	}
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

// Flatten flattens all Bézier and arc segments into linear segments and returns a new path. It uses tolerance as the maximum deviation, or the package Tolerance when zero or negative.
func (p *Path) Flatten(tolerance float64) *Path {
	if tolerance <= 0.0 {
		tolerance = Tolerance
	}
	q := &Path{d: make([]float64, 0, len(p.d))}
	var start Point
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		switch cmd {
		case MoveToCmd:
			end := Point{p.d[i+1], p.d[i+2]}
			q.MoveTo(end.X, end.Y)
			start = end
		case LineToCmd:
			end := Point{p.d[i+1], p.d[i+2]}
			q.LineTo(end.X, end.Y)
			start = end
		case QuadToCmd:
			cp := Point{p.d[i+1], p.d[i+2]}
			end := Point{p.d[i+3], p.d[i+4]}
			cp1, cp2 := quadraticToCubicBezier(start, cp, end)
			flattenCubicBezier(q, start, cp1, cp2, end, tolerance)
			start = end
		case CubeToCmd:
			cp1 := Point{p.d[i+1], p.d[i+2]}
			cp2 := Point{p.d[i+3], p.d[i+4]}
			end := Point{p.d[i+5], p.d[i+6]}
			flattenCubicBezier(q, start, cp1, cp2, end, tolerance)
			start = end
		case ArcToCmd:
			rx, ry, phi := p.d[i+1], p.d[i+2], p.d[i+3]
			large, sweep := toArcFlags(p.d[i+4])
			end := Point{p.d[i+5], p.d[i+6]}
			flattenEllipticArc(q, start, rx, ry, phi, large, sweep, end, tolerance)
			start = end
		case CloseCmd:
			q.Close()
			start = Point{p.d[i+1], p.d[i+2]}
		}
		i += cmdLen(cmd)
	}
	return q
}

// ReplaceArcs returns a new path with all arc segments replaced by cubic Bézier approximations.
func (p *Path) ReplaceArcs() *Path {
	q := &Path{d: make([]float64, 0, len(p.d))}
	var start Point
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		if cmd == ArcToCmd {
			rx, ry, phi := p.d[i+1], p.d[i+2], p.d[i+3]
			large, sweep := toArcFlags(p.d[i+4])
			end := Point{p.d[i+5], p.d[i+6]}
			arcToCube(q, start, rx, ry, phi, large, sweep, end)
			start = end
		} else {
			n := cmdLen(cmd)
			q.d = append(q.d, p.d[i:i+n]...)
			start = Point{p.d[i+n-3], p.d[i+n-2]}
		}
		i += cmdLen(cmd)
	}
	return q
}

// Split splits the path into its subpaths, one for each MoveTo.
func (p *Path) Split() []*Path {
	var ps []*Path
	i, j := 0, 0
	for j < len(p.d) {
		cmd := p.d[j]
		if i < j && cmd == MoveToCmd {
			ps = append(ps, &Path{d: p.d[i:j:j]})
			i = j
		}
		j += cmdLen(cmd)
	}
	if i < j {
		ps = append(ps, &Path{d: p.d[i:j:j]})
	}
	return ps
}

// CCW returns true when the path runs counterclockwise, with the y axis pointing up. It looks at the polygon through the segment end points only, so it should be used on flattened subpaths.
func (p *Path) CCW() bool {
	coords := p.Coords()
	area := 0.0
	for i := 1; i < len(coords); i++ {
		area += coords[i-1].PerpDot(coords[i])
	}
	if 0 < len(coords) {
		area += coords[len(coords)-1].PerpDot(coords[0])
	}
	return 0.0 <= area
}

// Reverse returns a new path that is the same path as p but in the reverse direction.
func (p *Path) Reverse() *Path {
	ip := &Path{d: make([]float64, 0, len(p.d))}
	if len(p.d) == 0 {
		return ip
	}

	closed := false
	needsMoveTo := true
	for scanner := p.ReverseScanner(); scanner.Scan(); {
		end := scanner.Start() // the reversed segment ends where the original started
		if scanner.Cmd() == MoveToCmd {
			if closed {
				ip.closeMerged()
				closed = false
			}
			if needsMoveTo { // bare MoveTo subpath
				pos := scanner.End()
				ip.MoveTo(pos.X, pos.Y)
			}
			needsMoveTo = true
			continue
		}
		if needsMoveTo {
			pos := scanner.End()
			ip.MoveTo(pos.X, pos.Y)
			needsMoveTo = false
		}
		switch scanner.Cmd() {
		case CloseCmd:
			closed = true
			if !end.Equals(scanner.End()) {
				ip.LineTo(end.X, end.Y)
			}
		case LineToCmd:
			ip.LineTo(end.X, end.Y)
		case QuadToCmd:
			cp := scanner.CP1()
			ip.QuadTo(cp.X, cp.Y, end.X, end.Y)
		case CubeToCmd:
			cp1, cp2 := scanner.CP1(), scanner.CP2()
			ip.CubeTo(cp2.X, cp2.Y, cp1.X, cp1.Y, end.X, end.Y)
		case ArcToCmd:
			rx, ry, rot, large, sweep := scanner.Arc()
			ip.ArcTo(rx, ry, rot, large, !sweep, end.X, end.Y)
		}
	}
	if closed {
		ip.closeMerged()
	}
	return ip
}

// Fragments returns the SVG path fragment of each segment, in order. Joining all fragments yields the full SVG path description.
func (p *Path) Fragments() []string {
	fragments := make([]string, 0, p.Len())
	sb := strings.Builder{}
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		sb.Reset()
		switch cmd {
		case MoveToCmd:
			sb.WriteByte('M')
			writeFloat(&sb, p.d[i+1])
			sb.WriteByte(' ')
			writeFloat(&sb, p.d[i+2])
		case LineToCmd:
			sb.WriteByte('L')
			writeFloat(&sb, p.d[i+1])
			sb.WriteByte(' ')
			writeFloat(&sb, p.d[i+2])
		case QuadToCmd:
			sb.WriteByte('Q')
			for j := 1; j < 5; j++ {
				if 1 < j {
					sb.WriteByte(' ')
				}
				writeFloat(&sb, p.d[i+j])
			}
		case CubeToCmd:
			sb.WriteByte('C')
			for j := 1; j < 7; j++ {
				if 1 < j {
					sb.WriteByte(' ')
				}
				writeFloat(&sb, p.d[i+j])
			}
		case ArcToCmd:
			rx, ry, phi := p.d[i+1], p.d[i+2], p.d[i+3]
			large, sweep := toArcFlags(p.d[i+4])
			sb.WriteByte('A')
			writeFloat(&sb, rx)
			sb.WriteByte(' ')
			writeFloat(&sb, ry)
			sb.WriteByte(' ')
			writeFloat(&sb, phi*180.0/math.Pi)
			sb.WriteByte(' ')
			writeFlag(&sb, large)
			sb.WriteByte(' ')
			writeFlag(&sb, sweep)
			sb.WriteByte(' ')
			writeFloat(&sb, p.d[i+5])
			sb.WriteByte(' ')
			writeFloat(&sb, p.d[i+6])
		case CloseCmd:
			sb.WriteByte('z')
		}
		fragments = append(fragments, sb.String())
		i += cmdLen(cmd)
	}
	return fragments
}

// ToSVG returns the path in SVG path description format, see https://www.w3.org/TR/SVG/paths.html#PathData
func (p *Path) ToSVG() string {
	return strings.Join(p.Fragments(), "")
}

// String returns the SVG path description of p.
func (p *Path) String() string {
	return p.ToSVG()
}

func writeFloat(sb *strings.Builder, f float64) {
	if f == 0.0 {
		sb.WriteByte('0') // also catches negative zero
		return
	}
	sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
}

func writeFlag(sb *strings.Builder, b bool) {
	if b {
		sb.WriteByte('1')
	} else {
		sb.WriteByte('0')
	}
}
