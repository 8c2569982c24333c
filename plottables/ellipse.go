package plottables

import (
	"math"

	easel "github.com/gvsucis/f25-spherical-easel"
	"github.com/gvsucis/f25-spherical-easel/settings"
)

// Ellipse is the plottable for an ellipse on the sphere, defined by two foci
// and the angular semi-axis lengths a and b.
type Ellipse struct {
	curve

	focus1, focus2 easel.Vector3
	a, b           float64
}

// NewEllipse returns an ellipse plottable with the given name. The foci start
// at the north pole and the axes at zero, call the setters and UpdateDisplay
// to give it a shape. The stroke widths are shared between every ellipse on
// the canvas.
func NewEllipse(name string, canvas *easel.Canvas, cfg *settings.Settings, widths *StrokeWidths) *Ellipse {
	return &Ellipse{
		curve:  newCurve(name, canvas, cfg, &cfg.Ellipse, widths),
		focus1: easel.Vector3{Z: 1.0},
		focus2: easel.Vector3{Z: 1.0},
	}
}

// Focus1 returns the first focus.
func (e *Ellipse) Focus1() easel.Vector3 {
	return e.focus1
}

// SetFocus1 sets the first focus. The display is not recomputed.
func (e *Ellipse) SetFocus1(v easel.Vector3) {
	e.focus1 = v
}

// Focus2 returns the second focus.
func (e *Ellipse) Focus2() easel.Vector3 {
	return e.focus2
}

// SetFocus2 sets the second focus. The display is not recomputed.
func (e *Ellipse) SetFocus2(v easel.Vector3) {
	e.focus2 = v
}

// A returns the angular semi-axis length along the major axis.
func (e *Ellipse) A() float64 {
	return e.a
}

// SetA sets the angular semi-axis length along the major axis. It must be
// positive for the ellipse to be defined.
func (e *Ellipse) SetA(a float64) {
	e.a = a
}

// B returns the angular semi-axis length along the minor axis.
func (e *Ellipse) B() float64 {
	return e.b
}

// SetB sets the angular semi-axis length along the minor axis. It must be
// positive for the ellipse to be defined.
func (e *Ellipse) SetB(b float64) {
	e.b = b
}

// frame returns the orthonormal frame of the ellipse: the center between the
// foci, the major axis direction towards focus1, and the minor axis
// direction. Coincident or antipodal foci degrade to an arbitrary but valid
// frame.
func (e *Ellipse) frame() (center, major, minor easel.Vector3) {
	center = e.focus1.Add(e.focus2).Normalize()
	if center.IsZero() {
		center = easel.Vector3{Z: 1.0}
	}
	// part of focus1 perpendicular to the center
	major = e.focus1.Sub(center.Mul(center.Dot(e.focus1))).Normalize()
	if major.IsZero() {
		major = center.Orthogonal()
	}
	minor = center.Cross(major)
	return center, major, minor
}

// E returns the point on the ellipse boundary at parameter t. The boundary is
// traversed once as t runs from 0 to 2π. The result is a unit vector for any
// real t, also when the foci or axes are degenerate.
func (e *Ellipse) E(t float64) easel.Vector3 {
	center, major, minor := e.frame()
	sint, cost := math.Sincos(t)
	x := math.Sin(e.a) * cost
	y := math.Sin(e.b) * sint
	z := 1.0 - x*x - y*y
	if z < 0.0 {
		z = 0.0
	}
	p := major.Mul(x).Add(minor.Mul(y)).Add(center.Mul(math.Sqrt(z))).Normalize()
	if p.IsZero() {
		return center
	}
	return p
}

// UpdateDisplay regenerates the boundary by sampling E at the configured
// point count and rebuilds the front and back shapes. Degenerate geometry
// yields degenerate but valid paths.
func (e *Ellipse) UpdateDisplay() {
	n := e.cs.NumPoints
	if n < 3 {
		n = 3
	}
	samples := make([]easel.Vector3, n+1)
	for i := 0; i <= n; i++ {
		samples[i] = e.E(2.0 * math.Pi * float64(i) / float64(n))
	}
	e.rebuild(samples, e.canvas.Radius())
}

var _ Nodule = (*Ellipse)(nil)
