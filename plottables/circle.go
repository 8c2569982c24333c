package plottables

import (
	"math"

	easel "github.com/gvsucis/f25-spherical-easel"
	"github.com/gvsucis/f25-spherical-easel/settings"
)

// Circle is the plottable for a circle on the sphere, defined by a center
// point and an angular radius.
type Circle struct {
	curve

	center easel.Vector3
	radius float64
}

// NewCircle returns a circle plottable with the given name. The center starts
// at the north pole and the radius at zero. The stroke widths are shared
// between every circle on the canvas.
func NewCircle(name string, canvas *easel.Canvas, cfg *settings.Settings, widths *StrokeWidths) *Circle {
	return &Circle{
		curve:  newCurve(name, canvas, cfg, &cfg.Circle, widths),
		center: easel.Vector3{Z: 1.0},
	}
}

// Center returns the center point.
func (c *Circle) Center() easel.Vector3 {
	return c.center
}

// SetCenter sets the center point. The display is not recomputed.
func (c *Circle) SetCenter(v easel.Vector3) {
	c.center = v
}

// Radius returns the angular radius.
func (c *Circle) Radius() float64 {
	return c.radius
}

// SetRadius sets the angular radius. It must be positive for the circle to be
// defined.
func (c *Circle) SetRadius(r float64) {
	c.radius = r
}

// C returns the point on the circle boundary at parameter t. The boundary is
// traversed once as t runs from 0 to 2π. The result is a unit vector for any
// real t, also when the center or radius is degenerate.
func (c *Circle) C(t float64) easel.Vector3 {
	center := c.center.Normalize()
	if center.IsZero() {
		center = easel.Vector3{Z: 1.0}
	}
	u := center.Orthogonal()
	v := center.Cross(u)
	sint, cost := math.Sincos(t)
	sinr, cosr := math.Sincos(c.radius)
	return center.Mul(cosr).Add(u.Mul(sinr * cost)).Add(v.Mul(sinr * sint))
}

// UpdateDisplay regenerates the boundary by sampling C at the configured
// point count and rebuilds the front and back shapes. Degenerate geometry
// yields degenerate but valid paths.
func (c *Circle) UpdateDisplay() {
	n := c.cs.NumPoints
	if n < 3 {
		n = 3
	}
	samples := make([]easel.Vector3, n+1)
	for i := 0; i <= n; i++ {
		samples[i] = c.C(2.0 * math.Pi * float64(i) / float64(n))
	}
	c.rebuild(samples, c.canvas.Radius())
}

var _ Nodule = (*Circle)(nil)
