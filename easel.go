// Package easel renders spherical geometry scenes onto a layered two-dimensional canvas. Objects on the unit sphere are projected onto the plane and split into front and back halves, which are drawn on separate layers so that the boundary circle and foreground objects cover what lies behind the sphere. Renderers turn the layered scene into SVG or raster images.
//
// Canvas coordinates have the origin at the sphere center with the y axis pointing up. The view transformation maps them to the output surface.
package easel

import (
	"io"
	"math"
	"os"
)

// Renderer is implemented by the output backends.
type Renderer interface {
	// Size returns the width and height of the render target.
	Size() (float64, float64)

	// RenderPath renders a path using a style and a transformation matrix. Stroke widths and dash lengths are given in the coordinate system before m is applied.
	RenderPath(path *Path, style Style, m Matrix)
}

// Writer writes a canvas to a writer in some format.
type Writer func(w io.Writer, c *Canvas) error

// Canvas is a sphere scene: a fixed-size drawing surface with a boundary circle, stacked layers of shapes, and a zoomable view. It is not safe for concurrent use; the style defaults it hands out are.
type Canvas struct {
	W, H   float64
	Layers LayerStack

	defaults *StyleDefaults
	radius   float64
	zoom     float64
	pan      Point
	minZoom  float64
	maxZoom  float64
}

// New returns a canvas of the given size. The sphere boundary radius is half the smaller dimension, and the zoom factor starts at one with limits [0.1,10].
func New(width, height float64) *Canvas {
	return &Canvas{
		W:        width,
		H:        height,
		defaults: NewStyleDefaults(),
		radius:   math.Min(width, height) / 2.0,
		zoom:     1.0,
		minZoom:  0.1,
		maxZoom:  10.0,
	}
}

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (float64, float64) {
	return c.W, c.H
}

// Defaults returns the style defaults shared by everything drawn on this canvas.
func (c *Canvas) Defaults() *StyleDefaults {
	return c.defaults
}

// Radius returns the radius of the sphere boundary circle.
func (c *Canvas) Radius() float64 {
	return c.radius
}

// SetRadius overrides the sphere boundary radius.
func (c *Canvas) SetRadius(radius float64) {
	if 0.0 < radius {
		c.radius = radius
	}
}

// Zoom returns the current zoom magnification factor.
func (c *Canvas) Zoom() float64 {
	return c.zoom
}

// SetZoom sets the zoom magnification factor, clamped to the zoom limits, and returns the factor that was set.
func (c *Canvas) SetZoom(zoom float64) float64 {
	c.zoom = math.Min(math.Max(zoom, c.minZoom), c.maxZoom)
	return c.zoom
}

// SetZoomLimits sets the minimum and maximum zoom magnification factors and clamps the current zoom to them.
func (c *Canvas) SetZoomLimits(min, max float64) {
	if 0.0 < min && min <= max {
		c.minZoom = min
		c.maxZoom = max
		c.SetZoom(c.zoom)
	}
}

// Pan returns the view translation in canvas units.
func (c *Canvas) Pan() Point {
	return c.pan
}

// SetPan sets the view translation in canvas units.
func (c *Canvas) SetPan(x, y float64) {
	c.pan = Point{x, y}
}

// View returns the transformation from sphere scene coordinates to canvas coordinates: zoom about the origin, then move the origin to the canvas center shifted by the pan translation.
func (c *Canvas) View() Matrix {
	return Identity.Translate(c.W/2.0+c.pan.X, c.H/2.0+c.pan.Y).Scale(c.zoom, c.zoom)
}

// AddBoundary adds the sphere boundary circle to the midground layer and returns its shape.
func (c *Canvas) AddBoundary(style Style) *Shape {
	shape := &Shape{
		Path:    Circle(c.radius),
		Style:   style,
		Visible: true,
	}
	c.Layers.Add(LayerMidground, shape)
	return shape
}

// Render renders the visible shapes of all layers to the renderer in stacking order.
func (c *Canvas) Render(r Renderer) {
	view := c.View()
	for id := LayerID(0); id < NumLayers; id++ {
		for _, shape := range c.Layers.Shapes(id) {
			if !shape.Visible || shape.Path.Empty() {
				continue
			}
			r.RenderPath(shape.Path, shape.Style, view)
		}
	}
}

// Write writes the canvas to the writer using the given format writer.
func (c *Canvas) Write(w io.Writer, writer Writer) error {
	return writer(w, c)
}

// WriteFile writes the canvas to a file using the given format writer.
func (c *Canvas) WriteFile(filename string, writer Writer) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = writer(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
