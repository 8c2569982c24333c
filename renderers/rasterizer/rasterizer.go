// Package rasterizer draws a sphere canvas onto a raster image.
package rasterizer

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	easel "github.com/gvsucis/f25-spherical-easel"
)

// PNGWriter returns a writer that writes the canvas as a PNG file at the given resolution in dots-per-millimeter.
func PNGWriter(dpmm float64) easel.Writer {
	return func(w io.Writer, c *easel.Canvas) error {
		img := Draw(c, dpmm)
		return png.Encode(w, img)
	}
}

// Draw draws the canvas on a new image with given resolution in dots-per-millimeter. Higher resolution will result in larger images.
func Draw(c *easel.Canvas, dpmm float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(c.W*dpmm+0.5), int(c.H*dpmm+0.5)))
	ras := New(img, dpmm)
	c.Render(ras)
	return img
}

// Rasterizer is a rasterizing renderer.
type Rasterizer struct {
	img  draw.Image
	dpmm float64
}

// New returns a renderer that draws to a rasterized image at the given resolution in dots-per-millimeter.
func New(img draw.Image, dpmm float64) *Rasterizer {
	return &Rasterizer{
		img:  img,
		dpmm: dpmm,
	}
}

// Size returns the size of the canvas in millimeters.
func (r *Rasterizer) Size() (float64, float64) {
	size := r.img.Bounds().Size()
	return float64(size.X) / r.dpmm, float64(size.Y) / r.dpmm
}

// RenderPath renders a path to the canvas using a style and a transformation matrix.
func (r *Rasterizer) RenderPath(path *easel.Path, style easel.Style, m easel.Matrix) {
	path = path.Transform(m)

	strokeWidth := 0.0
	if style.HasStroke() {
		strokeWidth = style.StrokeWidth
	}

	size := r.img.Bounds().Size()
	bounds := path.Bounds()
	dx, dy := 0, 0
	x := int((bounds.X - strokeWidth) * r.dpmm)
	y := int((bounds.Y - strokeWidth) * r.dpmm)
	w := int((bounds.W+2.0*strokeWidth)*r.dpmm) + 1
	h := int((bounds.H+2.0*strokeWidth)*r.dpmm) + 1
	if (x+w <= 0 || size.X <= x) && (y+h <= 0 || size.Y <= y) {
		return // outside canvas
	}

	if x < 0 {
		dx = -x
		x = 0
	}
	if y < 0 {
		dy = -y
		y = 0
	}
	if size.X <= x+w {
		w = size.X - x
	}
	if size.Y <= y+h {
		h = size.Y - y
	}
	if w <= 0 || h <= 0 {
		return // has no size
	}

	// the gradients are defined in scene coordinates, the path is about to be shifted to the clipped area
	view := easel.Identity.Translate(-float64(x)/r.dpmm, -float64(y)/r.dpmm).Mul(m)

	path = path.Translate(-float64(x)/r.dpmm, -float64(y)/r.dpmm)
	if style.HasFill() {
		ras := vector.NewRasterizer(w, h)
		r.toRasterizer(ras, path, float64(h))
		ras.Draw(r.img, image.Rect(x, size.Y-y-h, x+w, size.Y-y), r.paintImage(style.Fill, view, float64(h)), image.Point{dx, dy})
	}
	if style.HasStroke() {
		if style.IsDashed() {
			path = path.Dash(style.DashOffset, style.Dashes...)
		}
		path = path.Stroke(style.StrokeWidth, easel.ButtCapper, easel.BevelJoiner, easel.Tolerance)

		ras := vector.NewRasterizer(w, h)
		r.toRasterizer(ras, path, float64(h))
		ras.Draw(r.img, image.Rect(x, size.Y-y-h, x+w, size.Y-y), r.paintImage(style.Stroke, view, float64(h)), image.Point{dx, dy})
	}
}

// toRasterizer adds the flattened path to the rasterizer, flipping the y axis since images have their origin in the top left.
func (r *Rasterizer) toRasterizer(ras *vector.Rasterizer, path *easel.Path, h float64) {
	path = path.Flatten(easel.Tolerance)
	closed := false
	for scanner := path.Scanner(); scanner.Scan(); {
		end := scanner.End()
		switch scanner.Cmd() {
		case easel.MoveToCmd:
			ras.MoveTo(float32(end.X*r.dpmm), float32(h-end.Y*r.dpmm))
			closed = false
		case easel.LineToCmd:
			ras.LineTo(float32(end.X*r.dpmm), float32(h-end.Y*r.dpmm))
			closed = false
		case easel.CloseCmd:
			ras.ClosePath()
			closed = true
		}
	}
	if !path.Empty() && !closed {
		ras.ClosePath()
	}
}

func (r *Rasterizer) paintImage(paint easel.Paint, view easel.Matrix, h float64) image.Image {
	if paint.IsGradient() {
		return &gradientImage{
			gradient: paint.Gradient.SetView(view),
			h:        h,
			dpmm:     r.dpmm,
		}
	}
	return image.NewUniform(paint.Color)
}

// gradientImage adapts a gradient to the image.Image interface for drawing by the rasterizer.
type gradientImage struct {
	gradient easel.Gradient
	h        float64
	dpmm     float64
}

func (g *gradientImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (g *gradientImage) Bounds() image.Rectangle {
	return image.Rectangle{image.Point{-1e9, -1e9}, image.Point{1e9, 1e9}}
}

func (g *gradientImage) At(x, y int) color.Color {
	return g.gradient.At(float64(x)/g.dpmm, (g.h-float64(y))/g.dpmm)
}
