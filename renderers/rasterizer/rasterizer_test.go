package rasterizer

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/tdewolff/test"

	easel "github.com/gvsucis/f25-spherical-easel"
)

func TestDrawFill(t *testing.T) {
	c := easel.New(10, 10)
	c.Layers.Add(easel.LayerForegroundFills, &easel.Shape{
		Path:    easel.Circle(4.0),
		Style:   easel.Style{Fill: easel.Paint{Color: easel.Red}},
		Visible: true,
	})

	img := Draw(c, 5.0)
	size := img.Bounds().Size()
	test.T(t, size.X, 50)
	test.T(t, size.Y, 50)
	test.T(t, img.RGBAAt(25, 25), color.RGBA{255, 0, 0, 255})
	test.T(t, img.RGBAAt(1, 1), color.RGBA{})
}

func TestDrawStroke(t *testing.T) {
	c := easel.New(10, 10)
	style := easel.DefaultStyle
	style.StrokeWidth = 2.0
	c.Layers.Add(easel.LayerForeground, &easel.Shape{
		Path:    easel.MustParseSVGPath("M-4 0L4 0"),
		Style:   style,
		Visible: true,
	})

	img := Draw(c, 5.0)
	test.T(t, img.RGBAAt(25, 25), color.RGBA{0, 0, 0, 255})
	test.T(t, img.RGBAAt(25, 5), color.RGBA{})
}

func TestDrawGradient(t *testing.T) {
	gradient := easel.NewRadialGradient(easel.Point{X: 0.0, Y: 0.0}, 0.0, easel.Point{X: 0.0, Y: 0.0}, 4.0)
	gradient.Add(0.0, easel.White)
	gradient.Add(1.0, easel.Blue)

	c := easel.New(10, 10)
	c.Layers.Add(easel.LayerForegroundFills, &easel.Shape{
		Path:    easel.Circle(4.0),
		Style:   easel.Style{Fill: easel.Paint{Gradient: gradient}},
		Visible: true,
	})

	img := Draw(c, 5.0)
	center := img.RGBAAt(25, 25)
	test.That(t, center.A == 255, "gradient center must be opaque")
	test.That(t, 128 < int(center.R) && 128 < int(center.G), "gradient center must be near white:", center)
	edge := img.RGBAAt(25, 6)
	test.That(t, int(edge.B) > int(edge.R), "gradient edge must be near blue:", edge)
}

func TestPNGWriter(t *testing.T) {
	c := easel.New(10, 10)
	c.AddBoundary(easel.DefaultStyle)

	buf := bytes.Buffer{}
	test.Error(t, c.Write(&buf, PNGWriter(5.0)))
	test.That(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")), "must write a PNG signature")
}
