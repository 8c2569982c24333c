package svg

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"

	"github.com/tdewolff/test"

	easel "github.com/gvsucis/f25-spherical-easel"
)

func TestSVG(t *testing.T) {
	c := easel.New(10, 10)
	c.Layers.Add(easel.LayerForeground, &easel.Shape{
		Path:    easel.MustParseSVGPath("M0 0L2 0"),
		Style:   easel.DefaultStyle,
		Visible: true,
	})

	sb := strings.Builder{}
	test.Error(t, c.Write(&sb, Writer))
	test.T(t, sb.String(), `<svg version="1.1" width="10mm" height="10mm" viewBox="0 0 10 10" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"><path d="M5 5L7 5" style="fill:none;stroke:#000"/></svg>`)
}

func TestSVGFill(t *testing.T) {
	style := easel.Style{Fill: easel.Paint{Color: easel.Red}}

	sb := strings.Builder{}
	r := New(&sb, 10, 10, nil)
	r.RenderPath(easel.Rectangle(2.0, 2.0), style, easel.Identity)
	test.Error(t, r.Close())
	test.T(t, sb.String(), `<svg version="1.1" width="10mm" height="10mm" viewBox="0 0 10 10" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"><path d="M0 10L2 10L2 8L0 8z" style="fill:#f00"/></svg>`)
}

func TestSVGStroke(t *testing.T) {
	style := easel.DefaultStyle
	style.StrokeWidth = 2.0
	style.Dashes = []float64{1.0, 2.0}

	sb := strings.Builder{}
	r := New(&sb, 10, 10, nil)
	r.RenderPath(easel.MustParseSVGPath("M0 0L2 0"), style, easel.Identity)
	test.Error(t, r.Close())
	test.That(t, strings.Contains(sb.String(), `style="fill:none;stroke:#000;stroke-width:2;stroke-dasharray:1 2"`), "must write stroke style:", sb.String())
}

func TestSVGClasses(t *testing.T) {
	sb := strings.Builder{}
	r := New(&sb, 10, 10, nil)
	r.AddClass("front")
	r.AddClass("glowing")
	r.AddClass("front") // duplicate
	r.RemoveClass("glowing")
	r.RenderPath(easel.MustParseSVGPath("M0 0L2 0"), easel.DefaultStyle, easel.Identity)
	test.Error(t, r.Close())
	test.That(t, strings.Contains(sb.String(), `class="front"`), "must write class attribute:", sb.String())
}

func TestSVGGradient(t *testing.T) {
	gradient := easel.NewRadialGradient(easel.Point{X: 0.0, Y: 0.0}, 0.0, easel.Point{X: 0.0, Y: 0.0}, 4.0)
	gradient.Add(0.0, easel.White)
	gradient.Add(1.0, easel.Red)
	style := easel.Style{Fill: easel.Paint{Gradient: gradient}}

	sb := strings.Builder{}
	r := New(&sb, 10, 10, nil)
	r.RenderPath(easel.Circle(4.0), style, easel.Identity.Translate(5.0, 5.0))
	test.Error(t, r.Close())
	test.That(t, strings.Contains(sb.String(), `<radialGradient id="p1"`), "must define gradient:", sb.String())
	test.That(t, strings.Contains(sb.String(), `fill:url(#p1)`), "must reference gradient:", sb.String())
}

func TestSVGCompression(t *testing.T) {
	c := easel.New(10, 10)
	c.AddBoundary(easel.DefaultStyle)

	buf := bytes.Buffer{}
	r := New(&buf, c.W, c.H, &Options{Compression: gzip.BestCompression})
	c.Render(r)
	test.Error(t, r.Close())

	zr, err := gzip.NewReader(bytes.NewReader(buf.Bytes()))
	test.Error(t, err)
	doc, err := io.ReadAll(zr)
	test.Error(t, err)
	test.That(t, strings.HasPrefix(string(doc), `<svg`), "must decompress to an SVG document")
	test.That(t, strings.HasSuffix(string(doc), `</svg>`), "must decompress to an SVG document")
}
