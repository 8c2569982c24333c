package easel

import (
	"errors"
	"io"
	"testing"

	"github.com/tdewolff/test"
)

type recordingRenderer struct {
	w, h  float64
	paths []*Path
	views []Matrix
}

func (r *recordingRenderer) Size() (float64, float64) {
	return r.w, r.h
}

func (r *recordingRenderer) RenderPath(path *Path, style Style, m Matrix) {
	r.paths = append(r.paths, path)
	r.views = append(r.views, m)
}

func TestCanvasNew(t *testing.T) {
	c := New(800.0, 600.0)
	w, h := c.Size()
	test.Float(t, w, 800.0)
	test.Float(t, h, 600.0)
	test.Float(t, c.Radius(), 300.0)
	test.Float(t, c.Zoom(), 1.0)
	test.T(t, c.Pan(), Point{0.0, 0.0})
	test.T(t, c.Defaults().DefaultFill(), ShadeFill)
}

func TestCanvasRadius(t *testing.T) {
	c := New(800.0, 600.0)
	c.SetRadius(250.0)
	test.Float(t, c.Radius(), 250.0)
	c.SetRadius(0.0)
	test.Float(t, c.Radius(), 250.0)
	c.SetRadius(-1.0)
	test.Float(t, c.Radius(), 250.0)
}

func TestCanvasZoom(t *testing.T) {
	c := New(800.0, 600.0)
	test.Float(t, c.SetZoom(2.0), 2.0)
	test.Float(t, c.Zoom(), 2.0)
	test.Float(t, c.SetZoom(0.01), 0.1)
	test.Float(t, c.SetZoom(100.0), 10.0)

	c.SetZoomLimits(0.5, 4.0)
	test.Float(t, c.Zoom(), 4.0)
	test.Float(t, c.SetZoom(0.2), 0.5)

	c.SetZoomLimits(0.0, 4.0)
	test.Float(t, c.SetZoom(0.2), 0.5)
	c.SetZoomLimits(5.0, 4.0)
	test.Float(t, c.SetZoom(0.2), 0.5)
}

func TestCanvasView(t *testing.T) {
	Epsilon = 1e-10
	c := New(800.0, 600.0)
	test.T(t, c.View().Dot(Point{0.0, 0.0}), Point{400.0, 300.0})

	c.SetZoom(2.0)
	c.SetPan(10.0, -20.0)
	test.T(t, c.Pan(), Point{10.0, -20.0})
	test.T(t, c.View().Dot(Point{0.0, 0.0}), Point{410.0, 280.0})
	test.T(t, c.View().Dot(Point{1.0, 0.0}), Point{412.0, 280.0})
	test.T(t, c.View().Dot(Point{0.0, 1.0}), Point{410.0, 282.0})
}

func TestCanvasAddBoundary(t *testing.T) {
	c := New(800.0, 600.0)
	shape := c.AddBoundary(DefaultStyle)
	test.That(t, shape.Visible)
	test.T(t, shape.Path, Circle(300.0))
	test.T(t, len(c.Layers.Shapes(LayerMidground)), 1)
	test.That(t, c.Layers.Shapes(LayerMidground)[0] == shape)
}

func TestCanvasRender(t *testing.T) {
	Epsilon = 1e-10
	c := New(800.0, 600.0)
	back := &Shape{Path: Line(10.0, 0.0), Style: DefaultStyle, Visible: true}
	front := &Shape{Path: Line(0.0, 10.0), Style: DefaultStyle, Visible: true}
	hidden := &Shape{Path: Line(5.0, 5.0), Style: DefaultStyle, Visible: false}
	empty := &Shape{Path: &Path{}, Style: DefaultStyle, Visible: true}
	c.Layers.Add(LayerForeground, front)
	c.Layers.Add(LayerForeground, hidden)
	c.Layers.Add(LayerForeground, empty)
	c.Layers.Add(LayerBackground, back)

	r := &recordingRenderer{w: 800.0, h: 600.0}
	c.Render(r)
	test.T(t, len(r.paths), 2)
	test.That(t, r.paths[0] == back.Path)
	test.That(t, r.paths[1] == front.Path)
	test.T(t, r.views[0], c.View())
	test.T(t, r.views[1], c.View())
}

func TestCanvasWrite(t *testing.T) {
	c := New(800.0, 600.0)
	called := false
	err := c.Write(io.Discard, func(w io.Writer, canvas *Canvas) error {
		called = true
		test.That(t, canvas == c)
		_, err := w.Write([]byte("ok"))
		return err
	})
	test.Error(t, err)
	test.That(t, called)

	errBoom := errors.New("boom")
	err = c.Write(io.Discard, func(io.Writer, *Canvas) error {
		return errBoom
	})
	test.That(t, err == errBoom)
}
