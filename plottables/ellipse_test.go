package plottables_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	easel "github.com/gvsucis/f25-spherical-easel"
	"github.com/gvsucis/f25-spherical-easel/plottables"
	"github.com/gvsucis/f25-spherical-easel/settings"
)

func newTestEllipse(t *testing.T) (*plottables.Ellipse, *easel.Canvas) {
	t.Helper()
	cfg := settings.Default()
	c := easel.New(800.0, 800.0)
	widths := plottables.NewStrokeWidths(&cfg.Ellipse, cfg.MinimumStrokeWidth)
	return plottables.NewEllipse("E1", c, cfg, widths), c
}

// latLon returns the unit vector at a latitude and longitude in radians.
func latLon(lat, lon float64) easel.Vector3 {
	return easel.Vector3{
		X: math.Cos(lat) * math.Cos(lon),
		Y: math.Cos(lat) * math.Sin(lon),
		Z: math.Sin(lat),
	}
}

func TestEllipseAxes(t *testing.T) {
	e, _ := newTestEllipse(t)
	for _, v := range []float64{0.001, 0.25, 1.0, math.Pi / 2.0} {
		e.SetA(v)
		e.SetB(v / 2.0)
		assert.InDelta(t, v, e.A(), 1e-12)
		assert.InDelta(t, v/2.0, e.B(), 1e-12)
	}
}

func TestEllipseFoci(t *testing.T) {
	e, _ := newTestEllipse(t)
	f1 := latLon(0.3, 0.2)
	f2 := latLon(0.3, -0.2)
	e.SetFocus1(f1)
	e.SetFocus2(f2)
	assert.Equal(t, f1, e.Focus1())
	assert.Equal(t, f2, e.Focus2())
}

func TestEllipseParametrization(t *testing.T) {
	e, _ := newTestEllipse(t)
	e.SetFocus1(latLon(0.5, 0.3))
	e.SetFocus2(latLon(0.5, -0.3))
	e.SetA(0.5)
	e.SetB(0.4)

	t.Run("returns a unit vector for any t", func(t *testing.T) {
		for _, tt := range []float64{-100.0, -math.Pi, -1.0, 0.0, 0.5, 1.0, math.Pi, 2.0 * math.Pi, 1000.0} {
			p := e.E(tt)
			assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z), "t=%g", tt)
			assert.InDelta(t, 1.0, p.Length(), 1e-9, "t=%g", tt)
		}
	})
	t.Run("is 2π periodic", func(t *testing.T) {
		p0 := e.E(0.75)
		p1 := e.E(0.75 + 2.0*math.Pi)
		assert.True(t, p0.Equals(p1))
	})
	t.Run("does not mutate the instance", func(t *testing.T) {
		a, b := e.A(), e.B()
		f1, f2 := e.Focus1(), e.Focus2()
		_ = e.E(1.0)
		assert.Equal(t, a, e.A())
		assert.Equal(t, b, e.B())
		assert.Equal(t, f1, e.Focus1())
		assert.Equal(t, f2, e.Focus2())
	})
	t.Run("degenerate geometry still yields a unit vector", func(t *testing.T) {
		fresh, _ := newTestEllipse(t)
		p := fresh.E(0.5)
		assert.InDelta(t, 1.0, p.Length(), 1e-9)

		fresh.SetFocus1(easel.Vector3{Z: 1.0})
		fresh.SetFocus2(easel.Vector3{Z: -1.0}) // antipodal foci
		p = fresh.E(0.5)
		assert.InDelta(t, 1.0, p.Length(), 1e-9)
	})
}

func TestEllipseUpdateDisplay(t *testing.T) {
	t.Run("fresh instance does not panic", func(t *testing.T) {
		e, _ := newTestEllipse(t)
		assert.NotPanics(t, func() { e.UpdateDisplay() })
	})
	t.Run("zero axes do not panic", func(t *testing.T) {
		e, _ := newTestEllipse(t)
		e.SetA(0.0)
		e.SetB(0.0)
		assert.NotPanics(t, func() { e.UpdateDisplay() })
	})
	t.Run("boundary is regenerated", func(t *testing.T) {
		e, _ := newTestEllipse(t)
		e.SetFocus1(latLon(0.4, 0.3))
		e.SetFocus2(latLon(0.4, -0.3))
		e.SetA(0.6)
		e.SetB(0.5)
		e.UpdateDisplay()
		assert.NotEmpty(t, e.ToSVG())
	})
}

func TestEllipseAdjustSize(t *testing.T) {
	cfg := settings.Default()
	c := easel.New(800.0, 800.0)
	widths := plottables.NewStrokeWidths(&cfg.Ellipse, cfg.MinimumStrokeWidth)
	e := plottables.NewEllipse("E1", c, cfg, widths)

	t.Run("all widths strictly positive after corruption", func(t *testing.T) {
		widths.Front, widths.Back = 0.0, -1.0
		widths.GlowingFront, widths.GlowingBack = math.NaN(), 0.0
		e.AdjustSize()
		assert.Positive(t, widths.Front)
		assert.Positive(t, widths.Back)
		assert.Positive(t, widths.GlowingFront)
		assert.Positive(t, widths.GlowingBack)
	})
	t.Run("all widths strictly positive at the zoom extremes", func(t *testing.T) {
		for _, zoom := range []float64{cfg.Zoom.MinMagnification, 1.0, cfg.Zoom.MaxMagnification} {
			c.SetZoom(zoom)
			e.AdjustSize()
			assert.Positive(t, widths.Front, "zoom=%g", zoom)
			assert.Positive(t, widths.Back, "zoom=%g", zoom)
			assert.Positive(t, widths.GlowingFront, "zoom=%g", zoom)
			assert.Positive(t, widths.GlowingBack, "zoom=%g", zoom)
		}
	})
	t.Run("glow is wider than the stroke", func(t *testing.T) {
		c.SetZoom(1.0)
		e.AdjustSize()
		assert.Greater(t, widths.GlowingFront, widths.Front)
		assert.Greater(t, widths.GlowingBack, widths.Back)
	})
	t.Run("widths shrink when zooming in", func(t *testing.T) {
		c.SetZoom(1.0)
		e.AdjustSize()
		wide := widths.Front
		c.SetZoom(4.0)
		e.AdjustSize()
		assert.Less(t, widths.Front, wide)
	})
}

func TestEllipseLayers(t *testing.T) {
	e, c := newTestEllipse(t)
	layers := &c.Layers

	assert.NotPanics(t, func() { e.RemoveFromLayers() }) // never added
	e.AddToLayers(layers)
	assert.Len(t, layers.Shapes(easel.LayerForeground), 1)
	e.AddToLayers(layers) // idempotent
	assert.Len(t, layers.Shapes(easel.LayerForeground), 1)
	assert.Len(t, layers.Shapes(easel.LayerBackground), 1)
	assert.Len(t, layers.Shapes(easel.LayerForegroundGlowing), 1)
	assert.Len(t, layers.Shapes(easel.LayerBackgroundGlowing), 1)
	assert.Len(t, layers.Shapes(easel.LayerForegroundFills), 1)
	assert.Len(t, layers.Shapes(easel.LayerBackgroundFills), 1)

	e.RemoveFromLayers()
	for id := easel.LayerID(0); id < easel.NumLayers; id++ {
		assert.Empty(t, layers.Shapes(id))
	}
	assert.NotPanics(t, func() { e.RemoveFromLayers() }) // already removed
}

func TestEllipseDisplayToggles(t *testing.T) {
	e, _ := newTestEllipse(t)
	assert.NotPanics(t, func() {
		e.FrontGlowingDisplay()
		e.BackGlowingDisplay()
		e.GlowingDisplay()
		e.FrontNormalDisplay()
		e.BackNormalDisplay()
		e.NormalDisplay()
		e.SetVisible(false)
		e.SetVisible(true)
	})
}

func TestEllipseToSVG(t *testing.T) {
	t.Run("never nil", func(t *testing.T) {
		e, _ := newTestEllipse(t)
		fragments := e.ToSVG()
		assert.NotNil(t, fragments)
		assert.Empty(t, fragments)
	})
	t.Run("fragments concatenate to a parsable path", func(t *testing.T) {
		e, _ := newTestEllipse(t)
		e.SetFocus1(latLon(0.4, 0.3))
		e.SetFocus2(latLon(0.4, -0.3))
		e.SetA(0.6)
		e.SetB(0.5)
		e.UpdateDisplay()
		fragments := e.ToSVG()
		require.NotEmpty(t, fragments)
		p, err := easel.ParseSVGPath(strings.Join(fragments, ""))
		require.NoError(t, err)
		assert.False(t, p.Empty())
	})
}

func TestEllipseStylize(t *testing.T) {
	e, c := newTestEllipse(t)
	t.Run("current and temporary variables apply without panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			e.Stylize(plottables.ApplyCurrentVariables)
			e.Stylize(plottables.ApplyTemporaryVariables)
			e.Stylize(plottables.ApplyCurrentVariables)
		})
	})
	t.Run("unknown mode is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() { e.Stylize(plottables.DisplayStyle(42)) })
	})
	t.Run("empty dash array clears a stale dash pattern", func(t *testing.T) {
		e.SetFocus1(latLon(0.4, 0.3))
		e.SetFocus2(latLon(0.4, -0.3))
		e.SetA(0.6)
		e.SetB(0.5)
		e.UpdateDisplay()
		e.AddToLayers(&c.Layers)
		defer e.RemoveFromLayers()

		opts := e.DefaultStyleState(plottables.StyleCategoryFront)
		opts.DashArray = []float64{4.0, 2.0}
		e.UpdateStyle(plottables.StyleCategoryFront, opts)
		assert.Contains(t, renderToSVG(t, c), "stroke-dasharray")

		opts.DashArray = nil
		e.UpdateStyle(plottables.StyleCategoryFront, opts)
		// restyling must not leave the old pattern behind
		assert.NotContains(t, renderToSVG(t, c), "stroke-dasharray")
	})
}

func TestEllipseDefaultStyleState(t *testing.T) {
	e, c := newTestEllipse(t)
	front := e.DefaultStyleState(plottables.StyleCategoryFront)
	back := e.DefaultStyleState(plottables.StyleCategoryBack)
	assert.False(t, front.DynamicBackStyle)
	assert.True(t, back.DynamicBackStyle)
	assert.Equal(t, c.Defaults().DefaultFill(), front.FillStyle)
	assert.Equal(t, 100.0, front.StrokeWidthPercent)
}

func TestEllipseDispose(t *testing.T) {
	e, c := newTestEllipse(t)
	e.SetFocus1(latLon(0.4, 0.3))
	e.SetFocus2(latLon(0.4, -0.3))
	e.SetA(0.6)
	e.SetB(0.5)
	e.UpdateDisplay()
	e.AddToLayers(&c.Layers)

	e.Dispose()
	for id := easel.LayerID(0); id < easel.NumLayers; id++ {
		assert.Empty(t, c.Layers.Shapes(id))
	}
	assert.Empty(t, e.ToSVG())
}
