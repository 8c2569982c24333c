// Package plottables implements the drawable objects of a sphere scene. A
// plottable owns a set of shapes on the canvas layers, split into a front and
// a back half by the side of the sphere they lie on, and keeps them up to
// date as its geometry and styling change.
package plottables

import (
	"image/color"

	easel "github.com/gvsucis/f25-spherical-easel"
	"github.com/gvsucis/f25-spherical-easel/settings"
)

// DisplayStyle selects which style variable set Stylize applies.
type DisplayStyle int

const (
	// ApplyCurrentVariables applies the per-instance user style.
	ApplyCurrentVariables DisplayStyle = iota
	// ApplyTemporaryVariables applies the temporary style used while an
	// object is being created or moved.
	ApplyTemporaryVariables
)

// StyleCategory identifies the side of the sphere a style applies to.
type StyleCategory int

const (
	StyleCategoryFront StyleCategory = iota
	StyleCategoryBack
)

// StyleOptions are the user adjustable style variables of one side of a
// plottable.
type StyleOptions struct {
	StrokeColor        color.RGBA
	FillColor          color.RGBA
	FillStyle          easel.FillStyle
	StrokeWidthPercent float64
	DashArray          []float64
	DashOffset         float64
	// DynamicBackStyle derives the back style from the front style and the
	// configured contrast instead of using the back style variables directly.
	DynamicBackStyle bool
}

// Nodule is implemented by every plottable.
type Nodule interface {
	Name() string
	AddToLayers(layers *easel.LayerStack)
	RemoveFromLayers()
	UpdateDisplay()
	AdjustSize()
	SetVisible(visible bool)
	NormalDisplay()
	GlowingDisplay()
	Stylize(mode DisplayStyle)
	ToSVG() []string
	DefaultStyleState(category StyleCategory) StyleOptions
	UpdateStyle(category StyleCategory, opts StyleOptions)
	Dispose()
}

// StrokeWidths is the zoom-adjusted stroke-width state shared by every
// instance of one plottable kind on a canvas, so that all of them render at a
// consistent relative thickness.
type StrokeWidths struct {
	Front, Back               float64
	GlowingFront, GlowingBack float64
}

// NewStrokeWidths returns stroke widths seeded from the curve settings at
// zoom factor one.
func NewStrokeWidths(cs *settings.CurveSettings, minWidth float64) *StrokeWidths {
	w := &StrokeWidths{}
	w.Adjust(1.0, cs, minWidth)
	return w
}

// Adjust recomputes the four widths for the given zoom magnification factor.
// Every width is clamped from below by minWidth, so the result is strictly
// positive for any zoom, including zero, negative, or NaN.
func (w *StrokeWidths) Adjust(zoom float64, cs *settings.CurveSettings, minWidth float64) {
	w.Front = clampWidth(cs.Drawn.StrokeWidth.Front/zoom, minWidth)
	w.Back = clampWidth(cs.Drawn.StrokeWidth.Back/zoom, minWidth)
	w.GlowingFront = clampWidth((cs.Drawn.StrokeWidth.Front+cs.Glowing.EdgeWidth)/zoom, minWidth)
	w.GlowingBack = clampWidth((cs.Drawn.StrokeWidth.Back+cs.Glowing.EdgeWidth)/zoom, minWidth)
}

// clampWidth returns at least minWidth. The comparison is written so that NaN
// and infinities also fall back to minWidth.
func clampWidth(w, minWidth float64) float64 {
	if minWidth <= 0.0 {
		minWidth = 0.1
	}
	if !(minWidth < w) || !(w < 1.0e6) {
		return minWidth
	}
	return w
}

// contrastStrokeColor derives the back stroke color from the front one by
// fading it with the back style contrast.
func contrastStrokeColor(contrast float64, front color.RGBA) color.RGBA {
	return fadeColor(front, contrast)
}

// contrastFillColor derives the back fill color from the front one by fading
// it with the back style contrast.
func contrastFillColor(contrast float64, front color.RGBA) color.RGBA {
	return fadeColor(front, contrast)
}

// contrastStrokeWidthPercent derives the back stroke width percentage from
// the back style contrast.
func contrastStrokeWidthPercent(contrast float64) float64 {
	return 100.0 * contrast
}

// fadeColor scales the alpha channel by t in [0,1].
func fadeColor(c color.RGBA, t float64) color.RGBA {
	if t < 0.0 {
		t = 0.0
	} else if 1.0 < t {
		t = 1.0
	}
	// colors are alpha-premultiplied
	return color.RGBA{
		R: uint8(float64(c.R)*t + 0.5),
		G: uint8(float64(c.G)*t + 0.5),
		B: uint8(float64(c.B)*t + 0.5),
		A: uint8(float64(c.A)*t + 0.5),
	}
}
