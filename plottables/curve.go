package plottables

import (
	"image/color"

	easel "github.com/gvsucis/f25-spherical-easel"
	"github.com/gvsucis/f25-spherical-easel/settings"
)

// curve owns the six shapes of a two-sided curve plottable: the front and
// back boundary parts, the glow outlines drawn behind them, and the front and
// back fill regions. It implements every Nodule operation except the
// geometry update, which the embedding plottable provides.
type curve struct {
	name     string
	canvas   *easel.Canvas
	cs       *settings.CurveSettings
	style    *settings.StyleSettings
	minWidth float64
	widths   *StrokeWidths
	layers   *easel.LayerStack

	frontPart        *easel.Shape
	backPart         *easel.Shape
	glowingFrontPart *easel.Shape
	glowingBackPart  *easel.Shape
	frontFill        *easel.Shape
	backFill         *easel.Shape

	frontStyle StyleOptions
	backStyle  StyleOptions
}

func newCurve(name string, canvas *easel.Canvas, cfg *settings.Settings, cs *settings.CurveSettings, widths *StrokeWidths) curve {
	c := curve{
		name:     name,
		canvas:   canvas,
		cs:       cs,
		style:    &cfg.Style,
		minWidth: cfg.MinimumStrokeWidth,
		widths:   widths,
	}
	c.frontStyle = c.DefaultStyleState(StyleCategoryFront)
	c.backStyle = c.DefaultStyleState(StyleCategoryBack)

	c.frontPart = &easel.Shape{Path: &easel.Path{}, Visible: true}
	c.backPart = &easel.Shape{Path: &easel.Path{}, Visible: true}
	// the glow outlines trace the same boundary, so they share the part paths
	c.glowingFrontPart = &easel.Shape{Path: c.frontPart.Path}
	c.glowingBackPart = &easel.Shape{Path: c.backPart.Path}
	c.frontFill = &easel.Shape{Path: &easel.Path{}, Visible: true}
	c.backFill = &easel.Shape{Path: &easel.Path{}, Visible: true}

	c.Stylize(ApplyCurrentVariables)
	c.AdjustSize()
	return c
}

// Name returns the name the plottable was created with.
func (c *curve) Name() string {
	return c.name
}

// AddToLayers places the shapes on their layers. Adding an already added
// plottable does nothing.
func (c *curve) AddToLayers(layers *easel.LayerStack) {
	if layers == nil {
		return
	}
	c.layers = layers
	layers.Add(easel.LayerBackgroundFills, c.backFill)
	layers.Add(easel.LayerBackgroundGlowing, c.glowingBackPart)
	layers.Add(easel.LayerBackground, c.backPart)
	layers.Add(easel.LayerForegroundFills, c.frontFill)
	layers.Add(easel.LayerForegroundGlowing, c.glowingFrontPart)
	layers.Add(easel.LayerForeground, c.frontPart)
}

// RemoveFromLayers takes the shapes off their layers. Removing a plottable
// that was never added does nothing.
func (c *curve) RemoveFromLayers() {
	if c.layers == nil {
		return
	}
	c.layers.Remove(easel.LayerBackgroundFills, c.backFill)
	c.layers.Remove(easel.LayerBackgroundGlowing, c.glowingBackPart)
	c.layers.Remove(easel.LayerBackground, c.backPart)
	c.layers.Remove(easel.LayerForegroundFills, c.frontFill)
	c.layers.Remove(easel.LayerForegroundGlowing, c.glowingFrontPart)
	c.layers.Remove(easel.LayerForeground, c.frontPart)
	c.layers = nil
}

// rebuild regenerates the part and fill paths from boundary samples on the
// unit sphere. Samples with a non-negative z lie on the front half. The
// samples are split into contiguous front and back runs, each run becomes a
// polyline on the part path and a closed polygon on the fill path.
func (c *curve) rebuild(samples []easel.Vector3, radius float64) {
	c.frontPart.Path.Reset()
	c.backPart.Path.Reset()
	c.frontFill.Path.Reset()
	c.backFill.Path.Reset()

	var run []easel.Point
	var front bool
	flush := func() {
		if len(run) == 0 {
			return
		}
		part, fill := c.backPart.Path, c.backFill.Path
		if front {
			part, fill = c.frontPart.Path, c.frontFill.Path
		}
		part.MoveTo(run[0].X, run[0].Y)
		fill.MoveTo(run[0].X, run[0].Y)
		for _, p := range run[1:] {
			part.LineTo(p.X, p.Y)
			fill.LineTo(p.X, p.Y)
		}
		if 2 < len(run) {
			fill.Close()
		}
		run = run[:0]
	}
	for i, v := range samples {
		side := 0.0 <= v.Z
		if i == 0 {
			front = side
		} else if side != front {
			flush()
			front = side
		}
		run = append(run, v.Project().Mul(radius))
	}
	flush()
}

// AdjustSize recomputes the shared stroke widths from the current zoom
// magnification factor and applies them, scaled by the per-side stroke width
// percentages, to the part and glow shapes.
func (c *curve) AdjustSize() {
	c.widths.Adjust(c.canvas.Zoom(), c.cs, c.minWidth)

	frontPercent := c.frontStyle.StrokeWidthPercent
	backPercent := c.backStyle.StrokeWidthPercent
	if c.backStyle.DynamicBackStyle {
		backPercent = contrastStrokeWidthPercent(c.style.BackStyleContrast)
	}
	c.frontPart.Style.StrokeWidth = c.widths.Front * frontPercent / 100.0
	c.backPart.Style.StrokeWidth = c.widths.Back * backPercent / 100.0
	c.glowingFrontPart.Style.StrokeWidth = c.widths.GlowingFront * frontPercent / 100.0
	c.glowingBackPart.Style.StrokeWidth = c.widths.GlowingBack * backPercent / 100.0
}

// SetVisible shows or hides the plottable. Hiding also hides the glow
// outlines, showing restores only the normal display.
func (c *curve) SetVisible(visible bool) {
	c.frontPart.Visible = visible
	c.backPart.Visible = visible
	c.frontFill.Visible = visible
	c.backFill.Visible = visible
	if !visible {
		c.glowingFrontPart.Visible = false
		c.glowingBackPart.Visible = false
	}
}

// FrontGlowingDisplay shows the glow outline of the front half.
func (c *curve) FrontGlowingDisplay() {
	c.frontPart.Visible = true
	c.frontFill.Visible = true
	c.glowingFrontPart.Visible = true
}

// BackGlowingDisplay shows the glow outline of the back half.
func (c *curve) BackGlowingDisplay() {
	c.backPart.Visible = true
	c.backFill.Visible = true
	c.glowingBackPart.Visible = true
}

// GlowingDisplay shows the glow outlines of both halves.
func (c *curve) GlowingDisplay() {
	c.FrontGlowingDisplay()
	c.BackGlowingDisplay()
}

// FrontNormalDisplay hides the glow outline of the front half.
func (c *curve) FrontNormalDisplay() {
	c.frontPart.Visible = true
	c.frontFill.Visible = true
	c.glowingFrontPart.Visible = false
}

// BackNormalDisplay hides the glow outline of the back half.
func (c *curve) BackNormalDisplay() {
	c.backPart.Visible = true
	c.backFill.Visible = true
	c.glowingBackPart.Visible = false
}

// NormalDisplay hides the glow outlines of both halves.
func (c *curve) NormalDisplay() {
	c.FrontNormalDisplay()
	c.BackNormalDisplay()
}

// Stylize applies a style variable set to the shapes and makes them visible.
// An unknown mode does nothing.
func (c *curve) Stylize(mode DisplayStyle) {
	switch mode {
	case ApplyCurrentVariables:
		back := c.backStyle
		if back.DynamicBackStyle {
			back.StrokeColor = contrastStrokeColor(c.style.BackStyleContrast, c.frontStyle.StrokeColor)
			back.FillColor = contrastFillColor(c.style.BackStyleContrast, c.frontStyle.FillColor)
			back.FillStyle = c.frontStyle.FillStyle
			back.DashArray = c.frontStyle.DashArray
			back.DashOffset = c.frontStyle.DashOffset
		}
		c.applySide(c.frontPart, c.frontFill, c.frontStyle, true)
		c.applySide(c.backPart, c.backFill, back, false)
	case ApplyTemporaryVariables:
		temp := c.cs.Temp
		frontFillStyle := c.canvas.Defaults().DefaultFill()
		c.applySide(c.frontPart, c.frontFill, StyleOptions{
			StrokeColor:        settings.MustColor(temp.StrokeColor.Front),
			FillColor:          settings.MustColor(temp.FillColor.Front),
			FillStyle:          frontFillStyle,
			StrokeWidthPercent: 100.0,
		}, true)
		c.applySide(c.backPart, c.backFill, StyleOptions{
			StrokeColor:        settings.MustColor(temp.StrokeColor.Back),
			FillColor:          settings.MustColor(temp.FillColor.Back),
			FillStyle:          frontFillStyle,
			StrokeWidthPercent: 100.0,
		}, false)
	default:
		return
	}

	c.glowingFrontPart.Style.Stroke = easel.Paint{Color: settings.MustColor(c.cs.Glowing.StrokeColor.Front)}
	c.glowingBackPart.Style.Stroke = easel.Paint{Color: settings.MustColor(c.cs.Glowing.StrokeColor.Back)}
	c.glowingFrontPart.Style.Fill = easel.Paint{Color: easel.Transparent}
	c.glowingBackPart.Style.Fill = easel.Paint{Color: easel.Transparent}

	c.frontPart.Visible = true
	c.backPart.Visible = true
	c.frontFill.Visible = true
	c.backFill.Visible = true
	c.AdjustSize()
}

// applySide writes one style variable set into a part and fill shape. The
// dash array is replaced, not merged, so an empty incoming array clears a
// stale dash pattern.
func (c *curve) applySide(part, fill *easel.Shape, opts StyleOptions, front bool) {
	part.Style.Stroke = easel.Paint{Color: opts.StrokeColor}
	part.Style.Fill = easel.Paint{Color: easel.Transparent}
	if len(opts.DashArray) == 0 {
		part.Style.Dashes = nil
		part.Style.DashOffset = 0.0
	} else {
		part.Style.Dashes = append([]float64(nil), opts.DashArray...)
		part.Style.DashOffset = opts.DashOffset
	}
	fill.Style.Stroke = easel.Paint{Color: easel.Transparent}
	fill.Style.StrokeWidth = 0.0
	fill.Style.Fill = c.fillPaint(opts.FillColor, opts.FillStyle)
}

// fillPaint builds the fill paint for a fill style: nothing, a plain color,
// or a radial gradient off the configured light point.
func (c *curve) fillPaint(col color.RGBA, fs easel.FillStyle) easel.Paint {
	switch fs {
	case easel.PlainFill:
		return easel.Paint{Color: col}
	case easel.ShadeFill:
		radius := c.canvas.Radius()
		light := easel.Point{
			X: c.style.FillLightPositionX * radius,
			Y: c.style.FillLightPositionY * radius,
		}
		gradient := easel.NewRadialGradient(light, 0.0, easel.Point{}, 2.0*radius)
		gradient.Add(0.0, lightenColor(col))
		gradient.Add(1.0, col)
		return easel.Paint{Gradient: gradient}
	}
	return easel.Paint{Color: easel.Transparent}
}

// ToSVG returns the SVG path fragments of the front and back boundary, in
// order. The result is empty but not nil for degenerate geometry.
func (c *curve) ToSVG() []string {
	fragments := append([]string{}, c.frontPart.Path.Fragments()...)
	return append(fragments, c.backPart.Path.Fragments()...)
}

// DefaultStyleState returns the settings-derived default style variables for
// one side.
func (c *curve) DefaultStyleState(category StyleCategory) StyleOptions {
	if category == StyleCategoryBack {
		return StyleOptions{
			StrokeColor:        settings.MustColor(c.cs.Drawn.StrokeColor.Back),
			FillColor:          settings.MustColor(c.cs.Drawn.FillColor.Back),
			FillStyle:          c.canvas.Defaults().DefaultFill(),
			StrokeWidthPercent: 100.0,
			DashArray:          append([]float64(nil), c.cs.Drawn.DashArray...),
			DynamicBackStyle:   true,
		}
	}
	return StyleOptions{
		StrokeColor:        settings.MustColor(c.cs.Drawn.StrokeColor.Front),
		FillColor:          settings.MustColor(c.cs.Drawn.FillColor.Front),
		FillStyle:          c.canvas.Defaults().DefaultFill(),
		StrokeWidthPercent: 100.0,
		DashArray:          append([]float64(nil), c.cs.Drawn.DashArray...),
	}
}

// UpdateStyle replaces the style variables of one side and applies them.
func (c *curve) UpdateStyle(category StyleCategory, opts StyleOptions) {
	if category == StyleCategoryBack {
		c.backStyle = opts
	} else {
		c.frontStyle = opts
	}
	c.Stylize(ApplyCurrentVariables)
}

// Dispose detaches the plottable from its layers and releases the path
// storage.
func (c *curve) Dispose() {
	c.RemoveFromLayers()
	c.frontPart.Path.Reset()
	c.backPart.Path.Reset()
	c.frontFill.Path.Reset()
	c.backFill.Path.Reset()
}

// lightenColor moves a color halfway towards white, keeping its alpha.
func lightenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((uint16(c.R) + uint16(c.A)) / 2),
		G: uint8((uint16(c.G) + uint16(c.A)) / 2),
		B: uint8((uint16(c.B) + uint16(c.A)) / 2),
		A: c.A,
	}
}
