// Package settings holds the global display configuration: the boundary
// circle, zoom limits, and the default colors, widths, and point counts for
// each kind of curve. The compiled-in defaults can be overridden by a user
// YAML file.
package settings

import (
	_ "embed"
	"fmt"
	"image/color"
	"io"

	"github.com/goccy/go-yaml"

	easel "github.com/gvsucis/f25-spherical-easel"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// SideColors is a pair of colors for the front and back half of a curve.
type SideColors struct {
	Front string `yaml:"front"`
	Back  string `yaml:"back"`
}

// SideWidths is a pair of stroke widths for the front and back half of a curve.
type SideWidths struct {
	Front float64 `yaml:"front"`
	Back  float64 `yaml:"back"`
}

// DrawnSettings is the style of a curve in its drawn state.
type DrawnSettings struct {
	StrokeColor SideColors `yaml:"strokeColor"`
	FillColor   SideColors `yaml:"fillColor"`
	StrokeWidth SideWidths `yaml:"strokeWidth"`
	DashArray   []float64  `yaml:"dashArray"`
}

// GlowingSettings is the style of the glow outline drawn behind a highlighted curve.
type GlowingSettings struct {
	StrokeColor SideColors `yaml:"strokeColor"`
	// EdgeWidth is added to the drawn stroke width on both sides.
	EdgeWidth float64 `yaml:"edgeWidth"`
}

// TempSettings is the style of a curve while it is being created or moved.
type TempSettings struct {
	StrokeColor SideColors `yaml:"strokeColor"`
	FillColor   SideColors `yaml:"fillColor"`
}

// CurveSettings is the display configuration for one kind of curve.
type CurveSettings struct {
	// NumPoints is the number of boundary points sampled per curve.
	NumPoints int             `yaml:"numPoints"`
	Drawn     DrawnSettings   `yaml:"drawn"`
	Glowing   GlowingSettings `yaml:"glowing"`
	Temp      TempSettings    `yaml:"temp"`
}

// BoundaryCircleSettings is the display configuration of the sphere boundary.
type BoundaryCircleSettings struct {
	LineWidth float64 `yaml:"lineWidth"`
	Color     string  `yaml:"color"`
}

// ZoomSettings are the zoom magnification limits.
type ZoomSettings struct {
	MinMagnification float64 `yaml:"minMagnification"`
	MaxMagnification float64 `yaml:"maxMagnification"`
}

// StyleSettings are style parameters shared by all curves.
type StyleSettings struct {
	// BackStyleContrast in [0,1] fades the derived back style towards the
	// background. Zero makes the back invisible, one copies the front style.
	BackStyleContrast float64 `yaml:"backStyleContrast"`
	// FillLightPositionX/Y is the light point of shaded fills as a fraction of
	// the boundary radius.
	FillLightPositionX float64 `yaml:"fillLightPositionX"`
	FillLightPositionY float64 `yaml:"fillLightPositionY"`
}

// Settings is the global display configuration.
type Settings struct {
	BoundaryCircle BoundaryCircleSettings `yaml:"boundaryCircle"`
	Zoom           ZoomSettings           `yaml:"zoom"`
	Style          StyleSettings          `yaml:"style"`
	Ellipse        CurveSettings          `yaml:"ellipse"`
	Circle         CurveSettings          `yaml:"circle"`
	// MinimumStrokeWidth is the lower bound for zoom-adjusted stroke widths.
	MinimumStrokeWidth float64 `yaml:"minimumStrokeWidth"`
}

// Default returns the compiled-in default settings.
func Default() *Settings {
	s := &Settings{}
	if err := yaml.Unmarshal(defaultsYAML, s); err != nil {
		panic("settings: embedded defaults do not parse: " + err.Error())
	}
	return s
}

// Load reads user settings in YAML format, merged over the defaults.
func Load(r io.Reader) (*Settings, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	s := Default()
	if err := yaml.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the settings are usable: colors parse, point counts
// describe a polygon, widths are positive, and the zoom limits are ordered.
func (s *Settings) Validate() error {
	colors := []struct {
		name  string
		value string
	}{
		{"boundaryCircle.color", s.BoundaryCircle.Color},
		{"ellipse.drawn.strokeColor.front", s.Ellipse.Drawn.StrokeColor.Front},
		{"ellipse.drawn.strokeColor.back", s.Ellipse.Drawn.StrokeColor.Back},
		{"ellipse.drawn.fillColor.front", s.Ellipse.Drawn.FillColor.Front},
		{"ellipse.drawn.fillColor.back", s.Ellipse.Drawn.FillColor.Back},
		{"ellipse.glowing.strokeColor.front", s.Ellipse.Glowing.StrokeColor.Front},
		{"ellipse.glowing.strokeColor.back", s.Ellipse.Glowing.StrokeColor.Back},
		{"ellipse.temp.strokeColor.front", s.Ellipse.Temp.StrokeColor.Front},
		{"ellipse.temp.strokeColor.back", s.Ellipse.Temp.StrokeColor.Back},
		{"ellipse.temp.fillColor.front", s.Ellipse.Temp.FillColor.Front},
		{"ellipse.temp.fillColor.back", s.Ellipse.Temp.FillColor.Back},
		{"circle.drawn.strokeColor.front", s.Circle.Drawn.StrokeColor.Front},
		{"circle.drawn.strokeColor.back", s.Circle.Drawn.StrokeColor.Back},
		{"circle.drawn.fillColor.front", s.Circle.Drawn.FillColor.Front},
		{"circle.drawn.fillColor.back", s.Circle.Drawn.FillColor.Back},
		{"circle.glowing.strokeColor.front", s.Circle.Glowing.StrokeColor.Front},
		{"circle.glowing.strokeColor.back", s.Circle.Glowing.StrokeColor.Back},
		{"circle.temp.strokeColor.front", s.Circle.Temp.StrokeColor.Front},
		{"circle.temp.strokeColor.back", s.Circle.Temp.StrokeColor.Back},
		{"circle.temp.fillColor.front", s.Circle.Temp.FillColor.Front},
		{"circle.temp.fillColor.back", s.Circle.Temp.FillColor.Back},
	}
	for _, c := range colors {
		if _, err := easel.ParseColor(c.value); err != nil {
			return fmt.Errorf("settings: %s: %w", c.name, err)
		}
	}
	if s.Ellipse.NumPoints < 3 {
		return fmt.Errorf("settings: ellipse.numPoints must be at least 3, got %d", s.Ellipse.NumPoints)
	}
	if s.Circle.NumPoints < 3 {
		return fmt.Errorf("settings: circle.numPoints must be at least 3, got %d", s.Circle.NumPoints)
	}
	if s.Zoom.MinMagnification <= 0.0 || s.Zoom.MaxMagnification < s.Zoom.MinMagnification {
		return fmt.Errorf("settings: zoom limits must satisfy 0 < min <= max, got [%g,%g]", s.Zoom.MinMagnification, s.Zoom.MaxMagnification)
	}
	if s.MinimumStrokeWidth <= 0.0 {
		return fmt.Errorf("settings: minimumStrokeWidth must be positive, got %g", s.MinimumStrokeWidth)
	}
	if s.BoundaryCircle.LineWidth <= 0.0 {
		return fmt.Errorf("settings: boundaryCircle.lineWidth must be positive, got %g", s.BoundaryCircle.LineWidth)
	}
	if s.Style.BackStyleContrast < 0.0 || 1.0 < s.Style.BackStyleContrast {
		return fmt.Errorf("settings: style.backStyleContrast must be in [0,1], got %g", s.Style.BackStyleContrast)
	}
	return nil
}

// Curve returns the curve settings with the given name, or nil.
func (s *Settings) Curve(name string) *CurveSettings {
	switch name {
	case "ellipse":
		return &s.Ellipse
	case "circle":
		return &s.Circle
	}
	return nil
}

// MustColor parses a settings color string. It panics on invalid input and is
// meant for colors that Validate has already accepted.
func MustColor(s string) color.RGBA {
	c, err := easel.ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
