package easel

import (
	"fmt"
	"image/color"
	"sync"
)

// FillStyle selects how the interior of a closed curve is painted.
type FillStyle int

const (
	// NoFill leaves the interior unpainted.
	NoFill FillStyle = iota
	// PlainFill paints the interior with a uniform color.
	PlainFill
	// ShadeFill paints the interior with a radial gradient that suggests a point light source.
	ShadeFill
)

// ParseFillStyle parses a fill style name as written by String.
func ParseFillStyle(s string) (FillStyle, error) {
	switch s {
	case "noFill":
		return NoFill, nil
	case "plainFill":
		return PlainFill, nil
	case "shadeFill":
		return ShadeFill, nil
	}
	return NoFill, fmt.Errorf("bad fill style: %s", s)
}

func (fs FillStyle) String() string {
	switch fs {
	case NoFill:
		return "noFill"
	case PlainFill:
		return "plainFill"
	case ShadeFill:
		return "shadeFill"
	}
	return fmt.Sprintf("FillStyle(%d)", int(fs))
}

// MarshalText implements encoding.TextMarshaler.
func (fs FillStyle) MarshalText() ([]byte, error) {
	return []byte(fs.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (fs *FillStyle) UnmarshalText(text []byte) error {
	fillStyle, err := ParseFillStyle(string(text))
	if err != nil {
		return err
	}
	*fs = fillStyle
	return nil
}

// Paint is the color or gradient used to fill or stroke a path.
type Paint struct {
	Color    color.RGBA
	Gradient Gradient
}

// IsGradient returns true if the paint is a gradient.
func (paint Paint) IsGradient() bool {
	return paint.Gradient != nil
}

// IsColor returns true if the paint is a color.
func (paint Paint) IsColor() bool {
	return !paint.IsGradient()
}

// Equal returns true if the paints are equal. Gradients are compared by reference.
func (paint Paint) Equal(other Paint) bool {
	if paint.IsColor() && other.IsColor() {
		return paint.Color == other.Color
	}
	return paint.Gradient == other.Gradient
}

// Style declares how to draw a path. A transparent fill paints no interior, and a transparent stroke or zero stroke width paints no outline. An empty dash array draws a solid outline.
type Style struct {
	Fill        Paint
	Stroke      Paint
	StrokeWidth float64
	Dashes      []float64
	DashOffset  float64
}

// HasFill returns true if the style will paint the interior.
func (style Style) HasFill() bool {
	return style.Fill.IsGradient() || style.Fill.Color.A != 0
}

// HasStroke returns true if the style will paint the outline.
func (style Style) HasStroke() bool {
	if style.StrokeWidth <= 0.0 {
		return false
	}
	return style.Stroke.IsGradient() || style.Stroke.Color.A != 0
}

// IsDashed returns true if the outline is dashed.
func (style Style) IsDashed() bool {
	return 0 < len(style.Dashes)
}

// DefaultStyle is the default style for shapes: no fill and a thin black outline.
var DefaultStyle = Style{
	Fill:        Paint{Color: Transparent},
	Stroke:      Paint{Color: Black},
	StrokeWidth: 1.0,
}

// StyleDefaults holds the style choices shared by everything drawn on a canvas. Shapes that do not override a choice read it from here at render time. It is safe for concurrent use.
type StyleDefaults struct {
	mu   sync.RWMutex
	fill FillStyle
}

// NewStyleDefaults returns style defaults with the fill style set to ShadeFill.
func NewStyleDefaults() *StyleDefaults {
	return &StyleDefaults{fill: ShadeFill}
}

// DefaultFill returns the fill style used by shapes that do not choose their own.
func (d *StyleDefaults) DefaultFill() FillStyle {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.fill
}

// SetDefaultFill sets the fill style used by shapes that do not choose their own.
func (d *StyleDefaults) SetDefaultFill(fs FillStyle) {
	d.mu.Lock()
	d.fill = fs
	d.mu.Unlock()
}

// Shape is a path with a style, placed on a canvas layer. Invisible shapes are kept on their layer but skipped when rendering.
type Shape struct {
	Path    *Path
	Style   Style
	Visible bool
}
