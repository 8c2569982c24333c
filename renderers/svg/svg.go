// Package svg writes a sphere canvas as a scalable vector graphics document.
package svg

import (
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	easel "github.com/gvsucis/f25-spherical-easel"
)

type Options struct {
	// Compression is the gzip compression level, or zero for no compression.
	Compression int
}

var DefaultOptions = Options{}

// SVG is a scalable vector graphics renderer.
type SVG struct {
	w             io.Writer
	width, height float64
	patterns      map[easel.Gradient]string
	classes       []string
	opts          *Options
}

// New returns a scalable vector graphics (SVG) renderer that writes a document of the given size in millimeters.
func New(w io.Writer, width, height float64, opts *Options) *SVG {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	if opts.Compression != 0 {
		if opts.Compression < gzip.HuffmanOnly || gzip.BestCompression < opts.Compression {
			opts.Compression = -1
		}
		w, _ = gzip.NewWriterLevel(w, opts.Compression)
	}

	fmt.Fprintf(w, `<svg version="1.1" width="%vmm" height="%vmm" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">`, dec(width), dec(height), dec(width), dec(height))
	return &SVG{
		w:        w,
		width:    width,
		height:   height,
		patterns: map[easel.Gradient]string{},
		opts:     opts,
	}
}

// Close finishes and closes the SVG.
func (r *SVG) Close() error {
	_, err := fmt.Fprintf(r.w, "</svg>")
	if r.opts.Compression != 0 {
		r.w.(*gzip.Writer).Close() // does not close underlying writer
	}
	return err
}

func (r *SVG) writeClasses(w io.Writer) {
	if len(r.classes) != 0 {
		fmt.Fprintf(w, `" class="%s`, strings.Join(r.classes, " "))
	}
}

// SetClass sets the classes to be assigned to drawn objects.
func (r *SVG) SetClass(classes ...string) {
	r.classes = classes
}

// AddClass adds a class to the class list.
func (r *SVG) AddClass(class string) {
	if class == "" {
		return
	}
	for _, c := range r.classes {
		if c == class {
			return
		}
	}
	r.classes = append(r.classes, class)
}

// RemoveClass removes a class from the class list.
func (r *SVG) RemoveClass(class string) {
	for i, c := range r.classes {
		if c == class {
			r.classes = append(r.classes[:i], r.classes[i+1:]...)
			return
		}
	}
}

// Size returns the size of the canvas in millimeters.
func (r *SVG) Size() (float64, float64) {
	return r.width, r.height
}

// RenderPath renders a path to the canvas using a style and a transformation matrix.
func (r *SVG) RenderPath(path *easel.Path, style easel.Style, m easel.Matrix) {
	if style.HasFill() && style.Fill.IsGradient() {
		r.getPattern(style.Fill.Gradient, m)
	}
	if style.HasStroke() && style.Stroke.IsGradient() {
		r.getPattern(style.Stroke.Gradient, m)
	}

	path = path.Transform(easel.Identity.ReflectYAbout(r.height / 2.0).Mul(m))
	fmt.Fprintf(r.w, `<path d="%s`, path.ToSVG())

	b := &strings.Builder{}
	if style.HasFill() {
		if !style.Fill.IsColor() || style.Fill.Color != easel.Black {
			fmt.Fprintf(b, ";fill:")
			r.writePaint(b, style.Fill, m)
			if style.Fill.IsColor() && style.Fill.Color.A != 255 {
				fmt.Fprintf(b, ";fill-opacity:%v", dec(float64(style.Fill.Color.A)/255.0))
			}
		}
	} else {
		fmt.Fprintf(b, ";fill:none")
	}
	if style.HasStroke() {
		fmt.Fprintf(b, `;stroke:`)
		r.writePaint(b, style.Stroke, m)
		if style.Stroke.IsColor() && style.Stroke.Color.A != 255 {
			fmt.Fprintf(b, ";stroke-opacity:%v", dec(float64(style.Stroke.Color.A)/255.0))
		}
		if style.StrokeWidth != 1.0 {
			fmt.Fprintf(b, ";stroke-width:%v", dec(style.StrokeWidth))
		}
		if style.IsDashed() {
			fmt.Fprintf(b, ";stroke-dasharray:%v", dec(style.Dashes[0]))
			for _, dash := range style.Dashes[1:] {
				fmt.Fprintf(b, " %v", dec(dash))
			}
			if style.DashOffset != 0.0 {
				fmt.Fprintf(b, ";stroke-dashoffset:%v", dec(style.DashOffset))
			}
		}
	}
	if 0 < b.Len() {
		fmt.Fprintf(r.w, `" style="%s`, b.String()[1:])
	}
	r.writeClasses(r.w)
	fmt.Fprintf(r.w, `"/>`)
}

func (r *SVG) getPattern(gradient easel.Gradient, m easel.Matrix) string {
	if ref, ok := r.patterns[gradient]; ok {
		return ref
	}

	ref := fmt.Sprintf("p%v", len(r.patterns)+1)
	r.patterns[gradient] = ref

	gradient = gradient.SetView(m)
	fmt.Fprintf(r.w, `<defs>`)
	if linearGradient, ok := gradient.(*easel.LinearGradient); ok {
		fmt.Fprintf(r.w, `<linearGradient id="%v" gradientUnits="userSpaceOnUse" x1="%v" y1="%v" x2="%v" y2="%v">`, ref, dec(linearGradient.Start.X), dec(r.height-linearGradient.Start.Y), dec(linearGradient.End.X), dec(r.height-linearGradient.End.Y))
		for _, stop := range linearGradient.Stops {
			fmt.Fprintf(r.w, `<stop offset="%v" stop-color="%v"/>`, dec(stop.Offset), easel.CSSColor(stop.Color))
		}
		fmt.Fprintf(r.w, `</linearGradient>`)
	} else if radialGradient, ok := gradient.(*easel.RadialGradient); ok {
		fmt.Fprintf(r.w, `<radialGradient id="%v" gradientUnits="userSpaceOnUse" fx="%v" fy="%v" fr="%v" cx="%v" cy="%v" r="%v">`, ref, dec(radialGradient.C0.X), dec(r.height-radialGradient.C0.Y), dec(radialGradient.R0), dec(radialGradient.C1.X), dec(r.height-radialGradient.C1.Y), dec(radialGradient.R1))
		for _, stop := range radialGradient.Stops {
			fmt.Fprintf(r.w, `<stop offset="%v" stop-color="%v"/>`, dec(stop.Offset), easel.CSSColor(stop.Color))
		}
		fmt.Fprintf(r.w, `</radialGradient>`)
	}
	fmt.Fprintf(r.w, `</defs>`)
	return ref
}

func (r *SVG) writePaint(w io.Writer, paint easel.Paint, m easel.Matrix) {
	if paint.IsGradient() {
		fmt.Fprintf(w, "url(#%v)", r.getPattern(paint.Gradient, m))
	} else {
		c := paint.Color
		c.A = 255
		fmt.Fprintf(w, "%v", easel.CSSColor(c))
	}
}

// Writer writes the canvas as an SVG file.
func Writer(w io.Writer, c *easel.Canvas) error {
	svg := New(w, c.W, c.H, nil)
	c.Render(svg)
	return svg.Close()
}
