package easel

import (
	"sync"
	"testing"

	"github.com/tdewolff/test"
)

func TestFillStyle(t *testing.T) {
	for _, fs := range []FillStyle{NoFill, PlainFill, ShadeFill} {
		parsed, err := ParseFillStyle(fs.String())
		test.Error(t, err)
		test.T(t, parsed, fs)
	}
	test.T(t, NoFill.String(), "noFill")
	test.T(t, PlainFill.String(), "plainFill")
	test.T(t, ShadeFill.String(), "shadeFill")
	test.T(t, FillStyle(9).String(), "FillStyle(9)")

	_, err := ParseFillStyle("bogus")
	test.That(t, err != nil)
	test.T(t, err.Error(), "bad fill style: bogus")
}

func TestFillStyleText(t *testing.T) {
	b, err := PlainFill.MarshalText()
	test.Error(t, err)
	test.T(t, string(b), "plainFill")

	var fs FillStyle
	test.Error(t, fs.UnmarshalText([]byte("shadeFill")))
	test.T(t, fs, ShadeFill)

	err = fs.UnmarshalText([]byte("bogus"))
	test.That(t, err != nil)
	test.T(t, fs, ShadeFill)
}

func TestPaint(t *testing.T) {
	solid := Paint{Color: Red}
	test.That(t, solid.IsColor())
	test.That(t, !solid.IsGradient())
	test.That(t, solid.Equal(Paint{Color: Red}))
	test.That(t, !solid.Equal(Paint{Color: Blue}))

	g := NewLinearGradient(Point{0.0, 0.0}, Point{100.0, 0.0})
	gradient := Paint{Gradient: g}
	test.That(t, gradient.IsGradient())
	test.That(t, !gradient.IsColor())
	test.That(t, gradient.Equal(Paint{Gradient: g}))
	test.That(t, !gradient.Equal(Paint{Gradient: NewLinearGradient(Point{0.0, 0.0}, Point{100.0, 0.0})}))
	test.That(t, !gradient.Equal(solid))
}

func TestStyle(t *testing.T) {
	test.That(t, !Style{Fill: Paint{Color: Transparent}}.HasFill())
	test.That(t, Style{Fill: Paint{Color: Black}}.HasFill())
	test.That(t, Style{Fill: Paint{Gradient: NewLinearGradient(Point{0.0, 0.0}, Point{1.0, 0.0})}}.HasFill())

	test.That(t, !Style{Stroke: Paint{Color: Black}}.HasStroke())
	test.That(t, !Style{Stroke: Paint{Color: Transparent}, StrokeWidth: 1.0}.HasStroke())
	test.That(t, Style{Stroke: Paint{Color: Black}, StrokeWidth: 1.0}.HasStroke())

	test.That(t, !Style{}.IsDashed())
	test.That(t, Style{Dashes: []float64{2.0, 1.0}}.IsDashed())

	test.That(t, !DefaultStyle.HasFill())
	test.That(t, DefaultStyle.HasStroke())
	test.T(t, DefaultStyle.StrokeWidth, 1.0)
}

func TestStyleDefaults(t *testing.T) {
	d := NewStyleDefaults()
	test.T(t, d.DefaultFill(), ShadeFill)

	d.SetDefaultFill(NoFill)
	test.T(t, d.DefaultFill(), NoFill)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		fs := FillStyle(i % 3)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				d.SetDefaultFill(fs)
				_ = d.DefaultFill()
			}
		}()
	}
	wg.Wait()
	test.That(t, d.DefaultFill() == NoFill || d.DefaultFill() == PlainFill || d.DefaultFill() == ShadeFill)
}
