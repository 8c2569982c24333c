package easel

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestAngleNorm(t *testing.T) {
	test.Float(t, angleNorm(0.0), 0.0)
	test.Float(t, angleNorm(1.0*math.Pi), 1.0*math.Pi)
	test.Float(t, angleNorm(2.0*math.Pi), 0.0)
	test.Float(t, angleNorm(3.0*math.Pi), 1.0*math.Pi)
	test.Float(t, angleNorm(-1.0*math.Pi), 1.0*math.Pi)
	test.Float(t, angleNorm(-2.0*math.Pi), 0.0)
}

func TestAngleBetween(t *testing.T) {
	test.T(t, angleBetween(0.0, 0.0, 1.0), false)
	test.T(t, angleBetween(1.0, 0.0, 1.0), false)
	test.T(t, angleBetween(0.5, 0.0, 1.0), true)
	test.T(t, angleBetween(0.5+2.0*math.Pi, 0.0, 1.0), true)
	test.T(t, angleBetween(0.5, 0.0+2.0*math.Pi, 1.0+2.0*math.Pi), true)
	test.T(t, angleBetween(0.5, 1.0+2.0*math.Pi, 0.0+2.0*math.Pi), true)
	test.T(t, angleBetween(0.5-2.0*math.Pi, 0.0, 1.0), true)
	test.T(t, angleBetween(0.5, 0.0-2.0*math.Pi, 1.0-2.0*math.Pi), true)
	test.T(t, angleBetween(0.5, 1.0-2.0*math.Pi, 0.0-2.0*math.Pi), true)
}

func TestSolveQuadraticFormula(t *testing.T) {
	x1, x2 := solveQuadraticFormula(1.0, -3.0, 2.0)
	test.Float(t, x1, 1.0)
	test.Float(t, x2, 2.0)

	x1, x2 = solveQuadraticFormula(1.0, 2.0, 1.0)
	test.Float(t, x1, -1.0)
	test.That(t, math.IsNaN(x2))

	x1, x2 = solveQuadraticFormula(0.0, 2.0, -4.0)
	test.Float(t, x1, 2.0)
	test.That(t, math.IsNaN(x2))

	x1, x2 = solveQuadraticFormula(1.0, -4.0, 0.0)
	test.Float(t, x1, 0.0)
	test.Float(t, x2, 4.0)

	x1, x2 = solveQuadraticFormula(1.0, 0.0, 1.0)
	test.That(t, math.IsNaN(x1))
	test.That(t, math.IsNaN(x2))
}

func TestPoint(t *testing.T) {
	Epsilon = 1e-10
	p := Point{3.0, 4.0}
	test.T(t, p.Neg(), Point{-3.0, -4.0})
	test.T(t, p.Add(Point{1.0, 1.0}), Point{4.0, 5.0})
	test.T(t, p.Sub(Point{1.0, 1.0}), Point{2.0, 3.0})
	test.T(t, p.Mul(2.0), Point{6.0, 8.0})
	test.T(t, p.Div(2.0), Point{1.5, 2.0})
	test.T(t, p.Rot90CW(), Point{4.0, -3.0})
	test.T(t, p.Rot90CCW(), Point{-4.0, 3.0})
	test.T(t, p.Rot(0.5*math.Pi, Point{}), p.Rot90CCW())
	test.T(t, p.Rot(0.5*math.Pi, p), p)
	test.Float(t, p.Dot(Point{3.0, 0.0}), 9.0)
	test.Float(t, p.PerpDot(Point{3.0, 0.0}), -12.0)
	test.Float(t, p.PerpDot(Point{3.0, 0.0}), p.Rot90CCW().Dot(Point{3.0, 0.0}))
	test.Float(t, p.Length(), 5.0)
	test.Float(t, p.Angle(), 0.9272952180016122)
	test.Float(t, p.AngleBetween(p.Rot90CCW()), 0.5*math.Pi)
	test.T(t, p.Norm(5.0), p)
	test.T(t, p.Norm(0.0), Point{0.0, 0.0})
	test.T(t, Point{}.Norm(1.0), Point{0.0, 0.0})
	test.T(t, Point{}.Interpolate(p, 0.5), Point{1.5, 2.0})
	test.That(t, Point{}.IsZero())
	test.That(t, !p.IsZero())
	test.String(t, p.String(), "[3; 4]")
}

func TestRect(t *testing.T) {
	Epsilon = 1e-10
	r := Rect{0.0, 0.0, 5.0, 5.0}
	test.T(t, r.Move(Point{3.0, 3.0}), Rect{3.0, 3.0, 5.0, 5.0})
	test.T(t, r.Add(Rect{5.0, 5.0, 5.0, 5.0}), Rect{0.0, 0.0, 10.0, 10.0})
	test.T(t, r.Add(Rect{5.0, 5.0, 0.0, 5.0}), r)
	test.T(t, Rect{5.0, 5.0, 0.0, 5.0}.Add(r), r)
	test.T(t, r.AddPoint(Point{10.0, -5.0}), Rect{0.0, -5.0, 10.0, 10.0})
	test.T(t, r.AddPoint(Point{2.0, 2.0}), r)
	test.That(t, r.Contains(Point{2.0, 2.0}))
	test.That(t, !r.Contains(Point{6.0, 2.0}))
	test.That(t, r.Overlaps(Rect{4.0, 4.0, 5.0, 5.0}))
	test.That(t, !r.Overlaps(Rect{6.0, 0.0, 5.0, 5.0}))
	test.T(t, Rect{10.0, 20.0, 30.0, 40.0}.ToPath(), MustParseSVGPath("M10 20L40 20L40 60L10 60z"))
	test.String(t, r.String(), "[0; 0]--[5; 5]")
}

func TestMatrix(t *testing.T) {
	Epsilon = 1e-10
	p := Point{3.0, 4.0}
	test.T(t, Identity.Translate(2.0, 2.0).Dot(p), Point{5.0, 6.0})
	test.T(t, Identity.Scale(2.0, 2.0).Dot(p), Point{6.0, 8.0})
	test.T(t, Identity.Scale(1.0, -1.0).Dot(p), Point{3.0, -4.0})
	test.T(t, Identity.Rotate(90.0).Dot(Point{1.0, 0.0}), Point{0.0, 1.0})
	test.T(t, Identity.RotateAbout(90.0, 3.0, 4.0).Dot(p), p)
	test.T(t, Identity.ReflectX().Dot(p), Point{-3.0, 4.0})
	test.T(t, Identity.ReflectY().Dot(p), Point{3.0, -4.0})
	test.T(t, Identity.ReflectXAbout(1.0).Dot(p), Point{-1.0, 4.0})
	test.T(t, Identity.ReflectYAbout(2.0).Dot(p), Point{3.0, 0.0})
	test.T(t, Identity.ScaleAbout(2.0, 2.0, 3.0, 4.0).Dot(p), p)
	test.T(t, Identity.Translate(2.0, 3.0).Scale(4.0, 5.0), Identity.Translate(2.0, 3.0).Mul(Identity.Scale(4.0, 5.0)))

	test.That(t, Identity.Translate(1.0, 2.0).IsTranslation())
	test.That(t, !Identity.Rotate(90.0).IsTranslation())
	test.That(t, !Identity.Scale(2.0, 2.0).IsTranslation())
	test.That(t, Identity.Rotate(36.0).Scale(2.0, 2.0).IsSimilarity())
	test.That(t, Identity.Translate(5.0, 5.0).Rotate(36.0).IsSimilarity())
	test.That(t, !Identity.Scale(2.0, 1.0).IsSimilarity())

	test.Float(t, Identity.Scale(2.0, 3.0).Det(), 6.0)
	test.Float(t, Identity.Scale(2.0, -3.0).Det(), -6.0)
	test.T(t, Identity.Translate(2.0, 3.0).Inv(), Identity.Translate(-2.0, -3.0))
	test.T(t, Identity.Scale(2.0, 4.0).Inv(), Identity.Scale(0.5, 0.25))
	test.T(t, Identity.Rotate(36.0).Inv(), Identity.Rotate(-36.0))
	test.String(t, Identity.String(), "[1, 0, 0; 0, 1, 0; 0, 0, 1]")
}
