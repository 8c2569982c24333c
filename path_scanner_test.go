package easel

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPathScanner(t *testing.T) {
	Epsilon = 1e-10
	p := MustParseSVGPath("M1 2L3 4Q5 6 7 8C9 10 11 12 13 14A5 4 0 1 0 15 16z")
	scanner := p.Scanner()

	test.That(t, scanner.Scan())
	test.That(t, scanner.Cmd() == MoveToCmd)
	test.T(t, scanner.Start(), Point{})
	test.T(t, scanner.End(), Point{1.0, 2.0})

	test.That(t, scanner.Scan())
	test.That(t, scanner.Cmd() == LineToCmd)
	test.T(t, scanner.Start(), Point{1.0, 2.0})
	test.T(t, scanner.End(), Point{3.0, 4.0})

	test.That(t, scanner.Scan())
	test.That(t, scanner.Cmd() == QuadToCmd)
	test.T(t, scanner.CP1(), Point{5.0, 6.0})
	test.T(t, scanner.End(), Point{7.0, 8.0})

	test.That(t, scanner.Scan())
	test.That(t, scanner.Cmd() == CubeToCmd)
	test.T(t, scanner.CP1(), Point{9.0, 10.0})
	test.T(t, scanner.CP2(), Point{11.0, 12.0})
	test.T(t, scanner.End(), Point{13.0, 14.0})

	test.That(t, scanner.Scan())
	test.That(t, scanner.Cmd() == ArcToCmd)
	rx, ry, rot, large, sweep := scanner.Arc()
	test.Float(t, rx, 5.0)
	test.Float(t, ry, 4.0)
	test.Float(t, rot, 0.0)
	test.That(t, large)
	test.That(t, !sweep)
	test.T(t, scanner.End(), Point{15.0, 16.0})

	test.That(t, scanner.Scan())
	test.That(t, scanner.Cmd() == CloseCmd)
	test.T(t, scanner.Start(), Point{15.0, 16.0})
	test.T(t, scanner.End(), Point{1.0, 2.0})

	test.That(t, !scanner.Scan())
}

func TestPathReverseScanner(t *testing.T) {
	Epsilon = 1e-10
	p := MustParseSVGPath("M1 2L3 4Q5 6 7 8C9 10 11 12 13 14A5 4 0 1 0 15 16z")
	scanner := p.ReverseScanner()

	test.That(t, scanner.Scan())
	test.That(t, scanner.Cmd() == CloseCmd)
	test.T(t, scanner.Start(), Point{15.0, 16.0})
	test.T(t, scanner.End(), Point{1.0, 2.0})

	test.That(t, scanner.Scan())
	test.That(t, scanner.Cmd() == ArcToCmd)
	rx, ry, rot, large, sweep := scanner.Arc()
	test.Float(t, rx, 5.0)
	test.Float(t, ry, 4.0)
	test.Float(t, rot, 0.0)
	test.That(t, large)
	test.That(t, !sweep)
	test.T(t, scanner.Start(), Point{13.0, 14.0})
	test.T(t, scanner.End(), Point{15.0, 16.0})

	test.That(t, scanner.Scan())
	test.That(t, scanner.Cmd() == CubeToCmd)
	test.T(t, scanner.CP1(), Point{9.0, 10.0})
	test.T(t, scanner.CP2(), Point{11.0, 12.0})

	test.That(t, scanner.Scan())
	test.That(t, scanner.Cmd() == QuadToCmd)
	test.T(t, scanner.CP1(), Point{5.0, 6.0})

	test.That(t, scanner.Scan())
	test.That(t, scanner.Cmd() == LineToCmd)
	test.T(t, scanner.Start(), Point{1.0, 2.0})
	test.T(t, scanner.End(), Point{3.0, 4.0})

	test.That(t, scanner.Scan())
	test.That(t, scanner.Cmd() == MoveToCmd)
	test.T(t, scanner.Start(), Point{})
	test.T(t, scanner.End(), Point{1.0, 2.0})

	test.That(t, !scanner.Scan())
}
