package easel

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte, i int) (float64, int, error) {
	i += skipCommaWhitespace(path[i:])
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, i, fmt.Errorf("bad path: expected number at position %d", i+1)
	}
	return f, i + n, nil
}

// MustParseSVGPath parses an SVG path description and panics on a bad path.
func MustParseSVGPath(s string) *Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSVGPath parses an SVG path description, see https://www.w3.org/TR/SVG/paths.html#PathData
func ParseSVGPath(s string) (*Path, error) {
	path := []byte(s)
	p := &Path{}

	var err error
	var prevCmd byte
	var f [7]float64
	cpx, cpy := 0.0, 0.0 // previous Bézier control point for the smooth commands

	i := 0
	for i < len(path) {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prevCmd
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		} else if cmd == 0 {
			return nil, fmt.Errorf("bad path: expected command at position %d", i+1)
		} else if cmd == 'M' {
			cmd = 'L' // subsequent MoveTo coordinate pairs are implicit LineTos
		} else if cmd == 'm' {
			cmd = 'l'
		}

		var n int
		switch cmd & 0xDF {
		case 'M', 'L', 'T':
			n = 2
		case 'H', 'V':
			n = 1
		case 'C':
			n = 6
		case 'S', 'Q':
			n = 4
		case 'A':
			n = 7
		case 'Z':
			n = 0
		default:
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, i)
		}
		for j := 0; j < n; j++ {
			if f[j], i, err = parseNum(path, i); err != nil {
				return nil, err
			}
		}

		pos := p.Pos()
		x, y := pos.X, pos.Y
		switch cmd {
		case 'M', 'm':
			a, b := f[0], f[1]
			if cmd == 'm' {
				a += x
				b += y
			}
			p.MoveTo(a, b)
		case 'Z', 'z':
			p.Close()
		case 'L', 'l':
			a, b := f[0], f[1]
			if cmd == 'l' {
				a += x
				b += y
			}
			p.LineTo(a, b)
		case 'H', 'h':
			a := f[0]
			if cmd == 'h' {
				a += x
			}
			p.LineTo(a, y)
		case 'V', 'v':
			b := f[0]
			if cmd == 'v' {
				b += y
			}
			p.LineTo(x, b)
		case 'C', 'c':
			a, b, c, d, e, g := f[0], f[1], f[2], f[3], f[4], f[5]
			if cmd == 'c' {
				a += x
				b += y
				c += x
				d += y
				e += x
				g += y
			}
			p.CubeTo(a, b, c, d, e, g)
			cpx, cpy = c, d
		case 'S', 's':
			c, d, e, g := f[0], f[1], f[2], f[3]
			if cmd == 's' {
				c += x
				d += y
				e += x
				g += y
			}
			a, b := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				a, b = 2.0*x-cpx, 2.0*y-cpy
			}
			p.CubeTo(a, b, c, d, e, g)
			cpx, cpy = c, d
		case 'Q', 'q':
			a, b, c, d := f[0], f[1], f[2], f[3]
			if cmd == 'q' {
				a += x
				b += y
				c += x
				d += y
			}
			p.QuadTo(a, b, c, d)
			cpx, cpy = a, b
		case 'T', 't':
			c, d := f[0], f[1]
			if cmd == 't' {
				c += x
				d += y
			}
			a, b := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				a, b = 2.0*x-cpx, 2.0*y-cpy
			}
			p.QuadTo(a, b, c, d)
			cpx, cpy = a, b
		case 'A', 'a':
			e, g := f[5], f[6]
			if cmd == 'a' {
				e += x
				g += y
			}
			large := f[3] == 1.0
			sweep := f[4] == 1.0
			p.ArcTo(f[0], f[1], f[2], large, sweep, e, g)
		}
		prevCmd = cmd
	}
	return p, nil
}
