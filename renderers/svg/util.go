package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"

	easel "github.com/gvsucis/f25-spherical-easel"
)

////////////////////////////////////////////////////////////////

type dec float64

func (f dec) String() string {
	s := fmt.Sprintf("%.*f", easel.Precision, f)
	s = string(minify.Decimal([]byte(s), easel.Precision))
	if dec(math.MaxInt32) < f || f < dec(math.MinInt32) {
		if i := strings.IndexByte(s, '.'); i == -1 {
			s += ".0"
		}
	}
	return s
}
