package functions

import (
	"math"
	"strconv"

	"github.com/mesh-intelligence/cmyk/pkg/cmyk"
)

// Fraction is a plain number argument. As a color component it is read as a
// fraction of 100%, so Fraction(0.25) means 25%.
type Fraction float64

// Percent is a number argument carrying a percent unit.
type Percent float64

// Arg is any value a host may pass to a function: a cmyk.Color, a cmyk.Number,
// a Fraction or a Percent.
type Arg interface {
	String() string
}

func (f Fraction) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (p Percent) String() string {
	return strconv.FormatFloat(float64(p), 'g', -1, 64) + "%"
}

// The following types may be passed as arguments.
var (
	_ Arg = Fraction(0)
	_ Arg = Percent(0)
	_ Arg = cmyk.Color{}
	_ Arg = cmyk.Number(0)
)

// componentPercent converts a component argument to a whole percentage.
// Fractions are scaled by 100 and rounded half away from zero; percentages
// must already be whole.
func componentPercent(name string, a Arg) (int, error) {
	var v float64
	switch a := a.(type) {
	case Fraction:
		v = math.Round(float64(a) * 100)
	case Percent:
		v = float64(a)
		if v != math.Trunc(v) {
			return 0, invalid("cmyk", a,
				"invalid "+name+" value: a percentage must be a whole number between 0 and 100")
		}
	default:
		return 0, invalid("cmyk", describe(a), name+" must be a number")
	}

	if math.IsNaN(v) || v < 0 || v > cmyk.MaxPercent {
		return 0, invalid("cmyk", a,
			"invalid "+name+" value: must be a float between 0 and 1 or a percent between 0 and 100")
	}
	return int(v), nil
}
