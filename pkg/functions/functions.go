package functions

import (
	"fmt"

	"github.com/mesh-intelligence/cmyk/pkg/cmyk"
)

// CMYK constructs a color from four component arguments, each either a
// Fraction in [0, 1] or a whole Percent in [0, 100]. The result is not
// normalized.
func CMYK(c, m, y, k Arg) (cmyk.Color, error) {
	var v [4]int
	for i, a := range [4]Arg{c, m, y, k} {
		p, err := componentPercent(cmyk.Components[i], a)
		if err != nil {
			return cmyk.Color{}, err
		}
		v[i] = p
	}
	return cmyk.New(v[0], v[1], v[2], v[3])
}

// Mix returns the normalized mixture of two colors, see cmyk.Color.Plus.
// Both arguments must be colors.
func Mix(a, b Arg) (cmyk.Color, error) {
	ca, okA := a.(cmyk.Color)
	cb, okB := b.(cmyk.Color)
	if !okA || !okB {
		return cmyk.Color{}, invalid("cmyk_mix",
			fmt.Sprintf("%s, %s", describe(a), describe(b)),
			"cmyk_mix requires two cmyk colors as arguments")
	}
	return ca.Plus(cb)
}

// Scale multiplies every component of color by percent/100, see
// cmyk.Color.Times. The color argument must be a color and percent a Percent.
func Scale(color, percent Arg) (cmyk.Color, error) {
	c, ok := color.(cmyk.Color)
	if !ok {
		return cmyk.Color{}, invalid("cmyk_scale", describe(color),
			"first argument must be a cmyk color")
	}
	p, ok := percent.(Percent)
	if !ok {
		return cmyk.Color{}, invalid("cmyk_scale", describe(percent),
			"second argument must be a percent")
	}
	return c.Times(cmyk.Number(float64(p) / 100))
}

func invalid(op string, value any, constraint string) error {
	return &cmyk.Error{Op: op, Value: value, Constraint: constraint, Kind: cmyk.ErrValidation}
}

func describe(a Arg) string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (%T)", a, a)
}
