package cmyk

import (
	"fmt"
	"math"
)

// Plus mixes c with other. Corresponding components are added and each sum
// is capped at 100; the result is then normalized. Mixing never fails for
// two colors. It fails with ErrType if other is not a Color.
func (c Color) Plus(other Value) (Color, error) {
	o, ok := other.(Color)
	if !ok {
		return Color{}, newError(ErrType, "plus", describe(other),
			fmt.Sprintf("only cmyk colors can be added to %s", c))
	}

	sum := Color{
		cyan:    min(c.cyan+o.cyan, MaxPercent),
		magenta: min(c.magenta+o.magenta, MaxPercent),
		yellow:  min(c.yellow+o.yellow, MaxPercent),
		black:   min(c.black+o.black, MaxPercent),
	}
	return sum.Normalize(), nil
}

// Minus always fails with ErrUnsupported: subtracting inks has no meaning.
func (c Color) Minus(other Value) (Color, error) {
	return Color{}, newError(ErrUnsupported, "minus", describe(other),
		fmt.Sprintf("subtraction is not supported for cmyk colors such as %s", c))
}

// Times scales every component of c by the Number other, rounding each
// product half away from zero independently. The normalized result is
// returned.
//
// Scaling never clamps. If any rounded component would exceed 100, or fall
// below 0 for a negative factor, Times fails with ErrRange. It fails with
// ErrType if other is not a Number. Only the color * scalar form exists.
func (c Color) Times(other Value) (Color, error) {
	n, ok := other.(Number)
	if !ok {
		return Color{}, newError(ErrType, "times", describe(other),
			fmt.Sprintf("%s can only be multiplied by a number", c))
	}
	return c.scale("times", float64(n))
}

// Div divides every component of c by the Number other. It is Times with
// the reciprocal of other and shares its rounding and range checks.
// It fails with ErrArithmetic if other is zero and ErrType if other is not
// a Number.
func (c Color) Div(other Value) (Color, error) {
	n, ok := other.(Number)
	if !ok {
		return Color{}, newError(ErrType, "div", describe(other),
			fmt.Sprintf("%s can only be divided by a number", c))
	}
	if n == 0 {
		return Color{}, newError(ErrArithmetic, "div", n,
			fmt.Sprintf("cannot divide %s by zero", c))
	}
	return c.scale("div", 1.0/float64(n))
}

func (c Color) scale(op string, factor float64) (Color, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return Color{}, newError(ErrRange, op, Number(factor), "scale factor must be finite")
	}

	var out [4]int
	for i, v := range c.components() {
		r := math.Round(float64(v) * factor)
		if r > MaxPercent || r < 0 {
			return Color{}, newError(ErrRange, op, Number(factor), fmt.Sprintf(
				"scaling %s would result in a %s component of %g%%, outside 0%% to 100%%",
				c, Components[i], r))
		}
		out[i] = int(r)
	}

	res := Color{cyan: out[0], magenta: out[1], yellow: out[2], black: out[3]}
	return *res.NormalizeInPlace(), nil
}

func describe(v Value) any {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (%T)", v, v)
}
