package cmyk

import (
	"strconv"
	"strings"
)

// Parse reads a color in the canonical form produced by Color.String,
// for example "cmyk(20%,40%,60%,70%)". Leading and trailing white space is
// ignored; anything else that deviates from the canonical form is rejected
// with ErrValidation.
func Parse(s string) (Color, error) {
	const constraint = `expected "cmyk(C%,M%,Y%,K%)" with whole percentages`

	body, ok := strings.CutPrefix(strings.TrimSpace(s), "cmyk(")
	if ok {
		body, ok = strings.CutSuffix(body, ")")
	}
	if !ok {
		return Color{}, newError(ErrValidation, "parse", s, constraint)
	}

	fields := strings.Split(body, ",")
	if len(fields) != len(Components) {
		return Color{}, newError(ErrValidation, "parse", s, constraint)
	}

	var v [4]int
	for i, f := range fields {
		digits, ok := strings.CutSuffix(f, "%")
		if !ok || digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
			return Color{}, newError(ErrValidation, "parse", s, constraint)
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return Color{}, newError(ErrValidation, "parse", s, constraint)
		}
		v[i] = n
	}

	col, err := New(v[0], v[1], v[2], v[3])
	if err != nil {
		return Color{}, newError(ErrValidation, "parse", s, err.(*Error).Constraint)
	}
	return col, nil
}
