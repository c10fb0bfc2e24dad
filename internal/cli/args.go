package cli

import (
	"strconv"
	"strings"

	"github.com/mesh-intelligence/cmyk/pkg/cmyk"
	"github.com/mesh-intelligence/cmyk/pkg/functions"
)

// parseArg tags a command-line literal the way an expression host would:
// "cmyk(...)" is a color, a number ending in "%" is a Percent and any other
// number is a Fraction.
func parseArg(s string) (functions.Arg, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "cmyk(") {
		return cmyk.Parse(s)
	}

	num, isPercent := strings.CutSuffix(s, "%")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return nil, &cmyk.Error{
			Op:         "parse",
			Value:      s,
			Constraint: "expected a number, a percentage or a cmyk(C%,M%,Y%,K%) color",
			Kind:       cmyk.ErrValidation,
		}
	}
	if isPercent {
		return functions.Percent(v), nil
	}
	return functions.Fraction(v), nil
}

func parseArgs(ss []string) ([]functions.Arg, error) {
	args := make([]functions.Arg, len(ss))
	for i, s := range ss {
		a, err := parseArg(s)
		if err != nil {
			return nil, err
		}
		args[i] = a
	}
	return args, nil
}
