package cmyk

import (
	"fmt"
	"strings"
)

// Component names, in canonical order.
const (
	Cyan    = "cyan"
	Magenta = "magenta"
	Yellow  = "yellow"
	Black   = "black"
)

// Components lists the component names in the order used by String and New.
var Components = []string{Cyan, Magenta, Yellow, Black}

// MaxPercent is the upper bound of every component.
const MaxPercent = 100

// Color is a CMYK color. Each component is a whole percentage in [0, 100].
// The zero value is paper white, cmyk(0%,0%,0%,0%).
//
// Color is a small value type; copies are independent. Only NormalizeInPlace
// mutates, and it needs exclusive access to its receiver.
type Color struct {
	cyan, magenta, yellow, black int
}

// New returns the color with the given component percentages.
// It fails with ErrValidation if any component is outside [0, 100].
func New(c, m, y, k int) (Color, error) {
	for i, v := range [4]int{c, m, y, k} {
		if !inRange(v) {
			return Color{}, newError(ErrValidation, "new", v,
				fmt.Sprintf("%s must be an integer between 0 and 100", Components[i]))
		}
	}
	return Color{cyan: c, magenta: m, yellow: y, black: k}, nil
}

// MustNew is like New but panics on invalid input.
// It is intended for constants in tests and package-level variables.
func MustNew(c, m, y, k int) Color {
	col, err := New(c, m, y, k)
	if err != nil {
		panic(err)
	}
	return col
}

// FromMap builds a color from a component map keyed by the names in
// Components. Entries whose value is not an integer in [0, 100] are
// discarded first; FromMap then fails with ErrValidation unless all four
// components remain. Floating-point values never count as integers.
// The input map is not modified.
func FromMap(attrs map[string]any) (Color, error) {
	kept := make(map[string]int, len(Components))
	for k, v := range attrs {
		n, ok := asInt(v)
		if !ok || !inRange(n) {
			continue
		}
		kept[k] = n
	}

	var missing []string
	for _, name := range Components {
		if _, ok := kept[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return Color{}, newError(ErrValidation, "new", strings.Join(missing, ", "),
			"cyan, magenta, yellow and black must all be integers between 0 and 100")
	}

	return Color{
		cyan:    kept[Cyan],
		magenta: kept[Magenta],
		yellow:  kept[Yellow],
		black:   kept[Black],
	}, nil
}

// Cyan returns the cyan percentage.
func (c Color) Cyan() int { return c.cyan }

// Magenta returns the magenta percentage.
func (c Color) Magenta() int { return c.magenta }

// Yellow returns the yellow percentage.
func (c Color) Yellow() int { return c.yellow }

// Black returns the black (key) percentage.
func (c Color) Black() int { return c.black }

// Attrs returns the four components keyed by name.
// The map is freshly allocated on every call.
func (c Color) Attrs() map[string]int {
	return map[string]int{
		Cyan:    c.cyan,
		Magenta: c.magenta,
		Yellow:  c.yellow,
		Black:   c.black,
	}
}

// Equal reports whether c and other have the same components.
func (c Color) Equal(other Color) bool {
	return c == other
}

// Clone returns a copy of c.
func (c Color) Clone() Color {
	return c
}

// String returns the canonical form cmyk(C%,M%,Y%,K%), without spaces.
func (c Color) String() string {
	return fmt.Sprintf("cmyk(%d%%,%d%%,%d%%,%d%%)", c.cyan, c.magenta, c.yellow, c.black)
}

func (c Color) components() [4]int {
	return [4]int{c.cyan, c.magenta, c.yellow, c.black}
}

func inRange(v int) bool {
	return v >= 0 && v <= MaxPercent
}

// asInt converts Go integer kinds to int. Values that do not fit in an int
// are reported as out of range by the caller's bounds check.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n < 0 || n > MaxPercent {
			return -1, true
		}
		return int(n), true
	case uint:
		if n > MaxPercent {
			return -1, true
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > MaxPercent {
			return -1, true
		}
		return int(n), true
	default:
		return 0, false
	}
}
