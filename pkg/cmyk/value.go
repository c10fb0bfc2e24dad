package cmyk

import "strconv"

// Value is an operand of the color arithmetic: either a Color or a Number.
// The interface is sealed; the arithmetic methods report ErrType for operand
// kinds they do not accept.
type Value interface {
	String() string
	isValue()
}

// Number is a unitless scalar operand.
type Number float64

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (Color) isValue()  {}
func (Number) isValue() {}

// The following types implement the Value interface.
var (
	_ Value = Color{}
	_ Value = Number(0)
)
