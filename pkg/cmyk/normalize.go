package cmyk

// Normalize returns c with gray component replacement applied: the common
// minimum of cyan, magenta and yellow is removed from those three channels
// and added to black, capped at 100. If any of cyan, magenta or yellow is
// already zero the result equals c.
func (c Color) Normalize() Color {
	c.cyan, c.magenta, c.yellow, c.black = normalized(c.cyan, c.magenta, c.yellow, c.black)
	return c
}

// NormalizeInPlace applies the same transformation as Normalize to the
// receiver and returns it.
func (c *Color) NormalizeInPlace() *Color {
	c.cyan, c.magenta, c.yellow, c.black = normalized(c.cyan, c.magenta, c.yellow, c.black)
	return c
}

// IsNormalized reports whether at least one of cyan, magenta and yellow is zero.
func (c Color) IsNormalized() bool {
	return min(c.cyan, c.magenta, c.yellow) == 0
}

func normalized(c, m, y, k int) (int, int, int, int) {
	gray := min(c, m, y)
	return c - gray, m - gray, y - gray, min(MaxPercent, k+gray)
}
