// Package functions exposes the CMYK color operations as host functions:
// cmyk (construct from components), cmyk_mix (mix two colors) and
// cmyk_scale (scale a color by a percentage).
//
// A host expression runtime calls these with arguments it has already
// tagged: a bare number becomes a Fraction, a number with a percent unit a
// Percent, and a color value a cmyk.Color. The functions re-validate bounds
// and kinds but never parse source text.
package functions
