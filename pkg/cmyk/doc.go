// Package cmyk defines the Color value type, a CMYK color whose four
// components are whole-number percentages, together with its arithmetic:
// normalization (gray component replacement), mixing by saturating addition,
// and proportional scaling by multiplication and division.
//
// Every Color returned by this package satisfies the component invariant:
// cyan, magenta, yellow and black each lie in [0, 100].
package cmyk
