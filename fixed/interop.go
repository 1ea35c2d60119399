package fixed

import (
	xfixed "golang.org/x/image/math/fixed"
)

// Int52_12 returns f as an x/image fixed point value. Both use 12 fraction
// bits so the conversion is exact.
func (f Fixed) Int52_12() xfixed.Int52_12 {
	return xfixed.Int52_12(f)
}

// FromInt52_12 converts x, wrapping values that do not fit in 32 bits.
func FromInt52_12(x xfixed.Int52_12) Fixed {
	return Fixed(int32(x))
}

// Int26_6 returns f with 6 fraction bits, rounding exact halves away from
// zero the same way FromFloat does.
func (f Fixed) Int26_6() xfixed.Int26_6 {
	const drop = FractionBits - 6

	q := int32(f) / (1 << drop)
	r := int32(f) % (1 << drop)

	switch {
	case r >= 1<<(drop-1):
		q++
	case r <= -(1 << (drop - 1)):
		q--
	}

	return xfixed.Int26_6(q)
}

// FromInt26_6 converts x, wrapping values that do not fit.
func FromInt26_6(x xfixed.Int26_6) Fixed {
	return Fixed(int32(x) << (FractionBits - 6))
}
