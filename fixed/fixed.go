package fixed

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Fixed is a Q19.12 fixed point number. The zero value represents 0.0.
//
// The stored integer is the raw scaled value: the logical value is raw /
// Scale. It matches the layout used by the PlayStation SDK fixed point
// routines, so raw values can be passed to and from them unchanged.
type Fixed int32

const (
	// FractionBits is the number of bits used for the fraction part.
	FractionBits = 12

	// DecimalBits is the number of bits used for the integer magnitude
	// (the sign bit is not counted).
	DecimalBits = 31 - FractionBits

	// Scale is the number of raw units in 1.0. It matches the SDK's ONE.
	Scale = 1 << FractionBits

	// Precision is the distance between two adjacent values.
	Precision = 1.0 / Scale

	// Accuracy is the largest difference between a real number and the
	// nearest Fixed value.
	Accuracy = Precision / 2

	// FractionalStep is the older name for Precision.
	//
	// Deprecated: Use Precision or Accuracy.
	FractionalStep = Precision

	// DecimalMax is the largest integer representable.
	DecimalMax = 1<<DecimalBits - 1

	// DecimalMin is the smallest integer representable.
	DecimalMin = -(1 << DecimalBits)

	// FractionalMax is the largest real value representable.
	FractionalMax = DecimalMax + (1.0 - Precision)

	// FractionalMin is the smallest real value representable.
	FractionalMin = DecimalMin
)

// Well known values.
const (
	Zero Fixed = 0
	One  Fixed = Scale
	Max  Fixed = math.MaxInt32
	Min  Fixed = math.MinInt32
)

// FromRaw wraps an already scaled raw value. No scaling is applied.
//
// Don't use this for plain integers; use FromInteger for that.
func FromRaw(raw int32) Fixed {
	return Fixed(raw)
}

// FromInteger returns the Fixed holding the same value as n.
//
// Values of n outside [DecimalMin, DecimalMax] silently wrap.
func FromInteger(n int) Fixed {
	return Fixed(int32(n) << FractionBits)
}

// FromFloat returns the Fixed nearest to v. Exact halves are rounded away
// from zero.
//
// The conversion does not rely on a rounding primitive: the scaled value is
// split into its truncated integer part and remainder and the remainder is
// rounded by hand. Values outside [FractionalMin, FractionalMax] wrap.
func FromFloat(v float64) Fixed {
	scaled := v * Scale

	integral := int64(scaled)
	remainder := scaled - float64(integral)

	switch {
	case remainder >= 0.5:
		integral++
	case remainder <= -0.5:
		integral--
	}

	return Fixed(int32(integral))
}

// FromFloatOf is FromFloat for any float type.
func FromFloatOf[F constraints.Float](v F) Fixed {
	return FromFloat(float64(v))
}

// Raw returns the raw scaled value.
func (f Fixed) Raw() int32 {
	return int32(f)
}

// Float64 returns the exact value of f. Every Fixed value fits in the
// mantissa of a float64.
func (f Fixed) Float64() float64 {
	return float64(f) / Scale
}

// Float32 returns the float32 closest to f. This loses precision for values
// that need more than 24 significant bits; use Float64 for an exact result.
func (f Fixed) Float32() float32 {
	return float32(f.Float64())
}

// ToInteger returns f converted to an integer with the fraction truncated
// toward zero.
func (f Fixed) ToInteger() int32 {
	// A right shift would floor negative values.
	return int32(f) / Scale
}
