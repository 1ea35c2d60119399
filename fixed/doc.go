// Package fixed provides a Q19.12 fixed point number for platforms without
// hardware floating point.
//
// The equation for a fixed point number is:
//
//  number = raw / 4096
//
// Where raw is the stored signed 32-bit integer. 19 bits hold the integer
// magnitude and 12 bits the fraction. For example:
//
//  1.5  = 6144 / 4096
//  -0.25 = -1024 / 4096
//
// Adjacent values are Precision (1/4096, about 0.000244) apart and any real
// number is at most Accuracy (half of that) away from the nearest one.
//
// Construction
//
// There are three distinct ways to make a Fixed from a number and they are
// not interchangeable:
//
//  FromRaw(6144)    // 1.5: the integer is already scaled
//  FromInteger(6)   // 6.0: the integer is scaled by 4096
//  FromFloat(1.5)   // 1.5: rounded to the nearest step, halves away from zero
//
// Decimal literals are parsed with Parse or MustParse using only fixed point
// arithmetic.
//
// Arithmetic
//
// Every operator has a binary form (Add) returning a new value and an in place
// form (AddAssign) mutating its receiver. The Raw variants (MulRaw) take an
// operand that is already a raw value and apply it without any scale
// adjustment: FromInteger(3).MulRaw(2) is 6.0.
//
// Multiplication and division widen to 64 bits internally. Nothing is
// checked: overflow wraps the way the target hardware does, and dividing by
// zero is left to the Go runtime. The type never saturates.
//
// Text
//
// String and CString render exactly six fraction digits, like printf's
// "%.6f", without any floating point formatting:
//
//  FromFloat(-0.25).String() == "-0.250000"
package fixed
