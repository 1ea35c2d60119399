// Package decimal converts Q19.12 fixed point values to and from base 10
// decimals.
//
// Every fixed point value is a multiple of 1/4096 = 0.000244140625, so its
// exact base 10 form needs at most 12 fraction digits:
//
//  number = raw * 244140625 * 10^-12
//
// The largest magnitude, 2^31 * 244140625, is below 10^18, so every value
// fits the 19 digit coefficient of a decimal.Decimal without rounding.
//
// Examples
//
//  raw 6144   1.5
//  raw -1     -0.000244140625
//  raw 5038   1.22998046875
//
// The reverse direction rounds to the nearest multiple of 1/4096 with exact
// halves going away from zero, matching fixed.FromFloat.
package decimal
