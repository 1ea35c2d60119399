package decimal

import (
	"math/big"

	"github.com/govalues/decimal"
	"github.com/zeebo/errs"

	"github.com/calebcase/unmoving/fixed"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

const (
	// fractionDigits is the number of base 10 digits needed for 1/Scale.
	fractionDigits = 12

	// unit is 10^12 / Scale, the coefficient of one raw step at scale 12.
	unit = 244_140_625
)

// FromFixed returns the exact decimal value of f with trailing fraction zeros
// removed.
func FromFixed(f fixed.Fixed) decimal.Decimal {
	return decimal.MustNew(int64(f.Raw())*unit, fractionDigits).Trim(0)
}

// Text returns the exact base 10 text of f, for example "-0.000244140625".
// Trailing fraction zeros and a bare decimal point are removed.
func Text(f fixed.Fixed) string {
	return FromFixed(f).String()
}

// ToFixed returns the fixed point value nearest to d. It fails when d is
// outside [fixed.Min, fixed.Max] after rounding.
func ToFixed(d decimal.Decimal) (_ fixed.Fixed, err error) {
	defer Error.WrapP(&err)

	// |raw| = round(coef * Scale / 10^scale)
	n := new(big.Int).SetUint64(d.Coef())
	n.Mul(n, big.NewInt(fixed.Scale))

	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Scale())), nil)

	q, r := new(big.Int).QuoRem(n, den, new(big.Int))

	r.Lsh(r, 1)
	if r.Cmp(den) >= 0 {
		q.Add(q, big.NewInt(1))
	}

	if d.IsNeg() {
		q.Neg(q)
	}

	if !q.IsInt64() || q.Int64() < int64(fixed.Min) || q.Int64() > int64(fixed.Max) {
		return 0, Error.New("out of range: %s", d)
	}

	return fixed.FromRaw(int32(q.Int64())), nil
}

// MustToFixed is like ToFixed but panics on error.
func MustToFixed(d decimal.Decimal) fixed.Fixed {
	f, err := ToFixed(d)
	if err != nil {
		panic(err)
	}

	return f
}
