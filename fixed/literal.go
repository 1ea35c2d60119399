package fixed

import "fmt"

// Parse converts a decimal literal into a Fixed without any floating point
// arithmetic.
//
// A literal is a run of digits with at most one decimal point ("123",
// "123.45", ".45", "7."). There is no sign: -1.5 is MustParse("1.5").Neg().
//
// Integer digits are accumulated most significant first, multiplying by ten
// each step. Fraction digits are accumulated least significant first,
// dividing by ten after each one, so no power of ten larger than the type can
// hold is ever needed. Integer parts beyond DecimalMax wrap.
func Parse(lit string) (_ Fixed, err error) {
	defer Error.WrapP(&err)

	point, err := scanLiteral(lit)
	if err != nil {
		return 0, err
	}

	ten := FromInteger(10)

	var integral Fixed
	for i := 0; i < point; i++ {
		integral.MulAssign(ten)
		integral.AddAssign(FromInteger(int(lit[i] - '0')))
	}

	var fractional Fixed
	for i := len(lit) - 1; i > point; i-- {
		fractional.AddAssign(FromInteger(int(lit[i] - '0')))
		fractional.DivAssign(ten)
	}

	return integral.Add(fractional), nil
}

// MustParse is like Parse but panics if lit is malformed. It is meant for
// literal constants in source.
func MustParse(lit string) Fixed {
	f, err := Parse(lit)
	if err != nil {
		panic(fmt.Sprintf("fixed.MustParse(%q): %v", lit, err))
	}

	return f
}

// Integral returns the value of the integer literal n. It is FromInteger for
// unsigned literals and wraps the same way.
func Integral(n uint64) Fixed {
	return FromInteger(int(int32(n)))
}

// scanLiteral validates lit and returns the index of its decimal point, or
// len(lit) when there is none.
func scanLiteral(lit string) (point int, err error) {
	point = len(lit)
	digits := 0

	for i := 0; i < len(lit); i++ {
		c := lit[i]

		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && point == len(lit):
			point = i
		default:
			return 0, ErrSyntax.New("%q: unexpected %q at %d", lit, c, i)
		}
	}

	if digits == 0 {
		return 0, ErrSyntax.New("%q: no digits", lit)
	}

	return point, nil
}

// maxRoundedDigits bounds the fraction digits ParseDecimal looks at, keeping
// digits * Scale within a uint64.
const maxRoundedDigits = 15

// ParseDecimal converts signed decimal text such as "-0.250000" into the
// nearest Fixed, rounding exact halves away from zero. Text written by
// String always parses back to the same value.
//
// Unlike Parse it rejects integer parts that do not fit and it rounds the
// fraction instead of truncating each digit. Fraction digits beyond the
// fifteenth are ignored.
func ParseDecimal(s string) (_ Fixed, err error) {
	defer Error.WrapP(&err)

	neg := false
	lit := s
	if len(lit) > 0 && (lit[0] == '-' || lit[0] == '+') {
		neg = lit[0] == '-'
		lit = lit[1:]
	}

	point, err := scanLiteral(lit)
	if err != nil {
		return 0, err
	}

	var integral uint64
	for i := 0; i < point; i++ {
		integral = integral*10 + uint64(lit[i]-'0')
		if integral > 1<<DecimalBits {
			return 0, ErrRange.New("%q", s)
		}
	}

	var numerator, denominator uint64 = 0, 1
	for i := point + 1; i < len(lit) && i-point <= maxRoundedDigits; i++ {
		numerator = numerator*10 + uint64(lit[i]-'0')
		denominator *= 10
	}

	fraction := numerator * Scale / denominator
	if (numerator*Scale%denominator)*2 >= denominator {
		fraction++
	}

	magnitude := integral<<FractionBits + fraction
	if neg {
		if magnitude > 1<<31 {
			return 0, ErrRange.New("%q", s)
		}
		return Fixed(int32(-int64(magnitude))), nil
	}

	if magnitude > 1<<31-1 {
		return 0, ErrRange.New("%q", s)
	}

	return Fixed(int32(magnitude)), nil
}
