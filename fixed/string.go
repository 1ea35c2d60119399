package fixed

import (
	"fmt"
	"strconv"
)

// CStringSize is the smallest buffer CString will write to: a sign, up to 7
// integer digits, the decimal point, 6 fraction digits and the NUL
// terminator.
const CStringSize = 15

// fractionDigits is the number of digits printed after the decimal point.
// 10^6 is the largest power of ten that can multiply a remainder (< Scale)
// without overflowing a uint32.
const (
	fractionDigits = 6
	fractionScale  = 1_000_000
)

// CString writes f into buf as a NUL terminated decimal string with exactly
// six fraction digits, the same text printf's "%.6f" gives.
//
// It returns false without writing anything when buf is nil or shorter than
// CStringSize. Bytes after the terminator are left as they were.
func (f Fixed) CString(buf []byte) bool {
	if buf == nil {
		return false
	}
	if len(buf) < CStringSize {
		return false
	}

	var tmp [CStringSize]byte

	out := f.AppendCString(tmp[:0])
	n := copy(buf, out)
	buf[n] = 0

	return true
}

// CStringLen returns the length of the NUL terminated string in buf, or
// len(buf) when there is no terminator.
func CStringLen(buf []byte) int {
	for i, b := range buf {
		if b == 0 {
			return i
		}
	}

	return len(buf)
}

// AppendCString appends the text written by CString, without the terminator,
// to dst. No floating point formatting is used.
func (f Fixed) AppendCString(dst []byte) []byte {
	raw := int32(f)
	integral := raw / Scale

	// Unsigned negation handles Min, whose magnitude does not fit in int32.
	magnitude := uint32(raw)
	if raw < 0 {
		magnitude = -magnitude
	}
	remainder := magnitude % Scale
	fraction := remainder * fractionScale / Scale

	// The integer part of values in (-1, 0) is zero and loses the sign.
	if raw < 0 && integral == 0 {
		dst = append(dst, '-')
	}
	dst = strconv.AppendInt(dst, int64(integral), 10)
	dst = append(dst, '.')

	var digits [fractionDigits]byte
	for i := fractionDigits - 1; i >= 0; i-- {
		digits[i] = byte('0' + fraction%10)
		fraction /= 10
	}

	return append(dst, digits[:]...)
}

// String returns the CString text of f.
func (f Fixed) String() string {
	var tmp [CStringSize]byte
	return string(f.AppendCString(tmp[:0]))
}

// Format implements fmt.Formatter.
//
//	%v, %s  the CString text
//	%+v     the raw value as fixed.FromRaw(raw)
//	%d      the raw value
//	%q      the quoted CString text
//	%e, %f, %g and upper case variants format Float64
func (f Fixed) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "fixed.FromRaw(%d)", int32(f))
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, f.String())
	case 'q':
		fmt.Fprint(s, strconv.Quote(f.String()))
	case 'd':
		fmt.Fprint(s, int32(f))
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(s, fmt.FormatString(s, verb), f.Float64())
	default:
		fmt.Fprintf(s, "%%!%c(fixed.Fixed=%s)", verb, f.String())
	}
}
