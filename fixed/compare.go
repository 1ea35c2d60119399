package fixed

// Raw values map onto logical values monotonically, so every comparison is a
// plain integer comparison of raw values.

// Cmp returns -1, 0 or +1 depending on whether f is less than, equal to or
// greater than g.
func (f Fixed) Cmp(g Fixed) int {
	switch {
	case f < g:
		return -1
	case f > g:
		return 1
	}
	return 0
}

func (f Fixed) Equal(g Fixed) bool        { return f == g }
func (f Fixed) NotEqual(g Fixed) bool     { return f != g }
func (f Fixed) Less(g Fixed) bool         { return f < g }
func (f Fixed) LessEqual(g Fixed) bool    { return f <= g }
func (f Fixed) Greater(g Fixed) bool      { return f > g }
func (f Fixed) GreaterEqual(g Fixed) bool { return f >= g }

// CmpRaw compares f against the raw value r.
func (f Fixed) CmpRaw(r int32) int { return f.Cmp(Fixed(r)) }

func (f Fixed) EqualRaw(r int32) bool        { return f == Fixed(r) }
func (f Fixed) NotEqualRaw(r int32) bool     { return f != Fixed(r) }
func (f Fixed) LessRaw(r int32) bool         { return f < Fixed(r) }
func (f Fixed) LessEqualRaw(r int32) bool    { return f <= Fixed(r) }
func (f Fixed) GreaterRaw(r int32) bool      { return f > Fixed(r) }
func (f Fixed) GreaterEqualRaw(r int32) bool { return f >= Fixed(r) }

// RawCmp compares the raw value r against f. RawCmp(r, f) == -f.CmpRaw(r).
func RawCmp(r int32, f Fixed) int { return Fixed(r).Cmp(f) }

// RawEqual reports whether the raw value r equals f.
func RawEqual(r int32, f Fixed) bool { return Fixed(r) == f }

// Raw first forms of the comparisons, for when the raw value is the left
// operand.
func RawNotEqual(r int32, f Fixed) bool     { return Fixed(r) != f }
func RawLess(r int32, f Fixed) bool         { return Fixed(r) < f }
func RawLessEqual(r int32, f Fixed) bool    { return Fixed(r) <= f }
func RawGreater(r int32, f Fixed) bool      { return Fixed(r) > f }
func RawGreaterEqual(r int32, f Fixed) bool { return Fixed(r) >= f }
