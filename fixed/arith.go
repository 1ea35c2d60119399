package fixed

// All arithmetic wraps on overflow like the hardware it emulates. Division by
// zero is not checked; the Go runtime panics as it does for any int32
// division by zero.

// AddAssign adds g to f in place and returns f.
func (f *Fixed) AddAssign(g Fixed) *Fixed {
	*f += g
	return f
}

// SubAssign subtracts g from f in place and returns f.
func (f *Fixed) SubAssign(g Fixed) *Fixed {
	*f -= g
	return f
}

// MulAssign multiplies f by g in place and returns f.
//
// The product is formed in 64 bits and scaled back down, so no precision is
// lost before the final truncation to 32 bits.
func (f *Fixed) MulAssign(g Fixed) *Fixed {
	product := int64(*f) * int64(g)
	*f = Fixed(int32(product / Scale))
	return f
}

// DivAssign divides f by g in place and returns f.
//
// The dividend is scaled up in 64 bits before dividing to keep the fraction.
func (f *Fixed) DivAssign(g Fixed) *Fixed {
	scaled := int64(*f) * Scale
	*f = Fixed(int32(scaled / int64(g)))
	return f
}

// AddRawAssign adds the raw value r to f in place and returns f.
func (f *Fixed) AddRawAssign(r int32) *Fixed {
	*f += Fixed(r)
	return f
}

// SubRawAssign subtracts the raw value r from f in place and returns f.
func (f *Fixed) SubRawAssign(r int32) *Fixed {
	*f -= Fixed(r)
	return f
}

// MulRawAssign multiplies the raw value of f by r in place and returns f. No
// scale adjustment is made: r is treated as a plain multiplier.
func (f *Fixed) MulRawAssign(r int32) *Fixed {
	*f = Fixed(int32(*f) * r)
	return f
}

// DivRawAssign divides the raw value of f by r in place and returns f. No
// scale adjustment is made: r is treated as a plain divisor.
func (f *Fixed) DivRawAssign(r int32) *Fixed {
	*f = Fixed(int32(*f) / r)
	return f
}

// Add returns f + g.
func (f Fixed) Add(g Fixed) Fixed {
	return *f.AddAssign(g)
}

// Sub returns f - g.
func (f Fixed) Sub(g Fixed) Fixed {
	return *f.SubAssign(g)
}

// Mul returns f * g.
func (f Fixed) Mul(g Fixed) Fixed {
	return *f.MulAssign(g)
}

// Div returns f / g.
func (f Fixed) Div(g Fixed) Fixed {
	return *f.DivAssign(g)
}

// AddRaw returns f with the raw value r added.
func (f Fixed) AddRaw(r int32) Fixed {
	return *f.AddRawAssign(r)
}

// SubRaw returns f with the raw value r subtracted.
func (f Fixed) SubRaw(r int32) Fixed {
	return *f.SubRawAssign(r)
}

// MulRaw returns f with its raw value multiplied by r.
func (f Fixed) MulRaw(r int32) Fixed {
	return *f.MulRawAssign(r)
}

// DivRaw returns f with its raw value divided by r.
func (f Fixed) DivRaw(r int32) Fixed {
	return *f.DivRawAssign(r)
}

// RawMul returns the raw value r multiplied by f. It is MulRaw with the
// operands swapped.
func RawMul(r int32, f Fixed) Fixed {
	return f.MulRaw(r)
}

// Neg returns -f. Neg(Min) is Min.
func (f Fixed) Neg() Fixed {
	return -f
}

// Abs returns the absolute value of f. Abs(Min) is Min.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Inc adds 1.0 to f and returns the new value.
func (f *Fixed) Inc() Fixed {
	return *f.AddAssign(One)
}

// Dec subtracts 1.0 from f and returns the new value.
func (f *Fixed) Dec() Fixed {
	return *f.SubAssign(One)
}

// PostInc adds 1.0 to f and returns the value it had before.
func (f *Fixed) PostInc() Fixed {
	old := *f
	f.Inc()
	return old
}

// PostDec subtracts 1.0 from f and returns the value it had before.
func (f *Fixed) PostDec() Fixed {
	old := *f
	f.Dec()
	return old
}
