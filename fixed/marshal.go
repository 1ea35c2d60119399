package fixed

import (
	"github.com/calebcase/unmoving/integer"
)

// MarshalText implements encoding.TextMarshaler using the CString text.
func (f Fixed) MarshalText() (text []byte, err error) {
	return f.AppendCString(make([]byte, 0, CStringSize)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts anything
// ParseDecimal does.
func (f *Fixed) UnmarshalText(text []byte) (err error) {
	v, err := ParseDecimal(string(text))
	if err != nil {
		return err
	}

	*f = v

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The raw value is written
// as a zigzag integer block, so values near zero take fewer bytes.
func (f Fixed) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	return integer.FromInt64(int64(f)).MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (f *Fixed) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	var b integer.Block

	err = b.UnmarshalBinary(data)
	if err != nil {
		return err
	}

	v, err := b.Int64()
	if err != nil {
		return err
	}

	if v < int64(Min) || v > int64(Max) {
		return ErrRange.New("%d", v)
	}

	*f = Fixed(v)

	return nil
}
