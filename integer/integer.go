// Package integer provides the zigzag signed integer block used for raw fixed
// point values.
//
// The magnitude is shifted left one bit and the sign stored in bit 0, then
// written big-endian with leading zero bytes removed. Zero is a single zero
// byte. Small magnitudes of either sign therefore take few bytes.
package integer

import (
	"io"
	"math"
	"math/big"

	"github.com/calebcase/unmoving/control"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Block is a signed integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// FromInt64 returns the block holding v.
func FromInt64(v int64) *Block {
	// Unsigned negation handles math.MinInt64.
	magnitude := uint64(v)
	if v < 0 {
		magnitude = -magnitude
	}

	value := new(big.Int).SetUint64(magnitude).Bytes()
	if len(value) == 0 {
		value = []byte{0}
	}

	return &Block{
		Value:    value,
		Negative: v < 0,
	}
}

// Int64 returns the value of the block. It fails if the value does not fit
// in an int64.
func (b Block) Int64() (_ int64, err error) {
	i := new(big.Int).SetBytes(b.Value)
	if !i.IsUint64() {
		return 0, Error.New("overflow: %d bits", i.BitLen())
	}

	magnitude := i.Uint64()

	if b.Negative {
		if magnitude > 1<<63 {
			return 0, Error.New("overflow: -%d", magnitude)
		}

		return -int64(magnitude), nil
	}

	if magnitude > math.MaxInt64 {
		return 0, Error.New("overflow: %d", magnitude)
	}

	return int64(magnitude), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("invalid: size=0")
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	b.Value = data

	return nil
}

// Schema for an integer.
type Schema struct {
	Bits uint64

	Signed   bool
	Nullable bool
}

// Raw32 is the schema of a raw Q19.12 value.
var Raw32 = Schema{
	Bits:   32,
	Signed: true,
}

// maxSize returns the largest encoded size in bytes a value of the schema can
// take, or 0 when the schema is unbounded. The zigzag sign bit can add a byte.
func (s Schema) maxSize() uint64 {
	if s.Bits == 0 {
		return 0
	}

	return s.Bits/8 + 1
}

func (s Schema) check(b *Block) (err error) {
	if s.Bits == 0 {
		return nil
	}

	i := new(big.Int).SetBytes(b.Value)
	limit := s.Bits
	if s.Signed {
		limit--
	}

	// Signed schemas admit one extra negative value, -2^(Bits-1).
	if i.BitLen() > int(limit) {
		if !s.Signed || !b.Negative || i.BitLen() != int(limit)+1 || uint64(i.TrailingZeroBits()) != limit {
			return Error.New("overflow: %d bits in a %d bit schema", i.BitLen(), s.Bits)
		}
	}

	if !s.Signed && b.Negative {
		return Error.New("negative value in an unsigned schema")
	}

	return nil
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode moves to the next field and parses it into b. It returns io.EOF when
// no fields remain.
func (d *Decoder) Decode(b *Block) (err error) {
	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return Error.Wrap(d.cd.Err())
		}

		return io.EOF
	}

	return d.DecodeField(b)
}

// DecodeField parses the field the control decoder is positioned on into b.
// A Null field leaves b.Value nil.
func (d *Decoder) DecodeField(b *Block) (err error) {
	defer Error.WrapP(&err)

	t := d.cd.Type()

	switch {
	case t == control.Null:
		if !d.schema.Nullable {
			return Error.New("null in a non-nullable schema")
		}

		b.Value = nil
		b.Negative = false

		return nil
	case !t.IsData():
		return Error.New("unexpected field %q", t.Abbr)
	}

	size, err := d.cd.Size()
	if err != nil {
		return err
	}

	if limit := d.schema.maxSize(); limit != 0 && size > limit {
		return Error.New("overflow: %d bytes in a %d bit schema", size, d.schema.Bits)
	}

	data, err := d.cd.Data()
	if err != nil {
		return err
	}

	if d.schema.Signed {
		err = b.UnmarshalBinary(data)
		if err != nil {
			return err
		}
	} else {
		b.Value = append([]byte(nil), data...)
		b.Negative = false
	}

	return d.schema.check(b)
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode write a block to the writer. A nil block or a block with a nil value
// is written as Null.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if b == nil || b.Value == nil {
		if !e.schema.Nullable {
			return Error.New("null in a non-nullable schema")
		}

		return e.ce.Null()
	}

	err = e.schema.check(b)
	if err != nil {
		return err
	}

	var data []byte

	if e.schema.Signed {
		data, err = b.MarshalBinary()
		if err != nil {
			return err
		}
	} else {
		data = new(big.Int).SetBytes(b.Value).Bytes()
		if len(data) == 0 {
			data = []byte{0}
		}
	}

	return e.ce.Data(data)
}
