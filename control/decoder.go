package control

import (
	"bytes"
	"errors"
	"io"
	"math"
	"math/big"

	"github.com/calebcase/oops"
)

// ErrInvalidOperation is returned when a method does not apply to the
// current block type.
var ErrInvalidOperation = Error.New("invalid operation")

// Decoder reads control blocks.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Depth() int
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
	Enter() (err error)
}

type decoder struct {
	r io.Reader

	consumed uint64
	depth    int

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return &decoder{
		r: r,
	}
}

func (d *decoder) read(p []byte) (err error) {
	n, err := io.ReadFull(d.r, p)
	d.consumed += uint64(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return Error.Wrap(err)
	}

	return nil
}

// maxPrealloc bounds the buffer allocated up front for a data field. Larger
// fields grow as bytes actually arrive, so a forged size cannot exhaust
// memory before the input runs out.
const maxPrealloc = 64 * 1024

// readData reads n data bytes.
func (d *decoder) readData(n uint64) (data []byte, err error) {
	if n > math.MaxInt64 {
		return nil, Error.New("unimplemented: size > 2^63-1")
	}

	buf := &bytes.Buffer{}
	if n <= maxPrealloc {
		buf.Grow(int(n))
	}

	m, err := io.CopyN(buf, d.r, int64(n))
	d.consumed += uint64(m)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return nil, Error.Wrap(err)
	}

	return buf.Bytes(), nil
}

// discard moves past n data bytes without keeping them.
func (d *decoder) discard(n uint64) (err error) {
	if n > math.MaxInt64 {
		return Error.New("unimplemented: size > 2^63-1")
	}

	m, err := io.CopyN(io.Discard, d.r, int64(n))
	d.consumed += uint64(m)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return Error.Wrap(err)
	}

	return nil
}

// skip moves past the rest of the current field.
func (d *decoder) skip() (err error) {
	switch {
	case d.t == DataSize || d.t == DataSizeSize:
		size, err := d.Size()
		if err != nil {
			return err
		}

		err = d.discard(size)
		if err != nil {
			return err
		}

		d.finished = true

		return nil
	case d.t.IsData():
		_, err = d.Data()
		return err
	case d.t == ContainerUnbounded:
		// Read until the matching end. Entering first makes the end
		// block pop back to the depth we started at.
		target := d.depth
		d.depth++
		d.finished = true

		for d.Next() {
			if d.t == ContainerEnd && d.depth == target {
				break
			}
		}

		return d.Err()
	}

	d.finished = true

	return nil
}

// Next moves to the next field. It returns false at the end of the input or
// on error; check Err to tell them apart.
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if d.t != Unknown && !d.finished {
		d.err = d.skip()
		if d.err != nil {
			return false
		}
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown
	d.size = 0
	d.data = nil
	d.finished = false

	n, err := io.ReadFull(d.r, d.value[:])
	d.consumed += uint64(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			if d.depth != 0 {
				d.err = Error.New("unexpected end of input: depth=%d", d.depth)
			}

			return false
		}

		d.err = Error.Wrap(err)

		return false
	}

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	case ContainerEnd:
		if d.depth == 0 {
			d.err = Error.New("unexpected container end (not in a container)")

			return false
		}

		d.depth--
		d.finished = true
	case ContainerSymmetric, ContainerBounded, SkipSize:
		d.err = Error.New("unsupported field %q: %08b", t.Abbr, d.value[0])

		return false
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

// Depth returns the number of containers entered and not yet ended.
func (d *decoder) Depth() int {
	return d.depth
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the current field. If the field
// does not contain data it returns 0 and ErrInvalidOperation.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeSize := uint64(d.value[0]&d.t.Mask) + 1

		sizeBytes := make([]byte, sizeSize)
		err = d.read(sizeBytes)
		if err != nil {
			return 0, err
		}

		size := new(big.Int).SetBytes(sizeBytes)
		size.Add(size, big.NewInt(1))
		if !size.IsUint64() {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		d.size = size.Uint64()
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads data bits and bytes from the field. If the field does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	if !d.t.IsData() {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if d.data != nil {
		return d.data, nil
	}

	size, err := d.Size()
	if err != nil {
		return nil, err
	}

	switch d.t {
	case Data:
		data = []byte{d.value[0] & d.t.Mask}
	case Data1, Data2:
		data = make([]byte, size)
		data[0] = d.value[0] & d.t.Mask

		err = d.read(data[1:])
		if err != nil {
			return nil, err
		}
	case DataSize, DataSizeSize:
		// The size comes from the input and is not trusted for allocation.
		data, err = d.readData(size)
		if err != nil {
			return nil, err
		}
	}

	d.data = data
	d.finished = true

	return d.data, nil
}

// Enter informs the decoder that the ContainerUnbounded field should be
// entered. If the current field type is not ContainerUnbounded, then it
// returns ErrInvalidOperation.
func (d *decoder) Enter() (err error) {
	if d.t != ContainerUnbounded {
		err = oops.Trace(ErrInvalidOperation)
		d.err = err

		return err
	}

	if !d.finished {
		d.depth++
		d.finished = true
	}

	return nil
}
