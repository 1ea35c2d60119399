package control

import (
	"io"
	"math/big"
)

// Encoder writes control blocks.
type Encoder interface {
	Data(data []byte) (err error)
	Unbound(fn func(Encoder) error) (err error)
	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

func (e *encoder) write(p []byte) (err error) {
	_, err = e.w.Write(p)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// Data writes data using the smallest block that can hold it. Leading bits of
// the first byte that are clear are packed into the control byte where the
// block type allows.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write([]byte{
			Data.Prefix | data[0],
		})
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write([]byte{
			Data1.Prefix | data[0],
			data[1],
		})
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write([]byte{
			Data2.Prefix | data[0],
			data[1],
			data[2],
		})
	case size <= 64:
		return e.write(append(
			[]byte{DataSize.Prefix | byte(size-1)},
			data...,
		))
	default:
		s := new(big.Int).SetUint64(uint64(size - 1))
		sb := s.Bytes()
		if len(sb) == 0 {
			sb = []byte{0b_0000_0000}
		}

		err = e.write([]byte{DataSizeSize.Prefix | byte(len(sb)-1)})
		if err != nil {
			return err
		}

		err = e.write(sb)
		if err != nil {
			return err
		}

		return e.write(data)
	}
}

// Unbound writes an unbounded container holding whatever fn writes.
func (e *encoder) Unbound(fn func(Encoder) error) (err error) {
	err = e.write([]byte{ContainerUnbounded.Prefix})
	if err != nil {
		return err
	}

	err = fn(e)
	if err != nil {
		return err
	}

	return e.write([]byte{ContainerEnd.Prefix})
}

func (e *encoder) Empty() (err error) {
	return e.write([]byte{Empty.Prefix})
}

func (e *encoder) Null() (err error) {
	return e.write([]byte{Null.Prefix})
}
