package unmoving

import (
	"io"

	"github.com/zeebo/errs"

	"github.com/calebcase/unmoving/control"
	"github.com/calebcase/unmoving/fixed"
	"github.com/calebcase/unmoving/integer"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("unmoving")

// Encoder writes records of fixed point values.
type Encoder struct {
	ce control.Encoder
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		ce: control.NewEncoder(w),
	}
}

// Encode writes vs as one record. An empty record is valid.
func (e *Encoder) Encode(vs ...fixed.Fixed) (err error) {
	defer Error.WrapP(&err)

	return e.ce.Unbound(func(ce control.Encoder) error {
		ie := integer.NewEncoder(integer.Raw32, ce)

		for _, v := range vs {
			err := ie.Encode(integer.FromInt64(int64(v.Raw())))
			if err != nil {
				return err
			}
		}

		return nil
	})
}
