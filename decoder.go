package unmoving

import (
	"io"

	"github.com/calebcase/unmoving/control"
	"github.com/calebcase/unmoving/fixed"
	"github.com/calebcase/unmoving/integer"
)

// Decoder reads records written by an Encoder.
type Decoder struct {
	cd control.Decoder
	id *integer.Decoder
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	cd := control.NewDecoder(r)

	return &Decoder{
		cd: cd,
		id: integer.NewDecoder(integer.Raw32, cd),
	}
}

// Decode reads the next record. It returns io.EOF when the input ends
// cleanly between records.
func (d *Decoder) Decode() (vs []fixed.Fixed, err error) {
	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return nil, Error.Wrap(d.cd.Err())
		}

		return nil, io.EOF
	}

	defer Error.WrapP(&err)

	if d.cd.Type() != control.ContainerUnbounded {
		return nil, Error.New("expected record, got %q", d.cd.Type().Abbr)
	}

	err = d.cd.Enter()
	if err != nil {
		return nil, err
	}

	vs = []fixed.Fixed{}

	for d.cd.Next() {
		if d.cd.Type() == control.ContainerEnd {
			return vs, nil
		}

		var b integer.Block

		err = d.id.DecodeField(&b)
		if err != nil {
			return nil, err
		}

		v, err := b.Int64()
		if err != nil {
			return nil, err
		}

		vs = append(vs, fixed.FromRaw(int32(v)))
	}

	if d.cd.Err() != nil {
		return nil, d.cd.Err()
	}

	return nil, io.ErrUnexpectedEOF
}
