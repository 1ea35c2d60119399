// Package unmoving streams Q19.12 fixed point values.
//
// The arithmetic lives in package fixed. This package writes sequences of
// fixed.Fixed values as compact records: each call to Encode writes one
// unbounded control container holding one zigzag integer block per raw value
// (see packages control and integer). Values near zero take a single byte.
//
//  enc := unmoving.NewEncoder(w)
//  err := enc.Encode(fixed.MustParse("1.5"), fixed.FromInteger(-2))
//
//  dec := unmoving.NewDecoder(r)
//  vs, err := dec.Decode() // io.EOF once every record is read
package unmoving
