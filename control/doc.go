// Package control provides the block framing used to stream raw fixed point
// values.
//
// Control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the field
// contains). The intention is to minimize signaling overhead and pack as much
// data directly into the control block as possible. Zigzag encoded Q19.12 raw
// values within ±63 raw units (about ±0.015) fit in a single byte, magnitudes
// under 1.0 fit in two and magnitudes under 128.0 fit in three.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Only the first byte is shown.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type                |                                      |
//  |---------------|---------------||---------------------|--------------------------------------|
//  | 1 |                           || Data                | 7 bits                               |
//  | 0 . 1 |                       || Data Size           | 1 to 64 bytes follow                 |
//  | 0 . 0 . 1 |                   || Data + 1            | 5 + 8 = 13 bits                      |
//  | 0 . 0 . 0 . 1 |               || Data + 2            | 4 + 8 + 8 = 20 bits                  |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size      | 1 to 8 size bytes, then data         |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 1 . 0 || Container Unbounded | fields until the matching end        |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 0 . 0 || Container End       | closes the innermost unbounded       |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty               | empty value                          |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null                | null value (for nullable fields)     |
//  |---------------|---------------||---------------------|--------------------------------------|
//
// Sizes are indexed starting at 1 to maximize their effective range. To encode
// zero length data use the Empty block.
//
// The symmetric container, bounded container and skip size prefixes are
// reserved. The decoder recognizes them and reports them as unsupported.
package control
