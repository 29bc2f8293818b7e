// Package codec provides the low-level binary primitives shared by the FLP
// parser and serializer.
//
// Two things live here:
//
//   - Cursor and Writer: positioned little-endian reads and appends over a
//     plain byte slice. All multi-byte integers in an FLP file are
//     little-endian, so the cursor only speaks that byte order.
//
//   - The VLI codec: the base-128 little-endian variable-length unsigned
//     integer used for TEXT/DATA event sizes. Each byte contributes its low
//     seven bits at an increasing shift; bit 7 set means another byte follows.
//
// The package performs no I/O and keeps no state beyond the cursor position.
// Errors are limited to ErrEndOfBuffer (a read ran off the end of the slice)
// and ErrMalformedVLI (a varint still had its continuation bit set when the
// slice ended).
package codec
