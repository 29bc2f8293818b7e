package codec

// maxVLIBytes bounds a varint to what fits in a uint64 (10 * 7 bits > 64).
const maxVLIBytes = 10

// DecodeVLI decodes a base-128 little-endian varint from the start of buf.
// It returns the value and the number of bytes consumed. This is the raw
// form: it never touches a cursor, so the decoder can probe candidate
// offsets without committing to them.
//
// Returns ErrMalformedVLI when the buffer ends while the continuation bit
// is still set, or when the encoding exceeds 64 bits.
func DecodeVLI(buf []byte) (uint64, int, error) {
	var v uint64
	for i := 0; i < maxVLIBytes; i++ {
		if i >= len(buf) {
			return 0, 0, ErrMalformedVLI
		}
		b := buf[i]
		v |= uint64(b&0x7F) << (7 * uint(i))
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
	}
	return 0, 0, ErrMalformedVLI
}

// AppendVLI appends the minimal varint encoding of v to dst
func AppendVLI(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// EncodeVLI returns the minimal varint encoding of v
func EncodeVLI(v uint64) []byte {
	return AppendVLI(make([]byte, 0, maxVLIBytes), v)
}

// VLILen returns the encoded length of v in bytes
func VLILen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}
