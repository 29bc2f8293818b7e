package codec

import (
	"encoding/binary"
	"math"
)

// Errors
var (
	ErrEndOfBuffer  = &BufferError{"read past end of buffer"}
	ErrMalformedVLI = &BufferError{"varint continues past end of buffer"}
	ErrBadSeek      = &BufferError{"seek outside buffer"}
)

// BufferError represents a buffer access error
type BufferError struct {
	Message string
}

func (e *BufferError) Error() string {
	return e.Message
}

// Cursor provides positioned little-endian reads over a byte slice.
// The zero position is the start of the slice; the cursor never grows
// or reallocates the underlying buffer.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor creates a cursor positioned at the start of buf
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current offset from the start of the buffer
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Seek moves the cursor to an absolute offset
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.buf) {
		return ErrBadSeek
	}
	c.pos = pos
	return nil
}

// Skip advances the cursor by n bytes
func (c *Cursor) Skip(n int) error {
	return c.Seek(c.pos + n)
}

// Peek returns the next byte without advancing
func (c *Cursor) Peek() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, ErrEndOfBuffer
	}
	return c.buf[c.pos], nil
}

// take returns the next n bytes of the buffer and advances past them.
// The returned slice aliases the buffer; callers that retain it copy.
func (c *Cursor) take(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.buf) {
		return nil, ErrEndOfBuffer
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadBytes reads n bytes into a freshly allocated slice
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	b, err := c.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadU8 reads an unsigned byte
func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadI8 reads a signed byte
func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

// ReadU16 reads a little-endian unsigned 16-bit integer
func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadI16 reads a little-endian signed 16-bit integer
func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

// ReadU32 reads a little-endian unsigned 32-bit integer
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadI32 reads a little-endian signed 32-bit integer
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// ReadF32 reads a little-endian IEEE 754 single
func (c *Cursor) ReadF32() (float32, error) {
	v, err := c.ReadU32()
	return math.Float32frombits(v), err
}

// ReadF64 reads a little-endian IEEE 754 double
func (c *Cursor) ReadF64() (float64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// ReadVLI reads a variable-length integer at the cursor position
func (c *Cursor) ReadVLI() (uint64, error) {
	v, n, err := DecodeVLI(c.buf[c.pos:])
	if err != nil {
		return 0, err
	}
	c.pos += n
	return v, nil
}

// Writer builds a byte buffer through little-endian appends. It mirrors
// the Cursor read set and never fails; the caller sizes the buffer up
// front via NewWriter's capacity hint when the total is known.
type Writer struct {
	buf []byte
}

// NewWriter creates a writer with the given capacity hint
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// Bytes returns the accumulated buffer
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far
func (w *Writer) Len() int {
	return len(w.buf)
}

// WriteBytes appends raw bytes
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteU8 appends an unsigned byte
func (w *Writer) WriteU8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteI8 appends a signed byte
func (w *Writer) WriteI8(v int8) {
	w.buf = append(w.buf, byte(v))
}

// WriteU16 appends a little-endian unsigned 16-bit integer
func (w *Writer) WriteU16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// WriteI16 appends a little-endian signed 16-bit integer
func (w *Writer) WriteI16(v int16) {
	w.WriteU16(uint16(v))
}

// WriteU32 appends a little-endian unsigned 32-bit integer
func (w *Writer) WriteU32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// WriteI32 appends a little-endian signed 32-bit integer
func (w *Writer) WriteI32(v int32) {
	w.WriteU32(uint32(v))
}

// WriteF32 appends a little-endian IEEE 754 single
func (w *Writer) WriteF32(v float32) {
	w.WriteU32(math.Float32bits(v))
}

// WriteF64 appends a little-endian IEEE 754 double
func (w *Writer) WriteF64(v float64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, math.Float64bits(v))
}

// WriteVLI appends the minimal varint encoding of v
func (w *Writer) WriteVLI(v uint64) {
	w.buf = AppendVLI(w.buf, v)
}
