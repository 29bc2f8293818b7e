package flp

import (
	"encoding/binary"
	"math"

	"github.com/SpendLessDaw/flp/pkg/codec"
)

// Event is one tagged record of the FLdt stream.
//
// Framing holds the exact bytes that preceded the payload in the source
// file: the id byte, plus the varint size for variable-length events.
// Keeping it verbatim is what makes unchanged files round-trip even when
// the producer encoded the size non-minimally. Framing is empty for
// events created in code; the serializer synthesizes a minimal one.
type Event struct {
	ID      uint8
	Kind    Kind
	Framing []byte
	Payload []byte
}

// NewEvent creates an event for id with the given payload. The kind comes
// from the event table; framing is left empty for the serializer to fill.
func NewEvent(id uint8, payload []byte) Event {
	return Event{ID: id, Kind: KindOf(id), Payload: payload}
}

// framingLen returns the length Framing will have once serialized
func (e Event) framingLen() int {
	if len(e.Framing) > 0 {
		return len(e.Framing)
	}
	if e.ID >= RangeText {
		return 1 + codec.VLILen(uint64(len(e.Payload)))
	}
	return 1
}

// EncodedLen returns the serialized size of the event in bytes
func (e Event) EncodedLen() int {
	return e.framingLen() + len(e.Payload)
}

// writeTo emits framing and payload. Original framing is copied verbatim;
// synthesized framing is the id byte plus a minimal varint size for
// variable-length ids.
func (e Event) writeTo(w *codec.Writer) {
	if len(e.Framing) > 0 {
		w.WriteBytes(e.Framing)
	} else {
		w.WriteU8(e.ID)
		if e.ID >= RangeText {
			w.WriteVLI(uint64(len(e.Payload)))
		}
	}
	w.WriteBytes(e.Payload)
}

// Byte returns the payload of a BYTE-range event
func (e Event) Byte() (uint8, error) {
	if (e.Kind != KindU8 && e.Kind != KindI8) || len(e.Payload) < 1 {
		return 0, ErrKindMismatch
	}
	return e.Payload[0], nil
}

// Word returns the payload of a WORD-range event
func (e Event) Word() (uint16, error) {
	if (e.Kind != KindU16 && e.Kind != KindI16) || len(e.Payload) < 2 {
		return 0, ErrKindMismatch
	}
	return binary.LittleEndian.Uint16(e.Payload), nil
}

// Dword returns the payload of a fixed DWORD-range event
func (e Event) Dword() (uint32, error) {
	if (e.Kind != KindU32 && e.Kind != KindI32 && e.Kind != KindF32) || len(e.Payload) != 4 {
		return 0, ErrKindMismatch
	}
	return binary.LittleEndian.Uint32(e.Payload), nil
}

// Int returns the payload as a sign-extended integer
func (e Event) Int() (int64, error) {
	switch e.Kind {
	case KindU8:
		v, err := e.Byte()
		return int64(v), err
	case KindI8:
		v, err := e.Byte()
		return int64(int8(v)), err
	case KindU16:
		v, err := e.Word()
		return int64(v), err
	case KindI16:
		v, err := e.Word()
		return int64(int16(v)), err
	case KindU32:
		v, err := e.Dword()
		return int64(v), err
	case KindI32:
		v, err := e.Dword()
		return int64(int32(v)), err
	}
	return 0, ErrKindMismatch
}

// Float returns the payload of an f32 event
func (e Event) Float() (float32, error) {
	if e.Kind != KindF32 || len(e.Payload) != 4 {
		return 0, ErrKindMismatch
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(e.Payload)), nil
}

// IsText reports whether the payload is text under the event table
func (e Event) IsText() bool {
	return e.Kind == KindText
}
