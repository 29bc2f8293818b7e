package flp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_NumericAccessors(t *testing.T) {
	byteEv := NewEvent(IDVol, []byte{0x64})
	v8, err := byteEv.Byte()
	require.NoError(t, err)
	assert.Equal(t, uint8(100), v8)

	panEv := NewEvent(IDPan, []byte{0xFF})
	iv, err := panEv.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), iv)

	wordEv := NewEvent(IDTempo, []byte{0x8C, 0x00})
	v16, err := wordEv.Word()
	require.NoError(t, err)
	assert.Equal(t, uint16(140), v16)

	pitchEv := NewEvent(IDMainPitch, []byte{0xFE, 0xFF})
	iv, err = pitchEv.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(-2), iv)

	dwordEv := NewEvent(IDFineTempo, []byte{0xE0, 0x22, 0x02, 0x00})
	v32, err := dwordEv.Dword()
	require.NoError(t, err)
	assert.Equal(t, uint32(140_000), v32)

	tuneEv := NewEvent(IDFineTune, []byte{0xFF, 0xFF, 0xFF, 0xFF})
	iv, err = tuneEv.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), iv)
}

func TestEvent_KindMismatch(t *testing.T) {
	text := NewEvent(IDTitle, []byte("abc\x00"))

	_, err := text.Byte()
	assert.ErrorIs(t, err, ErrKindMismatch)
	_, err = text.Word()
	assert.ErrorIs(t, err, ErrKindMismatch)
	_, err = text.Dword()
	assert.ErrorIs(t, err, ErrKindMismatch)
	_, err = text.Int()
	assert.ErrorIs(t, err, ErrKindMismatch)
	_, err = text.Float()
	assert.ErrorIs(t, err, ErrKindMismatch)

	dword := NewEvent(IDFineTempo, []byte{0x01, 0x00, 0x00, 0x00})
	_, err = dword.Byte()
	assert.ErrorIs(t, err, ErrKindMismatch)
	assert.True(t, text.IsText())
	assert.False(t, dword.IsText())
}

func TestEvent_EncodedLen(t *testing.T) {
	parsed := Event{ID: 0xC2, Kind: KindText, Framing: []byte{0xC2, 0x83, 0x00}, Payload: []byte("abc")}
	assert.Equal(t, 6, parsed.EncodedLen())

	synthesized := NewEvent(0xC2, make([]byte, 200))
	assert.Equal(t, 1+2+200, synthesized.EncodedLen())

	fixed := NewEvent(0x05, []byte{0x01})
	assert.Equal(t, 2, fixed.EncodedLen())
}
