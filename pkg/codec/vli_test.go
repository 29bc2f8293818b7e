package codec

import (
	"bytes"
	"testing"
)

func TestEncodeVLI(t *testing.T) {
	testCases := []struct {
		name  string
		value uint64
		want  []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one byte max", 127, []byte{0x7F}},
		{"two byte min", 128, []byte{0x80, 0x01}},
		{"two hundred", 200, []byte{0xC8, 0x01}},
		{"two byte max", 16383, []byte{0xFF, 0x7F}},
		{"three byte min", 16384, []byte{0x80, 0x80, 0x01}},
		{"max int32", 1<<31 - 1, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x07}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := EncodeVLI(tc.value)
			if !bytes.Equal(got, tc.want) {
				t.Fatalf("EncodeVLI(%d) = % X, want % X", tc.value, got, tc.want)
			}
			if VLILen(tc.value) != len(tc.want) {
				t.Fatalf("VLILen(%d) = %d, want %d", tc.value, VLILen(tc.value), len(tc.want))
			}
		})
	}
}

func TestVLI_RoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 2, 63, 64, 127, 128, 129, 200, 255, 256,
		16383, 16384, 100000, 1 << 20, 1<<31 - 1, 1 << 31, 1<<63 - 1,
	}
	for _, v := range values {
		encoded := EncodeVLI(v)
		decoded, n, err := DecodeVLI(encoded)
		if err != nil {
			t.Fatalf("DecodeVLI(EncodeVLI(%d)) failed: %v", v, err)
		}
		if decoded != v {
			t.Fatalf("round trip of %d gave %d", v, decoded)
		}
		if n != len(encoded) {
			t.Fatalf("DecodeVLI(%d) consumed %d of %d bytes", v, n, len(encoded))
		}
	}
}

func TestDecodeVLI_NonMinimal(t *testing.T) {
	// Legacy producers may pad the encoding; the decoder must accept it
	// and report the true byte count so framing can be preserved.
	v, n, err := DecodeVLI([]byte{0x83, 0x00, 0xAA})
	if err != nil {
		t.Fatalf("DecodeVLI failed: %v", err)
	}
	if v != 3 || n != 2 {
		t.Fatalf("DecodeVLI = (%d, %d), want (3, 2)", v, n)
	}
}

func TestDecodeVLI_Malformed(t *testing.T) {
	testCases := []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"lone continuation", []byte{0x80}},
		{"continuation to end", []byte{0xFF, 0xFF}},
		{"too long", bytes.Repeat([]byte{0xFF}, 11)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := DecodeVLI(tc.buf); err != ErrMalformedVLI {
				t.Fatalf("DecodeVLI(% X) = %v, want ErrMalformedVLI", tc.buf, err)
			}
		})
	}
}

func TestCursorReadVLI(t *testing.T) {
	c := NewCursor([]byte{0xC8, 0x01, 0x2A})
	v, err := c.ReadVLI()
	if err != nil || v != 200 {
		t.Fatalf("ReadVLI = %d, %v", v, err)
	}
	if c.Pos() != 2 {
		t.Fatalf("Pos = %d after ReadVLI, want 2", c.Pos())
	}
}
