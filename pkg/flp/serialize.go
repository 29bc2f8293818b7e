package flp

import "github.com/SpendLessDaw/flp/pkg/codec"

// Serialize reconstructs the project file. The FLhd chunk is emitted
// byte-for-byte from Header — never rebuilt from the parsed fields — and
// the only value recomputed is the FLdt length, which covers the events
// plus any trailing bytes. Serialization cannot fail on a File produced
// by Parse or Patch.
func (f *File) Serialize() []byte {
	streamLen := len(f.Trailing)
	for _, ev := range f.Events {
		streamLen += ev.EncodedLen()
	}

	w := codec.NewWriter(eventStreamStart + streamLen)
	w.WriteBytes(f.Header)
	w.WriteBytes([]byte(dataMagic))
	w.WriteU32(uint32(streamLen))
	for _, ev := range f.Events {
		ev.writeTo(w)
	}
	w.WriteBytes(f.Trailing)
	return w.Bytes()
}
