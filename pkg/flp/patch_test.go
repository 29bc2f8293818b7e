package flp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatch_KeepPreservesBytes(t *testing.T) {
	// Non-minimal varint framing must survive a keep-everything patch.
	data := buildContainer([]byte{0xC2, 0x83, 0x00, 0x41, 0x42, 0x43, 0x05, 0x2A})
	f, err := Parse(data)
	require.NoError(t, err)

	patched := f.Patch(func(ev Event, _ int) PatchResult {
		return Keep()
	})
	assert.Equal(t, data, patched.Serialize())
	// The original is untouched.
	assert.Equal(t, data, f.Serialize())
}

func TestPatch_ReplaceReframesVariable(t *testing.T) {
	data := buildContainer([]byte{0xC2, 0x83, 0x00, 0x41, 0x42, 0x43, 0x05, 0x2A})
	f, err := Parse(data)
	require.NoError(t, err)

	patched := f.Patch(func(ev Event, _ int) PatchResult {
		if ev.ID != 0xC2 {
			return Keep()
		}
		return ReplacePayload(ev, []byte("Hello"))
	})

	require.Len(t, patched.Events, 2)
	title := patched.Events[0]
	// Replacement gets fresh minimal framing sized to the new payload.
	assert.Equal(t, []byte{0xC2, 0x05}, title.Framing)
	assert.Equal(t, []byte("Hello"), title.Payload)
	// Untouched events keep their original bytes.
	assert.Equal(t, []byte{0x05}, patched.Events[1].Framing)
	assert.Equal(t, []byte{0x2A}, patched.Events[1].Payload)

	reparsed, err := Parse(patched.Serialize())
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello"), reparsed.Events[0].Payload)
}

func TestPatch_ReplaceFixedRange(t *testing.T) {
	f, err := Parse(buildContainer([]byte{0x05, 0x2A}))
	require.NoError(t, err)

	patched := f.Patch(func(ev Event, _ int) PatchResult {
		return Replace(NewEvent(0x06, []byte{0x7F}))
	})

	require.Len(t, patched.Events, 1)
	assert.Equal(t, []byte{0x06}, patched.Events[0].Framing)
	assert.Equal(t, []byte{0x06, 0x7F}, patched.Serialize()[eventStreamStart:])
}

func TestPatch_IndexArgument(t *testing.T) {
	f, err := Parse(buildContainer([]byte{0x05, 0x01, 0x05, 0x02, 0x05, 0x03}))
	require.NoError(t, err)

	var indices []int
	f.Patch(func(ev Event, i int) PatchResult {
		indices = append(indices, i)
		return Keep()
	})
	assert.Equal(t, []int{0, 1, 2}, indices)
}

func TestSerialize_SynthesizedEventFraming(t *testing.T) {
	f, err := Parse(buildContainer(nil))
	require.NoError(t, err)

	payload := make([]byte, 200)
	f.Events = append(f.Events,
		NewEvent(0x05, []byte{0x2A}),
		NewEvent(IDTitle, payload),
	)
	out := f.Serialize()

	stream := out[eventStreamStart:]
	// Fixed-range event: bare id. Variable-range: id plus minimal varint.
	assert.Equal(t, []byte{0x05, 0x2A}, stream[:2])
	assert.Equal(t, []byte{0xC2, 0xC8, 0x01}, stream[2:5])

	reparsed, err := Parse(out)
	require.NoError(t, err)
	require.Len(t, reparsed.Events, 2)
	assert.Equal(t, payload, reparsed.Events[1].Payload)
}
