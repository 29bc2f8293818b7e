package flp

import "github.com/SpendLessDaw/flp/pkg/codec"

// PatchResult says what to do with one event. Keep re-emits the original
// bytes verbatim; Replace substitutes a new event. Making the choice
// explicit (rather than comparing payloads) is what lets the serializer
// honour "unchanged file, unchanged bytes" without guessing.
type PatchResult struct {
	replace bool
	event   Event
}

// Keep leaves the event untouched
func Keep() PatchResult {
	return PatchResult{}
}

// Replace substitutes ev for the original event
func Replace(ev Event) PatchResult {
	return PatchResult{replace: true, event: ev}
}

// ReplacePayload keeps the event's id and kind but swaps the payload
func ReplacePayload(orig Event, payload []byte) PatchResult {
	orig.Payload = payload
	return Replace(orig)
}

// PatchFunc decides per event; index is the event's position in the stream
type PatchFunc func(ev Event, index int) PatchResult

// Patch applies fn to every event and returns a new File with the results.
// The receiver is not modified. Kept events share their byte slices with
// the original; both files treat event bytes as immutable.
func (f *File) Patch(fn PatchFunc) *File {
	events := make([]Event, len(f.Events))
	for i, ev := range f.Events {
		res := fn(ev, i)
		if !res.replace {
			events[i] = ev
			continue
		}
		events[i] = reframe(ev, res.event)
	}
	clone := *f
	clone.Events = events
	return &clone
}

// reframe fixes up the framing of a replacement event. An original that
// carried a varint size gets a fresh minimal one for the new payload; a
// fixed-range replacement needs only its id byte. A replacement moved
// into the TEXT/DATA range always needs a size, whatever the original
// looked like.
func reframe(orig, next Event) Event {
	variable := next.ID >= RangeText ||
		(next.ID >= RangeDword && !IsKnownDwordID(next.ID) && len(orig.Framing) > 1)
	if variable {
		framing := []byte{next.ID}
		next.Framing = codec.AppendVLI(framing, uint64(len(next.Payload)))
	} else {
		next.Framing = []byte{next.ID}
	}
	return next
}
