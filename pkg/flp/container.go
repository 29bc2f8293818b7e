package flp

import (
	"fmt"

	"github.com/SpendLessDaw/flp/pkg/codec"
)

const (
	headerMagic = "FLhd"
	dataMagic   = "FLdt"

	headerChunkLen   = 14 // FLhd magic + size + format + channels + ppq
	dataHeaderLen    = 8  // FLdt magic + size
	eventStreamStart = headerChunkLen + dataHeaderLen

	headerPayloadLen = 6
	minFormat        = -1
	maxFormat        = 0x50
)

// DefaultVersion is reported when no parseable version event is present
const DefaultVersion = "0.0.0"

// File is a decoded project. Header keeps the 14-byte FLhd chunk exactly
// as read; Format, ChannelCount and PPQ are parsed out of it for callers
// but never written back from the fields — legacy files may carry
// non-canonical header bytes that must survive a round trip.
type File struct {
	Header       []byte
	Format       int16
	ChannelCount uint16
	PPQ          uint16

	Events []Event

	// Trailing holds any bytes found after the declared event stream.
	// No known producer emits them; they are kept opaquely.
	Trailing []byte

	// Version is the FL version string from the first version event,
	// DefaultVersion if absent or unparseable. UseUnicode is derived
	// from it: 11.5 and later store text payloads as UTF-16LE.
	Version    string
	UseUnicode bool
}

// Parse decodes a whole project file. The returned File owns its memory;
// the input buffer may be reused immediately. Any structural problem
// fails the parse as a whole — a corrupt container cannot produce a
// trustworthy event sequence.
func Parse(data []byte) (*File, error) {
	c := codec.NewCursor(data)

	magic, err := c.ReadBytes(4)
	if err != nil {
		return nil, fmt.Errorf("file header: %w", err)
	}
	if string(magic) != headerMagic {
		return nil, fmt.Errorf("file header: %w", ErrBadMagic)
	}
	headerSize, err := c.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("file header: %w", err)
	}
	if headerSize != headerPayloadLen {
		return nil, fmt.Errorf("file header: %w", ErrBadHeaderSize)
	}
	format, err := c.ReadI16()
	if err != nil {
		return nil, fmt.Errorf("file header: %w", err)
	}
	if format < minFormat || format > maxFormat {
		return nil, fmt.Errorf("file header: %w", ErrBadFormat)
	}
	channels, err := c.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("file header: %w", err)
	}
	ppq, err := c.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("file header: %w", err)
	}

	magic, err = c.ReadBytes(4)
	if err != nil {
		return nil, fmt.Errorf("data chunk: %w", err)
	}
	if string(magic) != dataMagic {
		return nil, fmt.Errorf("data chunk: %w", ErrBadMagic)
	}
	eventsSize, err := c.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("data chunk: %w", err)
	}
	if uint64(len(data)) < eventStreamStart+uint64(eventsSize) {
		return nil, fmt.Errorf("data chunk: %w", ErrLengthMismatch)
	}

	stream := data[eventStreamStart : eventStreamStart+int(eventsSize)]
	events, version, useUnicode, err := decodeEvents(stream)
	if err != nil {
		return nil, err
	}

	f := &File{
		Header:       append([]byte(nil), data[:headerChunkLen]...),
		Format:       format,
		ChannelCount: channels,
		PPQ:          ppq,
		Events:       events,
		Version:      version,
		UseUnicode:   useUnicode,
	}
	if rest := data[eventStreamStart+int(eventsSize):]; len(rest) > 0 {
		f.Trailing = append([]byte(nil), rest...)
	}
	return f, nil
}

// FindFirst returns the first event with the given id
func (f *File) FindFirst(id uint8) (Event, bool) {
	for _, ev := range f.Events {
		if ev.ID == id {
			return ev, true
		}
	}
	return Event{}, false
}

// FindAll returns all events with the given id, in stream order
func (f *File) FindAll(id uint8) []Event {
	var out []Event
	for _, ev := range f.Events {
		if ev.ID == id {
			out = append(out, ev)
		}
	}
	return out
}
