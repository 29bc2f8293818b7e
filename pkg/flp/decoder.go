package flp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/SpendLessDaw/flp/pkg/codec"
)

// Tunables for the unknown-DWORD disambiguation. An id in [128, 192)
// without a table entry may be a fixed 4-byte payload or a varint-sized
// variable payload; the decoder scores both readings by walking ahead a
// bounded window and keeps the fixed reading unless the variable one wins
// by a clear margin.
const (
	lookaheadWindow = 200    // bytes the walker may cover per hypothesis
	maxVarPayload   = 100000 // variable sizes above this are implausible
	varScoreMargin  = 2      // variable must beat fixed by more than this
	rejectScore     = -100   // walker hit a malformed varint
	smallIDLimit    = 32     // BYTE-range ids below this count as "small"
)

var versionPattern = regexp.MustCompile(`^\d+(\.\d+)+$`)

// decodeEvents splits the FLdt body into events. Framing and payload are
// copied out of stream so the caller may release the input buffer.
func decodeEvents(stream []byte) ([]Event, string, bool, error) {
	var events []Event
	version := DefaultVersion
	useUnicode := false
	sawVersion := false

	for p := 0; p < len(stream); {
		id := stream[p]
		var framingLen, payloadLen int
		switch {
		case id < RangeWord:
			framingLen, payloadLen = 1, 1
		case id < RangeDword:
			framingLen, payloadLen = 1, 2
		case id < RangeText:
			framingLen, payloadLen = 1, 4
			if !IsKnownDwordID(id) {
				if size, vlen, variable := resolveUnknownDword(stream, p); variable {
					framingLen, payloadLen = 1+vlen, size
				}
			}
		default:
			size, vlen, err := codec.DecodeVLI(stream[p+1:])
			if err != nil {
				return nil, "", false, fmt.Errorf("event 0x%02X at offset %d: %w", id, p, err)
			}
			if size > uint64(len(stream)) {
				return nil, "", false, fmt.Errorf("event 0x%02X at offset %d: %w", id, p, ErrTruncatedEvent)
			}
			framingLen, payloadLen = 1+vlen, int(size)
		}

		end := p + framingLen + payloadLen
		if end > len(stream) {
			return nil, "", false, fmt.Errorf("event 0x%02X at offset %d: %w", id, p, ErrTruncatedEvent)
		}

		ev := Event{
			ID:      id,
			Kind:    KindOf(id),
			Framing: append([]byte(nil), stream[p:p+framingLen]...),
			Payload: append([]byte(nil), stream[p+framingLen:end]...),
		}
		events = append(events, ev)

		// Only the first version event decides the text encoding;
		// an unparseable one leaves the defaults for good.
		if id == IDVersion && !sawVersion {
			sawVersion = true
			if v, unicode, ok := parseVersion(ev.Payload); ok {
				version, useUnicode = v, unicode
			}
		}

		p = end
	}
	return events, version, useUnicode, nil
}

// parseVersion interprets a version payload as a NUL-padded ASCII dotted
// number. Reports whether it matched, the string, and whether the version
// is 11.5 or later (when FL switched text payloads to UTF-16LE).
func parseVersion(payload []byte) (string, bool, bool) {
	s := strings.TrimRight(string(payload), "\x00")
	if !versionPattern.MatchString(s) {
		return "", false, false
	}
	parts := strings.SplitN(s, ".", 3)
	major, _ := strconv.Atoi(parts[0])
	minor, _ := strconv.Atoi(parts[1])
	return s, major > 11 || (major == 11 && minor >= 5), true
}

// resolveUnknownDword decides how to read an unmapped DWORD-range id at
// offset p. It returns the variable reading's payload size and varint
// length when that reading wins, otherwise variable=false for the fixed
// 4-byte default.
//
// The variable hypothesis is rejected outright when its varint is
// malformed, implausibly large, or would run past the stream. A size of
// 3 is a special case: both readings then span the same five bytes, and
// the fixed one keeps framing minimal and deterministic.
func resolveUnknownDword(stream []byte, p int) (size, vliLen int, variable bool) {
	v, n, err := codec.DecodeVLI(stream[p+1:])
	if err != nil || v > maxVarPayload {
		return 0, 0, false
	}
	varNext := p + 1 + n + int(v)
	if varNext > len(stream) {
		return 0, 0, false
	}
	if v == 3 {
		return 0, 0, false
	}

	fixedScore := lookaheadScore(stream, p+5)
	varScore := lookaheadScore(stream, varNext)
	if varScore > fixedScore+varScoreMargin {
		return int(v), n, true
	}
	return 0, 0, false
}

// lookaheadScore walks the stream from q as if it were event-aligned and
// scores how plausible that alignment is. Reaching TEXT/DATA events with
// well-formed sizes is a strong positive signal; long runs of small
// BYTE-range ids are what mid-payload garbage (UTF-16 text especially)
// looks like, and count against. A malformed or over-running varint
// rejects the hypothesis outright.
func lookaheadScore(stream []byte, q int) int {
	limit := q + lookaheadWindow
	if limit > len(stream) {
		limit = len(stream)
	}

	textData := 0
	consecutiveSmall := 0
	maxConsecutiveSmall := 0

	for p := q; p < limit; {
		id := stream[p]
		switch {
		case id < RangeWord:
			if id < smallIDLimit {
				consecutiveSmall++
				if consecutiveSmall > maxConsecutiveSmall {
					maxConsecutiveSmall = consecutiveSmall
				}
			} else {
				consecutiveSmall = 0
			}
			p += 2
		case id < RangeDword:
			consecutiveSmall = 0
			p += 3
		case id < RangeText:
			consecutiveSmall = 0
			p += 5
		default:
			v, n, err := codec.DecodeVLI(stream[p+1:])
			if err != nil {
				return rejectScore
			}
			next := p + 1 + n + int(v)
			if v > uint64(len(stream)) || next > len(stream) {
				return rejectScore
			}
			textData++
			consecutiveSmall = 0
			p = next
		}
	}
	return 10*textData - 3*maxConsecutiveSmall
}
