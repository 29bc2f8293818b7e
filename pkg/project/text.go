package project

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeText converts a text event payload to a string. Payloads are
// NUL-terminated: plain ASCII in projects before FL 11.5, UTF-16LE from
// then on, selected by the file's UseUnicode flag.
func DecodeText(payload []byte, useUnicode bool) (string, error) {
	if !useUnicode {
		return strings.TrimRight(string(payload), "\x00"), nil
	}
	decoded, err := utf16LE.NewDecoder().Bytes(payload)
	if err != nil {
		return "", fmt.Errorf("decode utf-16 payload: %w", err)
	}
	return strings.TrimRight(string(decoded), "\x00"), nil
}

// EncodeText converts a string to a text event payload, appending the
// NUL terminator in the target encoding.
func EncodeText(s string, useUnicode bool) ([]byte, error) {
	terminated := s + "\x00"
	if !useUnicode {
		return []byte(terminated), nil
	}
	encoded, err := utf16LE.NewEncoder().Bytes([]byte(terminated))
	if err != nil {
		return nil, fmt.Errorf("encode utf-16 payload: %w", err)
	}
	return encoded, nil
}
