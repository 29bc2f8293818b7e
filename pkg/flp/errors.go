package flp

// Errors
var (
	ErrBadMagic       = &FormatError{"bad chunk magic"}
	ErrBadHeaderSize  = &FormatError{"header chunk size is not 6"}
	ErrBadFormat      = &FormatError{"format field out of range"}
	ErrLengthMismatch = &FormatError{"file length disagrees with declared event stream length"}
	ErrTruncatedEvent = &FormatError{"event payload extends past event stream"}
	ErrKindMismatch   = &FormatError{"event kind does not match requested value type"}
)

// FormatError represents a malformed or unsupported project file
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}
