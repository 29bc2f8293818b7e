// Package flp reads and writes FL Studio project files.
//
// An .flp file is two chunks: a fixed 14-byte "FLhd" header chunk and an
// "FLdt" chunk whose body is a stream of tagged events. The event id byte
// selects the payload size by range — 1 byte below 64, 2 bytes below 128,
// 4 bytes below 192, and a varint-prefixed variable payload from 192 up.
// Ids in [128, 192) that the event table does not know are ambiguous in
// the wild: some producers emit them with a varint size. The decoder
// settles those with a bounded look-ahead over both readings (see
// decoder.go).
//
// Parsing is conservative: every event keeps the exact framing bytes it
// was read with, so an unchanged File serializes back to the original
// bytes even when a producer used a non-minimal varint. Edits go through
// Patch, which re-frames only the events it replaces. The serializer
// recomputes nothing but the FLdt length field.
//
// The package does no I/O; callers hand in and receive byte slices.
// Parsed files are independent of the input buffer. A File is safe to
// share for reading; Patch returns a new File rather than mutating.
package flp
