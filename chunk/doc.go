// SPDX-License-Identifier: EPL-2.0

// Package chunk holds the pieces shared by the WAV and AIFF container codecs.
//
// # Tags
//
// A Tag is the 4 byte identifier at the start of every chunk. It is a value
// type compared byte by byte and is never treated as a C string:
//
//	chunk.NewTag("fmt ") == chunk.Tag{'f', 'm', 't', ' '}
//
// # Reading
//
// Reader wraps a buffered stream and adds a 4 byte tag lookahead, byte offset
// tracking and endian aware field reads:
//
//	r := chunk.NewReader(file)
//	size, err := chunk.ReadWord[uint32](r, endian.Little)
//
// Scan drives the mandatory chunk state machine used by both containers. It
// peeks at the next tag; a known tag that has not been seen yet is handed to
// its handler, a known tag seen before fails with ErrDuplicateChunk, and
// anything else makes the scanner step forward a fixed number of bytes and
// try again. That resync tolerates padding and unknown chunks between the
// mandatory ones.
//
// # Writing
//
// Writer keeps the first error it hits so that a whole header can be written
// field by field and checked once with Err.
//
// # Events
//
// The parsers never print. They report what they find through a Sink, which
// callers can use to log or to inspect a file in tests:
//
//	var events []chunk.Event
//	sink := chunk.SinkFunc(func(e chunk.Event) { events = append(events, e) })
package chunk
