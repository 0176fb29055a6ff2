// SPDX-License-Identifier: EPL-2.0

package chunk

import "fmt"

// EventKind classifies an Event.
type EventKind int

const (
	// EventFound is emitted after a mandatory chunk was parsed.
	EventFound EventKind = iota
	// EventSkipped is emitted when a conditional chunk is treated as
	// present without being read.
	EventSkipped
	// EventResync is emitted for every run of bytes the scanner stepped
	// over while looking for a known tag.
	EventResync
	// EventWritten is emitted after a chunk header was written.
	EventWritten
)

func (k EventKind) String() string {
	switch k {
	case EventFound:
		return "found"
	case EventSkipped:
		return "skipped"
	case EventResync:
		return "resync"
	case EventWritten:
		return "written"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event describes one step of parsing or writing a container.
type Event struct {
	Kind EventKind
	Tag  Tag
	// Offset is the absolute byte position of the chunk, or of the first
	// skipped byte for EventResync.
	Offset int64
	// Size is the number of bytes the chunk occupied in the stream, or the
	// number of skipped bytes for EventResync.
	Size int64
	Note string
}

func (e Event) String() string {
	s := fmt.Sprintf("%s %q offset=%d size=%d", e.Kind, e.Tag.String(), e.Offset, e.Size)
	if e.Note != "" {
		s += " " + e.Note
	}
	return s
}

// Sink receives parser and writer events.
type Sink interface {
	ChunkEvent(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

func (f SinkFunc) ChunkEvent(e Event) { f(e) }

// NopSink drops every event.
var NopSink Sink = SinkFunc(func(Event) {})

// OrNop returns s, or NopSink when s is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return NopSink
	}
	return s
}
