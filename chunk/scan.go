// SPDX-License-Identifier: EPL-2.0

package chunk

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Handler parses one mandatory chunk. Read is called with the reader
// positioned on the chunk tag and must leave it after the chunk payload.
type Handler struct {
	Tag  Tag
	Read func(r *Reader) error
}

// Found records which mandatory chunks were seen.
type Found map[Tag]bool

// Has reports whether every tag in tags was seen.
func (f Found) Has(tags ...Tag) bool {
	for _, t := range tags {
		if !f[t] {
			return false
		}
	}
	return true
}

// ScanSpec configures Scan.
type ScanSpec struct {
	Handlers []Handler
	// Step is how many bytes to advance when the next tag is unknown.
	// Zero means 1.
	Step int64
	// Settle may mark conditional chunks as satisfied once enough is
	// known about the file. It runs after every transition.
	Settle func(found Found) []Tag
	Sink   Sink
}

// Scan runs the mandatory chunk state machine until every handler's tag
// was found or settled. It returns the set of chunks actually parsed.
func Scan(r *Reader, spec ScanSpec) (Found, error) {
	sink := OrNop(spec.Sink)
	step := spec.Step
	if step <= 0 {
		step = 1
	}

	handlers := make(map[Tag]Handler, len(spec.Handlers))
	for _, h := range spec.Handlers {
		handlers[h.Tag] = h
	}

	found := make(Found, len(handlers))
	parsed := make(Found, len(handlers))

	var (
		resyncStart int64 = -1
		resyncLen   int64
	)
	flushResync := func() {
		if resyncLen > 0 {
			sink.ChunkEvent(Event{Kind: EventResync, Offset: resyncStart, Size: resyncLen})
		}
		resyncStart, resyncLen = -1, 0
	}

	for !done(found, handlers) {
		tag, err := r.Peek()
		if err != nil {
			flushResync()
			if errors.Is(err, io.EOF) {
				return parsed, fmt.Errorf("%w: %s not found before offset %d",
					ErrMissingChunk, missing(found, spec.Handlers), r.Offset())
			}
			return parsed, err
		}

		h, known := handlers[tag]
		switch {
		case known && found[tag]:
			flushResync()
			return parsed, fmt.Errorf("%w: second %q at offset %d", ErrDuplicateChunk, tag.String(), r.Offset())

		case known:
			flushResync()
			off := r.Offset()
			if err := h.Read(r); err != nil {
				return parsed, fmt.Errorf("%q chunk at offset %d: %w", tag.String(), off, err)
			}
			found[tag] = true
			parsed[tag] = true
			sink.ChunkEvent(Event{Kind: EventFound, Tag: tag, Offset: off, Size: r.Offset() - off})

		default:
			if resyncStart < 0 {
				resyncStart = r.Offset()
			}
			if err := r.Skip(step); err != nil {
				flushResync()
				return parsed, fmt.Errorf("%w: %s not found before offset %d",
					ErrMissingChunk, missing(found, spec.Handlers), r.Offset())
			}
			resyncLen += step
		}

		if spec.Settle != nil {
			for _, t := range spec.Settle(found) {
				if !found[t] {
					found[t] = true
					sink.ChunkEvent(Event{Kind: EventSkipped, Tag: t, Offset: r.Offset()})
				}
			}
		}
	}

	flushResync()
	return parsed, nil
}

func done(found Found, handlers map[Tag]Handler) bool {
	for t := range handlers {
		if !found[t] {
			return false
		}
	}
	return true
}

func missing(found Found, handlers []Handler) string {
	var names []string
	for _, h := range handlers {
		if !found[h.Tag] {
			names = append(names, fmt.Sprintf("%q", h.Tag.String()))
		}
	}
	return strings.Join(names, ", ")
}
