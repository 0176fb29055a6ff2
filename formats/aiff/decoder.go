// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/ik5/sinekit/audio"
	"github.com/ik5/sinekit/chunk"
)

// Decoder reads a whole AIFF or AIFC stream and serves it as an
// audio.Source.
type Decoder struct {
	// Sink receives parse events. Nil drops them.
	Sink chunk.Sink
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	var h Header
	payload, err := h.Read(chunk.NewReader(r), d.Sink)
	if err != nil {
		return nil, fmt.Errorf("read AIFF header: %w", err)
	}

	var v audio.Variant
	if err := h.Decode(payload, &v); err != nil {
		return nil, fmt.Errorf("decode AIFF payload: %w", err)
	}

	return audio.NewBufferSource(&v, h.SampleRate()), nil
}
