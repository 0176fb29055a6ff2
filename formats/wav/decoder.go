// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/ik5/sinekit/audio"
	"github.com/ik5/sinekit/chunk"
)

// Decoder reads a whole WAV stream and serves it as an audio.Source.
type Decoder struct {
	// Sink receives parse events. Nil drops them.
	Sink chunk.Sink
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	var h Header
	payload, err := h.Read(chunk.NewReader(r), d.Sink)
	if err != nil {
		return nil, fmt.Errorf("read WAV header: %w", err)
	}

	var v audio.Variant
	if err := h.Decode(payload, &v); err != nil {
		return nil, fmt.Errorf("decode WAV payload: %w", err)
	}

	return audio.NewBufferSource(&v, int(h.Fmt.SampleRate)), nil
}

// WritePCM16 writes interleaved 16-bit samples as a canonical PCM WAV.
func WritePCM16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels <= 0 || len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", audio.ErrInvalidDstSize, len(samples), channels)
	}
	frames := len(samples) / channels

	v := audio.NewVariant(audio.I16, channels, frames)
	buf := v.I16()
	for i, s := range samples {
		buf.Set(i%channels, i/channels, s)
	}

	var h Header
	h.Update(audio.I16, sampleRate, channels, frames)

	payload, err := h.Encode(v)
	if err != nil {
		return err
	}
	return h.Write(w, payload, nil)
}
