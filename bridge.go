// SPDX-License-Identifier: EPL-2.0

package sinekit

import (
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sinekit/audio"
)

func (s *Session) format() *goaudio.Format {
	return &goaudio.Format{NumChannels: s.buf.NumChannels(), SampleRate: s.sampleRate}
}

// IntBuffer returns the samples interleaved in a go-audio IntBuffer.
// Integer widths are copied unscaled, float samples are scaled to 32-bit.
func (s *Session) IntBuffer() *goaudio.IntBuffer {
	channels, frames := s.buf.NumChannels(), s.buf.NumFrames()
	data := make([]int, channels*frames)
	for f := range frames {
		for c := range channels {
			data[f*channels+c] = s.buf.Raw(c, f)
		}
	}

	bits := s.buf.Active().Bits()
	if s.buf.Active().IsFloat() {
		bits = audio.I32.Bits()
	}
	return &goaudio.IntBuffer{Format: s.format(), Data: data, SourceBitDepth: bits}
}

// FloatBuffer returns the samples interleaved in a go-audio FloatBuffer,
// scaled to nominal [-1, 1].
func (s *Session) FloatBuffer() *goaudio.FloatBuffer {
	channels, frames := s.buf.NumChannels(), s.buf.NumFrames()
	data := make([]float64, channels*frames)
	for f := range frames {
		for c := range channels {
			data[f*channels+c] = s.buf.SampleFloat(c, f)
		}
	}
	return &goaudio.FloatBuffer{Format: s.format(), Data: data}
}

// FromIntBuffer replaces the session contents with buf. SourceBitDepth
// selects the width; 8-bit data is taken as unsigned.
func (s *Session) FromIntBuffer(buf *goaudio.IntBuffer) error {
	if buf == nil || buf.Format == nil || buf.Format.NumChannels <= 0 {
		return audio.ErrNoChannels
	}
	channels := buf.Format.NumChannels
	if len(buf.Data)%channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", audio.ErrInvalidDstSize, len(buf.Data), channels)
	}

	bt, err := audio.BitTypeFor(buf.SourceBitDepth, false)
	if err != nil {
		return err
	}

	frames := len(buf.Data) / channels
	v := audio.NewVariant(bt, channels, frames)
	for i, x := range buf.Data {
		c, f := i%channels, i/channels
		switch bt {
		case audio.U8:
			v.U8().Set(c, f, uint8(x))
		case audio.I16:
			v.I16().Set(c, f, int16(x))
		case audio.I24:
			v.I24().Set(c, f, int32(x))
		case audio.I32:
			v.I32().Set(c, f, int32(x))
		}
	}

	s.buf = *v
	s.sampleRate = buf.Format.SampleRate
	s.UpdateHeaders()
	return nil
}
