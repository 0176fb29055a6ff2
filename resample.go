// SPDX-License-Identifier: EPL-2.0

package sinekit

import (
	"fmt"

	"github.com/ik5/sinekit/audio"
	"github.com/ik5/sinekit/utils"
)

// ToBitDepth converts the samples to bt and recomputes the headers.
//
// Conversions are defined between I16, I24, F32 and F64 only:
//   - I16 to I24 shifts left by 8 bits
//   - I24 to I16 shifts right by 8 bits and drops the low byte
//   - integer to float divides by 32767 or 8388607
//   - float to integer clamps to [-1, 1], scales and truncates
//
// On error the buffer is left as it was.
func (s *Session) ToBitDepth(bt audio.BitType) error {
	if s.empty() {
		return ErrEmptySession
	}
	if err := audio.Convert(&s.buf, bt); err != nil {
		return err
	}

	s.UpdateHeaders()
	return nil
}

// ToSampleRate upsamples to rate, which must be an integer multiple of the
// current rate, using the session's resample options. Original samples
// keep their values at every scale-th frame.
func (s *Session) ToSampleRate(rate int) error {
	if s.empty() {
		return ErrEmptySession
	}

	scale, err := audio.ScaleFor(s.sampleRate, rate)
	if err != nil {
		return err
	}
	if scale == 1 {
		return nil
	}

	if err := audio.Upsample(&s.buf, scale, s.resample); err != nil {
		return fmt.Errorf("resample %d Hz to %d Hz: %w", s.sampleRate, rate, err)
	}

	s.sampleRate = rate
	s.UpdateHeaders()
	return nil
}

// Interleaved16 returns the samples as interleaved 16-bit PCM. I16 data
// is copied, any other width goes through the float scale.
func (s *Session) Interleaved16() []int16 {
	channels, frames := s.buf.NumChannels(), s.buf.NumFrames()
	out := make([]int16, channels*frames)

	for f := range frames {
		for c := range channels {
			i := f*channels + c
			if s.buf.Active() == audio.I16 {
				out[i] = s.buf.I16().Sample(c, f)
				continue
			}
			out[i] = utils.Float32ToInt16(float32(s.buf.SampleFloat(c, f)))
		}
	}
	return out
}
