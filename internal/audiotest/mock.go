// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides generated audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the sample for a frame and channel.
type Waveform func(frame, channel int) float32

// Source generates a fixed number of frames from a Waveform. It satisfies
// audio.Source without importing it.
type Source struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	waveform   Waveform

	// Err, when set, is returned by ReadSamples in place of io.EOF.
	Err error
	// Closed reports whether Close was called.
	Closed bool
}

// NewSource returns a Source of frames frames per channel.
func NewSource(sampleRate, channels, frames int, waveform Waveform) *Source {
	return &Source{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSilentSource generates zeros.
func NewSilentSource(sampleRate, channels, frames int) *Source {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewConstantSource generates value on every channel.
func NewConstantSource(sampleRate, channels, frames int, value float32) *Source {
	return NewSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// NewSineSource generates a sine of frequency Hz on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *Source {
	return NewSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource generates frame/frames on channel 0 and its negation on
// every other channel.
func NewRampSource(sampleRate, channels, frames int) *Source {
	return NewSource(sampleRate, channels, frames, func(frame, channel int) float32 {
		v := float32(frame) / float32(frames)
		if channel > 0 {
			return -v
		}
		return v
	})
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 256 * s.channels }

func (s *Source) Close() error {
	s.Closed = true
	return nil
}

// Reset rewinds to the first frame.
func (s *Source) Reset() { s.pos = 0 }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.frames {
		return 0, s.end()
	}

	frames := min(len(dst)/s.channels, s.frames-s.pos)
	for f := range frames {
		for c := range s.channels {
			dst[f*s.channels+c] = s.waveform(s.pos+f, c)
		}
	}
	s.pos += frames

	if s.pos >= s.frames {
		return frames * s.channels, s.end()
	}
	return frames * s.channels, nil
}

func (s *Source) end() error {
	if s.Err != nil {
		return s.Err
	}
	return io.EOF
}
