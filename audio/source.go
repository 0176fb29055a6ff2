// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const defaultBufSize = 4096

// BufferSource streams the active buffer of a Variant as a Source.
type BufferSource struct {
	v          *Variant
	sampleRate int
	pos        int
}

// NewBufferSource returns a Source reading v from its first frame.
func NewBufferSource(v *Variant, sampleRate int) *BufferSource {
	return &BufferSource{v: v, sampleRate: sampleRate}
}

func (s *BufferSource) SampleRate() int { return s.sampleRate }
func (s *BufferSource) Channels() int   { return s.v.NumChannels() }
func (s *BufferSource) BufSize() int    { return defaultBufSize }
func (s *BufferSource) Close() error    { return nil }

func (s *BufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.v.NumChannels()
	if channels == 0 {
		return 0, io.EOF
	}
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := min(len(dst)/channels, s.v.NumFrames()-s.pos)
	for f := range frames {
		for c := range channels {
			dst[f*channels+c] = float32(s.v.SampleFloat(c, s.pos+f))
		}
	}
	s.pos += frames

	if s.pos >= s.v.NumFrames() {
		return frames * channels, io.EOF
	}
	return frames * channels, nil
}

// ReadAll drains src into a new F32 Variant and closes it.
func ReadAll(src Source) (*Variant, error) {
	defer src.Close()

	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = defaultBufSize
	}
	bufSize -= bufSize % channels
	if bufSize == 0 {
		bufSize = channels
	}

	planar := make([][]float32, channels)
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n%channels != 0 {
			return nil, fmt.Errorf("%w: read %d samples for %d channels", ErrInvalidDstSize, n, channels)
		}
		for i := range n {
			planar[i%channels] = append(planar[i%channels], buf[i])
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}
	}

	v := &Variant{}
	v.SetActive(F32)
	v.channels = channels
	v.f32.Channels = planar
	for c := range planar {
		if planar[c] == nil {
			planar[c] = []float32{}
		}
	}
	return v, nil
}
