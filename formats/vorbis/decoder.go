// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/sinekit/audio"
	"github.com/ik5/sinekit/utils"
)

// oggReader is the part of oggvorbis.Reader the source needs. Read
// returns a count of interleaved values, not frames.
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

type source struct {
	dec      oggReader
	channels int
	bufSize  int
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return s.bufSize }

// Frames returns the stream length in frames, or -1 when the stream is
// not seekable.
func (s *source) Frames() int {
	n := s.dec.Length()
	if n <= 0 {
		return -1
	}
	return int(n)
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	n, err := s.dec.Read(dst)
	if n%s.channels != 0 {
		return n - n%s.channels, fmt.Errorf("%w: %d values for %d channels", io.ErrUnexpectedEOF, n, s.channels)
	}

	// vorbis synthesis can overshoot full scale slightly
	for i := range dst[:n] {
		dst[i] = utils.Clamp(dst[i], -1, 1)
	}
	return n, err
}

// Decoder decodes Ogg Vorbis streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}
	if dec.Channels() <= 0 {
		return nil, audio.ErrNoChannels
	}

	return &source{
		dec:      dec,
		channels: dec.Channels(),
		bufSize:  4096 * dec.Channels(),
	}, nil
}
