// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/sinekit/audio"
	"github.com/ik5/sinekit/endian"
	"github.com/ik5/sinekit/utils"
)

// go-mp3 always produces interleaved 16-bit little-endian stereo.
const (
	channels   = 2
	sampleSize = 2
	frameSize  = channels * sampleSize
)

// mp3Reader is the part of gomp3.Decoder the source needs.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// carry holds the bytes of a frame split across two reads
	carry []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / sampleSize }

// Frames returns the decoded length in frames, or -1 when the stream is
// not seekable.
func (s *source) Frames() int {
	n := s.dec.Length()
	if n < 0 {
		return -1
	}
	return int(n / frameSize)
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	want := len(dst) * sampleSize
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	k := copy(s.buf, s.carry)
	s.carry = s.carry[:0]

	n, err := s.dec.Read(s.buf[k:])
	n += k

	whole := n - n%frameSize
	if err == nil || whole == n {
		s.carry = append(s.carry, s.buf[whole:n]...)
	} else if whole != n {
		err = fmt.Errorf("%w: %d trailing bytes", io.ErrUnexpectedEOF, n-whole)
	}

	order := endian.Little.Order()
	scale := audio.I16.FullScale()
	samples := whole / sampleSize
	for i := range samples {
		v := int16(order.Uint16(s.buf[i*sampleSize:]))
		dst[i] = float32(utils.Clamp(float64(v)/scale, -1, 1))
	}

	return samples, err
}

// Decoder decodes MPEG-1/2 Layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
