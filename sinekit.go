// SPDX-License-Identifier: EPL-2.0

package sinekit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/sinekit/audio"
	"github.com/ik5/sinekit/chunk"
	"github.com/ik5/sinekit/formats/aiff"
	"github.com/ik5/sinekit/formats/wav"
)

// Container names a file layout a Session can read and write.
type Container int

const (
	UnknownContainer Container = iota
	WAV
	AIFF
)

func (c Container) String() string {
	switch c {
	case WAV:
		return "wav"
	case AIFF:
		return "aiff"
	}
	return "unknown"
}

// ContainerFor maps a file name to its container by extension.
func ContainerFor(path string) (Container, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return WAV, nil
	case ".aif", ".aiff", ".aifc":
		return AIFF, nil
	}
	return UnknownContainer, fmt.Errorf("%w: %q", ErrUnknownExtension, path)
}

// Session holds one clip in memory together with the WAV and AIFF headers
// that describe it.
//
// A Session is not safe for concurrent use.
type Session struct {
	buf        audio.Variant
	sampleRate int

	wav  wav.Header
	aiff aiff.Header

	sink     chunk.Sink
	resample audio.ResampleOptions
}

// New returns an empty session.
func New(opts ...Option) *Session {
	s := &Session{
		sink:     chunk.NopSink,
		resample: audio.DefaultResampleOptions(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads a WAV or AIFF file, chosen by the file extension.
func (s *Session) Load(path string) error {
	c, err := ContainerFor(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch c {
	case AIFF:
		err = s.LoadAIFF(f)
	default:
		err = s.LoadWAV(f)
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// LoadWAV replaces the session contents with the WAV stream r. The WAV
// header is kept as read until the next UpdateHeaders.
func (s *Session) LoadWAV(r io.Reader) error {
	var h wav.Header
	payload, err := h.Read(chunk.NewReader(r), s.sink)
	if err != nil {
		return err
	}

	var v audio.Variant
	if err := h.Decode(payload, &v); err != nil {
		return err
	}

	s.buf = v
	s.sampleRate = int(h.Fmt.SampleRate)
	s.wav = h
	s.aiff.Update(s.buf.Active(), s.sampleRate, s.buf.NumChannels(), s.buf.NumFrames())
	return nil
}

// LoadAIFF replaces the session contents with the AIFF or AIFC stream r.
func (s *Session) LoadAIFF(r io.Reader) error {
	var h aiff.Header
	payload, err := h.Read(chunk.NewReader(r), s.sink)
	if err != nil {
		return err
	}

	var v audio.Variant
	if err := h.Decode(payload, &v); err != nil {
		return err
	}

	s.buf = v
	s.sampleRate = h.SampleRate()
	s.aiff = h
	s.wav.Update(s.buf.Active(), s.sampleRate, s.buf.NumChannels(), s.buf.NumFrames())
	return nil
}

// FromSource drains src into the session as 32-bit float samples and
// closes it.
func (s *Session) FromSource(src audio.Source) error {
	rate := src.SampleRate()

	v, err := audio.ReadAll(src)
	if err != nil {
		return err
	}

	s.buf = *v
	s.sampleRate = rate
	s.UpdateHeaders()
	return nil
}

// Write stores the session as WAV or AIFF, chosen by the file extension.
func (s *Session) Write(path string) (err error) {
	c, err := ContainerFor(path)
	if err != nil {
		return err
	}
	if s.empty() {
		return ErrEmptySession
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	switch c {
	case AIFF:
		err = s.WriteAIFF(f)
	default:
		err = s.WriteWAV(f)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteWAV recomputes the headers and writes the session as WAV.
func (s *Session) WriteWAV(w io.Writer) error {
	if s.empty() {
		return ErrEmptySession
	}
	s.UpdateHeaders()

	payload, err := s.wav.Encode(&s.buf)
	if err != nil {
		return err
	}
	return s.wav.Write(w, payload, s.sink)
}

// WriteAIFF recomputes the headers and writes the session as AIFF, or as
// AIFC when the samples are float.
func (s *Session) WriteAIFF(w io.Writer) error {
	if s.empty() {
		return ErrEmptySession
	}
	s.UpdateHeaders()

	payload, err := s.aiff.Encode(&s.buf)
	if err != nil {
		return err
	}
	return s.aiff.Write(w, payload, s.sink)
}

// UpdateHeaders derives every field of both headers from the buffer.
func (s *Session) UpdateHeaders() {
	bt, ch, frames := s.buf.Active(), s.buf.NumChannels(), s.buf.NumFrames()
	s.wav.Update(bt, s.sampleRate, ch, frames)
	s.aiff.Update(bt, s.sampleRate, ch, frames)
}

func (s *Session) empty() bool {
	return s.buf.NumChannels() == 0 || s.buf.Active() == audio.Undefined
}

// BitType returns the width of the samples held.
func (s *Session) BitType() audio.BitType { return s.buf.Active() }

// SampleRate returns the sample rate in Hz.
func (s *Session) SampleRate() int { return s.sampleRate }

func (s *Session) NumChannels() int { return s.buf.NumChannels() }
func (s *Session) NumFrames() int   { return s.buf.NumFrames() }

// Buffer exposes the samples. Changes are picked up by the next write.
func (s *Session) Buffer() *audio.Variant { return &s.buf }

// WAVHeader returns the WAV header as last read or updated.
func (s *Session) WAVHeader() wav.Header { return s.wav }

// AIFFHeader returns the AIFF header as last read or updated.
func (s *Session) AIFFHeader() aiff.Header { return s.aiff }
