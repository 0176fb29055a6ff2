// SPDX-License-Identifier: EPL-2.0

// Package sinekit loads, converts and writes uncompressed audio clips
// held entirely in memory.
//
// A Session binds one planar sample buffer to the WAV and AIFF headers
// that describe it:
//
//	s := sinekit.New()
//	if err := s.Load("in.wav"); err != nil {
//		return err
//	}
//	if err := s.ToBitDepth(audio.I24); err != nil {
//		return err
//	}
//	if err := s.ToSampleRate(88200); err != nil {
//		return err
//	}
//	err := s.Write("out.aiff")
//
// # Containers
//
// WAV (RIFF, little-endian) and AIFF/AIFC (FORM, big-endian) are parsed by
// formats/wav and formats/aiff. Both parsers step over unknown chunks and
// stray bytes and reject a repeated mandatory chunk. Every write
// recomputes the headers from the buffer first, so a header never
// describes stale data.
//
// # Conversions
//
// ToBitDepth moves between I16, I24, F32 and F64. I16 to I24 is exact,
// I24 to I16 drops the low byte. ToSampleRate only upsamples by an
// integer factor; the original samples keep their values and the gaps are
// filled by linear, cubic or windowed sinc interpolation, selected with
// WithResampleOptions.
//
// # Other sources
//
// Any audio.Source, such as the formats/mp3 and formats/vorbis decoders,
// can be drained into a session with FromSource. The session then holds
// F32 samples. IntBuffer, FloatBuffer and FromIntBuffer exchange samples
// with github.com/go-audio/audio.
//
// # Events
//
// The library never logs. Parsers and writers report what they found,
// skipped and wrote through a chunk.Sink installed with WithSink.
package sinekit
