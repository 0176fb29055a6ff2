// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"bytes"
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/ik5/sinekit/audio"
	"github.com/ik5/sinekit/chunk"
	"github.com/ik5/sinekit/formats/aiff"
	"github.com/ik5/sinekit/formats/mp3"
	"github.com/ik5/sinekit/formats/vorbis"
	"github.com/ik5/sinekit/formats/wav"
)

func newRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("WAV", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("Mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	return r
}

func wavBytes(t *testing.T, samples ...int16) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := wav.WritePCM16(&buf, 8000, 1, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}
	return buf.Bytes()
}

func aiffBytes(t *testing.T, payload []byte) []byte {
	t.Helper()

	var h aiff.Header
	h.Update(audio.I16, 11025, 1, len(payload)/2)
	var buf bytes.Buffer
	if err := h.Write(&buf, payload, nil); err != nil {
		t.Fatalf("aiff Write() error = %v", err)
	}
	return buf.Bytes()
}

func TestRegistry_FormatsLowercasedAndSorted(t *testing.T) {
	t.Parallel()

	got := newRegistry().Formats()
	want := []string{"aiff", "mp3", "ogg", "wav"}
	if !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_RegisterReplacesAcrossCase(t *testing.T) {
	t.Parallel()

	r := newRegistry()
	r.Register("wav", wav.Decoder{Sink: chunk.SinkFunc(func(chunk.Event) {})})

	if n := len(r.Formats()); n != 4 {
		t.Errorf("len(Formats()) = %d after re-registering wav, want 4", n)
	}
	d, ok := r.Get("Wav")
	if !ok {
		t.Fatal("Get(\"Wav\") found nothing")
	}
	wd, ok := d.(wav.Decoder)
	if !ok {
		t.Fatalf("Get(\"Wav\") = %T, want wav.Decoder", d)
	}
	if wd.Sink == nil {
		t.Error("Get(\"Wav\") returned the first decoder, want the replacement with a Sink")
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	t.Parallel()

	r := newRegistry()
	for _, key := range []string{"flac", "", "wave"} {
		if d, ok := r.Get(key); ok || d != nil {
			t.Errorf("Get(%q) = %v, %v, want nil, false", key, d, ok)
		}
	}
}

func TestRegistry_OpenDispatchesByFoldedKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key      string
		in       []byte
		rate     int
		wantHead float32
	}{
		{key: "wav", in: wavBytes(t, 16384, -16384), rate: 8000, wantHead: 0.5},
		{key: "WAV", in: wavBytes(t, -32767, 0), rate: 8000, wantHead: -1},
		{key: "AIFF", in: aiffBytes(t, []byte{0x40, 0x00, 0x00, 0x00}), rate: 11025, wantHead: 0.5},
		{key: "Aiff", in: aiffBytes(t, []byte{0x7F, 0xFF, 0x00, 0x00}), rate: 11025, wantHead: 1},
	}

	r := newRegistry()
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			src, err := r.Open(tt.key, bytes.NewReader(tt.in))
			if err != nil {
				t.Fatalf("Open(%q) error = %v", tt.key, err)
			}
			defer src.Close()

			if src.SampleRate() != tt.rate || src.Channels() != 1 {
				t.Errorf("Open(%q) = %d Hz x %d, want %d Hz x 1", tt.key, src.SampleRate(), src.Channels(), tt.rate)
			}
			dst := make([]float32, 4)
			n, err := src.ReadSamples(dst)
			if n != 2 {
				t.Fatalf("ReadSamples() = %d, %v, want 2 values", n, err)
			}
			if math.Abs(float64(dst[0]-tt.wantHead)) > 1e-4 {
				t.Errorf("first sample = %v, want %v", dst[0], tt.wantHead)
			}
		})
	}
}

func TestRegistry_OpenUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := newRegistry().Open("FLAC", bytes.NewReader(nil))
	if !errors.Is(err, audio.ErrUnknownFormat) {
		t.Fatalf("Open(\"FLAC\") error = %v, want ErrUnknownFormat", err)
	}
	if !strings.Contains(err.Error(), `"FLAC"`) {
		t.Errorf("error %q does not name the requested key", err)
	}
}

func TestRegistry_OpenWrapsDecoderError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		in   []byte
		want error
	}{
		{key: "wav", in: []byte("plainly not a wave stream, just text"), want: wav.ErrNotWavFile},
		{key: "AIFF", in: []byte("plainly not an aiff stream, just text"), want: aiff.ErrNotAiffFile},
		{key: "MP3", in: nil},
		{key: "ogg", in: []byte("OggS but nothing after")},
	}

	r := newRegistry()
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			src, err := r.Open(tt.key, bytes.NewReader(tt.in))
			if err == nil {
				src.Close()
				t.Fatalf("Open(%q) succeeded on invalid input", tt.key)
			}
			if prefix := "decode " + tt.key + ": "; !strings.HasPrefix(err.Error(), prefix) {
				t.Errorf("error %q lacks prefix %q", err, prefix)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Open(%q) error = %v, want %v", tt.key, err, tt.want)
			}
		})
	}
}
