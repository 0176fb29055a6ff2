// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"testing"

	"github.com/ik5/sinekit/audio"
)

func TestParseDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want audio.BitType
		err  error
	}{
		{"", audio.Undefined, nil},
		{"16", audio.I16, nil},
		{" 24 ", audio.I24, nil},
		{"32f", audio.F32, nil},
		{"32F", audio.F32, nil},
		{"64", audio.F64, nil},
		{"64f", audio.F64, nil},
		{"32", audio.I32, nil},
		{"12", audio.Undefined, audio.ErrUnsupportedBitDepth},
		{"24f", audio.Undefined, audio.ErrUnsupportedBitDepth},
		{"loud", audio.Undefined, audio.ErrUnsupportedBitDepth},
	}

	for _, tt := range tests {
		got, err := parseDepth(tt.in)
		if !errors.Is(err, tt.err) {
			t.Errorf("parseDepth(%q) error = %v, want %v", tt.in, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDepth(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseConvert(t *testing.T) {
	t.Setenv("SINEKIT_METHOD", "sinc")
	t.Setenv("SINEKIT_WINDOW", "hann")
	t.Setenv("SINEKIT_WINDOW_SIZE", "17")

	conf, err := parseConvert([]string{"-in", "a.wav", "-out", "b.aiff", "-depth", "24", "-rate", "88200"})
	if err != nil {
		t.Fatalf("parseConvert() error = %v", err)
	}
	want := convertConfig{
		In:    "a.wav",
		Out:   "b.aiff",
		Depth: audio.I24,
		Rate:  88200,
		Resample: audio.ResampleOptions{
			Method:     audio.Sinc,
			Window:     audio.Hanning,
			WindowSize: 17,
		},
	}
	if *conf != want {
		t.Errorf("parseConvert() = %v, want %v", conf, want)
	}

	conf, err = parseConvert([]string{"-in", "a.wav", "-out", "b.wav", "-method", "cubic", "-taps", "9"})
	if err != nil {
		t.Fatalf("parseConvert() error = %v", err)
	}
	if conf.Resample.Method != audio.Cubic || conf.Resample.WindowSize != 9 {
		t.Errorf("flags did not override the environment: %v", conf)
	}

	bad := [][]string{
		{"-in", "a.wav"},
		{"-in", "a.wav", "-out", "b.wav", "-depth", "8f"},
		{"-in", "a.wav", "-out", "b.wav", "-method", "nearest"},
		{"-in", "a.wav", "-out", "b.wav", "-window", "tukey"},
		{"-in", "a.wav", "-out", "b.wav", "-unknown"},
	}
	for _, args := range bad {
		if _, err := parseConvert(args); err == nil {
			t.Errorf("parseConvert(%q) error = nil", args)
		}
	}

	t.Setenv("SINEKIT_WINDOW_SIZE", "many")
	if _, err := parseConvert([]string{"-in", "a.wav", "-out", "b.wav"}); err == nil {
		t.Error("parseConvert() accepted a non-numeric SINEKIT_WINDOW_SIZE")
	}
}
