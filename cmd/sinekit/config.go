// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/sinekit/audio"
)

type convertConfig struct {
	In       string
	Out      string
	Depth    audio.BitType
	Rate     int
	Resample audio.ResampleOptions
}

func (c convertConfig) String() string {
	return fmt.Sprintf("in=%v, out=%v, depth=%v, rate=%v, method=%v, window=%v, taps=%v",
		c.In, c.Out, c.Depth, c.Rate, c.Resample.Method, c.Resample.Window, c.Resample.WindowSize)
}

// parseConvert reads convert flags. Interpolation defaults come from the
// SINEKIT_* environment.
func parseConvert(args []string) (*convertConfig, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	taps, err := strconv.Atoi(os.Getenv("SINEKIT_WINDOW_SIZE"))
	if err != nil {
		return nil, errors.Wrapf(err, "SINEKIT_WINDOW_SIZE=%v", os.Getenv("SINEKIT_WINDOW_SIZE"))
	}

	var conf convertConfig
	var depth, method, window string
	fs.StringVar(&conf.In, "in", "", "input file")
	fs.StringVar(&conf.Out, "out", "", "output file, .wav or .aiff")
	fs.StringVar(&depth, "depth", "", "target bit depth: 16, 24, 32f or 64f")
	fs.IntVar(&conf.Rate, "rate", 0, "target sample rate, an integer multiple of the input rate")
	fs.StringVar(&method, "method", os.Getenv("SINEKIT_METHOD"), "interpolation: linear, cubic or sinc")
	fs.StringVar(&window, "window", os.Getenv("SINEKIT_WINDOW"), "sinc window: rectangular, hamming, hanning, blackman or kaiser")
	fs.IntVar(&conf.Resample.WindowSize, "taps", taps, "sinc window size, odd")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrapf(err, "parse %v", args)
	}
	if conf.In == "" || conf.Out == "" {
		return nil, errors.New("-in and -out are required")
	}

	if conf.Depth, err = parseDepth(depth); err != nil {
		return nil, errors.Wrapf(err, "depth %v", depth)
	}
	if conf.Resample.Method, err = audio.ParseInterpolation(method); err != nil {
		return nil, errors.Wrapf(err, "method %v", method)
	}
	if conf.Resample.Window, err = audio.ParseWindow(window); err != nil {
		return nil, errors.Wrapf(err, "window %v", window)
	}
	return &conf, nil
}

// parseDepth maps a flag value to a BitType. Empty keeps the input depth.
func parseDepth(s string) (audio.BitType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return audio.Undefined, nil
	}

	float := strings.HasSuffix(s, "f")
	bits, err := strconv.Atoi(strings.TrimSuffix(s, "f"))
	if err != nil {
		return audio.Undefined, fmt.Errorf("%w: %q", audio.ErrUnsupportedBitDepth, s)
	}
	if !float && bits == 64 {
		float = true
	}
	return audio.BitTypeFor(bits, float)
}
