// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/sinekit"
	"github.com/ik5/sinekit/audio"
	"github.com/ik5/sinekit/chunk"
	"github.com/ik5/sinekit/formats/mp3"
	"github.com/ik5/sinekit/formats/vorbis"
	"github.com/ik5/sinekit/formats/wav"
)

// streams decodes the inputs a session cannot parse itself.
func streams() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	return reg
}

func formatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// logSink writes container events to the logger.
type logSink struct {
	ctx context.Context
}

func (s logSink) ChunkEvent(e chunk.Event) {
	if e.Kind == chunk.EventResync {
		logger.Wf(s.ctx, "%v", e)
		return
	}
	logger.Tf(s.ctx, "%v", e)
}

// framer is implemented by streaming sources that know their length.
type framer interface {
	Frames() int
}

func doInfo(ctx context.Context, w io.Writer, path string) error {
	c, err := sinekit.ContainerFor(path)
	if err != nil {
		return infoStream(w, path)
	}

	if c == sinekit.WAV {
		if err := listChunks(w, path); err != nil {
			return err
		}
	}

	s := sinekit.New(sinekit.WithSink(logSink{ctx: ctx}))
	if err := s.Load(path); err != nil {
		return errors.Wrapf(err, "load %v", path)
	}

	fmt.Fprintf(w, "%s: %s, %d Hz, %d channels, %d frames\n",
		path, s.BitType(), s.SampleRate(), s.NumChannels(), s.NumFrames())

	switch c {
	case sinekit.WAV:
		h := s.WAVHeader()
		fmt.Fprintf(w, "fmt: format=%#x block_align=%d byte_rate=%d extra=%d\n",
			h.Fmt.AudioFormat, h.Fmt.BlockAlign, h.Fmt.ByteRate, len(h.Fmt.Extra))
	case sinekit.AIFF:
		h := s.AIFFHeader()
		fmt.Fprintf(w, "FORM %s, COMM size=%d", h.Form.FormType, h.Comm.Size)
		if h.IsAIFC() {
			fmt.Fprintf(w, " compression=%s %q", h.Comm.Compression.Type, h.Comm.Compression.Name)
		}
		fmt.Fprintf(w, ", SSND offset=%d\n", h.SSND.Offset)
	}
	return nil
}

func listChunks(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %v", path)
	}
	defer f.Close()

	chunks, err := wav.Chunks(f)
	if err != nil {
		return errors.Wrapf(err, "list chunks of %v", path)
	}
	for _, c := range chunks {
		fmt.Fprintln(w, c)
	}
	return nil
}

func infoStream(w io.Writer, path string) error {
	src, err := openStream(path)
	if err != nil {
		return err
	}
	defer src.Close()

	frames := -1
	if f, ok := src.(framer); ok {
		frames = f.Frames()
	}
	fmt.Fprintf(w, "%s: %s stream, %d Hz, %d channels, %d frames\n",
		path, formatOf(path), src.SampleRate(), src.Channels(), frames)
	return nil
}

// openStream opens path with the streaming decoder for its extension. The
// file is closed together with the source.
func openStream(path string) (audio.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %v", path)
	}

	src, err := streams().Open(formatOf(path), f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "open %v", path)
	}
	return &fileSource{Source: src, f: f}, nil
}

type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Frames() int {
	if f, ok := s.Source.(framer); ok {
		return f.Frames()
	}
	return -1
}

func (s *fileSource) Close() error {
	err := s.Source.Close()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}

func doConvert(ctx context.Context, conf *convertConfig) error {
	logger.Tf(ctx, "convert %v", conf)

	s := sinekit.New(
		sinekit.WithSink(logSink{ctx: ctx}),
		sinekit.WithResampleOptions(conf.Resample),
	)

	if _, err := sinekit.ContainerFor(conf.In); err == nil {
		if err := s.Load(conf.In); err != nil {
			return errors.Wrapf(err, "load %v", conf.In)
		}
	} else {
		src, err := openStream(conf.In)
		if err != nil {
			return err
		}
		if err := s.FromSource(src); err != nil {
			return errors.Wrapf(err, "decode %v", conf.In)
		}
	}
	logger.Tf(ctx, "loaded %v as %v, %v Hz, %v channels, %v frames",
		conf.In, s.BitType(), s.SampleRate(), s.NumChannels(), s.NumFrames())

	if conf.Depth != audio.Undefined && conf.Depth != s.BitType() {
		from := s.BitType()
		if err := s.ToBitDepth(conf.Depth); err != nil {
			return errors.Wrapf(err, "convert %v to %v", from, conf.Depth)
		}
		logger.Tf(ctx, "converted %v to %v", from, conf.Depth)
	}

	if conf.Rate > 0 && conf.Rate != s.SampleRate() {
		from := s.SampleRate()
		if err := s.ToSampleRate(conf.Rate); err != nil {
			return errors.Wrapf(err, "resample %v Hz to %v Hz", from, conf.Rate)
		}
		logger.Tf(ctx, "resampled %v Hz to %v Hz with %v, %v frames", from, conf.Rate, conf.Resample.Method, s.NumFrames())
	}

	if err := s.Write(conf.Out); err != nil {
		return errors.Wrapf(err, "write %v", conf.Out)
	}
	logger.Tf(ctx, "wrote %v", conf.Out)
	return nil
}
