// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/sinekit/chunk"
	"github.com/ik5/sinekit/endian"
)

var (
	TagRIFF = chunk.NewTag("RIFF")
	TagWAVE = chunk.NewTag("WAVE")
	TagFmt  = chunk.NewTag("fmt ")
	TagFact = chunk.NewTag("fact")
	TagData = chunk.NewTag("data")
)

// WAVE format codes.
const (
	FormatPCM        uint16 = 1
	FormatFloat      uint16 = 3
	FormatALaw       uint16 = 6
	FormatMuLaw      uint16 = 7
	FormatExtensible uint16 = 0xFFFE
)

const (
	fmtSize  = 16
	factSize = 4
)

// RIFFChunk is the outer container header.
type RIFFChunk struct {
	ID     chunk.Tag
	Size   uint32
	Format chunk.Tag
}

func (c *RIFFChunk) read(r *chunk.Reader) (err error) {
	if c.ID, err = r.ReadTag(); err != nil {
		return err
	}
	if c.Size, err = chunk.ReadWord[uint32](r, endian.Little); err != nil {
		return err
	}
	if c.Format, err = r.ReadTag(); err != nil {
		return err
	}
	if c.Format != TagWAVE {
		return fmt.Errorf("%w: RIFF form %q", ErrNotWavFile, c.Format.String())
	}
	return nil
}

func (c *RIFFChunk) write(w *chunk.Writer) {
	w.Tag(c.ID)
	chunk.WriteWord(w, c.Size, endian.Little)
	w.Tag(c.Format)
}

// FmtChunk describes the sample layout. Extra holds any bytes past the
// 16-byte PCM body, such as the WAVE_FORMAT_EXTENSIBLE block.
type FmtChunk struct {
	ID            chunk.Tag
	Size          uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Extra         []byte
}

// EffectiveFormat returns AudioFormat, or the sub-format code carried in
// the extensible block's GUID.
func (c *FmtChunk) EffectiveFormat() uint16 {
	if c.AudioFormat == FormatExtensible && len(c.Extra) >= 10 {
		return binary.LittleEndian.Uint16(c.Extra[8:10])
	}
	return c.AudioFormat
}

func (c *FmtChunk) read(r *chunk.Reader) (err error) {
	if c.ID, err = r.ReadTag(); err != nil {
		return err
	}
	if c.Size, err = chunk.ReadWord[uint32](r, endian.Little); err != nil {
		return err
	}
	if c.Size < fmtSize {
		return fmt.Errorf("%w: fmt size %d below %d", chunk.ErrMalformedChunk, c.Size, fmtSize)
	}

	fields := []any{&c.AudioFormat, &c.NumChannels, &c.SampleRate, &c.ByteRate, &c.BlockAlign, &c.BitsPerSample}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("fmt body at offset %d: %w", r.Offset(), io.ErrUnexpectedEOF)
		}
	}

	c.Extra = nil
	if c.Size > fmtSize {
		if c.Extra, err = r.Bytes(int64(c.Size - fmtSize)); err != nil {
			return err
		}
	}
	r.SkipPad(int64(c.Size))
	return nil
}

func (c *FmtChunk) write(w *chunk.Writer) {
	w.Tag(c.ID)
	chunk.WriteWord(w, c.Size, endian.Little)
	chunk.WriteWord(w, c.AudioFormat, endian.Little)
	chunk.WriteWord(w, c.NumChannels, endian.Little)
	chunk.WriteWord(w, c.SampleRate, endian.Little)
	chunk.WriteWord(w, c.ByteRate, endian.Little)
	chunk.WriteWord(w, c.BlockAlign, endian.Little)
	chunk.WriteWord(w, c.BitsPerSample, endian.Little)
	w.Bytes(c.Extra)
	w.Pad(int64(c.Size))
}

// FactChunk carries the frame count of non-PCM data.
type FactChunk struct {
	ID         chunk.Tag
	Size       uint32
	NumSamples uint32
}

func (c *FactChunk) read(r *chunk.Reader) (err error) {
	if c.ID, err = r.ReadTag(); err != nil {
		return err
	}
	if c.Size, err = chunk.ReadWord[uint32](r, endian.Little); err != nil {
		return err
	}
	if c.Size < factSize {
		return fmt.Errorf("%w: fact size %d below %d", chunk.ErrMalformedChunk, c.Size, factSize)
	}
	if c.NumSamples, err = chunk.ReadWord[uint32](r, endian.Little); err != nil {
		return err
	}
	if err := r.Skip(int64(c.Size - factSize)); err != nil {
		return err
	}
	r.SkipPad(int64(c.Size))
	return nil
}

func (c *FactChunk) write(w *chunk.Writer) {
	w.Tag(c.ID)
	chunk.WriteWord(w, c.Size, endian.Little)
	chunk.WriteWord(w, c.NumSamples, endian.Little)
}

// DataChunk is the sample payload header.
type DataChunk struct {
	ID   chunk.Tag
	Size uint32
}

func (c *DataChunk) read(r *chunk.Reader) (err error) {
	if c.ID, err = r.ReadTag(); err != nil {
		return err
	}
	c.Size, err = chunk.ReadWord[uint32](r, endian.Little)
	return err
}

func (c *DataChunk) write(w *chunk.Writer) {
	w.Tag(c.ID)
	chunk.WriteWord(w, c.Size, endian.Little)
}
