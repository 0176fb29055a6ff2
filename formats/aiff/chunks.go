// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"

	"github.com/ik5/sinekit/chunk"
	"github.com/ik5/sinekit/endian"
	"github.com/ik5/sinekit/ieee80"
)

var (
	TagFORM = chunk.NewTag("FORM")
	TagAIFF = chunk.NewTag("AIFF")
	TagAIFC = chunk.NewTag("AIFC")
	TagCOMM = chunk.NewTag("COMM")
	TagSSND = chunk.NewTag("SSND")
)

// AIFC compression types.
var (
	CompressionNone = chunk.NewTag("NONE")
	CompressionTwos = chunk.NewTag("twos")
	CompressionSowt = chunk.NewTag("sowt")
	CompressionFl32 = chunk.NewTag("fl32")
	CompressionFl64 = chunk.NewTag("fl64")
)

const (
	commSize     = 18
	ssndHeadSize = 8
)

// FormChunk is the outer container header.
type FormChunk struct {
	ID       chunk.Tag
	Size     uint32
	FormType chunk.Tag
}

func (c *FormChunk) read(r *chunk.Reader) (err error) {
	if c.ID, err = r.ReadTag(); err != nil {
		return err
	}
	if c.Size, err = chunk.ReadWord[uint32](r, endian.Big); err != nil {
		return err
	}
	if c.FormType, err = r.ReadTag(); err != nil {
		return err
	}
	if c.FormType != TagAIFF && c.FormType != TagAIFC {
		return fmt.Errorf("%w: FORM type %q", ErrNotAiffFile, c.FormType.String())
	}
	return nil
}

func (c *FormChunk) write(w *chunk.Writer) {
	w.Tag(c.ID)
	chunk.WriteWord(w, c.Size, endian.Big)
	w.Tag(c.FormType)
}

// Compression is the AIFC extension of COMM.
type Compression struct {
	Type chunk.Tag
	Name string
}

// size returns the bytes the extension occupies: the type, the name's
// count byte and characters, and a pad byte to keep the total even.
func (c Compression) size() int {
	n := 1 + len(c.Name)
	return 4 + n + n%2
}

func (c *Compression) read(r *chunk.Reader) (n int, err error) {
	if c.Type, err = r.ReadTag(); err != nil {
		return 0, err
	}
	count, err := chunk.ReadWord[uint8](r, endian.Big)
	if err != nil {
		return 0, err
	}
	name, err := r.Bytes(int64(count))
	if err != nil {
		return 0, err
	}
	c.Name = string(name)

	n = 4 + 1 + int(count)
	if n%2 == 1 {
		if err := r.Skip(1); err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

func (c *Compression) write(w *chunk.Writer) {
	w.Tag(c.Type)
	w.Bytes([]byte{byte(len(c.Name))})
	w.Bytes([]byte(c.Name))
	w.Pad(int64(1 + len(c.Name)))
}

// CommChunk describes the sample layout. Compression is only present in
// AIFC files.
type CommChunk struct {
	ID          chunk.Tag
	Size        int32
	NumChannels int16
	NumSamples  uint32
	BitDepth    int16
	SampleRate  ieee80.Extended
	Compression Compression
}

func (c *CommChunk) read(r *chunk.Reader, aifc bool) (err error) {
	if c.ID, err = r.ReadTag(); err != nil {
		return err
	}
	if c.Size, err = chunk.ReadWord[int32](r, endian.Big); err != nil {
		return err
	}
	if c.Size < commSize {
		return fmt.Errorf("%w: COMM size %d below %d", chunk.ErrMalformedChunk, c.Size, commSize)
	}

	if c.NumChannels, err = chunk.ReadWord[int16](r, endian.Big); err != nil {
		return err
	}
	if c.NumSamples, err = chunk.ReadWord[uint32](r, endian.Big); err != nil {
		return err
	}
	if c.BitDepth, err = chunk.ReadWord[int16](r, endian.Big); err != nil {
		return err
	}
	raw, err := r.Bytes(ieee80.Size)
	if err != nil {
		return err
	}
	c.SampleRate, _ = ieee80.ParseBytes(raw)

	consumed := commSize
	c.Compression = Compression{}
	if aifc {
		n, err := c.Compression.read(r)
		if err != nil {
			return fmt.Errorf("compression: %w", err)
		}
		consumed += n
	}

	if rest := int64(c.Size) - int64(consumed); rest > 0 {
		if err := r.Skip(rest); err != nil {
			return err
		}
	}
	r.SkipPad(int64(c.Size))
	return nil
}

func (c *CommChunk) write(w *chunk.Writer, aifc bool) {
	w.Tag(c.ID)
	chunk.WriteWord(w, c.Size, endian.Big)
	chunk.WriteWord(w, c.NumChannels, endian.Big)
	chunk.WriteWord(w, c.NumSamples, endian.Big)
	chunk.WriteWord(w, c.BitDepth, endian.Big)
	w.Bytes(c.SampleRate.Bytes())
	if aifc {
		c.Compression.write(w)
	}
}

// SSNDChunk is the sample payload header. Size counts Offset, BlockSize
// and the samples.
type SSNDChunk struct {
	ID        chunk.Tag
	Size      uint32
	Offset    uint32
	BlockSize uint32
}

func (c *SSNDChunk) read(r *chunk.Reader) (err error) {
	if c.ID, err = r.ReadTag(); err != nil {
		return err
	}
	if c.Size, err = chunk.ReadWord[uint32](r, endian.Big); err != nil {
		return err
	}
	if c.Size < ssndHeadSize {
		return fmt.Errorf("%w: SSND size %d below %d", chunk.ErrMalformedChunk, c.Size, ssndHeadSize)
	}
	if c.Offset, err = chunk.ReadWord[uint32](r, endian.Big); err != nil {
		return err
	}
	c.BlockSize, err = chunk.ReadWord[uint32](r, endian.Big)
	return err
}

func (c *SSNDChunk) write(w *chunk.Writer) {
	w.Tag(c.ID)
	chunk.WriteWord(w, c.Size, endian.Big)
	chunk.WriteWord(w, c.Offset, endian.Big)
	chunk.WriteWord(w, c.BlockSize, endian.Big)
}
