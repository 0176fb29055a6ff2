// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/sinekit/audio"
	"github.com/ik5/sinekit/chunk"
	"github.com/ik5/sinekit/endian"
	"github.com/ik5/sinekit/ieee80"
)

// ResyncStep is how far the parser advances past bytes that do not start
// a known chunk.
const ResyncStep = 1

// Float compression names written by Update.
const (
	NameFloat32 = "Float 32-bit"
	NameFloat64 = "Float 64-bit"
)

// Header is the set of AIFF chunks the codec understands.
type Header struct {
	Form FormChunk
	Comm CommChunk
	SSND SSNDChunk
}

// IsAIFC reports whether the form type carries the compression extension.
func (h *Header) IsAIFC() bool { return h.Form.FormType == TagAIFC }

// Read scans r for FORM, COMM and SSND and returns the sample bytes that
// follow SSND's offset. Unknown chunks are stepped over.
func (h *Header) Read(r *chunk.Reader, sink chunk.Sink) ([]byte, error) {
	var payload []byte

	readComm := func(r *chunk.Reader) error {
		return h.Comm.read(r, h.IsAIFC())
	}

	readSSND := func(r *chunk.Reader) error {
		if err := h.SSND.read(r); err != nil {
			return err
		}
		if h.SSND.Offset > h.SSND.Size-ssndHeadSize {
			return fmt.Errorf("%w: SSND offset %d past chunk size %d", chunk.ErrMalformedChunk, h.SSND.Offset, h.SSND.Size)
		}
		if err := r.Skip(int64(h.SSND.Offset)); err != nil {
			return fmt.Errorf("%w: %w", audio.ErrShortPayload, err)
		}

		n := int64(h.SSND.Size) - ssndHeadSize - int64(h.SSND.Offset)
		b, err := io.ReadAll(io.LimitReader(r, n))
		if err != nil {
			return fmt.Errorf("SSND payload: %w", err)
		}
		if int64(len(b)) < n {
			return fmt.Errorf("%w: SSND declares %d sample bytes, stream holds %d", audio.ErrShortPayload, n, len(b))
		}
		r.SkipPad(int64(h.SSND.Size))
		payload = b
		return nil
	}

	spec := chunk.ScanSpec{
		Handlers: []chunk.Handler{
			{Tag: TagFORM, Read: h.Form.read},
			{Tag: TagCOMM, Read: readComm},
			{Tag: TagSSND, Read: readSSND},
		},
		Step: ResyncStep,
		Sink: sink,
	}

	parsed, err := chunk.Scan(r, spec)
	if err != nil {
		if errors.Is(err, chunk.ErrMissingChunk) && !parsed[TagFORM] {
			return nil, fmt.Errorf("%w: %w", ErrNotAiffFile, err)
		}
		return nil, err
	}
	return payload, nil
}

// Write emits FORM, COMM with its compression extension for AIFC, then
// SSND and the payload.
func (h *Header) Write(w io.Writer, payload []byte, sink chunk.Sink) error {
	sink = chunk.OrNop(sink)
	cw := chunk.NewWriter(w)

	emit := func(tag chunk.Tag, write func(*chunk.Writer)) {
		off := cw.Offset()
		write(cw)
		sink.ChunkEvent(chunk.Event{Kind: chunk.EventWritten, Tag: tag, Offset: off, Size: cw.Offset() - off})
	}

	emit(TagFORM, h.Form.write)
	emit(TagCOMM, func(cw *chunk.Writer) { h.Comm.write(cw, h.IsAIFC()) })
	emit(TagSSND, func(cw *chunk.Writer) {
		h.SSND.write(cw)
		cw.Bytes(make([]byte, h.SSND.Offset))
		cw.Bytes(payload)
		cw.Pad(int64(h.SSND.Offset) + int64(len(payload)))
	})

	if err := cw.Err(); err != nil {
		return fmt.Errorf("write AIFF: %w", err)
	}
	return nil
}

// Update recomputes every field for frames frames of bt samples. Integer
// widths produce plain AIFF, float widths AIFC with fl32 or fl64.
func (h *Header) Update(bt audio.BitType, sampleRate, channels, frames int) {
	soundBytes := uint32(frames * channels * bt.Bytes())

	h.Comm = CommChunk{
		ID:          TagCOMM,
		Size:        commSize,
		NumChannels: int16(channels),
		NumSamples:  uint32(frames),
		BitDepth:    int16(bt.Bits()),
		SampleRate:  ieee80.FromFloat64(float64(sampleRate)),
	}
	h.Form = FormChunk{ID: TagFORM, FormType: TagAIFF}

	switch bt {
	case audio.F32:
		h.Comm.Compression = Compression{Type: CompressionFl32, Name: NameFloat32}
	case audio.F64:
		h.Comm.Compression = Compression{Type: CompressionFl64, Name: NameFloat64}
	}
	if bt.IsFloat() {
		h.Form.FormType = TagAIFC
		h.Comm.Size += int32(h.Comm.Compression.size())
	}

	h.SSND = SSNDChunk{ID: TagSSND, Size: ssndHeadSize + soundBytes}
	h.Form.Size = 4 + (8 + uint32(h.Comm.Size)) + (8 + h.SSND.Size + h.SSND.Size%2)
}

// SampleRate returns the COMM sample rate rounded to whole Hz.
func (h *Header) SampleRate() int {
	return int(math.Round(h.Comm.SampleRate.Float64()))
}

// Frames returns the frame count COMM declares.
func (h *Header) Frames() int { return int(h.Comm.NumSamples) }

// Endian returns the byte order of the samples. Only AIFC sowt data is
// little-endian.
func (h *Header) Endian() endian.Endian {
	if h.IsAIFC() && h.Comm.Compression.Type == CompressionSowt {
		return endian.Little
	}
	return endian.Big
}

// BitType returns the in-memory width the payload decodes to.
func (h *Header) BitType() (audio.BitType, error) {
	float := false
	if h.IsAIFC() {
		switch h.Comm.Compression.Type {
		case CompressionNone, CompressionTwos, CompressionSowt:
		case CompressionFl32, CompressionFl64:
			float = true
		default:
			return audio.Undefined, fmt.Errorf("%w: %q", ErrUnsupportedCompression, h.Comm.Compression.Type.String())
		}
	}

	bits := int(h.Comm.BitDepth)
	if !float {
		// sample widths that are not byte aligned are stored left-justified
		bits = (bits + 7) / 8 * 8
	}
	return audio.BitTypeFor(bits, float)
}

// Decode fills v from payload according to COMM. 8-bit AIFF samples are
// signed and are stored offset by 128 in the U8 buffer.
func (h *Header) Decode(payload []byte, v *audio.Variant) error {
	channels := int(h.Comm.NumChannels)
	if channels <= 0 {
		return fmt.Errorf("%w: %d channels", ErrUnsupportedAiffLayout, channels)
	}

	bt, err := h.BitType()
	if err != nil {
		return err
	}

	if err := audio.Deserialize(payload, h.Endian(), bt, channels, h.Frames(), v); err != nil {
		return err
	}
	if bt == audio.U8 {
		flipSign(v.U8())
	}
	return nil
}

// Encode serialises v in the byte order Update selected.
func (h *Header) Encode(v *audio.Variant) ([]byte, error) {
	if v.Active() != audio.U8 {
		return audio.Serialize(v, h.Endian())
	}

	flipSign(v.U8())
	defer flipSign(v.U8())
	return audio.Serialize(v, h.Endian())
}

func flipSign(b *audio.Buffer[uint8]) {
	for _, ch := range b.Channels {
		for i := range ch {
			ch[i] ^= 0x80
		}
	}
}
