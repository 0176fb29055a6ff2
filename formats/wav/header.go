// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/zaf/g711"

	"github.com/ik5/sinekit/audio"
	"github.com/ik5/sinekit/chunk"
	"github.com/ik5/sinekit/endian"
)

// ResyncStep is how far the parser advances past bytes that do not start
// a known chunk.
const ResyncStep = 1

// Header is the set of WAV chunks the codec understands.
type Header struct {
	RIFF RIFFChunk
	Fmt  FmtChunk
	Fact FactChunk
	Data DataChunk
}

// Read scans r for RIFF, fmt, fact and data and returns the data payload.
// fact is only required for float data. Unknown chunks are stepped over.
func (h *Header) Read(r *chunk.Reader, sink chunk.Sink) ([]byte, error) {
	var payload []byte

	readData := func(r *chunk.Reader) error {
		if err := h.Data.read(r); err != nil {
			return err
		}
		b, err := io.ReadAll(io.LimitReader(r, int64(h.Data.Size)))
		if err != nil {
			return fmt.Errorf("data payload: %w", err)
		}
		if len(b) < int(h.Data.Size) {
			return fmt.Errorf("%w: data declares %d bytes, stream holds %d", audio.ErrShortPayload, h.Data.Size, len(b))
		}
		r.SkipPad(int64(h.Data.Size))
		payload = b
		return nil
	}

	spec := chunk.ScanSpec{
		Handlers: []chunk.Handler{
			{Tag: TagRIFF, Read: h.RIFF.read},
			{Tag: TagFmt, Read: h.Fmt.read},
			{Tag: TagFact, Read: h.Fact.read},
			{Tag: TagData, Read: readData},
		},
		Step: ResyncStep,
		Settle: func(found chunk.Found) []chunk.Tag {
			if found.Has(TagRIFF, TagFmt, TagData) && h.Fmt.EffectiveFormat() != FormatFloat {
				return []chunk.Tag{TagFact}
			}
			return nil
		},
		Sink: sink,
	}

	parsed, err := chunk.Scan(r, spec)
	if err != nil {
		if errors.Is(err, chunk.ErrMissingChunk) && !parsed[TagRIFF] {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, err
	}
	if !parsed[TagFact] {
		h.Fact = FactChunk{}
	}

	return payload, nil
}

// Write emits RIFF, fmt, fact when the data is float, then data and the
// payload.
func (h *Header) Write(w io.Writer, payload []byte, sink chunk.Sink) error {
	sink = chunk.OrNop(sink)
	cw := chunk.NewWriter(w)

	emit := func(tag chunk.Tag, write func(*chunk.Writer)) {
		off := cw.Offset()
		write(cw)
		sink.ChunkEvent(chunk.Event{Kind: chunk.EventWritten, Tag: tag, Offset: off, Size: cw.Offset() - off})
	}

	emit(TagRIFF, h.RIFF.write)
	emit(TagFmt, h.Fmt.write)
	if h.Fmt.AudioFormat == FormatFloat {
		emit(TagFact, h.Fact.write)
	}
	emit(TagData, func(cw *chunk.Writer) {
		h.Data.write(cw)
		cw.Bytes(payload)
		cw.Pad(int64(len(payload)))
	})

	if err := cw.Err(); err != nil {
		return fmt.Errorf("write WAV: %w", err)
	}
	return nil
}

// Update recomputes every size and rate field for frames frames of bt
// samples. fmt is normalised to the 16-byte PCM or float body.
func (h *Header) Update(bt audio.BitType, sampleRate, channels, frames int) {
	blockAlign := channels * bt.Bytes()
	dataSize := uint32(frames * blockAlign)

	h.Fmt = FmtChunk{
		ID:            TagFmt,
		Size:          fmtSize,
		AudioFormat:   FormatPCM,
		NumChannels:   uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * blockAlign),
		BlockAlign:    uint16(blockAlign),
		BitsPerSample: uint16(bt.Bits()),
	}
	h.Data = DataChunk{ID: TagData, Size: dataSize}
	h.Fact = FactChunk{}

	riffSize := 4 + (8 + fmtSize) + (8 + dataSize + dataSize%2)
	if bt.IsFloat() {
		h.Fmt.AudioFormat = FormatFloat
		h.Fact = FactChunk{ID: TagFact, Size: factSize, NumSamples: uint32(frames)}
		riffSize += 8 + factSize
	}

	h.RIFF = RIFFChunk{ID: TagRIFF, Size: riffSize, Format: TagWAVE}
}

// BitType returns the in-memory width the payload decodes to. A-law and
// µ-law data decode to 16-bit.
func (h *Header) BitType() (audio.BitType, error) {
	switch h.Fmt.EffectiveFormat() {
	case FormatPCM:
		return audio.BitTypeFor(int(h.Fmt.BitsPerSample), false)
	case FormatFloat:
		return audio.BitTypeFor(int(h.Fmt.BitsPerSample), true)
	case FormatALaw, FormatMuLaw:
		if h.Fmt.BitsPerSample != 8 {
			return audio.Undefined, fmt.Errorf("%w: %d-bit G.711", ErrUnsupportedFormat, h.Fmt.BitsPerSample)
		}
		return audio.I16, nil
	}
	return audio.Undefined, fmt.Errorf("%w: format code %#04x", ErrUnsupportedFormat, h.Fmt.EffectiveFormat())
}

// Frames returns the number of whole frames the data chunk declares.
func (h *Header) Frames() int {
	if h.Fmt.BlockAlign == 0 {
		return 0
	}
	return int(h.Data.Size) / int(h.Fmt.BlockAlign)
}

// Decode fills v from payload according to the fmt chunk.
func (h *Header) Decode(payload []byte, v *audio.Variant) error {
	channels := int(h.Fmt.NumChannels)
	if channels == 0 || h.Fmt.BlockAlign == 0 {
		return fmt.Errorf("%w: %d channels, block align %d", ErrUnsupportedWavLayout, channels, h.Fmt.BlockAlign)
	}

	bt, err := h.BitType()
	if err != nil {
		return err
	}

	switch h.Fmt.EffectiveFormat() {
	case FormatALaw:
		return expandG711(payload, channels, h.Frames(), g711.DecodeAlawFrame, v)
	case FormatMuLaw:
		return expandG711(payload, channels, h.Frames(), g711.DecodeUlawFrame, v)
	}

	if want := channels * bt.Bytes(); int(h.Fmt.BlockAlign) != want {
		return fmt.Errorf("%w: block align %d, want %d", ErrUnsupportedWavLayout, h.Fmt.BlockAlign, want)
	}
	return audio.Deserialize(payload, endian.Little, bt, channels, h.Frames(), v)
}

// Encode serialises v as a little-endian data payload.
func (h *Header) Encode(v *audio.Variant) ([]byte, error) {
	return audio.Serialize(v, endian.Little)
}

func expandG711(payload []byte, channels, frames int, decode func(byte) int16, v *audio.Variant) error {
	if len(payload) < channels*frames {
		return fmt.Errorf("%w: need %d bytes, have %d", audio.ErrShortPayload, channels*frames, len(payload))
	}

	v.SetActive(audio.I16)
	v.Resize(channels, frames)
	buf := v.I16()
	for i, b := range payload[:channels*frames] {
		buf.Set(i%channels, i/channels, decode(b))
	}
	return nil
}
