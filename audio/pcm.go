// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ik5/sinekit/endian"
)

// PayloadSize returns the byte length of frames x channels samples of bt.
func PayloadSize(bt BitType, channels, frames int) int {
	return bt.Bytes() * channels * frames
}

// Deserialize fills v from an interleaved payload stored in e byte order.
// v is switched to bt and sized channels x frames. Bytes past the declared
// frame count are ignored.
func Deserialize(payload []byte, e endian.Endian, bt BitType, channels, frames int, v *Variant) error {
	if channels <= 0 {
		return ErrNoChannels
	}
	if bt.Bytes() == 0 {
		return fmt.Errorf("%w: %s", ErrUnsupportedBitDepth, bt)
	}

	need := PayloadSize(bt, channels, frames)
	if len(payload) < need {
		return fmt.Errorf("%w: need %d bytes for %d frames, have %d", ErrShortPayload, need, frames, len(payload))
	}
	payload = payload[:need]

	v.SetActive(bt)
	v.Resize(channels, frames)

	switch bt {
	case U8:
		return deinterleave(payload, e, v.U8())
	case I16:
		return deinterleave(payload, e, v.I16())
	case I24:
		unpack24(payload, e, v.I24())
		return nil
	case I32:
		return deinterleave(payload, e, v.I32())
	case F32:
		return deinterleave(payload, e, v.F32())
	case F64:
		return deinterleave(payload, e, v.F64())
	}
	return nil
}

// Serialize returns v's active buffer as an interleaved payload in e byte
// order. 24-bit samples keep their low 3 bytes.
func Serialize(v *Variant, e endian.Endian) ([]byte, error) {
	switch v.Active() {
	case U8:
		return interleave(v.U8(), e)
	case I16:
		return interleave(v.I16(), e)
	case I24:
		return pack24(v.I24(), e), nil
	case I32:
		return interleave(v.I32(), e)
	case F32:
		return interleave(v.F32(), e)
	case F64:
		return interleave(v.F64(), e)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedBitDepth, v.Active())
}

func deinterleave[T Sample](payload []byte, e endian.Endian, b *Buffer[T]) error {
	channels, frames := b.NumChannels(), b.NumFrames()

	packed := make([]T, channels*frames)
	if err := binary.Read(bytes.NewReader(payload), binary.NativeEndian, packed); err != nil {
		return fmt.Errorf("%w: %w", ErrShortPayload, err)
	}

	for i, raw := range packed {
		b.Channels[i%channels][i/channels] = endian.SwapIfNeeded(raw, e)
	}
	return nil
}

func interleave[T Sample](b *Buffer[T], e endian.Endian) ([]byte, error) {
	channels, frames := b.NumChannels(), b.NumFrames()

	packed := make([]T, channels*frames)
	for c, samples := range b.Channels {
		for f, s := range samples {
			packed[f*channels+c] = endian.HostToFile(s, e)
		}
	}

	var out bytes.Buffer
	out.Grow(binary.Size(packed))
	if err := binary.Write(&out, binary.NativeEndian, packed); err != nil {
		return nil, fmt.Errorf("interleave %d channels of %T: %w", channels, packed, err)
	}
	return out.Bytes(), nil
}

func unpack24(payload []byte, e endian.Endian, b *Buffer[int32]) {
	channels := b.NumChannels()

	for i := 0; i+2 < len(payload); i += 3 {
		var u uint32
		if e == endian.Little {
			u = uint32(payload[i+2])<<16 | uint32(payload[i+1])<<8 | uint32(payload[i])
		} else {
			u = uint32(payload[i])<<16 | uint32(payload[i+1])<<8 | uint32(payload[i+2])
		}
		// sign extend bit 23
		s := int32(u<<8) >> 8

		n := i / 3
		b.Channels[n%channels][n/channels] = s
	}
}

func pack24(b *Buffer[int32], e endian.Endian) []byte {
	channels, frames := b.NumChannels(), b.NumFrames()
	out := make([]byte, 3*channels*frames)

	for c, samples := range b.Channels {
		for f, s := range samples {
			u := uint32(s)
			i := 3 * (f*channels + c)
			if e == endian.Little {
				out[i], out[i+1], out[i+2] = byte(u), byte(u>>8), byte(u>>16)
			} else {
				out[i], out[i+1], out[i+2] = byte(u>>16), byte(u>>8), byte(u)
			}
		}
	}
	return out
}
