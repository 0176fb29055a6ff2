// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/sinekit/utils"
)

// convertible is the set of widths with conversion rules between them.
var convertible = map[BitType]bool{I16: true, I24: true, F32: true, F64: true}

// Convert switches v to target in place. int16 to int24 shifts left by 8,
// int24 to int16 shifts right by 8 and drops the low byte. Integer to float
// divides by the full scale magnitude, float to integer clamps to [-1, 1],
// scales and truncates. float32 and float64 convert by cast.
//
// On success only target's buffer holds samples.
func Convert(v *Variant, target BitType) error {
	src := v.Active()
	if src == target {
		return nil
	}
	if !convertible[src] || !convertible[target] {
		return fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, src, target)
	}

	channels := v.NumChannels()

	switch src {
	case I16:
		in := v.I16()
		switch target {
		case I24:
			out := mapBuffer(in, func(s int16) int32 { return int32(s) << 8 })
			install(v, target, channels).i24 = out
		case F32:
			out := mapBuffer(in, func(s int16) float32 { return float32(float64(s) / I16.FullScale()) })
			install(v, target, channels).f32 = out
		case F64:
			out := mapBuffer(in, func(s int16) float64 { return float64(s) / I16.FullScale() })
			install(v, target, channels).f64 = out
		}
	case I24:
		in := v.I24()
		switch target {
		case I16:
			out := mapBuffer(in, func(s int32) int16 { return int16(s >> 8) })
			install(v, target, channels).i16 = out
		case F32:
			out := mapBuffer(in, func(s int32) float32 { return float32(float64(s) / I24.FullScale()) })
			install(v, target, channels).f32 = out
		case F64:
			out := mapBuffer(in, func(s int32) float64 { return float64(s) / I24.FullScale() })
			install(v, target, channels).f64 = out
		}
	case F32:
		in := v.F32()
		switch target {
		case I16:
			out := mapBuffer(in, func(s float32) int16 { return int16(utils.FloatToInt(s, I16.FullScale())) })
			install(v, target, channels).i16 = out
		case I24:
			out := mapBuffer(in, func(s float32) int32 { return int32(utils.FloatToInt(s, I24.FullScale())) })
			install(v, target, channels).i24 = out
		case F64:
			out := mapBuffer(in, func(s float32) float64 { return float64(s) })
			install(v, target, channels).f64 = out
		}
	case F64:
		in := v.F64()
		switch target {
		case I16:
			out := mapBuffer(in, func(s float64) int16 { return int16(utils.FloatToInt(s, I16.FullScale())) })
			install(v, target, channels).i16 = out
		case I24:
			out := mapBuffer(in, func(s float64) int32 { return int32(utils.FloatToInt(s, I24.FullScale())) })
			install(v, target, channels).i24 = out
		case F32:
			out := mapBuffer(in, func(s float64) float32 { return float32(s) })
			install(v, target, channels).f32 = out
		}
	}

	return nil
}

// mapBuffer applies fn to every sample of in and returns a new buffer of
// the same shape.
func mapBuffer[S, D Sample](in *Buffer[S], fn func(S) D) Buffer[D] {
	out := Buffer[D]{Channels: make([][]D, len(in.Channels))}
	for c, samples := range in.Channels {
		dst := make([]D, len(samples))
		for f, s := range samples {
			dst[f] = fn(s)
		}
		out.Channels[c] = dst
	}
	return out
}

// install makes bt the active width, dropping every other buffer, and
// returns v so the caller can place the new samples.
func install(v *Variant, bt BitType, channels int) *Variant {
	v.SetActive(bt)
	v.channels = channels
	return v
}
