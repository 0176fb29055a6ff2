// SPDX-License-Identifier: EPL-2.0

// Package audio holds decoded PCM in memory and transforms it.
//
// # Buffers
//
// Samples are stored planar: Buffer[T].Channels[c][f] is frame f of
// channel c. A Variant carries one Buffer per supported width and a
// BitType tag naming the one in use:
//
//	v := audio.NewVariant(audio.I16, 2, 1024)
//	v.I16().Set(0, 0, 1000)
//
// 24-bit samples live in int32 and are sign extended on load. Only the
// active buffer holds samples; switching width clears the others.
//
// # Sample I/O
//
// Deserialize turns an interleaved container payload into planar samples
// and Serialize does the reverse, in either byte order:
//
//	err := audio.Deserialize(payload, endian.Little, audio.I24, channels, frames, v)
//	out, err := audio.Serialize(v, endian.Big)
//
// A payload shorter than channels x frames x width fails with
// ErrShortPayload.
//
// # Bit depth
//
// Convert moves between 16-bit, 24-bit, 32-bit float and 64-bit float:
//
//	err := audio.Convert(v, audio.F32)
//
// int16 to int24 is exact (shift left 8). int24 to int16 drops the low
// byte. Integer to float divides by 32767 or 8388607, float to integer
// clamps to [-1, 1] and truncates. 8-bit and 32-bit integer buffers can be
// loaded and written but not converted; they fail with
// ErrUnsupportedConversion.
//
// # Resampling
//
// Upsample stretches the buffer by an integer factor. Originals stay at
// multiples of the factor and the gaps are filled by linear, Catmull-Rom
// cubic or windowed sinc interpolation:
//
//	scale, err := audio.ScaleFor(44100, 176400) // 4
//	err = audio.Upsample(v, scale, audio.ResampleOptions{
//	    Method:     audio.Sinc,
//	    Window:     audio.Kaiser,
//	    WindowSize: 33,
//	})
//
// Downsampling and fractional ratios return ErrUnsupportedRatio.
// Interpolated integer samples are rounded and clamped, float samples are
// clamped to [-1, 1].
//
// # Streaming sources
//
// Source is the float32 streaming interface the format decoders implement.
// BufferSource streams a Variant, ReadAll collects any Source into an F32
// Variant, and Registry maps format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	src, err := registry.Open("wav", f)
//
// Source samples are float32 in [-1.0, 1.0].
package audio
