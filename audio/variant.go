// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/sinekit/utils"

// Variant holds one Buffer per supported width and a tag naming the active
// one. Only the active buffer ever holds samples.
type Variant struct {
	active BitType
	// channels is kept separately so that an empty buffer still knows its
	// layout.
	channels int

	u8  Buffer[uint8]
	i16 Buffer[int16]
	i24 Buffer[int32]
	i32 Buffer[int32]
	f32 Buffer[float32]
	f64 Buffer[float64]
}

// NewVariant returns a Variant with bt active and channels x frames of
// silence allocated.
func NewVariant(bt BitType, channels, frames int) *Variant {
	v := &Variant{}
	v.SetActive(bt)
	v.Resize(channels, frames)
	return v
}

// Active returns the tag of the populated buffer.
func (v *Variant) Active() BitType { return v.active }

// SetActive switches the active width and clears every buffer, the new
// active one included.
func (v *Variant) SetActive(bt BitType) {
	v.u8.Clear()
	v.i16.Clear()
	v.i24.Clear()
	v.i32.Clear()
	v.f32.Clear()
	v.f64.Clear()
	v.active = bt
}

// Resize allocates the active buffer.
func (v *Variant) Resize(channels, frames int) {
	v.channels = channels
	switch v.active {
	case U8:
		v.u8.Resize(channels, frames)
	case I16:
		v.i16.Resize(channels, frames)
	case I24:
		v.i24.Resize(channels, frames)
	case I32:
		v.i32.Resize(channels, frames)
	case F32:
		v.f32.Resize(channels, frames)
	case F64:
		v.f64.Resize(channels, frames)
	}
}

// Clear releases every buffer and resets the tag.
func (v *Variant) Clear() {
	v.SetActive(Undefined)
	v.channels = 0
}

// NumChannels returns the channel count of the active buffer.
func (v *Variant) NumChannels() int { return v.channels }

// NumFrames returns the frame count of the active buffer.
func (v *Variant) NumFrames() int {
	switch v.active {
	case U8:
		return v.u8.NumFrames()
	case I16:
		return v.i16.NumFrames()
	case I24:
		return v.i24.NumFrames()
	case I32:
		return v.i32.NumFrames()
	case F32:
		return v.f32.NumFrames()
	case F64:
		return v.f64.NumFrames()
	}
	return 0
}

func (v *Variant) U8() *Buffer[uint8]    { return &v.u8 }
func (v *Variant) I16() *Buffer[int16]   { return &v.i16 }
func (v *Variant) I24() *Buffer[int32]   { return &v.i24 }
func (v *Variant) I32() *Buffer[int32]   { return &v.i32 }
func (v *Variant) F32() *Buffer[float32] { return &v.f32 }
func (v *Variant) F64() *Buffer[float64] { return &v.f64 }

// SampleFloat returns frame f of channel c scaled to nominal [-1, 1] using
// the active width's full scale magnitude.
func (v *Variant) SampleFloat(c, f int) float64 {
	switch v.active {
	case U8:
		return (float64(v.u8.Sample(c, f)) - 128) / 128
	case I16:
		return float64(v.i16.Sample(c, f)) / I16.FullScale()
	case I24:
		return float64(v.i24.Sample(c, f)) / I24.FullScale()
	case I32:
		return float64(v.i32.Sample(c, f)) / I32.FullScale()
	case F32:
		return float64(v.f32.Sample(c, f))
	case F64:
		return v.f64.Sample(c, f)
	}
	return 0
}

// Raw returns frame f of channel c as an unscaled integer, the way
// go-audio's IntBuffer stores samples. Float samples are scaled to 32-bit.
func (v *Variant) Raw(c, f int) int {
	switch v.active {
	case U8:
		return int(v.u8.Sample(c, f))
	case I16:
		return int(v.i16.Sample(c, f))
	case I24:
		return int(v.i24.Sample(c, f))
	case I32:
		return int(v.i32.Sample(c, f))
	case F32, F64:
		return int(utils.FloatToInt(v.SampleFloat(c, f), I32.FullScale()))
	}
	return 0
}
