// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
)

func TestConvert_I16ToI24IsExact(t *testing.T) {
	t.Parallel()

	in := []int16{0, 1, -1, 32767, -32768, 1234}
	v := NewVariant(I16, 1, len(in))
	copy(v.I16().Channels[0], in)

	if err := Convert(v, I24); err != nil {
		t.Fatalf("Convert(I24) error = %v", err)
	}
	if v.Active() != I24 || v.I16().NumChannels() != 0 {
		t.Fatalf("after Convert active = %s, i16 channels = %d", v.Active(), v.I16().NumChannels())
	}
	for f, s := range in {
		if got, want := v.I24().Sample(0, f), int32(s)<<8; got != want {
			t.Errorf("sample[%d] = %d, want %d", f, got, want)
		}
	}

	if err := Convert(v, I16); err != nil {
		t.Fatalf("Convert(I16) error = %v", err)
	}
	for f, s := range in {
		if got := v.I16().Sample(0, f); got != s {
			t.Errorf("round trip sample[%d] = %d, want %d", f, got, s)
		}
	}
}

func TestConvert_I24ToI16DropsLowByte(t *testing.T) {
	t.Parallel()

	in := []int32{0x123456, -0x123456, 0xFF, -1}
	v := NewVariant(I24, 1, len(in))
	copy(v.I24().Channels[0], in)

	if err := Convert(v, I16); err != nil {
		t.Fatalf("Convert(I16) error = %v", err)
	}
	if err := Convert(v, I24); err != nil {
		t.Fatalf("Convert(I24) error = %v", err)
	}

	for f, s := range in {
		got := v.I24().Sample(0, f)
		if got&0xFF != 0 {
			t.Errorf("sample[%d] = %#x, low byte not cleared", f, got)
		}
		if want := (s >> 8) << 8; got != want {
			t.Errorf("sample[%d] = %d, want %d", f, got, want)
		}
	}
}

func TestConvert_IntToFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    BitType
		target BitType
		set    func(v *Variant)
		want   float64
	}{
		{"i16 to f32", I16, F32, func(v *Variant) { v.I16().Set(0, 0, 32767) }, 1},
		{"i16 to f64", I16, F64, func(v *Variant) { v.I16().Set(0, 0, -16384) }, -16384.0 / 32767},
		{"i24 to f64", I24, F64, func(v *Variant) { v.I24().Set(0, 0, 8388607) }, 1},
		{"i24 to f32", I24, F32, func(v *Variant) { v.I24().Set(0, 0, -8388607) }, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := NewVariant(tt.src, 1, 1)
			tt.set(v)
			if err := Convert(v, tt.target); err != nil {
				t.Fatalf("Convert() error = %v", err)
			}

			got := v.SampleFloat(0, 0)
			tol := 1e-12
			if tt.target == F32 {
				tol = 1e-7
			}
			if math.Abs(got-tt.want) > tol {
				t.Errorf("sample = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConvert_FloatToIntClampsAndTruncates(t *testing.T) {
	t.Parallel()

	in := []float64{0, 0.5, -0.5, 1.5, -3, 0.99999}
	want16 := []int16{0, 16383, -16383, 32767, -32767, 32766}
	want24 := []int32{0, 4194303, -4194303, 8388607, -8388607, 8388523}

	v := NewVariant(F64, 1, len(in))
	copy(v.F64().Channels[0], in)
	if err := Convert(v, I16); err != nil {
		t.Fatalf("Convert(I16) error = %v", err)
	}
	for f, w := range want16 {
		if got := v.I16().Sample(0, f); got != w {
			t.Errorf("i16 sample[%d] = %d, want %d", f, got, w)
		}
	}

	v = NewVariant(F64, 1, len(in))
	copy(v.F64().Channels[0], in)
	if err := Convert(v, I24); err != nil {
		t.Fatalf("Convert(I24) error = %v", err)
	}
	for f, w := range want24 {
		if got := v.I24().Sample(0, f); got != w {
			t.Errorf("i24 sample[%d] = %d, want %d", f, got, w)
		}
	}
}

func TestConvert_FloatWidths(t *testing.T) {
	t.Parallel()

	v := NewVariant(F64, 2, 1)
	v.F64().Set(0, 0, 0.25)
	v.F64().Set(1, 0, 7)

	if err := Convert(v, F32); err != nil {
		t.Fatalf("Convert(F32) error = %v", err)
	}
	if v.F32().Sample(0, 0) != 0.25 || v.F32().Sample(1, 0) != 7 {
		t.Errorf("F32 samples = %v, want [0.25 7] unscaled", v.F32().Channels)
	}
	if v.NumChannels() != 2 {
		t.Errorf("NumChannels() = %d, want 2", v.NumChannels())
	}

	if err := Convert(v, F64); err != nil {
		t.Fatalf("Convert(F64) error = %v", err)
	}
	if v.F64().Sample(1, 0) != 7 {
		t.Errorf("F64 sample = %v, want 7", v.F64().Sample(1, 0))
	}
}

func TestConvert_Identity(t *testing.T) {
	t.Parallel()

	v := NewVariant(U8, 1, 2)
	v.U8().Set(0, 1, 9)
	if err := Convert(v, U8); err != nil {
		t.Fatalf("Convert(U8, U8) error = %v", err)
	}
	if v.U8().Sample(0, 1) != 9 {
		t.Error("identity conversion changed samples")
	}
}

func TestConvert_Unsupported(t *testing.T) {
	t.Parallel()

	tests := []struct{ src, target BitType }{
		{I16, U8},
		{I16, I32},
		{U8, I16},
		{I32, F32},
		{Undefined, F32},
	}

	for _, tt := range tests {
		v := NewVariant(tt.src, 1, 1)
		err := Convert(v, tt.target)
		if !errors.Is(err, ErrUnsupportedConversion) {
			t.Errorf("Convert(%s -> %s) error = %v, want ErrUnsupportedConversion", tt.src, tt.target, err)
		}
		if v.Active() != tt.src {
			t.Errorf("failed Convert(%s -> %s) changed the active width to %s", tt.src, tt.target, v.Active())
		}
	}
}
