// SPDX-License-Identifier: EPL-2.0

package ieee80

import (
	"strings"
	"testing"
)

func TestFloat_Add(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"simple", 1.5, 2.25, 3.75},
		{"carry", 1.5, 1.5, 3},
		{"rates", 44100, 44100, 88200},
		{"mixed signs", -3, 5, 2},
		{"mixed signs negative result", 3, -5, -2},
		{"cancel", 7.25, -7.25, 0},
		{"zero left", 0, 12.5, 12.5},
		{"zero right", 12.5, 0, 12.5},
		{"tiny addend is lost", 1e30, 1, 1e30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewFloat(tt.a).Add(NewFloat(tt.b)).Float64()
			if got != tt.want {
				t.Errorf("%v + %v = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFloat_Sub(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want float64
	}{
		{44100, 100, 44000},
		{1, 1, 0},
		{2, 3, -1},
		{-2, -3, 1},
		{192000, 96000, 96000},
	}

	for _, tt := range tests {
		got := NewFloat(tt.a).Sub(NewFloat(tt.b)).Float64()
		if got != tt.want {
			t.Errorf("%v - %v = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFloat_ZeroIsAllZeroBytes(t *testing.T) {
	t.Parallel()

	z := NewFloat(5).Sub(NewFloat(5))
	if !z.IsZero() {
		t.Fatalf("5 - 5 is not zero: %v", z)
	}
	for i, b := range z.Bytes() {
		if b != 0 {
			t.Errorf("byte %d = %#x, want 0", i, b)
		}
	}
}

func TestFloat_Neg(t *testing.T) {
	t.Parallel()

	if got := NewFloat(8000).Neg().Float64(); got != -8000 {
		t.Errorf("Neg(8000) = %v", got)
	}
	if !NewFloat(0).Neg().IsZero() {
		t.Error("Neg(0) is not zero")
	}
}

func TestFloat_String(t *testing.T) {
	t.Parallel()

	s := NewFloat(44100).String()
	if !strings.HasPrefix(s, "44100 (0x400EAC44") {
		t.Errorf("String() = %q", s)
	}
}

func TestFloat_ExtendedInterop(t *testing.T) {
	t.Parallel()

	e := FromFloat64(96000)
	f := FloatFromExtended(e)
	if f.Extended() != e {
		t.Error("Extended() does not return the wrapped bits")
	}
	if f.Float64() != 96000 {
		t.Errorf("Float64() = %v, want 96000", f.Float64())
	}
}
