// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

// fillCubic upsamples orig by scale the way the resampler does: originals
// land on multiples of scale and missing neighbours repeat the edge sample.
func fillCubic(orig []float64, scale int) []float64 {
	at := func(i int) float64 { return orig[Clamp(i, 0, len(orig)-1)] }

	out := make([]float64, len(orig)*scale)
	for j := range orig {
		out[j*scale] = orig[j]
		for k := 1; k < scale; k++ {
			out[j*scale+k] = CubicInterpolate(at(j-1), at(j), at(j+1), at(j+2), float64(k)/float64(scale))
		}
	}
	return out
}

func TestCubicInterpolate_Knots(t *testing.T) {
	t.Parallel()

	// The curve passes through y1 at x=0 and y2 at x=1 whatever the
	// outer neighbours are.
	for _, y := range [][4]float64{{0, 1, 0, -1}, {5, -2, 7, 3}, {0, 0, 1, 1}} {
		if got := CubicInterpolate(y[0], y[1], y[2], y[3], 0); got != y[1] {
			t.Errorf("CubicInterpolate(%v, x=0) = %v, want %v", y, got, y[1])
		}
		if got := CubicInterpolate(y[0], y[1], y[2], y[3], 1); math.Abs(got-y[2]) > 1e-12 {
			t.Errorf("CubicInterpolate(%v, x=1) = %v, want %v", y, got, y[2])
		}
	}
}

func TestCubicInterpolate_FractionalPositions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		y     [4]float64
		scale int
		want  []float64 // at k/scale for k = 1..scale-1
	}{
		{name: "step by 2", y: [4]float64{0, 0, 1, 1}, scale: 2, want: []float64{0.5}},
		{name: "step by 4", y: [4]float64{0, 0, 1, 1}, scale: 4, want: []float64{0.203125, 0.5, 0.796875}},
		{name: "peak by 2", y: [4]float64{0, 1, 0, -1}, scale: 2, want: []float64{0.625}},
		{name: "ramp by 4", y: [4]float64{-3, -1, 1, 3}, scale: 4, want: []float64{-0.5, 0, 0.5}},
		{name: "constant by 3", y: [4]float64{0.25, 0.25, 0.25, 0.25}, scale: 3, want: []float64{0.25, 0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for k := 1; k < tt.scale; k++ {
				x := float64(k) / float64(tt.scale)
				got := CubicInterpolate(tt.y[0], tt.y[1], tt.y[2], tt.y[3], x)
				if math.Abs(got-tt.want[k-1]) > 1e-12 {
					t.Errorf("at %d/%d = %v, want %v", k, tt.scale, got, tt.want[k-1])
				}
			}
		})
	}
}

func TestCubicInterpolate_EdgeDuplication(t *testing.T) {
	t.Parallel()

	out := fillCubic([]float64{0, 1, 1, 0}, 2)
	want := []float64{
		0, 0.5, // head: y0 repeats the first sample
		1, 1.125,
		1, 0.5,
		0, -0.0625, // tail: y2 and y3 repeat the last sample
	}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestCubicInterpolate_SingleSample(t *testing.T) {
	t.Parallel()

	// With one original every neighbour is the edge, so the gaps hold it.
	for i, v := range fillCubic([]float64{-0.75}, 4) {
		if v != -0.75 {
			t.Errorf("out[%d] = %v, want -0.75", i, v)
		}
	}
}

func TestCubicInterpolate_Float32MatchesFloat64(t *testing.T) {
	t.Parallel()

	y := [4]float64{0.1, -0.4, 0.9, 0.2}
	for k := 1; k < 5; k++ {
		x := float64(k) / 5
		want := CubicInterpolate(y[0], y[1], y[2], y[3], x)
		got := CubicInterpolate(float32(y[0]), float32(y[1]), float32(y[2]), float32(y[3]), float32(x))
		if math.Abs(float64(got)-want) > 1e-6 {
			t.Errorf("float32 at %d/5 = %v, float64 = %v", k, got, want)
		}
	}
}

func TestLinearInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, x float64
		want    float64
	}{
		{a: -1, b: 1, x: 0, want: -1},
		{a: -1, b: 1, x: 0.25, want: -0.5},
		{a: -1, b: 1, x: 1, want: 1},
		{a: 0.5, b: 0.5, x: 2.0 / 3, want: 0.5},
		{a: 8388607, b: -8388607, x: 0.5, want: 0},
	}

	for _, tt := range tests {
		if got := LinearInterpolate(tt.a, tt.b, tt.x); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("LinearInterpolate(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.x, got, tt.want)
		}
	}
	if got := LinearInterpolate[float32](0, 1, 0.75); got != 0.75 {
		t.Errorf("LinearInterpolate[float32](0, 1, 0.75) = %v, want 0.75", got)
	}
}
