// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"strings"

	"github.com/ik5/sinekit/utils"
)

// Interpolation selects how Upsample fills the gaps between original samples.
type Interpolation int

const (
	Linear Interpolation = iota
	Sinc
	Cubic
)

// DefaultWindowSize is the sinc kernel length used when
// ResampleOptions.WindowSize is zero.
const DefaultWindowSize = 33

var interpolationNames = []string{"linear", "sinc", "cubic"}

func (m Interpolation) String() string {
	if int(m) >= 0 && int(m) < len(interpolationNames) {
		return interpolationNames[m]
	}
	return fmt.Sprintf("Interpolation(%d)", int(m))
}

// ParseInterpolation maps a method name, case insensitive, to an
// Interpolation.
func ParseInterpolation(name string) (Interpolation, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range interpolationNames {
		if n == name {
			return Interpolation(i), nil
		}
	}
	return Linear, fmt.Errorf("unknown interpolation %q", name)
}

// ResampleOptions configures Upsample. The zero value is linear
// interpolation.
type ResampleOptions struct {
	Method Interpolation
	// Window and WindowSize only apply to Sinc.
	Window     Window
	WindowSize int
}

// DefaultResampleOptions returns linear interpolation with a Kaiser window
// of DefaultWindowSize taps ready for when Method is switched to Sinc.
func DefaultResampleOptions() ResampleOptions {
	return ResampleOptions{
		Method:     Linear,
		Window:     Kaiser,
		WindowSize: DefaultWindowSize,
	}
}

// ScaleFor returns target/source when target is a whole multiple of source.
func ScaleFor(source, target int) (int, error) {
	if source <= 0 || target < source || target%source != 0 {
		return 0, fmt.Errorf("%w: %d Hz to %d Hz", ErrUnsupportedRatio, source, target)
	}
	return target / source, nil
}

// Upsample stretches every channel of v by scale. Original sample j lands at
// j*scale unchanged and the scale-1 samples after it are interpolated.
// Interpolated integer samples are rounded and clamped to their range,
// float samples are clamped to [-1, 1]. scale 1 leaves v untouched.
func Upsample(v *Variant, scale int, opts ResampleOptions) error {
	if scale < 1 {
		return fmt.Errorf("%w: scale %d", ErrUnsupportedRatio, scale)
	}
	if scale == 1 {
		return nil
	}
	if v.NumChannels() == 0 {
		return ErrNoChannels
	}

	fill, err := newGapFiller(scale, opts)
	if err != nil {
		return err
	}

	bt := v.Active()

	switch bt {
	case U8:
		v.u8 = upsample(v.U8(), scale, fill, bt)
	case I16:
		v.i16 = upsample(v.I16(), scale, fill, bt)
	case I24:
		v.i24 = upsample(v.I24(), scale, fill, bt)
	case I32:
		v.i32 = upsample(v.I32(), scale, fill, bt)
	case F32:
		v.f32 = upsample(v.F32(), scale, fill, bt)
	case F64:
		v.f64 = upsample(v.F64(), scale, fill, bt)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedBitDepth, v.Active())
	}
	return nil
}

// gapFiller writes every non multiple of scale index of out from orig.
// out has len(orig)*scale entries.
type gapFiller func(orig, out []float64)

func newGapFiller(scale int, opts ResampleOptions) (gapFiller, error) {
	switch opts.Method {
	case Linear:
		return linearFiller(scale), nil
	case Cubic:
		return cubicFiller(scale), nil
	case Sinc:
		size := opts.WindowSize
		if size == 0 {
			size = DefaultWindowSize
		}
		kernel, err := sincKernel(scale, opts.Window, size)
		if err != nil {
			return nil, err
		}
		return sincFiller(scale, kernel), nil
	}
	return nil, fmt.Errorf("unknown interpolation %s", opts.Method)
}

func upsample[T Sample](in *Buffer[T], scale int, fill gapFiller, bt BitType) Buffer[T] {
	out := Buffer[T]{Channels: make([][]T, len(in.Channels))}
	lo, hi := bt.bounds()

	for c, samples := range in.Channels {
		orig := make([]float64, len(samples))
		for f, s := range samples {
			orig[f] = float64(s)
		}

		wide := make([]float64, len(samples)*scale)
		fill(orig, wide)

		dst := make([]T, len(wide))
		for i, x := range wide {
			if i%scale == 0 {
				dst[i] = samples[i/scale]
				continue
			}
			if !bt.IsFloat() {
				x = math.Round(x)
			}
			dst[i] = T(utils.Clamp(x, lo, hi))
		}
		out.Channels[c] = dst
	}
	return out
}

// linearFiller draws a straight line between neighbours. Samples after the
// last original hold its value.
func linearFiller(scale int) gapFiller {
	return func(orig, out []float64) {
		for j, a := range orig {
			b := a
			if j+1 < len(orig) {
				b = orig[j+1]
			}
			for k := 1; k < scale; k++ {
				out[j*scale+k] = utils.LinearInterpolate(a, b, float64(k)/float64(scale))
			}
		}
	}
}

// cubicFiller runs a Catmull-Rom spline through four neighbours, repeating
// the edge samples past either end.
func cubicFiller(scale int) gapFiller {
	return func(orig, out []float64) {
		at := func(i int) float64 {
			if i < 0 {
				i = 0
			}
			if i >= len(orig) {
				i = len(orig) - 1
			}
			return orig[i]
		}

		for j := range orig {
			y0, y1, y2, y3 := at(j-1), at(j), at(j+1), at(j+2)
			for k := 1; k < scale; k++ {
				out[j*scale+k] = utils.CubicInterpolate(y0, y1, y2, y3, float64(k)/float64(scale))
			}
		}
	}
}

// sincKernel returns size taps of sinc(k/scale) weighted by w, centred on
// index (size-1)/2.
func sincKernel(scale int, w Window, size int) ([]float64, error) {
	weights, err := w.Coefficients(size)
	if err != nil {
		return nil, err
	}

	h := (size - 1) / 2
	kernel := make([]float64, size)
	for i := range kernel {
		kernel[i] = NormalizedSinc(float64(i-h)/float64(scale)) * weights[i]
	}
	return kernel, nil
}

// sincFiller convolves the zero stuffed signal with kernel. Taps outside the
// signal count as zero.
func sincFiller(scale int, kernel []float64) gapFiller {
	h := (len(kernel) - 1) / 2

	return func(orig, out []float64) {
		n := len(out)
		for j := range n {
			if j%scale == 0 {
				out[j] = orig[j/scale]
				continue
			}

			var acc float64
			for k := -h; k <= h; k++ {
				i := j + k
				if i < 0 || i >= n || i%scale != 0 {
					continue
				}
				acc += kernel[k+h] * orig[i/scale]
			}
			out[j] = acc
		}
	}
}
