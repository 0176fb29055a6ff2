// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"strings"
)

// Window is a tapering function applied to the sinc kernel.
type Window int

const (
	Rectangular Window = iota
	Hamming
	Hanning
	Blackman
	Kaiser
)

// KaiserBeta is the Kaiser window shape parameter.
const KaiserBeta = 10.0

var windowNames = []string{"rectangular", "hamming", "hanning", "blackman", "kaiser"}

func (w Window) String() string {
	if int(w) >= 0 && int(w) < len(windowNames) {
		return windowNames[w]
	}
	return fmt.Sprintf("Window(%d)", int(w))
}

// ParseWindow maps a window name, case insensitive, to a Window.
func ParseWindow(name string) (Window, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range windowNames {
		if n == name {
			return Window(i), nil
		}
	}
	if name == "hann" {
		return Hanning, nil
	}
	return Rectangular, fmt.Errorf("%w: %q", ErrInvalidWindow, name)
}

// Coefficients returns the size window weights, index 0 being the left
// edge. size must be odd and positive.
func (w Window) Coefficients(size int) ([]float64, error) {
	if size <= 0 || size%2 == 0 {
		return nil, fmt.Errorf("%w: size %d must be odd and positive", ErrInvalidWindow, size)
	}

	out := make([]float64, size)
	if size == 1 {
		out[0] = 1
		return out, nil
	}

	m := float64(size - 1)
	i0Beta := BesselI0(KaiserBeta)

	for n := range out {
		x := float64(n)
		switch w {
		case Rectangular:
			out[n] = 1
		case Hamming:
			out[n] = 0.54 - 0.46*math.Cos(2*math.Pi*x/m)
		case Hanning:
			out[n] = 0.5 - 0.5*math.Cos(2*math.Pi*x/m)
		case Blackman:
			out[n] = 0.42 - 0.5*math.Cos(2*math.Pi*x/m) + 0.08*math.Cos(4*math.Pi*x/m)
		case Kaiser:
			r := 2*x/m - 1
			out[n] = BesselI0(KaiserBeta*math.Sqrt(1-r*r)) / i0Beta
		default:
			return nil, fmt.Errorf("%w: %s", ErrInvalidWindow, w)
		}
	}
	return out, nil
}

// BesselI0 evaluates the zeroth order modified Bessel function of the first
// kind by its power series.
func BesselI0(x float64) float64 {
	sum, term := 1.0, 1.0
	half := x / 2
	for k := 1; k < 200; k++ {
		f := half / float64(k)
		term *= f * f
		sum += term
		if term < sum*1e-17 {
			break
		}
	}
	return sum
}

// NormalizedSinc returns sin(pi x)/(pi x), with NormalizedSinc(0) = 1.
func NormalizedSinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}
