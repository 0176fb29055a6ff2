// SPDX-License-Identifier: EPL-2.0

package ieee80

import (
	"fmt"
	"math/bits"
)

// Float is an 80-bit extended value that supports arithmetic on its raw
// fields. Results are truncated, never rounded, and values whose exponent
// underflows collapse to zero.
type Float struct {
	raw Extended
}

// NewFloat converts x to a Float.
func NewFloat(x float64) Float { return Float{raw: FromFloat64(x)} }

// FloatFromExtended wraps an already encoded value.
func FloatFromExtended(e Extended) Float { return Float{raw: e} }

// Extended returns the bit pattern of f.
func (f Float) Extended() Extended { return f.raw }

// Bytes returns the big-endian encoding of f.
func (f Float) Bytes() []byte { return f.raw.Bytes() }

// Float64 converts f to the nearest float64.
func (f Float) Float64() float64 { return f.raw.Float64() }

// IsZero reports whether f has a zero exponent and mantissa.
func (f Float) IsZero() bool {
	_, exp, mant := f.raw.parts()
	return exp == 0 && mant == 0
}

// Neg returns -f.
func (f Float) Neg() Float {
	if f.IsZero() {
		return f
	}
	f.raw[0] ^= 0x80
	return f
}

// Add returns f + g.
//
// The operand with the smaller exponent has its mantissa shifted right by the
// exponent difference. Mantissas are then added when the signs match, or the
// smaller is subtracted from the larger otherwise, and the result is shifted
// left until bit 63 is set again.
func (f Float) Add(g Float) Float {
	if f.IsZero() {
		return g
	}
	if g.IsZero() {
		return f
	}

	signA, expA, mantA := f.raw.parts()
	signB, expB, mantB := g.raw.parts()
	mantA |= integerBit
	mantB |= integerBit

	var exp int
	if expA >= expB {
		mantB >>= expA - expB
		exp = int(expA)
	} else {
		mantA >>= expB - expA
		exp = int(expB)
	}

	var (
		mant uint64
		sign bool
	)

	if signA == signB {
		var carry uint64
		mant, carry = bits.Add64(mantA, mantB, 0)
		sign = signA
		if carry != 0 {
			mant = mant>>1 | integerBit
			exp++
		}
	} else {
		switch {
		case mantA > mantB:
			mant = mantA - mantB
			sign = signA
		case mantB > mantA:
			mant = mantB - mantA
			sign = signB
		default:
			return Float{}
		}
	}

	shift := bits.LeadingZeros64(mant)
	mant <<= shift
	exp -= shift

	if exp <= 0 {
		return Float{}
	}
	if exp >= maxExponent {
		return Float{raw: pack(sign, maxExponent, integerBit)}
	}

	return Float{raw: pack(sign, uint16(exp), mant)}
}

// Sub returns f - g.
func (f Float) Sub(g Float) Float { return f.Add(g.Neg()) }

// String prints the value followed by the raw bytes, e.g. "44100 (0x400EAC44000000000000)".
func (f Float) String() string {
	return fmt.Sprintf("%g (0x%X)", f.Float64(), f.raw[:])
}
