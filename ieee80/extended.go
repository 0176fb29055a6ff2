// SPDX-License-Identifier: EPL-2.0

// Package ieee80 implements the 80-bit IEEE-754 extended precision format
// used by AIFF for the COMM chunk sample rate.
//
// Two representations are provided. Extended is a plain bit-pattern codec
// that converts between float64 and the 10 byte on-disk layout. Float keeps
// the same 10 bytes but also supports addition and subtraction directly on
// the sign, exponent and 64-bit mantissa.
//
// On disk the value is big-endian: a 16-bit word holding the sign bit and the
// 15-bit exponent (bias 16383), followed by a 64-bit mantissa whose top bit is
// the explicit integer bit.
package ieee80

import (
	"encoding/binary"
	"math"
)

const (
	// Size is the encoded length in bytes.
	Size = 10

	bias        = 16383
	maxExponent = 0x7FFF
	integerBit  = uint64(1) << 63
)

// Extended is an 80-bit extended precision value in its big-endian on-disk
// byte layout.
type Extended [Size]byte

// FromFloat64 encodes x. Zero encodes as ten zero bytes.
func FromFloat64(x float64) Extended {
	var e Extended

	switch {
	case x == 0:
		return e
	case math.IsInf(x, 0):
		return pack(math.Signbit(x), maxExponent, integerBit)
	case math.IsNaN(x):
		return pack(false, maxExponent, integerBit|integerBit>>1)
	}

	sign := math.Signbit(x)
	frac, exp := math.Frexp(math.Abs(x)) // 0.5 <= frac < 1

	// move frac into [1,2) so its leading one lands on bit 63
	frac *= 2
	exp--

	mant := uint64(math.Ldexp(frac, 63))

	return pack(sign, uint16(exp+bias), mant)
}

// Float64 decodes e. Precision beyond the 53 bits of a float64 is rounded
// away.
func (e Extended) Float64() float64 {
	sign, exp, mant := e.parts()

	if exp == 0 && mant == 0 {
		return 0
	}

	if exp == maxExponent {
		if mant<<1 == 0 {
			if sign {
				return math.Inf(-1)
			}
			return math.Inf(1)
		}
		return math.NaN()
	}

	v := math.Ldexp(float64(mant), int(exp)-bias-63)
	if sign {
		return -v
	}
	return v
}

// Bytes returns the encoded form.
func (e Extended) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, e[:])
	return out
}

// ParseBytes reads an encoded value from the first Size bytes of b.
func ParseBytes(b []byte) (Extended, bool) {
	var e Extended
	if len(b) < Size {
		return e, false
	}
	copy(e[:], b)
	return e, true
}

func (e Extended) parts() (sign bool, exp uint16, mant uint64) {
	se := binary.BigEndian.Uint16(e[0:2])
	return se&0x8000 != 0, se & maxExponent, binary.BigEndian.Uint64(e[2:])
}

func pack(sign bool, exp uint16, mant uint64) Extended {
	var e Extended
	se := exp & maxExponent
	if sign {
		se |= 0x8000
	}
	binary.BigEndian.PutUint16(e[0:2], se)
	binary.BigEndian.PutUint64(e[2:], mant)
	return e
}
