// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// BitType names one of the supported sample widths.
type BitType int

const (
	Undefined BitType = iota
	U8
	I16
	I24
	I32
	F32
	F64
)

var bitTypeNames = map[BitType]string{
	Undefined: "undefined",
	U8:        "8-bit unsigned",
	I16:       "16-bit integer",
	I24:       "24-bit integer",
	I32:       "32-bit integer",
	F32:       "32-bit float",
	F64:       "64-bit float",
}

func (bt BitType) String() string {
	if name, ok := bitTypeNames[bt]; ok {
		return name
	}
	return fmt.Sprintf("BitType(%d)", int(bt))
}

// Bits returns the container bit depth (8, 16, 24, 32 or 64).
func (bt BitType) Bits() int {
	switch bt {
	case U8:
		return 8
	case I16:
		return 16
	case I24:
		return 24
	case I32, F32:
		return 32
	case F64:
		return 64
	}
	return 0
}

// Bytes returns how many bytes one sample takes in a file. 24-bit samples
// are packed into 3 bytes.
func (bt BitType) Bytes() int { return bt.Bits() / 8 }

// IsFloat reports whether samples are IEEE floats.
func (bt BitType) IsFloat() bool { return bt == F32 || bt == F64 }

// FullScale is the positive magnitude that maps to 1.0 when converting
// integer samples to float. Float types return 1.
func (bt BitType) FullScale() float64 {
	switch bt {
	case U8:
		return 127
	case I16:
		return 32767
	case I24:
		return 8388607
	case I32:
		return 2147483647
	}
	return 1
}

// bounds returns the representable sample range.
func (bt BitType) bounds() (lo, hi float64) {
	switch bt {
	case U8:
		return 0, 255
	case I16:
		return -32768, 32767
	case I24:
		return -8388608, 8388607
	case I32:
		return -2147483648, 2147483647
	}
	return -1, 1
}

// BitTypeFor maps a container's bit depth and float flag to a BitType.
func BitTypeFor(bits int, float bool) (BitType, error) {
	if float {
		switch bits {
		case 32:
			return F32, nil
		case 64:
			return F64, nil
		}
		return Undefined, fmt.Errorf("%w: %d-bit float", ErrUnsupportedBitDepth, bits)
	}

	switch bits {
	case 8:
		return U8, nil
	case 16:
		return I16, nil
	case 24:
		return I24, nil
	case 32:
		return I32, nil
	}
	return Undefined, fmt.Errorf("%w: %d-bit integer", ErrUnsupportedBitDepth, bits)
}
