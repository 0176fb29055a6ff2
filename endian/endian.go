// SPDX-License-Identifier: EPL-2.0

// Package endian converts fixed-size words between host byte order and the
// byte order a container stores them in.
//
// WAV files are little-endian throughout and AIFF files are big-endian
// throughout. The chunk codecs read and write every multi-byte field through
// this package so that the same code works on any host.
package endian

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// Word is any 1, 2, 4 or 8 byte integer or IEEE float.
type Word interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

// Endian names the byte order of a file.
type Endian int

const (
	Little Endian = iota
	Big
)

// HostIsLittle reports whether the running host stores words little-endian.
var HostIsLittle = func() bool {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	return b[0] == 1
}()

func (e Endian) String() string {
	if e == Big {
		return "big-endian"
	}
	return "little-endian"
}

// Order returns the encoding/binary byte order matching e.
func (e Endian) Order() binary.ByteOrder {
	if e == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Swap reverses the bytes of v. Single byte words are returned unchanged.
func Swap[T Word](v T) T {
	var out any
	switch x := any(v).(type) {
	case int8, uint8:
		return v
	case int16:
		out = int16(bits.ReverseBytes16(uint16(x)))
	case uint16:
		out = bits.ReverseBytes16(x)
	case int32:
		out = int32(bits.ReverseBytes32(uint32(x)))
	case uint32:
		out = bits.ReverseBytes32(x)
	case int64:
		out = int64(bits.ReverseBytes64(uint64(x)))
	case uint64:
		out = bits.ReverseBytes64(x)
	case float32:
		out = math.Float32frombits(bits.ReverseBytes32(math.Float32bits(x)))
	case float64:
		out = math.Float64frombits(bits.ReverseBytes64(math.Float64bits(x)))
	}
	return out.(T)
}

// FromLE converts a little-endian file word to host order.
func FromLE[T Word](v T) T {
	if HostIsLittle {
		return v
	}
	return Swap(v)
}

// FromBE converts a big-endian file word to host order.
func FromBE[T Word](v T) T {
	if HostIsLittle {
		return Swap(v)
	}
	return v
}

// ToLE converts a host word to little-endian file order.
func ToLE[T Word](v T) T { return FromLE(v) }

// ToBE converts a host word to big-endian file order.
func ToBE[T Word](v T) T { return FromBE(v) }

// SwapIfNeeded converts a word read raw from a file stored in fileEndian
// order into host order.
func SwapIfNeeded[T Word](raw T, fileEndian Endian) T {
	if fileEndian == Little {
		return FromLE(raw)
	}
	return FromBE(raw)
}

// HostToFile converts a host word into fileEndian order, ready to be copied
// raw into a file.
func HostToFile[T Word](v T, fileEndian Endian) T {
	if fileEndian == Little {
		return ToLE(v)
	}
	return ToBE(v)
}
