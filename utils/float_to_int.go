// SPDX-License-Identifier: EPL-2.0

package utils

import "cmp"

// Clamp limits x to [lo, hi].
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

// FloatToInt clamps x to [-1, 1], scales it by fullScale and truncates
// toward zero. NaN maps to 0.
func FloatToInt[T Float](x T, fullScale float64) int64 {
	if x != x {
		return 0
	}
	return int64(float64(Clamp(x, -1, 1)) * fullScale)
}

// Float32ToInt16 maps a normalised sample to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	return int16(FloatToInt(x, 32767))
}
