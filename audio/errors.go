// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrShortPayload is returned when the sample payload holds fewer bytes
	// than the header declares.
	ErrShortPayload = errors.New("short PCM payload")

	// ErrUnsupportedBitDepth is returned for bit depths with no storage slot.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

	// ErrUnsupportedConversion is returned for width pairs with no
	// conversion rule.
	ErrUnsupportedConversion = errors.New("unsupported conversion")

	// ErrUnsupportedRatio is returned when the target rate is not an integer
	// multiple of the source rate.
	ErrUnsupportedRatio = errors.New("unsupported ratio")

	// ErrInvalidWindow is returned for an even or negative sinc window size
	// or an unknown window function.
	ErrInvalidWindow = errors.New("invalid interpolation window")

	// ErrNoChannels is returned when a buffer has no channels to work on.
	ErrNoChannels = errors.New("buffer has no channels")
)

// ErrUnknownFormat is returned by Registry.Open for unregistered keys.
var ErrUnknownFormat = errors.New("no decoder registered for format")
