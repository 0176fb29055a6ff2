// SPDX-License-Identifier: EPL-2.0

package chunk

import "errors"

var (
	// ErrDuplicateChunk is returned when a mandatory chunk appears twice.
	ErrDuplicateChunk = errors.New("duplicate mandatory chunk")

	// ErrMissingChunk is returned when the stream ends before every
	// mandatory chunk was found.
	ErrMissingChunk = errors.New("missing mandatory chunk")

	// ErrMalformedChunk is returned when a chunk's declared size does not
	// agree with its fields or with the bytes available.
	ErrMalformedChunk = errors.New("malformed chunk")
)
