// SPDX-License-Identifier: EPL-2.0

package sinekit

import "errors"

var (
	// ErrUnknownExtension indicates a file name whose extension maps to no
	// container
	ErrUnknownExtension = errors.New("unknown file extension")

	// ErrEmptySession indicates an operation that needs samples on a
	// session that holds none
	ErrEmptySession = errors.New("session holds no audio")
)
