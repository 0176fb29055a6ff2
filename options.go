// SPDX-License-Identifier: EPL-2.0

package sinekit

import (
	"github.com/ik5/sinekit/audio"
	"github.com/ik5/sinekit/chunk"
)

// Option configures a Session.
type Option func(*Session)

// WithSink routes container parse and write events to sink.
func WithSink(sink chunk.Sink) Option {
	return func(s *Session) { s.sink = chunk.OrNop(sink) }
}

// WithResampleOptions sets the interpolation used by ToSampleRate.
func WithResampleOptions(opts audio.ResampleOptions) Option {
	return func(s *Session) { s.resample = opts }
}
