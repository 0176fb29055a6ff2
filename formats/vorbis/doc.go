// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with
// github.com/jfreymuth/oggvorbis.
//
// The decoder already produces interleaved float32 values, so the source
// only checks that reads end on a frame boundary and clamps the small
// overshoots vorbis synthesis can produce.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	v, err := audio.ReadAll(src)
//
// Vorbis is decode only.
package vorbis
