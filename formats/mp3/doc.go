// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG audio Layer III streams with
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved 16-bit little-endian stereo, so the
// source reports two channels whatever the stream carries. Samples are
// divided by 32767 and clamped, matching the integer to float mapping of
// the audio package.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	v, err := audio.ReadAll(src)
//
// MP3 is decode only. Drain the source into a session or an audio.Variant
// and write it as WAV or AIFF.
package mp3
