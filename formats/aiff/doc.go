// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF and AIFC containers.
//
// Everything in an AIFF file is big-endian:
//   - FORM: tag, size, form type "AIFF" or "AIFC"
//   - COMM: channels, frame count, bit depth and an 80-bit extended float
//     sample rate, followed in AIFC files by a compression type and a
//     Pascal string name
//   - SSND: offset, block size and the interleaved samples
//
// Header.Read locates the three chunks with a scanner that steps one byte
// at a time over unknown data, so MARK, INST, COMT and similar chunks are
// skipped. A repeated COMM or SSND is an error rather than a guess.
//
// Uncompressed PCM of 8 to 32 bits and AIFC "NONE", "twos", "sowt"
// (little-endian), "fl32" and "fl64" are decoded. Header.Update writes
// integer data as AIFF and float data as AIFC:
//
//	var h aiff.Header
//	h.Update(audio.F32, 44100, 2, frames)
//	payload, _ := h.Encode(v)
//	err := h.Write(out, payload, nil)
//
// Decoder implements audio.Decoder over the same parser:
//
//	source, err := aiff.Decoder{}.Decode(file)
package aiff
