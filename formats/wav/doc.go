// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE containers.
//
// # Chunks
//
// A WAV file is a RIFF container holding, in this package's terms:
//   - RIFF: tag, size, form type "WAVE"
//   - fmt: sample layout (format code, channels, rate, bit depth)
//   - fact: frame count, required only when the data is float
//   - data: interleaved little-endian samples
//
// Header.Read finds these with a chunk scanner that steps one byte at a
// time over anything it does not recognise, so LIST, bext and junk bytes
// between chunks are tolerated. A second copy of a chunk is an error:
//
//	var h wav.Header
//	payload, err := h.Read(chunk.NewReader(f), sink)
//	if errors.Is(err, chunk.ErrDuplicateChunk) {
//	    // refuse to guess which fmt is right
//	}
//
// Header.Decode turns the payload into an audio.Variant. 8, 16, 24 and
// 32-bit PCM, 32 and 64-bit float, WAVE_FORMAT_EXTENSIBLE wrappers of
// those, and 8-bit A-law and µ-law (expanded to 16-bit) are accepted.
//
// # Writing
//
// Header.Update recomputes every size and rate field for a buffer and
// Header.Write emits RIFF, fmt, fact (float only) and data:
//
//	h.Update(audio.I24, 96000, 2, frames)
//	err := h.Write(out, payload, nil)
//
// WritePCM16 is a shortcut for interleaved int16 samples.
//
// # Streaming
//
// Decoder implements audio.Decoder. It parses the whole file and serves
// the samples as float32 in [-1, 1]:
//
//	source, err := wav.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Inspection
//
// Chunks lists every top level chunk with its offset and size without
// decoding anything, which helps when a file fails to parse.
package wav
