// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"

	"github.com/ik5/sinekit/chunk"
)

// ChunkInfo locates one top level RIFF chunk.
type ChunkInfo struct {
	ID chunk.Tag
	// Offset is the absolute position of the chunk tag.
	Offset int64
	// Size is the payload length including any pad byte.
	Size int64
}

func (c ChunkInfo) String() string {
	return fmt.Sprintf("%q offset=%d size=%d", c.ID.String(), c.Offset, c.Size)
}

// Chunks lists every top level chunk of a RIFF/WAVE stream in file order
// without interpreting them.
func Chunks(r io.Reader) ([]ChunkInfo, error) {
	p := riff.New(r)
	if err := p.ParseHeaders(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if chunk.Tag(p.Format) != TagWAVE {
		return nil, fmt.Errorf("%w: RIFF form %q", ErrNotWavFile, string(p.Format[:]))
	}

	var (
		out    []ChunkInfo
		offset int64 = 12
	)
	for {
		ch, err := p.NextChunk()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return out, fmt.Errorf("chunk at offset %d: %w", offset, err)
		}

		out = append(out, ChunkInfo{ID: chunk.Tag(ch.ID), Offset: offset, Size: int64(ch.Size)})
		ch.Drain()
		offset += 8 + int64(ch.Size)
	}

	return out, nil
}
