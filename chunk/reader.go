// SPDX-License-Identifier: EPL-2.0

package chunk

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sinekit/endian"
)

// maxPrealloc caps the up front allocation of Bytes.
const maxPrealloc = 64 << 10

// Reader is a buffered container reader with tag lookahead.
type Reader struct {
	br     *bufio.Reader
	offset int64
}

// NewReader wraps r. The stream is never rewound.
func NewReader(r io.Reader) *Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return &Reader{br: br}
	}
	return &Reader{br: bufio.NewReader(r)}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 { return r.offset }

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.br.Read(p)
	r.offset += int64(n)
	return n, err
}

// Peek returns the next four bytes as a Tag without consuming them.
func (r *Reader) Peek() (Tag, error) {
	var t Tag
	b, err := r.br.Peek(len(t))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return t, io.EOF
		}
		return t, fmt.Errorf("peek at offset %d: %w", r.offset, err)
	}
	copy(t[:], b)
	return t, nil
}

// Skip discards n bytes.
func (r *Reader) Skip(n int64) error {
	for n > 0 {
		step := n
		if step > 1<<30 {
			step = 1 << 30
		}
		d, err := r.br.Discard(int(step))
		r.offset += int64(d)
		n -= int64(d)
		if err != nil {
			return fmt.Errorf("skip %d bytes at offset %d: %w", n, r.offset, io.ErrUnexpectedEOF)
		}
	}
	return nil
}

// SkipPad consumes the pad byte that follows an odd sized chunk. A missing
// pad byte at the end of the stream is tolerated.
func (r *Reader) SkipPad(size int64) {
	if size%2 == 1 {
		if _, err := r.br.Peek(1); err == nil {
			_ = r.Skip(1)
		}
	}
}

// ReadTag consumes a Tag.
func (r *Reader) ReadTag() (Tag, error) {
	var t Tag
	if _, err := io.ReadFull(r, t[:]); err != nil {
		return t, fmt.Errorf("read tag at offset %d: %w", r.offset, err)
	}
	return t, nil
}

// Bytes consumes exactly n bytes. io.ErrUnexpectedEOF is returned when the
// stream holds fewer.
func (r *Reader) Bytes(n int64) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrMalformedChunk, n)
	}
	// The buffer grows with what the stream delivers, so a declared size
	// larger than the input never reaches the allocator.
	var buf bytes.Buffer
	buf.Grow(int(min(n, maxPrealloc)))
	got, err := io.CopyN(&buf, r, n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return buf.Bytes(), fmt.Errorf("read %d bytes at offset %d, got %d: %w", n, r.offset-got, got, err)
	}
	return buf.Bytes(), nil
}

// ReadWord reads one fixed size word stored in e byte order and returns it
// in host order.
func ReadWord[T endian.Word](r *Reader, e endian.Endian) (T, error) {
	var raw T
	if err := binary.Read(r, binary.NativeEndian, &raw); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return raw, fmt.Errorf("read %d byte word at offset %d: %w", binary.Size(raw), r.offset, err)
	}
	return endian.SwapIfNeeded(raw, e), nil
}
