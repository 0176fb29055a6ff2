// SPDX-License-Identifier: EPL-2.0

package chunk

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/sinekit/endian"
)

// Writer writes container fields and remembers the first error.
type Writer struct {
	w      io.Writer
	offset int64
	err    error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Write implements io.Writer. After a failure every call is a no-op.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.offset += int64(n)
	if err != nil {
		w.err = fmt.Errorf("write at offset %d: %w", w.offset, err)
	}
	return n, w.err
}

// Tag writes t.
func (w *Writer) Tag(t Tag) { _, _ = w.Write(t[:]) }

// Bytes writes b unchanged.
func (w *Writer) Bytes(b []byte) { _, _ = w.Write(b) }

// Pad writes a zero byte when size is odd.
func (w *Writer) Pad(size int64) {
	if size%2 == 1 {
		w.Bytes([]byte{0})
	}
}

// Offset returns the number of bytes written.
func (w *Writer) Offset() int64 { return w.offset }

// Err returns the first write error.
func (w *Writer) Err() error { return w.err }

// WriteWord writes v in e byte order.
func WriteWord[T endian.Word](w *Writer, v T, e endian.Endian) {
	_ = binary.Write(w, binary.NativeEndian, endian.HostToFile(v, e))
}
