// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"

	"github.com/ik5/sinekit/ieee80"
)

// formBuilder assembles FORM streams. The FORM size is patched in by
// Bytes.
type formBuilder struct {
	buf bytes.Buffer
}

func newForm(formType string) *formBuilder {
	b := &formBuilder{}
	b.buf.WriteString("FORM")
	b.buf.Write([]byte{0, 0, 0, 0})
	b.buf.WriteString(formType)
	return b
}

func (b *formBuilder) chunk(tag string, body []byte) *formBuilder {
	b.buf.WriteString(tag)
	_ = binary.Write(&b.buf, binary.BigEndian, uint32(len(body)))
	b.buf.Write(body)
	if len(body)%2 == 1 {
		b.buf.WriteByte(0)
	}
	return b
}

func (b *formBuilder) raw(p ...byte) *formBuilder {
	b.buf.Write(p)
	return b
}

func (b *formBuilder) Bytes() []byte {
	out := bytes.Clone(b.buf.Bytes())
	binary.BigEndian.PutUint32(out[4:8], uint32(len(out)-8))
	return out
}

func commBody(channels int16, frames uint32, bits int16, rate float64, ext ...byte) []byte {
	var buf bytes.Buffer
	for _, v := range []any{channels, frames, bits} {
		_ = binary.Write(&buf, binary.BigEndian, v)
	}
	buf.Write(ieee80.FromFloat64(rate).Bytes())
	buf.Write(ext)
	return buf.Bytes()
}

func ssndBody(offset uint32, samples []byte) []byte {
	out := binary.BigEndian.AppendUint32(nil, offset)
	out = binary.BigEndian.AppendUint32(out, 0)
	out = append(out, make([]byte, offset)...)
	return append(out, samples...)
}

func be16(samples ...int16) []byte {
	var out []byte
	for _, s := range samples {
		out = binary.BigEndian.AppendUint16(out, uint16(s))
	}
	return out
}
