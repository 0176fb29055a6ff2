// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
)

// fileBuilder assembles RIFF streams chunk by chunk. The RIFF size is
// patched in by Bytes.
type fileBuilder struct {
	buf bytes.Buffer
}

func newFile(form string) *fileBuilder {
	b := &fileBuilder{}
	b.buf.WriteString("RIFF")
	b.buf.Write([]byte{0, 0, 0, 0})
	b.buf.WriteString(form)
	return b
}

func (b *fileBuilder) chunk(tag string, body []byte) *fileBuilder {
	b.buf.WriteString(tag)
	_ = binary.Write(&b.buf, binary.LittleEndian, uint32(len(body)))
	b.buf.Write(body)
	if len(body)%2 == 1 {
		b.buf.WriteByte(0)
	}
	return b
}

func (b *fileBuilder) raw(p ...byte) *fileBuilder {
	b.buf.Write(p)
	return b
}

func (b *fileBuilder) Bytes() []byte {
	out := bytes.Clone(b.buf.Bytes())
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))
	return out
}

func fmtBody(format, channels uint16, rate uint32, bits uint16, extra ...byte) []byte {
	align := channels * ((bits + 7) / 8)
	var buf bytes.Buffer
	for _, v := range []any{format, channels, rate, rate * uint32(align), align, bits} {
		_ = binary.Write(&buf, binary.LittleEndian, v)
	}
	buf.Write(extra)
	return buf.Bytes()
}

func u32(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

func pcm16(samples ...int16) []byte {
	var out []byte
	for _, s := range samples {
		out = binary.LittleEndian.AppendUint16(out, uint16(s))
	}
	return out
}

// canonicalPCM16 is what Header.Write produces for 16-bit PCM.
func canonicalPCM16(rate uint32, channels uint16, samples ...int16) []byte {
	return newFile("WAVE").
		chunk("fmt ", fmtBody(FormatPCM, channels, rate, 16)).
		chunk("data", pcm16(samples...)).
		Bytes()
}
