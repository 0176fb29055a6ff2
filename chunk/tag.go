// SPDX-License-Identifier: EPL-2.0

package chunk

// Tag is a four character chunk identifier.
type Tag [4]byte

// NewTag builds a Tag from the first four bytes of s, padding with spaces.
func NewTag(s string) Tag {
	t := Tag{' ', ' ', ' ', ' '}
	copy(t[:], s)
	return t
}

func (t Tag) String() string { return string(t[:]) }
