// SPDX-License-Identifier: EPL-2.0

package audio

// Sample is the set of in-memory sample types. 24-bit and 32-bit integer
// samples both live in int32.
type Sample interface {
	uint8 | int16 | int32 | float32 | float64
}

// Buffer stores planar audio: Channels[c][f] is frame f of channel c.
// Every channel has the same length.
type Buffer[T Sample] struct {
	Channels [][]T
}

// Resize allocates zeroed storage for channels x frames samples.
func (b *Buffer[T]) Resize(channels, frames int) {
	b.Channels = make([][]T, channels)
	for c := range b.Channels {
		b.Channels[c] = make([]T, frames)
	}
}

// Clear releases the storage.
func (b *Buffer[T]) Clear() { b.Channels = nil }

// NumChannels returns the channel count.
func (b *Buffer[T]) NumChannels() int { return len(b.Channels) }

// NumFrames returns the frame count.
func (b *Buffer[T]) NumFrames() int {
	if len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

// Sample returns frame f of channel c.
func (b *Buffer[T]) Sample(c, f int) T { return b.Channels[c][f] }

// Set stores v at frame f of channel c.
func (b *Buffer[T]) Set(c, f int, v T) { b.Channels[c][f] = v }
