// Package bitarray implements a fixed-size bit vector backed by 32-bit
// words, the storage substrate BVXLayer is built on.
package bitarray

import (
	"fmt"

	voxelcore "github.com/voxelcore/bvxcore"
	"github.com/voxelcore/bvxcore/voxelrt/bitops"
)

// ErrOutOfRange re-exports the engine-wide out-of-range sentinel so callers
// of this package can use errors.Is without importing the root package.
var ErrOutOfRange = voxelcore.ErrOutOfRange

// BitArray owns a contiguous sequence of N 32-bit words. Requests for N<=0
// silently default to 1 word: never construct a zero-capacity backing
// store.
type BitArray struct {
	words []uint32
}

// New allocates a BitArray with n words (n<=0 defaults to 1).
func New(n int) *BitArray {
	if n <= 0 {
		n = 1
	}
	return &BitArray{words: make([]uint32, n)}
}

// Len returns the number of 32-bit words backing the array.
func (b *BitArray) Len() int {
	return len(b.words)
}

// Words exposes the underlying word slice for bulk operations (BVXLayer's
// fill/empty of a whole voxel group operates directly on this slice).
func (b *BitArray) Words() []uint32 {
	return b.words
}

func (b *BitArray) locate(pos int) (word, bit int, err error) {
	if pos < 0 {
		return 0, 0, fmt.Errorf("bitarray: position %d: %w", pos, ErrOutOfRange)
	}
	word = pos >> 5
	bit = pos & 31
	if word >= len(b.words) {
		return 0, 0, fmt.Errorf("bitarray: position %d (word %d) exceeds length %d: %w", pos, word, len(b.words), ErrOutOfRange)
	}
	return word, bit, nil
}

// BitAt returns the bit at pos, or an error if pos is out of range.
func (b *BitArray) BitAt(pos int) (uint32, error) {
	w, p, err := b.locate(pos)
	if err != nil {
		return 0, err
	}
	return bitops.BitAt(b.words[w], uint(p)), nil
}

// BitInvAt returns the complement of BitAt.
func (b *BitArray) BitInvAt(pos int) (uint32, error) {
	v, err := b.BitAt(pos)
	if err != nil {
		return 0, err
	}
	return 1 - v, nil
}

// SetBitAt sets the bit at pos to 1.
func (b *BitArray) SetBitAt(pos int) error {
	w, p, err := b.locate(pos)
	if err != nil {
		return err
	}
	b.words[w] = bitops.SetBitAt(b.words[w], uint(p))
	return nil
}

// UnsetBitAt sets the bit at pos to 0.
func (b *BitArray) UnsetBitAt(pos int) error {
	w, p, err := b.locate(pos)
	if err != nil {
		return err
	}
	b.words[w] = bitops.UnsetBitAt(b.words[w], uint(p))
	return nil
}

// ToggleBitAt flips the bit at pos.
func (b *BitArray) ToggleBitAt(pos int) error {
	w, p, err := b.locate(pos)
	if err != nil {
		return err
	}
	b.words[w] = bitops.ToggleBitAt(b.words[w], uint(p))
	return nil
}

// SetBit sets the bit at pos to the value of bit (0 or 1).
func (b *BitArray) SetBit(pos int, bit uint32) error {
	w, p, err := b.locate(pos)
	if err != nil {
		return err
	}
	b.words[w] = bitops.SetBit(b.words[w], uint(p), bit)
	return nil
}

// PopCount returns the total number of set bits across every backing word.
func (b *BitArray) PopCount() int {
	total := 0
	for _, w := range b.words {
		total += bitops.PopCount(w)
	}
	return total
}
