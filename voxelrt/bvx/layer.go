// Package bvx implements the BVXLayer bit-occupancy layer and the four
// VoxelChunk metadata-width variants built on top of it — the storage
// substrate of one 16x16x16 (in bitvoxels) chunk.
//
// The sparse hierarchical occupancy-bitmask-plus-payload idea follows
// voxelrt/rt/volume's Brick (OccupancyMask64 + Payload), generalized from
// a single 64-bit word per 8x8x8 brick to a 4096-bit layer addressed by
// voxelidx.Index, with explicit O(1) group fill/empty the way
// Brick.Expand sets a whole brick's OccupancyMask64 at once.
package bvx

import (
	"github.com/voxelcore/bvxcore/voxelrt/bitarray"
	"github.com/voxelcore/bvxcore/voxelrt/bitops"
	"github.com/voxelcore/bvxcore/voxelrt/voxelidx"
)

const (
	// BitsPerChunk is the total number of bitvoxels in one chunk (4^3 voxels
	// of 4^3 bitvoxels each).
	BitsPerChunk = 4096
	// WordsPerChunk is BitsPerChunk packed into 32-bit words.
	WordsPerChunk = BitsPerChunk / 32
	// BitsPerVoxel is the number of bitvoxels inside a single voxel.
	BitsPerVoxel = 64
	// WordsPerVoxel is BitsPerVoxel packed into 32-bit words; a voxel's 64
	// bits always occupy exactly two consecutive words.
	WordsPerVoxel = BitsPerVoxel / 32
)

// Layer is the 4096-bit state layer of one chunk: one bit per bitvoxel,
// organized as 64 groups of 64 bits where group g is voxel-key g. The
// layer's lifetime is owned exclusively by its chunk.
type Layer struct {
	bits *bitarray.BitArray
}

// NewLayer allocates an all-zero layer.
func NewLayer() *Layer {
	return &Layer{bits: bitarray.New(WordsPerChunk)}
}

// Zero is a shared, read-only all-zero layer used by the face solver as
// the "neighbor absent" fallback: safe to alias across every lookup of a
// missing neighbor chunk because nothing ever mutates it.
var Zero = NewLayer()

// Set marks the bitvoxel at idx as occupied.
func (l *Layer) Set(idx voxelidx.Index) {
	// idx.Key() is always in [0, BitsPerChunk) by construction (component
	// wrap in voxelidx.New), so the bounds check in BitArray can never
	// actually fail here.
	_ = l.bits.SetBitAt(int(idx.Key()))
}

// Unset clears the bitvoxel at idx.
func (l *Layer) Unset(idx voxelidx.Index) {
	_ = l.bits.UnsetBitAt(int(idx.Key()))
}

// Toggle flips the bitvoxel at idx.
func (l *Layer) Toggle(idx voxelidx.Index) {
	_ = l.bits.ToggleBitAt(int(idx.Key()))
}

// Get returns 1 if the bitvoxel at idx is occupied, 0 otherwise.
func (l *Layer) Get(idx voxelidx.Index) uint32 {
	v, _ := l.bits.BitAt(int(idx.Key()))
	return v
}

func (l *Layer) voxelWords(idx voxelidx.Index) (word0, word1 int) {
	off := int(idx.VKey()) * WordsPerVoxel
	return off, off + 1
}

// Fill sets all 64 bitvoxels belonging to idx's voxel in O(1), by writing
// both backing words directly rather than looping 64 individual sets.
func (l *Layer) Fill(idx voxelidx.Index) {
	w0, w1 := l.voxelWords(idx)
	words := l.bits.Words()
	words[w0] = 0xFFFFFFFF
	words[w1] = 0xFFFFFFFF
}

// Empty clears all 64 bitvoxels belonging to idx's voxel in O(1).
func (l *Layer) Empty(idx voxelidx.Index) {
	w0, w1 := l.voxelWords(idx)
	words := l.bits.Words()
	words[w0] = 0
	words[w1] = 0
}

// Count returns how many of idx's voxel's 64 bitvoxels are set (0..64).
func (l *Layer) Count(idx voxelidx.Index) int {
	w0, w1 := l.voxelWords(idx)
	words := l.bits.Words()
	return bitops.PopCount(words[w0]) + bitops.PopCount(words[w1])
}

// Length returns the total number of set bitvoxels in the whole layer.
func (l *Layer) Length() int {
	return l.bits.PopCount()
}
