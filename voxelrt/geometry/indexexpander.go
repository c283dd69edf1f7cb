package geometry

import (
	"fmt"

	voxelcore "github.com/voxelcore/bvxcore"
	"github.com/voxelcore/bvxcore/voxelrt/bitops"
)

// IndicesPerBitvoxel is the size of one bitvoxel's vertex block: 24 slots,
// enough for the worst case of all six faces each contributing four
// distinct vertices.
const IndicesPerBitvoxel = 24

// Expander turns a face-mask buffer into a triangle index buffer using a
// renderer-supplied lookup table. It does not interpret vertex, normal or
// UV data; it only knows how to offset pre-built per-mask index lists by
// each bitvoxel's vertex-block base.
type Expander struct {
	indicesLut        [64][]uint32
	indicesFlippedLut [64][]uint32
}

// NewExpander builds an Expander from the renderer's two 64-entry lookup
// tables: indicesLut[mask] and indicesFlippedLut[mask] give the triangle
// indices (into the local 24-slot vertex block) for that face-mask value.
func NewExpander(indicesLut, indicesFlippedLut [64][]uint32) *Expander {
	return &Expander{indicesLut: indicesLut, indicesFlippedLut: indicesFlippedLut}
}

// expectedLen returns the index-buffer length a given mask buffer
// produces: six indices (two triangles) per visible face.
func expectedLen(faceMask []byte) int {
	total := 0
	for _, m := range faceMask {
		total += bitops.PopCount(uint32(m))
	}
	return total * 6
}

// GetIndices expands faceMask into a triangle index buffer. If out is
// non-nil its length must equal the expected length (6*popcount of the
// whole mask buffer) or GetIndices fails with ErrOutOfRange; otherwise a
// new buffer is allocated. flipped selects the reversed-winding table.
func (e *Expander) GetIndices(faceMask []byte, flipped bool, out []uint32) ([]uint32, error) {
	want := expectedLen(faceMask)
	if out != nil {
		if len(out) != want {
			return nil, fmt.Errorf("geometry: output buffer has length %d, want %d: %w", len(out), want, voxelcore.ErrOutOfRange)
		}
	} else {
		out = make([]uint32, 0, want)
	}

	lut := &e.indicesLut
	if flipped {
		lut = &e.indicesFlippedLut
	}

	out = out[:0]
	for i, m := range faceMask {
		if m == 0 {
			continue
		}
		base := uint32(i * IndicesPerBitvoxel)
		for _, idx := range lut[m] {
			out = append(out, idx+base)
		}
	}
	return out, nil
}
