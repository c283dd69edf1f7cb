package geometry

import (
	"testing"

	"github.com/voxelcore/bvxcore/voxelrt/bitops"
	"github.com/voxelcore/bvxcore/voxelrt/bvx"
	"github.com/voxelcore/bvxcore/voxelrt/spatialkey"
	"github.com/voxelcore/bvxcore/voxelrt/voxelidx"
	"github.com/voxelcore/bvxcore/voxelrt/world"
)

func maskPopcount(mask []byte) int {
	total := 0
	for _, m := range mask {
		total += bitops.PopCount(uint32(m))
	}
	return total
}

// TestIsolatedBitvoxelYieldsAllFaces checks that a single set bitvoxel
// with no neighbors yields mask 0x3F at its own key and 0 everywhere
// else.
func TestIsolatedBitvoxelYieldsAllFaces(t *testing.T) {
	w := world.New(0, nil)
	key := spatialkey.NewMortonKey(0, 0, 0)
	c := bvx.NewChunk0(key)
	w.Insert(c)

	target := voxelidx.New(1, 1, 1, 1, 1, 1)
	c.SetBitVoxel(target)

	s := NewSolver()
	mask := s.Solve(c, w)

	if mask[target.Key()] != 0x3F {
		t.Fatalf("mask at target = %#x, want 0x3f", mask[target.Key()])
	}
	if bitops.PopCount(uint32(mask[target.Key()])) != 6 {
		t.Fatalf("popcount = %d, want 6", bitops.PopCount(uint32(mask[target.Key()])))
	}
	for i, m := range mask {
		if uint32(i) == target.Key() {
			continue
		}
		if m != 0 {
			t.Fatalf("mask[%d] = %#x, want 0", i, m)
		}
	}
}

// TestStarPatternOcclusion checks a center bitvoxel plus its six
// axis-aligned neighbors. Center is fully occluded (mask 0, popcount 0);
// each outer neighbor has exactly one face occluded (popcount 5).
func TestStarPatternOcclusion(t *testing.T) {
	w := world.New(0, nil)
	key := spatialkey.NewMortonKey(1, 1, 1)
	c := bvx.NewChunk0(key)
	w.Insert(c)

	center := voxelidx.New(1, 1, 1, 1, 1, 1)
	c.SetBitVoxel(center)
	neighbors := []voxelidx.Index{
		center.WithBitvoxel(2, 1, 1),
		center.WithBitvoxel(0, 1, 1),
		center.WithBitvoxel(1, 2, 1),
		center.WithBitvoxel(1, 0, 1),
		center.WithBitvoxel(1, 1, 2),
		center.WithBitvoxel(1, 1, 0),
	}
	for _, n := range neighbors {
		c.SetBitVoxel(n)
	}

	s := NewSolver()
	mask := s.Solve(c, w)

	if mask[center.Key()] != 0 {
		t.Fatalf("center mask = %#x, want 0", mask[center.Key()])
	}
	totalVisible := 0
	for _, n := range neighbors {
		pc := bitops.PopCount(uint32(mask[n.Key()]))
		if pc != 5 {
			t.Errorf("neighbor %v popcount = %d, want 5", n, pc)
		}
		totalVisible += pc
	}
	totalVisible += bitops.PopCount(uint32(mask[center.Key()]))
	if totalVisible != 30 {
		t.Fatalf("total visible faces = %d, want 30", totalVisible)
	}

	e := NewExpander(starLUT(), starLUT())
	indices, err := e.GetIndices(mask, false, nil)
	if err != nil {
		t.Fatalf("GetIndices error: %v", err)
	}
	if len(indices) != 180 {
		t.Fatalf("len(indices) = %d, want 180", len(indices))
	}
}

// TestChunkBoundaryVisibility checks a set bitvoxel at a chunk's extreme
// corner: with the neighbor chunk entirely absent from the world, it
// still yields all six faces visible.
func TestChunkBoundaryVisibility(t *testing.T) {
	w := world.New(0, nil)
	key := spatialkey.NewMortonKey(5, 5, 5)
	c := bvx.NewChunk0(key)
	w.Insert(c)

	corner := voxelidx.New(0, 0, 0, 0, 0, 0)
	c.SetBitVoxel(corner)

	s := NewSolver()
	mask := s.Solve(c, w)
	if mask[corner.Key()] != 0x3F {
		t.Fatalf("corner mask = %#x, want 0x3f (missing neighbor treated as empty)", mask[corner.Key()])
	}
}

// TestEmptyChunkProducesZeroMask exercises the early-return path when a
// chunk's total bit population is zero.
func TestEmptyChunkProducesZeroMask(t *testing.T) {
	w := world.New(0, nil)
	c := bvx.NewChunk0(spatialkey.NewMortonKey(2, 2, 2))
	w.Insert(c)

	s := NewSolver()
	mask := s.Solve(c, w)
	if maskPopcount(mask) != 0 {
		t.Fatalf("maskPopcount = %d, want 0 for an empty chunk", maskPopcount(mask))
	}
}
