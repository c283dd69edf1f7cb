package bvx

import (
	"testing"

	"github.com/voxelcore/bvxcore/voxelrt/voxelidx"
)

func TestSetCountAndLength(t *testing.T) {
	l := NewLayer()
	set := []voxelidx.Index{
		voxelidx.New(0, 0, 0, 0, 0, 0),
		voxelidx.New(0, 0, 0, 1, 1, 1),
		voxelidx.New(3, 3, 3, 3, 3, 3),
	}
	for _, idx := range set {
		l.Set(idx)
	}
	if l.Length() != len(set) {
		t.Errorf("Length() = %d, want %d", l.Length(), len(set))
	}
	for _, idx := range set {
		if l.Get(idx) != 1 {
			t.Errorf("Get(%v) = 0, want 1", idx)
		}
	}
	other := voxelidx.New(1, 2, 3, 0, 1, 2)
	if l.Get(other) != 0 {
		t.Errorf("Get(%v) = 1, want 0 (not set)", other)
	}
}

func TestFillEmptyGroupContract(t *testing.T) {
	l := NewLayer()
	voxel := voxelidx.New(2, 1, 0, 0, 0, 0)

	l.Fill(voxel)
	if l.Count(voxel) != 64 {
		t.Fatalf("Count after Fill = %d, want 64", l.Count(voxel))
	}
	for bx := 0; bx < 4; bx++ {
		for by := 0; by < 4; by++ {
			for bz := 0; bz < 4; bz++ {
				idx := voxel.WithBitvoxel(bx, by, bz)
				if l.Get(idx) != 1 {
					t.Fatalf("Get(%v) = 0 after Fill, want 1", idx)
				}
			}
		}
	}

	l.Empty(voxel)
	if l.Count(voxel) != 0 {
		t.Fatalf("Count after Empty = %d, want 0", l.Count(voxel))
	}
	for bx := 0; bx < 4; bx++ {
		for by := 0; by < 4; by++ {
			for bz := 0; bz < 4; bz++ {
				idx := voxel.WithBitvoxel(bx, by, bz)
				if l.Get(idx) != 0 {
					t.Fatalf("Get(%v) = 1 after Empty, want 0", idx)
				}
			}
		}
	}
}

func TestFillDoesNotAffectOtherVoxels(t *testing.T) {
	l := NewLayer()
	voxelA := voxelidx.New(0, 0, 0, 0, 0, 0)
	voxelB := voxelidx.New(1, 0, 0, 0, 0, 0)

	l.Fill(voxelA)
	if l.Count(voxelB) != 0 {
		t.Errorf("Count(voxelB) = %d after filling voxelA, want 0", l.Count(voxelB))
	}
	if l.Length() != 64 {
		t.Errorf("Length() = %d, want 64", l.Length())
	}
}

func TestZeroLayerIsAllZero(t *testing.T) {
	if Zero.Length() != 0 {
		t.Fatalf("Zero.Length() = %d, want 0", Zero.Length())
	}
}
