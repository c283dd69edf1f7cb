package imaging

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/voxelcore/bvxcore/voxelrt/bvx"
	"github.com/voxelcore/bvxcore/voxelrt/spatialkey"
	"github.com/voxelcore/bvxcore/voxelrt/voxelidx"
)

func TestDumpSliceProducesDecodablePNGOfExpectedSize(t *testing.T) {
	c := bvx.NewChunk0(spatialkey.NewMortonKey(3, 4, 5))
	c.SetBitVoxel(voxelidx.New(1, 1, 1, 1, 1, 1))

	var buf bytes.Buffer
	if err := DumpSlice(&buf, c, 5); err != nil {
		t.Fatalf("DumpSlice error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != sliceDim || b.Dy() != sliceDim {
		t.Fatalf("image size = %dx%d, want %dx%d", b.Dx(), b.Dy(), sliceDim, sliceDim)
	}
}

func TestDumpSliceMarksOccupiedPixel(t *testing.T) {
	c := bvx.NewChunk0(spatialkey.NewMortonKey(0, 0, 0))
	// vx=1,bx=1 -> px=5; vy=1,by=1 -> py=5; vz=1,bz=1 -> z=5.
	c.SetBitVoxel(voxelidx.New(1, 1, 1, 1, 1, 1))

	var buf bytes.Buffer
	if err := DumpSlice(&buf, c, 5); err != nil {
		t.Fatalf("DumpSlice error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	r, g, b, a := img.At(5, 5).RGBA()
	if r != 0 || g != 0 || b != 0 || a == 0 {
		t.Fatalf("pixel at (5,5) = (%d,%d,%d,%d), want opaque black", r, g, b, a)
	}
}
