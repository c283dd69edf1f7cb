package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxelcore/bvxcore/voxelrt/spatialkey"
	"github.com/voxelcore/bvxcore/voxelrt/voxelidx"
)

// chunkVoxels is the chunk dimension in voxels (C) and voxelBits is the
// chunk dimension in bitvoxels (W = C*C) along each axis.
const (
	chunkVoxels = 4
	voxelBits   = chunkVoxels * chunkVoxels
)

// Index pairs a chunk's Morton key with the VoxelIndex of a bitvoxel
// inside it: the result of decomposing one 3D world coordinate.
type Index struct {
	Chunk spatialkey.MortonKey
	Voxel voxelidx.Index
}

// floorDecompose truncates one world axis coordinate toward zero and splits
// it into (chunk coordinate, voxel coordinate within chunk, bitvoxel
// coordinate within voxel) using floor division throughout, so negative
// coordinates decompose the same way the spatial keys wrap them:
// floor(-16/16) = -1, which NewMortonKey then wraps to 1023.
func floorDecompose(w float32) (chunk, voxel, bit int) {
	wf := math.Trunc(float64(w))
	chunkF := math.Floor(wf / voxelBits)
	local := wf - chunkF*voxelBits // in [0, voxelBits)
	voxelF := math.Floor(local / chunkVoxels)
	bitF := local - voxelF*chunkVoxels
	return int(chunkF), int(voxelF), int(bitF)
}

// From decomposes a world coordinate into its chunk key and in-chunk
// VoxelIndex, truncating each axis to an integer cell first.
func From(w mgl32.Vec3) Index {
	cx, vx, bx := floorDecompose(w.X())
	cy, vy, by := floorDecompose(w.Y())
	cz, vz, bz := floorDecompose(w.Z())
	return Index{
		Chunk: spatialkey.NewMortonKey(cx, cy, cz),
		Voxel: voxelidx.New(vx, vy, vz, bx, by, bz),
	}
}
