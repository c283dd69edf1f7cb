// Package geometry implements VoxelFaceGeometry, the per-bitvoxel
// face-visibility solver, and BVXGeometry, the index-buffer expander that
// turns a face-mask buffer into renderer-ready triangle indices.
//
// Follows voxel_debug_and_raycast.go's neighbor walk (deciding what to
// draw around a chunk) and voxelrt/rt/volume's Brick/Sector occupancy
// lookup, generalized to the six-direction, chunk-crossing neighbor walk
// this solver performs.
package geometry

import (
	"github.com/voxelcore/bvxcore/voxelrt/bvx"
	"github.com/voxelcore/bvxcore/voxelrt/spatialkey"
	"github.com/voxelcore/bvxcore/voxelrt/voxelidx"
)

// MaskBufferSize is the number of entries in a face-mask buffer: one per
// absolute bit position in a chunk's layer.
const MaskBufferSize = bvx.BitsPerChunk

// Direction bit positions within a mask entry.
const (
	dirPosX = iota
	dirNegX
	dirPosY
	dirNegY
	dirPosZ
	dirNegZ
)

// ChunkSource is the capability the solver needs to look up a chunk's
// neighbors: satisfied by *world.World without this package importing it.
type ChunkSource interface {
	Get(key spatialkey.MortonKey) (bvx.Chunk, bool)
}

// Solver computes face-visibility masks for a chunk against its six
// neighbors in a ChunkSource.
type Solver struct {
	// mask is reused across calls to avoid a per-call allocation; Solve
	// always resets it fully first.
	mask [MaskBufferSize]byte
}

// NewSolver creates a Solver with its scratch mask buffer zeroed.
func NewSolver() *Solver {
	return &Solver{}
}

// neighborLayers holds the six axis-neighbor layers, substituting
// bvx.Zero for any chunk that's absent from the source.
type neighborLayers struct {
	xp, xn, yp, yn, zp, zn *bvx.Layer
}

func lookupLayer(src ChunkSource, key spatialkey.MortonKey) *bvx.Layer {
	if c, ok := src.Get(key); ok {
		return c.Layer()
	}
	return bvx.Zero
}

func neighborsOf(src ChunkSource, key spatialkey.MortonKey) neighborLayers {
	return neighborLayers{
		xp: lookupLayer(src, key.IncX().(spatialkey.MortonKey)),
		xn: lookupLayer(src, key.DecX().(spatialkey.MortonKey)),
		yp: lookupLayer(src, key.IncY().(spatialkey.MortonKey)),
		yn: lookupLayer(src, key.DecY().(spatialkey.MortonKey)),
		zp: lookupLayer(src, key.IncZ().(spatialkey.MortonKey)),
		zn: lookupLayer(src, key.DecZ().(spatialkey.MortonKey)),
	}
}

// stepAxis advances one axis's (voxel, bitvoxel) pair by delta (+1 or -1),
// wrapping the bitvoxel component modulo 4 and carrying into the voxel
// component, then wrapping the voxel component modulo 4 and reporting
// whether that crossed into the neighbor chunk.
func stepAxis(v, b, delta int) (newV, newB int, crossedChunk bool) {
	newB = b + delta
	newV = v
	switch {
	case newB < 0:
		newB = 3
		newV = v - 1
	case newB > 3:
		newB = 0
		newV = v + 1
	default:
		return newV, newB, false
	}
	switch {
	case newV < 0:
		newV = 3
		crossedChunk = true
	case newV > 3:
		newV = 0
		crossedChunk = true
	}
	return newV, newB, crossedChunk
}

// neighborState reads the bitvoxel state one step away from idx along the
// given direction, substituting the appropriate neighbor chunk's layer
// when the step crosses a chunk boundary.
func neighborState(own *bvx.Layer, n neighborLayers, idx bvx.Index, dir int) uint32 {
	vx, vy, vz := int(idx.VX()), int(idx.VY()), int(idx.VZ())
	bx, by, bz := int(idx.BX()), int(idx.BY()), int(idx.BZ())

	layer := own
	switch dir {
	case dirPosX:
		nv, nb, crossed := stepAxis(vx, bx, 1)
		vx, bx = nv, nb
		if crossed {
			layer = n.xp
		}
	case dirNegX:
		nv, nb, crossed := stepAxis(vx, bx, -1)
		vx, bx = nv, nb
		if crossed {
			layer = n.xn
		}
	case dirPosY:
		nv, nb, crossed := stepAxis(vy, by, 1)
		vy, by = nv, nb
		if crossed {
			layer = n.yp
		}
	case dirNegY:
		nv, nb, crossed := stepAxis(vy, by, -1)
		vy, by = nv, nb
		if crossed {
			layer = n.yn
		}
	case dirPosZ:
		nv, nb, crossed := stepAxis(vz, bz, 1)
		vz, bz = nv, nb
		if crossed {
			layer = n.zp
		}
	case dirNegZ:
		nv, nb, crossed := stepAxis(vz, bz, -1)
		vz, bz = nv, nb
		if crossed {
			layer = n.zn
		}
	}

	neighborIdx := voxelidx.New(vx, vy, vz, bx, by, bz)
	return layer.Get(neighborIdx)
}

// Solve computes the face-visibility mask buffer for chunk against its
// neighbors in src. The returned slice aliases the Solver's internal
// scratch buffer and is only valid until the next Solve call.
func (s *Solver) Solve(chunk bvx.Chunk, src ChunkSource) []byte {
	for i := range s.mask {
		s.mask[i] = 0
	}

	own := chunk.Layer()
	if own.Length() == 0 {
		return s.mask[:]
	}

	n := neighborsOf(src, chunk.Key())

	for i := 0; i < MaskBufferSize; i++ {
		idx := voxelidx.FromKey(uint32(i))
		if own.Get(idx) == 0 {
			continue
		}
		var mask byte
		for dir := 0; dir < 6; dir++ {
			state := neighborState(own, n, idx, dir)
			mask |= byte((^state)&1) << uint(dir)
		}
		s.mask[i] = mask
	}

	return s.mask[:]
}
