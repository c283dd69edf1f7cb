// Package world implements VoxelWorld, the owner of a world's chunk grid
// and its bound raycaster, plus WorldIndex, the decomposition of a 3D
// world coordinate into a chunk key and an in-chunk VoxelIndex.
//
// Follows world.go's App-level ownership of the entity grid and
// mod_spatialgrid.go's SpatialHashGrid wiring, generalized from entities
// to chunks.
package world

import (
	"github.com/go-gl/mathgl/mgl32"

	voxelcore "github.com/voxelcore/bvxcore"
	"github.com/voxelcore/bvxcore/voxelrt/bvx"
	"github.com/voxelcore/bvxcore/voxelrt/hashgrid"
	"github.com/voxelcore/bvxcore/voxelrt/spatialkey"
)

// Raycaster is the capability VoxelWorld needs from whatever is bound to
// it via BindRaycaster. Defined here rather than depended on from the
// raycast package so raycast can import world without a cycle: raycast
// constructs the concrete implementation and binds it back.
type Raycaster interface {
	Raycast(start, end mgl32.Vec3) (Index, bool)
}

// World owns a HashGrid of chunks keyed by their Morton key, plus a
// raycaster bound to it. World owns the raycaster exclusively; the
// raycaster holds a non-owning handle back to World whose validity is
// tied to World's own lifetime.
type World struct {
	chunks    *hashgrid.HashGrid[bvx.Chunk]
	raycaster Raycaster
	log       voxelcore.Logger
}

// New creates an empty world with n chunk-grid buckets (n<1 falls back to
// hashgrid.DefaultBuckets). A nil logger is replaced with a no-op one.
func New(buckets int, log voxelcore.Logger) *World {
	if log == nil {
		log = voxelcore.NewNopLogger()
	}
	return &World{
		chunks: hashgrid.New[bvx.Chunk](buckets),
		log:    log,
	}
}

// Insert stores chunk under its own Morton key, overwriting silently if a
// chunk already occupies that key.
func (w *World) Insert(chunk bvx.Chunk) {
	w.chunks.Set(chunk.Key(), chunk)
	w.log.Debugf("world: inserted chunk at %d", chunk.Key().Scalar())
}

// Get returns the chunk at key, or absent.
func (w *World) Get(key spatialkey.MortonKey) (bvx.Chunk, bool) {
	return w.chunks.Get(key)
}

// GetOpt returns the chunk at key, or fallback if absent.
func (w *World) GetOpt(key spatialkey.MortonKey, fallback bvx.Chunk) bvx.Chunk {
	return w.chunks.GetOr(key, fallback)
}

// Remove deletes the chunk at key, returning whether one was present.
// Idempotent: a second call on the same key returns false.
func (w *World) Remove(key spatialkey.MortonKey) bool {
	removed := w.chunks.Remove(key)
	if removed {
		w.log.Debugf("world: removed chunk at %d", key.Scalar())
	}
	return removed
}

// Len returns the number of chunks currently resident in the world.
func (w *World) Len() int {
	return w.chunks.Len()
}

// Logger returns the logger this world was constructed with.
func (w *World) Logger() voxelcore.Logger {
	return w.log
}

// BindRaycaster attaches the raycaster this world owns. Called by
// raycast.New once the raycaster has been constructed against this world.
func (w *World) BindRaycaster(r Raycaster) {
	w.raycaster = r
}

// Raycaster returns the world's bound raycaster, or nil if none has been
// bound yet.
func (w *World) Raycaster() Raycaster {
	return w.raycaster
}
