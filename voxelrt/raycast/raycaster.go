// Package raycast implements VoxelRaycaster: an Amanatides-Woo-style
// voxel DDA that walks a line segment through a sparse chunk grid and
// returns the first set bitvoxel it crosses.
//
// Follows voxel_debug_and_raycast.go's segment-walk shape and
// voxelrt/rt/volume/xbrickmap.go's RayMarch/stepToNext stepping, adapted
// from a single dense volume to a sparse grid of independently-absent
// chunks.
package raycast

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	voxelcore "github.com/voxelcore/bvxcore"
	"github.com/voxelcore/bvxcore/voxelrt/world"
)

// Raycaster walks line segments against a World, cell size 1.0.
type Raycaster struct {
	w   *world.World
	log voxelcore.Logger
}

// New constructs a Raycaster bound to w and registers itself as w's
// raycaster, modeling the world's exclusive ownership of it.
func New(w *world.World, log voxelcore.Logger) *Raycaster {
	if log == nil {
		log = voxelcore.NewNopLogger()
	}
	r := &Raycaster{w: w, log: log}
	w.BindRaycaster(r)
	return r
}

type axisWalk struct {
	cell  int
	step  int
	tMax  float64
	tStep float64
}

func newAxisWalk(start, end float32) axisWalk {
	delta := float64(end) - float64(start)
	cell := int(math.Floor(float64(start)))
	if delta == 0 {
		return axisWalk{cell: cell, step: 0, tMax: math.Inf(1), tStep: math.Inf(1)}
	}
	step := 1
	var boundary float64
	if delta > 0 {
		boundary = math.Floor(float64(start)) + 1
	} else {
		step = -1
		boundary = math.Floor(float64(start))
	}
	tMax := (boundary - float64(start)) / delta
	tStep := 1 / math.Abs(delta)
	return axisWalk{cell: cell, step: step, tMax: tMax, tStep: tStep}
}

// argminAxis picks the axis with the smallest tMax, breaking ties in the
// order x, y, z.
func argminAxis(x, y, z axisWalk) int {
	axis, val := 0, x.tMax
	if y.tMax < val {
		axis, val = 1, y.tMax
	}
	if z.tMax < val {
		axis = 2
	}
	return axis
}

// Raycast returns the WorldIndex of the first set bitvoxel crossed by the
// segment start->end, or absent if none is hit before the segment ends.
func (r *Raycaster) Raycast(start, end mgl32.Vec3) (world.Index, bool) {
	wx := newAxisWalk(start.X(), end.X())
	wy := newAxisWalk(start.Y(), end.Y())
	wz := newAxisWalk(start.Z(), end.Z())

	steps := 0
	for {
		idx := world.From(mgl32.Vec3{float32(wx.cell), float32(wy.cell), float32(wz.cell)})
		if chunk, ok := r.w.Get(idx.Chunk); ok {
			if chunk.Layer().Get(idx.Voxel) == 1 {
				r.log.Debugf("raycast: hit after %d steps", steps)
				return idx, true
			}
		}

		axis := argminAxis(wx, wy, wz)
		var tMax float64
		switch axis {
		case 0:
			tMax = wx.tMax
		case 1:
			tMax = wy.tMax
		default:
			tMax = wz.tMax
		}
		if tMax > 1.0 {
			r.log.Debugf("raycast: miss after %d steps", steps)
			return world.Index{}, false
		}

		switch axis {
		case 0:
			wx.cell += wx.step
			wx.tMax += wx.tStep
		case 1:
			wy.cell += wy.step
			wy.tMax += wy.tStep
		default:
			wz.cell += wz.step
			wz.tMax += wz.tStep
		}
		steps++
	}
}
