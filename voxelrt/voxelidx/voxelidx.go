// Package voxelidx implements the 12-bit composite VoxelIndex that
// addresses one bitvoxel within a chunk: three 2-bit voxel coordinates
// followed by three 2-bit bitvoxel coordinates.
package voxelidx

const componentMask = 0x3 // 2 bits, 0..3

func wrapComponent(v int) uint32 {
	m := v % 4
	if m < 0 {
		m += 4
	}
	return uint32(m)
}

// Index is a 12-bit composite: bits [11:10]=vx, [9:8]=vy, [7:6]=vz,
// [5:4]=bx, [3:2]=by, [1:0]=bz. Out-of-range component inputs wrap modulo
// 4, the same total-ness guarantee SpatialKey gives for its axes.
type Index struct {
	vx, vy, vz uint32 // voxel coordinate within the chunk, 0..3
	bx, by, bz uint32 // bitvoxel coordinate within the voxel, 0..3
}

// New builds an Index from six signed components, wrapping each modulo 4.
func New(vx, vy, vz, bx, by, bz int) Index {
	return Index{
		vx: wrapComponent(vx), vy: wrapComponent(vy), vz: wrapComponent(vz),
		bx: wrapComponent(bx), by: wrapComponent(by), bz: wrapComponent(bz),
	}
}

// FromKey decodes a 12-bit packed key back into an Index.
func FromKey(key uint32) Index {
	key &= 0xFFF
	return Index{
		vx: (key >> 10) & componentMask,
		vy: (key >> 8) & componentMask,
		vz: (key >> 6) & componentMask,
		bx: (key >> 4) & componentMask,
		by: (key >> 2) & componentMask,
		bz: key & componentMask,
	}
}

func (i Index) VX() uint32 { return i.vx }
func (i Index) VY() uint32 { return i.vy }
func (i Index) VZ() uint32 { return i.vz }
func (i Index) BX() uint32 { return i.bx }
func (i Index) BY() uint32 { return i.by }
func (i Index) BZ() uint32 { return i.bz }

// VKey returns the 6-bit voxel-key component (bits [11:6], 0..63):
// which of the chunk's 64 voxels this index falls in.
func (i Index) VKey() uint32 {
	return (i.vx << 4) | (i.vy << 2) | i.vz
}

// BKey returns the 6-bit bitvoxel-key component (bits [5:0], 0..63):
// which bit within the voxel's 64-bit group this index addresses.
func (i Index) BKey() uint32 {
	return (i.bx << 4) | (i.by << 2) | i.bz
}

// Key returns the full 12-bit composite (bits [11:0], 0..4095): the
// absolute bit position within a chunk's BVXLayer.
func (i Index) Key() uint32 {
	return (i.VKey() << 6) | i.BKey()
}

// Cmp compares two indices by their full key.
func (i Index) Cmp(other Index) int {
	switch {
	case i.Key() < other.Key():
		return -1
	case i.Key() > other.Key():
		return 1
	default:
		return 0
	}
}

// WithBitvoxel returns a copy of i with the bitvoxel coordinate replaced,
// wrapping each component modulo 4; the voxel coordinate is left unchanged.
func (i Index) WithBitvoxel(bx, by, bz int) Index {
	return New(int(i.vx), int(i.vy), int(i.vz), bx, by, bz)
}

// WithVoxel returns a copy of i with the voxel coordinate replaced.
func (i Index) WithVoxel(vx, vy, vz int) Index {
	return New(vx, vy, vz, int(i.bx), int(i.by), int(i.bz))
}
