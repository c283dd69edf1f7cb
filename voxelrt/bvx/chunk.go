package bvx

import (
	"github.com/voxelcore/bvxcore/voxelrt/spatialkey"
	"github.com/voxelcore/bvxcore/voxelrt/voxelidx"
)

// VoxelsPerChunk is the number of voxels in a chunk (4^3); metadata is
// addressed per voxel (by vKey), not per bitvoxel.
const VoxelsPerChunk = 64

// Chunk is the capability set shared by all four metadata-width variants:
// bitvoxel state delegated to an embedded Layer, plus per-voxel metadata
// of whatever width the concrete variant stores. Implementations are a
// sealed family (Chunk0, Chunk8, Chunk16, Chunk32) — there is no fifth
// metadata width and no exported constructor for a custom one.
type Chunk interface {
	Key() spatialkey.MortonKey
	Layer() *Layer

	SetBitVoxel(idx Index)
	UnsetBitVoxel(idx Index)
	ToggleBitVoxel(idx Index)
	GetBitVoxel(idx Index) uint32
	FillVoxel(idx Index)
	EmptyVoxel(idx Index)
	GetBitVoxelCount(idx Index) int
	Length() int

	// SetMetadata and GetMetadata address the voxel identified by vKey
	// (0..63); metadata value width depends on the variant — a 16-bit
	// chunk masks to the low 16 bits, an 8-bit chunk to the low 8, a
	// 32-bit chunk keeps the full value, and the 0-bit chunk discards
	// writes and always reads 0.
	SetMetadata(vKey uint32, value uint32)
	GetMetadata(vKey uint32) uint32

	// Equal reports whether two chunks share the same Morton key — chunk
	// identity is keyed by position alone.
	Equal(other Chunk) bool
}

// Index is a re-export of voxelidx.Index so callers of bvx's Chunk
// interface don't need a second import for the type every method uses.
type Index = voxelidx.Index

// base holds the state every variant shares: the bitvoxel layer and the
// chunk's identity.
type base struct {
	key   spatialkey.MortonKey
	layer *Layer
}

func (b *base) Key() spatialkey.MortonKey { return b.key }
func (b *base) Layer() *Layer             { return b.layer }

func (b *base) SetBitVoxel(idx Index)    { b.layer.Set(idx) }
func (b *base) UnsetBitVoxel(idx Index)  { b.layer.Unset(idx) }
func (b *base) ToggleBitVoxel(idx Index) { b.layer.Toggle(idx) }
func (b *base) GetBitVoxel(idx Index) uint32 {
	return b.layer.Get(idx)
}
func (b *base) FillVoxel(idx Index)  { b.layer.Fill(idx) }
func (b *base) EmptyVoxel(idx Index) { b.layer.Empty(idx) }
func (b *base) GetBitVoxelCount(idx Index) int {
	return b.layer.Count(idx)
}
func (b *base) Length() int { return b.layer.Length() }

func keysEqual(a, b spatialkey.MortonKey) bool { return a.Scalar() == b.Scalar() }

// Chunk0 carries no metadata: writes are no-ops, reads always return 0.
type Chunk0 struct{ base }

// NewChunk0 creates a metadata-less chunk at key.
func NewChunk0(key spatialkey.MortonKey) *Chunk0 {
	return &Chunk0{base{key: key, layer: NewLayer()}}
}

func (c *Chunk0) SetMetadata(vKey uint32, value uint32) {}
func (c *Chunk0) GetMetadata(vKey uint32) uint32         { return 0 }
func (c *Chunk0) Equal(other Chunk) bool                 { return keysEqual(c.key, other.Key()) }

// Chunk8 carries one byte of metadata per voxel.
type Chunk8 struct {
	base
	meta [VoxelsPerChunk]uint8
}

// NewChunk8 creates an 8-bit-metadata chunk at key.
func NewChunk8(key spatialkey.MortonKey) *Chunk8 {
	return &Chunk8{base: base{key: key, layer: NewLayer()}}
}

func (c *Chunk8) SetMetadata(vKey uint32, value uint32) {
	c.meta[vKey&0x3F] = uint8(value & 0xFF)
}
func (c *Chunk8) GetMetadata(vKey uint32) uint32 {
	return uint32(c.meta[vKey&0x3F])
}
func (c *Chunk8) Equal(other Chunk) bool { return keysEqual(c.key, other.Key()) }

// Chunk16 carries two bytes of metadata per voxel.
type Chunk16 struct {
	base
	meta [VoxelsPerChunk]uint16
}

// NewChunk16 creates a 16-bit-metadata chunk at key.
func NewChunk16(key spatialkey.MortonKey) *Chunk16 {
	return &Chunk16{base: base{key: key, layer: NewLayer()}}
}

func (c *Chunk16) SetMetadata(vKey uint32, value uint32) {
	// The source this variant is modeled on masks the incoming value with
	// 0xFFFF0000 before writing, discarding the low 16 bits of every
	// caller-supplied value — almost certainly a bug, since nothing else
	// in a 16-bit metadata slot would ever use the high half. This masks
	// the low 16 bits instead, so callers get the value they wrote back.
	c.meta[vKey&0x3F] = uint16(value & 0xFFFF)
}
func (c *Chunk16) GetMetadata(vKey uint32) uint32 {
	return uint32(c.meta[vKey&0x3F])
}
func (c *Chunk16) Equal(other Chunk) bool { return keysEqual(c.key, other.Key()) }

// Chunk32 carries four bytes of metadata per voxel — a full 32-bit slot
// keyed by vKey, not the 16-bit-per-voxel view the variant this is
// modeled on actually stores despite its name (it allocates 256 bytes but
// addresses them as a 128-entry Uint16Array, i.e. 16 bits per voxel). This
// variant stores the full width its name promises.
type Chunk32 struct {
	base
	meta [VoxelsPerChunk]uint32
}

// NewChunk32 creates a 32-bit-metadata chunk at key.
func NewChunk32(key spatialkey.MortonKey) *Chunk32 {
	return &Chunk32{base: base{key: key, layer: NewLayer()}}
}

func (c *Chunk32) SetMetadata(vKey uint32, value uint32) {
	c.meta[vKey&0x3F] = value
}
func (c *Chunk32) GetMetadata(vKey uint32) uint32 {
	return c.meta[vKey&0x3F]
}
func (c *Chunk32) Equal(other Chunk) bool { return keysEqual(c.key, other.Key()) }
