package spatialkey

// LinearKey is the straight bit-packed encoding: key = (x<<20)|(y<<10)|z,
// each axis masked to 10 bits. It is slightly cheaper to encode/decode than
// MortonKey but scatters spatially-local coordinates less uniformly across
// a hash grid's buckets.
type LinearKey struct {
	x, y, z uint32
}

// NewLinearKey builds a LinearKey from signed axis coordinates, wrapping
// each axis modulo 1024.
func NewLinearKey(x, y, z int) LinearKey {
	return LinearKey{x: wrapAxis(x), y: wrapAxis(y), z: wrapAxis(z)}
}

// LinearKeyFromScalar decodes a 30-bit packed scalar back into a LinearKey.
func LinearKeyFromScalar(k uint32) LinearKey {
	return LinearKey{
		x: (k >> 20) & axisMask,
		y: (k >> 10) & axisMask,
		z: k & axisMask,
	}
}

func (k LinearKey) X() uint32 { return k.x }
func (k LinearKey) Y() uint32 { return k.y }
func (k LinearKey) Z() uint32 { return k.z }

func (k LinearKey) Scalar() uint32 {
	return (k.x << 20) | (k.y << 10) | k.z
}

func (k LinearKey) Cmp(other Key) int {
	return cmpTriples(k.x, k.y, k.z, other.X(), other.Y(), other.Z())
}

func (k LinearKey) IncX() Key { return NewLinearKey(int(k.x)+1, int(k.y), int(k.z)) }
func (k LinearKey) DecX() Key { return NewLinearKey(int(k.x)-1, int(k.y), int(k.z)) }
func (k LinearKey) IncY() Key { return NewLinearKey(int(k.x), int(k.y)+1, int(k.z)) }
func (k LinearKey) DecY() Key { return NewLinearKey(int(k.x), int(k.y)-1, int(k.z)) }
func (k LinearKey) IncZ() Key { return NewLinearKey(int(k.x), int(k.y), int(k.z)+1) }
func (k LinearKey) DecZ() Key { return NewLinearKey(int(k.x), int(k.y), int(k.z)-1) }

func (k LinearKey) Add(other Key) Key {
	return NewLinearKey(int(k.x)+int(other.X()), int(k.y)+int(other.Y()), int(k.z)+int(other.Z()))
}

func (k LinearKey) Sub(other Key) Key {
	return NewLinearKey(int(k.x)-int(other.X()), int(k.y)-int(other.Y()), int(k.z)-int(other.Z()))
}
