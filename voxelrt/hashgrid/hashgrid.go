// Package hashgrid implements a fixed-bucket hash map keyed by a spatial
// key's 30-bit scalar form, chaining collisions by linear scan within a
// bucket. It's the same shape as mod_spatialgrid.go's SpatialHashGrid,
// generalized from entity-id buckets to arbitrary values, with bucket
// contents kept as a flat slice the way voxelrt/rt/volume's Sector keeps
// its packed bricks.
package hashgrid

// DefaultBuckets is used whenever a caller requests a non-positive bucket
// count.
const DefaultBuckets = 1024

// Keyer is anything a HashGrid can bucket by: a 30-bit scalar form. Both
// spatialkey.LinearKey and spatialkey.MortonKey satisfy this.
type Keyer interface {
	Scalar() uint32
}

type entry[V any] struct {
	scalar uint32
	value  V
}

// HashGrid is a fixed-bucket-count map from a spatial key's scalar form to
// a value. It stores only the scalar, never a live key reference, so
// callers are free to reuse/mutate their own key values after Set without
// risk of aliasing.
type HashGrid[V any] struct {
	buckets [][]entry[V]
}

// New creates a HashGrid with n buckets; n<1 falls back to DefaultBuckets.
func New[V any](n int) *HashGrid[V] {
	if n < 1 {
		n = DefaultBuckets
	}
	return &HashGrid[V]{buckets: make([][]entry[V], n)}
}

func (g *HashGrid[V]) bucketFor(scalar uint32) int {
	return int(scalar % uint32(len(g.buckets)))
}

// Set stores v under k, overwriting any existing entry for the same
// key scalar.
func (g *HashGrid[V]) Set(k Keyer, v V) {
	scalar := k.Scalar()
	i := g.bucketFor(scalar)
	for idx := range g.buckets[i] {
		if g.buckets[i][idx].scalar == scalar {
			g.buckets[i][idx].value = v
			return
		}
	}
	g.buckets[i] = append(g.buckets[i], entry[V]{scalar: scalar, value: v})
}

// Get returns the value stored under k, or the zero value and false if
// absent.
func (g *HashGrid[V]) Get(k Keyer) (V, bool) {
	scalar := k.Scalar()
	i := g.bucketFor(scalar)
	for _, e := range g.buckets[i] {
		if e.scalar == scalar {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// GetOr returns the value stored under k, or fallback if absent.
func (g *HashGrid[V]) GetOr(k Keyer, fallback V) V {
	if v, ok := g.Get(k); ok {
		return v
	}
	return fallback
}

// Remove deletes the entry for k, returning whether one was present.
// Idempotent: calling it again on an already-absent key returns false.
func (g *HashGrid[V]) Remove(k Keyer) bool {
	scalar := k.Scalar()
	i := g.bucketFor(scalar)
	for idx, e := range g.buckets[i] {
		if e.scalar == scalar {
			g.buckets[i] = append(g.buckets[i][:idx], g.buckets[i][idx+1:]...)
			return true
		}
	}
	return false
}

// Len returns the total number of entries across all buckets.
func (g *HashGrid[V]) Len() int {
	n := 0
	for _, b := range g.buckets {
		n += len(b)
	}
	return n
}
