// Package spatial implements the uniform grid neighbor index used by the
// solver pipeline: particles are hashed into cells of side h, and a query
// at a point returns the candidate indices from the 3x3x3 neighborhood of
// cells around it — a superset of the true h-neighbors that the kernels
// (which are zero past h) filter for free.
package spatial

import "sphfluid/internal/particle"

// cellKey packs a signed 3D cell coordinate into a single map key using a
// large-prime mixing function, so the index can live in a plain Go map
// without exposing the coordinate triple as the key type.
func cellKey(i, j, k int32) int64 {
	const p1, p2, p3 uint64 = 0x9E3779B97F4A7C15, 0xC2B2AE3D27D4EB4F, 0x165667B19E3779F9
	h := uint64(int64(i))*p1 ^ uint64(int64(j))*p2 ^ uint64(int64(k))*p3
	return int64(h)
}

func cellOf(p particle.Vec3, h float64) (int32, int32, int32) {
	return floorDiv(p.X, h), floorDiv(p.Y, h), floorDiv(p.Z, h)
}

func floorDiv(v, h float64) int32 {
	q := v / h
	i := int32(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}

// Grid is a uniform spatial hash with cell side h. It is rebuilt from
// scratch before each density pass and must not be queried while stale.
type Grid struct {
	h       float64
	buckets map[int64][]int32
}

// New creates a grid with cell side h (normally the smoothing length).
func New(h float64) *Grid {
	return &Grid{h: h, buckets: make(map[int64][]int32)}
}

// Rebuild clears every bucket (reusing its backing array) and re-inserts
// each live index into the bucket keyed by its cell. Insertion order
// within a bucket is preserved.
func (g *Grid) Rebuild(positions []particle.Vec3) {
	for k := range g.buckets {
		g.buckets[k] = g.buckets[k][:0]
	}
	for idx, p := range positions {
		ci, cj, ck := cellOf(p, g.h)
		key := cellKey(ci, cj, ck)
		g.buckets[key] = append(g.buckets[key], int32(idx))
	}
}

// Query returns the candidate indices from the 27-cell neighborhood
// around point. The result is a superset of the true h-neighbors; empty
// cells contribute nothing.
func (g *Grid) Query(point particle.Vec3) []int32 {
	ci, cj, ck := cellOf(point, g.h)
	var out []int32
	for di := int32(-1); di <= 1; di++ {
		for dj := int32(-1); dj <= 1; dj++ {
			for dk := int32(-1); dk <= 1; dk++ {
				key := cellKey(ci+di, cj+dj, ck+dk)
				if bucket, ok := g.buckets[key]; ok {
					out = append(out, bucket...)
				}
			}
		}
	}
	return out
}

// Stats summarizes the current grid occupancy for info() reporting.
type Stats struct {
	CellCount     int
	AverageBucket float64
	MaxBucketSize int
}

// Stats reports cell count and bucket-size distribution over non-empty
// buckets as of the last Rebuild.
func (g *Grid) Stats() Stats {
	var s Stats
	total := 0
	for _, bucket := range g.buckets {
		if len(bucket) == 0 {
			continue
		}
		s.CellCount++
		total += len(bucket)
		if len(bucket) > s.MaxBucketSize {
			s.MaxBucketSize = len(bucket)
		}
	}
	if s.CellCount > 0 {
		s.AverageBucket = float64(total) / float64(s.CellCount)
	}
	return s
}
