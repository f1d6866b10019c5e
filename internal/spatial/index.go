// Package spatial provides nearest-point lookup in the plot's
// (soil, climate, elevation) space.
package spatial

import (
	"math"

	"github.com/golang/geo/r3"
)

// Index is an immutable set of 3D points
type Index struct {
	points []r3.Vector
}

// NewIndex creates an index over a copy of points
func NewIndex(points []r3.Vector) *Index {
	p := make([]r3.Vector, len(points))
	copy(p, points)
	return &Index{points: p}
}

// Nearest returns the position of the point closest to p and its Euclidean
// distance. Ties resolve to the lowest position. ok is false for an empty
// index or a non-finite p.
func (idx *Index) Nearest(p r3.Vector) (pos int, dist float64, ok bool) {
	if len(idx.points) == 0 || !finite(p) {
		return 0, 0, false
	}

	best := math.Inf(1)
	for i, q := range idx.points {
		// Compare squared distances, take the root once at the end
		d := p.Sub(q).Norm2()
		if d < best {
			best = d
			pos = i
		}
	}
	return pos, math.Sqrt(best), true
}

// Within returns the positions of all points within radius of p
func (idx *Index) Within(p r3.Vector, radius float64) []int {
	var out []int
	r2 := radius * radius
	for i, q := range idx.points {
		if p.Sub(q).Norm2() <= r2 {
			out = append(out, i)
		}
	}
	return out
}

func finite(p r3.Vector) bool {
	for _, v := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
