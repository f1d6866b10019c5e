package spatial

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearest_Empty(t *testing.T) {
	_, _, ok := NewIndex(nil).Nearest(r3.Vector{})
	assert.False(t, ok)
}

func TestNearest(t *testing.T) {
	idx := NewIndex([]r3.Vector{
		{X: 0, Y: 1, Z: 1},
		{X: 3, Y: 3, Z: 3},
		{X: 1, Y: 2, Z: 2},
	})
	pos, dist, ok := idx.Nearest(r3.Vector{X: 2.9, Y: 3, Z: 3})
	require.True(t, ok)
	assert.Equal(t, 1, pos)
	assert.InDelta(t, 0.1, dist, 1e-9)
}

func TestNearest_TieResolvesToFirst(t *testing.T) {
	idx := NewIndex([]r3.Vector{{X: 1}, {X: -1}})
	pos, _, ok := idx.Nearest(r3.Vector{})
	require.True(t, ok)
	assert.Equal(t, 0, pos)
}

func TestNearest_NonFinite(t *testing.T) {
	idx := NewIndex([]r3.Vector{{X: 1}, {X: 2}})
	for _, p := range []r3.Vector{
		{X: math.NaN()},
		{Y: math.Inf(1)},
		{Z: math.Inf(-1)},
	} {
		_, _, ok := idx.Nearest(p)
		assert.False(t, ok, "%v", p)
	}
}

func TestWithin(t *testing.T) {
	idx := NewIndex([]r3.Vector{{X: 0}, {X: 1}, {X: 5}})
	assert.Equal(t, []int{0, 1}, idx.Within(r3.Vector{X: 0.5}, 0.6))
	assert.Empty(t, idx.Within(r3.Vector{X: 10}, 1))
}

func TestNewIndex_Copies(t *testing.T) {
	pts := []r3.Vector{{X: 1}}
	idx := NewIndex(pts)
	pts[0] = r3.Vector{X: 100}
	pos, dist, _ := idx.Nearest(r3.Vector{X: 1})
	assert.Equal(t, 0, pos)
	assert.Zero(t, dist)
}
