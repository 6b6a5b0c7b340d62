package mergehull

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke test. The internals are already tested.
func TestMergeHull(t *testing.T) {
	points := []Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
		{X: 0, Y: 0},
	}

	hull, err := MergeHull(points)
	assert.NoError(t, err)
	assert.Equal(t, 4, hull.Len())
}

func TestMergeHullNotEnoughPoints(t *testing.T) {
	for _, points := range [][]Point{nil, {{X: 3, Y: 4}}} {
		hull, err := MergeHull(points)
		assert.Nil(t, hull)
		assert.EqualError(t, err, "not enough points to build convex hull")
	}
}
