package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointOrder(t *testing.T) {
	assert.True(t, Point{0, 5}.Less(Point{1, -5}))
	assert.True(t, Point{1, -5}.Less(Point{1, 2}))
	assert.False(t, Point{1, 2}.Less(Point{1, 2}))
	assert.False(t, Point{2, 0}.Less(Point{1, 9}))

	assert.True(t, Point{1, 2}.Greater(Point{1, -5}))
	assert.False(t, Point{1, 2}.Greater(Point{1, 2}))
}

func TestVectorCross(t *testing.T) {
	a := Point{1, 1}
	b := Point{3, 2}
	v := b.Sub(a)
	assert.Equal(t, Vector{2, 1}, v)

	// Counterclockwise of v is positive, clockwise negative, parallel zero
	assert.Equal(t, 1, sgn(v.Cross(Vector{0, 1})))
	assert.Equal(t, -1, sgn(v.Cross(Vector{0, -1})))
	assert.Equal(t, 0, sgn(v.Cross(Vector{4, 2})))
}

func TestTurn(t *testing.T) {
	a := Point{0, 0}
	b := Point{2, 0}

	t.Run("left of the directed line", func(t *testing.T) {
		assert.Equal(t, Left, Turn(a, b, Point{1, 1}))
	})

	t.Run("right of the directed line", func(t *testing.T) {
		assert.Equal(t, Right, Turn(a, b, Point{1, -1}))
	})

	t.Run("collinear", func(t *testing.T) {
		assert.Equal(t, Collinear, Turn(a, b, Point{5, 0}))
		// Collinear holds behind a and between a and b too
		assert.Equal(t, Collinear, Turn(a, b, Point{-3, 0}))
		assert.Equal(t, Collinear, Turn(a, b, Point{1, 0}))
	})

	t.Run("direction matters", func(t *testing.T) {
		// Reversing the line swaps left and right
		assert.Equal(t, Right, Turn(b, a, Point{1, 1}))
		assert.Equal(t, Left, Turn(b, a, Point{1, -1}))
	})
}
