package internal

// Points use integer coordinates so that the orientation predicate is an
// exact sign test. Floating point cross products can flip sign near collinear
// triples, and the tangent walk is not robust against that. Coordinates must
// be small enough that the cross product fits in an int64.
type Point struct {
	X, Y int64
}

type Vector struct {
	X, Y int64
}

// Vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y}
}

// 2D cross product. Positive when w points counterclockwise of v, negative
// when clockwise, zero when parallel.
func (v Vector) Cross(w Vector) int64 {
	return v.X*w.Y - v.Y*w.X
}

// Lexicographic order by X, then Y. This is the total order used to sort
// input points and to find a contour's extremal vertices.
func (p Point) Less(q Point) bool {
	if p.X == q.X {
		return p.Y < q.Y
	}
	return p.X < q.X
}

func (p Point) Greater(q Point) bool {
	return q.Less(p)
}

type TurnType int

const (
	Collinear TurnType = iota
	Left
	Right
)

func sgn(x int64) int {
	if x == 0 {
		return 0
	}
	if x < 0 {
		return -1
	}
	return 1
}

// Classify the turn made by the path a -> b -> c. Left means c is strictly
// left of the directed line through a and b.
func Turn(a, b, c Point) TurnType {
	v1 := b.Sub(a)
	v2 := c.Sub(a)

	switch sgn(v1.Cross(v2)) {
	case -1:
		return Right
	case 1:
		return Left
	default:
		return Collinear
	}
}
