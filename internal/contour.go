package internal

// A Contour is the boundary of a convex polygon: an ordered point sequence,
// traversed counterclockwise, with the last point logically adjacent to the
// first (no closing duplicate). One and two point contours are valid and
// represent a single point or a segment; callers that reason about turns must
// treat those, and collinear runs, as degenerate lines with no interior.
//
// Once built, a contour never changes. Accessors return copies, so holding a
// *Contour is safe for any lifetime.
type Contour struct {
	points []Point
}

// Build a contour from a point sequence that is already in traversal order.
// The slice is copied.
func NewContour(points []Point) *Contour {
	owned := make([]Point, len(points))
	copy(owned, points)
	return &Contour{points: owned}
}

func (c *Contour) Len() int {
	return len(c.points)
}

func (c *Contour) At(i int) Point {
	return c.points[i]
}

// All points in traversal order, as a fresh slice.
func (c *Contour) Points() []Point {
	points := make([]Point, len(c.points))
	copy(points, c.points)
	return points
}

// A ContourBuilder accumulates points in traversal order and freezes them
// into a Contour. The builder owns its buffer only until Result, which
// transfers it to the new contour; the builder is single use after that.
type ContourBuilder struct {
	points   []Point
	finished bool
}

func (b *ContourBuilder) Add(p Point) {
	if b.finished {
		fatalf("contour builder used after Result")
	}
	b.points = append(b.points, p)
}

func (b *ContourBuilder) Result() *Contour {
	if b.finished {
		fatalf("contour builder used after Result")
	}
	b.finished = true
	contour := &Contour{points: b.points}
	b.points = nil
	return contour
}
