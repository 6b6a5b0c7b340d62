package internal

import "sort"

// Divide and conquer convex hull. The input is sorted lexicographically, split
// in half recursively, and the two sub-hulls of each split are merged by
// finding their common tangents. The sort guarantees that at every merge the
// left hull is entirely non-greater than the right one, which is what the
// tangent walk assumes.

// Compute the convex hull of at least two points. The input slice is not
// modified. Fewer than two points is a contract violation and throws; the
// public package converts that to an error.
func MergeHull(points []Point) *Contour {
	if len(points) < 2 {
		fatalf("not enough points to build convex hull")
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})

	return mergeHullRange(sorted)
}

func mergeHullRange(points []Point) *Contour {
	if len(points) <= 2 {
		// One or two sorted points are already a degenerate hull.
		builder := &ContourBuilder{}
		for _, p := range points {
			builder.Add(p)
		}
		return builder.Result()
	}

	middle := len(points) / 2
	left := mergeHullRange(points[:middle])
	right := mergeHullRange(points[middle:])

	return merge(left, right)
}

// True iff no point of the contour lies strictly right of the directed line
// p1 -> p2, i.e. the line supports the hull from that side.
func isTangent(p1, p2 Point, contour *Contour) bool {
	for i := 0; i < contour.Len(); i++ {
		if Turn(p1, p2, contour.At(i)) == Right {
			return false
		}
	}
	return true
}

// Single point variant, used in the tangent walk to test only the immediate
// neighbor instead of rescanning the whole boundary.
func isTangentPoint(p1, p2, p3 Point) bool {
	return Turn(p1, p2, p3) != Right
}

// Advance two circulators until the segment between their points is tangent
// to both hulls at once. The first hull must lie to the left of the second.
// The first circulator is predecessor-constrained and only steps backward;
// the second is successor-constrained and only steps forward. The outer loop
// re-checks the combined condition because moving one side can invalidate the
// other's tangency.
func findTangent(ca, cb Circulator) (Circulator, Circulator) {
	for !isTangentPoint(ca.Point(), cb.Point(), ca.Prev().Point()) ||
		!isTangentPoint(ca.Point(), cb.Point(), cb.Next().Point()) {
		for !isTangentPoint(ca.Point(), cb.Point(), ca.Prev().Point()) {
			ca = ca.Prev()
		}
		for !isTangentPoint(ca.Point(), cb.Point(), cb.Next().Point()) {
			cb = cb.Next()
		}
	}
	return ca, cb
}

// Rotate the circulator to the contour's lexicographically smallest point.
// Single point contours have no distinct neighbors and return immediately.
func leftmost(c Circulator) Circulator {
	prev, next := c.Prev(), c.Next()
	if prev == c && c == next {
		return c
	}

	for !(c.Point().Less(prev.Point()) && c.Point().Less(next.Point())) {
		c, prev, next = c.Next(), prev.Next(), next.Next()
	}
	return c
}

func rightmost(c Circulator) Circulator {
	prev, next := c.Prev(), c.Next()
	if prev == c && c == next {
		return c
	}

	for !(c.Point().Greater(prev.Point()) && c.Point().Greater(next.Point())) {
		c, prev, next = c.Next(), prev.Next(), next.Next()
	}
	return c
}

// True iff every point of the contour lies on a single line. One and two
// point contours are trivially degenerate.
func isOnOneLine(contour *Contour) bool {
	if contour.Len() <= 2 {
		return true
	}

	for i := 0; i+2 < contour.Len(); i++ {
		if Turn(contour.At(i), contour.At(i+1), contour.At(i+2)) != Collinear {
			return false
		}
	}
	return true
}

func isOnOneLineUnion(a, b *Contour) bool {
	builder := &ContourBuilder{}
	for i := 0; i < a.Len(); i++ {
		builder.Add(a.At(i))
	}
	for i := 0; i < b.Len(); i++ {
		builder.Add(b.At(i))
	}
	return isOnOneLine(builder.Result())
}

// Merge two fully collinear hulls into one degenerate contour: each input is
// walked from its leftmost point all the way around to the point before it,
// and the two walks are concatenated. The full run of both inputs is kept.
func buildOnelineContour(a, b *Contour) *Contour {
	ca := leftmost(NewCirculator(a))
	cb := leftmost(NewCirculator(b))
	endA := ca.Prev()
	endB := cb.Prev()

	builder := &ContourBuilder{}
	for ; ca != endA; ca = ca.Next() {
		builder.Add(ca.Point())
	}
	builder.Add(endA.Point())

	for ; cb != endB; cb = cb.Next() {
		builder.Add(cb.Point())
	}
	builder.Add(endB.Point())

	return builder.Result()
}

// Emit the arc from beg to end on a degenerate (collinear) contour. A forward
// walk is not safe here: when the arc is a single edge the forward direction
// may run the long way around through the discarded side, so walk backward in
// that case.
func addOnelineArc(builder *ContourBuilder, beg, end Circulator) {
	if beg.Next() == end {
		for c := beg; c != end; c = c.Prev() {
			builder.Add(c.Point())
		}
	} else {
		for c := beg; c != end; c = c.Next() {
			builder.Add(c.Point())
		}
	}
	builder.Add(end.Point())
}

// Emit the arc from beg to end on a proper convex contour, walking forward.
func addConvexArc(builder *ContourBuilder, beg, end Circulator) {
	for c := beg; c != end; c = c.Next() {
		builder.Add(c.Point())
	}
	builder.Add(end.Point())
}

func addContourArc(builder *ContourBuilder, contour *Contour, beg, end Circulator) {
	if isOnOneLine(contour) {
		addOnelineArc(builder, beg, end)
	} else {
		addConvexArc(builder, beg, end)
	}
}

// Drop vertices whose neighbors are collinear with them. A stitched tangent
// edge can run through a vertex of a child hull (for example the midpoint of
// a collinear run); such a point lies on the boundary but is not a hull
// vertex. Only called on non-degenerate contours, which always keep at least
// their three extreme vertices.
func removeCollinear(contour *Contour) *Contour {
	n := contour.Len()
	if n <= 2 {
		return contour
	}

	builder := &ContourBuilder{}
	for i := 0; i < n; i++ {
		prev := contour.At(CircularIndex(i-1, n))
		next := contour.At(CircularIndex(i+1, n))
		if Turn(prev, contour.At(i), next) != Collinear {
			builder.Add(contour.At(i))
		}
	}
	return builder.Result()
}

// Merge two disjoint convex hulls, with a lying entirely non-greater than b
// in the sort order. Finds the lower and upper common tangents and stitches
// the retained arcs of both boundaries into one counterclockwise contour.
func merge(a, b *Contour) *Contour {
	// The tangent walk assumes hulls with nonzero area, so a fully collinear
	// union takes the degenerate path instead.
	if isOnOneLineUnion(a, b) {
		return buildOnelineContour(a, b)
	}

	// Lower tangent: a steps backward from its rightmost point, b steps
	// forward from its leftmost.
	aDown, bDown := findTangent(rightmost(NewCirculator(a)), leftmost(NewCirculator(b)))

	// Upper tangent: same starting points, roles swapped.
	bUp, aUp := findTangent(leftmost(NewCirculator(b)), rightmost(NewCirculator(a)))

	// Walk a from the upper tangent down to the lower one, then b from the
	// lower tangent back up, skipping the arcs that face the other hull.
	builder := &ContourBuilder{}
	addContourArc(builder, a, aUp, aDown)
	addContourArc(builder, b, bDown, bUp)

	return removeCollinear(builder.Result())
}
