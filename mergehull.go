// Convex hulls of planar point sets by divide and conquer.
//
// This package sorts the input points, recursively splits them into halves,
// builds trivial hulls for the smallest pieces, and merges sibling hulls by
// finding their common tangent lines. The result is the counterclockwise
// boundary of the smallest convex polygon containing every input point.
package mergehull

import "github.com/osuushi/mergehull/internal"

type Point = internal.Point
type Contour = internal.Contour

// Compute the convex hull of a set of points.
//
// At least two points are required. The returned contour lists the hull
// vertices in counterclockwise order with no closing duplicate. If every
// input point lies on a single line, the result is a degenerate contour
// covering the full collinear run rather than a polygon.
func MergeHull(points []Point) (result *Contour, err error) {
	defer func() {
		recoveredErr := internal.HandleMergeHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.MergeHull(points), nil
}
