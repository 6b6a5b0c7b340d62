package internal

// A Circulator is a cyclic cursor over a contour's points. Stepping past
// either end wraps around, so a traversal can start anywhere and walk
// indefinitely in either direction. The tangent search depends on this: it
// scans around a hull boundary with no fixed start or end.
//
// Circulators are small comparable values. Copying one snapshots a position,
// and == compares both the underlying contour (by identity) and the position,
// so two circulators at different positions holding equal point values are
// not equal. The circulator borrows its contour and must not outlive it.
type Circulator struct {
	contour *Contour
	index   int
}

// A circulator positioned at the contour's first point.
func NewCirculator(c *Contour) Circulator {
	return Circulator{contour: c}
}

// The point under the cursor.
func (c Circulator) Point() Point {
	return c.contour.At(c.index)
}

// The cursor moved one step forward, wrapping at the end.
func (c Circulator) Next() Circulator {
	return Circulator{c.contour, CircularIndex(c.index+1, c.contour.Len())}
}

// The cursor moved one step backward, wrapping at the beginning.
func (c Circulator) Prev() Circulator {
	return Circulator{c.contour, CircularIndex(c.index-1, c.contour.Len())}
}
