package polyline

// Rect is an axis-aligned rectangle with X0 ≤ X1 and Y0 ≤ Y1.
type Rect struct {
	X0 float64
	Y0 float64
	X1 float64
	Y1 float64
}

// BoundingBox returns the smallest rectangle containing all points. The zero
// rectangle is returned for an empty sequence.
func BoundingBox(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// UnionPoint returns the smallest rectangle containing both r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Width returns the rectangle's width.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// MaxDimension returns the larger of width and height. Adaptive tolerance
// computation uses it as the curve's characteristic size.
func (r Rect) MaxDimension() float64 {
	return max(r.Width(), r.Height())
}
