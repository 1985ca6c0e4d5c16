package polyline

// offsetPerpendicular displaces each point along the perpendicular of its
// local direction: the adjacent edge at the endpoints, the average of the two
// adjacent edges in the interior. No corner handling, no smoothing; the
// output always has the same point count as the input.
func offsetPerpendicular(pts []Point, dist float64, cfg OffsetConfig) []Point {
	if len(pts) < 2 {
		return nil
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = p.Translate(localPerp(pts, i).Mul(dist))
	}
	return out
}

// localPerp returns the unit perpendicular of the curve direction at index i.
func localPerp(pts []Point, i int) Vec2 {
	var dir Vec2
	switch i {
	case 0:
		dir = pts[1].Sub(pts[0])
	case len(pts) - 1:
		dir = pts[len(pts)-1].Sub(pts[len(pts)-2])
	default:
		dir = pts[i+1].Sub(pts[i-1]).Mul(0.5)
	}
	return dir.Perp().NormalizeOrZero()
}
