package polyline

// offsetAdaptive displaces each point along its local perpendicular with a
// distance modulated by local curvature. High-curvature regions (above
// CurvatureThreshold) pull the offset in to avoid self-intersection; gentle
// bends push it out, capped at MaxDistanceFactor. Straight runs use the base
// distance unmodified. Endpoints have zero curvature by definition.
func offsetAdaptive(pts []Point, dist float64, cfg OffsetConfig) []Point {
	if len(pts) < 2 {
		return nil
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		var curvature float64
		if i > 0 && i < len(pts)-1 {
			curvature = curvatureAt(pts[i-1], p, pts[i+1])
		}
		out[i] = p.Translate(localPerp(pts, i).Mul(dist * adaptiveFactor(curvature, cfg)))
	}
	return out
}

// adaptiveFactor maps curvature to a distance multiplier.
func adaptiveFactor(curvature float64, cfg OffsetConfig) float64 {
	switch {
	case curvature > cfg.CurvatureThreshold:
		return 1 - curvature*0.5
	case curvature > 0:
		return min(cfg.MaxDistanceFactor, 1+(1-curvature)*0.3)
	default:
		return 1
	}
}
