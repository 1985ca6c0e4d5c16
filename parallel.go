package polyline

// offsetParallel displaces each point along the average of its adjacent
// segment normals, then applies corner handling and optional smoothing.
// dist is signed: positive offsets to the right of the travel direction.
func offsetParallel(pts []Point, dist float64, cfg OffsetConfig) []Point {
	out := offsetAlongNormals(pts, dist)
	if cfg.CornerHandling != CornerNone {
		out = roundCorners(out, cfg)
	}
	if cfg.SmoothCurves {
		out = smoothPasses(out, cfg.SmoothingFactor, cfg.SmoothingIterations)
	}
	return out
}

// offsetAlongNormals displaces pts by dist along per-point normals. Each
// segment contributes the normal perpendicular to its direction; interior
// points average their two adjacent segment normals.
func offsetAlongNormals(pts []Point, dist float64) []Point {
	if len(pts) < 2 {
		return nil
	}
	normals := make([]Vec2, len(pts)-1)
	for i := range normals {
		normals[i] = pts[i+1].Sub(pts[i]).Perp().NormalizeOrZero()
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		var n Vec2
		switch i {
		case 0:
			n = normals[0]
		case len(pts) - 1:
			n = normals[len(normals)-1]
		default:
			n = normals[i-1].Add(normals[i]).NormalizeOrZero()
		}
		out[i] = p.Translate(n.Mul(dist))
	}
	return out
}

// roundCorners replaces each interior vertex that triggers the configured
// corner test with two points sampled from the quadratic Bézier through the
// vertex and its neighbours. Round mode triggers on vertex angles below
// CornerThreshold; adaptive mode on curvature above CornerCurvature.
func roundCorners(pts []Point, cfg OffsetConfig) []Point {
	if len(pts) < 3 {
		return pts
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[0])
	for i := 1; i < len(pts)-1; i++ {
		prev, p, next := pts[i-1], pts[i], pts[i+1]
		sharp := false
		switch cfg.CornerHandling {
		case CornerRound:
			a := vertexAngle(prev, p, next)
			sharp = a > 0 && a < cfg.CornerThreshold
		case CornerAdaptive:
			sharp = curvatureAt(prev, p, next) > cfg.CornerCurvature
		}
		if !sharp {
			out = append(out, p)
			continue
		}
		out = append(out,
			quadBezPoint(prev, p, next, 1.0/3.0),
			quadBezPoint(prev, p, next, 2.0/3.0),
		)
	}
	return append(out, pts[len(pts)-1])
}
