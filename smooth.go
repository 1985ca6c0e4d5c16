package polyline

// optimizeSmoothing runs SmoothingIterations passes of neighbour averaging
// over the interior points. The point count never changes and the endpoints
// stay fixed. With PreserveShape enabled, points that drifted farther than
// SnapTolerance from their original position are damped halfway back.
func optimizeSmoothing(pts []Point, cfg OptimizeConfig) []Point {
	out := smoothPasses(pts, cfg.SmoothingFactor, cfg.SmoothingIterations)
	if cfg.PreserveShape {
		for i := range out {
			if out[i].Distance(pts[i]) > cfg.SnapTolerance {
				out[i] = pts[i].Midpoint(out[i])
			}
		}
	}
	return out
}

// smoothPasses blends each interior point towards the midpoint of its
// neighbours, factor per pass. A factor of 0 is the identity.
func smoothPasses(pts []Point, factor float64, iterations int) []Point {
	out := clonePoints(pts)
	if len(out) < 3 {
		return out
	}
	for n := 0; n < iterations; n++ {
		next := clonePoints(out)
		for i := 1; i < len(out)-1; i++ {
			avg := out[i-1].Midpoint(out[i+1])
			next[i] = out[i].Lerp(avg, factor)
		}
		out = next
	}
	return out
}
