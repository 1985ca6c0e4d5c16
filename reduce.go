package polyline

import "math"

// reinsertCurvature is the curvature above which PreserveShape adds removed
// points back after reduction.
const reinsertCurvature = 0.3

// optimizeReduction removes up to MaxPointReduction of the points using
// Douglas-Peucker reduction with a tolerance scaled to the curve's extent.
// Curves already at or below the target count pass through unchanged.
// When the reduction undershoots the target count, the result is resampled
// down to it. With PreserveShape enabled, removed points in high-curvature
// regions are reinserted afterwards.
func optimizeReduction(pts []Point, cfg OptimizeConfig) []Point {
	if len(pts) <= 2 {
		return clonePoints(pts)
	}

	target := max(2, int(math.Round(float64(len(pts))*(1-cfg.MaxPointReduction))))
	if len(pts) <= target {
		return clonePoints(pts)
	}
	tolerance := max(0.001, BoundingBox(pts).MaxDimension()*(1-float64(target)/float64(len(pts)))*0.1)

	reduced := douglasPeucker(pts, tolerance)
	if len(reduced) > target {
		reduced = resample(reduced, target)
	}

	if cfg.PreserveShape {
		reduced = reinsertCurved(pts, reduced)
	}
	return reduced
}

// douglasPeucker recursively keeps the point farthest from the chord when its
// distance exceeds tolerance, otherwise collapses the run to its endpoints.
func douglasPeucker(pts []Point, tolerance float64) []Point {
	if len(pts) <= 2 {
		return clonePoints(pts)
	}
	maxDist := 0.0
	maxIdx := 0
	first, last := pts[0], pts[len(pts)-1]
	for i := 1; i < len(pts)-1; i++ {
		if d := pointSegmentDistance(pts[i], first, last); d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}
	if maxDist <= tolerance {
		return []Point{first, last}
	}
	left := douglasPeucker(pts[:maxIdx+1], tolerance)
	right := douglasPeucker(pts[maxIdx:], tolerance)
	return append(left[:len(left)-1], right...)
}

// resample picks target points from pts at evenly spaced indices, always
// including both endpoints.
func resample(pts []Point, target int) []Point {
	if target >= len(pts) {
		return pts
	}
	if target <= 2 {
		return []Point{pts[0], pts[len(pts)-1]}
	}
	step := float64(len(pts)) / float64(target-1)
	out := make([]Point, 0, target)
	seen := map[int]bool{}
	for i := 0; i < target-1; i++ {
		idx := min(int(math.Round(float64(i)*step)), len(pts)-1)
		if seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, pts[idx])
	}
	if !seen[len(pts)-1] {
		out = append(out, pts[len(pts)-1])
	}
	return out
}

// reinsertCurved adds removed original points whose curvature exceeds
// reinsertCurvature back into reduced, each at the segment it is closest to.
// Points already present are skipped, so the output never exceeds the
// original count.
func reinsertCurved(original, reduced []Point) []Point {
	out := clonePoints(reduced)
	for i := 1; i < len(original)-1; i++ {
		p := original[i]
		if curvatureAt(original[i-1], p, original[i+1]) <= reinsertCurvature {
			continue
		}
		if containsPoint(out, p) {
			continue
		}
		bestSeg := 0
		bestDist := math.Inf(1)
		for j := 0; j < len(out)-1; j++ {
			if d := pointSegmentDistance(p, out[j], out[j+1]); d < bestDist {
				bestDist = d
				bestSeg = j
			}
		}
		out = append(out[:bestSeg+1], append([]Point{p}, out[bestSeg+1:]...)...)
	}
	return out
}

func containsPoint(pts []Point, q Point) bool {
	for _, p := range pts {
		if p == q {
			return true
		}
	}
	return false
}
