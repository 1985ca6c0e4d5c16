package polyline

import (
	"math"
	"slices"
)

// cornerAngle is the vertex angle below which a point counts as a corner.
const cornerAngle = math.Pi / 4

// optimizeQuality keeps the round(n*TargetQuality) highest-scoring points, at
// least 2. Endpoints are always kept. With CornerDetection enabled, corners
// are kept unconditionally, even when that exceeds the target count. With
// PreserveShape enabled, a follow-up pass reinserts points into output
// segments longer than GapThreshold.
func optimizeQuality(pts []Point, cfg OptimizeConfig) []Point {
	if len(pts) <= 2 {
		return clonePoints(pts)
	}

	target := max(2, int(math.Round(float64(len(pts))*cfg.TargetQuality)))

	type scored struct {
		index int
		score float64
	}

	keep := map[int]bool{0: true, len(pts) - 1: true}
	var candidates []scored
	for i := 1; i < len(pts)-1; i++ {
		if cfg.CornerDetection {
			angle := vertexAngle(pts[i-1], pts[i], pts[i+1])
			if angle > 0 && angle < cornerAngle {
				keep[i] = true
				continue
			}
		}
		// Higher curvature means higher quality: a collinear vertex scores
		// 0, a full reversal 1. Degenerate neighbourhoods score neutral.
		score := 0.5
		if pts[i-1] != pts[i] && pts[i] != pts[i+1] {
			score = turningAngle(pts[i-1], pts[i], pts[i+1]) / math.Pi
		}
		candidates = append(candidates, scored{index: i, score: score})
	}

	slices.SortStableFunc(candidates, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return a.index - b.index
		}
	})
	for _, c := range candidates {
		if len(keep) >= target {
			break
		}
		keep[c.index] = true
	}

	out := make([]Point, 0, len(keep))
	for i, p := range pts {
		if keep[i] {
			out = append(out, p)
		}
	}

	if cfg.PreserveShape {
		out = preserveShape(pts, out, cfg)
	}
	return out
}

// preserveShape walks the optimized segments and inserts a point into each
// segment longer than GapThreshold: the nearest original point to the segment
// midpoint if it lies within SnapTolerance, otherwise the midpoint itself.
// Sequences of 2 or fewer points are returned unchanged.
func preserveShape(original, optimized []Point, cfg OptimizeConfig) []Point {
	if len(optimized) <= 2 {
		return optimized
	}
	out := make([]Point, 0, len(optimized))
	for i, p := range optimized {
		out = append(out, p)
		if i == len(optimized)-1 {
			break
		}
		next := optimized[i+1]
		if p.Distance(next) <= cfg.GapThreshold {
			continue
		}
		mid := p.Midpoint(next)
		insert := mid
		if nearest, d := nearestPoint(original, mid); d < cfg.SnapTolerance {
			insert = nearest
		}
		if insert == p || insert == next {
			continue
		}
		out = append(out, insert)
	}
	return out
}

// nearestPoint returns the point in pts closest to q and its distance.
func nearestPoint(pts []Point, q Point) (Point, float64) {
	best := pts[0]
	bestD := math.Inf(1)
	for _, p := range pts {
		if d := p.Distance(q); d < bestD {
			best, bestD = p, d
		}
	}
	return best, bestD
}
