package polyline

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Metric keys used in result metric maps. All scores are clamped to [0, 1].
const (
	MetricQualityScore      = "quality_score"
	MetricShapePreservation = "shape_preservation"
	MetricSmoothness        = "smoothness"
	MetricAccuracy          = "accuracy"
)

// optimizeMetrics scores an optimized point sequence against its original.
// quality_score blends shape preservation and smoothness 0.7/0.3.
func optimizeMetrics(original, optimized []Point) map[string]float64 {
	shape := shapePreservationScore(original, optimized)
	smooth := smoothnessScore(optimized)
	return map[string]float64{
		MetricShapePreservation: shape,
		MetricSmoothness:        smooth,
		MetricQualityScore:      clamp01(0.7*shape + 0.3*smooth),
	}
}

// offsetMetrics scores generated offset curves against the source points.
// Accuracy measures how uniform the pointwise offset distances are; it is
// only computable for curves whose cardinality still matches the input
// (corner rounding may have changed it). Scores are averaged across curves
// and quality_score blends accuracy and smoothness 0.6/0.4.
func offsetMetrics(original []Point, curves []Curve) map[string]float64 {
	var accSum, smoothSum float64
	var accN, smoothN int
	for _, c := range curves {
		smoothSum += smoothnessScore(c.Points)
		smoothN++
		if len(c.Points) != len(original) {
			continue
		}
		dists := make([]float64, len(original))
		for i, p := range original {
			dists[i] = p.Distance(c.Points[i])
		}
		accSum += accuracyScore(dists)
		accN++
	}
	metrics := map[string]float64{}
	var acc, smooth float64
	if smoothN > 0 {
		smooth = smoothSum / float64(smoothN)
	}
	metrics[MetricSmoothness] = smooth
	if accN > 0 {
		acc = accSum / float64(accN)
		metrics[MetricAccuracy] = acc
	}
	metrics[MetricQualityScore] = clamp01(0.6*acc + 0.4*smooth)
	return metrics
}

// shapePreservationScore is 1 minus the mean distance from each original
// point to its nearest optimized point, clamped to [0, 1].
func shapePreservationScore(original, optimized []Point) float64 {
	if len(original) == 0 || len(optimized) == 0 {
		return 0
	}
	dists := make([]float64, len(original))
	for i, p := range original {
		nearest := math.Inf(1)
		for _, q := range optimized {
			if d := p.Distance(q); d < nearest {
				nearest = d
			}
		}
		dists[i] = nearest
	}
	return clamp01(1 - stat.Mean(dists, nil))
}

// smoothnessScore is 1 minus the mean turning angle over π, clamped to
// [0, 1]. Sequences with fewer than three points score 0.
func smoothnessScore(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	angles := make([]float64, 0, len(pts)-2)
	for i := 1; i < len(pts)-1; i++ {
		angles = append(angles, turningAngle(pts[i-1], pts[i], pts[i+1]))
	}
	return clamp01(1 - stat.Mean(angles, nil)/math.Pi)
}

// accuracyScore is 1 minus the coefficient of variation of the pointwise
// offset distances, clamped to [0, 1]. A perfectly uniform offset scores 1.
func accuracyScore(dists []float64) float64 {
	if len(dists) < 2 {
		return 0
	}
	mean := stat.Mean(dists, nil)
	if mean == 0 {
		return 0
	}
	return clamp01(1 - stat.StdDev(dists, nil)/mean)
}
