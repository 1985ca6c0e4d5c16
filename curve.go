package polyline

import (
	"maps"
	"time"
)

// Metadata keys set by this package.
const (
	// MetaDirection tags an offset curve with the side it was generated on,
	// either "left" or "right".
	MetaDirection = "direction"
)

// Curve is an ordered sequence of 2D points with free-form provenance
// metadata. Curves are treated as immutable: transformations return new
// Curves and never modify their input.
type Curve struct {
	Points   []Point
	Metadata map[string]string
	// Format records the representation the points came from, e.g. "nurbs"
	// or "mesh". Informational only.
	Format string
	// Source optionally references the host object the points were extracted
	// from.
	Source string
}

// NewCurve returns a curve over a copy of pts with empty metadata.
func NewCurve(pts []Point) Curve {
	return Curve{
		Points:   clonePoints(pts),
		Metadata: map[string]string{},
	}
}

// Clone returns a deep copy of the curve.
func (c Curve) Clone() Curve {
	return c.derive(clonePoints(c.Points))
}

// derive returns a new curve with the given points, inheriting the receiver's
// metadata (copied), format, and source.
func (c Curve) derive(pts []Point) Curve {
	md := make(map[string]string, len(c.Metadata))
	maps.Copy(md, c.Metadata)
	return Curve{
		Points:   pts,
		Metadata: md,
		Format:   c.Format,
		Source:   c.Source,
	}
}

// OptimizationResult is the outcome of a single [Optimize] call.
type OptimizationResult struct {
	// Curve holds the optimized points.
	Curve Curve
	// OriginalCount and OptimizedCount record the point counts before and
	// after optimization.
	OriginalCount  int
	OptimizedCount int
	// Metrics holds quality scores keyed by [MetricQualityScore],
	// [MetricShapePreservation], and [MetricSmoothness], each in [0, 1].
	Metrics map[string]float64
	// Duration is the wall-clock processing time.
	Duration time.Duration
}

// OffsetResult is the outcome of a single [GenerateOffset] call.
type OffsetResult struct {
	// Curves holds one offset curve per requested direction, each tagged with
	// [MetaDirection] in its metadata.
	Curves []Curve
	// Distance is the requested offset distance.
	Distance float64
	// Metrics holds quality scores keyed by [MetricQualityScore],
	// [MetricAccuracy], and [MetricSmoothness], each in [0, 1].
	Metrics map[string]float64
	// Duration is the wall-clock processing time.
	Duration time.Duration
}
