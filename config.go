package polyline

import "math"

// OptimizeAlgorithm selects an optimization strategy.
type OptimizeAlgorithm string

const (
	// OptimizeQuality keeps the highest-scoring points, with corners always
	// retained.
	OptimizeQuality OptimizeAlgorithm = "quality"
	// OptimizeReduction removes points via Douglas-Peucker reduction.
	OptimizeReduction OptimizeAlgorithm = "reduction"
	// OptimizeSmoothing averages interior points towards their neighbours,
	// preserving the point count.
	OptimizeSmoothing OptimizeAlgorithm = "smoothing"
)

// OptimizeConfig controls [Optimize]. The zero value is not valid; start
// from [DefaultOptimizeConfig]. Numeric fields left at zero where zero is out
// of range are resolved to their defaults at orchestrator entry.
type OptimizeConfig struct {
	Algorithm OptimizeAlgorithm

	// TargetQuality is the fraction of points retained by the quality
	// strategy, in [0.1, 1.0]. Default 0.8.
	TargetQuality float64
	// MaxPointReduction is the fraction of points removed by the reduction
	// strategy, in [0.1, 0.9]. Default 0.5.
	MaxPointReduction float64
	// SmoothingFactor is the smoothing blend weight, in [0.0, 1.0].
	// A factor of 0 leaves the curve unchanged. Default 0.5.
	SmoothingFactor float64
	// SmoothingIterations is the smoothing pass count, in [1, 10]. Default 3.
	SmoothingIterations int
	// PreserveShape enables the shape-preservation pass of each strategy.
	// Default true.
	PreserveShape bool
	// CornerDetection enables the corner bias of the quality strategy.
	// Default true.
	CornerDetection bool

	// GapThreshold is the output-segment length above which the quality
	// strategy's shape-preservation pass inserts an extra point, and
	// SnapTolerance the distance within which that point snaps to an original
	// point. SnapTolerance also bounds the drift the smoothing strategy
	// tolerates before damping. These are absolute units, not scaled to the
	// curve's extent; the defaults (1.0 and 0.5) match the behaviour the
	// deformer pipeline was tuned against.
	GapThreshold  float64
	SnapTolerance float64
}

// DefaultOptimizeConfig returns the default optimization configuration,
// using the quality strategy.
func DefaultOptimizeConfig() OptimizeConfig {
	return OptimizeConfig{
		Algorithm:           OptimizeQuality,
		TargetQuality:       0.8,
		MaxPointReduction:   0.5,
		SmoothingFactor:     0.5,
		SmoothingIterations: 3,
		PreserveShape:       true,
		CornerDetection:     true,
		GapThreshold:        1.0,
		SnapTolerance:       0.5,
	}
}

// withDefaults fills fields whose zero value lies outside the valid range.
// Fields for which zero is a meaningful setting (SmoothingFactor,
// GapThreshold, SnapTolerance) are left untouched.
func (cfg OptimizeConfig) withDefaults() OptimizeConfig {
	if cfg.TargetQuality == 0 {
		cfg.TargetQuality = 0.8
	}
	if cfg.MaxPointReduction == 0 {
		cfg.MaxPointReduction = 0.5
	}
	if cfg.SmoothingIterations == 0 {
		cfg.SmoothingIterations = 3
	}
	return cfg
}

func (cfg OptimizeConfig) validate() error {
	switch cfg.Algorithm {
	case OptimizeQuality:
		if cfg.TargetQuality < 0.1 || cfg.TargetQuality > 1.0 {
			return configErrorf("target_quality", "must be between 0.1 and 1.0, got %g", cfg.TargetQuality)
		}
	case OptimizeReduction:
		if cfg.MaxPointReduction < 0.1 || cfg.MaxPointReduction > 0.9 {
			return configErrorf("max_point_reduction", "must be between 0.1 and 0.9, got %g", cfg.MaxPointReduction)
		}
	case OptimizeSmoothing:
		if cfg.SmoothingFactor < 0 || cfg.SmoothingFactor > 1 {
			return configErrorf("smoothing_factor", "must be between 0.0 and 1.0, got %g", cfg.SmoothingFactor)
		}
		if cfg.SmoothingIterations < 1 || cfg.SmoothingIterations > 10 {
			return configErrorf("smoothing_iterations", "must be between 1 and 10, got %d", cfg.SmoothingIterations)
		}
	case "":
		return configErrorf("algorithm", "missing algorithm")
	default:
		return configErrorf("algorithm", "unknown algorithm %q", cfg.Algorithm)
	}
	if cfg.GapThreshold < 0 {
		return configErrorf("gap_threshold", "must not be negative, got %g", cfg.GapThreshold)
	}
	if cfg.SnapTolerance < 0 {
		return configErrorf("snap_tolerance", "must not be negative, got %g", cfg.SnapTolerance)
	}
	return nil
}

// OffsetAlgorithm selects an offset strategy.
type OffsetAlgorithm string

const (
	// OffsetParallel offsets along averaged segment normals with optional
	// corner handling and smoothing.
	OffsetParallel OffsetAlgorithm = "parallel"
	// OffsetPerpendicular offsets each point along its local perpendicular.
	// The simplest baseline; no corner handling, no smoothing.
	OffsetPerpendicular OffsetAlgorithm = "perpendicular"
	// OffsetAdaptive modulates the offset distance by local curvature.
	OffsetAdaptive OffsetAlgorithm = "adaptive"
)

// OffsetDirection selects which side(s) of the curve to offset towards.
type OffsetDirection string

const (
	DirectionLeft  OffsetDirection = "left"
	DirectionRight OffsetDirection = "right"
	DirectionBoth  OffsetDirection = "both"
)

// CornerHandling selects how the parallel strategy treats sharp corners.
type CornerHandling string

const (
	// CornerNone leaves corners untouched.
	CornerNone CornerHandling = "none"
	// CornerRound replaces vertices whose angle falls below CornerThreshold
	// with a quadratic Bézier interpolation.
	CornerRound CornerHandling = "round"
	// CornerAdaptive rounds vertices whose curvature exceeds CornerCurvature.
	CornerAdaptive CornerHandling = "adaptive"
)

// OffsetConfig controls [GenerateOffset]. The zero value is not valid; start
// from [DefaultOffsetConfig].
type OffsetConfig struct {
	Algorithm OffsetAlgorithm
	// Distance is the offset distance; it must be positive. Direction
	// determines the applied sign. Default 1.0.
	Distance float64
	// Direction selects the offset side: left negates the distance, right
	// applies it as-is, both generates one curve per side. Default both.
	Direction OffsetDirection

	// CornerHandling applies to the parallel strategy only. Default adaptive.
	CornerHandling CornerHandling
	// CornerThreshold is the vertex angle in radians below which round-mode
	// corner handling triggers. Default π/6 (30°).
	CornerThreshold float64
	// CornerCurvature is the curvature above which adaptive-mode corner
	// handling triggers. Default 0.5.
	CornerCurvature float64
	// SmoothCurves enables the parallel strategy's endpoint-pinned smoothing
	// pass over the offset points. Default true.
	SmoothCurves        bool
	SmoothingFactor     float64 // default 0.3
	SmoothingIterations int     // default 2

	// CurvatureThreshold separates the reduce and boost branches of the
	// adaptive strategy, in [0, 1]. Default 0.3. A zero value is treated as
	// unset and resolved to the default; to make every curved vertex take
	// the reduce branch, use a small positive threshold instead.
	CurvatureThreshold float64
	// MaxDistanceFactor caps the adaptive strategy's distance boost; it must
	// exceed 1. Default 2.0.
	MaxDistanceFactor float64
}

// DefaultOffsetConfig returns the default offset configuration, using the
// parallel strategy on both sides.
func DefaultOffsetConfig() OffsetConfig {
	return OffsetConfig{
		Algorithm:           OffsetParallel,
		Distance:            1.0,
		Direction:           DirectionBoth,
		CornerHandling:      CornerAdaptive,
		CornerThreshold:     math.Pi / 6,
		CornerCurvature:     0.5,
		SmoothCurves:        true,
		SmoothingFactor:     0.3,
		SmoothingIterations: 2,
		CurvatureThreshold:  0.3,
		MaxDistanceFactor:   2.0,
	}
}

func (cfg OffsetConfig) withDefaults() OffsetConfig {
	if cfg.Distance == 0 {
		cfg.Distance = 1.0
	}
	if cfg.Direction == "" {
		cfg.Direction = DirectionBoth
	}
	if cfg.CornerHandling == "" {
		cfg.CornerHandling = CornerAdaptive
	}
	if cfg.CornerThreshold == 0 {
		cfg.CornerThreshold = math.Pi / 6
	}
	if cfg.CornerCurvature == 0 {
		cfg.CornerCurvature = 0.5
	}
	if cfg.SmoothingIterations == 0 {
		cfg.SmoothingIterations = 2
	}
	if cfg.CurvatureThreshold == 0 {
		cfg.CurvatureThreshold = 0.3
	}
	if cfg.MaxDistanceFactor == 0 {
		cfg.MaxDistanceFactor = 2.0
	}
	return cfg
}

func (cfg OffsetConfig) validate() error {
	switch cfg.Algorithm {
	case OffsetParallel:
		switch cfg.CornerHandling {
		case CornerNone, CornerRound, CornerAdaptive:
		default:
			return configErrorf("corner_handling", "unknown corner handling %q", cfg.CornerHandling)
		}
	case OffsetPerpendicular:
		// No configuration beyond the base distance.
	case OffsetAdaptive:
		if cfg.CurvatureThreshold < 0 || cfg.CurvatureThreshold > 1 {
			return configErrorf("curvature_threshold", "must be between 0.0 and 1.0, got %g", cfg.CurvatureThreshold)
		}
		if cfg.MaxDistanceFactor <= 1 {
			return configErrorf("max_distance_factor", "must be greater than 1.0, got %g", cfg.MaxDistanceFactor)
		}
	case "":
		return configErrorf("algorithm", "missing algorithm")
	default:
		return configErrorf("algorithm", "unknown algorithm %q", cfg.Algorithm)
	}
	if cfg.Distance <= 0 {
		return configErrorf("offset_distance", "must be positive, got %g", cfg.Distance)
	}
	switch cfg.Direction {
	case DirectionLeft, DirectionRight, DirectionBoth:
	default:
		return configErrorf("offset_direction", "unknown direction %q", cfg.Direction)
	}
	return nil
}
