// Package polyline provides batch optimization and offset generation for 2D
// polylines. It was designed to prepare curve data for a parametric deformer
// pipeline, but the algorithms are general enough to be useful wherever point
// sequences need thinning, smoothing, or parallel curves.
//
// # Features
//
// We provide the following notable features:
//
//   - Quality-based point selection with corner preservation (see [Optimize]
//     with [OptimizeQuality])
//   - Douglas-Peucker point reduction with adaptive tolerance
//     (see [OptimizeReduction])
//   - Iterative endpoint-pinned smoothing (see [OptimizeSmoothing])
//   - Parallel, perpendicular, and curvature-adaptive offset curves
//     (see [GenerateOffset])
//   - Quality metrics for every transformation (see [OptimizationResult] and
//     [OffsetResult])
//
// # Curves and results
//
// [Curve] is an immutable ordered sequence of 2D points plus free-form
// provenance metadata. Every transformation allocates a new Curve; inputs are
// never mutated, so distinct calls are safe to run concurrently from multiple
// goroutines.
//
// The two entry points are [Optimize] and [GenerateOffset]. Both validate
// their configuration up front and return a typed [*ConfigError] before any
// computation runs; a strategy that produces a degenerate result yields a
// typed [*ComputeError] instead. The geometric primitives themselves never
// fail: a zero-length segment contributes zero curvature and leaves its
// point unmoved.
//
// Configurations are plain structs with defaults resolved once at entry.
// Start from [DefaultOptimizeConfig] or [DefaultOffsetConfig] and override
// fields as needed.
//
// # Costs
//
// Quality-based selection and point reduction are O(n²) in the number of
// points; smoothing is O(n·iterations). The package performs no chunking or
// streaming; callers are responsible for bounding input size.
package polyline
