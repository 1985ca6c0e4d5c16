package polyline

import "time"

// optimizeStrategies dispatches validated configurations to their strategy.
var optimizeStrategies = map[OptimizeAlgorithm]func([]Point, OptimizeConfig) []Point{
	OptimizeQuality:   optimizeQuality,
	OptimizeReduction: optimizeReduction,
	OptimizeSmoothing: optimizeSmoothing,
}

// Optimize runs the configured optimization strategy over curve and returns
// the optimized curve with its quality metrics. The input curve is never
// modified. Configuration problems surface as a [ConfigError] before any
// computation runs; a strategy producing an empty result surfaces as a
// [ComputeError], never as a partial result.
func Optimize(curve Curve, cfg OptimizeConfig) (OptimizationResult, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return OptimizationResult{}, err
	}
	if len(curve.Points) == 0 {
		return OptimizationResult{}, &ComputeError{Op: "optimize", Reason: "curve has no points"}
	}

	start := time.Now()
	optimized := optimizeStrategies[cfg.Algorithm](curve.Points, cfg)
	if len(optimized) == 0 {
		return OptimizationResult{}, &ComputeError{Op: "optimize", Reason: "strategy produced no points"}
	}

	return OptimizationResult{
		Curve:          curve.derive(optimized),
		OriginalCount:  len(curve.Points),
		OptimizedCount: len(optimized),
		Metrics:        optimizeMetrics(curve.Points, optimized),
		Duration:       time.Since(start),
	}, nil
}
