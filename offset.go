package polyline

import "time"

// offsetStrategies dispatches validated configurations to their strategy.
// Each strategy receives a signed distance: negative for the left side,
// positive for the right.
var offsetStrategies = map[OffsetAlgorithm]func([]Point, float64, OffsetConfig) []Point{
	OffsetParallel:      offsetParallel,
	OffsetPerpendicular: offsetPerpendicular,
	OffsetAdaptive:      offsetAdaptive,
}

// GenerateOffset runs the configured offset strategy over curve, once per
// requested direction, and returns the offset curves with their quality
// metrics. Each returned curve carries its side in Metadata under
// [MetaDirection]. The input curve is never modified. Configuration problems
// surface as a [ConfigError] before any computation runs; a strategy
// producing a degenerate curve surfaces as a [ComputeError], never as a
// partial result.
func GenerateOffset(curve Curve, cfg OffsetConfig) (OffsetResult, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return OffsetResult{}, err
	}
	if len(curve.Points) < 2 {
		return OffsetResult{}, &ComputeError{Op: "offset", Reason: "curve needs at least two points"}
	}

	var sides []OffsetDirection
	switch cfg.Direction {
	case DirectionBoth:
		sides = []OffsetDirection{DirectionLeft, DirectionRight}
	default:
		sides = []OffsetDirection{cfg.Direction}
	}

	start := time.Now()
	strategy := offsetStrategies[cfg.Algorithm]
	curves := make([]Curve, 0, len(sides))
	for _, side := range sides {
		dist := cfg.Distance
		if side == DirectionLeft {
			dist = -dist
		}
		pts := strategy(curve.Points, dist, cfg)
		if len(pts) < 2 {
			return OffsetResult{}, &ComputeError{Op: "offset", Reason: "strategy produced a degenerate curve"}
		}
		c := curve.derive(pts)
		c.Metadata[MetaDirection] = string(side)
		curves = append(curves, c)
	}

	return OffsetResult{
		Curves:   curves,
		Distance: cfg.Distance,
		Metrics:  offsetMetrics(curve.Points, curves),
		Duration: time.Since(start),
	}, nil
}
