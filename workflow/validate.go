package workflow

import (
	"fmt"
	"math"

	"github.com/rigtools/polyline"
)

// validateRun checks the pipeline results before anything is written back to
// the scene: curves must be non-degenerate with finite points, the optimized
// curve must keep the source endpoints, and every metric must be a valid
// score.
func validateRun(source polyline.Curve, res *Result) error {
	opt := res.Optimization
	if err := validateCurve("optimized", opt.Curve); err != nil {
		return err
	}
	first, last := opt.Curve.Points[0], opt.Curve.Points[len(opt.Curve.Points)-1]
	if first != source.Points[0] || last != source.Points[len(source.Points)-1] {
		return fmt.Errorf("optimized curve endpoints moved: got %v..%v, want %v..%v",
			first, last, source.Points[0], source.Points[len(source.Points)-1])
	}
	if err := validateMetrics("optimization", opt.Metrics); err != nil {
		return err
	}

	for i, c := range res.Offset.Curves {
		if err := validateCurve(fmt.Sprintf("offset %d", i), c); err != nil {
			return err
		}
		if c.Metadata[polyline.MetaDirection] == "" {
			return fmt.Errorf("offset curve %d has no direction tag", i)
		}
	}
	return validateMetrics("offset", res.Offset.Metrics)
}

func validateCurve(name string, c polyline.Curve) error {
	if len(c.Points) < 2 {
		return fmt.Errorf("%s curve has %d points, need at least 2", name, len(c.Points))
	}
	for i, p := range c.Points {
		if p.IsNaN() || p.IsInf() {
			return fmt.Errorf("%s curve point %d is not finite: %v", name, i, p)
		}
	}
	return nil
}

func validateMetrics(name string, metrics map[string]float64) error {
	for key, score := range metrics {
		if math.IsNaN(score) || score < 0 || score > 1 {
			return fmt.Errorf("%s metric %s = %g outside [0, 1]", name, key, score)
		}
	}
	return nil
}
