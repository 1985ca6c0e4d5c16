package polyline

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParallelOffsetSquare(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0)}
	cfg := DefaultOffsetConfig()
	cfg.CornerHandling = CornerNone
	cfg.SmoothCurves = false

	res, err := GenerateOffset(NewCurve(square), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(res.Curves))
	}
	left, right := res.Curves[0], res.Curves[1]
	if left.Metadata[MetaDirection] != "left" || right.Metadata[MetaDirection] != "right" {
		t.Errorf("got directions %q and %q, want left and right",
			left.Metadata[MetaDirection], right.Metadata[MetaDirection])
	}

	// Without corner handling or smoothing every point moves exactly one
	// unit along its averaged unit normal.
	for _, c := range res.Curves {
		if len(c.Points) != len(square) {
			t.Fatalf("got %d points, want %d", len(c.Points), len(square))
		}
		for i, p := range c.Points {
			if d := p.Distance(square[i]); math.Abs(d-1) > 1e-9 {
				t.Errorf("point %d moved %g units, want 1", i, d)
			}
		}
	}

	// The square winds counter-clockwise, so the right offset falls inside
	// it and the left offset outside.
	orig := BoundingBox(square)
	for _, p := range right.Points {
		if p.X < orig.X0 || p.X > orig.X1 || p.Y < orig.Y0 || p.Y > orig.Y1 {
			t.Errorf("right offset point %v escaped the original bounds", p)
		}
	}
	outer := BoundingBox(left.Points)
	if outer.X0 >= orig.X0 || outer.X1 <= orig.X1 {
		t.Error("left offset did not expand beyond the original bounds")
	}
}

func TestParallelOffsetSquareDefaults(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0)}
	res, err := GenerateOffset(NewCurve(square), DefaultOffsetConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(res.Curves))
	}
	// The square's corner curvature sits exactly at the adaptive trigger
	// and does not round, so the point count is preserved even with the
	// default corner handling and smoothing.
	for _, c := range res.Curves {
		if len(c.Points) != len(square) {
			t.Errorf("got %d points, want %d", len(c.Points), len(square))
		}
	}
	for _, key := range []string{MetricQualityScore, MetricSmoothness} {
		if score := res.Metrics[key]; score < 0 || score > 1 {
			t.Errorf("metric %q = %g out of range", key, score)
		}
	}
	if res.Distance != 1 {
		t.Errorf("got distance %g, want 1", res.Distance)
	}
}

func TestParallelOffsetTwoPoints(t *testing.T) {
	res, err := GenerateOffset(NewCurve([]Point{Pt(0, 0), Pt(10, 0)}), DefaultOffsetConfig())
	if err != nil {
		t.Fatal(err)
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, []Point{Pt(0, -1), Pt(10, -1)}, res.Curves[0].Points, approx)
	diff(t, []Point{Pt(0, 1), Pt(10, 1)}, res.Curves[1].Points, approx)
}

func TestRoundCorners(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(1.05, 2), Pt(1.1, 0), Pt(2, 0)}
	cfg := DefaultOffsetConfig()
	cfg.CornerHandling = CornerRound

	got := roundCorners(pts, cfg)
	// The spike tip falls under the angle threshold and is replaced by two
	// points on the quadratic Bézier through its neighbours.
	if len(got) != len(pts)+1 {
		t.Fatalf("got %d points, want %d", len(got), len(pts)+1)
	}
	if containsPoint(got, Pt(1.05, 2)) {
		t.Error("sharp vertex survived rounding")
	}
	if got[0] != pts[0] || got[len(got)-1] != pts[len(pts)-1] {
		t.Error("endpoints moved")
	}
}

func TestAdaptiveMatchesPerpendicularOnStraightLine(t *testing.T) {
	line := NewCurve([]Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)})
	cfg := DefaultOffsetConfig()
	cfg.Distance = 2
	cfg.Direction = DirectionRight

	cfg.Algorithm = OffsetPerpendicular
	perp, err := GenerateOffset(line, cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Algorithm = OffsetAdaptive
	adaptive, err := GenerateOffset(line, cfg)
	if err != nil {
		t.Fatal(err)
	}
	// Zero curvature leaves the adaptive distance unmodulated.
	diff(t, perp.Curves[0].Points, adaptive.Curves[0].Points)
}

func TestAdaptiveReducesDistanceInHighCurvature(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}
	cfg := DefaultOffsetConfig()
	cfg.Algorithm = OffsetAdaptive
	cfg.Direction = DirectionRight

	res, err := GenerateOffset(NewCurve(pts), cfg)
	if err != nil {
		t.Fatal(err)
	}
	got := res.Curves[0].Points
	// The square corner has curvature 0.5, above the threshold, pulling the
	// offset in to 1 - 0.5·0.5 = 0.75 of the base distance.
	if d := got[1].Distance(pts[1]); math.Abs(d-0.75) > 1e-9 {
		t.Errorf("corner point moved %g units, want 0.75", d)
	}
	// The endpoints have no curvature and keep the base distance.
	if d := got[0].Distance(pts[0]); math.Abs(d-1) > 1e-9 {
		t.Errorf("first point moved %g units, want 1", d)
	}
}

func TestAdaptiveBoostsGentleCurves(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0.1), Pt(2, 0)}
	cfg := DefaultOffsetConfig()
	cfg.Algorithm = OffsetAdaptive
	cfg.Direction = DirectionRight

	res, err := GenerateOffset(NewCurve(pts), cfg)
	if err != nil {
		t.Fatal(err)
	}
	curvature := curvatureAt(pts[0], pts[1], pts[2])
	if curvature <= 0 || curvature > cfg.CurvatureThreshold {
		t.Fatalf("test curvature %g not in the boost band", curvature)
	}
	want := 1 + (1-curvature)*0.3
	if d := res.Curves[0].Points[1].Distance(pts[1]); math.Abs(d-want) > 1e-9 {
		t.Errorf("gentle bend moved %g units, want %g", d, want)
	}
}

func TestOffsetSingleDirection(t *testing.T) {
	line := NewCurve([]Point{Pt(0, 0), Pt(10, 0)})
	cfg := DefaultOffsetConfig()
	cfg.Direction = DirectionLeft

	res, err := GenerateOffset(line, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Curves) != 1 {
		t.Fatalf("got %d curves, want 1", len(res.Curves))
	}
	if res.Curves[0].Metadata[MetaDirection] != "left" {
		t.Errorf("got direction %q, want left", res.Curves[0].Metadata[MetaDirection])
	}
}

func TestOffsetConfigValidation(t *testing.T) {
	curve := NewCurve([]Point{Pt(0, 0), Pt(10, 0)})
	cases := []struct {
		name  string
		cfg   OffsetConfig
		param string
	}{
		{
			"missing algorithm",
			OffsetConfig{},
			"algorithm",
		},
		{
			"unknown algorithm",
			OffsetConfig{Algorithm: "magic"},
			"algorithm",
		},
		{
			"negative distance",
			OffsetConfig{Algorithm: OffsetParallel, Distance: -1},
			"offset_distance",
		},
		{
			"unknown direction",
			OffsetConfig{Algorithm: OffsetParallel, Direction: "up"},
			"offset_direction",
		},
		{
			"unknown corner handling",
			OffsetConfig{Algorithm: OffsetParallel, CornerHandling: "mitre"},
			"corner_handling",
		},
		{
			"curvature threshold out of range",
			OffsetConfig{Algorithm: OffsetAdaptive, CurvatureThreshold: 1.5},
			"curvature_threshold",
		},
		{
			"max distance factor too small",
			OffsetConfig{Algorithm: OffsetAdaptive, MaxDistanceFactor: 0.5},
			"max_distance_factor",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateOffset(curve, tc.cfg)
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("got error %v, want a ConfigError", err)
			}
			if cerr.Param != tc.param {
				t.Errorf("got param %q, want %q", cerr.Param, tc.param)
			}
		})
	}
}

func TestOffsetZeroConfigDefaults(t *testing.T) {
	cfg := OffsetConfig{Algorithm: OffsetAdaptive}.withDefaults()
	if cfg.CurvatureThreshold != 0.3 {
		t.Errorf("got curvature threshold %g, want 0.3", cfg.CurvatureThreshold)
	}
	if cfg.MaxDistanceFactor != 2.0 {
		t.Errorf("got max distance factor %g, want 2.0", cfg.MaxDistanceFactor)
	}
	if cfg.Distance != 1.0 || cfg.Direction != DirectionBoth {
		t.Errorf("got distance %g direction %q, want 1.0 and both", cfg.Distance, cfg.Direction)
	}
}

func TestOffsetDegenerateCurve(t *testing.T) {
	_, err := GenerateOffset(NewCurve([]Point{Pt(0, 0)}), DefaultOffsetConfig())
	var cerr *ComputeError
	if !errors.As(err, &cerr) {
		t.Fatalf("got error %v, want a ComputeError", err)
	}
}

func TestOffsetDoesNotModifyInput(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, 1), Pt(4, 0)}
	curve := NewCurve(pts)
	for _, alg := range []OffsetAlgorithm{OffsetParallel, OffsetPerpendicular, OffsetAdaptive} {
		cfg := DefaultOffsetConfig()
		cfg.Algorithm = alg
		if _, err := GenerateOffset(curve, cfg); err != nil {
			t.Fatal(err)
		}
		diff(t, pts, curve.Points)
	}
	if _, tagged := curve.Metadata[MetaDirection]; tagged {
		t.Error("input metadata gained a direction tag")
	}
}

func TestOffsetMetricsUniformOffset(t *testing.T) {
	line := NewCurve([]Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)})
	cfg := DefaultOffsetConfig()
	cfg.Algorithm = OffsetPerpendicular

	res, err := GenerateOffset(line, cfg)
	if err != nil {
		t.Fatal(err)
	}
	// A perpendicular offset of a straight line is perfectly uniform and
	// perfectly smooth.
	for _, key := range []string{MetricQualityScore, MetricAccuracy, MetricSmoothness} {
		if score := res.Metrics[key]; math.Abs(score-1) > 1e-9 {
			t.Errorf("got %s = %g, want 1", key, score)
		}
	}
}
