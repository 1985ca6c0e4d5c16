package polyline

import "testing"

func TestSmoothingZeroFactorIdentity(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, 1), Pt(4, 0)}
	cfg := DefaultOptimizeConfig()
	cfg.Algorithm = OptimizeSmoothing
	cfg.SmoothingFactor = 0

	res, err := Optimize(NewCurve(pts), cfg)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, pts, res.Curve.Points)
}

func TestSmoothingPullsInteriorTowardsNeighbours(t *testing.T) {
	cfg := DefaultOptimizeConfig()
	cfg.Algorithm = OptimizeSmoothing
	cfg.SmoothingFactor = 1
	cfg.SmoothingIterations = 1
	cfg.PreserveShape = false

	res, err := Optimize(NewCurve([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}), cfg)
	if err != nil {
		t.Fatal(err)
	}
	// Factor 1 moves the interior point all the way to the neighbour
	// midpoint; the endpoints never move.
	diff(t, []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0)}, res.Curve.Points)
}

func TestSmoothingPreserveShapeDamps(t *testing.T) {
	cfg := DefaultOptimizeConfig()
	cfg.Algorithm = OptimizeSmoothing
	cfg.SmoothingFactor = 1
	cfg.SmoothingIterations = 1

	res, err := Optimize(NewCurve([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}), cfg)
	if err != nil {
		t.Fatal(err)
	}
	// The interior point drifted a full unit, beyond SnapTolerance, and is
	// pulled halfway back towards its original position.
	diff(t, []Point{Pt(0, 0), Pt(1, 0.5), Pt(2, 0)}, res.Curve.Points)
}

func TestSmoothingKeepsPointCount(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 2), Pt(2, -1), Pt(3, 2), Pt(4, 0), Pt(5, 1)}
	cfg := DefaultOptimizeConfig()
	cfg.Algorithm = OptimizeSmoothing
	cfg.SmoothingIterations = 10

	res, err := Optimize(NewCurve(pts), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if res.OptimizedCount != len(pts) {
		t.Errorf("got %d points, want %d", res.OptimizedCount, len(pts))
	}
	if res.Curve.Points[0] != pts[0] || res.Curve.Points[len(pts)-1] != pts[len(pts)-1] {
		t.Error("endpoints moved")
	}
}
