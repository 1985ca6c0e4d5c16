// Command curveopt optimizes a polyline from a JSON point file and
// optionally generates offset curves, writing a JSON report to stdout.
//
// Usage:
//
//	curveopt -in points.json -algorithm reduction -max-reduction 0.4
//	curveopt -in points.json -offset -distance 2 -direction left
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/rigtools/polyline"
	"github.com/rigtools/polyline/internal/pointfile"
)

type report struct {
	OriginalCount  int                  `json:"original_count"`
	OptimizedCount int                  `json:"optimized_count"`
	Metrics        map[string]float64   `json:"metrics"`
	DurationMS     float64              `json:"duration_ms"`
	Points         [][2]float64         `json:"points"`
	Offsets        []offsetReportCurve  `json:"offsets,omitempty"`
	OffsetMetrics  map[string]float64   `json:"offset_metrics,omitempty"`
}

type offsetReportCurve struct {
	Direction string       `json:"direction"`
	Points    [][2]float64 `json:"points"`
}

func main() {
	var (
		in        = flag.String("in", "", "input JSON point file")
		algorithm = flag.String("algorithm", "quality", "optimization algorithm: quality, reduction, or smoothing")
		target    = flag.Float64("target-quality", 0.8, "fraction of points to keep (quality)")
		reduction = flag.Float64("max-reduction", 0.5, "fraction of points to remove (reduction)")
		factor    = flag.Float64("smoothing-factor", 0.5, "smoothing blend weight")
		iters     = flag.Int("iterations", 3, "smoothing pass count")
		preserve  = flag.Bool("preserve-shape", true, "enable shape preservation")

		offset    = flag.Bool("offset", false, "also generate offset curves")
		offsetAlg = flag.String("offset-algorithm", "parallel", "offset algorithm: parallel, perpendicular, or adaptive")
		distance  = flag.Float64("distance", 1.0, "offset distance")
		direction = flag.String("direction", "both", "offset direction: left, right, or both")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *in == "" {
		log.Error("missing -in")
		flag.Usage()
		os.Exit(2)
	}

	pts, err := pointfile.Read(*in)
	if err != nil {
		log.Error("read input", "path", *in, "error", err)
		os.Exit(1)
	}
	curve := polyline.NewCurve(pts)

	optCfg := polyline.DefaultOptimizeConfig()
	optCfg.Algorithm = polyline.OptimizeAlgorithm(*algorithm)
	optCfg.TargetQuality = *target
	optCfg.MaxPointReduction = *reduction
	optCfg.SmoothingFactor = *factor
	optCfg.SmoothingIterations = *iters
	optCfg.PreserveShape = *preserve

	opt, err := polyline.Optimize(curve, optCfg)
	if err != nil {
		log.Error("optimize", "error", err)
		os.Exit(1)
	}
	log.Info("optimized",
		"original", opt.OriginalCount,
		"optimized", opt.OptimizedCount,
		"quality", opt.Metrics[polyline.MetricQualityScore],
		"duration", opt.Duration)

	rep := report{
		OriginalCount:  opt.OriginalCount,
		OptimizedCount: opt.OptimizedCount,
		Metrics:        opt.Metrics,
		DurationMS:     float64(opt.Duration) / float64(time.Millisecond),
		Points:         toPairs(opt.Curve.Points),
	}

	if *offset {
		offCfg := polyline.DefaultOffsetConfig()
		offCfg.Algorithm = polyline.OffsetAlgorithm(*offsetAlg)
		offCfg.Distance = *distance
		offCfg.Direction = polyline.OffsetDirection(*direction)

		off, err := polyline.GenerateOffset(opt.Curve, offCfg)
		if err != nil {
			log.Error("offset", "error", err)
			os.Exit(1)
		}
		log.Info("offsets generated", "curves", len(off.Curves), "duration", off.Duration)
		for _, c := range off.Curves {
			rep.Offsets = append(rep.Offsets, offsetReportCurve{
				Direction: c.Metadata[polyline.MetaDirection],
				Points:    toPairs(c.Points),
			})
		}
		rep.OffsetMetrics = off.Metrics
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		log.Error("write report", "error", err)
		os.Exit(1)
	}
}

func toPairs(pts []polyline.Point) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}
