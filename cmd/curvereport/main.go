// Command curvereport runs the optimization pipeline over a batch of JSON
// point files and renders an HTML quality report.
//
// Usage:
//
//	curvereport -out report.html curves/*.json
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rigtools/polyline"
	"github.com/rigtools/polyline/internal/pointfile"
	"github.com/rigtools/polyline/workflow"
)

func main() {
	var (
		out       = flag.String("out", "report.html", "output HTML file")
		algorithm = flag.String("algorithm", "quality", "optimization algorithm")
		workers   = flag.Int("workers", 4, "concurrent optimization workers")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	files := flag.Args()
	if len(files) == 0 {
		log.Error("no input files")
		flag.Usage()
		os.Exit(2)
	}

	var names []string
	var curves []polyline.Curve
	for _, path := range files {
		pts, err := pointfile.Read(path)
		if err != nil {
			log.Error("read input", "path", path, "error", err)
			os.Exit(1)
		}
		c := polyline.NewCurve(pts)
		c.Source = path
		curves = append(curves, c)
		names = append(names, filepath.Base(path))
	}

	cfg := polyline.DefaultOptimizeConfig()
	cfg.Algorithm = polyline.OptimizeAlgorithm(*algorithm)
	results := workflow.BatchOptimize(curves, cfg, *workers)

	var (
		quality, shape, smooth []opts.BarData
		counts                 []opts.BarData
		failed                 int
	)
	for i, res := range results {
		if res.Err != nil {
			log.Error("optimize failed", "curve", names[i], "error", res.Err)
			failed++
			quality = append(quality, opts.BarData{Value: 0})
			shape = append(shape, opts.BarData{Value: 0})
			smooth = append(smooth, opts.BarData{Value: 0})
			counts = append(counts, opts.BarData{Value: 0})
			continue
		}
		m := res.Result.Metrics
		quality = append(quality, opts.BarData{Value: m[polyline.MetricQualityScore]})
		shape = append(shape, opts.BarData{Value: m[polyline.MetricShapePreservation]})
		smooth = append(smooth, opts.BarData{Value: m[polyline.MetricSmoothness]})
		counts = append(counts, opts.BarData{Value: res.Result.OptimizedCount})
	}

	metricsBar := charts.NewBar()
	metricsBar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Optimization Quality",
			Subtitle: "per-curve metric scores",
		}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 1}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	metricsBar.SetXAxis(names).
		AddSeries("quality", quality).
		AddSeries("shape preservation", shape).
		AddSeries("smoothness", smooth)

	countBar := charts.NewBar()
	countBar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Point Counts",
			Subtitle: "optimized point count per curve",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	countBar.SetXAxis(names).AddSeries("points", counts)

	page := components.NewPage()
	page.AddCharts(metricsBar, countBar)

	f, err := os.Create(*out)
	if err != nil {
		log.Error("create report", "path", *out, "error", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Error("render report", "error", err)
		os.Exit(1)
	}
	log.Info("report written", "path", *out, "curves", len(curves), "failed", failed)
}
