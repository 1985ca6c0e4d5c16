// Command curveplot renders a PNG comparing a source polyline with its
// optimized version and generated offset curves.
//
// Usage:
//
//	curveplot -in points.json -out curve.png -algorithm reduction
package main

import (
	"flag"
	"image/color"
	"log/slog"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rigtools/polyline"
	"github.com/rigtools/polyline/internal/pointfile"
)

func main() {
	var (
		in        = flag.String("in", "", "input JSON point file")
		out       = flag.String("out", "curve.png", "output PNG file")
		algorithm = flag.String("algorithm", "quality", "optimization algorithm")
		offset    = flag.Bool("offset", true, "include offset curves")
		distance  = flag.Float64("distance", 1.0, "offset distance")
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

	cfg := polyline.DefaultOptimizeConfig()
	cfg.Algorithm = polyline.OptimizeAlgorithm(*algorithm)
	opt, err := polyline.Optimize(curve, cfg)
	if err != nil {
		log.Error("optimize", "error", err)
		os.Exit(1)
	}

	p := plot.New()
	p.Title.Text = "Curve Optimization"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	if err := addLine(p, "original", pts, color.RGBA{R: 160, G: 160, B: 160, A: 255}, 1); err != nil {
		log.Error("plot original", "error", err)
		os.Exit(1)
	}
	if err := addLine(p, "optimized", opt.Curve.Points, color.RGBA{R: 220, G: 60, B: 60, A: 255}, 2); err != nil {
		log.Error("plot optimized", "error", err)
		os.Exit(1)
	}

	if *offset {
		offCfg := polyline.DefaultOffsetConfig()
		offCfg.Distance = *distance
		off, err := polyline.GenerateOffset(opt.Curve, offCfg)
		if err != nil {
			log.Error("offset", "error", err)
			os.Exit(1)
		}
		blue := color.RGBA{R: 60, G: 100, B: 220, A: 255}
		for _, c := range off.Curves {
			label := "offset " + c.Metadata[polyline.MetaDirection]
			if err := addLine(p, label, c.Points, blue, 1); err != nil {
				log.Error("plot offset", "error", err)
				os.Exit(1)
			}
		}
	}

	p.Legend.Top = true
	if err := p.Save(8*vg.Inch, 6*vg.Inch, *out); err != nil {
		log.Error("save plot", "path", *out, "error", err)
		os.Exit(1)
	}
	log.Info("plot written", "path", *out)
}

func addLine(p *plot.Plot, label string, pts []polyline.Point, c color.Color, width float64) error {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.Color = c
	line.Width = vg.Points(width)
	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}
