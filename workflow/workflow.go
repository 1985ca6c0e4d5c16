// Package workflow chains curve extraction, optimization, offset generation,
// validation, and materialization into a single run against a scene.Adapter,
// optionally binding the results to a deformer node.
package workflow

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rigtools/polyline"
	"github.com/rigtools/polyline/deformer"
	"github.com/rigtools/polyline/scene"
)

// Step statuses.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Step records one stage of a run.
type Step struct {
	Name        string
	Description string
	Status      string
	Err         error
	Duration    time.Duration
}

// Result is the outcome of a single Runner.Run.
type Result struct {
	// RunID uniquely identifies the run, also used to name created nodes.
	RunID string
	// Handle is the scene handle the run started from.
	Handle string
	Steps  []Step

	Optimization *polyline.OptimizationResult
	Offset       *polyline.OffsetResult
	// CurveHandles are the scene handles of the materialized offset curves,
	// in offset-curve order.
	CurveHandles []string
	// DeformerNode names the deformer the curves were bound to, if binding
	// was requested.
	DeformerNode string
}

// Failed reports whether any step failed.
func (r *Result) Failed() bool {
	for _, s := range r.Steps {
		if s.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Runner executes the curve pipeline. Scene is required; Sink is optional
// and enables deformer binding after materialization.
type Runner struct {
	Scene    scene.Adapter
	Sink     deformer.Sink
	Log      *slog.Logger
	Optimize polyline.OptimizeConfig
	Offset   polyline.OffsetConfig
	Params   deformer.Params
}

// NewRunner returns a Runner with default configurations over the given
// scene.
func NewRunner(sc scene.Adapter) *Runner {
	return &Runner{
		Scene:    sc,
		Log:      slog.Default(),
		Optimize: polyline.DefaultOptimizeConfig(),
		Offset:   polyline.DefaultOffsetConfig(),
		Params:   deformer.DefaultParams(),
	}
}

func (r *Runner) logger() *slog.Logger {
	if r.Log == nil {
		return slog.Default()
	}
	return r.Log.With("component", "workflow")
}

// Run executes the full pipeline for the curve identified by handle. A step
// failure marks that step, skips the remaining ones, and is returned as the
// error; the partial Result is still returned for inspection.
func (r *Runner) Run(handle string) (*Result, error) {
	res := &Result{
		RunID:  uuid.NewString(),
		Handle: handle,
	}
	log := r.logger().With("run_id", res.RunID, "handle", handle)
	log.Info("workflow started")

	var source polyline.Curve
	steps := []struct {
		name        string
		description string
		run         func() error
	}{
		{
			"extraction", "extract curve points from the scene",
			func() error {
				pts, md, err := r.Scene.ExtractPoints(handle)
				if err != nil {
					return err
				}
				source = polyline.NewCurve(pts)
				source.Source = handle
				for k, v := range md {
					source.Metadata[k] = v
				}
				source.Format = md["format"]
				log.Info("curve extracted", "points", len(pts))
				return nil
			},
		},
		{
			"optimization", "optimize the extracted points",
			func() error {
				opt, err := polyline.Optimize(source, r.Optimize)
				if err != nil {
					return err
				}
				res.Optimization = &opt
				log.Info("curve optimized",
					"original", opt.OriginalCount,
					"optimized", opt.OptimizedCount,
					"quality", opt.Metrics[polyline.MetricQualityScore])
				return nil
			},
		},
		{
			"offset generation", "generate offset curves",
			func() error {
				off, err := polyline.GenerateOffset(res.Optimization.Curve, r.Offset)
				if err != nil {
					return err
				}
				res.Offset = &off
				log.Info("offsets generated",
					"curves", len(off.Curves),
					"distance", off.Distance)
				return nil
			},
		},
		{
			"validation", "validate optimization and offset results",
			func() error {
				return validateRun(source, res)
			},
		},
		{
			"materialization", "materialize offset curves and bind the deformer",
			func() error {
				return r.materialize(res)
			},
		},
	}

	for _, s := range steps {
		step := Step{Name: s.name, Description: s.description, Status: StatusRunning}
		start := time.Now()
		err := s.run()
		step.Duration = time.Since(start)
		if err != nil {
			step.Status = StatusFailed
			step.Err = err
			res.Steps = append(res.Steps, step)
			log.Error("workflow step failed", "step", s.name, "error", err)
			return res, fmt.Errorf("step %s: %w", s.name, err)
		}
		step.Status = StatusCompleted
		res.Steps = append(res.Steps, step)
	}

	log.Info("workflow completed", "curves", len(res.CurveHandles))
	return res, nil
}

// materialize writes the offset curves back into the scene and, when a Sink
// is configured, binds them to a freshly named deformer node.
func (r *Runner) materialize(res *Result) error {
	for i, c := range res.Offset.Curves {
		name := fmt.Sprintf("%s_offset_%s", res.Handle, c.Metadata[polyline.MetaDirection])
		h, err := r.Scene.MaterializeCurve(c.Points, name)
		if err != nil {
			return fmt.Errorf("materialize curve %d: %w", i, err)
		}
		res.CurveHandles = append(res.CurveHandles, h)
	}
	if r.Sink == nil {
		return nil
	}
	node := "offsetCurveDeformer_" + res.RunID[:8]
	if err := r.Params.Apply(r.Sink, node); err != nil {
		return err
	}
	for i, h := range res.CurveHandles {
		if err := r.Sink.ConnectCurve(node, h, i); err != nil {
			return fmt.Errorf("connect curve %s: %w", h, err)
		}
	}
	res.DeformerNode = node
	return nil
}
