// Package deformer configures the native offset-curve deformer node. The
// node itself lives in the host application; this package carries its
// parameter surface, validates ranges, and forwards values through a Sink so
// the binding can be tested without a host.
package deformer

import "fmt"

// OffsetMode selects how the node distributes deformation along the curve.
type OffsetMode int

const (
	ArcSegment OffsetMode = iota
	BSpline
)

func (m OffsetMode) String() string {
	switch m {
	case ArcSegment:
		return "arc-segment"
	case BSpline:
		return "b-spline"
	default:
		return fmt.Sprintf("OffsetMode(%d)", int(m))
	}
}

// Params mirrors the deformer node's attribute surface.
type Params struct {
	OffsetMode OffsetMode
	// FalloffRadius is the influence radius, in (0.001, 100.0].
	FalloffRadius float64
	// MaxInfluences bounds how many curves may deform a single vertex,
	// in [1, 10].
	MaxInfluences int
	// VolumeStrength scales volume preservation, in [0, 5].
	VolumeStrength float64
	// SlideEffect shifts deformation along the curve tangent, in [-2, 2].
	SlideEffect float64
	// RotationDistribution, ScaleDistribution, and TwistDistribution shape
	// how the respective components spread along the curve, each in [0, 2].
	RotationDistribution float64
	ScaleDistribution    float64
	TwistDistribution    float64
	// AxialSliding slides influence along the curve axis, in [-1, 1].
	AxialSliding float64

	UseParallel  bool
	DebugDisplay bool

	EnablePoseBlend bool
	// PoseTarget selects the pose to blend towards and PoseWeight how far,
	// each in [0, 1]. Only meaningful with EnablePoseBlend.
	PoseTarget float64
	PoseWeight float64
}

// DefaultParams returns the node's factory defaults.
func DefaultParams() Params {
	return Params{
		OffsetMode:           ArcSegment,
		FalloffRadius:        10.0,
		MaxInfluences:        4,
		VolumeStrength:       1.0,
		SlideEffect:          0.0,
		RotationDistribution: 1.0,
		ScaleDistribution:    1.0,
		TwistDistribution:    1.0,
		AxialSliding:         0.0,
		PoseTarget:           0.0,
		PoseWeight:           0.0,
	}
}

// Validate checks every parameter against the node's accepted ranges.
func (p Params) Validate() error {
	if p.OffsetMode != ArcSegment && p.OffsetMode != BSpline {
		return fmt.Errorf("offset mode %d out of range", int(p.OffsetMode))
	}
	if p.FalloffRadius < 0.001 || p.FalloffRadius > 100.0 {
		return fmt.Errorf("falloff radius %g outside [0.001, 100]", p.FalloffRadius)
	}
	if p.MaxInfluences < 1 || p.MaxInfluences > 10 {
		return fmt.Errorf("max influences %d outside [1, 10]", p.MaxInfluences)
	}
	if p.VolumeStrength < 0 || p.VolumeStrength > 5 {
		return fmt.Errorf("volume strength %g outside [0, 5]", p.VolumeStrength)
	}
	if p.SlideEffect < -2 || p.SlideEffect > 2 {
		return fmt.Errorf("slide effect %g outside [-2, 2]", p.SlideEffect)
	}
	for name, v := range map[string]float64{
		"rotation distribution": p.RotationDistribution,
		"scale distribution":    p.ScaleDistribution,
		"twist distribution":    p.TwistDistribution,
	} {
		if v < 0 || v > 2 {
			return fmt.Errorf("%s %g outside [0, 2]", name, v)
		}
	}
	if p.AxialSliding < -1 || p.AxialSliding > 1 {
		return fmt.Errorf("axial sliding %g outside [-1, 1]", p.AxialSliding)
	}
	if p.PoseTarget < 0 || p.PoseTarget > 1 {
		return fmt.Errorf("pose target %g outside [0, 1]", p.PoseTarget)
	}
	if p.PoseWeight < 0 || p.PoseWeight > 1 {
		return fmt.Errorf("pose weight %g outside [0, 1]", p.PoseWeight)
	}
	return nil
}

// Sink receives attribute writes and curve connections for a deformer node.
// Host bindings implement it against their command layer; RecordingSink
// implements it for tests.
type Sink interface {
	SetAttr(node, attr string, value any) error
	ConnectCurve(node, curveHandle string, index int) error
}

// Apply validates p and writes every attribute to node through sink. The
// attribute names match the native node's attribute surface.
func (p Params) Apply(sink Sink, node string) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("deformer %s: %w", node, err)
	}
	attrs := []struct {
		name  string
		value any
	}{
		{"offsetMode", int(p.OffsetMode)},
		{"falloffRadius", p.FalloffRadius},
		{"maxInfluences", p.MaxInfluences},
		{"volumeStrength", p.VolumeStrength},
		{"slideEffect", p.SlideEffect},
		{"rotationDistribution", p.RotationDistribution},
		{"scaleDistribution", p.ScaleDistribution},
		{"twistDistribution", p.TwistDistribution},
		{"axialSliding", p.AxialSliding},
		{"useParallelComputation", p.UseParallel},
		{"debugDisplay", p.DebugDisplay},
		{"enablePoseBlend", p.EnablePoseBlend},
	}
	for _, a := range attrs {
		if err := sink.SetAttr(node, a.name, a.value); err != nil {
			return fmt.Errorf("deformer %s: set %s: %w", node, a.name, err)
		}
	}
	if p.EnablePoseBlend {
		if err := sink.SetAttr(node, "poseTarget", p.PoseTarget); err != nil {
			return fmt.Errorf("deformer %s: set poseTarget: %w", node, err)
		}
		if err := sink.SetAttr(node, "poseWeight", p.PoseWeight); err != nil {
			return fmt.Errorf("deformer %s: set poseWeight: %w", node, err)
		}
	}
	return nil
}
