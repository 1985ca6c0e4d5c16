package workflow

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigtools/polyline"
	"github.com/rigtools/polyline/deformer"
	"github.com/rigtools/polyline/scene"
)

func sceneWithCurve(t *testing.T, handle string, pts []polyline.Point) *scene.MemoryAdapter {
	t.Helper()
	m := scene.NewMemoryAdapter()
	c := polyline.NewCurve(pts)
	c.Format = "nurbs"
	m.Put(handle, c)
	return m
}

func zigzag() []polyline.Point {
	return []polyline.Point{
		polyline.Pt(0, 0), polyline.Pt(1, 1), polyline.Pt(2, 0),
		polyline.Pt(3, 1), polyline.Pt(4, 0),
	}
}

func TestRunCompletesAllSteps(t *testing.T) {
	m := sceneWithCurve(t, "curve1", zigzag())
	sink := deformer.NewRecordingSink()
	r := NewRunner(m)
	r.Sink = sink

	res, err := r.Run("curve1")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.NotEmpty(t, res.RunID)
	assert.False(t, res.Failed())

	require.Len(t, res.Steps, 5)
	for _, s := range res.Steps {
		assert.Equal(t, StatusCompleted, s.Status, s.Name)
	}

	require.NotNil(t, res.Optimization)
	require.NotNil(t, res.Offset)
	assert.Equal(t, 5, res.Optimization.OriginalCount)
	assert.Len(t, res.CurveHandles, 2)

	// The offset curves landed back in the scene.
	for _, h := range res.CurveHandles {
		_, ok := m.Get(h)
		assert.True(t, ok, h)
	}

	// The deformer got configured and connected to both curves.
	require.NotEmpty(t, res.DeformerNode)
	_, ok := sink.Attr(res.DeformerNode, "falloffRadius")
	assert.True(t, ok)
	assert.Equal(t, res.CurveHandles, sink.Connections(res.DeformerNode))
}

func TestRunWithoutSinkSkipsBinding(t *testing.T) {
	r := NewRunner(sceneWithCurve(t, "curve1", zigzag()))
	res, err := r.Run("curve1")
	require.NoError(t, err)
	assert.Empty(t, res.DeformerNode)
	assert.Len(t, res.CurveHandles, 2)
}

func TestRunUnknownHandleFailsExtraction(t *testing.T) {
	r := NewRunner(scene.NewMemoryAdapter())
	res, err := r.Run("missing")
	require.Error(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Failed())
	require.Len(t, res.Steps, 1)
	assert.Equal(t, "extraction", res.Steps[0].Name)
	assert.Equal(t, StatusFailed, res.Steps[0].Status)
}

func TestRunInvalidConfigFailsOptimization(t *testing.T) {
	r := NewRunner(sceneWithCurve(t, "curve1", zigzag()))
	r.Optimize.Algorithm = "magic"

	res, err := r.Run("curve1")
	require.Error(t, err)
	var cerr *polyline.ConfigError
	assert.ErrorAs(t, err, &cerr)
	require.Len(t, res.Steps, 2)
	assert.Equal(t, StatusFailed, res.Steps[1].Status)
}

func TestRunValidationCatchesNonFiniteInput(t *testing.T) {
	// A NaN control point slips through extraction and optimization (the
	// smoothing strategy keeps the point count) and must be stopped by the
	// validation step.
	pts := zigzag()
	pts[2] = polyline.Pt(math.NaN(), 0)

	r := NewRunner(sceneWithCurve(t, "curve1", pts))
	r.Optimize.Algorithm = polyline.OptimizeSmoothing
	r.Optimize.PreserveShape = false

	res, err := r.Run("curve1")
	require.Error(t, err)
	assert.True(t, res.Failed())
	last := res.Steps[len(res.Steps)-1]
	assert.Equal(t, "validation", last.Name)
	assert.Equal(t, StatusFailed, last.Status)
}

func TestBatchOptimize(t *testing.T) {
	curves := make([]polyline.Curve, 8)
	for i := range curves {
		curves[i] = polyline.NewCurve(zigzag())
		curves[i].Source = fmt.Sprintf("curve%d", i)
	}
	// One empty curve must fail without affecting the rest.
	curves[3] = polyline.Curve{}

	results := BatchOptimize(curves, polyline.DefaultOptimizeConfig(), 4)
	require.Len(t, results, len(curves))
	for i, res := range results {
		assert.Equal(t, i, res.Index)
		if i == 3 {
			assert.Error(t, res.Err)
			continue
		}
		require.NoError(t, res.Err, "curve %d", i)
		assert.Equal(t, 5, res.Result.OriginalCount)
	}
}

func TestBatchOptimizeEmptyInput(t *testing.T) {
	assert.Empty(t, BatchOptimize(nil, polyline.DefaultOptimizeConfig(), 4))
}
