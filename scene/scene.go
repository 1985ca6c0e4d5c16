// Package scene decouples the geometry pipeline from the host application
// holding the actual curves. An Adapter extracts editable point sequences
// from host objects and materializes computed curves back into the scene.
//
// MemoryAdapter is a self-contained implementation for tests and standalone
// tool runs.
package scene

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rigtools/polyline"
)

// Adapter bridges to the application that owns the curves.
type Adapter interface {
	// ExtractPoints returns the control points of the curve identified by
	// handle, along with provenance metadata such as the source format.
	ExtractPoints(handle string) ([]polyline.Point, map[string]string, error)
	// MaterializeCurve creates a curve named name from the given points in
	// the host scene and returns its handle.
	MaterializeCurve(points []polyline.Point, name string) (string, error)
}

// MemoryAdapter is an Adapter over an in-process curve store. It is safe for
// concurrent use.
type MemoryAdapter struct {
	mu     sync.Mutex
	curves map[string]polyline.Curve
	serial int
}

var _ Adapter = (*MemoryAdapter)(nil)

// NewMemoryAdapter returns an empty in-memory scene.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{curves: make(map[string]polyline.Curve)}
}

// Put stores a curve under the given handle, replacing any previous one.
func (m *MemoryAdapter) Put(handle string, c polyline.Curve) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.curves[handle] = c.Clone()
}

// Get returns the curve stored under handle.
func (m *MemoryAdapter) Get(handle string) (polyline.Curve, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.curves[handle]
	if !ok {
		return polyline.Curve{}, false
	}
	return c.Clone(), true
}

// Handles returns the stored handles in sorted order.
func (m *MemoryAdapter) Handles() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	hs := make([]string, 0, len(m.curves))
	for h := range m.curves {
		hs = append(hs, h)
	}
	sort.Strings(hs)
	return hs
}

func (m *MemoryAdapter) ExtractPoints(handle string) ([]polyline.Point, map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.curves[handle]
	if !ok {
		return nil, nil, fmt.Errorf("no curve %q in scene", handle)
	}
	md := map[string]string{"format": c.Format}
	for k, v := range c.Metadata {
		md[k] = v
	}
	pts := make([]polyline.Point, len(c.Points))
	copy(pts, c.Points)
	return pts, md, nil
}

func (m *MemoryAdapter) MaterializeCurve(points []polyline.Point, name string) (string, error) {
	if len(points) < 2 {
		return "", fmt.Errorf("curve %q needs at least two points, got %d", name, len(points))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.serial++
	handle := fmt.Sprintf("%s#%d", name, m.serial)
	c := polyline.NewCurve(points)
	c.Source = handle
	m.curves[handle] = c
	return handle, nil
}
