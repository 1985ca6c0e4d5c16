package deformer

import "sync"

// RecordingSink captures attribute writes and curve connections in memory.
type RecordingSink struct {
	mu    sync.Mutex
	attrs map[string]map[string]any
	conns map[string][]string
}

var _ Sink = (*RecordingSink)(nil)

func NewRecordingSink() *RecordingSink {
	return &RecordingSink{
		attrs: make(map[string]map[string]any),
		conns: make(map[string][]string),
	}
}

func (r *RecordingSink) SetAttr(node, attr string, value any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.attrs[node] == nil {
		r.attrs[node] = make(map[string]any)
	}
	r.attrs[node][attr] = value
	return nil
}

func (r *RecordingSink) ConnectCurve(node, curveHandle string, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	conns := r.conns[node]
	for len(conns) <= index {
		conns = append(conns, "")
	}
	conns[index] = curveHandle
	r.conns[node] = conns
	return nil
}

// Attr returns the recorded value of an attribute on node.
func (r *RecordingSink) Attr(node, attr string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.attrs[node][attr]
	return v, ok
}

// Connections returns the curve handles connected to node, in input order.
func (r *RecordingSink) Connections(node string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.conns[node]))
	copy(out, r.conns[node])
	return out
}
