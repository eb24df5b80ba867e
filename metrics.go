package dstack

import (
	"fmt"
	"log/slog"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// Metrics is a point-in-time snapshot of arena state. Snapshots are plain
// values: take one, then log or serialize it without touching the arena
// again.
type Metrics struct {
	Capacity    int     // Total buffer size in bytes
	BottomUsed  int     // Bytes allocated from the bottom side
	TopUsed     int     // Bytes allocated from the top side
	Used        int     // BottomUsed + TopUsed
	Available   int     // Free bytes between the boundaries
	Owned       bool    // Whether Release returns the buffer to a source
	Utilization float64 // Used over Capacity (0.0-1.0), 0 for empty buffers
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	c := len(a.buf.data)
	m := Metrics{
		Capacity:   c,
		BottomUsed: a.bottom,
		TopUsed:    c - a.top,
		Used:       a.Used(),
		Available:  a.Available(),
		Owned:      a.buf.owned,
	}
	if c > 0 {
		m.Utilization = float64(m.Used) / float64(c)
	}
	return m
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	return a.Metrics().Utilization
}

// String returns a compact one-line description of the arena state.
func (a *Arena) String() string {
	return fmt.Sprintf("dstack.Arena(cap=%d bottom=%d top=%d)", len(a.buf.data), a.bottom, a.top)
}

// Metrics returns a snapshot of stack arena statistics. TopUsed is always 0.
func (s *Stack) Metrics() Metrics { return s.a.Metrics() }

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
func (s *Stack) Utilization() float64 { return s.a.Utilization() }

// String returns a compact one-line description of the stack state.
func (s *Stack) String() string {
	return fmt.Sprintf("dstack.Stack(cap=%d used=%d)", s.a.Capacity(), s.a.Used())
}

// LogValue groups the snapshot for log/slog handlers, so a Metrics value can
// be passed directly as an attribute value.
func (m Metrics) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("capacity", m.Capacity),
		slog.Int("bottom_used", m.BottomUsed),
		slog.Int("top_used", m.TopUsed),
		slog.Int("available", m.Available),
		slog.Bool("owned", m.Owned),
		slog.Float64("utilization", m.Utilization),
	)
}

// WriteJSON streams the snapshot as one JSON object.
func (m Metrics) WriteJSON(w *jwriter.Writer) {
	obj := w.Object()
	obj.Name("capacity").Int(m.Capacity)
	obj.Name("bottomUsed").Int(m.BottomUsed)
	obj.Name("topUsed").Int(m.TopUsed)
	obj.Name("used").Int(m.Used)
	obj.Name("available").Int(m.Available)
	obj.Name("owned").Bool(m.Owned)
	obj.Name("utilization").Float64(m.Utilization)
	obj.End()
}

// LogValue groups the counters for log/slog handlers.
func (st AllocatorStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("allocs", st.Allocs),
		slog.Int64("frees", st.Frees),
		slog.Int64("failures", st.Failures),
		slog.Int64("in_use", st.InUse),
		slog.Int64("peak", st.Peak),
	)
}

// WriteJSON streams the counters as one JSON object.
func (st AllocatorStats) WriteJSON(w *jwriter.Writer) {
	obj := w.Object()
	obj.Name("allocs").Int(int(st.Allocs))
	obj.Name("frees").Int(int(st.Frees))
	obj.Name("failures").Int(int(st.Failures))
	obj.Name("inUse").Int(int(st.InUse))
	obj.Name("peak").Int(int(st.Peak))
	obj.End()
}
