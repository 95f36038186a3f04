// Tracks run-wide replacement statistics for final reporting.

package sim

import (
	"fmt"
	"io"

	"github.com/inference-sim/page-sim/sim/trace"
)

// Metrics aggregates statistics about a finished run
// for final reporting.
type Metrics struct {
	Reference     string  // full reference string
	Frames        int     // configured capacity
	Hits          int     // references served from a resident frame
	Misses        int     // page faults, fills and evictions together
	Evictions     int     // misses that replaced a resident page
	PeakOccupancy int     // most frames occupied at once
	MissPercent   float64 // misses / length * 100
	HitPercent    float64 // hits / length * 100
	Final         string  // final frames, space-prefixed
}

// NewMetrics derives Metrics from a Result.
func NewMetrics(r *Result) *Metrics {
	summary := trace.Summarize(r.Trace, EmptySlot)
	m := &Metrics{
		Reference:     r.Sequence.String(),
		Frames:        r.Capacity,
		Hits:          r.Hits,
		Misses:        r.Misses,
		Evictions:     summary.Evictions,
		PeakOccupancy: summary.PeakOccupancy,
		Final:         r.FinalString(),
	}
	if n := len(r.Sequence); n > 0 {
		m.MissPercent = float64(r.Misses) / float64(n) * 100
		m.HitPercent = float64(r.Hits) / float64(n) * 100
	}
	return m
}

// Print displays the aggregated metrics.
func (m *Metrics) Print(w io.Writer) {
	_, _ = fmt.Fprintln(w, "=== Simulation Metrics ===")
	_, _ = fmt.Fprintf(w, "Reference String : %s\n", m.Reference)
	_, _ = fmt.Fprintf(w, "Frames           : %d\n", m.Frames)
	_, _ = fmt.Fprintf(w, "Final Output     :%s\n", m.Final)
	_, _ = fmt.Fprintf(w, "Miss Count       : %d\n", m.Misses)
	_, _ = fmt.Fprintf(w, "Hit Count        : %d\n", m.Hits)
	_, _ = fmt.Fprintf(w, "Evictions        : %d\n", m.Evictions)
	_, _ = fmt.Fprintf(w, "Miss Percentage  : %.2f%%\n", m.MissPercent)
	_, _ = fmt.Fprintf(w, "Hit Percentage   : %.2f%%\n", m.HitPercent)
	_, _ = fmt.Fprintf(w, "Peak Occupancy   : %d\n", m.PeakOccupancy)
}
