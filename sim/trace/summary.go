package trace

// TraceSummary aggregates statistics from a PageTrace.
type TraceSummary struct {
	TotalSteps    int
	Hits          int
	Misses        int
	Evictions     int
	HitRatio      float64
	MissRatio     float64
	PeakOccupancy int            // most non-empty frames seen in any step
	FaultsByPage  map[string]int // page → number of misses it caused
}

// Summarize computes aggregate statistics from a PageTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(pt *PageTrace, emptyMarker string) *TraceSummary {
	summary := &TraceSummary{
		FaultsByPage: make(map[string]int),
	}
	if pt == nil {
		return summary
	}

	summary.TotalSteps = len(pt.Steps)
	for _, s := range pt.Steps {
		if s.Miss {
			summary.Misses++
			summary.FaultsByPage[s.Page]++
		} else {
			summary.Hits++
		}
		if s.Evicting() {
			summary.Evictions++
		}
		occupied := 0
		for _, f := range s.Frames {
			if f != emptyMarker {
				occupied++
			}
		}
		if occupied > summary.PeakOccupancy {
			summary.PeakOccupancy = occupied
		}
	}

	if summary.TotalSteps > 0 {
		summary.HitRatio = float64(summary.Hits) / float64(summary.TotalSteps)
		summary.MissRatio = float64(summary.Misses) / float64(summary.TotalSteps)
	}
	return summary
}
