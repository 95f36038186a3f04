// Package trace provides per-step recording for page replacement runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// StepRecord captures the state after processing one symbol of the reference string.
type StepRecord struct {
	Index   int
	Page    string
	Miss    bool
	Frames  []string // exactly Capacity entries; unused slots hold the empty marker
	Victim  int      // overwritten slot, -1 when nothing was evicted
	Evicted string   // page removed from Victim, "" when nothing was evicted
}

// Hit reports whether the step was served from a resident frame.
func (r StepRecord) Hit() bool { return !r.Miss }

// Evicting reports whether the step replaced a resident page.
func (r StepRecord) Evicting() bool { return r.Victim >= 0 }
