package sim

import (
	"fmt"

	"github.com/inference-sim/page-sim/sim/trace"
)

// Result is the outcome of one run.
type Result struct {
	Sequence Sequence
	Capacity int
	Hits     int
	Misses   int
	Final    []Page // frame contents after the last step, in slot order
	Trace    *trace.PageTrace
}

// FinalString renders the final frames space-prefixed, e.g. " 4 3 1".
func (r *Result) FinalString() string {
	f := &FrameSet{slots: r.Final, capacity: r.Capacity}
	return f.String()
}

// Run simulates OPTimal replacement of seq over capacity frames.
//
// Each symbol is processed in order:
//   - resident: hit, frames unchanged
//   - absent, frames not full: appended to the next slot, miss
//   - absent, frames full: SelectVictim's slot is overwritten, miss
//
// A StepRecord padded to capacity is recorded after every symbol.
func Run(seq Sequence, capacity int) (*Result, error) {
	if err := (RunRequest{Length: len(seq), Capacity: capacity}).Validate(); err != nil {
		return nil, err
	}

	frames := NewFrameSet(capacity)
	pt := trace.NewPageTrace(trace.TraceConfig{Capacity: capacity, Length: len(seq)})
	result := &Result{
		Sequence: append(Sequence(nil), seq...),
		Capacity: capacity,
		Trace:    pt,
	}

	for i, page := range seq {
		record := trace.StepRecord{Index: i, Page: string(page), Victim: -1}

		switch {
		case frames.Contains(page):
			result.Hits++
		case !frames.Full():
			frames.Append(page)
			record.Miss = true
			result.Misses++
		default:
			slot, err := SelectVictim(seq, frames, i)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			record.Evicted = string(frames.Replace(slot, page))
			record.Victim = slot
			record.Miss = true
			result.Misses++
		}

		record.Frames = frames.Padded()
		pt.RecordStep(record)
	}

	result.Final = frames.Pages()
	return result, nil
}
