package trace

// TraceConfig describes the run a PageTrace belongs to.
type TraceConfig struct {
	Capacity int // number of frames; every StepRecord has this many Frames
	Length   int // expected number of steps, used to size the record slice
}

// PageTrace collects step records during a single simulation run.
type PageTrace struct {
	Config TraceConfig
	Steps  []StepRecord
}

// NewPageTrace creates a PageTrace ready for recording.
func NewPageTrace(config TraceConfig) *PageTrace {
	length := config.Length
	if length < 0 {
		length = 0
	}
	return &PageTrace{
		Config: config,
		Steps:  make([]StepRecord, 0, length),
	}
}

// RecordStep appends a step record.
func (pt *PageTrace) RecordStep(record StepRecord) {
	pt.Steps = append(pt.Steps, record)
}

// Len returns the number of recorded steps.
func (pt *PageTrace) Len() int {
	if pt == nil {
		return 0
	}
	return len(pt.Steps)
}
