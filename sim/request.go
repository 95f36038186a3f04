package sim

import "fmt"

// Recommended parameter bounds. Values outside these ranges are accepted by
// the engine but flagged by CheckRecommended.
const (
	MinRecommendedFrames = 3
	MaxRecommendedFrames = 5
	MinRecommendedLength = 20
	MaxRecommendedLength = 100
)

// RunRequest holds the two parameters a caller supplies for one run.
type RunRequest struct {
	Length   int // reference string length
	Capacity int // number of frames
}

// Validate checks that both parameters are positive.
func (r RunRequest) Validate() error {
	if r.Length <= 0 {
		return fmt.Errorf("reference length must be > 0, got %d: %w", r.Length, ErrInvalidArgument)
	}
	if r.Capacity <= 0 {
		return fmt.Errorf("frame count must be > 0, got %d: %w", r.Capacity, ErrInvalidArgument)
	}
	return nil
}

// CheckRecommended returns a descriptive error when a parameter lies outside
// the recommended bounds. A nil result means both are in range.
func (r RunRequest) CheckRecommended() error {
	if r.Capacity < MinRecommendedFrames || r.Capacity > MaxRecommendedFrames {
		return fmt.Errorf("frame count %d outside recommended range [%d, %d]",
			r.Capacity, MinRecommendedFrames, MaxRecommendedFrames)
	}
	if r.Length < MinRecommendedLength || r.Length > MaxRecommendedLength {
		return fmt.Errorf("reference length %d outside recommended range [%d, %d]",
			r.Length, MinRecommendedLength, MaxRecommendedLength)
	}
	return nil
}
