package sim

import "fmt"

// SelectVictim returns the frame slot to overwrite when seq[current] misses
// on a full frame set.
//
// For every resident page the unprocessed suffix seq[current:] is scanned for
// the page's next occurrence; its offset within the suffix is the next-use
// distance. A page that never occurs again gets distance len(seq), which is
// farther than any real occurrence. The page with the largest distance is
// evicted, and ties go to the lowest slot index.
func SelectVictim(seq Sequence, frames *FrameSet, current int) (int, error) {
	if frames == nil || frames.Len() == 0 {
		return -1, fmt.Errorf("select victim: empty frame set: %w", ErrPreconditionViolation)
	}
	if !frames.Full() {
		return -1, fmt.Errorf("select victim: frame set has %d/%d slots occupied: %w",
			frames.Len(), frames.Capacity(), ErrPreconditionViolation)
	}
	if current < 0 || current >= len(seq) {
		return -1, fmt.Errorf("select victim: index %d outside sequence of length %d: %w",
			current, len(seq), ErrPreconditionViolation)
	}

	victim, farthest := 0, -1
	for slot := 0; slot < frames.Len(); slot++ {
		d := nextUse(seq, frames.At(slot), current)
		// Strict comparison keeps the first slot on ties.
		if d > farthest {
			victim, farthest = slot, d
		}
	}
	return victim, nil
}

// nextUse returns the offset of page's first occurrence in seq[from:], or
// len(seq) when it does not occur again.
func nextUse(seq Sequence, page Page, from int) int {
	for i := from; i < len(seq); i++ {
		if seq[i] == page {
			return i - from
		}
	}
	return len(seq)
}
