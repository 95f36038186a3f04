package workload

import (
	"fmt"
	"unicode"

	"github.com/inference-sim/page-sim/sim"
)

// ParseSequence converts a reference string into a Sequence, one page per rune.
// Whitespace and commas are skipped, so "7 0 1", "7,0,1" and "701" are
// equivalent.
func ParseSequence(s string) (sim.Sequence, error) {
	var seq sim.Sequence
	for _, r := range s {
		if unicode.IsSpace(r) || r == ',' {
			continue
		}
		seq = append(seq, sim.Page(string(r)))
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("reference string %q has no pages: %w", s, sim.ErrInvalidArgument)
	}
	return seq, nil
}

// ParseAlphabet converts a symbol list into an Alphabet, one symbol per rune.
// Separators are skipped as in ParseSequence; duplicates are rejected.
func ParseAlphabet(s string) (sim.Alphabet, error) {
	seen := make(map[rune]bool)
	var alphabet sim.Alphabet
	for _, r := range s {
		if unicode.IsSpace(r) || r == ',' {
			continue
		}
		if seen[r] {
			return nil, fmt.Errorf("alphabet %q repeats symbol %q: %w", s, r, sim.ErrInvalidArgument)
		}
		seen[r] = true
		alphabet = append(alphabet, sim.Page(string(r)))
	}
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("alphabet is empty: %w", sim.ErrInvalidArgument)
	}
	return alphabet, nil
}
