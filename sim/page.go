package sim

import (
	"errors"
	"strings"
)

// ErrInvalidArgument is returned when a run or generator is configured with
// a non-positive length or capacity, an empty alphabet or an empty sequence.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrPreconditionViolation is returned when the eviction search is invoked on
// a frame set that is not full, or with an index outside the sequence.
var ErrPreconditionViolation = errors.New("precondition violation")

// EmptySlot marks an unused frame slot in padded frame listings.
const EmptySlot = "-"

// Page identifies a single symbolic page of the reference string.
type Page string

// Alphabet is the finite set of symbols a reference string is drawn from.
type Alphabet []Page

// DefaultAlphabet returns the digits 0-9.
func DefaultAlphabet() Alphabet {
	a := make(Alphabet, 0, 10)
	for c := '0'; c <= '9'; c++ {
		a = append(a, Page(string(c)))
	}
	return a
}

// String joins the alphabet symbols without separators.
func (a Alphabet) String() string {
	var b strings.Builder
	for _, p := range a {
		b.WriteString(string(p))
	}
	return b.String()
}

// Sequence is a reference string: the ordered page accesses of one run.
type Sequence []Page

// String joins the sequence symbols without separators, e.g. "070120304".
func (s Sequence) String() string {
	var b strings.Builder
	for _, p := range s {
		b.WriteString(string(p))
	}
	return b.String()
}

// Distinct returns the number of distinct pages in the sequence.
func (s Sequence) Distinct() int {
	seen := make(map[Page]struct{}, len(s))
	for _, p := range s {
		seen[p] = struct{}{}
	}
	return len(seen)
}
