package workload

import (
	"fmt"
	"math/rand"

	"github.com/inference-sim/page-sim/sim"
)

// GenerateReference draws length pages uniformly and independently from alphabet.
// Deterministic given the same alphabet and RNG state.
func GenerateReference(length int, alphabet sim.Alphabet, rng *rand.Rand) (sim.Sequence, error) {
	if length <= 0 {
		return nil, fmt.Errorf("reference length must be > 0, got %d: %w", length, sim.ErrInvalidArgument)
	}
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("alphabet is empty: %w", sim.ErrInvalidArgument)
	}
	if rng == nil {
		return nil, fmt.Errorf("nil random source: %w", sim.ErrInvalidArgument)
	}

	seq := make(sim.Sequence, length)
	for i := range seq {
		seq[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return seq, nil
}

// GenerateTrials produces n reference strings from a spec.
// Trial 0 is exactly spec.Generate(); later trials draw their seeds from the
// sweep subsystem so adding trials never changes earlier ones.
func GenerateTrials(spec *ReferenceSpec, n int) ([]sim.Sequence, error) {
	if n <= 0 {
		return nil, fmt.Errorf("trial count must be > 0, got %d: %w", n, sim.ErrInvalidArgument)
	}
	first, err := spec.Generate()
	if err != nil {
		return nil, err
	}
	trials := []sim.Sequence{first}
	if n == 1 || spec.Reference != "" {
		// An explicit reference string has nothing to vary.
		for len(trials) < n {
			trials = append(trials, first)
		}
		return trials, nil
	}

	alphabet, err := spec.alphabet()
	if err != nil {
		return nil, err
	}
	sweepRNG := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed)).ForSubsystem(sim.SubsystemSweep)
	for len(trials) < n {
		trialRNG := newRandFromSeed(sweepRNG.Int63())
		seq, err := GenerateReference(spec.Length, alphabet, trialRNG)
		if err != nil {
			return nil, err
		}
		trials = append(trials, seq)
	}
	return trials, nil
}

func newRandFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
