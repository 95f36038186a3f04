package workload

import (
	"bytes"
	"fmt"
	"os"

	"github.com/inference-sim/page-sim/sim"
	"gopkg.in/yaml.v3"
)

// ReferenceSpec describes how to obtain the reference string for a run.
// Loaded from YAML via LoadReferenceSpec(path).
type ReferenceSpec struct {
	Version   string `yaml:"version"`
	Seed      int64  `yaml:"seed"`
	Length    int    `yaml:"length"`
	Alphabet  string `yaml:"alphabet,omitempty"`  // one symbol per rune; empty = digits 0-9
	Reference string `yaml:"reference,omitempty"` // explicit string; overrides Seed/Length/Alphabet

	// HasSeed is set by LoadReferenceSpec when the file carries a seed key,
	// so a zero seed can be told apart from an absent one.
	HasSeed bool `yaml:"-"`
}

// supportedSpecVersion is the only reference spec version this build reads.
const supportedSpecVersion = "1"

// LoadReferenceSpec reads a YAML reference spec with strict field checking.
func LoadReferenceSpec(path string) (*ReferenceSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference spec: %w", err)
	}
	var spec ReferenceSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing reference spec: %w", err)
	}
	if spec.Version == "" {
		spec.Version = supportedSpecVersion
	}
	if err := spec.checkVersion(); err != nil {
		return nil, fmt.Errorf("invalid reference spec %s: %w", path, err)
	}

	var presence struct {
		Seed *int64 `yaml:"seed"`
	}
	if err := yaml.Unmarshal(data, &presence); err != nil {
		return nil, fmt.Errorf("parsing reference spec: %w", err)
	}
	spec.HasSeed = presence.Seed != nil
	return &spec, nil
}

func (s *ReferenceSpec) checkVersion() error {
	if s.Version != "" && s.Version != supportedSpecVersion {
		return fmt.Errorf("unsupported reference spec version %q: %w", s.Version, sim.ErrInvalidArgument)
	}
	return nil
}

// Validate checks that the spec can produce a non-empty reference string.
func (s *ReferenceSpec) Validate() error {
	if err := s.checkVersion(); err != nil {
		return err
	}
	if s.Reference != "" {
		_, err := ParseSequence(s.Reference)
		return err
	}
	if s.Length <= 0 {
		return fmt.Errorf("length must be > 0, got %d: %w", s.Length, sim.ErrInvalidArgument)
	}
	_, err := s.alphabet()
	return err
}

// Generate returns the reference string the spec describes.
// Same spec and seed always yield the same sequence.
func (s *ReferenceSpec) Generate() (sim.Sequence, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reference spec: %w", err)
	}
	if s.Reference != "" {
		return ParseSequence(s.Reference)
	}
	alphabet, err := s.alphabet()
	if err != nil {
		return nil, err
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(s.Seed))
	return GenerateReference(s.Length, alphabet, rng.ForSubsystem(sim.SubsystemReference))
}

func (s *ReferenceSpec) alphabet() (sim.Alphabet, error) {
	if s.Alphabet == "" {
		return sim.DefaultAlphabet(), nil
	}
	return ParseAlphabet(s.Alphabet)
}
