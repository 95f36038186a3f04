package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/page-sim/sim"
)

// changedSet returns a Changed-style predicate reporting the given flag names.
func changedSet(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

const testDefaults = `
version: "1"
defaults:
  frames: 4
  length: 30
  seed: 7
presets:
  big:
    frames: 5
    length: 100
  fixed:
    frames: 3
    reference: "070120304"
`

func TestResolve_DefaultsFileFillsUnsetFlags(t *testing.T) {
	// GIVEN flag values at their defaults and a defaults file
	p := runParams{frames: 3, length: 20, seed: 42, defaultsPath: writeTempYAML(t, testDefaults)}

	// WHEN resolved with nothing set explicitly
	spec, frames, err := p.resolve(changedSet())
	require.NoError(t, err)

	// THEN the defaults file wins
	assert.Equal(t, 4, frames)
	assert.Equal(t, 30, spec.Length)
	assert.Equal(t, int64(7), spec.Seed)
}

func TestResolve_ExplicitFlagsWin(t *testing.T) {
	p := runParams{frames: 5, length: 60, seed: 99, preset: "big", defaultsPath: writeTempYAML(t, testDefaults)}

	spec, frames, err := p.resolve(changedSet("frames", "seed"))
	require.NoError(t, err)

	// THEN changed flags keep their values, unchanged ones follow the preset
	assert.Equal(t, 5, frames)
	assert.Equal(t, int64(99), spec.Seed)
	assert.Equal(t, 100, spec.Length)
}

func TestResolve_PresetReference(t *testing.T) {
	p := runParams{frames: 3, length: 20, preset: "fixed", defaultsPath: writeTempYAML(t, testDefaults)}

	spec, frames, err := p.resolve(changedSet())
	require.NoError(t, err)

	seq, err := spec.Generate()
	require.NoError(t, err)
	assert.Equal(t, 3, frames)
	assert.Equal(t, "070120304", seq.String())
}

func TestResolve_UnknownPreset(t *testing.T) {
	p := runParams{frames: 3, length: 20, preset: "nope", defaultsPath: writeTempYAML(t, testDefaults)}
	_, _, err := p.resolve(changedSet())
	assert.Error(t, err)
}

func TestResolve_MissingDefaultsFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "defaults.yaml")

	// GIVEN the default path and no preset, a missing file is tolerated
	p := runParams{frames: 3, length: 20, seed: 1, defaultsPath: missing}
	spec, frames, err := p.resolve(changedSet())
	require.NoError(t, err)
	assert.Equal(t, 3, frames)
	assert.Equal(t, 20, spec.Length)

	// GIVEN an explicitly requested file, a missing file is an error
	_, _, err = p.resolve(changedSet("defaults"))
	assert.Error(t, err)

	// GIVEN a preset, the file is required
	p.preset = "big"
	_, _, err = p.resolve(changedSet())
	assert.Error(t, err)
}

func TestResolve_WorkloadSpecOverridesDefaults(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "ref.yaml")
	writeFile(t, specPath, "seed: 1234\nlength: 55\nalphabet: \"xyz\"\n")

	p := runParams{frames: 3, length: 20, seed: 42, defaultsPath: writeTempYAML(t, testDefaults), specPath: specPath}
	spec, _, err := p.resolve(changedSet())
	require.NoError(t, err)

	assert.Equal(t, int64(1234), spec.Seed)
	assert.Equal(t, 55, spec.Length)
	assert.Equal(t, "xyz", spec.Alphabet)
}

func TestResolve_WorkloadSpecWithoutSeed_KeepsSeed(t *testing.T) {
	// GIVEN a spec file that sets only the length
	specPath := filepath.Join(t.TempDir(), "ref.yaml")
	writeFile(t, specPath, "length: 30\n")

	// WHEN resolved over a flag seed of 42 and no defaults file
	p := runParams{frames: 3, length: 20, seed: 42, defaultsPath: filepath.Join(t.TempDir(), "none.yaml"), specPath: specPath}
	spec, _, err := p.resolve(changedSet())
	require.NoError(t, err)

	// THEN the seed is untouched and the length comes from the file
	assert.Equal(t, int64(42), spec.Seed)
	assert.Equal(t, 30, spec.Length)
}

func TestResolve_WorkloadSpecZeroSeed_Applied(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "ref.yaml")
	writeFile(t, specPath, "seed: 0\nlength: 30\n")

	p := runParams{frames: 3, length: 20, seed: 42, defaultsPath: filepath.Join(t.TempDir(), "none.yaml"), specPath: specPath}
	spec, _, err := p.resolve(changedSet())
	require.NoError(t, err)
	assert.Equal(t, int64(0), spec.Seed)
}

func TestResolve_WorkloadSpecUnsupportedVersion_Rejected(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "ref.yaml")
	writeFile(t, specPath, "version: \"2\"\nseed: 1\nlength: 30\n")

	p := runParams{frames: 3, length: 20, seed: 42, defaultsPath: filepath.Join(t.TempDir(), "none.yaml"), specPath: specPath}
	_, _, err := p.resolve(changedSet())
	require.Error(t, err)
	assert.True(t, errors.Is(err, sim.ErrInvalidArgument), "got %v", err)
}

func TestResolve_ExplicitLengthIgnoredByReference_Warns(t *testing.T) {
	withLogLevel(t, logrus.WarnLevel)
	hook := logtest.NewGlobal()
	defer hook.Reset()

	// GIVEN an explicit --length and a preset that supplies a reference string
	p := runParams{frames: 3, length: 60, preset: "fixed", defaultsPath: writeTempYAML(t, testDefaults)}

	// WHEN resolved
	spec, _, err := p.resolve(changedSet("length"))
	require.NoError(t, err)

	// THEN the reference wins and the ignored flag is reported
	seq, err := spec.Generate()
	require.NoError(t, err)
	assert.Len(t, seq, 9)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "--length ignored")
}

func TestResolve_GeneratedReference_NoIgnoredFlagWarning(t *testing.T) {
	withLogLevel(t, logrus.WarnLevel)
	hook := logtest.NewGlobal()
	defer hook.Reset()

	p := runParams{frames: 3, length: 60, seed: 5, defaultsPath: writeTempYAML(t, testDefaults)}
	_, _, err := p.resolve(changedSet("length", "seed"))
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}

func TestResolve_SameSeed_IdenticalReference(t *testing.T) {
	p := runParams{frames: 3, length: 40, seed: 123, defaultsPath: filepath.Join(t.TempDir(), "none.yaml")}

	s1, _, err := p.resolve(changedSet("seed", "length"))
	require.NoError(t, err)
	s2, _, err := p.resolve(changedSet("seed", "length"))
	require.NoError(t, err)

	a, err := s1.Generate()
	require.NoError(t, err)
	b, err := s2.Generate()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	p.seed = 124
	s3, _, err := p.resolve(changedSet("seed", "length"))
	require.NoError(t, err)
	c, err := s3.Generate()
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), c.String())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
