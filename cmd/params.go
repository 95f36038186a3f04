package cmd

import (
	"errors"
	"io/fs"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/page-sim/sim/workload"
)

// runParams holds the flag values shared by run and sweep.
type runParams struct {
	frames       int
	length       int
	seed         int64
	alphabet     string
	sequence     string
	preset       string
	defaultsPath string
	specPath     string
}

// resolve layers defaults.yaml, the selected preset and an optional reference
// spec file under the command-line flags. changed reports whether a flag was
// set explicitly; explicit flags are never overwritten.
func (p runParams) resolve(changed func(string) bool) (*workload.ReferenceSpec, int, error) {
	cfg, err := loadDefaultsConfig(p.defaultsPath)
	switch {
	case err == nil:
		p.apply(cfg.Defaults, changed)
		if p.preset != "" {
			preset, err := cfg.GetPreset(p.preset)
			if err != nil {
				return nil, 0, err
			}
			logrus.Infof("Using preset %q", p.preset)
			p.apply(preset, changed)
		}
	case errors.Is(err, fs.ErrNotExist) && !changed("defaults") && p.preset == "":
		logrus.Debugf("No defaults file at %s; using flag values", p.defaultsPath)
	default:
		return nil, 0, err
	}

	version := "1"
	if p.specPath != "" {
		spec, err := workload.LoadReferenceSpec(p.specPath)
		if err != nil {
			return nil, 0, err
		}
		logrus.Infof("Using reference spec %s", p.specPath)
		layer := Preset{Length: spec.Length, Alphabet: spec.Alphabet, Reference: spec.Reference}
		if spec.HasSeed {
			layer.Seed = &spec.Seed
		}
		p.apply(layer, changed)
		version = spec.Version
	}

	if p.sequence != "" {
		for _, name := range []string{"length", "seed", "alphabet"} {
			if changed(name) {
				logrus.Warnf("--%s ignored: the reference string %q is given explicitly", name, p.sequence)
			}
		}
	}

	spec := &workload.ReferenceSpec{
		Version:   version,
		Seed:      p.seed,
		Length:    p.length,
		Alphabet:  p.alphabet,
		Reference: p.sequence,
	}
	return spec, p.frames, nil
}

// apply copies the set fields of preset into p unless the matching flag was changed.
func (p *runParams) apply(preset Preset, changed func(string) bool) {
	if preset.Frames > 0 && !changed("frames") {
		p.frames = preset.Frames
	}
	if preset.Length > 0 && !changed("length") {
		p.length = preset.Length
	}
	if preset.Seed != nil && !changed("seed") {
		p.seed = *preset.Seed
	}
	if preset.Alphabet != "" && !changed("alphabet") {
		p.alphabet = preset.Alphabet
	}
	if preset.Reference != "" && !changed("sequence") {
		p.sequence = preset.Reference
	}
}
