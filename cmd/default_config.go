package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset describes one named parameter set in defaults.yaml.
// Zero values mean "not set" and leave the current value untouched.
type Preset struct {
	Frames    int    `yaml:"frames"`
	Length    int    `yaml:"length"`
	Seed      *int64 `yaml:"seed"`
	Alphabet  string `yaml:"alphabet"`
	Reference string `yaml:"reference"`
}

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version  string            `yaml:"version"`
	Defaults Preset            `yaml:"defaults"`
	Presets  map[string]Preset `yaml:"presets"`
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
// Uses strict field checking so typos surface as errors.
func loadDefaultsConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading defaults file: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing defaults YAML: %w", err)
	}
	return &cfg, nil
}

// GetPreset returns the named preset, or an error listing the known names.
func (c *Config) GetPreset(name string) (Preset, error) {
	if p, ok := c.Presets[name]; ok {
		return p, nil
	}
	names := make([]string, 0, len(c.Presets))
	for n := range c.Presets {
		names = append(names, n)
	}
	return Preset{}, fmt.Errorf("unknown preset %q; available: %v", name, names)
}
