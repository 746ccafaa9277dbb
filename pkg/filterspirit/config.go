// Package filterspirit is the high-level front door over the core
// packages: parse source text (SF or RF), compile it, bind it against
// market data, and serialize the result — mirroring the teacher's
// `pkg/dungeon.Generator` orchestrator, which wraps its own five-stage
// pipeline behind one `Generate` entry point.
package filterspirit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings a pipeline run needs beyond the source text
// itself: the compiler's three boolean switches (spec.md §6 "Compiler
// settings") plus the preamble metadata the serializer attaches. It
// supports YAML parsing and validation the same way the teacher's
// `dungeon.Config` does.
type Config struct {
	// RuthlessMode enables the Hide/Minimal substitution of spec.md §4.4.
	RuthlessMode bool `yaml:"ruthlessMode"`
	// StopOnError stops compilation at the first error instead of
	// continuing to collect further diagnostics.
	StopOnError bool `yaml:"stopOnError"`
	// TreatWarningsAsErrors makes any warning a fatal outcome.
	TreatWarningsAsErrors bool `yaml:"treatWarningsAsErrors"`

	// Version, SourceTag, LeagueName, and AttributionLines feed the
	// serializer's preamble (spec.md §6 "Preamble").
	Version          string   `yaml:"version,omitempty"`
	SourceTag        string   `yaml:"sourceTag,omitempty"`
	LeagueName       string   `yaml:"leagueName,omitempty"`
	AttributionLines []string `yaml:"attributionLines,omitempty"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
// Useful for testing and programmatic config generation.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks configuration constraints. Every combination of the
// three compiler switches is legal, so this currently always succeeds;
// it exists as the extension point LoadConfig and LoadConfigFromBytes
// already call.
func (c *Config) Validate() error {
	return nil
}
