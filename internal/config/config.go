// Package config loads the srcfix run configuration. The file list and the
// operations applied to each file live here rather than in code, so "which
// files" stays decoupled from "how to fix them".
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"srcfix/internal/batch"
	"srcfix/internal/textfix"
)

// Operation names accepted in the fix/check lists.
const (
	OpRegionReindent    = "region-reindent"
	OpDeclarationInject = "declaration-inject"
	OpAsyncDeficit      = "async-deficit"
)

// Config is the top-level srcfix configuration.
type Config struct {
	Region      RegionConfig      `yaml:"region"`
	Declaration DeclarationConfig `yaml:"declaration"`
	Detect      DetectConfig      `yaml:"detect"`
	Files       []FileConfig      `yaml:"files"`
}

// RegionConfig configures the marker-delimited region scanner.
type RegionConfig struct {
	StartMarker string `yaml:"start_marker"`
	EndMarker   string `yaml:"end_marker"`
}

// DeclarationConfig configures the declaration injector.
type DeclarationConfig struct {
	Line       string `yaml:"line"`
	Introducer string `yaml:"introducer"`
	Terminator string `yaml:"terminator"`
}

// DetectConfig configures the deficit detector's pattern pair.
type DetectConfig struct {
	DeclarationPattern string `yaml:"declaration_pattern"`
	FulfillmentPattern string `yaml:"fulfillment_pattern"`
}

// FileConfig names one target file and the operations to run against it.
type FileConfig struct {
	Path  string   `yaml:"path"`
	Fix   []string `yaml:"fix"`
	Check []string `yaml:"check"`
}

// Default returns a configuration preloaded with the stock C# fix
// definitions. A config file overrides whichever sections it sets.
func Default() *Config {
	return &Config{
		Region: RegionConfig{
			StartMarker: "#region IInterpretableModel Implementation",
			EndMarker:   "#endregion",
		},
		Declaration: DeclarationConfig{
			Line:       "using AiDotNet.Interpretability;",
			Introducer: "using ",
			Terminator: ";",
		},
		Detect: DetectConfig{
			DeclarationPattern: `async\s+Task`,
			FulfillmentPattern: `await\s+`,
		},
	}
}

// Load reads a YAML config file over the defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config for problems a run would trip over.
func (c *Config) Validate() error {
	if len(c.Files) == 0 {
		return fmt.Errorf("files: at least one entry is required")
	}
	for i, f := range c.Files {
		if f.Path == "" {
			return fmt.Errorf("files[%d]: path is required", i)
		}
		for _, op := range f.Fix {
			switch op {
			case OpRegionReindent:
				if c.Region.StartMarker == "" || c.Region.EndMarker == "" {
					return fmt.Errorf("files[%d]: %s needs region start_marker and end_marker", i, op)
				}
			case OpDeclarationInject:
				if c.Declaration.Line == "" || c.Declaration.Introducer == "" {
					return fmt.Errorf("files[%d]: %s needs declaration line and introducer", i, op)
				}
			default:
				return fmt.Errorf("files[%d]: unknown fix operation %q", i, op)
			}
		}
		for _, op := range f.Check {
			if op != OpAsyncDeficit {
				return fmt.Errorf("files[%d]: unknown check operation %q", i, op)
			}
		}
	}
	if _, err := regexp.Compile(c.Detect.DeclarationPattern); err != nil {
		return fmt.Errorf("detect.declaration_pattern: %w", err)
	}
	if _, err := regexp.Compile(c.Detect.FulfillmentPattern); err != nil {
		return fmt.Errorf("detect.fulfillment_pattern: %w", err)
	}
	return nil
}

// Entries builds the batch entries this config describes.
func (c *Config) Entries() ([]batch.Entry, error) {
	decl, err := regexp.Compile(c.Detect.DeclarationPattern)
	if err != nil {
		return nil, fmt.Errorf("detect.declaration_pattern: %w", err)
	}
	ful, err := regexp.Compile(c.Detect.FulfillmentPattern)
	if err != nil {
		return nil, fmt.Errorf("detect.fulfillment_pattern: %w", err)
	}

	reindent := textfix.RegionReindent{Region: textfix.RegionScanner{
		StartMarker: c.Region.StartMarker,
		EndMarker:   c.Region.EndMarker,
	}}
	inject := textfix.DeclarationInject{
		Line:       c.Declaration.Line,
		Introducer: c.Declaration.Introducer,
		Terminator: c.Declaration.Terminator,
	}
	deficit := textfix.DeficitDetector{
		Label:       OpAsyncDeficit,
		Declaration: decl,
		Fulfillment: ful,
	}

	entries := make([]batch.Entry, 0, len(c.Files))
	for _, f := range c.Files {
		entry := batch.Entry{Path: f.Path}
		for _, op := range f.Fix {
			switch op {
			case OpRegionReindent:
				entry.Fixers = append(entry.Fixers, reindent)
			case OpDeclarationInject:
				entry.Fixers = append(entry.Fixers, inject)
			default:
				return nil, fmt.Errorf("unknown fix operation %q", op)
			}
		}
		for _, op := range f.Check {
			switch op {
			case OpAsyncDeficit:
				entry.Detectors = append(entry.Detectors, deficit)
			default:
				return nil, fmt.Errorf("unknown check operation %q", op)
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// CheckOnly strips fixers from a set of entries, leaving detectors.
func CheckOnly(entries []batch.Entry) []batch.Entry {
	out := make([]batch.Entry, 0, len(entries))
	for _, e := range entries {
		e.Fixers = nil
		out = append(out, e)
	}
	return out
}
