// Package prd loads and validates the prd.yaml run manifest, which
// pins a conversion batch to an input glob and an output directory.
package prd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lexindo/perundang-cli/internal/core/domain"
)

// Tool names the manifest must declare so a batch is reproducible on
// another machine.
const (
	ToolCheckDeps     = "check_deps"
	ToolEnumeratePDFs = "enumerate_pdfs"
)

// Datasource points at one input file set.
type Datasource struct {
	// Path is a glob over input PDFs, e.g. "data/uu/**/*.pdf".
	Path string `yaml:"path"`
}

// Outputs declares where converted files land.
type Outputs struct {
	Dir string `yaml:"dir"`
}

// Tool is one declared pipeline tool.
type Tool struct {
	Name string `yaml:"name"`
}

// Config is the parsed prd.yaml manifest.
type Config struct {
	ID          string       `yaml:"id"`
	Datasources []Datasource `yaml:"datasources"`
	Outputs     Outputs      `yaml:"outputs"`
	Tools       []Tool       `yaml:"tools"`
}

// Load reads and validates the manifest at path. All validation
// failures wrap domain.ErrInvalidConfig.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w: %v", path, domain.ErrInvalidConfig, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w: %v", path, domain.ErrInvalidConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: missing id", domain.ErrInvalidConfig)
	}
	if len(c.Datasources) == 0 || c.Datasources[0].Path == "" {
		return fmt.Errorf("%w: missing datasources[0].path", domain.ErrInvalidConfig)
	}
	if c.Outputs.Dir == "" {
		return fmt.Errorf("%w: missing outputs.dir", domain.ErrInvalidConfig)
	}
	for _, required := range []string{ToolCheckDeps, ToolEnumeratePDFs} {
		if !c.hasTool(required) {
			return fmt.Errorf("%w: missing tool %q", domain.ErrInvalidConfig, required)
		}
	}
	return nil
}

func (c *Config) hasTool(name string) bool {
	for _, t := range c.Tools {
		if t.Name == name {
			return true
		}
	}
	return false
}

// InputGlob returns the primary datasource glob.
func (c *Config) InputGlob() string {
	return c.Datasources[0].Path
}

// OutputDir returns the configured output directory.
func (c *Config) OutputDir() string {
	return c.Outputs.Dir
}
