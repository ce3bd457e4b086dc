package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/frherrer/atomic-docgen/internal/domain"
)

// Config is the top-level configuration struct, read from atomicdoc.yaml.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Attack  AttackConfig  `yaml:"attack"`
	Logging LoggingConfig `yaml:"logging"`
	DryRun  bool          `yaml:"dry_run"`
}

type InputConfig struct {
	Directories []string `yaml:"directories"`
	Include     []string `yaml:"include"`
	Exclude     []string `yaml:"exclude"`
	Recursive   *bool    `yaml:"recursive"` // pointer to distinguish unset from false
}

type OutputConfig struct {
	// Directory for generated Markdown. Empty means next to the source file.
	Directory string `yaml:"directory"`
	Suffix    string `yaml:"suffix"`
	// VerifyAnchors re-parses each rendered document and checks that every
	// TOC link resolves to a heading.
	VerifyAnchors bool `yaml:"verify_anchors"`
}

type AttackConfig struct {
	// Source selects where the "Description from ATT&CK" text comes from:
	// "none", "file", or "fetch".
	Source  string `yaml:"source"`
	File    string `yaml:"file"`
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML configuration file and returns a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("config", path, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError("config", path, "failed to parse config file", err)
	}

	return cfg, nil
}
