// Package config loads the purp.yaml project file named by --config.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the conventional name of the project file.
const DefaultPath = "purp.yaml"

// Tools names the external executables purp invokes.
type Tools struct {
	Build   string `yaml:"build"`
	Runtime string `yaml:"runtime"`
	Bundler string `yaml:"bundler"`
}

type TestConfig struct {
	Main    string `yaml:"main"`
	Pattern string `yaml:"pattern"`
}

type RunConfig struct {
	Main string `yaml:"main"`
}

type BundleConfig struct {
	Main       string `yaml:"main"`
	Output     string `yaml:"output"`
	SourceMaps bool   `yaml:"source_maps"`
}

// Config is the project configuration. Zero fields are filled from defaults.
type Config struct {
	Tools     Tools        `yaml:"tools"`
	OutputDir string       `yaml:"output_dir"`
	Test      TestConfig   `yaml:"test"`
	Run       RunConfig    `yaml:"run"`
	Bundle    BundleConfig `yaml:"bundle"`
}

// Default returns the configuration used when no project file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads path, applies defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML, rejecting unknown keys.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
