package config

import (
	"fmt"
	"regexp"
	"strings"
)

// moduleNameRe matches dotted PureScript module names such as Test.Main or Ärger.Main.
var moduleNameRe = regexp.MustCompile(`^\p{Lu}[\p{L}\p{N}_']*(\.\p{Lu}[\p{L}\p{N}_']*)*$`)

// ValidModuleName reports whether name is a dotted module name.
func ValidModuleName(name string) error {
	if !moduleNameRe.MatchString(name) {
		return fmt.Errorf("invalid module name %q", name)
	}
	return nil
}

// Validate checks a configuration with defaults applied.
func Validate(cfg *Config) error {
	tools := []struct {
		key  string
		name string
	}{
		{"tools.build", cfg.Tools.Build},
		{"tools.runtime", cfg.Tools.Runtime},
		{"tools.bundler", cfg.Tools.Bundler},
	}
	for _, t := range tools {
		if strings.ContainsAny(t.name, "\n\r") {
			return fmt.Errorf("%s: invalid tool name %q", t.key, t.name)
		}
	}

	mains := []struct {
		key  string
		name string
	}{
		{"test.main", cfg.Test.Main},
		{"run.main", cfg.Run.Main},
		{"bundle.main", cfg.Bundle.Main},
	}
	for _, m := range mains {
		if err := ValidModuleName(m.name); err != nil {
			return fmt.Errorf("%s: %w", m.key, err)
		}
	}

	if strings.ContainsAny(cfg.OutputDir, `'\`) {
		return fmt.Errorf("output_dir: must not contain quotes or backslashes: %q", cfg.OutputDir)
	}
	return nil
}
