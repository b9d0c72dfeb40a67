package config

import "strings"

// Default configuration values.
const (
	DefaultBuildTool   = "psc-package"
	DefaultRuntimeTool = "node"
	DefaultBundlerTool = "purs"
	DefaultOutputDir   = "./output"
	DefaultTestMain    = "Test.Main"
	DefaultTestPattern = "./test/**/*.purs"
	DefaultMain        = "Main"
	DefaultBundleFile  = "index.js"
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	applyToolDefaults(&cfg.Tools)

	cfg.OutputDir = orDefault(cfg.OutputDir, DefaultOutputDir)
	cfg.Test.Main = orDefault(cfg.Test.Main, DefaultTestMain)
	cfg.Test.Pattern = orDefault(cfg.Test.Pattern, DefaultTestPattern)
	cfg.Run.Main = orDefault(cfg.Run.Main, DefaultMain)
	cfg.Bundle.Main = orDefault(cfg.Bundle.Main, DefaultMain)
	cfg.Bundle.Output = orDefault(cfg.Bundle.Output, DefaultBundleFile)
}

func applyToolDefaults(t *Tools) {
	t.Build = orDefault(t.Build, DefaultBuildTool)
	t.Runtime = orDefault(t.Runtime, DefaultRuntimeTool)
	t.Bundler = orDefault(t.Bundler, DefaultBundlerTool)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
