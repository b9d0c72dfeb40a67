package runner

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bartekus/purp/internal/config"
	"github.com/bartekus/purp/internal/execx"
	"github.com/bartekus/purp/internal/scanner"
)

// Runner sequences the external tools behind each purp task.
// Every invocation is spawned and awaited before the next one starts.
type Runner struct {
	deps Deps
}

// NewRunner creates a runner. Unset tools and directories fall back to the config defaults.
func NewRunner(deps Deps) *Runner {
	def := config.Default()
	if deps.Tools.Build == "" {
		deps.Tools.Build = def.Tools.Build
	}
	if deps.Tools.Runtime == "" {
		deps.Tools.Runtime = def.Tools.Runtime
	}
	if deps.Tools.Bundler == "" {
		deps.Tools.Bundler = def.Tools.Bundler
	}
	if deps.OutputDir == "" {
		deps.OutputDir = def.OutputDir
	}
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	return &Runner{deps: deps}
}

// Build runs the build tool once and reports the outcome.
func (r *Runner) Build(ctx context.Context, opts BuildOptions) error {
	res, err := r.build(ctx, opts.DependenciesOnly, nil)
	if err != nil {
		return err
	}
	if res.Success() {
		r.println("Success.")
		return nil
	}
	r.println("Build failed.")
	return &StepError{Step: StepBuild, Tool: r.deps.Tools.Build, ExitCode: res.Code}
}

// Test builds the project together with the matched test sources, then runs opts.Main.
func (r *Runner) Test(ctx context.Context, opts TestOptions) error {
	if opts.Main == "" {
		opts.Main = config.DefaultTestMain
	}
	if opts.Pattern == "" {
		opts.Pattern = config.DefaultTestPattern
	}

	paths, err := r.testSources(opts)
	if err != nil {
		return err
	}

	return r.guarded(ctx, opts.SkipBuild, paths, func(ctx context.Context) error {
		return r.runMain(ctx, opts.Main)
	})
}

// Run builds the project, then runs opts.Main with the runtime.
func (r *Runner) Run(ctx context.Context, opts RunOptions) error {
	if opts.Main == "" {
		opts.Main = config.DefaultMain
	}

	return r.guarded(ctx, opts.SkipBuild, nil, func(ctx context.Context) error {
		return r.runMain(ctx, opts.Main)
	})
}

// Bundle builds the project, then bundles every compiled module into opts.Output.
func (r *Runner) Bundle(ctx context.Context, opts BundleOptions) error {
	if opts.Main == "" {
		opts.Main = config.DefaultMain
	}
	if opts.Output == "" {
		opts.Output = config.DefaultBundleFile
	}

	return r.guarded(ctx, opts.SkipBuild, nil, func(ctx context.Context) error {
		return r.bundle(ctx, opts)
	})
}

// guarded runs the build step unless skip is set, and calls next only if the build passed.
// With skip set the build tool is never touched and no prior build is verified.
func (r *Runner) guarded(ctx context.Context, skip bool, paths []string, next func(context.Context) error) error {
	if skip {
		r.deps.Logger.Debug("build step", "status", StatusSkip)
		return next(ctx)
	}

	res, err := r.build(ctx, false, paths)
	if err != nil {
		return err
	}
	if !res.Success() {
		r.println("Failed.")
		return &StepError{Step: StepBuild, Tool: r.deps.Tools.Build, ExitCode: res.Code}
	}
	r.println("Success.")
	return next(ctx)
}

func (r *Runner) build(ctx context.Context, dependenciesOnly bool, paths []string) (execx.Result, error) {
	args := []string{"build"}
	if dependenciesOnly {
		r.println("Building with dependencies only")
		args = append(args, "-d")
	}
	r.println("Building...")

	args = append(args, "--")
	args = append(args, paths...)
	return r.spawn(ctx, r.deps.Tools.Build, args...)
}

func (r *Runner) runMain(ctx context.Context, main string) error {
	script := fmt.Sprintf("require('%s').main()", jsEscape(RequirePath(r.deps.OutputDir, main)))
	res, err := r.spawn(ctx, r.deps.Tools.Runtime, "-e", script)
	return r.finish(StepRun, r.deps.Tools.Runtime, res, err)
}

func (r *Runner) bundle(ctx context.Context, opts BundleOptions) error {
	r.println("Bundling...")

	args := []string{
		"bundle",
		outputRoot(r.deps.OutputDir) + "/*/*.js",
		"--module", opts.Main,
		"--main", opts.Main,
		"--output", opts.Output,
	}
	if opts.SourceMaps {
		args = append(args, "--source-maps")
	}

	res, err := r.spawn(ctx, r.deps.Tools.Bundler, args...)
	return r.finish(StepBundle, r.deps.Tools.Bundler, res, err)
}

func (r *Runner) finish(step, tool string, res execx.Result, err error) error {
	if err != nil {
		return err
	}
	if res.Success() {
		r.println("Success.")
		return nil
	}
	r.println("Failed.")
	return &StepError{Step: step, Tool: tool, ExitCode: res.Code}
}

func (r *Runner) testSources(opts TestOptions) ([]string, error) {
	paths, err := r.deps.Finder.Glob(opts.Pattern)
	if err != nil {
		return nil, err
	}
	if len(opts.ExcludeDirs) > 0 {
		paths = scanner.FilterFiles(paths, scanner.FilterOptions{ExcludeDirs: opts.ExcludeDirs})
	}

	if len(paths) == 0 {
		r.deps.Logger.Debug("no test sources matched", "pattern", opts.Pattern)
	} else {
		r.deps.Logger.Debug("test sources", "pattern", opts.Pattern, "count", len(paths))
	}
	return paths, nil
}

func (r *Runner) spawn(ctx context.Context, name string, args ...string) (execx.Result, error) {
	r.deps.Logger.Debug("exec", "cmd", execx.Command(name, args...))

	res, err := r.deps.Exec.Run(ctx, name, args...)
	if err != nil {
		r.deps.Logger.Debug("exec failed", "tool", name, "err", err)
		return res, err
	}

	status := StatusPass
	if !res.Success() {
		status = StatusFail
	}
	r.deps.Logger.Debug("exited", "tool", name, "code", res.Code, "status", status)
	return res, nil
}

func (r *Runner) println(line string) {
	_, _ = fmt.Fprintln(r.deps.Out, line)
}

// RequirePath is the specifier the runtime uses to load a compiled module.
func RequirePath(outputDir, module string) string {
	return outputRoot(outputDir) + "/" + module
}

// jsEscape makes s safe inside a single-quoted JavaScript string.
func jsEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}

// outputRoot normalizes dir so the runtime resolves it as a path, not a package name.
func outputRoot(dir string) string {
	if filepath.IsAbs(dir) {
		return strings.TrimRight(filepath.ToSlash(dir), "/")
	}

	d := strings.TrimRight(filepath.ToSlash(dir), "/")
	if d == "" || d == "." {
		return "."
	}
	if path.IsAbs(d) || d == ".." || strings.HasPrefix(d, "./") || strings.HasPrefix(d, "../") {
		return d
	}
	return "./" + d
}
