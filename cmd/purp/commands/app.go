package commands

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bartekus/purp/cmd/purp/internal/clierr"
	"github.com/bartekus/purp/internal/config"
	"github.com/bartekus/purp/internal/execx"
	"github.com/bartekus/purp/internal/runner"
	"github.com/bartekus/purp/internal/scanner"
)

// Env holds the capabilities commands use to touch the outside world.
// Nil fields select the real implementations.
type Env struct {
	Exec   execx.Executor
	Finder scanner.Finder
}

// app is the state shared by every command of one root.
type app struct {
	env        Env
	verbose    bool
	configPath string
}

// setup builds a runner bound to cmd's streams.
// The project file is read only when --config names one.
func (a *app) setup(cmd *cobra.Command) (*runner.Runner, *config.Config, error) {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return nil, nil, clierr.Wrap(clierr.ExitUsage, "invalid configuration", err)
		}
		cfg = loaded
	}

	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "purp"})
	logger.SetLevel(log.WarnLevel)
	if a.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	logger.Debug("config", "path", a.configPath, "build", cfg.Tools.Build, "runtime", cfg.Tools.Runtime, "bundler", cfg.Tools.Bundler)

	ex := a.env.Exec
	if ex == nil {
		ex = execx.NewOSExecutor()
	}
	finder := a.env.Finder
	if finder == nil {
		finder = scanner.New(".")
	}

	r := runner.NewRunner(runner.Deps{
		Exec:      ex,
		Finder:    finder,
		Tools:     cfg.Tools,
		OutputDir: cfg.OutputDir,
		Out:       cmd.OutOrStdout(),
		Logger:    logger,
	})
	return r, cfg, nil
}

func (a *app) build(cmd *cobra.Command, opts runner.BuildOptions) error {
	r, _, err := a.setup(cmd)
	if err != nil {
		return err
	}
	return exitError(r.Build(cmd.Context(), opts))
}

// exitError maps runner failures onto process exit codes.
func exitError(err error) error {
	if err == nil {
		return nil
	}

	var launchErr *execx.LaunchError
	switch {
	case errors.Is(err, runner.ErrStepFailed):
		// The status line already said so.
		return clierr.Silent(clierr.ExitFailure, err)
	case errors.As(err, &launchErr):
		return clierr.Wrap(clierr.ExitEnv, "", err)
	case errors.Is(err, scanner.ErrBadPattern):
		return clierr.Wrap(clierr.ExitUsage, "", err)
	default:
		return err
	}
}

// stringOption prefers an explicitly set flag over the configured value.
func stringOption(cmd *cobra.Command, flag, value, configured string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}
	return configured
}

func mainModule(cmd *cobra.Command, value, configured string) (string, error) {
	m := stringOption(cmd, "main", value, configured)
	if err := config.ValidModuleName(m); err != nil {
		return "", clierr.Wrap(clierr.ExitUsage, "--main", err)
	}
	return m, nil
}

func requireNonEmpty(flag, value string) error {
	if value == "" {
		return clierr.Newf(clierr.ExitUsage, "--%s must not be empty", flag)
	}
	return nil
}
