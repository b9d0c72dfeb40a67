package commands

import (
	"github.com/spf13/cobra"

	"github.com/bartekus/purp/internal/runner"
)

func newTestCommand(a *app) *cobra.Command {
	var (
		main    string
		pattern string
		opts    runner.TestOptions
	)

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the project using Node.js",
		Long: `Build the project together with the sources matched by --pattern
(default ./test/**/*.purs), then call main() of the test module.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, cfg, err := a.setup(cmd)
			if err != nil {
				return err
			}

			opts.Main, err = mainModule(cmd, main, cfg.Test.Main)
			if err != nil {
				return err
			}
			opts.Pattern = stringOption(cmd, "pattern", pattern, cfg.Test.Pattern)
			if err := requireNonEmpty("pattern", opts.Pattern); err != nil {
				return err
			}

			return exitError(r.Test(cmd.Context(), opts))
		},
	}

	cmd.Flags().StringVarP(&main, "main", "m", "", "Specify the main Module to be used (default Test.Main)")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Glob selecting the test sources (default ./test/**/*.purs)")
	cmd.Flags().StringSliceVar(&opts.ExcludeDirs, "exclude", nil, "Directory names to drop from the matched test sources")
	addSkipBuildFlag(cmd, &opts.SkipBuild)
	return cmd
}

func addSkipBuildFlag(cmd *cobra.Command, skip *bool) {
	cmd.Flags().BoolVarP(skip, "skip-build", "s", false,
		"Skip building the project, e.g. you have already built or use an IDE plugin")
}
