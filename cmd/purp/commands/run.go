package commands

import (
	"github.com/spf13/cobra"

	"github.com/bartekus/purp/internal/runner"
)

func newRunCommand(a *app) *cobra.Command {
	var (
		main string
		opts runner.RunOptions
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the project using Node.js",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, cfg, err := a.setup(cmd)
			if err != nil {
				return err
			}

			opts.Main, err = mainModule(cmd, main, cfg.Run.Main)
			if err != nil {
				return err
			}
			return exitError(r.Run(cmd.Context(), opts))
		},
	}

	cmd.Flags().StringVarP(&main, "main", "m", "", "Specify the main Module to be used (default Main)")
	addSkipBuildFlag(cmd, &opts.SkipBuild)
	return cmd
}
