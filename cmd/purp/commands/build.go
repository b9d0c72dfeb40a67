package commands

import (
	"github.com/spf13/cobra"

	"github.com/bartekus/purp/internal/runner"
)

func newBuildCommand(a *app) *cobra.Command {
	var opts runner.BuildOptions

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.build(cmd, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.DependenciesOnly, "dependencies-only", "d", false, "Build dependencies only")
	return cmd
}
