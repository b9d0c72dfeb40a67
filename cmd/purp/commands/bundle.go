package commands

import (
	"github.com/spf13/cobra"

	"github.com/bartekus/purp/internal/runner"
)

func newBundleCommand(a *app) *cobra.Command {
	var (
		main       string
		output     string
		sourceMaps bool
		opts       runner.BundleOptions
	)

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Bundle the project using purs bundle",
		Long: `Bundle the project using purs bundle.
This does not bundle for the browser, you should build this further with a tool like Parcel.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, cfg, err := a.setup(cmd)
			if err != nil {
				return err
			}

			opts.Main, err = mainModule(cmd, main, cfg.Bundle.Main)
			if err != nil {
				return err
			}
			opts.Output = stringOption(cmd, "output", output, cfg.Bundle.Output)
			if err := requireNonEmpty("output", opts.Output); err != nil {
				return err
			}
			opts.SourceMaps = cfg.Bundle.SourceMaps
			if cmd.Flags().Changed("source-maps") {
				opts.SourceMaps = sourceMaps
			}

			return exitError(r.Bundle(cmd.Context(), opts))
		},
	}

	cmd.Flags().StringVarP(&main, "main", "m", "", "Specify the main Module to be used (default Main)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Specify the output file path (default index.js)")
	cmd.Flags().BoolVar(&sourceMaps, "source-maps", false, "Generate source maps for the bundle")
	addSkipBuildFlag(cmd, &opts.SkipBuild)
	return cmd
}
