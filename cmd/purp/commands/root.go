// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Purp - a tool for various PureScript tasks.
It builds, tests, runs and bundles a PureScript project by driving the package
build tool, the JavaScript runtime and the bundler on the caller's behalf.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bartekus/purp/cmd/purp/internal/clierr"
	"github.com/bartekus/purp/internal/config"
	"github.com/bartekus/purp/internal/runner"
)

// version is stamped at release time with -ldflags "-X .../commands.version=...".
var version = "0.0.0-dev"

// NewRootCmd constructs the purp root Cobra command wired to the real toolchain.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWith(Env{})
}

// NewRootCmdWith constructs the root command with the given process and file capabilities.
func NewRootCmdWith(env Env) *cobra.Command {
	a := &app{env: env}

	cmd := &cobra.Command{
		Use:   "purp [task]",
		Short: "purp - a tool for various PureScript tasks",
		Long: `purp builds, tests, runs and bundles a PureScript project.
Without a task it builds the project.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unknown task: %q\n", args[0])
				return clierr.Silent(clierr.ExitUsage, fmt.Errorf("unknown task %q", args[0]))
			}
			return a.build(cmd, runner.BuildOptions{})
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		fmt.Sprintf("project configuration file, e.g. %s (built-in defaults when unset)", config.DefaultPath))

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetGlobalNormalizationFunc(normalizeFlagName)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierr.Wrap(clierr.ExitUsage, "", err)
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of purp",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "purp version %s\n", version)
		},
	})

	cmd.AddCommand(newBuildCommand(a))
	cmd.AddCommand(newTestCommand(a))
	cmd.AddCommand(newRunCommand(a))
	cmd.AddCommand(newBundleCommand(a))

	return cmd
}

// normalizeFlagName accepts --skip_build as well as --skip-build.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
