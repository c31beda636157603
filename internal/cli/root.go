// SPDX-License-Identifier: MIT

// Package cli implements the planarity command line.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	if err := createRootCommand(ctx, &Input{}, version).Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "planarity",
		Short:        "Decide whether graphs given as edge lists are planar",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.SetContext(ctx)
	rootCmd.PersistentFlags().StringVar(&input.configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newCheckCommand(input),
		newGenerateCommand(input),
		newInspectCommand(input),
	)

	return rootCmd
}
