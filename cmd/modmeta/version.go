package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/modmeta"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "modmeta %s\n", modmeta.GetBuildInfo())
		return err
	},
}
