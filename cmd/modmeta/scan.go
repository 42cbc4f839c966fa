package main

import (
	"github.com/spf13/cobra"

	"github.com/simonhull/modmeta"
)

var scanCmd = &cobra.Command{
	Use:   "scan DIR",
	Short: "Describe every mod in a mods folder",
	Long: `Describe every mod artifact in a mods folder.

Hidden files and entries that are neither archives, .litemod files,
nor folders are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	requests, err := modmeta.ScanDir(args[0])
	if err != nil {
		return err
	}
	logger.Debug("scanned mods folder", "dir", args[0], "artifacts", len(requests))

	results, err := modmeta.ParseMany(cmd.Context(), requests, parseOptions()...)
	if err != nil {
		return err
	}

	records := buildRecords(results, cfg.Fingerprint, logger)
	return writeRecords(cmd.OutOrStdout(), cfg.Output, records)
}
