package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/modmeta"
)

// inspectKind forces the artifact kind instead of detecting it per path.
var inspectKind string

var inspectCmd = &cobra.Command{
	Use:   "inspect PATH...",
	Short: "Print the metadata of mod artifacts",
	Long: `Print the metadata of one or more mod artifacts.

The artifact kind is detected from each path (directory, .jar/.zip,
.litemod, with a trailing .disabled ignored) unless --kind is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectKind, "kind", "k", "", "artifact kind: archive, directory, litemod (default: detect)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	forced := modmeta.KindUnknown
	if inspectKind != "" {
		k, err := modmeta.ParseArtifactKind(inspectKind)
		if err != nil {
			return err
		}
		forced = k
	}

	requests := make([]modmeta.Request, 0, len(args))
	for i, path := range args {
		kind := forced
		if kind == modmeta.KindUnknown {
			detected, err := modmeta.DetectKind(path)
			if err != nil {
				return err
			}
			if detected == modmeta.KindUnknown {
				return fmt.Errorf("%s: cannot tell the artifact kind, use --kind", path)
			}
			kind = detected
		}
		requests = append(requests, modmeta.Request{
			Token: modmeta.Token(i),
			Kind:  kind,
			Path:  path,
		})
	}

	results, err := modmeta.ParseMany(cmd.Context(), requests, parseOptions()...)
	if err != nil {
		return err
	}

	records := buildRecords(results, cfg.Fingerprint, logger)
	return writeRecords(cmd.OutOrStdout(), cfg.Output, records)
}
