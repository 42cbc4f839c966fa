package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/simonhull/modmeta"
	"github.com/simonhull/modmeta/internal/config"
)

var (
	// cfgFile allows specifying a custom config file
	cfgFile string

	// Effective settings and logger, set before any subcommand runs.
	cfg    = config.DefaultConfig()
	logger = slog.New(slog.DiscardHandler)

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "modmeta",
		Short: "Read metadata from Minecraft mod artifacts",
		Long: TitleStyle.Render("modmeta") + SubtitleStyle.Render(" - Read metadata from Minecraft mod artifacts") + `

modmeta reads the metadata embedded in mod jars, loose mod folders, and
LiteLoader .litemod files. Forge mcmod.info, Fabric fabric.mod.json,
the Forge loader's forgeversion.properties, and LiteLoader litemod.json
are understood.

` + SubtitleStyle.Render("Examples:") + `
  modmeta inspect mods/jei.jar          Show one mod
  modmeta inspect -k directory mods/x   Treat a path as a loose mod folder
  modmeta scan instance/mods -o json    Describe a whole mods folder`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
	}
)

func init() {
	defaults := config.DefaultConfig()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/modmeta/modmeta.toml)")
	pf.String("log-level", defaults.LogLevel, "log level: debug, info, warn, error")
	pf.StringP("output", "o", defaults.Output, "output format: text, json, yaml")
	pf.Int("concurrency", defaults.Concurrency, "artifacts parsed in parallel")
	pf.Int64("max-entry-size", defaults.MaxEntrySize, "largest metadata entry read, in bytes (0 = no limit)")
	pf.Bool("fingerprint", defaults.Fingerprint, "include a BLAKE3 digest of each archive")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves settings for the command being run and installs
// the logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	c, path, err := config.Load(config.LoadOptions{
		ConfigFilePath: cfgFile,
		Flags:          cmd.Flags(),
	})
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: config.AppName,
	})
	cfg = c
	logger = slog.New(handler)

	if path != "" {
		logger.Debug("loaded config", "path", path)
	}
	return nil
}

// parseOptions translates the effective settings into library options.
func parseOptions() []modmeta.Option {
	return []modmeta.Option{
		modmeta.WithLogger(logger),
		modmeta.WithMaxEntrySize(cfg.MaxEntrySize),
		modmeta.WithConcurrency(cfg.Concurrency),
	}
}
