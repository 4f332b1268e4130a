// Package cli implements the pbc command line.
package cli

import (
	"fmt"
	"io"

	"github.com/ironsheep/backdrop-mcp/internal/background"
	"github.com/ironsheep/backdrop-mcp/internal/config"
	"github.com/ironsheep/backdrop-mcp/internal/logging"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	silent     bool
)

var rootCmd = &cobra.Command{
	Use:   "pbc",
	Short: "Compose presentation backgrounds",
	Long: `pbc composes presentation backgrounds.

An image is split into a header band and a body band, each with its own
margins. Recipes describe the filters, overlays and pictures to apply to
named regions; the MCP server exposes the same operations to MCP clients.

Configuration is read from ~/.pbc/config.yaml (or --config, or $PBC_CONFIG),
a .env file in the working directory, and these environment variables:
  PBC_SAVE_DIR    directory every save writes to
  PBC_LOG_LEVEL   debug, info, warn or error
  PBC_SILENT      suppress info diagnostics`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&silent, "silent", "s", false, "suppress info diagnostics")
}

// SetVersion sets the version reported by the version command and the MCP
// handshake.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads the configuration, applies the global flags and the save
// directory, and returns a logger writing to w.
func setup(cmd *cobra.Command, w io.Writer) (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("silent") {
		cfg.Silent = silent
	}
	if cfg.SaveDir != "" {
		background.SaveTo(cfg.SaveDir)
	}

	logger := logging.New("pbc", w, logging.ParseLevel(cfg.LogLevel))
	logger.Debug("configuration loaded", "save_dir", cfg.SaveDir, "silent", cfg.Silent)
	return cfg, logger, nil
}
