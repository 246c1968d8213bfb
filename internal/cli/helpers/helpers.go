// Package helpers carries setup and formatting shared by the CLI
// subcommands.
package helpers

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mapmerge/mapmerge/internal/config"
	"github.com/mapmerge/mapmerge/internal/logging"
)

// Setup resolves the tool config and builds a component logger from the
// root command's persistent flags.
func Setup(cmd *cobra.Command, component string) (config.Config, zerolog.Logger, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, zerolog.Nop(), err
	}

	// Flag overrides config.
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}

	logger := logging.NewWithComponent(logging.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
	}, component)
	return cfg, logger, nil
}
