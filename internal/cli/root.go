// Package cli implements the setcarbon command line interface.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root Cobra command for the setcarbon CLI and wires
// up logging and the subcommand groups (calc, entries, factors, export).
func NewRootCmd(ver string) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:     "setcarbon",
		Short:   "Production carbon footprint calculator",
		Long:    "setcarbon calculates CO2e emissions for production activities: utilities, fuel, EV charging, hotels, commercial travel, and charter flights.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.config = cfg
			opts.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel, opts.debug)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (default ~/.setcarbon/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.storePath, "store", "", "path to the entries file (overrides config)")

	cmd.AddCommand(
		newCalcCmd(&opts),
		newEntriesCmd(&opts),
		newFactorsCmd(&opts),
		newExportCmd(&opts),
	)

	return cmd
}

// rootOptions carries the flags and resolved config shared by every
// subcommand.
type rootOptions struct {
	debug      bool
	configPath string
	storePath  string

	config Config
	logger zerolog.Logger
}

// resolveStorePath returns the entries file path, preferring the --store flag
// over the config file.
func (o *rootOptions) resolveStorePath() string {
	if o.storePath != "" {
		return o.storePath
	}
	return o.config.StorePath
}

const rootCmdExample = `  # Recalculate all categories and print the summary
  setcarbon calc

  # Add a fuel entry
  setcarbon entries add fuel --fuel-type "Diesel Fuel" --amount 50 --equipment Generator

  # List entries in one category
  setcarbon entries list fuel

  # Export per-entry results as CSV
  setcarbon export --format csv --out results.csv

  # Show the factor table version
  setcarbon factors version`
