package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/reellab/setcarbon/internal/engine"
	"github.com/reellab/setcarbon/internal/export"
)

// newExportCmd creates the export command: run a full calculation and write
// the results or summary in the requested format.
func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		format      string
		outPath     string
		summaryOnly bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export calculation results as CSV or JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := runCalculation(opts)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "csv":
				if summaryOnly {
					return export.WriteSummaryCSV(w, out.Summary)
				}
				return export.WriteResultsCSV(w, allResults(out))
			case "json":
				if summaryOnly {
					return export.WriteSummaryJSON(w, out.Summary)
				}
				return export.WriteOutputJSON(w, out)
			default:
				return fmt.Errorf("unknown format %q (want csv or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json)")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&summaryOnly, "summary", false, "export the summary instead of per-entry results")
	return cmd
}

// allResults concatenates per-entry results across categories in reporting
// order.
func allResults(out engine.Output) []engine.Result {
	var results []engine.Result
	results = append(results, out.Utilities.Results...)
	results = append(results, out.Fuel.Results...)
	results = append(results, out.EVCharging.Results...)
	results = append(results, out.Hotels.Results...)
	results = append(results, out.CommercialTravel.Results...)
	results = append(results, out.CharterFlights.Results...)
	return results
}
