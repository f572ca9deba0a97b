package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reellab/setcarbon/internal/engine"
	"github.com/reellab/setcarbon/internal/store"
)

// newCalcCmd creates the calc command: recompute every category from the
// stored entries and print the summary.
func newCalcCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "calc",
		Short: "Recalculate emissions for all stored entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := runCalculation(opts)
			if err != nil {
				return err
			}

			printSummary(cmd, out.Summary)

			for _, entryErr := range out.EntryErrors() {
				cmd.PrintErrf("skipped: %v\n", entryErr)
			}
			return nil
		},
	}
}

// runCalculation loads the stored collections and runs a full calculation
// pass. Shared by calc and export.
func runCalculation(opts *rootOptions) (engine.Output, error) {
	repo := store.NewJSONStore(opts.resolveStorePath(), opts.logger)
	collections, err := repo.Load()
	if err != nil {
		return engine.Output{}, err
	}

	eng := engine.New(opts.logger)
	return eng.Calculate(collections), nil
}

func printSummary(cmd *cobra.Command, s engine.Summary) {
	w := cmd.OutOrStdout()

	lines := []struct {
		label string
		value float64
	}{
		{"Utilities", s.UtilitiesCO2eKg},
		{"Fuel", s.FuelCO2eKg},
		{"EV charging", s.EVChargingCO2eKg},
		{"Hotels", s.HotelsCO2eKg},
		{"Commercial travel", s.CommercialTravelCO2eKg},
		{"Charter flights", s.CharterFlightsCO2eKg},
	}
	for _, line := range lines {
		fmt.Fprintf(w, "%-18s %12.2f kg CO2e\n", line.label, line.value)
	}
	fmt.Fprintf(w, "%-18s %12.2f kg CO2e\n", "Total", s.GrandTotalCO2eKg)
	fmt.Fprintf(w, "\nScope 1: %.2f  Scope 2: %.2f  Scope 3: %.2f\n",
		s.Scopes.Scope1CO2eKg, s.Scopes.Scope2CO2eKg, s.Scopes.Scope3CO2eKg)
}
