package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/reellab/setcarbon/internal/factors"
)

// newFactorsCmd creates the factors command group for inspecting the built-in
// emission factor tables.
func newFactorsCmd(_ *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Inspect the built-in emission factor tables",
	}
	cmd.AddCommand(newFactorsVersionCmd(), newFactorsCountriesCmd())
	return cmd
}

func newFactorsVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the factor table version and data vintage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			meta := factors.TableVersion()
			fmt.Fprintf(cmd.OutOrStdout(), "version:   %s\nvintage:   %d\npublished: %s\n",
				meta.Version, meta.Vintage, meta.Published)
			for _, src := range meta.Sources {
				fmt.Fprintf(cmd.OutOrStdout(), "source:    %s\n", src)
			}
			return nil
		},
	}
}

func newFactorsCountriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List countries with a dedicated grid electricity factor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			countries := factors.ElectricityCountries()
			sort.Strings(countries)
			for _, c := range countries {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
