// Package main provides a tool to regenerate the US state grid emission
// factor table from an EPA eGRID export.
//
// The tool reads a two-column CSV (state name, kg CO2e per kWh) and emits the
// usStateElectricityFactors map source for internal/factors/electricity.go.
//
// Usage:
//
//	go run ./tools/update-grid-factors --input egrid.csv [--dry-run] [--validate]
//
// Flags:
//
//	--input     Path to the eGRID CSV export
//	--dry-run   Print the generated map without writing to file
//	--validate  Check the parsed values are within expected range
//	--output    Output file (default: stdout)
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"
)

const (
	// Valid range for grid factors in kg CO2e per kWh. Hydro-heavy grids sit
	// near zero; no grid should exceed 1.5.
	minValidFactor = 0.0
	maxValidFactor = 1.5

	mapTemplate = `// usStateElectricityFactors maps US state names to grid carbon intensity in
// kg CO2e per kWh.
//
// Source: EPA eGRID subregion output emission rates, mapped to states.
// Data vintage: %s (update annually from the eGRID release).
//
// To update these values, run:
//   go run ./tools/update-grid-factors --input egrid.csv
var usStateElectricityFactors = map[string]float64{
%s}
`
)

func main() {
	input := flag.String("input", "", "path to the eGRID CSV export")
	output := flag.String("output", "", "output file (default stdout)")
	dryRun := flag.Bool("dry-run", false, "print the generated map without writing")
	validate := flag.Bool("validate", true, "check parsed values are within expected range")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "missing required --input flag")
		os.Exit(2)
	}

	factorsByState, err := readFactors(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", *input, err)
		os.Exit(1)
	}

	if *validate {
		if err := validateFactors(factorsByState); err != nil {
			fmt.Fprintf(os.Stderr, "validation failed: %v\n", err)
			os.Exit(1)
		}
	}

	source := renderMap(factorsByState)

	if *dryRun || *output == "" {
		fmt.Print(source)
		return
	}
	if err := os.WriteFile(*output, []byte(source), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", *output, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d state factors to %s\n", len(factorsByState), *output)
}

func readFactors(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	factors := make(map[string]float64, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("row %d: want state,factor", i+1)
		}
		value, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			// Skip a header row.
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("row %d: parsing factor %q: %w", i+1, row[1], err)
		}
		factors[row[0]] = value
	}
	if len(factors) == 0 {
		return nil, fmt.Errorf("no factors parsed")
	}
	return factors, nil
}

func validateFactors(factors map[string]float64) error {
	for state, value := range factors {
		if value < minValidFactor || value > maxValidFactor {
			return fmt.Errorf("%s: factor %.4f outside [%.1f, %.1f]", state, value, minValidFactor, maxValidFactor)
		}
	}
	return nil
}

func renderMap(factors map[string]float64) string {
	states := make([]string, 0, len(factors))
	for state := range factors {
		states = append(states, state)
	}
	sort.Strings(states)

	var body string
	for _, state := range states {
		body += fmt.Sprintf("\t%q: %.4f,\n", state, factors[state])
	}
	return fmt.Sprintf(mapTemplate, time.Now().Format("2006"), body)
}
