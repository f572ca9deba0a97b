// Package export renders calculation output as CSV and JSON for downstream
// reporting tools.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/reellab/setcarbon/internal/engine"
)

// resultsHeader is the column layout for per-entry result exports.
var resultsHeader = []string{
	"entry_id", "category", "co2e_kg", "quantity", "quantity_unit",
	"factor", "factor_path", "classification",
}

// WriteResultsCSV writes one row per entry result, in the order the results
// were computed.
func WriteResultsCSV(w io.Writer, results []engine.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(resultsHeader); err != nil {
		return fmt.Errorf("writing results header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.EntryID,
			string(r.Category),
			formatFloat(r.CO2eKg),
			formatFloat(r.Quantity),
			r.QuantityUnit,
			formatFloat(r.Factor),
			r.FactorPath,
			r.Classification,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing result row for entry %s: %w", r.EntryID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummaryCSV writes the per-category totals and the scope breakdown as
// label/value rows.
func WriteSummaryCSV(w io.Writer, s engine.Summary) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"line", "co2e_kg"},
		{"utilities", formatFloat(s.UtilitiesCO2eKg)},
		{"fuel", formatFloat(s.FuelCO2eKg)},
		{"ev_charging", formatFloat(s.EVChargingCO2eKg)},
		{"hotels", formatFloat(s.HotelsCO2eKg)},
		{"commercial_travel", formatFloat(s.CommercialTravelCO2eKg)},
		{"charter_flights", formatFloat(s.CharterFlightsCO2eKg)},
		{"grand_total", formatFloat(s.GrandTotalCO2eKg)},
		{"scope1", formatFloat(s.Scopes.Scope1CO2eKg)},
		{"scope2", formatFloat(s.Scopes.Scope2CO2eKg)},
		{"scope3", formatFloat(s.Scopes.Scope3CO2eKg)},
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummaryJSON writes the summary as an indented JSON document.
func WriteSummaryJSON(w io.Writer, s engine.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return nil
}

// WriteOutputJSON writes the full calculation output, including per-entry
// results and errors, as an indented JSON document.
func WriteOutputJSON(w io.Writer, out engine.Output) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
