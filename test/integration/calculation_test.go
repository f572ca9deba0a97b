//go:build integration

// Package integration provides end-to-end tests for the full store ->
// engine -> export flow.
//
// Run with: go test -tags=integration ./test/integration/... -v
package integration

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reellab/setcarbon/internal/engine"
	"github.com/reellab/setcarbon/internal/export"
	"github.com/reellab/setcarbon/internal/store"
)

// TestFullCalculationFlow persists a realistic production's entries, reloads
// them, runs a calculation pass, and exports the results.
func TestFullCalculationFlow(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "entries.json")
	repo := store.NewJSONStore(storePath, zerolog.Nop())

	collections := engine.Collections{
		Utilities: []engine.UtilitiesEntry{
			{ID: store.NewEntryID(), Country: "United States", State: "California", ElectricityUsage: 12000},
			{ID: store.NewEntryID(), Country: "United States", State: "Georgia", ElectricityUsage: 8000, HeatSource: "Natural Gas", HeatUsage: 150},
		},
		Fuel: []engine.FuelEntry{
			{ID: store.NewEntryID(), EquipmentType: "Generator", FuelType: "Diesel Fuel", Method: engine.MethodAmount, FuelAmount: 400},
			{ID: store.NewEntryID(), EquipmentType: "Truck", FuelType: "Gasoline", Method: engine.MethodCost, Cost: 800, PricePerGallon: 4},
		},
		EVCharging: []engine.EVChargingEntry{
			{ID: store.NewEntryID(), Country: "United States", State: "California", Method: engine.MethodMileage, Distance: 500, VehicleType: "Sedan"},
		},
		Hotels: []engine.HotelEntry{
			{ID: store.NewEntryID(), Country: "United States", State: "Georgia", RoomType: "Midscale", Nights: 30, Rooms: 12},
		},
		CommercialTravel: []engine.TravelEntry{
			{ID: store.NewEntryID(), TransportType: "Flight", Distance: 2100, Travelers: 8},
			{ID: store.NewEntryID(), TransportType: "Rail", Distance: 220, Travelers: 3},
		},
		CharterFlights: []engine.CharterEntry{
			{ID: store.NewEntryID(), AircraftClass: "Midsize Jet", Method: engine.MethodAmount, FlightHours: 4},
		},
	}

	require.NoError(t, repo.Save(collections))

	loaded, err := repo.Load()
	require.NoError(t, err)

	eng := engine.New(zerolog.Nop())
	out := eng.Calculate(loaded)

	require.Empty(t, out.EntryErrors())

	// Every category contributed.
	assert.Positive(t, out.Summary.UtilitiesCO2eKg)
	assert.Positive(t, out.Summary.FuelCO2eKg)
	assert.Positive(t, out.Summary.EVChargingCO2eKg)
	assert.Positive(t, out.Summary.HotelsCO2eKg)
	assert.Positive(t, out.Summary.CommercialTravelCO2eKg)
	assert.Positive(t, out.Summary.CharterFlightsCO2eKg)

	// Scope total and grand total agree.
	assert.InDelta(t, out.Summary.GrandTotalCO2eKg, out.Summary.Scopes.TotalCO2eKg, 1e-9)

	var buf bytes.Buffer
	require.NoError(t, export.WriteResultsCSV(&buf, out.Utilities.Results))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 3) // header + two utilities entries
}

// TestCalculationSurvivesBadEntries verifies that malformed persisted entries
// are reported but never abort the pass.
func TestCalculationSurvivesBadEntries(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "entries.json")
	repo := store.NewJSONStore(storePath, zerolog.Nop())

	require.NoError(t, repo.Save(engine.Collections{
		Fuel: []engine.FuelEntry{
			{ID: "good", FuelType: "Diesel Fuel", Method: engine.MethodAmount, FuelAmount: 10},
			{ID: "bad", FuelType: "Antimatter", Method: engine.MethodAmount, FuelAmount: 10},
		},
	}))

	loaded, err := repo.Load()
	require.NoError(t, err)

	out := engine.New(zerolog.Nop()).Calculate(loaded)

	require.Len(t, out.EntryErrors(), 1)
	assert.Equal(t, "bad", out.EntryErrors()[0].EntryID)
	assert.InDelta(t, 10*10.21, out.Summary.FuelCO2eKg, 1e-9)
}
