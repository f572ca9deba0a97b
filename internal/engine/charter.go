package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/reellab/setcarbon/internal/factors"
	"github.com/reellab/setcarbon/internal/units"
)

// CharterTotals aggregates the charter flights category.
type CharterTotals struct {
	TotalCO2eKg      float64            `json:"total_co2e_kg"`
	TotalFlightHours float64            `json:"total_flight_hours"`
	ByAircraftClass  map[string]float64 `json:"by_aircraft_class"`
}

// CharterOutput is the full recomputed state for the charter flights
// category.
type CharterOutput struct {
	Results    []Result      `json:"results"`
	Totals     CharterTotals `json:"totals"`
	Errors     []*EntryError `json:"errors,omitempty"`
	ComputedAt time.Time     `json:"computed_at"`
}

// CharterCalculator computes emissions for chartered flights, either from
// flight hours times the aircraft class's hourly factor or from jet fuel
// burned.
type CharterCalculator struct {
	logger zerolog.Logger
}

// NewCharterCalculator creates a charter flights calculator using the given
// logger.
func NewCharterCalculator(logger zerolog.Logger) *CharterCalculator {
	return &CharterCalculator{logger: logger}
}

// CalculateAll recomputes results and totals for the full charter entry
// collection.
func (c *CharterCalculator) CalculateAll(entries []CharterEntry) CharterOutput {
	totals := CharterTotals{ByAircraftClass: make(map[string]float64)}

	results, errs := calculateEntries(
		CategoryCharterFlights,
		entries,
		func(e CharterEntry) string { return e.ID },
		c.resolve,
		func(e CharterEntry, r Result) {
			totals.TotalCO2eKg += r.CO2eKg
			if r.QuantityUnit == "hour" {
				totals.TotalFlightHours += r.Quantity
			}
			totals.ByAircraftClass[e.AircraftClass] += r.CO2eKg
		},
	)

	c.logger.Debug().
		Int("entries", len(entries)).
		Int("skipped", len(errs)).
		Float64("total_co2e_kg", totals.TotalCO2eKg).
		Msg("charter flights recalculated")

	return CharterOutput{
		Results:    results,
		Totals:     totals,
		Errors:     errs,
		ComputedAt: time.Now().UTC(),
	}
}

func (c *CharterCalculator) resolve(e CharterEntry) (Result, error) {
	switch e.Method {
	case MethodAmount:
		factor, ok := factors.CharterHourlyFactor(e.AircraftClass)
		if !ok {
			return Result{}, factorNotFound("aircraft class", e.AircraftClass)
		}
		if e.FlightHours <= 0 {
			return Result{}, missingInput(MethodAmount, "positive flight hours")
		}
		return Result{
			EntryID:        e.ID,
			Category:       CategoryCharterFlights,
			CO2eKg:         e.FlightHours * factor,
			Quantity:       e.FlightHours,
			QuantityUnit:   "hour",
			Factor:         factor,
			FactorPath:     e.AircraftClass,
			Classification: e.AircraftClass,
		}, nil

	case MethodFuel:
		// Fuel burn bypasses the aircraft class table entirely.
		factor, ok := factors.FuelFactor("Jet Fuel")
		if !ok {
			return Result{}, factorNotFound("fuel type", "Jet Fuel")
		}
		if e.FuelAmount <= 0 {
			return Result{}, missingInput(MethodFuel, "a positive fuel amount")
		}
		fuelUnit := e.FuelUnit
		if fuelUnit == "" {
			fuelUnit = units.Gallon
		}
		gallons, err := units.Convert(e.FuelAmount, fuelUnit, units.Gallon)
		if err != nil {
			return Result{}, fmt.Errorf("fuel amount: %w", err)
		}
		return Result{
			EntryID:        e.ID,
			Category:       CategoryCharterFlights,
			CO2eKg:         gallons * factor,
			Quantity:       gallons,
			QuantityUnit:   string(units.Gallon),
			Factor:         factor,
			FactorPath:     "Jet Fuel",
			Classification: e.AircraftClass,
		}, nil

	default:
		// Charter operators publish no stable cost or mileage proxy, so only
		// hours and fuel burn are supported.
		return Result{}, missingInput(e.Method, "a supported calculation method (amount, fuel)")
	}
}
