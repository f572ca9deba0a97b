package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/reellab/setcarbon/internal/factors"
	"github.com/reellab/setcarbon/internal/units"
)

// FuelTotals aggregates the vehicle/equipment fuel category.
type FuelTotals struct {
	TotalCO2eKg     float64            `json:"total_co2e_kg"`
	TotalGallons    float64            `json:"total_gallons"`
	ByFuelType      map[string]float64 `json:"by_fuel_type"`
	ByEquipmentType map[string]float64 `json:"by_equipment_type"`
}

// FuelOutput is the full recomputed state for the fuel category.
type FuelOutput struct {
	Results    []Result      `json:"results"`
	Totals     FuelTotals    `json:"totals"`
	Errors     []*EntryError `json:"errors,omitempty"`
	ComputedAt time.Time     `json:"computed_at"`
}

// FuelCalculator computes combustion emissions for vehicle and equipment
// fuel. The canonical quantity is fuel volume in gallons, resolved directly
// or derived from cost or mileage per the entry's calculation method.
type FuelCalculator struct {
	logger zerolog.Logger
}

// NewFuelCalculator creates a fuel calculator using the given logger.
func NewFuelCalculator(logger zerolog.Logger) *FuelCalculator {
	return &FuelCalculator{logger: logger}
}

// CalculateAll recomputes results and totals for the full fuel entry
// collection.
func (c *FuelCalculator) CalculateAll(entries []FuelEntry) FuelOutput {
	totals := FuelTotals{
		ByFuelType:      make(map[string]float64),
		ByEquipmentType: make(map[string]float64),
	}

	results, errs := calculateEntries(
		CategoryFuel,
		entries,
		func(e FuelEntry) string { return e.ID },
		c.resolve,
		func(e FuelEntry, r Result) {
			totals.TotalCO2eKg += r.CO2eKg
			totals.TotalGallons += r.Quantity
			totals.ByFuelType[e.FuelType] += r.CO2eKg
			totals.ByEquipmentType[e.EquipmentType] += r.CO2eKg
		},
	)

	c.logger.Debug().
		Int("entries", len(entries)).
		Int("skipped", len(errs)).
		Float64("total_co2e_kg", totals.TotalCO2eKg).
		Msg("fuel recalculated")

	return FuelOutput{
		Results:    results,
		Totals:     totals,
		Errors:     errs,
		ComputedAt: time.Now().UTC(),
	}
}

func (c *FuelCalculator) resolve(e FuelEntry) (Result, error) {
	factor, ok := factors.FuelFactor(e.FuelType)
	if !ok {
		// No fallback for fuel: an unmatched type is a hard error.
		return Result{}, factorNotFound("fuel type", e.FuelType)
	}

	gallons, err := resolveFuelGallons(e)
	if err != nil {
		return Result{}, err
	}

	return Result{
		EntryID:        e.ID,
		Category:       CategoryFuel,
		CO2eKg:         gallons * factor,
		Quantity:       gallons,
		QuantityUnit:   string(units.Gallon),
		Factor:         factor,
		FactorPath:     e.FuelType,
		Classification: e.EquipmentType,
	}, nil
}

// resolveFuelGallons computes the canonical fuel volume for the entry's
// explicit calculation method.
func resolveFuelGallons(e FuelEntry) (float64, error) {
	switch e.Method {
	case MethodAmount:
		if e.FuelAmount <= 0 {
			return 0, missingInput(MethodAmount, "a positive fuel amount")
		}
		fuelUnit := e.FuelUnit
		if fuelUnit == "" {
			fuelUnit = units.Gallon
		}
		gallons, err := units.Convert(e.FuelAmount, fuelUnit, units.Gallon)
		if err != nil {
			return 0, fmt.Errorf("fuel amount: %w", err)
		}
		return gallons, nil

	case MethodCost:
		if e.Cost <= 0 {
			return 0, missingInput(MethodCost, "a positive cost")
		}
		if e.PricePerGallon <= 0 {
			return 0, missingInput(MethodCost, "a positive price per gallon")
		}
		return e.Cost / e.PricePerGallon, nil

	case MethodMileage:
		if e.Distance <= 0 {
			return 0, missingInput(MethodMileage, "a positive distance")
		}
		mpg, ok := factors.VehicleFuelEconomyMPG(e.VehicleType)
		if !ok {
			return 0, missingInput(MethodMileage, fmt.Sprintf("a known vehicle type (got %q)", e.VehicleType))
		}
		distanceUnit := e.DistanceUnit
		if distanceUnit == "" {
			distanceUnit = units.Mile
		}
		miles, err := units.Convert(e.Distance, distanceUnit, units.Mile)
		if err != nil {
			return 0, fmt.Errorf("distance: %w", err)
		}
		return miles / mpg, nil

	default:
		return 0, missingInput(e.Method, "a supported calculation method (amount, cost, mileage)")
	}
}
