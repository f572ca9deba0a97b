package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/reellab/setcarbon/internal/factors"
	"github.com/reellab/setcarbon/internal/units"
)

// EVChargingTotals aggregates the EV charging category.
type EVChargingTotals struct {
	TotalCO2eKg float64            `json:"total_co2e_kg"`
	TotalKWh    float64            `json:"total_kwh"`
	ByCountry   map[string]float64 `json:"by_country"`
}

// EVChargingOutput is the full recomputed state for the EV charging category.
type EVChargingOutput struct {
	Results    []Result         `json:"results"`
	Totals     EVChargingTotals `json:"totals"`
	Errors     []*EntryError    `json:"errors,omitempty"`
	ComputedAt time.Time        `json:"computed_at"`
}

// EVChargingCalculator computes emissions for electric vehicle charging. The
// canonical quantity is charging energy in kWh; the factor is the grid
// intensity where the charging happened.
type EVChargingCalculator struct {
	logger zerolog.Logger
}

// NewEVChargingCalculator creates an EV charging calculator using the given
// logger.
func NewEVChargingCalculator(logger zerolog.Logger) *EVChargingCalculator {
	return &EVChargingCalculator{logger: logger}
}

// CalculateAll recomputes results and totals for the full EV charging entry
// collection.
func (c *EVChargingCalculator) CalculateAll(entries []EVChargingEntry) EVChargingOutput {
	totals := EVChargingTotals{ByCountry: make(map[string]float64)}

	results, errs := calculateEntries(
		CategoryEVCharging,
		entries,
		func(e EVChargingEntry) string { return e.ID },
		c.resolve,
		func(e EVChargingEntry, r Result) {
			totals.TotalCO2eKg += r.CO2eKg
			totals.TotalKWh += r.Quantity
			totals.ByCountry[e.Country] += r.CO2eKg
		},
	)

	c.logger.Debug().
		Int("entries", len(entries)).
		Int("skipped", len(errs)).
		Float64("total_co2e_kg", totals.TotalCO2eKg).
		Msg("ev charging recalculated")

	return EVChargingOutput{
		Results:    results,
		Totals:     totals,
		Errors:     errs,
		ComputedAt: time.Now().UTC(),
	}
}

func (c *EVChargingCalculator) resolve(e EVChargingEntry) (Result, error) {
	kwh, err := resolveChargingKWh(e)
	if err != nil {
		return Result{}, err
	}

	factor, path := factors.ElectricityFactor(e.Country, e.State)

	return Result{
		EntryID:        e.ID,
		Category:       CategoryEVCharging,
		CO2eKg:         kwh * factor,
		Quantity:       kwh,
		QuantityUnit:   string(units.KilowattHour),
		Factor:         factor,
		FactorPath:     path,
		Classification: path,
	}, nil
}

// resolveChargingKWh computes the canonical charging energy for the entry's
// explicit calculation method.
func resolveChargingKWh(e EVChargingEntry) (float64, error) {
	switch e.Method {
	case MethodAmount:
		if e.Energy <= 0 {
			return 0, missingInput(MethodAmount, "a positive energy amount")
		}
		energyUnit := e.EnergyUnit
		if energyUnit == "" {
			energyUnit = units.KilowattHour
		}
		kwh, err := units.Convert(e.Energy, energyUnit, units.KilowattHour)
		if err != nil {
			return 0, fmt.Errorf("charging energy: %w", err)
		}
		return kwh, nil

	case MethodMileage:
		if e.Distance <= 0 {
			return 0, missingInput(MethodMileage, "a positive distance")
		}
		distanceUnit := e.DistanceUnit
		if distanceUnit == "" {
			distanceUnit = units.Mile
		}
		miles, err := units.Convert(e.Distance, distanceUnit, units.Mile)
		if err != nil {
			return 0, fmt.Errorf("distance: %w", err)
		}
		return miles * factors.VehicleEfficiencyKWhPerMile(e.VehicleType), nil

	case MethodCost:
		if e.Cost <= 0 {
			return 0, missingInput(MethodCost, "a positive cost")
		}
		if e.PricePerKWh <= 0 {
			return 0, missingInput(MethodCost, "a positive price per kWh")
		}
		return e.Cost / e.PricePerKWh, nil

	default:
		return 0, missingInput(e.Method, "a supported calculation method (amount, mileage, cost)")
	}
}
