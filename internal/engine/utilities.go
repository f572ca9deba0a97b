package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/reellab/setcarbon/internal/factors"
	"github.com/reellab/setcarbon/internal/units"
)

// UtilitiesTotals aggregates the utilities category. Electricity and heat are
// kept separate because they land in different scopes.
type UtilitiesTotals struct {
	TotalCO2eKg       float64            `json:"total_co2e_kg"`
	ElectricityCO2eKg float64            `json:"electricity_co2e_kg"`
	HeatCO2eKg        float64            `json:"heat_co2e_kg"`
	TotalKWh          float64            `json:"total_kwh"`
	ByCountry         map[string]float64 `json:"by_country"`
}

// UtilitiesOutput is the full recomputed state for the utilities category.
type UtilitiesOutput struct {
	Results    []Result        `json:"results"`
	Totals     UtilitiesTotals `json:"totals"`
	Errors     []*EntryError   `json:"errors,omitempty"`
	ComputedAt time.Time       `json:"computed_at"`
}

// UtilitiesCalculator computes emissions for grid electricity and utility
// heat consumed at production sites.
type UtilitiesCalculator struct {
	logger zerolog.Logger
}

// NewUtilitiesCalculator creates a utilities calculator using the given
// logger.
func NewUtilitiesCalculator(logger zerolog.Logger) *UtilitiesCalculator {
	return &UtilitiesCalculator{logger: logger}
}

// CalculateAll recomputes results and totals for the full utilities entry
// collection. Entries that cannot be resolved are reported in the error list
// and contribute nothing to the totals.
func (c *UtilitiesCalculator) CalculateAll(entries []UtilitiesEntry) UtilitiesOutput {
	totals := UtilitiesTotals{ByCountry: make(map[string]float64)}

	results, errs := calculateEntries(
		CategoryUtilities,
		entries,
		func(e UtilitiesEntry) string { return e.ID },
		c.resolve,
		func(e UtilitiesEntry, r Result) {
			totals.TotalCO2eKg += r.CO2eKg
			totals.ElectricityCO2eKg += r.ElectricityCO2eKg
			totals.HeatCO2eKg += r.HeatCO2eKg
			totals.TotalKWh += r.Quantity
			totals.ByCountry[e.Country] += r.CO2eKg
		},
	)

	c.logger.Debug().
		Int("entries", len(entries)).
		Int("skipped", len(errs)).
		Float64("total_co2e_kg", totals.TotalCO2eKg).
		Msg("utilities recalculated")

	return UtilitiesOutput{
		Results:    results,
		Totals:     totals,
		Errors:     errs,
		ComputedAt: time.Now().UTC(),
	}
}

func (c *UtilitiesCalculator) resolve(e UtilitiesEntry) (Result, error) {
	electricityUnit := e.ElectricityUnit
	if electricityUnit == "" {
		electricityUnit = units.KilowattHour
	}
	kwh, err := units.Convert(e.ElectricityUsage, electricityUnit, units.KilowattHour)
	if err != nil {
		return Result{}, fmt.Errorf("electricity usage: %w", err)
	}

	factor, path := factors.ElectricityFactor(e.Country, e.State)
	electricityCO2e := kwh * factor

	var heatCO2e float64
	if e.HeatSource != "" && e.HeatUsage > 0 {
		heatCO2e, err = resolveHeat(e)
		if err != nil {
			return Result{}, err
		}
	}

	return Result{
		EntryID:           e.ID,
		Category:          CategoryUtilities,
		CO2eKg:            electricityCO2e + heatCO2e,
		Quantity:          kwh,
		QuantityUnit:      string(units.KilowattHour),
		Factor:            factor,
		FactorPath:        path,
		Classification:    path,
		ElectricityCO2eKg: electricityCO2e,
		HeatCO2eKg:        heatCO2e,
	}, nil
}

func resolveHeat(e UtilitiesEntry) (float64, error) {
	factor, ok := factors.HeatFactor(e.HeatSource)
	if !ok {
		return 0, factorNotFound("utilities heat source", e.HeatSource)
	}

	// The heat factor is keyed per therm for natural gas and per gallon for
	// liquid fuels.
	target := units.Gallon
	if factors.HeatSourceUnit(e.HeatSource) == "therm" {
		target = units.Therm
	}

	heatUnit := e.HeatUnit
	if heatUnit == "" {
		heatUnit = target
	}
	quantity, err := units.Convert(e.HeatUsage, heatUnit, target)
	if err != nil {
		return 0, fmt.Errorf("heat usage: %w", err)
	}

	return quantity * factor, nil
}
