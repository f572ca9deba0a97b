package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/reellab/setcarbon/internal/factors"
)

// Engine bundles the six category calculators behind a single entry point.
// It holds no entry state: every Calculate call recomputes the full output
// from the collections it is handed.
type Engine struct {
	logger zerolog.Logger

	utilities  *UtilitiesCalculator
	fuel       *FuelCalculator
	evCharging *EVChargingCalculator
	hotels     *HotelsCalculator
	travel     *TravelCalculator
	charter    *CharterCalculator
}

// Output is the complete result of one calculation pass: per-category results
// and totals, the collected per-entry errors, and the cross-category summary.
type Output struct {
	Utilities        UtilitiesOutput  `json:"utilities"`
	Fuel             FuelOutput       `json:"fuel"`
	EVCharging       EVChargingOutput `json:"ev_charging"`
	Hotels           HotelsOutput     `json:"hotels"`
	CommercialTravel TravelOutput     `json:"commercial_travel"`
	CharterFlights   CharterOutput    `json:"charter_flights"`

	Summary Summary `json:"summary"`
}

// New creates an engine with all six category calculators. The logger is also
// installed into the factor tables so data-load failures surface through the
// same sink.
func New(logger zerolog.Logger) *Engine {
	factors.SetLogger(logger)
	return &Engine{
		logger:     logger,
		utilities:  NewUtilitiesCalculator(logger),
		fuel:       NewFuelCalculator(logger),
		evCharging: NewEVChargingCalculator(logger),
		hotels:     NewHotelsCalculator(logger),
		travel:     NewTravelCalculator(logger),
		charter:    NewCharterCalculator(logger),
	}
}

// Calculate recomputes every category from the given collections and rolls
// the totals up into a summary. Unresolvable entries are reported per
// category and excluded from all totals; they never abort the pass.
func (e *Engine) Calculate(c Collections) Output {
	out := Output{
		Utilities:        e.utilities.CalculateAll(c.Utilities),
		Fuel:             e.fuel.CalculateAll(c.Fuel),
		EVCharging:       e.evCharging.CalculateAll(c.EVCharging),
		Hotels:           e.hotels.CalculateAll(c.Hotels),
		CommercialTravel: e.travel.CalculateAll(c.CommercialTravel),
		CharterFlights:   e.charter.CalculateAll(c.CharterFlights),
	}

	out.Summary = Aggregate(CategoryTotals{
		Utilities:        &out.Utilities.Totals,
		Fuel:             &out.Fuel.Totals,
		EVCharging:       &out.EVCharging.Totals,
		Hotels:           &out.Hotels.Totals,
		CommercialTravel: &out.CommercialTravel.Totals,
		CharterFlights:   &out.CharterFlights.Totals,
	}, time.Now().UTC())

	e.logger.Info().
		Float64("grand_total_co2e_kg", out.Summary.GrandTotalCO2eKg).
		Float64("scope1_co2e_kg", out.Summary.Scopes.Scope1CO2eKg).
		Float64("scope2_co2e_kg", out.Summary.Scopes.Scope2CO2eKg).
		Float64("scope3_co2e_kg", out.Summary.Scopes.Scope3CO2eKg).
		Msg("calculation pass complete")

	return out
}

// EntryErrors flattens the per-category error lists into one slice, in
// category reporting order.
func (o *Output) EntryErrors() []*EntryError {
	var errs []*EntryError
	errs = append(errs, o.Utilities.Errors...)
	errs = append(errs, o.Fuel.Errors...)
	errs = append(errs, o.EVCharging.Errors...)
	errs = append(errs, o.Hotels.Errors...)
	errs = append(errs, o.CommercialTravel.Errors...)
	errs = append(errs, o.CharterFlights.Errors...)
	return errs
}
