package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/reellab/setcarbon/internal/factors"
	"github.com/reellab/setcarbon/internal/units"
)

// TransportFlight is the only transport type with distance tiering; every
// other transport type uses a flat per-passenger-mile factor.
const TransportFlight = "Flight"

// TravelTotals aggregates the commercial travel category.
type TravelTotals struct {
	TotalCO2eKg         float64            `json:"total_co2e_kg"`
	TotalPassengerMiles float64            `json:"total_passenger_miles"`
	ByTransportType     map[string]float64 `json:"by_transport_type"`
	ByTier              map[string]float64 `json:"by_tier"`
}

// TravelOutput is the full recomputed state for the commercial travel
// category.
type TravelOutput struct {
	Results    []Result      `json:"results"`
	Totals     TravelTotals  `json:"totals"`
	Errors     []*EntryError `json:"errors,omitempty"`
	ComputedAt time.Time     `json:"computed_at"`
}

// TravelCalculator computes emissions for commercial travel. Flights are
// classified into a distance tier carrying its own per-passenger-mile factor;
// rail, bus, and ferry use flat factors with no tiering.
type TravelCalculator struct {
	logger zerolog.Logger
}

// NewTravelCalculator creates a commercial travel calculator using the given
// logger.
func NewTravelCalculator(logger zerolog.Logger) *TravelCalculator {
	return &TravelCalculator{logger: logger}
}

// CalculateAll recomputes results and totals for the full commercial travel
// entry collection.
func (c *TravelCalculator) CalculateAll(entries []TravelEntry) TravelOutput {
	totals := TravelTotals{
		ByTransportType: make(map[string]float64),
		ByTier:          make(map[string]float64),
	}

	results, errs := calculateEntries(
		CategoryCommercialTravel,
		entries,
		func(e TravelEntry) string { return e.ID },
		c.resolve,
		func(e TravelEntry, r Result) {
			totals.TotalCO2eKg += r.CO2eKg
			totals.TotalPassengerMiles += r.Quantity
			totals.ByTransportType[e.TransportType] += r.CO2eKg
			if r.Classification != "" {
				totals.ByTier[r.Classification] += r.CO2eKg
			}
		},
	)

	c.logger.Debug().
		Int("entries", len(entries)).
		Int("skipped", len(errs)).
		Float64("total_co2e_kg", totals.TotalCO2eKg).
		Msg("commercial travel recalculated")

	return TravelOutput{
		Results:    results,
		Totals:     totals,
		Errors:     errs,
		ComputedAt: time.Now().UTC(),
	}
}

func (c *TravelCalculator) resolve(e TravelEntry) (Result, error) {
	miles, err := travelMiles(e)
	if err != nil {
		return Result{}, err
	}
	if e.TransportType == TransportFlight {
		tier := factors.FlightTierFor(miles)
		if tier == factors.TierAverage {
			// Distance could not be determined: assume an average leg so the
			// Average tier factor has a quantity to apply to.
			miles = factors.AssumedAverageFlightMiles
		}
		factor := factors.FlightFactor(tier)
		passengerMiles := miles * float64(travelerCount(e))
		return Result{
			EntryID:        e.ID,
			Category:       CategoryCommercialTravel,
			CO2eKg:         passengerMiles * factor,
			Quantity:       passengerMiles,
			QuantityUnit:   "passenger-mile",
			Factor:         factor,
			FactorPath:     TransportFlight + "/" + string(tier),
			Classification: string(tier),
		}, nil
	}

	factor, ok := factors.GroundTravelFactor(e.TransportType)
	if !ok {
		return Result{}, factorNotFound("transport type", e.TransportType)
	}
	if miles <= 0 {
		// Only flights may leave the distance unresolved.
		return Result{}, missingInput(MethodMileage, "a positive distance")
	}
	passengerMiles := miles * float64(travelerCount(e))
	return Result{
		EntryID:      e.ID,
		Category:     CategoryCommercialTravel,
		CO2eKg:       passengerMiles * factor,
		Quantity:     passengerMiles,
		QuantityUnit: "passenger-mile",
		Factor:       factor,
		FactorPath:   e.TransportType,
	}, nil
}

// travelMiles converts the entry distance to statute miles. Zero distance is
// allowed (flights classify as Average); a unit error is not.
func travelMiles(e TravelEntry) (float64, error) {
	if e.Distance == 0 {
		return 0, nil
	}
	distanceUnit := e.DistanceUnit
	if distanceUnit == "" {
		distanceUnit = units.Mile
	}
	miles, err := units.Convert(e.Distance, distanceUnit, units.Mile)
	if err != nil {
		return 0, fmt.Errorf("distance: %w", err)
	}
	return miles, nil
}

func travelerCount(e TravelEntry) int {
	if e.Travelers <= 0 {
		return 1
	}
	return e.Travelers
}
