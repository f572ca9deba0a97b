package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/reellab/setcarbon/internal/factors"
)

// HotelsTotals aggregates the hotel/housing category.
type HotelsTotals struct {
	TotalCO2eKg float64            `json:"total_co2e_kg"`
	TotalNights int                `json:"total_nights"`
	ByRoomType  map[string]float64 `json:"by_room_type"`
	ByCountry   map[string]float64 `json:"by_country"`
}

// HotelsOutput is the full recomputed state for the hotels category.
type HotelsOutput struct {
	Results    []Result      `json:"results"`
	Totals     HotelsTotals  `json:"totals"`
	Errors     []*EntryError `json:"errors,omitempty"`
	ComputedAt time.Time     `json:"computed_at"`
}

// HotelsCalculator computes emissions for hotel and housing stays: nights ×
// rooms × the room type's per-night energy × the regional electricity factor.
// Region resolution follows the same country fallback rule as utilities.
type HotelsCalculator struct {
	logger zerolog.Logger
}

// NewHotelsCalculator creates a hotels calculator using the given logger.
func NewHotelsCalculator(logger zerolog.Logger) *HotelsCalculator {
	return &HotelsCalculator{logger: logger}
}

// CalculateAll recomputes results and totals for the full hotels entry
// collection.
func (c *HotelsCalculator) CalculateAll(entries []HotelEntry) HotelsOutput {
	totals := HotelsTotals{
		ByRoomType: make(map[string]float64),
		ByCountry:  make(map[string]float64),
	}

	results, errs := calculateEntries(
		CategoryHotels,
		entries,
		func(e HotelEntry) string { return e.ID },
		c.resolve,
		func(e HotelEntry, r Result) {
			totals.TotalCO2eKg += r.CO2eKg
			totals.TotalNights += e.Nights * roomCount(e)
			totals.ByRoomType[e.RoomType] += r.CO2eKg
			totals.ByCountry[e.Country] += r.CO2eKg
		},
	)

	c.logger.Debug().
		Int("entries", len(entries)).
		Int("skipped", len(errs)).
		Float64("total_co2e_kg", totals.TotalCO2eKg).
		Msg("hotels recalculated")

	return HotelsOutput{
		Results:    results,
		Totals:     totals,
		Errors:     errs,
		ComputedAt: time.Now().UTC(),
	}
}

func (c *HotelsCalculator) resolve(e HotelEntry) (Result, error) {
	annualKWh, ok := factors.RoomAnnualEnergyKWh(e.RoomType)
	if !ok {
		// The room type enum is closed; an unmatched value is corrupt input.
		return Result{}, factorNotFound("room type", e.RoomType)
	}
	if e.Nights <= 0 {
		return Result{}, missingInput(MethodAmount, "a positive number of nights")
	}

	gridFactor, path := factors.ElectricityFactor(e.Country, e.State)

	roomNights := float64(e.Nights * roomCount(e))
	perNightKWh := annualKWh / factors.DaysPerYear

	// The applied factor is kg CO2e per room-night at this location.
	factor := perNightKWh * gridFactor

	return Result{
		EntryID:        e.ID,
		Category:       CategoryHotels,
		CO2eKg:         roomNights * factor,
		Quantity:       roomNights,
		QuantityUnit:   "night",
		Factor:         factor,
		FactorPath:     e.RoomType + "/" + path,
		Classification: path,
	}, nil
}

func roomCount(e HotelEntry) int {
	if e.Rooms <= 0 {
		return 1
	}
	return e.Rooms
}
