package engine

import "time"

// Summary is the cross-category rollup for one production. Categories with no
// computed totals report zero; the grand total is always the sum of the six
// category lines and equals the scope breakdown total.
type Summary struct {
	UtilitiesCO2eKg        float64 `json:"utilities_co2e_kg"`
	FuelCO2eKg             float64 `json:"fuel_co2e_kg"`
	EVChargingCO2eKg       float64 `json:"ev_charging_co2e_kg"`
	HotelsCO2eKg           float64 `json:"hotels_co2e_kg"`
	CommercialTravelCO2eKg float64 `json:"commercial_travel_co2e_kg"`
	CharterFlightsCO2eKg   float64 `json:"charter_flights_co2e_kg"`

	GrandTotalCO2eKg float64 `json:"grand_total_co2e_kg"`

	Scopes     ScopeBreakdown  `json:"scopes"`
	ByScope    []CategoryScope `json:"by_scope"`
	ComputedAt time.Time       `json:"computed_at"`
}

// Aggregate rolls per-category totals up into a production summary. Nil
// category totals contribute zero.
func Aggregate(t CategoryTotals, computedAt time.Time) Summary {
	s := Summary{ComputedAt: computedAt}

	if t.Utilities != nil {
		s.UtilitiesCO2eKg = t.Utilities.TotalCO2eKg
	}
	if t.Fuel != nil {
		s.FuelCO2eKg = t.Fuel.TotalCO2eKg
	}
	if t.EVCharging != nil {
		s.EVChargingCO2eKg = t.EVCharging.TotalCO2eKg
	}
	if t.Hotels != nil {
		s.HotelsCO2eKg = t.Hotels.TotalCO2eKg
	}
	if t.CommercialTravel != nil {
		s.CommercialTravelCO2eKg = t.CommercialTravel.TotalCO2eKg
	}
	if t.CharterFlights != nil {
		s.CharterFlightsCO2eKg = t.CharterFlights.TotalCO2eKg
	}

	s.GrandTotalCO2eKg = s.UtilitiesCO2eKg + s.FuelCO2eKg + s.EVChargingCO2eKg +
		s.HotelsCO2eKg + s.CommercialTravelCO2eKg + s.CharterFlightsCO2eKg

	s.Scopes, s.ByScope = ClassifyScopes(t)

	return s
}
