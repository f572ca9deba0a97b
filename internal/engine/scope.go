package engine

// Scope is a GHG Protocol emission scope.
type Scope int

const (
	// Scope1 covers direct combustion: all vehicle/equipment fuel plus the
	// heat portion of utilities.
	Scope1 Scope = 1

	// Scope2 covers purchased electricity: the electricity portion of
	// utilities plus EV charging.
	Scope2 Scope = 2

	// Scope3 covers value-chain activities: hotels, commercial travel, and
	// charter flights.
	Scope3 Scope = 3
)

// CategoryTotals collects the per-category totals from one calculation pass.
// A nil pointer means the category was not computed and contributes zero to
// every scope.
type CategoryTotals struct {
	Utilities        *UtilitiesTotals
	Fuel             *FuelTotals
	EVCharging       *EVChargingTotals
	Hotels           *HotelsTotals
	CommercialTravel *TravelTotals
	CharterFlights   *CharterTotals
}

// ScopeBreakdown is the cross-category emission split by GHG Protocol scope.
// Scope1 + Scope2 + Scope3 always equals Total.
type ScopeBreakdown struct {
	Scope1CO2eKg float64 `json:"scope1_co2e_kg"`
	Scope2CO2eKg float64 `json:"scope2_co2e_kg"`
	Scope3CO2eKg float64 `json:"scope3_co2e_kg"`
	TotalCO2eKg  float64 `json:"total_co2e_kg"`
}

// CategoryScope reports how one category's total splits across scopes.
// Utilities is the only category split across two scopes; every other
// category lands in exactly one.
type CategoryScope struct {
	Category     Category `json:"category"`
	Scope1CO2eKg float64  `json:"scope1_co2e_kg,omitempty"`
	Scope2CO2eKg float64  `json:"scope2_co2e_kg,omitempty"`
	Scope3CO2eKg float64  `json:"scope3_co2e_kg,omitempty"`
}

// ClassifyScopes maps category totals onto GHG Protocol scopes:
//
//	Scope 1: utilities heat, all fuel
//	Scope 2: utilities electricity, EV charging
//	Scope 3: hotels, commercial travel, charter flights
func ClassifyScopes(t CategoryTotals) (ScopeBreakdown, []CategoryScope) {
	perCategory := make([]CategoryScope, 0, len(Categories))

	var breakdown ScopeBreakdown
	add := func(cs CategoryScope) {
		breakdown.Scope1CO2eKg += cs.Scope1CO2eKg
		breakdown.Scope2CO2eKg += cs.Scope2CO2eKg
		breakdown.Scope3CO2eKg += cs.Scope3CO2eKg
		perCategory = append(perCategory, cs)
	}

	if t.Utilities != nil {
		add(CategoryScope{
			Category:     CategoryUtilities,
			Scope1CO2eKg: t.Utilities.HeatCO2eKg,
			Scope2CO2eKg: t.Utilities.ElectricityCO2eKg,
		})
	}
	if t.Fuel != nil {
		add(CategoryScope{Category: CategoryFuel, Scope1CO2eKg: t.Fuel.TotalCO2eKg})
	}
	if t.EVCharging != nil {
		add(CategoryScope{Category: CategoryEVCharging, Scope2CO2eKg: t.EVCharging.TotalCO2eKg})
	}
	if t.Hotels != nil {
		add(CategoryScope{Category: CategoryHotels, Scope3CO2eKg: t.Hotels.TotalCO2eKg})
	}
	if t.CommercialTravel != nil {
		add(CategoryScope{Category: CategoryCommercialTravel, Scope3CO2eKg: t.CommercialTravel.TotalCO2eKg})
	}
	if t.CharterFlights != nil {
		add(CategoryScope{Category: CategoryCharterFlights, Scope3CO2eKg: t.CharterFlights.TotalCO2eKg})
	}

	breakdown.TotalCO2eKg = breakdown.Scope1CO2eKg + breakdown.Scope2CO2eKg + breakdown.Scope3CO2eKg
	return breakdown, perCategory
}
