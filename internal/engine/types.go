// Package engine turns raw production activity entries into per-entry
// emission results, category totals, and a cross-category scope
// classification. Every calculation is a pure function of the entries plus
// the static factor tables: callers recompute the full output after any
// entry mutation instead of patching it incrementally.
package engine

import (
	"time"

	"github.com/reellab/setcarbon/internal/units"
)

// Category identifies one activity category. An entry belongs to exactly one
// category and is only processed by that category's calculator.
type Category string

const (
	CategoryUtilities        Category = "utilities"
	CategoryFuel             Category = "fuel"
	CategoryEVCharging       Category = "ev-charging"
	CategoryHotels           Category = "hotels"
	CategoryCommercialTravel Category = "commercial-travel"
	CategoryCharterFlights   Category = "charter-flights"
)

// Categories lists all activity categories in reporting order.
var Categories = []Category{
	CategoryUtilities,
	CategoryFuel,
	CategoryEVCharging,
	CategoryHotels,
	CategoryCommercialTravel,
	CategoryCharterFlights,
}

// CalcMethod selects how an entry's canonical quantity is resolved. The
// method is an explicit per-entry flag, never inferred from which fields
// happen to be populated.
type CalcMethod string

const (
	// MethodAmount uses a directly measured usage amount (kWh, gallons,
	// flight hours).
	MethodAmount CalcMethod = "amount"

	// MethodMileage derives the quantity from distance driven times an
	// assumed consumption rate.
	MethodMileage CalcMethod = "mileage"

	// MethodCost derives the quantity from money spent divided by a
	// per-unit price.
	MethodCost CalcMethod = "cost"

	// MethodFuel derives charter flight emissions from fuel burned instead
	// of flight hours. Only charter entries use it.
	MethodFuel CalcMethod = "fuel"
)

// Result is the computed emission outcome for one entry. Results are never
// persisted independently of their source entry; they are recomputed on
// every calculation pass.
type Result struct {
	// EntryID joins the result back to its source entry.
	EntryID string `json:"entry_id"`

	// Category is the calculator that produced this result.
	Category Category `json:"category"`

	// CO2eKg is the computed emission mass in kg CO2e.
	CO2eKg float64 `json:"co2e_kg"`

	// Quantity is the canonical-unit quantity the factor was applied to.
	Quantity float64 `json:"quantity"`

	// QuantityUnit names the canonical unit of Quantity (kWh, gallon,
	// passenger-mile, night, hour).
	QuantityUnit string `json:"quantity_unit"`

	// Factor is the emission factor actually applied, in kg CO2e per
	// QuantityUnit.
	Factor float64 `json:"factor"`

	// FactorPath is the resolved lookup key path for display, e.g.
	// "United States/California" or "Flight/Long".
	FactorPath string `json:"factor_path"`

	// Classification is any categorical bucket derived during calculation
	// (flight distance tier, resolved region, aircraft class).
	Classification string `json:"classification,omitempty"`

	// ElectricityCO2eKg and HeatCO2eKg split a utilities result across its
	// two scope-relevant components. Zero for every other category.
	ElectricityCO2eKg float64 `json:"electricity_co2e_kg,omitempty"`
	HeatCO2eKg        float64 `json:"heat_co2e_kg,omitempty"`
}

// UtilitiesEntry records grid electricity and utility heat consumed at a
// production site.
type UtilitiesEntry struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Location string    `json:"location,omitempty"`
	Country  string    `json:"country"`
	State    string    `json:"state,omitempty"`

	// ElectricityUsage is grid electricity consumed, in ElectricityUnit
	// (defaults to kWh).
	ElectricityUsage float64    `json:"electricity_usage"`
	ElectricityUnit  units.Unit `json:"electricity_unit,omitempty"`

	// HeatSource and HeatUsage describe utility heating. HeatUnit defaults
	// to the source's canonical unit (therms for natural gas, gallons for
	// liquid fuels). Empty HeatSource means no heating on this entry.
	HeatSource string     `json:"heat_source,omitempty"`
	HeatUsage  float64    `json:"heat_usage,omitempty"`
	HeatUnit   units.Unit `json:"heat_unit,omitempty"`
}

// FuelEntry records fuel combusted by vehicles or equipment.
type FuelEntry struct {
	ID            string     `json:"id"`
	Date          time.Time  `json:"date"`
	EquipmentType string     `json:"equipment_type"`
	FuelType      string     `json:"fuel_type"`
	Method        CalcMethod `json:"method"`

	// MethodAmount: fuel volume in FuelUnit (defaults to gallons).
	FuelAmount float64    `json:"fuel_amount,omitempty"`
	FuelUnit   units.Unit `json:"fuel_unit,omitempty"`

	// MethodCost: money spent and the per-gallon price paid.
	Cost           float64 `json:"cost,omitempty"`
	PricePerGallon float64 `json:"price_per_gallon,omitempty"`

	// MethodMileage: distance driven and the vehicle type whose assumed
	// fuel economy converts it to gallons.
	Distance     float64    `json:"distance,omitempty"`
	DistanceUnit units.Unit `json:"distance_unit,omitempty"`
	VehicleType  string     `json:"vehicle_type,omitempty"`
}

// EVChargingEntry records electric vehicle charging energy.
type EVChargingEntry struct {
	ID      string     `json:"id"`
	Date    time.Time  `json:"date"`
	Country string     `json:"country"`
	State   string     `json:"state,omitempty"`
	Method  CalcMethod `json:"method"`

	// MethodAmount: charging energy in EnergyUnit (defaults to kWh).
	Energy     float64    `json:"energy,omitempty"`
	EnergyUnit units.Unit `json:"energy_unit,omitempty"`

	// MethodMileage: distance driven and the EV type whose assumed
	// efficiency converts it to kWh.
	Distance     float64    `json:"distance,omitempty"`
	DistanceUnit units.Unit `json:"distance_unit,omitempty"`
	VehicleType  string     `json:"vehicle_type,omitempty"`

	// MethodCost: money spent and the per-kWh price paid.
	Cost        float64 `json:"cost,omitempty"`
	PricePerKWh float64 `json:"price_per_kwh,omitempty"`
}

// HotelEntry records hotel or housing stays.
type HotelEntry struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Country  string    `json:"country"`
	State    string    `json:"state,omitempty"`
	RoomType string    `json:"room_type"`

	// Nights is the length of the stay; Rooms the number of rooms held
	// (0 is treated as 1).
	Nights int `json:"nights"`
	Rooms  int `json:"rooms,omitempty"`
}

// TravelEntry records commercial travel (scheduled flights, rail, bus,
// ferry).
type TravelEntry struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	TransportType string    `json:"transport_type"`

	// Travelers is the number of passengers covered by this entry
	// (0 is treated as 1).
	Travelers int `json:"travelers,omitempty"`

	// Distance is the one-way trip distance per traveler, in DistanceUnit
	// (defaults to miles). Zero means the distance could not be determined;
	// flights then classify into the Average tier.
	Distance     float64    `json:"distance"`
	DistanceUnit units.Unit `json:"distance_unit,omitempty"`
}

// CharterEntry records chartered (non-scheduled) flights.
type CharterEntry struct {
	ID            string     `json:"id"`
	Date          time.Time  `json:"date"`
	AircraftClass string     `json:"aircraft_class"`
	Method        CalcMethod `json:"method"`

	// MethodAmount: flight hours, multiplied by the aircraft class's hourly
	// factor.
	FlightHours float64 `json:"flight_hours,omitempty"`

	// MethodFuel: jet fuel burned, in FuelUnit (defaults to gallons).
	FuelAmount float64    `json:"fuel_amount,omitempty"`
	FuelUnit   units.Unit `json:"fuel_unit,omitempty"`
}

// Collections holds the full entry set for one production, one slice per
// category. The engine never stores entries; the caller supplies the current
// collections on every calculation.
type Collections struct {
	Utilities        []UtilitiesEntry  `json:"utilities,omitempty"`
	Fuel             []FuelEntry       `json:"fuel,omitempty"`
	EVCharging       []EVChargingEntry `json:"ev_charging,omitempty"`
	Hotels           []HotelEntry      `json:"hotels,omitempty"`
	CommercialTravel []TravelEntry     `json:"commercial_travel,omitempty"`
	CharterFlights   []CharterEntry    `json:"charter_flights,omitempty"`
}

// Deduplicate drops entries with a duplicate ID within each category,
// keeping the last occurrence. Entries without an ID are kept as-is.
func (c *Collections) Deduplicate() {
	c.Utilities = dedupeByID(c.Utilities, func(e UtilitiesEntry) string { return e.ID })
	c.Fuel = dedupeByID(c.Fuel, func(e FuelEntry) string { return e.ID })
	c.EVCharging = dedupeByID(c.EVCharging, func(e EVChargingEntry) string { return e.ID })
	c.Hotels = dedupeByID(c.Hotels, func(e HotelEntry) string { return e.ID })
	c.CommercialTravel = dedupeByID(c.CommercialTravel, func(e TravelEntry) string { return e.ID })
	c.CharterFlights = dedupeByID(c.CharterFlights, func(e CharterEntry) string { return e.ID })
}

func dedupeByID[E any](entries []E, id func(E) string) []E {
	lastIndex := make(map[string]int, len(entries))
	for i, e := range entries {
		if key := id(e); key != "" {
			lastIndex[key] = i
		}
	}
	out := make([]E, 0, len(entries))
	for i, e := range entries {
		key := id(e)
		if key != "" && lastIndex[key] != i {
			continue
		}
		out = append(out, e)
	}
	return out
}
