package factors

// fuelFactors maps fuel types to combustion emission factors in kg CO2e per
// US gallon. Keys are exact, case-sensitive fuel type names; there is no
// fallback for an unmatched fuel type.
//
// Source: EPA Emission Factors for Greenhouse Gas Inventories, mobile and
// stationary combustion tables. Data vintage: 2024.
var fuelFactors = map[string]float64{
	"Diesel Fuel":       10.21,
	"Gasoline":          8.78,
	"Propane":           5.72,
	"Kerosene":          10.15,
	"Jet Fuel":          9.75,
	"Aviation Gasoline": 8.31,
	"E85 Ethanol":       6.19,
	"Biodiesel (B100)":  9.45,
}

// FuelFactor returns the emission factor for a fuel type in kg CO2e per
// gallon. Returns (0, false) when the fuel type is unknown; callers must
// treat that as a hard calculation error, not as zero emissions.
func FuelFactor(fuelType string) (float64, bool) {
	factor, ok := fuelFactors[fuelType]
	return factor, ok
}

// heatFactors maps utility heat sources to emission factors in kg CO2e per
// canonical unit of that source: therms for natural gas, gallons for liquid
// fuels. Exact match, no fallback.
//
// Source: EPA stationary combustion emission factors. Data vintage: 2024.
var heatFactors = map[string]float64{
	"Natural Gas": 5.30,  // per therm
	"Heating Oil": 10.21, // per gallon
	"Propane":     5.72,  // per gallon
}

// HeatFactor returns the emission factor for a utility heat source.
// Returns (0, false) when the heat source is unknown.
func HeatFactor(heatSource string) (float64, bool) {
	factor, ok := heatFactors[heatSource]
	return factor, ok
}

// HeatSourceUnit reports the canonical unit name a heat source factor is
// keyed against, for display alongside lookup results.
func HeatSourceUnit(heatSource string) string {
	if heatSource == "Natural Gas" {
		return "therm"
	}
	return "gallon"
}

// vehicleFuelEconomyMPG maps vehicle types to the assumed fuel economy in
// miles per gallon, used when a fuel entry derives its volume from mileage.
//
// Source: US DOT average in-use fuel economy by vehicle class.
var vehicleFuelEconomyMPG = map[string]float64{
	"Car":              24.0,
	"SUV":              20.0,
	"Pickup Truck":     17.0,
	"Cargo Van":        14.0,
	"Passenger Van":    13.0,
	"Box Truck":        10.0,
	"Semi Truck":       6.5,
	"Motorcycle":       44.0,
	"Generator Truck":  8.0,
}

// VehicleFuelEconomyMPG returns the assumed fuel economy for a vehicle type.
// Returns (0, false) when the vehicle type is unknown.
func VehicleFuelEconomyMPG(vehicleType string) (float64, bool) {
	mpg, ok := vehicleFuelEconomyMPG[vehicleType]
	return mpg, ok
}
