package factors

// charterHourlyFactors maps chartered aircraft classes to emission factors in
// kg CO2e per flight hour, derived from typical fuel burn per class times the
// Jet Fuel combustion factor.
//
// Source: aircraft manufacturer fuel burn figures × EPA jet fuel factor.
// Data vintage: 2024.
var charterHourlyFactors = map[string]float64{
	"Piston":            180,
	"Turboprop":         1050,
	"Light Jet":         1800,
	"Midsize Jet":       2600,
	"Super Midsize Jet": 3400,
	"Heavy Jet":         4900,
	"Helicopter":        950,
}

// CharterHourlyFactor returns the per-flight-hour factor for a chartered
// aircraft class in kg CO2e. Returns (0, false) when the class is unknown.
func CharterHourlyFactor(aircraftClass string) (float64, bool) {
	factor, ok := charterHourlyFactors[aircraftClass]
	return factor, ok
}
