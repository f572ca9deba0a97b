package factors

// vehicleEfficiencyKWhPerMile maps electric vehicle types to the assumed
// charging energy per mile driven, used when an EV charging entry derives
// its energy from mileage.
//
// Source: EPA fuel economy data, combined-cycle efficiency by EV class.
var vehicleEfficiencyKWhPerMile = map[string]float64{
	"Sedan":      0.28,
	"SUV":        0.35,
	"Truck":      0.49,
	"Van":        0.38,
	"Motorcycle": 0.12,
}

// DefaultEVEfficiencyKWhPerMile is used when an EV charging entry derives its
// energy from mileage without naming a vehicle type.
const DefaultEVEfficiencyKWhPerMile = 0.30

// VehicleEfficiencyKWhPerMile returns the assumed charging energy per mile
// for an EV type, or the fleet default when the type is unknown or empty.
func VehicleEfficiencyKWhPerMile(vehicleType string) float64 {
	if eff, ok := vehicleEfficiencyKWhPerMile[vehicleType]; ok {
		return eff
	}
	return DefaultEVEfficiencyKWhPerMile
}
