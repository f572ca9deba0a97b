package factors

// Tier classifies a commercial flight by great-circle distance. Each tier
// carries its own per-passenger-mile factor because short flights spend a
// larger share of fuel on takeoff and climb.
type Tier string

const (
	TierShort   Tier = "Short"
	TierMedium  Tier = "Medium"
	TierLong    Tier = "Long"
	TierAverage Tier = "Average"
)

// Flight distance tier boundaries in statute miles. Medium is inclusive of
// both bounds: 287.9 mi is Short, 288 and 688 are Medium, 688.1 is Long.
const (
	ShortHaulMaxMiles = 288.0
	LongHaulMinMiles  = 688.0
)

// AssumedAverageFlightMiles is the per-leg distance assumed when a flight
// entry's distance cannot be determined. Paired with the Average tier factor.
//
// Source: US DOT average domestic flight stage length.
const AssumedAverageFlightMiles = 1000.0

// flightFactors maps a distance tier to kg CO2e per passenger-mile.
//
// Source: EPA business travel emission factors for air travel by haul length.
// Data vintage: 2024.
var flightFactors = map[Tier]float64{
	TierShort:   0.215,
	TierMedium:  0.133,
	TierLong:    0.165,
	TierAverage: 0.185,
}

// FlightTierFor classifies a flight distance in miles into a tier.
// A non-positive distance means the distance could not be determined and
// classifies as TierAverage.
func FlightTierFor(distanceMiles float64) Tier {
	switch {
	case distanceMiles <= 0:
		return TierAverage
	case distanceMiles < ShortHaulMaxMiles:
		return TierShort
	case distanceMiles > LongHaulMinMiles:
		return TierLong
	default:
		return TierMedium
	}
}

// FlightFactor returns the per-passenger-mile factor for a distance tier in
// kg CO2e. Unknown tiers fall back to the Average tier factor.
func FlightFactor(tier Tier) float64 {
	if factor, ok := flightFactors[tier]; ok {
		return factor
	}
	return flightFactors[TierAverage]
}

// groundTravelFactors maps non-flight commercial transport types to flat
// per-passenger-mile factors in kg CO2e. No distance tiering applies.
//
// Source: EPA business travel emission factors (intercity rail, bus, ferry).
// Data vintage: 2024.
var groundTravelFactors = map[string]float64{
	"Rail":  0.113,
	"Bus":   0.058,
	"Ferry": 0.190,
}

// GroundTravelFactor returns the flat per-passenger-mile factor for a
// non-flight transport type. Returns (0, false) when the transport type is
// unknown.
func GroundTravelFactor(transportType string) (float64, bool) {
	factor, ok := groundTravelFactors[transportType]
	return factor, ok
}
