package factors

// roomAnnualEnergyKWh maps room and housing types to the estimated annual
// energy consumption of one room in kWh. The hotel calculator divides by 365
// to obtain per-night energy, then applies the regional electricity factor.
//
// The room type enum is closed: entry forms only offer these values, so an
// unmatched room type indicates corrupted input and is a hard error.
//
// Source: Cornell Hotel Sustainability Benchmarking Index energy-per-room
// figures, bucketed by property class. Data vintage: 2024.
var roomAnnualEnergyKWh = map[string]float64{
	"Economy":         6000,
	"Midscale":        9000,
	"Upscale":         14000,
	"Luxury":          21000,
	"Apartment/Condo": 8000,
	"House":           12000,
	"Trailer/RV":      4500,
}

// RoomAnnualEnergyKWh returns the annual energy consumption for a room or
// housing type in kWh. Returns (0, false) when the room type is unknown.
func RoomAnnualEnergyKWh(roomType string) (float64, bool) {
	kwh, ok := roomAnnualEnergyKWh[roomType]
	return kwh, ok
}

// DaysPerYear converts annual room energy into a per-night figure.
const DaysPerYear = 365.0
