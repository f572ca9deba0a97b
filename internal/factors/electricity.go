// Package factors provides the static emission factor tables used by the
// calculation engine. All factors are expressed in kg CO2e per canonical unit
// (kWh for energy, US gallon for fuel volume, statute mile for distance).
package factors

// GlobalAverageElectricity is the world-average grid carbon intensity in
// kg CO2e per kWh. Used when a country has no entry in the electricity table.
//
// Source: IEA global electricity generation emission intensity, 2023.
const GlobalAverageElectricity = 0.481

// GlobalAveragePath is the resolved key path reported when the global-average
// electricity factor was applied.
const GlobalAveragePath = "global-average"

// countryElectricityFactors maps country names to grid carbon intensity in
// kg CO2e per kWh.
//
// Source: IEA country emission factors and national grid operator data.
// Data vintage: 2024. Keys are exact, case-sensitive country names.
var countryElectricityFactors = map[string]float64{
	"United States":  0.3712,
	"Canada":         0.1200,
	"United Kingdom": 0.2123,
	"Ireland":        0.2958,
	"France":         0.0521,
	"Germany":        0.3660,
	"Spain":          0.1902,
	"Italy":          0.2332,
	"Netherlands":    0.3280,
	"Belgium":        0.1290,
	"Czech Republic": 0.4140,
	"Hungary":        0.2220,
	"Poland":         0.6590,
	"Sweden":         0.0088,
	"Norway":         0.0047,
	"Iceland":        0.0002,
	"Australia":      0.6600,
	"New Zealand":    0.0977,
	"Japan":          0.4658,
	"South Korea":    0.4590,
	"China":          0.5810,
	"India":          0.7080,
	"Singapore":      0.4080,
	"Mexico":         0.4230,
	"Brazil":         0.0617,
	"South Africa":   0.9500,
	"Morocco":        0.7290,
	"United Arab Emirates": 0.4900,
}

// usStateElectricityFactors maps US state names to grid carbon intensity in
// kg CO2e per kWh. Only the United States and Canada sub-divide regionally.
//
// Source: EPA eGRID state output emission rates.
// Data vintage: 2024.
var usStateElectricityFactors = map[string]float64{
	"Alabama":        0.3420,
	"Alaska":         0.4320,
	"Arizona":        0.3360,
	"Arkansas":       0.4580,
	"California":     0.2257,
	"Colorado":       0.5440,
	"Connecticut":    0.2430,
	"Delaware":       0.4360,
	"Florida":        0.3860,
	"Georgia":        0.3709,
	"Hawaii":         0.6870,
	"Idaho":          0.1040,
	"Illinois":       0.2740,
	"Indiana":        0.7280,
	"Iowa":           0.3420,
	"Kansas":         0.3920,
	"Kentucky":       0.7910,
	"Louisiana":      0.3850,
	"Maine":          0.1410,
	"Maryland":       0.3010,
	"Massachusetts":  0.3280,
	"Michigan":       0.4450,
	"Minnesota":      0.3330,
	"Mississippi":    0.4240,
	"Missouri":       0.6970,
	"Montana":        0.4830,
	"Nebraska":       0.5410,
	"Nevada":         0.3390,
	"New Hampshire":  0.1200,
	"New Jersey":     0.2230,
	"New Mexico":     0.4790,
	"New York":       0.1890,
	"North Carolina": 0.3140,
	"North Dakota":   0.6790,
	"Ohio":           0.5010,
	"Oklahoma":       0.3350,
	"Oregon":         0.1560,
	"Pennsylvania":   0.3330,
	"Rhode Island":   0.3860,
	"South Carolina": 0.2540,
	"South Dakota":   0.2510,
	"Tennessee":      0.2680,
	"Texas":          0.3960,
	"Utah":           0.5610,
	"Vermont":        0.0120,
	"Virginia":       0.2840,
	"Washington":     0.0980,
	"West Virginia":  0.8970,
	"Wisconsin":      0.5540,
	"Wyoming":        0.8460,
}

// canadaProvinceElectricityFactors maps Canadian province names to grid carbon
// intensity in kg CO2e per kWh.
//
// Source: Canada National Inventory Report electricity intensity by province.
// Data vintage: 2024.
var canadaProvinceElectricityFactors = map[string]float64{
	"Alberta":                   0.5100,
	"British Columbia":          0.0129,
	"Manitoba":                  0.0019,
	"New Brunswick":             0.2900,
	"Newfoundland and Labrador": 0.0320,
	"Nova Scotia":               0.6000,
	"Ontario":                   0.0300,
	"Prince Edward Island":      0.0150,
	"Quebec":                    0.0017,
	"Saskatchewan":              0.6500,
}

// ElectricityFactor resolves the grid carbon intensity for a location in
// kg CO2e per kWh, together with the key path that was actually matched.
//
// Resolution order:
//  1. state/province, when the country sub-divides regionally (US and Canada
//     only) and the state is present in the regional table
//  2. country
//  3. GlobalAverageElectricity (path "global-average")
func ElectricityFactor(country, state string) (float64, string) {
	switch country {
	case "United States":
		if factor, ok := usStateElectricityFactors[state]; ok {
			return factor, country + "/" + state
		}
	case "Canada":
		if factor, ok := canadaProvinceElectricityFactors[state]; ok {
			return factor, country + "/" + state
		}
	}
	if factor, ok := countryElectricityFactors[country]; ok {
		return factor, country
	}
	return GlobalAverageElectricity, GlobalAveragePath
}

// ElectricityCountries lists the countries with a dedicated
// electricity factor. Exposed for display and table sanity checks.
func ElectricityCountries() []string {
	countries := make([]string, 0, len(countryElectricityFactors))
	for country := range countryElectricityFactors {
		countries = append(countries, country)
	}
	return countries
}
