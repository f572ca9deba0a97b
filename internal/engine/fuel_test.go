package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reellab/setcarbon/internal/units"
)

func TestFuelCalculator_Methods(t *testing.T) {
	calc := NewFuelCalculator(zerolog.Nop())

	tests := []struct {
		name        string
		entry       FuelEntry
		wantGallons float64
		wantCO2e    float64
	}{
		{
			name: "generator diesel by amount",
			entry: FuelEntry{
				ID:            "f1",
				EquipmentType: "Generator",
				FuelType:      "Diesel Fuel",
				Method:        MethodAmount,
				FuelAmount:    50,
			},
			wantGallons: 50,
			wantCO2e:    50 * 10.21,
		},
		{
			name: "liters convert to gallons",
			entry: FuelEntry{
				ID:         "f2",
				FuelType:   "Gasoline",
				Method:     MethodAmount,
				FuelAmount: 100,
				FuelUnit:   units.Liter,
			},
			wantGallons: 100 * 0.2641720524,
			wantCO2e:    100 * 0.2641720524 * 8.78,
		},
		{
			name: "cost divided by price",
			entry: FuelEntry{
				ID:             "f3",
				FuelType:       "Diesel Fuel",
				Method:         MethodCost,
				Cost:           200,
				PricePerGallon: 4.00,
			},
			wantGallons: 50,
			wantCO2e:    50 * 10.21,
		},
		{
			name: "mileage via vehicle economy",
			entry: FuelEntry{
				ID:          "f4",
				FuelType:    "Gasoline",
				Method:      MethodMileage,
				Distance:    140,
				VehicleType: "Cargo Van",
			},
			wantGallons: 10, // 140 mi / 14 MPG
			wantCO2e:    10 * 8.78,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := calc.CalculateAll([]FuelEntry{tt.entry})
			require.Empty(t, out.Errors)
			require.Len(t, out.Results, 1)

			r := out.Results[0]
			assert.InDelta(t, tt.wantGallons, r.Quantity, 1e-9)
			assert.InDelta(t, tt.wantCO2e, r.CO2eKg, 1e-9)
			assert.Equal(t, string(units.Gallon), r.QuantityUnit)
		})
	}
}

func TestFuelCalculator_Errors(t *testing.T) {
	calc := NewFuelCalculator(zerolog.Nop())

	tests := []struct {
		name    string
		entry   FuelEntry
		wantErr error
	}{
		{
			name:    "unknown fuel type has no fallback",
			entry:   FuelEntry{ID: "e1", FuelType: "Plutonium", Method: MethodAmount, FuelAmount: 1},
			wantErr: ErrFactorNotFound,
		},
		{
			name:    "lowercase fuel type does not match",
			entry:   FuelEntry{ID: "e2", FuelType: "diesel fuel", Method: MethodAmount, FuelAmount: 1},
			wantErr: ErrFactorNotFound,
		},
		{
			name:    "cost method without price",
			entry:   FuelEntry{ID: "e3", FuelType: "Diesel Fuel", Method: MethodCost, Cost: 100},
			wantErr: ErrMissingDerivationInput,
		},
		{
			name:    "mileage method with unknown vehicle",
			entry:   FuelEntry{ID: "e4", FuelType: "Gasoline", Method: MethodMileage, Distance: 50, VehicleType: "Zeppelin"},
			wantErr: ErrMissingDerivationInput,
		},
		{
			name:    "zero amount",
			entry:   FuelEntry{ID: "e5", FuelType: "Gasoline", Method: MethodAmount},
			wantErr: ErrMissingDerivationInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := calc.CalculateAll([]FuelEntry{tt.entry})
			assert.Empty(t, out.Results)
			require.Len(t, out.Errors, 1)
			assert.Equal(t, tt.entry.ID, out.Errors[0].EntryID)
			assert.ErrorIs(t, out.Errors[0], tt.wantErr)
			assert.Zero(t, out.Totals.TotalCO2eKg)
		})
	}
}

func TestFuelCalculator_Grouping(t *testing.T) {
	calc := NewFuelCalculator(zerolog.Nop())

	out := calc.CalculateAll([]FuelEntry{
		{ID: "g1", EquipmentType: "Generator", FuelType: "Diesel Fuel", Method: MethodAmount, FuelAmount: 10},
		{ID: "g2", EquipmentType: "Generator", FuelType: "Diesel Fuel", Method: MethodAmount, FuelAmount: 5},
		{ID: "g3", EquipmentType: "Truck", FuelType: "Gasoline", Method: MethodAmount, FuelAmount: 10},
	})
	require.Empty(t, out.Errors)

	assert.InDelta(t, 15*10.21, out.Totals.ByFuelType["Diesel Fuel"], 1e-9)
	assert.InDelta(t, 10*8.78, out.Totals.ByFuelType["Gasoline"], 1e-9)
	assert.InDelta(t, 15*10.21, out.Totals.ByEquipmentType["Generator"], 1e-9)
	assert.InDelta(t, 25, out.Totals.TotalGallons, 1e-9)
	assert.InDelta(t, 15*10.21+10*8.78, out.Totals.TotalCO2eKg, 1e-9)
}
