package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVehicleEfficiencyKWhPerMile(t *testing.T) {
	tests := []struct {
		vehicleType string
		want        float64
	}{
		{"Sedan", 0.28},
		{"Truck", 0.49},
		{"Golf Cart", DefaultEVEfficiencyKWhPerMile},
		{"", DefaultEVEfficiencyKWhPerMile},
	}

	for _, tt := range tests {
		t.Run(tt.vehicleType, func(t *testing.T) {
			assert.Equal(t, tt.want, VehicleEfficiencyKWhPerMile(tt.vehicleType))
		})
	}
}
