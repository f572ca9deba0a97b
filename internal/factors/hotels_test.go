package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomAnnualEnergyKWh(t *testing.T) {
	economy, ok := RoomAnnualEnergyKWh("Economy")
	require.True(t, ok)
	assert.Equal(t, 6000.0, economy)

	luxury, ok := RoomAnnualEnergyKWh("Luxury")
	require.True(t, ok)
	assert.Greater(t, luxury, economy, "luxury rooms consume more energy")

	_, ok = RoomAnnualEnergyKWh("Tent")
	assert.False(t, ok)

	// Exact match only, per grouping-key policy.
	_, ok = RoomAnnualEnergyKWh("economy")
	assert.False(t, ok)
}

// Annual figures should stay within the benchmark band for lodging.
func TestRoomAnnualEnergyKWh_AllWithinValidRange(t *testing.T) {
	for roomType, kwh := range roomAnnualEnergyKWh {
		t.Run(roomType, func(t *testing.T) {
			assert.Greater(t, kwh, 1000.0)
			assert.Less(t, kwh, 50000.0)
		})
	}
}
