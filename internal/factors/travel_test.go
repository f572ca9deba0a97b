package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Distance tier boundaries: Medium is inclusive of both bounds.
func TestFlightTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     Tier
	}{
		{"just under short boundary", 287.9, TierShort},
		{"exactly short boundary", 288.0, TierMedium},
		{"mid-range", 500, TierMedium},
		{"exactly long boundary", 688.0, TierMedium},
		{"just over long boundary", 688.1, TierLong},
		{"transcontinental", 2475, TierLong},
		{"very short hop", 45, TierShort},
		{"zero distance is unresolved", 0, TierAverage},
		{"negative distance is unresolved", -10, TierAverage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FlightTierFor(tt.distance))
		})
	}
}

func TestFlightFactor_EveryTierDefined(t *testing.T) {
	for _, tier := range []Tier{TierShort, TierMedium, TierLong, TierAverage} {
		t.Run(string(tier), func(t *testing.T) {
			factor := FlightFactor(tier)
			assert.Greater(t, factor, 0.0)
			assert.Less(t, factor, 1.0, "per-passenger-mile factors are fractions of a kg")
		})
	}
}

func TestFlightFactor_UnknownTierFallsBackToAverage(t *testing.T) {
	assert.Equal(t, FlightFactor(TierAverage), FlightFactor(Tier("Hypersonic")))
}

// Short flights emit more per mile than medium ones: takeoff dominates.
func TestFlightFactors_ShortHaulPenalty(t *testing.T) {
	assert.Greater(t, FlightFactor(TierShort), FlightFactor(TierMedium))
	assert.Greater(t, FlightFactor(TierLong), FlightFactor(TierMedium))
}

func TestGroundTravelFactor(t *testing.T) {
	rail, ok := GroundTravelFactor("Rail")
	require.True(t, ok)
	assert.Equal(t, 0.113, rail)

	ferry, ok := GroundTravelFactor("Ferry")
	require.True(t, ok)
	assert.Greater(t, ferry, rail, "ferries are more carbon-intensive than rail")

	_, ok = GroundTravelFactor("Rickshaw")
	assert.False(t, ok)

	// Exact match only.
	_, ok = GroundTravelFactor("rail")
	assert.False(t, ok)
}
