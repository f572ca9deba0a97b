package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reellab/setcarbon/internal/units"
)

func TestTravelCalculator_FlightTiers(t *testing.T) {
	calc := NewTravelCalculator(zerolog.Nop())

	tests := []struct {
		name     string
		distance float64
		wantTier string
		wantCO2e float64
	}{
		{"just under short boundary", 287.9, "Short", 287.9 * 0.215},
		{"medium lower bound", 288, "Medium", 288 * 0.133},
		{"mid medium", 500, "Medium", 500 * 0.133},
		{"medium upper bound", 688, "Medium", 688 * 0.133},
		{"just over long boundary", 688.1, "Long", 688.1 * 0.165},
		{"long haul", 1000, "Long", 1000 * 0.165},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := calc.CalculateAll([]TravelEntry{{
				ID:            "t1",
				TransportType: TransportFlight,
				Distance:      tt.distance,
			}})
			require.Empty(t, out.Errors)
			require.Len(t, out.Results, 1)

			r := out.Results[0]
			assert.Equal(t, tt.wantTier, r.Classification)
			assert.Equal(t, "Flight/"+tt.wantTier, r.FactorPath)
			assert.InDelta(t, tt.wantCO2e, r.CO2eKg, 1e-9)
		})
	}
}

func TestTravelCalculator_UnresolvedFlightDistance(t *testing.T) {
	calc := NewTravelCalculator(zerolog.Nop())

	out := calc.CalculateAll([]TravelEntry{{
		ID:            "t-avg",
		TransportType: TransportFlight,
		Travelers:     2,
	}})
	require.Empty(t, out.Errors)
	require.Len(t, out.Results, 1)

	// Unknown distance assumes a 1000-mile leg at the Average tier factor.
	r := out.Results[0]
	assert.Equal(t, "Average", r.Classification)
	assert.InDelta(t, 2000, r.Quantity, 1e-9)
	assert.InDelta(t, 2000*0.185, r.CO2eKg, 1e-9)
}

func TestTravelCalculator_Ground(t *testing.T) {
	calc := NewTravelCalculator(zerolog.Nop())

	t.Run("rail with multiple travelers", func(t *testing.T) {
		out := calc.CalculateAll([]TravelEntry{{
			ID:            "t-rail",
			TransportType: "Rail",
			Travelers:     3,
			Distance:      200,
		}})
		require.Empty(t, out.Errors)
		r := out.Results[0]
		assert.InDelta(t, 600, r.Quantity, 1e-9)
		assert.InDelta(t, 600*0.113, r.CO2eKg, 1e-9)
		assert.Empty(t, r.Classification)
	})

	t.Run("kilometers convert to miles", func(t *testing.T) {
		out := calc.CalculateAll([]TravelEntry{{
			ID:            "t-km",
			TransportType: "Bus",
			Distance:      100,
			DistanceUnit:  units.Kilometer,
		}})
		require.Empty(t, out.Errors)
		assert.InDelta(t, 100*0.6213711922*0.058, out.Results[0].CO2eKg, 1e-9)
	})

	t.Run("unknown transport type", func(t *testing.T) {
		out := calc.CalculateAll([]TravelEntry{{
			ID:            "t-bad",
			TransportType: "Gondola",
			Distance:      10,
		}})
		require.Len(t, out.Errors, 1)
		assert.ErrorIs(t, out.Errors[0], ErrFactorNotFound)
	})

	t.Run("ground travel requires distance", func(t *testing.T) {
		out := calc.CalculateAll([]TravelEntry{{
			ID:            "t-nodist",
			TransportType: "Rail",
		}})
		require.Len(t, out.Errors, 1)
		assert.ErrorIs(t, out.Errors[0], ErrMissingDerivationInput)
	})
}

func TestTravelCalculator_TierTotals(t *testing.T) {
	calc := NewTravelCalculator(zerolog.Nop())

	out := calc.CalculateAll([]TravelEntry{
		{ID: "a", TransportType: TransportFlight, Distance: 100},
		{ID: "b", TransportType: TransportFlight, Distance: 1000},
		{ID: "c", TransportType: "Rail", Distance: 50},
	})
	require.Empty(t, out.Errors)

	assert.InDelta(t, 100*0.215, out.Totals.ByTier["Short"], 1e-9)
	assert.InDelta(t, 1000*0.165, out.Totals.ByTier["Long"], 1e-9)
	assert.NotContains(t, out.Totals.ByTier, "")
	assert.InDelta(t, 100*0.215+1000*0.165, out.Totals.ByTransportType[TransportFlight], 1e-9)
	assert.InDelta(t, 50*0.113, out.Totals.ByTransportType["Rail"], 1e-9)
}
