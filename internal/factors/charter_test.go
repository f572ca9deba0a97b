package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharterHourlyFactor(t *testing.T) {
	light, ok := CharterHourlyFactor("Light Jet")
	require.True(t, ok)
	assert.Equal(t, 1800.0, light)

	heavy, ok := CharterHourlyFactor("Heavy Jet")
	require.True(t, ok)
	assert.Greater(t, heavy, light, "heavier aircraft burn more per hour")

	_, ok = CharterHourlyFactor("Blimp")
	assert.False(t, ok)
}

// Hourly factors should increase monotonically with jet size class.
func TestCharterHourlyFactors_Ordering(t *testing.T) {
	ordered := []string{"Piston", "Turboprop", "Light Jet", "Midsize Jet", "Super Midsize Jet", "Heavy Jet"}

	prev := 0.0
	for _, class := range ordered {
		factor, ok := CharterHourlyFactor(class)
		require.True(t, ok, "class %s should be defined", class)
		assert.Greater(t, factor, prev, "%s should burn more than the previous class", class)
		prev = factor
	}
}
