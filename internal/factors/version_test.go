package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableVersion(t *testing.T) {
	meta := TableVersion()

	require.NotEmpty(t, meta.Version)
	assert.GreaterOrEqual(t, meta.Vintage, 2024)
	assert.NotEmpty(t, meta.Published)
	assert.NotEmpty(t, meta.Sources)
}

func TestTableVersion_Stable(t *testing.T) {
	assert.Equal(t, TableVersion(), TableVersion())
}
