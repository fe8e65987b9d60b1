package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCategories(t *testing.T) {
	stdout, _, err := executeCommand(t, "catalog", "categories")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Scope 1")
	assert.Contains(t, stdout, "Scope 2")
	assert.Contains(t, stdout, "Scope 3")
	assert.Contains(t, stdout, "stationaryCombustion")
	assert.Contains(t, stdout, "purchasedElectricity")
	assert.Contains(t, stdout, "businessTravel")
}

func TestCatalogSources(t *testing.T) {
	stdout, _, err := executeCommand(t, "catalog", "sources", "scope1")
	require.NoError(t, err)

	assert.Contains(t, stdout, "naturalGas")
	assert.Contains(t, stdout, "2.01")
	assert.Contains(t, stdout, "kg CO2e/m3")
}

func TestCatalogSources_CategoryFilter(t *testing.T) {
	stdout, _, err := executeCommand(t, "catalog", "sources", "scope1", "--category", "mobileCombustion")
	require.NoError(t, err)

	assert.Contains(t, stdout, "gasoline")
	assert.NotContains(t, stdout, "naturalGas")
}

func TestCatalogSources_SortedWithinCategory(t *testing.T) {
	stdout, _, err := executeCommand(t, "catalog", "sources", "scope1", "--category", "stationaryCombustion")
	require.NoError(t, err)

	coal := strings.Index(stdout, "coal")
	naturalGas := strings.Index(stdout, "naturalGas")
	propane := strings.Index(stdout, "propane")
	require.NotEqual(t, -1, coal)
	require.NotEqual(t, -1, naturalGas)
	require.NotEqual(t, -1, propane)
	assert.Less(t, coal, naturalGas)
	assert.Less(t, naturalGas, propane)
}

func TestCatalogSources_UnknownScope(t *testing.T) {
	_, _, err := executeCommand(t, "catalog", "sources", "scope9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scope9")
}
