package atlas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupExactAndCaseInsensitive(t *testing.T) {
	lat, lon, ok := Lookup("San Francisco")
	require.True(t, ok)
	assert.InDelta(t, 37.7749, lat, 0.0001)
	assert.InDelta(t, -122.4194, lon, 0.0001)

	lat2, lon2, ok := Lookup("san francisco")
	require.True(t, ok)
	assert.Equal(t, lat, lat2)
	assert.Equal(t, lon, lon2)
}

func TestLookupTypoNormalization(t *testing.T) {
	lat1, lon1, ok := Lookup("Sao Paolo")
	require.True(t, ok)
	lat2, lon2, ok2 := Lookup("São Paulo")
	require.True(t, ok2)
	assert.Equal(t, lat1, lat2)
	assert.Equal(t, lon1, lon2)
}

func TestLookupPipePrefix(t *testing.T) {
	lat, lon, ok := Lookup("New York | Relocation Available")
	require.True(t, ok)
	assert.InDelta(t, 40.7128, lat, 0.0001)
	assert.InDelta(t, -74.006, lon, 0.0001)
}

func TestLookupCityStateExtraction(t *testing.T) {
	// Trailing noise after a "City, ST" core.
	lat, _, ok := Lookup("Foster City, CA (Hybrid) In office M,W,F")
	require.True(t, ok)
	assert.InDelta(t, 37.5585, lat, 0.01)
}

func TestLookupWorkplaceSuffix(t *testing.T) {
	lat, _, ok := Lookup("New York (Hybrid)")
	require.True(t, ok)
	assert.InDelta(t, 40.7128, lat, 0.0001)
}

func TestLookupDataCenterSuffix(t *testing.T) {
	lat, _, ok := Lookup("New York - Data Center")
	require.True(t, ok)
	assert.InDelta(t, 40.7128, lat, 0.0001)
}

func TestLookupOfficeHeuristics(t *testing.T) {
	lat, _, ok := Lookup("San Francisco Office")
	require.True(t, ok)
	assert.InDelta(t, 37.7749, lat, 0.0001)
}

func TestLookupMiss(t *testing.T) {
	_, _, ok := Lookup("Xyzzyville")
	assert.False(t, ok)

	_, _, ok = Lookup("")
	assert.False(t, ok)
}

func TestLookupFanOutCoordinates(t *testing.T) {
	sfLat, sfLon, ok := Lookup("San Francisco, CA")
	require.True(t, ok)
	assert.InDelta(t, 37.7749, sfLat, 0.0001)
	assert.InDelta(t, -122.4194, sfLon, 0.0001)

	nyLat, nyLon, ok := Lookup("New York, NY")
	require.True(t, ok)
	assert.InDelta(t, 40.7128, nyLat, 0.0001)
	assert.InDelta(t, -74.006, nyLon, 0.0001)
}
