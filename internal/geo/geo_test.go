package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetweenKnownCities(t *testing.T) {
	// São Paulo to Rio de Janeiro, roughly 360 km great-circle.
	d := Between(-23.5505, -46.6333, -22.9068, -43.1729)
	assert.InDelta(t, 360, d, 5)
}

func TestBetweenSymmetry(t *testing.T) {
	a := Between(-23.5505, -46.6333, -22.9068, -43.1729)
	b := Between(-22.9068, -43.1729, -23.5505, -46.6333)
	assert.InDelta(t, a, b, 1e-9)
}

func TestBetweenSamePoint(t *testing.T) {
	assert.Zero(t, Between(10.5, -20.25, 10.5, -20.25))
}

func TestDistanceRequiresAllCoordinates(t *testing.T) {
	lat1, lon1 := -23.5505, -46.6333
	lat2, lon2 := -22.9068, -43.1729

	d, ok := Distance(&lat1, &lon1, &lat2, &lon2)
	require.True(t, ok)
	assert.InDelta(t, 360, d, 5)

	_, ok = Distance(nil, &lon1, &lat2, &lon2)
	assert.False(t, ok)
	_, ok = Distance(&lat1, &lon1, &lat2, nil)
	assert.False(t, ok)
	_, ok = Distance(nil, nil, nil, nil)
	assert.False(t, ok)
}
