package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKmIdenticalCoordinates(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(14.5995, 120.9842, 14.5995, 120.9842))
}

func TestDistanceKmManilaLatitudeDegree(t *testing.T) {
	// 0.01 degrees of latitude is roughly 1.11 km anywhere on the globe.
	d := DistanceKm(14.5995, 120.9842, 14.6095, 120.9842)
	assert.InEpsilon(t, 1.11, d, 0.01)
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := DistanceKm(14.5995, 120.9842, 10.3157, 123.8854) // Manila -> Cebu
	b := DistanceKm(10.3157, 123.8854, 14.5995, 120.9842)
	assert.InDelta(t, a, b, 1e-9)
	assert.Greater(t, a, 500.0)
	assert.Less(t, a, 700.0)
}

func TestWithinRadiusNoLimit(t *testing.T) {
	for _, d := range []float64{0, 1, 99.9, 20000} {
		assert.True(t, WithinRadius(d, NoLimit))
	}
}

func TestWithinRadiusCutoff(t *testing.T) {
	assert.True(t, WithinRadius(4.9, 5))
	assert.True(t, WithinRadius(5.0, 5))
	assert.False(t, WithinRadius(5.1, 5))
}

func TestValidRadius(t *testing.T) {
	assert.True(t, ValidRadius(1))
	assert.True(t, ValidRadius(NoLimit))
	assert.False(t, ValidRadius(3))
}
