// Package geo implements the great-circle distance math behind the home
// screen's radius filter.
package geo

import "math"

const earthRadiusKm = 6371.0

// NoLimit is the radius value meaning "do not filter by distance".
const NoLimit = -1.0

// SearchRadiiKm are the radius choices exposed by the client, plus NoLimit.
var SearchRadiiKm = []float64{1, 2, 5, 10, 20, 50, 100, NoLimit}

// DistanceKm returns the Haversine great-circle distance between two
// coordinates in kilometers.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// WithinRadius reports whether a distance passes the radius filter. A radius
// of NoLimit never excludes anything.
func WithinRadius(distanceKm, radiusKm float64) bool {
	if radiusKm == NoLimit {
		return true
	}
	return distanceKm <= radiusKm
}

// ValidRadius reports whether radiusKm is one of the enumerated choices.
func ValidRadius(radiusKm float64) bool {
	for _, r := range SearchRadiiKm {
		if r == radiusKm {
			return true
		}
	}
	return false
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
