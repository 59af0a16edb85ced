// Package geo computes great-circle distances between profile
// coordinates. Coordinates are nullable: nil means the user never
// shared a location. A value of exactly 0.0 is a real coordinate.
package geo

import "math"

const earthRadiusKm = 6371.0

// Between returns the haversine distance in kilometers between two
// coordinate pairs given in degrees.
func Between(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Distance is the nullable-coordinate form of Between. It reports
// ok=false when any coordinate is missing.
func Distance(lat1, lon1, lat2, lon2 *float64) (float64, bool) {
	if lat1 == nil || lon1 == nil || lat2 == nil || lon2 == nil {
		return 0, false
	}
	return Between(*lat1, *lon1, *lat2, *lon2), true
}

func toRadians(deg float64) float64 {
	return deg * (math.Pi / 180)
}
