package domain

import "math"

const earthRadiusMeters = 6371000

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// DistanceMeters returns the great-circle distance between two coordinates
// using the haversine formula. Identical coordinates short-circuit to 0 so
// atan2 never sees a perfect zero vector.
func DistanceMeters(from, to Coordinate) float64 {
	if from.Latitude == to.Latitude && from.Longitude == to.Longitude {
		return 0
	}

	latFrom := from.Latitude * math.Pi / 180
	latTo := to.Latitude * math.Pi / 180
	latDelta := (to.Latitude - from.Latitude) * math.Pi / 180
	lonDelta := (to.Longitude - from.Longitude) * math.Pi / 180

	a := math.Sin(latDelta/2)*math.Sin(latDelta/2) +
		math.Cos(latFrom)*math.Cos(latTo)*math.Sin(lonDelta/2)*math.Sin(lonDelta/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}
