// Package geo provides the straight-line distance and proximity predicates
// every gated action in the app shares.
package geo

import (
	"math"

	"aroundtheblock/internal/domain/entity"
)

const earthRadiusMeters = 6371000.0

// DistanceMeters calculates the great circle distance between two coordinates
// using the haversine formula. It is pure, symmetric, and returns 0 for
// identical points.
func DistanceMeters(a, b entity.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lng1 := a.Longitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	lng2 := b.Longitude * math.Pi / 180

	deltaLat := lat2 - lat1
	deltaLng := lng2 - lng1

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// IsNear reports whether the user is within radiusMeters of the target.
// Either side being unknown means "not near"; callers pass nil rather than a
// zero coordinate so a missing GPS fix is never mistaken for Null Island.
//
// Every gated action (automatic check-in, manual check-in, wait-time
// submission) runs through this single predicate with the same radius, so a
// user gated out of one is gated out of all of them.
func IsNear(user *entity.Coordinate, target *entity.Coordinate, radiusMeters float64) bool {
	if user == nil || target == nil {
		return false
	}

	return DistanceMeters(*user, *target) <= radiusMeters
}

// IsValid checks if a coordinate is within valid geographic bounds.
func IsValid(coord entity.Coordinate) bool {
	if math.IsNaN(coord.Latitude) || math.IsNaN(coord.Longitude) ||
		math.IsInf(coord.Latitude, 0) || math.IsInf(coord.Longitude, 0) {
		return false
	}

	return coord.Latitude >= -90 && coord.Latitude <= 90 &&
		coord.Longitude >= -180 && coord.Longitude <= 180
}
