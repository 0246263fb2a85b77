// Package geoutil holds the pure coordinate and clock arithmetic used by the
// attendance engine. No library in the stack ships a great-circle formula, so
// the haversine distance is computed here directly.
package geoutil

import (
	"math"
	"time"
)

const earthRadiusMeters = 6371000.0

// DistanceMeters returns the great-circle (haversine) distance between two
// WGS84 coordinates, in meters.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// SecondsOfDay returns the wall-clock time of day as seconds since midnight.
func SecondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// HoursBetween returns the elapsed hours from a to b rounded to 2 decimals.
// Returns 0 when b is not after a.
func HoursBetween(a, b time.Time) float64 {
	if !b.After(a) {
		return 0
	}
	return math.Round(b.Sub(a).Hours()*100) / 100
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
