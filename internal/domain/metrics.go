package domain

import "math"

// RouteMetrics is a driving-route summary in the output units.
type RouteMetrics struct {
	DistanceKm      float64
	DurationMinutes float64
}

// NewRouteMetrics converts raw routing-API units: meters to kilometers
// rounded to two decimals, seconds to minutes rounded to one decimal.
func NewRouteMetrics(meters, seconds float64) RouteMetrics {
	return RouteMetrics{
		DistanceKm:      roundTo(meters/1000, 2),
		DurationMinutes: roundTo(seconds/60, 1),
	}
}

func roundTo(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}
