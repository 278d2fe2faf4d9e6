package ports

import (
	"context"
	"distance-annotator/internal/domain"
)

// Contract for resolving driving metrics between two address strings.
// Failure is data: the false return covers every remote failure mode
// (network, timeout, HTTP status, malformed payload, no results), so callers
// treat a missing result like any other row value.
type RouteProvider interface {
	// GetRouteMetrics geocodes both addresses and returns the driving
	// distance and duration between them.
	GetRouteMetrics(ctx context.Context, origin string, destination string) (domain.RouteMetrics, bool)
}
