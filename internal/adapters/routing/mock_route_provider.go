package routing

import (
	"context"

	"distance-annotator/internal/domain"
)

type MockRoute struct {
	Origin, Destination string
	Metrics             domain.RouteMetrics
}

// MockRouteProvider serves canned metrics for (origin, destination) pairs and
// records the destinations requested, in order. Unknown pairs report no
// result, like a remote failure would.
type MockRouteProvider struct {
	m     map[string]domain.RouteMetrics
	Calls []string
}

func NewMockRouteProvider(routes []MockRoute) *MockRouteProvider {
	m := make(map[string]domain.RouteMetrics, len(routes))
	for _, r := range routes {
		m[r.Origin+"|"+r.Destination] = r.Metrics
	}
	return &MockRouteProvider{m: m}
}

func (p *MockRouteProvider) GetRouteMetrics(ctx context.Context, origin, destination string) (domain.RouteMetrics, bool) {
	p.Calls = append(p.Calls, destination)
	r, ok := p.m[origin+"|"+destination]
	return r, ok
}
