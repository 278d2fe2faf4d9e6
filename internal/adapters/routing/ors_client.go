package routing

import (
	"context"
	"errors"
	"net/http"
	"time"

	"distance-annotator/internal/domain"
	"distance-annotator/internal/ports"

	"go.uber.org/zap"
)

const (
	defaultBaseURL           = "https://api.openrouteservice.org"
	defaultProfile           = "driving-car"
	defaultGeocodeTimeout    = 10 * time.Second
	defaultDirectionsTimeout = 15 * time.Second
)

// Options configures the OpenRouteService client. Zero values fall back to
// the public API endpoint, the driving-car profile and the stock timeouts.
type Options struct {
	APIKey            string
	BaseURL           string
	Profile           string
	BoundaryCountry   string
	GeocodeTimeout    time.Duration
	DirectionsTimeout time.Duration
}

// ORSClient implements RouteProvider using OpenRouteService.
//
// Each GetRouteMetrics call geocodes both addresses and then requests one
// driving route. There is no caching and no retry: a failed call is final
// for the row that issued it.
type ORSClient struct {
	session           *http.Client
	apiKey            string
	baseURL           string
	profile           string
	boundaryCountry   string
	geocodeTimeout    time.Duration
	directionsTimeout time.Duration
	log               *zap.Logger
}

var _ ports.RouteProvider = (*ORSClient)(nil)

func NewORSClient(opts Options, log *zap.Logger) (*ORSClient, error) {
	if opts.APIKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	client := &ORSClient{
		session:           &http.Client{},
		apiKey:            opts.APIKey,
		baseURL:           defaultBaseURL,
		profile:           defaultProfile,
		boundaryCountry:   opts.BoundaryCountry,
		geocodeTimeout:    defaultGeocodeTimeout,
		directionsTimeout: defaultDirectionsTimeout,
		log:               log,
	}
	if opts.BaseURL != "" {
		client.baseURL = opts.BaseURL
	}
	if opts.Profile != "" {
		client.profile = opts.Profile
	}
	if opts.GeocodeTimeout > 0 {
		client.geocodeTimeout = opts.GeocodeTimeout
	}
	if opts.DirectionsTimeout > 0 {
		client.directionsTimeout = opts.DirectionsTimeout
	}

	return client, nil
}

// Geocode resolves a free-text address to coordinates. Any failure (network,
// timeout, HTTP status, empty or malformed payload) is reported as a missing
// result after logging the reason.
func (c *ORSClient) Geocode(ctx context.Context, address string) (domain.Coordinates, bool) {
	coord, err := c.geocode(ctx, address)
	if err != nil {
		c.log.Warn("geocoding failed", zap.String("address", address), zap.Error(err))
		return domain.Coordinates{}, false
	}
	return coord, true
}

// GetRouteMetrics geocodes origin and destination and fetches one driving
// route between them. Failure of either step yields no result.
func (c *ORSClient) GetRouteMetrics(ctx context.Context, origin, destination string) (domain.RouteMetrics, bool) {
	originCoord, err := c.geocode(ctx, origin)
	if err != nil {
		c.log.Warn("geocoding origin failed", zap.String("address", origin), zap.Error(err))
		return domain.RouteMetrics{}, false
	}

	destCoord, err := c.geocode(ctx, destination)
	if err != nil {
		c.log.Warn("geocoding destination failed", zap.String("address", destination), zap.Error(err))
		return domain.RouteMetrics{}, false
	}

	metrics, err := c.fetchRoute(ctx, originCoord, destCoord)
	if err != nil {
		c.log.Warn("directions request failed",
			zap.String("origin", origin),
			zap.String("destination", destination),
			zap.Error(err),
		)
		return domain.RouteMetrics{}, false
	}

	return metrics, true
}
