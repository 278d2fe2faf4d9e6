package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"distance-annotator/internal/domain"
	"distance-annotator/internal/platform/obs"
)

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

// Summary fields decode through pointers so an absent metric is
// distinguishable from zero.
type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance *float64 `json:"distance"`
			Duration *float64 `json:"duration"`
		} `json:"summary"`
	} `json:"routes"`
}

// fetchRoute requests one driving route between two coordinate pairs and
// converts the summary into output units.
func (c *ORSClient) fetchRoute(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ domain.RouteMetrics, err error) {
	defer obs.Time(ctx, c.log, "ors.directions")(&err)

	ctx, cancel := context.WithTimeout(ctx, c.directionsTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/v2/directions/%s", c.baseURL, c.profile)

	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{origin.LonLat(), destination.LonLat()},
	})
	if err != nil {
		return domain.RouteMetrics{}, fmt.Errorf("marshal directions request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.RouteMetrics{}, fmt.Errorf("directions request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return domain.RouteMetrics{}, fmt.Errorf("execute directions request: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.RouteMetrics{}, fmt.Errorf("decode directions response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		return domain.RouteMetrics{}, errors.New("directions returned no routes")
	}

	summary := decoded.Routes[0].Summary
	if summary.Distance == nil || summary.Duration == nil {
		return domain.RouteMetrics{}, errors.New("directions summary is missing distance or duration")
	}

	return domain.NewRouteMetrics(*summary.Distance, *summary.Duration), nil
}
