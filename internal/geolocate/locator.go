// Package geolocate resolves a rough position for the initial map center
// from a freegeoip-style JSON endpoint. One attempt at startup, no retry:
// when the lookup fails the map simply starts on the configured default
// center.
package geolocate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/claude/mapfit/internal/workout"
)

// Locator queries a geolocation endpoint for the caller's position.
type Locator struct {
	endpoint   string
	httpClient *http.Client
}

// New creates a Locator for the given endpoint, e.g.
// "https://freegeoip.app/json/".
func New(endpoint string) *Locator {
	return &Locator{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type geoResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Lookup performs a single geolocation request.
func (l *Locator) Lookup(ctx context.Context) (workout.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return workout.Coordinates{}, fmt.Errorf("creating geolocation request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return workout.Coordinates{}, fmt.Errorf("calling geolocation endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return workout.Coordinates{}, fmt.Errorf("geolocation endpoint returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return workout.Coordinates{}, fmt.Errorf("reading geolocation response: %w", err)
	}

	var geo geoResponse
	if err := json.Unmarshal(body, &geo); err != nil {
		return workout.Coordinates{}, fmt.Errorf("parsing geolocation response: %w", err)
	}

	return workout.Coordinates{Lat: geo.Latitude, Lng: geo.Longitude}, nil
}
