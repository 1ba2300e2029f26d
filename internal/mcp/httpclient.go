package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/mapfit/internal/workout"
)

// HTTPClient implements DataSource by calling the MapFit REST API. Used for
// remote MCP mode where the binary runs locally (stdio) but the log lives on
// the server (typically reached over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: *HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// apiRecord mirrors the /api/v1/workouts response shape.
type apiRecord struct {
	ID             string     `json:"id"`
	Kind           string     `json:"kind"`
	Coordinates    [2]float64 `json:"coordinates"`
	DistanceKm     float64    `json:"distanceKm"`
	DurationMin    float64    `json:"durationMin"`
	CreatedAt      time.Time  `json:"createdAt"`
	Cadence        *float64   `json:"cadence"`
	ElevationGainM *float64   `json:"elevationGainM"`
}

// QueryWorkouts fetches the full log over HTTP and filters by kind locally.
func (c *HTTPClient) QueryWorkouts(ctx context.Context, kindFilter string) ([]workout.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/workouts", nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: server returned %s: %s", resp.Status, body)
	}

	var apiRecords []apiRecord
	if err := json.Unmarshal(body, &apiRecords); err != nil {
		return nil, fmt.Errorf("httpclient: decode response: %w", err)
	}

	// Re-encode into the slot layout and decode through the normal
	// constructor path, so derived fields are recomputed, not trusted.
	payload, err := json.Marshal(apiRecords)
	if err != nil {
		return nil, fmt.Errorf("httpclient: re-encode: %w", err)
	}
	records, err := workout.DecodeLog(payload)
	if err != nil {
		return nil, fmt.Errorf("httpclient: rebuild records: %w", err)
	}
	return filterByKind(records, kindFilter), nil
}
