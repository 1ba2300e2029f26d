package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/claude/mapfit/internal/workout"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolListWorkouts = mcp.NewTool("list_workouts",
	mcp.WithDescription("List logged workouts with coordinates, distance, duration, and the derived pace (running) or speed (cycling)."),
	mcp.WithString("type", mcp.Description("Filter by workout type"), mcp.Enum("running", "cycling")),
)

var toolWorkoutStats = mcp.NewTool("workout_stats",
	mcp.WithDescription("Per-type summary of the workout log: counts, total distance and duration, average pace/speed."),
)

// toolRecord is the tool-facing view of one record, derived fields included.
type toolRecord struct {
	ID             string     `json:"id"`
	Kind           string     `json:"kind"`
	Coordinates    [2]float64 `json:"coordinates"`
	DistanceKm     float64    `json:"distanceKm"`
	DurationMin    float64    `json:"durationMin"`
	CreatedAt      time.Time  `json:"createdAt"`
	Description    string     `json:"description"`
	Cadence        *float64   `json:"cadence,omitempty"`
	Pace           *float64   `json:"pace,omitempty"`
	ElevationGainM *float64   `json:"elevationGainM,omitempty"`
	Speed          *float64   `json:"speed,omitempty"`
}

func toToolRecords(records []workout.Record) []toolRecord {
	out := make([]toolRecord, 0, len(records))
	for _, r := range records {
		tr := toolRecord{
			ID:          r.ID,
			Kind:        string(r.Kind),
			Coordinates: [2]float64{r.Coords.Lat, r.Coords.Lng},
			DistanceKm:  r.DistanceKm,
			DurationMin: r.DurationMin,
			CreatedAt:   r.CreatedAt,
			Description: r.Description(),
		}
		switch r.Kind {
		case workout.Running:
			cadence, pace := r.Cadence, r.Pace
			tr.Cadence, tr.Pace = &cadence, &pace
		case workout.Cycling:
			elevation, speed := r.ElevationGainM, r.Speed
			tr.ElevationGainM, tr.Speed = &elevation, &speed
		}
		out = append(out, tr)
	}
	return out
}

// --- Tool handlers ---

func (h *handlers) listWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kindFilter := req.GetString("type", "")

	records, err := h.ds.QueryWorkouts(ctx, kindFilter)
	if err != nil {
		h.log.Error("mcp list_workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(toToolRecords(records))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) workoutStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records, err := h.ds.QueryWorkouts(ctx, "")
	if err != nil {
		h.log.Error("mcp workout_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workout.ComputeStats(records))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// --- Resource handlers ---

func (h *handlers) workoutLog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	records, err := h.ds.QueryWorkouts(ctx, "")
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(toToolRecords(records))
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
