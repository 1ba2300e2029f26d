package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("MapFit", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("MapFit workout log server. Query logged running and cycling workouts with their map positions and derived pace/speed metrics."),
	)

	h := &handlers{ds: ds, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolListWorkouts, Handler: h.listWorkouts},
		server.ServerTool{Tool: toolWorkoutStats, Handler: h.workoutStats},
	)

	s.AddResources(
		server.ServerResource{Resource: resWorkoutLog, Handler: h.workoutLog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

var resWorkoutLog = mcp.NewResource(
	"mapfit://workout_log",
	"Workout Log",
	mcp.WithResourceDescription("The full workout log: every recorded running and cycling entry with coordinates, distance, duration and derived metrics"),
	mcp.WithMIMEType("application/json"),
)
