package mcp

import (
	"context"

	"github.com/claude/mapfit/internal/storage"
	"github.com/claude/mapfit/internal/workout"
)

// DataSource abstracts where the workout log comes from. StoreSource reads
// the local slot store directly; HTTPClient goes through the REST API of a
// running instance (remote MCP mode).
type DataSource interface {
	QueryWorkouts(ctx context.Context, kindFilter string) ([]workout.Record, error)
}

// StoreSource serves the log straight from a slot store. Each query reloads
// the slot, so a concurrently running mapfit instance's writes are visible.
type StoreSource struct {
	store storage.Store
}

// Compile-time check: *StoreSource satisfies DataSource.
var _ DataSource = (*StoreSource)(nil)

// NewStoreSource wraps a slot store as a DataSource.
func NewStoreSource(store storage.Store) *StoreSource {
	return &StoreSource{store: store}
}

// QueryWorkouts loads the log, optionally filtered by kind.
func (s *StoreSource) QueryWorkouts(ctx context.Context, kindFilter string) ([]workout.Record, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return filterByKind(records, kindFilter), nil
}

func filterByKind(records []workout.Record, kindFilter string) []workout.Record {
	if kindFilter == "" {
		return records
	}
	var out []workout.Record
	for _, r := range records {
		if string(r.Kind) == kindFilter {
			out = append(out, r)
		}
	}
	return out
}
