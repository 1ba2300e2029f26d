package storage

import (
	"context"

	"github.com/claude/mapfit/internal/workout"
)

// SlotName is the single slot the workout log lives in. The whole log is
// written and read as one JSON array — there is no per-record access.
const SlotName = "workouts"

// Store persists the full workout log to one durable slot. Save overwrites
// prior contents; Load returns an empty log when the slot is absent.
// Degrade-on-failure policy (keep running in memory when storage is broken)
// belongs to the caller — stores report errors.
type Store interface {
	Save(ctx context.Context, records []workout.Record) error
	Load(ctx context.Context) ([]workout.Record, error)
	Close() error
}
