package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/claude/mapfit/internal/workout"
)

// brokenStore fails every operation — simulates unavailable storage.
type brokenStore struct{}

func (brokenStore) Save(context.Context, []workout.Record) error { return errors.New("disk full") }
func (brokenStore) Load(context.Context) ([]workout.Record, error) {
	return nil, errors.New("disk on fire")
}
func (brokenStore) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestLoadFailureDegradesToEmpty verifies a failed load starts the session
// with an empty log instead of propagating the error.
func TestLoadFailureDegradesToEmpty(t *testing.T) {
	s := NewSession(brokenStore{}, discardLogger())
	s.LoadFromStore(context.Background())
	if got := s.Records(); len(got) != 0 {
		t.Errorf("records = %d, want 0", len(got))
	}
}

// TestSaveFailureKeepsRecordInMemory verifies a failed save does not fail
// the submission — the record stays in the session for its lifetime.
func TestSaveFailureKeepsRecordInMemory(t *testing.T) {
	s := NewSession(brokenStore{}, discardLogger())
	s.SetPending(workout.Coordinates{Lat: 51.5, Lng: -0.1})

	record, err := s.Submit(context.Background(), Submission{
		Kind: workout.Running, DistanceKm: 5, DurationMin: 25, Cadence: 160,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Pace != 300 {
		t.Errorf("pace = %v, want 300", record.Pace)
	}

	got := s.Records()
	if len(got) != 1 || got[0].ID != record.ID {
		t.Errorf("records = %v, want the submitted record", got)
	}
}

// TestValidationFailureMutatesNothing verifies a rejected submission leaves
// both the log and the pending location untouched.
func TestValidationFailureMutatesNothing(t *testing.T) {
	s := NewSession(brokenStore{}, discardLogger())
	s.SetPending(workout.Coordinates{Lat: 51.5, Lng: -0.1})

	_, err := s.Submit(context.Background(), Submission{
		Kind: workout.Running, DistanceKm: 0, DurationMin: 25, Cadence: 160,
	})
	if !errors.Is(err, workout.ErrInvalidDistanceDuration) {
		t.Fatalf("err = %v, want %v", err, workout.ErrInvalidDistanceDuration)
	}
	if len(s.Records()) != 0 {
		t.Error("rejected submission must not append a record")
	}
	if s.Pending() == nil {
		t.Error("rejected submission must not consume the pending location")
	}
}
