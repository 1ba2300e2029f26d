package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/claude/mapfit/internal/storage"
	"github.com/claude/mapfit/internal/workout"
)

// Session is the application state for one running instance: the in-memory
// workout log, the pending map location (the last clicked point, at most
// one, overwritten by each click), and the form selection. The logical flow
// is strictly sequential — click, fill, submit — but handlers run on
// concurrent goroutines, so access is serialized with a mutex.
//
// Storage failures never break the session: a failed load starts the log
// empty, a failed save keeps the session in-memory-only. Both are logged.
type Session struct {
	mu      sync.Mutex
	log     *slog.Logger
	store   storage.Store
	records []workout.Record
	pending *workout.Coordinates
	form    *workout.FormState
}

// Submission carries the raw form values of one workout entry.
type Submission struct {
	Kind           workout.Kind
	DistanceKm     float64
	DurationMin    float64
	Cadence        float64
	ElevationGainM float64
}

// NewSession creates a session backed by the given store, with the form on
// its default selection.
func NewSession(store storage.Store, log *slog.Logger) *Session {
	return &Session{
		log:   log,
		store: store,
		form:  workout.NewFormState(workout.Running),
	}
}

// LoadFromStore populates the in-memory log from the store. A read failure
// degrades to an empty log.
func (s *Session) LoadFromStore(ctx context.Context) {
	records, err := s.store.Load(ctx)
	if err != nil {
		s.log.Warn("loading workout log failed, starting empty", "error", err)
		return
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
	s.log.Info("workout log loaded", "records", len(records))
}

// SetPending records the last clicked map position, replacing any previous
// unsubmitted one.
func (s *Session) SetPending(c workout.Coordinates) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &c
}

// Pending returns the current pending location, or nil when no click has
// been captured since the last submission.
func (s *Session) Pending() *workout.Coordinates {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return nil
	}
	c := *s.pending
	return &c
}

// SelectKind transitions the form state and returns the resulting view.
func (s *Session) SelectKind(k workout.Kind) workout.FormView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Select(k)
}

// FormView returns the current form visibility.
func (s *Session) FormView() workout.FormView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.View()
}

// Records returns a copy of the in-memory log.
func (s *Session) Records() []workout.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]workout.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Submit validates the submission against the pending location, constructs
// the typed record, appends it to the log, persists the full log and clears
// the pending location. On validation failure nothing is mutated. A save
// failure is logged and the record stays in memory for the session.
func (s *Session) Submit(ctx context.Context, sub Submission) (workout.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := workout.Input{
		Kind:           sub.Kind,
		DistanceKm:     sub.DistanceKm,
		DurationMin:    sub.DurationMin,
		Cadence:        sub.Cadence,
		ElevationGainM: sub.ElevationGainM,
		Location:       s.pending,
	}
	if err := workout.Validate(in); err != nil {
		return workout.Record{}, err
	}

	var record workout.Record
	switch sub.Kind {
	case workout.Running:
		record = workout.NewRunning(*s.pending, sub.DistanceKm, sub.DurationMin, sub.Cadence)
	case workout.Cycling:
		record = workout.NewCycling(*s.pending, sub.DistanceKm, sub.DurationMin, sub.ElevationGainM)
	}

	s.records = append(s.records, record)
	s.pending = nil

	if err := s.store.Save(ctx, s.records); err != nil {
		s.log.Error("persisting workout log failed, continuing in memory", "error", err)
	}

	return record, nil
}
