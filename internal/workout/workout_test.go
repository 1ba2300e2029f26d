package workout

import (
	"testing"
	"time"
)

// TestRunningPace verifies the derived pace formula: durationMin / (distanceKm / 60).
func TestRunningPace(t *testing.T) {
	r := NewRunning(Coordinates{Lat: 51.5, Lng: -0.1}, 5, 25, 160)

	if r.Kind != Running {
		t.Errorf("kind = %q, want %q", r.Kind, Running)
	}
	if want := 25 / (5.0 / 60); r.Pace != want {
		t.Errorf("pace = %v, want %v", r.Pace, want)
	}
	if r.Pace != 300 {
		t.Errorf("pace = %v, want 300", r.Pace)
	}
	if r.ID == "" {
		t.Error("expected a generated ID")
	}
	if r.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

// TestCyclingSpeed verifies the derived speed formula: distanceKm / durationMin.
func TestCyclingSpeed(t *testing.T) {
	c := NewCycling(Coordinates{Lat: 48.2, Lng: 16.4}, 27, 95, 523)

	if c.Kind != Cycling {
		t.Errorf("kind = %q, want %q", c.Kind, Cycling)
	}
	if want := 27.0 / 95; c.Speed != want {
		t.Errorf("speed = %v, want %v", c.Speed, want)
	}
	if c.ElevationGainM != 523 {
		t.Errorf("elevation = %v, want 523", c.ElevationGainM)
	}
}

// TestDescription verifies the human label derived from kind and creation date.
func TestDescription(t *testing.T) {
	r := restoreRunning("id-1", Coordinates{}, 5, 25, 160,
		time.Date(2024, time.April, 14, 10, 0, 0, 0, time.UTC))
	if got := r.Description(); got != "Running on April 14" {
		t.Errorf("description = %q, want %q", got, "Running on April 14")
	}

	c := restoreCycling("id-2", Coordinates{}, 27, 95, 523,
		time.Date(2024, time.December, 3, 10, 0, 0, 0, time.UTC))
	if got := c.Description(); got != "Cycling on December 3" {
		t.Errorf("description = %q, want %q", got, "Cycling on December 3")
	}
}

// TestDistinctIDs verifies consecutive constructions get distinct IDs.
func TestDistinctIDs(t *testing.T) {
	a := NewRunning(Coordinates{}, 1, 1, 1)
	b := NewRunning(Coordinates{}, 1, 1, 1)
	if a.ID == b.ID {
		t.Errorf("two records share ID %q", a.ID)
	}
}
