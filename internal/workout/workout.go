package workout

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind discriminates the two workout variants.
type Kind string

const (
	Running Kind = "running"
	Cycling Kind = "cycling"
)

// Valid reports whether k is a known workout kind.
func (k Kind) Valid() bool {
	return k == Running || k == Cycling
}

// Coordinates is a geographic point. On the wire it is a two-element
// [lat, lng] JSON array (Leaflet's latLng order).
type Coordinates struct {
	Lat float64
	Lng float64
}

// Record is one logged workout. Shared fields are set for every kind;
// Cadence/Pace are populated for running, ElevationGainM/Speed for cycling.
// Records are immutable after construction — derived fields are computed
// exactly once, from distance and duration, and never settable directly.
type Record struct {
	ID          string
	Kind        Kind
	Coords      Coordinates
	DistanceKm  float64
	DurationMin float64
	CreatedAt   time.Time

	// running only
	Cadence float64
	Pace    float64 // min per km-equivalent: durationMin / (distanceKm/60)

	// cycling only
	ElevationGainM float64
	Speed          float64 // km per min: distanceKm / durationMin
}

// NewRunning creates a running record with a fresh ID and timestamp.
// Inputs are assumed to have passed Validate.
func NewRunning(coords Coordinates, distanceKm, durationMin, cadence float64) Record {
	return restoreRunning(uuid.NewString(), coords, distanceKm, durationMin, cadence, time.Now())
}

// NewCycling creates a cycling record with a fresh ID and timestamp.
// Inputs are assumed to have passed Validate.
func NewCycling(coords Coordinates, distanceKm, durationMin, elevationGainM float64) Record {
	return restoreCycling(uuid.NewString(), coords, distanceKm, durationMin, elevationGainM, time.Now())
}

// restoreRunning rebuilds a running record with a known identity, recomputing
// the derived pace. Used by the decoder so round-tripped records go through
// the same construction path as fresh ones.
func restoreRunning(id string, coords Coordinates, distanceKm, durationMin, cadence float64, createdAt time.Time) Record {
	return Record{
		ID:          id,
		Kind:        Running,
		Coords:      coords,
		DistanceKm:  distanceKm,
		DurationMin: durationMin,
		CreatedAt:   createdAt,
		Cadence:     cadence,
		Pace:        durationMin / (distanceKm / 60),
	}
}

func restoreCycling(id string, coords Coordinates, distanceKm, durationMin, elevationGainM float64, createdAt time.Time) Record {
	return Record{
		ID:             id,
		Kind:           Cycling,
		Coords:         coords,
		DistanceKm:     distanceKm,
		DurationMin:    durationMin,
		CreatedAt:      createdAt,
		ElevationGainM: elevationGainM,
		Speed:          distanceKm / durationMin,
	}
}

// Description returns the human label shown on map markers and in the log
// list, e.g. "Running on April 14".
func (r Record) Description() string {
	var activity string
	switch r.Kind {
	case Running:
		activity = "Running"
	case Cycling:
		activity = "Cycling"
	default:
		activity = string(r.Kind)
	}
	return fmt.Sprintf("%s on %s %d", activity, r.CreatedAt.Month(), r.CreatedAt.Day())
}
