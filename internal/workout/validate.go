package workout

import (
	"errors"
	"math"
)

// Validation failures carry the exact reason text surfaced to the user.
var (
	ErrInvalidDistanceDuration = errors.New("invalid distance/duration")
	ErrInvalidCadence          = errors.New("invalid cadence")
	ErrInvalidElevation        = errors.New("invalid elevation")
	ErrNoLocation              = errors.New("no location selected")
	ErrUnknownKind             = errors.New("unknown workout type")
)

// Input carries the raw form values for one submission, plus the pending
// map location captured by the last click (nil when no click happened).
type Input struct {
	Kind           Kind
	DistanceKm     float64
	DurationMin    float64
	Cadence        float64
	ElevationGainM float64
	Location       *Coordinates
}

// Validate checks an Input against the type-dependent rules, in order,
// stopping at the first failure. Cadence is the running-specific field and
// elevation gain the cycling-specific one; elevation may be negative
// (net descent) but must be finite.
func Validate(in Input) error {
	if !positiveFinite(in.DistanceKm) || !positiveFinite(in.DurationMin) {
		return ErrInvalidDistanceDuration
	}

	switch in.Kind {
	case Running:
		if !positiveFinite(in.Cadence) {
			return ErrInvalidCadence
		}
	case Cycling:
		if !finite(in.ElevationGainM) {
			return ErrInvalidElevation
		}
	default:
		return ErrUnknownKind
	}

	if in.Location == nil {
		return ErrNoLocation
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positiveFinite(v float64) bool {
	return finite(v) && v > 0
}
