package workout

import (
	"errors"
	"math"
	"testing"
)

func validRunning() Input {
	return Input{
		Kind:        Running,
		DistanceKm:  5,
		DurationMin: 25,
		Cadence:     160,
		Location:    &Coordinates{Lat: 51.5, Lng: -0.1},
	}
}

func validCycling() Input {
	return Input{
		Kind:           Cycling,
		DistanceKm:     27,
		DurationMin:    95,
		ElevationGainM: 523,
		Location:       &Coordinates{Lat: 48.2, Lng: 16.4},
	}
}

// TestValidateAccepts verifies well-formed inputs for both kinds pass.
func TestValidateAccepts(t *testing.T) {
	if err := Validate(validRunning()); err != nil {
		t.Errorf("running: unexpected error: %v", err)
	}
	if err := Validate(validCycling()); err != nil {
		t.Errorf("cycling: unexpected error: %v", err)
	}
}

// TestValidateDistance verifies every non-positive or non-finite distance is
// rejected with the distance/duration reason.
func TestValidateDistance(t *testing.T) {
	for _, distance := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		in := validRunning()
		in.DistanceKm = distance
		if err := Validate(in); !errors.Is(err, ErrInvalidDistanceDuration) {
			t.Errorf("distance %v: err = %v, want %v", distance, err, ErrInvalidDistanceDuration)
		}
	}
}

// TestValidateDuration verifies duration gets the same treatment as distance.
func TestValidateDuration(t *testing.T) {
	for _, duration := range []float64{0, -10, math.NaN(), math.Inf(-1)} {
		in := validCycling()
		in.DurationMin = duration
		if err := Validate(in); !errors.Is(err, ErrInvalidDistanceDuration) {
			t.Errorf("duration %v: err = %v, want %v", duration, err, ErrInvalidDistanceDuration)
		}
	}
}

// TestValidateCadence verifies cadence is the running-specific rule: it must
// be strictly positive and finite, and is ignored for cycling.
func TestValidateCadence(t *testing.T) {
	for _, cadence := range []float64{0, -160, math.NaN()} {
		in := validRunning()
		in.Cadence = cadence
		if err := Validate(in); !errors.Is(err, ErrInvalidCadence) {
			t.Errorf("cadence %v: err = %v, want %v", cadence, err, ErrInvalidCadence)
		}
	}

	// Cycling never looks at cadence.
	in := validCycling()
	in.Cadence = math.NaN()
	if err := Validate(in); err != nil {
		t.Errorf("cycling with garbage cadence: unexpected error: %v", err)
	}
}

// TestValidateElevation verifies elevation gain must be finite but may be
// negative (a net-descent ride).
func TestValidateElevation(t *testing.T) {
	in := validCycling()
	in.ElevationGainM = -120
	if err := Validate(in); err != nil {
		t.Errorf("negative elevation: unexpected error: %v", err)
	}

	for _, elevation := range []float64{math.NaN(), math.Inf(1)} {
		in := validCycling()
		in.ElevationGainM = elevation
		if err := Validate(in); !errors.Is(err, ErrInvalidElevation) {
			t.Errorf("elevation %v: err = %v, want %v", elevation, err, ErrInvalidElevation)
		}
	}
}

// TestValidateNoLocation verifies submissions without a captured map click
// are rejected even when all numeric fields are valid.
func TestValidateNoLocation(t *testing.T) {
	in := validRunning()
	in.Location = nil
	if err := Validate(in); !errors.Is(err, ErrNoLocation) {
		t.Errorf("err = %v, want %v", err, ErrNoLocation)
	}
}

// TestValidateUnknownKind verifies an unrecognized type is rejected outright.
func TestValidateUnknownKind(t *testing.T) {
	in := validRunning()
	in.Kind = "swimming"
	if err := Validate(in); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want %v", err, ErrUnknownKind)
	}
}

// TestValidateOrder verifies rules short-circuit in declared order: a submission
// failing both the numeric rules and the location rule reports the numeric
// failure.
func TestValidateOrder(t *testing.T) {
	in := Input{Kind: Running, DistanceKm: -1, DurationMin: 25, Cadence: -1, Location: nil}
	if err := Validate(in); !errors.Is(err, ErrInvalidDistanceDuration) {
		t.Errorf("err = %v, want %v", err, ErrInvalidDistanceDuration)
	}
}
