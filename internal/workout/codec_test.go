package workout

import (
	"strings"
	"testing"
	"time"
)

// TestLogRoundTrip verifies that encode→decode preserves identity and input
// fields for both kinds, with derived fields recomputed to equal values.
func TestLogRoundTrip(t *testing.T) {
	run := NewRunning(Coordinates{Lat: 51.5, Lng: -0.1}, 5, 25, 160)
	ride := NewCycling(Coordinates{Lat: 48.2, Lng: 16.4}, 27, 95, -40)

	payload, err := EncodeLog([]Record{run, ride})
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}

	got, err := DecodeLog(payload)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("decoded %d records, want 2", len(got))
	}

	if got[0].ID != run.ID {
		t.Errorf("id = %q, want %q", got[0].ID, run.ID)
	}
	if got[0].Coords != run.Coords {
		t.Errorf("coords = %v, want %v", got[0].Coords, run.Coords)
	}
	if got[0].Cadence != 160 {
		t.Errorf("cadence = %v, want 160", got[0].Cadence)
	}
	if got[0].Pace != run.Pace {
		t.Errorf("recomputed pace = %v, want %v", got[0].Pace, run.Pace)
	}
	if !got[0].CreatedAt.Equal(run.CreatedAt) {
		t.Errorf("createdAt = %v, want %v", got[0].CreatedAt, run.CreatedAt)
	}

	if got[1].ElevationGainM != -40 {
		t.Errorf("elevation = %v, want -40", got[1].ElevationGainM)
	}
	if got[1].Speed != ride.Speed {
		t.Errorf("recomputed speed = %v, want %v", got[1].Speed, ride.Speed)
	}
}

// TestDecodeDropsUnknownKind verifies that entries with an unrecognized kind
// are silently filtered out rather than failing the whole load.
func TestDecodeDropsUnknownKind(t *testing.T) {
	payload := `[
		{"kind":"cycling","coordinates":[48.2,16.4],"distanceKm":27,"durationMin":95,"id":"c-1","createdAt":"2024-04-14T10:00:00Z","elevationGainM":523},
		{"kind":"swimming","coordinates":[0,0],"distanceKm":1,"durationMin":30,"id":"s-1","createdAt":"2024-04-14T10:00:00Z"}
	]`

	got, err := DecodeLog([]byte(payload))
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("decoded %d records, want 1", len(got))
	}
	if got[0].ID != "c-1" || got[0].Kind != Cycling {
		t.Errorf("kept record = %q/%q, want c-1/cycling", got[0].ID, got[0].Kind)
	}
}

// TestDecodeEmpty verifies that an empty or missing payload is an empty log,
// not an error.
func TestDecodeEmpty(t *testing.T) {
	for _, payload := range [][]byte{nil, {}, []byte("[]")} {
		got, err := DecodeLog(payload)
		if err != nil {
			t.Fatalf("decode(%q) error: %v", payload, err)
		}
		if len(got) != 0 {
			t.Errorf("decode(%q) = %d records, want 0", payload, len(got))
		}
	}
}

// TestDecodeGarbage verifies that a corrupt payload reports an error instead
// of returning a partial log.
func TestDecodeGarbage(t *testing.T) {
	if _, err := DecodeLog([]byte("{not json")); err == nil {
		t.Error("expected error for corrupt payload")
	}
}

// TestEncodeWireShape verifies the persisted layout: coordinates as a
// [lat,lng] array, kind-specific field present only for its kind, and no
// derived fields stored.
func TestEncodeWireShape(t *testing.T) {
	run := restoreRunning("r-1", Coordinates{Lat: 51.5, Lng: -0.1}, 5, 25, 160,
		time.Date(2024, time.April, 14, 10, 0, 0, 0, time.UTC))

	payload, err := EncodeLog([]Record{run})
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}

	s := string(payload)
	if !strings.Contains(s, `"coordinates":[51.5,-0.1]`) {
		t.Errorf("payload missing [lat,lng] array: %s", s)
	}
	if !strings.Contains(s, `"cadence":160`) {
		t.Errorf("payload missing cadence: %s", s)
	}
	if strings.Contains(s, "elevationGainM") {
		t.Errorf("running entry carries elevation field: %s", s)
	}
	if strings.Contains(s, "pace") || strings.Contains(s, "speed") {
		t.Errorf("derived fields must not be persisted: %s", s)
	}
}
