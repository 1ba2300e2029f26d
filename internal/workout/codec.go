package workout

import (
	"encoding/json"
	"fmt"
	"time"
)

// entry is the persisted shape of one record. Derived fields (pace, speed)
// are deliberately absent — they are recomputed from distance and duration
// when the log is decoded, so a stored log can never disagree with its
// inputs.
type entry struct {
	Kind           Kind       `json:"kind"`
	Coordinates    [2]float64 `json:"coordinates"`
	DistanceKm     float64    `json:"distanceKm"`
	DurationMin    float64    `json:"durationMin"`
	ID             string     `json:"id"`
	CreatedAt      time.Time  `json:"createdAt"`
	Cadence        *float64   `json:"cadence,omitempty"`
	ElevationGainM *float64   `json:"elevationGainM,omitempty"`
}

// EncodeLog serializes records to the slot payload: a single JSON array.
func EncodeLog(records []Record) ([]byte, error) {
	entries := make([]entry, 0, len(records))
	for _, r := range records {
		e := entry{
			Kind:        r.Kind,
			Coordinates: [2]float64{r.Coords.Lat, r.Coords.Lng},
			DistanceKm:  r.DistanceKm,
			DurationMin: r.DurationMin,
			ID:          r.ID,
			CreatedAt:   r.CreatedAt,
		}
		switch r.Kind {
		case Running:
			cadence := r.Cadence
			e.Cadence = &cadence
		case Cycling:
			elevation := r.ElevationGainM
			e.ElevationGainM = &elevation
		}
		entries = append(entries, e)
	}
	return json.Marshal(entries)
}

// DecodeLog deserializes a slot payload back into typed records, preserving
// order, IDs and timestamps. Records are rebuilt through the normal
// construction path so derived fields are recomputed rather than trusted.
// Entries with an unrecognized kind are dropped, not an error — an old
// binary reading a newer log keeps whatever it understands.
func DecodeLog(payload []byte) ([]Record, error) {
	if len(payload) == 0 {
		return nil, nil
	}

	var entries []entry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, fmt.Errorf("decoding workout log: %w", err)
	}

	var records []Record
	for _, e := range entries {
		coords := Coordinates{Lat: e.Coordinates[0], Lng: e.Coordinates[1]}
		switch e.Kind {
		case Running:
			var cadence float64
			if e.Cadence != nil {
				cadence = *e.Cadence
			}
			records = append(records, restoreRunning(e.ID, coords, e.DistanceKm, e.DurationMin, cadence, e.CreatedAt))
		case Cycling:
			var elevation float64
			if e.ElevationGainM != nil {
				elevation = *e.ElevationGainM
			}
			records = append(records, restoreCycling(e.ID, coords, e.DistanceKm, e.DurationMin, elevation, e.CreatedAt))
		}
	}
	return records, nil
}
