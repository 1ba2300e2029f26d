package server

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/claude/mapfit/internal/workout"
)

// recordResponse is the API shape of one workout record. Unlike the
// persisted layout it carries the derived metric and the marker label.
type recordResponse struct {
	ID             string       `json:"id"`
	Kind           workout.Kind `json:"kind"`
	Coordinates    [2]float64   `json:"coordinates"`
	DistanceKm     float64      `json:"distanceKm"`
	DurationMin    float64      `json:"durationMin"`
	CreatedAt      time.Time    `json:"createdAt"`
	Description    string       `json:"description"`
	Cadence        *float64     `json:"cadence,omitempty"`
	Pace           *float64     `json:"pace,omitempty"`
	ElevationGainM *float64     `json:"elevationGainM,omitempty"`
	Speed          *float64     `json:"speed,omitempty"`
}

func toResponse(r workout.Record) recordResponse {
	resp := recordResponse{
		ID:          r.ID,
		Kind:        r.Kind,
		Coordinates: [2]float64{r.Coords.Lat, r.Coords.Lng},
		DistanceKm:  r.DistanceKm,
		DurationMin: r.DurationMin,
		CreatedAt:   r.CreatedAt,
		Description: r.Description(),
	}
	switch r.Kind {
	case workout.Running:
		cadence, pace := r.Cadence, r.Pace
		resp.Cadence, resp.Pace = &cadence, &pace
	case workout.Cycling:
		elevation, speed := r.ElevationGainM, r.Speed
		resp.ElevationGainM, resp.Speed = &elevation, &speed
	}
	return resp
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	records := s.session.Records()
	out := make([]recordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toResponse(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

type submitRequest struct {
	Type          workout.Kind `json:"type"`
	Distance      float64      `json:"distance"`
	Duration      float64      `json:"duration"`
	Cadence       float64      `json:"cadence"`
	ElevationGain float64      `json:"elevationGain"`
}

func (s *Server) handleSubmitWorkout(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	record, err := s.session.Submit(r.Context(), Submission{
		Kind:           req.Type,
		DistanceKm:     req.Distance,
		DurationMin:    req.Duration,
		Cadence:        req.Cadence,
		ElevationGainM: req.ElevationGain,
	})
	if err != nil {
		if isValidationError(err) {
			// The reason text is surfaced to the user verbatim.
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		s.log.Error("submit failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(record))
}

type locationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (s *Server) handleSetLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if math.IsNaN(req.Lat) || math.IsNaN(req.Lng) ||
		req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "coordinates out of range"})
		return
	}

	s.session.SetPending(workout.Coordinates{Lat: req.Lat, Lng: req.Lng})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFormView(w http.ResponseWriter, r *http.Request) {
	if t := r.URL.Query().Get("type"); t != "" {
		writeJSON(w, http.StatusOK, s.session.SelectKind(workout.Kind(t)))
		return
	}
	writeJSON(w, http.StatusOK, s.session.FormView())
}

// whereAmIResponse is the initial map view: the geolocated position when the
// lookup succeeded, the configured default center otherwise.
type whereAmIResponse struct {
	Located bool    `json:"located"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Zoom    int     `json:"zoom"`
}

func (s *Server) handleWhereAmI(w http.ResponseWriter, r *http.Request) {
	resp := whereAmIResponse{
		Lat:  s.mapView.DefaultLat,
		Lng:  s.mapView.DefaultLng,
		Zoom: s.mapView.Zoom,
	}

	if s.locator != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()
		coords, err := s.locator.Lookup(ctx)
		if err != nil {
			s.log.Warn("geolocation failed, using default center", "error", err)
		} else {
			resp.Located = true
			resp.Lat = coords.Lat
			resp.Lng = coords.Lng
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// isValidationError reports whether err is one of the validator's rejection
// reasons (as opposed to an internal failure).
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		workout.ErrInvalidDistanceDuration,
		workout.ErrInvalidCadence,
		workout.ErrInvalidElevation,
		workout.ErrNoLocation,
		workout.ErrUnknownKind,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
