package workout

// KindStats summarizes the records of one kind. AvgPace is populated for
// running, AvgSpeed for cycling; both are straight means over records, not
// distance-weighted.
type KindStats struct {
	Count            int     `json:"count"`
	TotalDistanceKm  float64 `json:"totalDistanceKm"`
	TotalDurationMin float64 `json:"totalDurationMin"`
	AvgPace          float64 `json:"avgPace,omitempty"`
	AvgSpeed         float64 `json:"avgSpeed,omitempty"`
}

// Stats is the per-kind summary of a workout log.
type Stats struct {
	Running KindStats `json:"running"`
	Cycling KindStats `json:"cycling"`
}

// ComputeStats aggregates a log into per-kind totals and averages.
func ComputeStats(records []Record) Stats {
	var s Stats
	var paceSum, speedSum float64

	for _, r := range records {
		switch r.Kind {
		case Running:
			s.Running.Count++
			s.Running.TotalDistanceKm += r.DistanceKm
			s.Running.TotalDurationMin += r.DurationMin
			paceSum += r.Pace
		case Cycling:
			s.Cycling.Count++
			s.Cycling.TotalDistanceKm += r.DistanceKm
			s.Cycling.TotalDurationMin += r.DurationMin
			speedSum += r.Speed
		}
	}

	if s.Running.Count > 0 {
		s.Running.AvgPace = paceSum / float64(s.Running.Count)
	}
	if s.Cycling.Count > 0 {
		s.Cycling.AvgSpeed = speedSum / float64(s.Cycling.Count)
	}
	return s
}
