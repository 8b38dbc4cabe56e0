package domain

import "time"

// Phase is the elapsed time of one named step of a run.
type Phase struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration_ns"`
}

// Timings collects phase durations for a single run.
// It is owned by the run that builds it and handed back by value.
type Timings struct {
	Phases []Phase       `json:"phases"`
	Total  time.Duration `json:"total_ns"`
	start  time.Time
}

// StartTimings begins a new measurement at the current time.
func StartTimings() Timings {
	return Timings{start: time.Now()}
}

// Mark records a phase that began at since and ends now.
func (t *Timings) Mark(name string, since time.Time) time.Duration {
	d := time.Since(since)
	t.Phases = append(t.Phases, Phase{Name: name, Duration: d})
	return d
}

// Finish sets Total to the time elapsed since StartTimings.
func (t *Timings) Finish() {
	if t.start.IsZero() {
		return
	}
	t.Total = time.Since(t.start)
}

// Phase returns the duration recorded for name and whether it exists.
func (t Timings) Phase(name string) (time.Duration, bool) {
	for _, p := range t.Phases {
		if p.Name == name {
			return p.Duration, true
		}
	}
	return 0, false
}
