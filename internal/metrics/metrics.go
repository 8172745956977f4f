package metrics

import (
	"sync"
	"time"
)

// RunStats summarizes recorded valuation runs.
type RunStats struct {
	Runs         int
	Errors       int
	LastDuration time.Duration
	LastPoolSize int
}

// AutosaveStats summarizes recorded draft autosave cycles.
type AutosaveStats struct {
	Cycles int
	Errors int
}

// Recorder captures lightweight, in-memory metrics about valuation runs and
// draft activity. It is intentionally simple so it can be swapped for a real
// backend later; when OTel instruments are attached it forwards to them.
type Recorder struct {
	mu       sync.Mutex
	runs     RunStats
	autosave AutosaveStats
	picks    map[string]int
	otel     *otelInstruments
}

// NewRecorder returns a Recorder without telemetry export.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		picks: make(map[string]int),
		otel:  otel,
	}
}

// RecordValuationRun counts a pipeline run with its duration and pool size.
func (r *Recorder) RecordValuationRun(duration time.Duration, poolSize int, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.runs.Runs++
	r.runs.LastDuration = duration
	r.runs.LastPoolSize = poolSize
	if err != nil {
		r.runs.Errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordValuationRun(duration, poolSize, err)
	}
}

// RecordDraftPick counts a recorded pick by classification band.
func (r *Recorder) RecordDraftPick(band string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.picks[band]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDraftPick(band)
	}
}

// RecordAutosave counts one autosave cycle.
func (r *Recorder) RecordAutosave(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.autosave.Cycles++
	if err != nil {
		r.autosave.Errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAutosave(duration, err)
	}
}

// RecordHTTPRequest forwards request telemetry to the exporter.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ValuationRuns returns a copy of the run counters.
func (r *Recorder) ValuationRuns() RunStats {
	if r == nil {
		return RunStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}

// DraftPicks returns the pick count recorded for a band.
func (r *Recorder) DraftPicks(band string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.picks[band]
}

// Autosaves returns a copy of the autosave counters.
func (r *Recorder) Autosaves() AutosaveStats {
	if r == nil {
		return AutosaveStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.autosave
}
