// Package autosave periodically flushes the live draft ledger to disk so
// a crash mid-auction loses at most one interval of picks.
package autosave

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/roto-auction-service/internal/logging"
	"github.com/preston-bernstein/roto-auction-service/internal/metrics"
)

const defaultInterval = 30 * time.Second

// LedgerSaver persists the current draft ledger.
type LedgerSaver interface {
	Save() error
}

// ActiveChecker reports whether a draft is running. Idle sessions are
// skipped so the archive is not churned between drafts.
type ActiveChecker interface {
	Active() bool
}

// Saver flushes the draft ledger on an interval.
type Saver struct {
	ledger   LedgerSaver
	active   ActiveChecker
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the autosave loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// Healthy reports whether the loop is not failing repeatedly. A saver
// that has never run is healthy; there may simply be no draft yet.
func (s Status) Healthy() bool {
	return s.ConsecutiveFailures < 3
}

// New constructs a Saver with sane defaults.
func New(ledger LedgerSaver, active ActiveChecker, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Saver {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Saver{
		ledger:   ledger,
		active:   active,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins the save loop until the context is cancelled or Stop is called.
func (s *Saver) Start(ctx context.Context) {
	s.startMu.Lock()
	if s.started {
		s.startMu.Unlock()
		return
	}
	s.started = true
	s.startMu.Unlock()

	s.ticker = time.NewTicker(s.interval)

	go func() {
		logging.Info(s.logger, "draft autosave started", slog.Int64(logging.FieldDurationMS, s.interval.Milliseconds()))
		for {
			select {
			case <-ctx.Done():
				s.stopTicker()
				logging.Info(s.logger, "draft autosave stopped")
				return
			case <-s.done:
				s.stopTicker()
				logging.Info(s.logger, "draft autosave stopped")
				return
			case <-s.ticker.C:
				s.saveOnce()
			}
		}
	}()
}

// Stop halts the save loop and flushes one final snapshot if a draft is
// active.
func (s *Saver) Stop(ctx context.Context) error {
	_ = ctx
	s.stopOnce.Do(func() {
		close(s.done)
		s.stopTicker()
		if s.active != nil && s.active.Active() {
			s.saveOnce()
		}
	})
	return nil
}

func (s *Saver) saveOnce() {
	if s.active != nil && !s.active.Active() {
		return
	}
	start := time.Now()
	s.recordAttempt(start)
	err := s.ledger.Save()
	s.metrics.RecordAutosave(time.Since(start), err)
	if err != nil {
		logging.Error(s.logger, "draft autosave failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		s.recordFailure(err, start)
		return
	}
	s.recordSuccess(start)
}

func (s *Saver) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
}

func (s *Saver) recordAttempt(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastAttempt = at
}

func (s *Saver) recordSuccess(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastSuccess = at
}

func (s *Saver) recordFailure(err error, at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures++
	if err != nil {
		s.status.LastError = err.Error()
	}
	s.status.LastAttempt = at
}

// Status returns a snapshot of the saver's recent health.
func (s *Saver) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}
