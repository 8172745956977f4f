// Package valuations owns the authoritative player pool and the single
// recompute entry point the draft and keeper layers invoke.
package valuations

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/roto-auction-service/internal/breakout"
	"github.com/preston-bernstein/roto-auction-service/internal/config"
	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
	"github.com/preston-bernstein/roto-auction-service/internal/logging"
	"github.com/preston-bernstein/roto-auction-service/internal/metrics"
	"github.com/preston-bernstein/roto-auction-service/internal/store"
	"github.com/preston-bernstein/roto-auction-service/internal/valuation"
)

// KeeperSource supplies the current linked keeper assignments.
type KeeperSource interface {
	Assignments() []players.KeeperAssignment
}

// Service coordinates valuation runs over the in-memory pool. Runs are
// serialized: the pipeline assumes exclusive access to the pool for the
// duration of a run.
type Service struct {
	mu      sync.Mutex
	store   *store.MemoryStore
	cfg     config.League
	keepers KeeperSource
	logger  *slog.Logger
	metrics *metrics.Recorder

	hitters  []players.Projection
	pitchers []players.Projection

	inflation valuation.InflationResult
	warnings  []valuation.Warning
	lastRun   time.Time
}

// NewService constructs the valuation service around a shared store.
func NewService(st *store.MemoryStore, cfg config.League, keepers KeeperSource, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:     st,
		cfg:       cfg,
		keepers:   keepers,
		logger:    logger,
		metrics:   recorder,
		inflation: valuation.InflationResult{Rate: 1.0, TotalBudget: cfg.TotalBudget()},
	}
}

// ReplaceSide swaps in a freshly loaded projection side and revalues the
// pool. A half-loaded pool (only one side uploaded so far) is a normal
// state, not an error: the run is deferred until both sides exist.
func (s *Service) ReplaceSide(side players.Type, pool []players.Projection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch side {
	case players.TypeHitter:
		s.hitters = pool
	case players.TypePitcher:
		s.pitchers = pool
	}

	err := s.recomputeLocked()
	var insufficient *valuation.InsufficientDataError
	if errors.As(err, &insufficient) {
		logging.Info(s.logger, "valuation deferred until both sides are loaded",
			slog.String("missing", insufficient.Side))
		return nil
	}
	return err
}

// Recompute re-runs the full pipeline over the current pool. Invoked after
// any keeper-set change.
func (s *Service) Recompute() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recomputeLocked()
}

func (s *Service) recomputeLocked() error {
	pool := make([]players.Projection, 0, len(s.hitters)+len(s.pitchers))
	pool = append(pool, s.hitters...)
	pool = append(pool, s.pitchers...)

	var keepers []players.KeeperAssignment
	if s.keepers != nil {
		keepers = s.keepers.Assignments()
	}

	start := time.Now()
	result, err := valuation.Run(pool, keepers, s.cfg)
	s.metrics.RecordValuationRun(time.Since(start), len(pool), err)
	if err != nil {
		logging.Error(s.logger, "valuation run failed", err, slog.Int(logging.FieldPool, len(pool)))
		return err
	}

	breakout.Annotate(result.Players)
	s.store.Replace(result.Players)
	s.inflation = result.Inflation
	s.warnings = result.Warnings
	s.lastRun = time.Now()

	logging.Info(s.logger, "valuation run complete",
		slog.Int(logging.FieldPool, len(pool)),
		slog.Float64(logging.FieldInflation, result.Inflation.Rate),
		slog.Int(logging.FieldCount, len(result.Warnings)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
	return nil
}

// Players returns the latest valued pool in run order.
func (s *Service) Players() []players.Valued {
	return s.store.List()
}

// Player returns a single valued player.
func (s *Service) Player(id string) (players.Valued, bool) {
	return s.store.Get(id)
}

// PoolSize returns the valued pool size.
func (s *Service) PoolSize() int {
	return s.store.Len()
}

// Inflation returns the latest inflation breakdown.
func (s *Service) Inflation() valuation.InflationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflation
}

// Warnings returns the latest run's warnings.
func (s *Service) Warnings() []valuation.Warning {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]valuation.Warning(nil), s.warnings...)
}

// LastRun reports when the pool was last valued; zero if never.
func (s *Service) LastRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun
}
