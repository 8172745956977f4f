// Package draft runs the live auction ledger: recording picks, undoing
// them, and persisting the ledger across restarts.
package draft

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/roto-auction-service/internal/config"
	domaindraft "github.com/preston-bernstein/roto-auction-service/internal/domain/draft"
	"github.com/preston-bernstein/roto-auction-service/internal/logging"
	"github.com/preston-bernstein/roto-auction-service/internal/metrics"
	"github.com/preston-bernstein/roto-auction-service/internal/snapshots"
	"github.com/preston-bernstein/roto-auction-service/internal/store"
	"github.com/preston-bernstein/roto-auction-service/internal/valuation"
)

// TeamDirectory exposes the league's teams. Team pointers are shared;
// the draft service only mutates BudgetSpent and DraftPicks, under its
// own lock.
type TeamDirectory interface {
	Teams() []*domaindraft.Team
	Team(id string) (*domaindraft.Team, bool)
}

// InflationSource reports the current inflation state so each saved
// ledger records the rate it was drafted under.
type InflationSource interface {
	Inflation() valuation.InflationResult
}

// Service owns the auction ledger.
type Service struct {
	mu        sync.Mutex
	state     domaindraft.State
	store     *store.MemoryStore
	teams     TeamDirectory
	inflation InflationSource
	writer    *snapshots.Writer
	snaps     *snapshots.FSStore
	cfg       config.League
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// NewService constructs the draft service. writer and snaps may be nil
// when persistence is disabled.
func NewService(st *store.MemoryStore, teams TeamDirectory, inflation InflationSource, writer *snapshots.Writer, snaps *snapshots.FSStore, cfg config.League, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:     st,
		teams:     teams,
		inflation: inflation,
		writer:    writer,
		snaps:     snaps,
		cfg:       cfg,
		logger:    logger,
		metrics:   recorder,
	}
}

// Start opens the auction. Starting an already active draft is an error;
// use Reset first to throw away the ledger.
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.IsActive {
		return fmt.Errorf("draft already active with %d picks", s.state.PickCount())
	}
	s.state = domaindraft.State{
		IsActive:      true,
		InflationRate: s.currentRate(),
	}
	logging.Info(s.logger, "draft started", slog.Float64(logging.FieldInflation, s.state.InflationRate))
	return nil
}

// Record logs one auction purchase. Values are frozen at pick time; a
// pick never triggers a revaluation of the remaining pool.
func (s *Service) Record(playerID, teamID string, price int) (domaindraft.Pick, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsActive {
		return domaindraft.Pick{}, fmt.Errorf("no active draft")
	}
	if price < 1 {
		return domaindraft.Pick{}, fmt.Errorf("price must be at least $1, got %d", price)
	}
	player, ok := s.store.Get(playerID)
	if !ok {
		return domaindraft.Pick{}, fmt.Errorf("unknown player %q", playerID)
	}
	if player.Drafted {
		return domaindraft.Pick{}, fmt.Errorf("%s already drafted by %s", player.Name, player.DraftTeamID)
	}
	if player.IsKeeper {
		return domaindraft.Pick{}, fmt.Errorf("%s is a keeper on %s and cannot be auctioned", player.Name, player.KeeperTeamID)
	}
	team, ok := s.teams.Team(teamID)
	if !ok {
		return domaindraft.Pick{}, fmt.Errorf("unknown team %q", teamID)
	}
	if remaining := team.RemainingBudget(s.cfg.BudgetPerTeam); price > remaining {
		return domaindraft.Pick{}, fmt.Errorf("team %s has $%d remaining, cannot bid $%d", team.Name, remaining, price)
	}

	pick := domaindraft.Pick{
		ID:             uuid.NewString(),
		PlayerID:       player.ID,
		PlayerName:     player.Name,
		TeamID:         team.ID,
		Price:          price,
		Positions:      player.Positions,
		DollarValue:    player.DollarValue,
		InflatedValue:  player.InflatedValue,
		ValueDiff:      round1(player.InflatedValue - float64(price)),
		Classification: player.Range.Classify(float64(price)),
		Timestamp:      time.Now().UTC(),
	}

	s.store.MarkDrafted(player.ID, team.ID, price)
	s.state.Picks = append(s.state.Picks, pick)
	team.BudgetSpent += price
	team.DraftPicks = append(team.DraftPicks, player.ID)
	s.metrics.RecordDraftPick(string(pick.Classification))

	logging.Info(s.logger, "pick recorded",
		slog.String(logging.FieldPlayer, pick.PlayerName),
		slog.String(logging.FieldTeam, team.ID),
		slog.Int("price", price),
		slog.String("band", string(pick.Classification)))
	return pick, nil
}

// Undo removes a recorded pick and returns the player to the pool.
func (s *Service) Undo(pickID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.state.Picks {
		if p.ID == pickID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("unknown pick %q", pickID)
	}
	pick := s.state.Picks[idx]
	s.state.Picks = append(s.state.Picks[:idx], s.state.Picks[idx+1:]...)
	s.store.ClearDrafted(pick.PlayerID)

	if team, ok := s.teams.Team(pick.TeamID); ok {
		team.BudgetSpent -= pick.Price
		for i, id := range team.DraftPicks {
			if id == pick.PlayerID {
				team.DraftPicks = append(team.DraftPicks[:i], team.DraftPicks[i+1:]...)
				break
			}
		}
	}

	logging.Info(s.logger, "pick undone",
		slog.String(logging.FieldPick, pickID),
		slog.String(logging.FieldPlayer, pick.PlayerName))
	return nil
}

// Active reports whether a draft is currently running.
func (s *Service) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsActive
}

// State returns a copy of the ledger.
func (s *Service) State() domaindraft.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyStateLocked()
}

// Alerts returns the most recent picks, newest first.
func (s *Service) Alerts(n int) []domaindraft.Pick {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 || n > len(s.state.Picks) {
		n = len(s.state.Picks)
	}
	out := make([]domaindraft.Pick, 0, n)
	for i := len(s.state.Picks) - 1; i >= len(s.state.Picks)-n; i-- {
		out = append(out, s.state.Picks[i])
	}
	return out
}

// Reset discards the ledger, frees every drafted player, and clears
// team auction spend. Keepers are untouched.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domaindraft.State{}
	s.store.ResetDraft()
	for _, t := range s.teams.Teams() {
		t.BudgetSpent = 0
		t.DraftPicks = nil
	}
	logging.Info(s.logger, "draft reset")
}

// Save persists the ledger to disk.
func (s *Service) Save() error {
	s.mu.Lock()
	state := s.copyStateLocked()
	s.mu.Unlock()
	if s.writer == nil {
		return fmt.Errorf("draft persistence disabled")
	}
	return s.writer.WriteDraftSnapshot(state)
}

// Load restores a saved ledger, replaying each pick against the current
// pool and rebuilding team budgets. Picks referencing players missing
// from the pool are kept in the ledger but cannot mark the pool.
func (s *Service) Load() (int, error) {
	if s.snaps == nil {
		return 0, fmt.Errorf("draft persistence disabled")
	}
	payload, err := s.snaps.LoadDraft()
	if err != nil {
		return 0, fmt.Errorf("load draft snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.ResetDraft()
	for _, t := range s.teams.Teams() {
		t.BudgetSpent = 0
		t.DraftPicks = nil
	}

	s.state = payload.State
	for _, pick := range s.state.Picks {
		if !s.store.MarkDrafted(pick.PlayerID, pick.TeamID, pick.Price) {
			logging.Warn(s.logger, "saved pick references a player missing from the pool",
				slog.String(logging.FieldPlayer, pick.PlayerName))
		}
		if team, ok := s.teams.Team(pick.TeamID); ok {
			team.BudgetSpent += pick.Price
			team.DraftPicks = append(team.DraftPicks, pick.PlayerID)
		}
	}

	logging.Info(s.logger, "draft restored",
		slog.Int(logging.FieldCount, s.state.PickCount()),
		slog.Time("savedAt", payload.SavedAt))
	return s.state.PickCount(), nil
}

func (s *Service) copyStateLocked() domaindraft.State {
	out := s.state
	out.Picks = append([]domaindraft.Pick(nil), s.state.Picks...)
	return out
}

func (s *Service) currentRate() float64 {
	if s.inflation == nil {
		return 1.0
	}
	return s.inflation.Inflation().Rate
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
