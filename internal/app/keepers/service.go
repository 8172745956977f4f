// Package keepers manages league teams and their keeper assignments,
// including CSV import and fuzzy linking of keeper names to pool players.
package keepers

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/preston-bernstein/roto-auction-service/internal/config"
	"github.com/preston-bernstein/roto-auction-service/internal/domain/draft"
	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
	"github.com/preston-bernstein/roto-auction-service/internal/logging"
	"github.com/preston-bernstein/roto-auction-service/internal/store"
)

// Revaluer is invoked after any keeper mutation so dollar values pick up
// the new inflation state.
type Revaluer interface {
	Recompute() error
}

// ImportReport summarizes a keeper CSV import.
type ImportReport struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors,omitempty"`
}

// LinkReport summarizes a linking pass over all keepers.
type LinkReport struct {
	Linked    int      `json:"linked"`
	Unmatched []string `json:"unmatched,omitempty"`
}

// Service owns the league's teams and keeper sets.
type Service struct {
	mu      sync.RWMutex
	league  *draft.League
	cfg     config.League
	store   *store.MemoryStore
	logger  *slog.Logger
	revalue Revaluer
}

// NewService builds the service with a default league: cfg.Teams teams
// named "Team N", the first flagged as the user's.
func NewService(cfg config.League, st *store.MemoryStore, logger *slog.Logger) *Service {
	league := &draft.League{}
	for i := 1; i <= cfg.Teams; i++ {
		league.Teams = append(league.Teams, &draft.Team{
			ID:     fmt.Sprintf("team_%d", i),
			Name:   fmt.Sprintf("Team %d", i),
			IsUser: i == 1,
		})
	}
	return &Service{league: league, cfg: cfg, store: st, logger: logger}
}

// SetRevaluer wires the valuation recompute hook. Set once during server
// wiring, before any requests are served.
func (s *Service) SetRevaluer(r Revaluer) {
	s.revalue = r
}

// Teams returns all teams in league order.
func (s *Service) Teams() []*draft.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*draft.Team, len(s.league.Teams))
	copy(out, s.league.Teams)
	return out
}

// Team returns a team by ID.
func (s *Service) Team(id string) (*draft.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t := s.league.Team(id)
	return t, t != nil
}

// Rename updates a team's display name.
func (s *Service) Rename(id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.league.Team(id)
	if t == nil {
		return fmt.Errorf("unknown team %q", id)
	}
	t.Name = name
	return nil
}

// AddKeeper appends one keeper to a team and revalues.
func (s *Service) AddKeeper(teamID string, k draft.Keeper) error {
	s.mu.Lock()
	t := s.league.Team(teamID)
	if t == nil {
		s.mu.Unlock()
		return fmt.Errorf("unknown team %q", teamID)
	}
	if len(t.Keepers) >= s.cfg.MaxKeepers {
		s.mu.Unlock()
		return fmt.Errorf("team %q already holds %d keepers", teamID, s.cfg.MaxKeepers)
	}
	s.linkKeeper(&k)
	t.Keepers = append(t.Keepers, k)
	s.mu.Unlock()
	return s.recompute()
}

// RemoveKeeper drops a keeper by player name (case-insensitive) and
// revalues. Not found is an error so typos surface.
func (s *Service) RemoveKeeper(teamID, playerName string) error {
	s.mu.Lock()
	t := s.league.Team(teamID)
	if t == nil {
		s.mu.Unlock()
		return fmt.Errorf("unknown team %q", teamID)
	}
	idx := -1
	for i, k := range t.Keepers {
		if strings.EqualFold(k.PlayerName, playerName) {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("no keeper %q on team %q", playerName, teamID)
	}
	t.Keepers = append(t.Keepers[:idx], t.Keepers[idx+1:]...)
	s.mu.Unlock()
	return s.recompute()
}

// SetKeepers replaces a team's entire keeper set and revalues.
func (s *Service) SetKeepers(teamID string, ks []draft.Keeper) error {
	s.mu.Lock()
	t := s.league.Team(teamID)
	if t == nil {
		s.mu.Unlock()
		return fmt.Errorf("unknown team %q", teamID)
	}
	if len(ks) > s.cfg.MaxKeepers {
		s.mu.Unlock()
		return fmt.Errorf("team %q: %d keepers exceeds the limit of %d", teamID, len(ks), s.cfg.MaxKeepers)
	}
	for i := range ks {
		s.linkKeeper(&ks[i])
	}
	t.Keepers = ks
	s.mu.Unlock()
	return s.recompute()
}

// ImportCSV loads keepers from rows of team_name,player_name,salary. Bad
// rows are reported, not fatal; any successfully parsed rows are applied.
func (s *Service) ImportCSV(r io.Reader) (ImportReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var report ImportReport
	line := 0
	s.mu.Lock()
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}
		if line == 1 && isHeaderRow(row) {
			continue
		}
		if len(row) < 3 {
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: expected team_name,player_name,salary", line))
			continue
		}
		team := s.teamByName(strings.TrimSpace(row[0]))
		if team == nil {
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: unknown team %q", line, row[0]))
			continue
		}
		salary, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(row[2], "$")))
		if err != nil || salary < 1 {
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: bad salary %q", line, row[2]))
			continue
		}
		if len(team.Keepers) >= s.cfg.MaxKeepers {
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: team %q keeper limit reached", line, team.Name))
			continue
		}
		k := draft.Keeper{PlayerName: strings.TrimSpace(row[1]), Salary: salary}
		s.linkKeeper(&k)
		team.Keepers = append(team.Keepers, k)
		report.Imported++
	}
	s.mu.Unlock()

	if report.Imported > 0 {
		if err := s.recompute(); err != nil {
			return report, err
		}
	}
	logging.Info(s.logger, "keeper import complete",
		slog.Int("imported", report.Imported), slog.Int("rejected", len(report.Errors)))
	return report, nil
}

// Link re-resolves every keeper name against the current pool. Useful
// after projections are replaced.
func (s *Service) Link() LinkReport {
	s.mu.Lock()
	var report LinkReport
	for _, t := range s.league.Teams {
		for i := range t.Keepers {
			s.linkKeeper(&t.Keepers[i])
			if t.Keepers[i].PlayerID != "" {
				report.Linked++
			} else {
				report.Unmatched = append(report.Unmatched, t.Keepers[i].PlayerName)
			}
		}
	}
	s.mu.Unlock()
	if report.Linked > 0 {
		_ = s.recompute()
	}
	return report
}

// Assignments returns the linked keepers only, in league order. Keepers
// that never matched a pool player carry no ID and cannot affect values.
func (s *Service) Assignments() []players.KeeperAssignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []players.KeeperAssignment
	for _, t := range s.league.Teams {
		for _, k := range t.Keepers {
			if k.PlayerID == "" {
				continue
			}
			out = append(out, players.KeeperAssignment{
				TeamID:   t.ID,
				PlayerID: k.PlayerID,
				Salary:   k.Salary,
			})
		}
	}
	return out
}

// TotalKeeperCount reports the number of keepers across all teams.
func (s *Service) TotalKeeperCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.league.TotalKeeperCount()
}

func (s *Service) recompute() error {
	if s.revalue == nil {
		return nil
	}
	return s.revalue.Recompute()
}

func (s *Service) teamByName(name string) *draft.Team {
	for _, t := range s.league.Teams {
		if strings.EqualFold(t.Name, name) {
			return t
		}
	}
	return nil
}

// linkKeeper resolves a keeper name to a pool player. Exact normalized
// match wins; otherwise the closest fuzzy match within a conservative
// edit distance. Caller holds the write lock.
func (s *Service) linkKeeper(k *draft.Keeper) {
	target := normalizeName(k.PlayerName)
	if target == "" {
		return
	}

	bestID := ""
	bestDist := maxLinkDistance + 1
	var bestPositions []string
	for _, p := range s.store.List() {
		cand := normalizeName(p.Name)
		if cand == target {
			k.PlayerID = p.ID
			k.Positions = p.Positions
			return
		}
		d := fuzzy.LevenshteinDistance(target, cand)
		if d < bestDist {
			bestDist = d
			bestID = p.ID
			bestPositions = p.Positions
		}
	}
	if bestID != "" && bestDist <= maxLinkDistance {
		k.PlayerID = bestID
		k.Positions = bestPositions
		return
	}
	k.PlayerID = ""
	logging.Warn(s.logger, "keeper name did not match any pool player",
		slog.String(logging.FieldPlayer, k.PlayerName))
}

// maxLinkDistance bounds fuzzy keeper matching; beyond two edits the
// match is more likely a different player than a typo.
const maxLinkDistance = 2

// normalizeName lowercases, strips punctuation, and token-sorts so
// "Acuna Jr., Ronald" and "ronald acuna jr" compare equal.
func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		case r == '.' || r == ',' || r == '-' || r == '\'':
			b.WriteRune(' ')
		}
	}
	tokens := strings.Fields(b.String())
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func isHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(row[0]))
	return first == "team_name" || first == "team" || first == "team name"
}
