package store

import (
	"sync"

	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
)

// MemoryStore keeps a thread-safe snapshot of valued players in memory,
// preserving the valuation run's ordering. Draft marks survive pool
// replacement so a revaluation mid-draft does not forget who is off the
// board.
type MemoryStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]players.Valued
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]players.Valued)}
}

// List returns a copy of the current players in run order.
func (s *MemoryStore) List() []players.Valued {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]players.Valued, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.byID[id])
	}
	return result
}

// Get retrieves a player by projection ID.
func (s *MemoryStore) Get(id string) (players.Valued, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	return p, ok
}

// Len returns the pool size.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Replace swaps in a new valuation snapshot, carrying draft marks over for
// players that survive the replacement.
func (s *MemoryStore) Replace(pool []players.Valued) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := make([]string, 0, len(pool))
	byID := make(map[string]players.Valued, len(pool))
	for _, p := range pool {
		if prev, ok := s.byID[p.ID]; ok && prev.Drafted {
			p.Drafted = true
			p.DraftTeamID = prev.DraftTeamID
			p.DraftPrice = prev.DraftPrice
		}
		order = append(order, p.ID)
		byID[p.ID] = p
	}
	s.order = order
	s.byID = byID
}

// MarkDrafted flags a player as purchased. Returns false if the ID is
// unknown.
func (s *MemoryStore) MarkDrafted(id, teamID string, price int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return false
	}
	p.Drafted = true
	p.DraftTeamID = teamID
	p.DraftPrice = price
	s.byID[id] = p
	return true
}

// ClearDrafted removes a player's draft mark. Returns false if the ID is
// unknown.
func (s *MemoryStore) ClearDrafted(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return false
	}
	p.Drafted = false
	p.DraftTeamID = ""
	p.DraftPrice = 0
	s.byID[id] = p
	return true
}

// ResetDraft clears every draft mark.
func (s *MemoryStore) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, p := range s.byID {
		if !p.Drafted {
			continue
		}
		p.Drafted = false
		p.DraftTeamID = ""
		p.DraftPrice = 0
		s.byID[id] = p
	}
}
