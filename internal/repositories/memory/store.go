package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/investment_club/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_club/internal/core/ports/repositories"
)

// clubStore keeps the club state in memory behind a single RW mutex.
type clubStore struct {
	mu    sync.RWMutex
	state *domain.ClubState
}

// NewClubStore takes ownership of initial. Callers must not keep references into it.
func NewClubStore(initial *domain.ClubState) portsrepo.ClubStore {
	if initial == nil {
		initial = &domain.ClubState{}
	}
	return &clubStore{state: initial}
}

var _ portsrepo.ClubStore = (*clubStore)(nil)

// Read runs fn under the read lock against the live state.
func (s *clubStore) Read(_ context.Context, fn func(*domain.ClubState) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.state)
}

// Update runs fn on a deep copy and swaps it in only if fn succeeds.
func (s *clubStore) Update(_ context.Context, fn func(*domain.ClubState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(next); err != nil {
		return err
	}
	next.Version = s.state.Version + 1
	s.state = next
	return nil
}

func (s *clubStore) Version(_ context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Version
}
