package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/seatwise/auctioneer/pkg/domain"
	"github.com/seatwise/auctioneer/pkg/ports"
)

// Store implements ports.DealStore using an in-memory map.
type Store struct {
	mu    sync.RWMutex
	deals map[string]*ports.DealRecord
}

// NewStore creates an empty in-memory deal store.
func NewStore() *Store {
	return &Store{deals: make(map[string]*ports.DealRecord)}
}

// Save implements ports.DealStore.
func (s *Store) Save(_ context.Context, record *ports.DealRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *record
	s.deals[record.ID] = &clone
	return nil
}

// Get implements ports.DealStore.
func (s *Store) Get(_ context.Context, id string) (*ports.DealRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.deals[id]
	if !ok {
		return nil, domain.ErrDealNotFound
	}
	clone := *record
	return &clone, nil
}

// List implements ports.DealStore.
func (s *Store) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.deals))
	for id := range s.deals {
		ids = append(ids, id)
	}
	sort.Strings(ids) // Deterministic order
	return ids, nil
}
