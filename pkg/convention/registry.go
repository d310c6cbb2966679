// Package convention implements the hand-off engine: named multi-round
// sub-protocols that seize control of the auction from the bid tree and
// run to completion with their own signaling state.
package convention

import (
	"fmt"
	"sync"

	"github.com/seatwise/auctioneer/pkg/domain"
)

// Convention is a named multi-round procedure over the two hands and the
// live auction. Run mutates the auction directly and returns once the
// convention has terminated; per-run signaling state is private to the
// invocation and discarded afterwards.
type Convention interface {
	Name() string
	Run(deal domain.Deal, auction *domain.Auction) error
}

// Registry maps convention names to their implementations. Like the
// criteria registry it is populated once at startup and read-only after.
type Registry struct {
	mu          sync.RWMutex
	conventions map[string]Convention
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{conventions: make(map[string]Convention)}
}

// Builtin returns a registry with the standard conventions registered.
func Builtin() *Registry {
	r := NewRegistry()
	if err := r.Register(Confi{}); err != nil {
		panic(err)
	}
	return r
}

// Register adds a convention. Registering a name twice is a configuration
// error and fails with ErrDuplicateConvention.
func (r *Registry) Register(c Convention) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.conventions[c.Name()]; exists {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateConvention, c.Name())
	}
	r.conventions[c.Name()] = c
	return nil
}

// Has reports whether a convention name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.conventions[name]
	return ok
}

// Run looks up a convention by name and runs it to completion. An unknown
// name fails with ErrUnknownConvention.
func (r *Registry) Run(name string, deal domain.Deal, auction *domain.Auction) error {
	r.mu.RLock()
	convention, ok := r.conventions[name]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownConvention, name)
	}
	return convention.Run(deal, auction)
}
