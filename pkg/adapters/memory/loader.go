// Package memory implements the engine's ports with in-memory backends,
// primarily for tests and embedding.
package memory

import (
	"fmt"

	"github.com/seatwise/auctioneer/pkg/domain"
)

// Loader implements ports.SystemLoader over an in-memory system.
type Loader struct {
	system *domain.System
}

// NewLoader creates a loader that serves the given system.
func NewLoader(system *domain.System) *Loader {
	return &Loader{system: system}
}

// NewFromOpenings creates a loader from opening nodes directly. This
// handles system construction automatically, improving DX for tests.
func NewFromOpenings(name string, openings ...domain.BidNode) *Loader {
	return &Loader{system: &domain.System{Name: name, Openings: openings}}
}

// Load implements ports.SystemLoader.
func (l *Loader) Load() (*domain.System, error) {
	if l.system == nil {
		return nil, fmt.Errorf("memory loader has no system")
	}
	return l.system, nil
}
