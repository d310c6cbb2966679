package ports

import "github.com/seatwise/auctioneer/pkg/domain"

// SystemLoader defines how the engine retrieves a bidding system.
// This allows the source (YAML file, memory, a document store) to be
// decoupled from the director.
type SystemLoader interface {
	// Load returns the complete system tree. The result is treated as
	// read-only for the lifetime of the engine.
	Load() (*domain.System, error)
}
