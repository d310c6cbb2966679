package ports

import (
	"context"
	"time"
)

// DealRecord is one completed bidding run: the deal, the resulting auction
// in compact notation, and the final contract.
type DealRecord struct {
	ID       string    `json:"id"`
	North    string    `json:"north"`
	South    string    `json:"south"`
	Dealer   string    `json:"dealer"`
	Auction  []string  `json:"auction"`
	Contract string    `json:"contract,omitempty"`
	BidAt    time.Time `json:"bid_at"`
}

// DealStore defines the interface for persisting completed auctions.
type DealStore interface {
	// Save persists a record under its deal ID.
	Save(ctx context.Context, record *DealRecord) error

	// Get retrieves the record for a deal ID.
	// Returns domain.ErrDealNotFound if the deal does not exist.
	Get(ctx context.Context, id string) (*DealRecord, error)

	// List returns all stored deal IDs.
	List(ctx context.Context) ([]string, error)
}
