// Package runtime implements the bid-tree director: the greedy, first-match
// walk of a bidding system's decision tree that produces an auction.
package runtime

import (
	"fmt"
	"log/slog"

	"github.com/seatwise/auctioneer/internal/logging"
	"github.com/seatwise/auctioneer/pkg/convention"
	"github.com/seatwise/auctioneer/pkg/criteria"
	"github.com/seatwise/auctioneer/pkg/domain"
)

// Director walks a bidding system's decision tree for one partnership. It
// holds only read-only configuration; each Bid call owns a private auction,
// so a single Director may serve concurrent runs.
type Director struct {
	system      *domain.System
	criteria    *criteria.Registry
	conventions *convention.Registry
	dealer      domain.Seat
	logger      *slog.Logger
}

// Option configures a Director.
type Option func(*Director)

// WithDealer sets the seat that opens the auction (default North).
func WithDealer(dealer domain.Seat) Option {
	return func(d *Director) {
		d.dealer = dealer
	}
}

// WithLogger sets a structured logger for bid tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Director) {
		d.logger = logger
	}
}

// NewDirector creates a director over a loaded system and registries.
func NewDirector(system *domain.System, crit *criteria.Registry, conv *convention.Registry, opts ...Option) *Director {
	d := &Director{
		system:      system,
		criteria:    crit,
		conventions: conv,
		dealer:      domain.North,
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Bid runs the auction for a deal and returns the completed auction.
//
// Each step considers the current node's candidate bids in declared order
// and commits the first whose criteria all hold, followed by the opposing
// side's forced pass; declaration order is a deliberate priority, not a
// filter. A node naming a hand-off convention surrenders control to it
// immediately after the commit. Tree exhaustion, or no candidate matching,
// forces the remaining auction to pass out. The walk never backtracks.
func (d *Director) Bid(deal domain.Deal) (*domain.Auction, error) {
	auction := domain.NewAuction(d.dealer)
	nodes := d.system.Openings

	for {
		if len(nodes) == 0 {
			auction.AllPass()
			break
		}

		selected, err := d.selectNode(nodes, deal, auction)
		if err != nil {
			return nil, err
		}
		if selected == nil {
			auction.AllPass()
			break
		}

		d.logger.Debug("bid selected",
			"seat", auction.NextToBid().String(),
			"call", selected.Call.String(),
			"handoff", selected.Handoff)

		if err := auction.AddBid(selected.Call); err != nil {
			return nil, err
		}
		// The opposing side never competes in this scope.
		if err := auction.AddBid(domain.Pass); err != nil {
			return nil, err
		}

		if selected.Handoff != "" {
			if err := d.conventions.Run(selected.Handoff, deal, auction); err != nil {
				return nil, fmt.Errorf("handoff %q: %w", selected.Handoff, err)
			}
		}
		if auction.Completed() {
			break
		}
		nodes = selected.Responses
	}

	return auction, nil
}

// selectNode returns the first candidate whose criteria hold for the hand
// of the seat on turn, or nil when none match.
func (d *Director) selectNode(nodes []domain.BidNode, deal domain.Deal, auction *domain.Auction) (*domain.BidNode, error) {
	hand := deal[auction.NextToBid()]
	for i := range nodes {
		node := &nodes[i]
		if len(node.Criteria) == 0 {
			return nil, fmt.Errorf("bid %s: %w", node.Call, domain.ErrMissingCriteria)
		}
		ok, err := d.criteria.Check(node.Criteria, hand, auction, criteria.All)
		if err != nil {
			return nil, fmt.Errorf("bid %s: %w", node.Call, err)
		}
		if ok {
			return node, nil
		}
	}
	return nil, nil
}
