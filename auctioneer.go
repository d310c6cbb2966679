package auctioneer

import (
	"fmt"
	"log/slog"

	"github.com/seatwise/auctioneer/internal/logging"
	"github.com/seatwise/auctioneer/internal/runtime"
	"github.com/seatwise/auctioneer/internal/validator"
	"github.com/seatwise/auctioneer/pkg/adapters/file"
	"github.com/seatwise/auctioneer/pkg/convention"
	"github.com/seatwise/auctioneer/pkg/criteria"
	"github.com/seatwise/auctioneer/pkg/domain"
	"github.com/seatwise/auctioneer/pkg/ports"
)

// Engine bids deals under a loaded system. It is safe for concurrent use:
// all configuration is fixed at construction and each run owns its auction.
type Engine struct {
	system      *domain.System
	criteria    *criteria.Registry
	conventions *convention.Registry
	dealer      domain.Seat
	logger      *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLoader overrides the default file loader with a custom source.
func WithLoader(loader ports.SystemLoader) Option {
	return func(e *Engine) error {
		system, err := loader.Load()
		if err != nil {
			return err
		}
		e.system = system
		return nil
	}
}

// WithCriteria replaces the built-in criterion registry.
func WithCriteria(reg *criteria.Registry) Option {
	return func(e *Engine) error {
		e.criteria = reg
		return nil
	}
}

// WithConventions replaces the built-in convention registry.
func WithConventions(reg *convention.Registry) Option {
	return func(e *Engine) error {
		e.conventions = reg
		return nil
	}
}

// WithDealer sets the default opening seat (North when unset).
func WithDealer(dealer domain.Seat) Option {
	return func(e *Engine) error {
		e.dealer = dealer
		return nil
	}
}

// WithLogger sets a structured logger for bid tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// New loads a bidding system from a YAML file at systemPath, validates it
// against the registries, and returns an engine ready to bid. Pass an empty
// systemPath together with WithLoader to load from another source.
func New(systemPath string, opts ...Option) (*Engine, error) {
	engine := &Engine{
		criteria:    criteria.Builtin(),
		conventions: convention.Builtin(),
		dealer:      domain.North,
		logger:      logging.NewNop(),
	}
	if systemPath != "" {
		system, err := file.NewLoader(systemPath).Load()
		if err != nil {
			return nil, err
		}
		engine.system = system
	}
	for _, opt := range opts {
		if err := opt(engine); err != nil {
			return nil, err
		}
	}
	if engine.system == nil {
		return nil, fmt.Errorf("no bidding system: provide a path or WithLoader")
	}
	if err := validator.Validate(engine.system, engine.criteria, engine.conventions); err != nil {
		return nil, fmt.Errorf("system %q: %w", engine.system.Name, err)
	}
	return engine, nil
}

// System returns the loaded bidding system.
func (e *Engine) System() *domain.System {
	return e.system
}

// Bid parses the two hands and runs the auction from the configured dealer.
func (e *Engine) Bid(north, south string) (*domain.Auction, error) {
	return e.BidFrom(e.dealer, north, south)
}

// BidFrom runs the auction with an explicit dealer.
func (e *Engine) BidFrom(dealer domain.Seat, north, south string) (*domain.Auction, error) {
	n, err := domain.ParseHand(north)
	if err != nil {
		return nil, fmt.Errorf("north: %w", err)
	}
	s, err := domain.ParseHand(south)
	if err != nil {
		return nil, fmt.Errorf("south: %w", err)
	}
	return e.BidDeal(domain.Deal{domain.North: n, domain.South: s}, dealer)
}

// BidDeal runs the auction for an already-parsed deal.
func (e *Engine) BidDeal(deal domain.Deal, dealer domain.Seat) (*domain.Auction, error) {
	director := runtime.NewDirector(e.system, e.criteria, e.conventions,
		runtime.WithDealer(dealer),
		runtime.WithLogger(e.logger))
	return director.Bid(deal)
}
