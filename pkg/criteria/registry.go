// Package criteria implements the rule-evaluation engine: a registry of
// named predicate variants, each deciding whether a bid applies to a hand
// in the current auction context.
package criteria

import (
	"fmt"
	"sync"

	"github.com/seatwise/auctioneer/pkg/domain"
)

// Mode selects how a list of criteria is reduced to a single verdict.
type Mode int

const (
	// All requires every criterion to hold (logical AND, the default).
	All Mode = iota
	// Any requires at least one criterion to hold (logical OR).
	Any
)

// Context carries the inputs a criterion is evaluated against. Registry is
// included so combinator criteria can evaluate their children.
type Context struct {
	Hand     domain.Hand
	Auction  *domain.Auction
	Registry *Registry
}

// Criterion is a named, stateless predicate over (rule parameters, hand,
// auction). Evaluation must be pure: safe to re-run repeatedly for
// speculative tree exploration.
type Criterion interface {
	Name() string
	Applies(ctx Context, ref domain.CriterionRef) (bool, error)
}

// Registry maps criterion names to their implementations. It is populated
// once at startup and read-only thereafter; concurrent bidding runs may
// share it.
type Registry struct {
	mu       sync.RWMutex
	criteria map[string]Criterion
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{criteria: make(map[string]Criterion)}
}

// Register adds a criterion. Registering a name twice is a configuration
// error and fails with ErrDuplicateCriterion.
func (r *Registry) Register(c Criterion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.criteria[c.Name()]; exists {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateCriterion, c.Name())
	}
	r.criteria[c.Name()] = c
	return nil
}

// Has reports whether a criterion name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.criteria[name]
	return ok
}

// Check evaluates every reference against (hand, auction) and reduces with
// the given mode. An unknown criterion name fails with ErrUnknownCriterion.
func (r *Registry) Check(refs []domain.CriterionRef, hand domain.Hand, auction *domain.Auction, mode Mode) (bool, error) {
	ctx := Context{Hand: hand, Auction: auction, Registry: r}
	for _, ref := range refs {
		ok, err := r.checkOne(ctx, ref)
		if err != nil {
			return false, err
		}
		if mode == All && !ok {
			return false, nil
		}
		if mode == Any && ok {
			return true, nil
		}
	}
	return mode == All, nil
}

func (r *Registry) checkOne(ctx Context, ref domain.CriterionRef) (bool, error) {
	r.mu.RLock()
	criterion, ok := r.criteria[ref.Name]
	r.mu.RUnlock()
	if !ok {
		return false, fmt.Errorf("%w: %q", domain.ErrUnknownCriterion, ref.Name)
	}
	return criterion.Applies(ctx, ref)
}
