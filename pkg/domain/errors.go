package domain

import "errors"

// Invariant violations. These indicate a defect in the caller or in the
// bidding system itself; a run that hits one must abort.
var (
	// ErrAuctionComplete is returned when a bid is added to a finished auction.
	ErrAuctionComplete = errors.New("auction is already complete")

	// ErrNoSuccessor is returned when a successor is requested above 7NT.
	ErrNoSuccessor = errors.New("no bid above 7NT")

	// ErrNoSignoff is returned when a convention must sign off in notrump
	// but the bid space is exhausted.
	ErrNoSignoff = errors.New("no notrump signoff available")
)

// Configuration errors. These are raised at load or on first use and are
// never retried.
var (
	// ErrMissingCriteria is returned for a bid node with no criteria; a
	// guardless node would always match and short-circuit the system.
	ErrMissingCriteria = errors.New("bid node has no criteria")

	// ErrUnknownCriterion is returned when a system references a criterion
	// name that was never registered.
	ErrUnknownCriterion = errors.New("unknown criterion")

	// ErrDuplicateCriterion is returned when a criterion name is registered twice.
	ErrDuplicateCriterion = errors.New("criterion already registered")

	// ErrUnknownConvention is returned when a system references a hand-off
	// convention that was never registered.
	ErrUnknownConvention = errors.New("unknown convention")

	// ErrDuplicateConvention is returned when a convention name is registered twice.
	ErrDuplicateConvention = errors.New("convention already registered")
)

// Input errors.
var (
	// ErrInvalidBid is returned for malformed bid notation.
	ErrInvalidBid = errors.New("invalid bid")

	// ErrInvalidHand is returned for malformed hand notation.
	ErrInvalidHand = errors.New("invalid hand")

	// ErrDealNotFound is returned when a deal ID cannot be found in a store.
	ErrDealNotFound = errors.New("deal not found")
)
