// Package eval provides the fixed rank-weighted hand evaluators used as
// strength proxies by the bidding engine, and the shape-pattern matcher.
package eval

import "github.com/seatwise/auctioneer/pkg/domain"

// Func evaluates a hand to a point count.
type Func func(domain.Hand) int

// New builds an evaluator from per-rank weights aligned to domain.Ranks
// (ace first). Ranks beyond the given weights count zero.
//
//	New(4, 3, 2, 1) // high-card points
//	New(2, 1)       // "Italian" controls
func New(weights ...int) Func {
	return func(hand domain.Hand) int {
		points := 0
		for i, w := range weights {
			rank := domain.Ranks[i]
			for _, holding := range hand {
				points += holding.Count(rank) * w
			}
		}
		return points
	}
}

// HCP is the high-card-point evaluator: Ace=4, King=3, Queen=2, Jack=1.
var HCP = New(4, 3, 2, 1)

// Controls is the control evaluator: Ace=2, King=1.
var Controls = New(2, 1)
