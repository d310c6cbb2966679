package eval

import "github.com/seatwise/auctioneer/pkg/domain"

// Pattern is a suit-length constraint over a hand. The intended grammar:
//
//	"5,3,3,2"        the 5332 pattern in any suit order
//	"5,3"            exactly 5 of any suit and 3 of another
//	"5+,3-"          a suit of 5 or more and another of 3 or fewer
//	"5-6,3,3,1-2"    effectively 5332 or 6331
//	"5-6,S3,C3,1-2"  as above, but exactly 3 spades and 3 clubs
//	"CD5,4,2,2"      a 5-card club or diamond suit, the rest 422
type Pattern string

// Match reports whether the hand satisfies the pattern.
//
// The pattern grammar is not implemented yet; every hand matches. Criteria
// that need a concrete shape test (balanced) do not go through Match.
func (p Pattern) Match(hand domain.Hand) bool {
	return true
}
