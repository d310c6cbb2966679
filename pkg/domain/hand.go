package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Ranks lists the card ranks in descending order. Rank symbols outside this
// set ("x" as a small-card placeholder) are legal in a holding and carry no
// evaluation weight.
const Ranks = "AKQJT98765432"

// Holding is one suit's cards in a hand, highest first.
type Holding string

// Length returns the number of cards in the holding.
func (h Holding) Length() int {
	return len(h)
}

// Count returns how many cards of the given rank the holding contains.
func (h Holding) Count(rank byte) int {
	return strings.Count(string(h), string(rank))
}

// Hand is one player's thirteen cards as four holdings in suit order
// (spades, hearts, diamonds, clubs). Immutable once dealt; the engine only
// reads it.
type Hand [NumSuits]Holding

// ParseHand parses whitespace-separated holding notation, spades first:
// "AQ3 AK3 J2 AQ652".
func ParseHand(s string) (Hand, error) {
	fields := strings.Fields(s)
	if len(fields) != NumSuits {
		return Hand{}, fmt.Errorf("%w: %q: want %d holdings, got %d", ErrInvalidHand, s, NumSuits, len(fields))
	}
	var hand Hand
	for i, f := range fields {
		hand[i] = Holding(f)
	}
	return hand, nil
}

// Suit returns the holding for a suit strain.
func (h Hand) Suit(s Strain) Holding {
	return h[s.SuitIndex()]
}

// Lengths returns the suit lengths in hand order.
func (h Hand) Lengths() [NumSuits]int {
	var out [NumSuits]int
	for i, holding := range h {
		out[i] = holding.Length()
	}
	return out
}

// SortedLengths returns the suit lengths longest first, the hand's shape
// irrespective of suit assignment.
func (h Hand) SortedLengths() [NumSuits]int {
	out := h.Lengths()
	sort.Sort(sort.Reverse(sort.IntSlice(out[:])))
	return out
}

// String renders the hand in the notation accepted by ParseHand.
func (h Hand) String() string {
	parts := make([]string, NumSuits)
	for i, holding := range h {
		parts[i] = string(holding)
	}
	return strings.Join(parts, " ")
}

// Deal holds the hands under the partnership's control, keyed by seat. The
// engine models only two active bidders; absent seats always pass.
type Deal map[Seat]Hand
