package domain

// Auction tracks one bidding run: the insertion-ordered call history, whose
// turn it is, and termination. It is owned by a single run and mutated
// sequentially by a single caller; it is never shared or persisted.
type Auction struct {
	dealer Seat
	bids   []Bid
}

// NewAuction creates an empty auction with the given dealer to call first.
func NewAuction(dealer Seat) *Auction {
	return &Auction{dealer: dealer}
}

// Dealer returns the seat that called first.
func (a *Auction) Dealer() Seat {
	return a.dealer
}

// NextToBid returns the seat whose turn it is: the dealer advanced by the
// number of calls made so far.
func (a *Auction) NextToBid() Seat {
	return Seat((int(a.dealer) + len(a.bids)) % NumSeats)
}

// AddBid appends a call and advances the turn. It fails with
// ErrAuctionComplete once the auction has finished.
func (a *Auction) AddBid(b Bid) error {
	if a.Completed() {
		return ErrAuctionComplete
	}
	a.bids = append(a.bids, b)
	return nil
}

// AllPass completes the auction by forcing every remaining seat to pass.
// It is a no-op on a completed auction.
func (a *Auction) AllPass() {
	for !a.Completed() {
		a.bids = append(a.bids, Pass)
	}
}

// HasOpened reports whether any seat has made a real (non-pass) bid.
func (a *Auction) HasOpened() bool {
	for _, b := range a.bids {
		if !b.IsPass() {
			return true
		}
	}
	return false
}

// Completed reports whether the auction is over: four initial passes, or
// three consecutive passes after an opening bid.
func (a *Auction) Completed() bool {
	if !a.HasOpened() {
		return len(a.bids) == NumSeats
	}
	if len(a.bids) < NumSeats {
		return false
	}
	for _, b := range a.bids[len(a.bids)-3:] {
		if !b.IsPass() {
			return false
		}
	}
	return true
}

// HighestBid returns the most recent real bid, scanning backward. The
// second return is false if nobody has bid yet.
func (a *Auction) HighestBid() (Bid, bool) {
	for i := len(a.bids) - 1; i >= 0; i-- {
		if !a.bids[i].IsPass() {
			return a.bids[i], true
		}
	}
	return Bid{}, false
}

// FinalContract returns the contract if the auction has completed. The
// second return is false while the auction is still open or if it passed
// out unopened.
func (a *Auction) FinalContract() (Bid, bool) {
	if !a.Completed() {
		return Bid{}, false
	}
	return a.HighestBid()
}

// Bids returns a copy of the call history in insertion order.
func (a *Auction) Bids() []Bid {
	out := make([]Bid, len(a.bids))
	copy(out, a.bids)
	return out
}

// Len returns the number of calls made so far.
func (a *Auction) Len() int {
	return len(a.bids)
}

// BidAt returns the call at position i in the history.
func (a *Auction) BidAt(i int) Bid {
	return a.bids[i]
}
