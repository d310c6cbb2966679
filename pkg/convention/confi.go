package convention

import (
	"github.com/seatwise/auctioneer/pkg/domain"
	"github.com/seatwise/auctioneer/pkg/eval"
)

// Confi is the CONFI slam-exploration convention. The asking bid demands a
// control count; the partnership then either signs off in notrump or hunts
// for a trump fit at the six level:
//
//  1. The opener reports controls by bidding steps over the ask.
//  2. The responder signs off in the cheapest notrump below ten combined
//     controls (counting the opener for at least the six-control floor).
//  3. On the opener's first turn back, an under-floor hand corrects to the
//     cheapest notrump; the responder then re-checks against an eleven bar.
//  4. An opener with a six-card suit jumps straight to six of it.
//  5. Both seats show suits up the line (four-card suits first, then
//     five-card, then same-level three-card over a partner-shown suit),
//     jumping to the six level as soon as a 4-4, 5-3 or 3-5 fit appears.
//  6. With nothing left to show, the cheapest notrump is the sign-off.
type Confi struct{}

// Name implements Convention.
func (Confi) Name() string { return "confi" }

// Run implements Convention. It takes over the auction at the seat that is
// next to bid (the opener) and runs until a pass-out or a six-level
// contract ends the auction.
func (Confi) Run(deal domain.Deal, auction *domain.Auction) error {
	run := &confiRun{
		deal:       deal,
		auction:    auction,
		opener:     auction.NextToBid(),
		firstRebid: true,
	}
	return run.execute()
}

// The opener is assumed to hold at least controlFloor controls; the ask
// promises the rest of the combined minimums below.
const (
	controlFloor      = 6
	combinedMinimum   = 10
	correctionMinimum = 11
)

// confiPhase names the states of the convention's machine.
type confiPhase int

const (
	phaseControlStep confiPhase = iota
	phaseSufficiency
	phaseMinimumCorrection
	phaseLongSuit
	phaseFitSearch
	phaseSuitCascade
	phaseSignoff
	phaseDone
)

// signalState carries what each seat has publicly claimed about its suit
// lengths, indexed by seat then by suit in hand order. It lives only for
// the duration of one convention run.
type signalState struct {
	denied4 [domain.NumSeats][domain.NumSuits]bool
	showed4 [domain.NumSeats][domain.NumSuits]bool
	showed5 [domain.NumSeats][domain.NumSuits]bool
	showed3 [domain.NumSeats][domain.NumSuits]bool
}

type confiRun struct {
	deal    domain.Deal
	auction *domain.Auction

	opener         domain.Seat
	openerControls int
	firstRebid     bool
	sig            signalState
}

func (r *confiRun) execute() error {
	phase := phaseControlStep
	for phase != phaseDone {
		var err error
		phase, err = r.step(phase)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *confiRun) step(phase confiPhase) (confiPhase, error) {
	switch phase {
	case phaseControlStep:
		return r.controlStep()
	case phaseSufficiency:
		return r.sufficiencyCheck()
	case phaseMinimumCorrection:
		return r.minimumCorrection()
	case phaseLongSuit:
		return r.longSuitCheck()
	case phaseFitSearch:
		return r.fitSearch()
	case phaseSuitCascade:
		return r.suitCascade()
	case phaseSignoff:
		return r.signoff()
	}
	return phaseDone, nil
}

// controlStep has the opener answer the ask: one step per control above
// the floor, plus one.
func (r *confiRun) controlStep() (confiPhase, error) {
	r.openerControls = eval.Controls(r.deal[r.opener])
	steps := max(r.openerControls-controlFloor, 0) + 1
	ask := r.auction.BidAt(r.auction.Len() - 2)
	reply, err := ask.Advance(steps)
	if err != nil {
		return phaseDone, err
	}
	if err := r.bidAndForcePass(reply); err != nil {
		return phaseDone, err
	}
	return phaseSufficiency, nil
}

// sufficiencyCheck has the responder add their controls to the opener's
// claim and sign off below the combined minimum.
func (r *confiRun) sufficiencyCheck() (confiPhase, error) {
	responder := r.auction.NextToBid()
	responderControls := eval.Controls(r.deal[responder])
	claimed := max(r.openerControls, controlFloor)
	if responderControls+claimed >= combinedMinimum {
		return phaseMinimumCorrection, nil
	}
	// Sign off at the cheapest notrump at or above the control reply.
	signoff, err := cheapestNoTrumpFrom(r.auction.BidAt(r.auction.Len() - 2))
	if err != nil {
		return phaseDone, err
	}
	if err := r.auction.AddBid(signoff); err != nil {
		return phaseDone, err
	}
	r.auction.AllPass()
	return phaseDone, nil
}

// minimumCorrection runs once, on the opener's first turn after the control
// step. An opener who reported below the floor retreats to the cheapest
// notrump, and the responder re-checks the combined count against the
// higher bar an under-floor opener implies.
func (r *confiRun) minimumCorrection() (confiPhase, error) {
	if r.auction.NextToBid() != r.opener || !r.firstRebid {
		return phaseLongSuit, nil
	}
	r.firstRebid = false
	if r.openerControls >= controlFloor {
		return phaseLongSuit, nil
	}
	highest, _ := r.auction.HighestBid()
	if highest.Strain == domain.NoTrump {
		r.auction.AllPass()
		return phaseDone, nil
	}
	signoff, err := cheapestNoTrumpFrom(highest)
	if err != nil {
		return phaseDone, err
	}
	if err := r.bidAndForcePass(signoff); err != nil {
		return phaseDone, err
	}

	// The responder passes it out unless an undisclosed extra control
	// still adds up to slam interest.
	responder := r.auction.NextToBid()
	responderControls := eval.Controls(r.deal[responder])
	claimed := max(r.openerControls, controlFloor)
	if responderControls+claimed < correctionMinimum {
		r.auction.AllPass()
		return phaseDone, nil
	}
	return phaseLongSuit, nil
}

// longSuitCheck short-circuits the fit search: an opener with a six-card
// suit places the contract in it directly.
func (r *confiRun) longSuitCheck() (confiPhase, error) {
	seat := r.auction.NextToBid()
	if seat != r.opener {
		return phaseFitSearch, nil
	}
	hand := r.deal[seat]
	for i, strain := range domain.SuitOrder {
		if hand[i].Length() >= 6 {
			return r.jumpToSix(strain)
		}
	}
	return phaseFitSearch, nil
}

// fitSearch checks the partner's shown suits against this hand, in fixed
// priority: 4-4, then 5-3, then 3-5. Any match ends the auction at the six
// level.
func (r *confiRun) fitSearch() (confiPhase, error) {
	seat := r.auction.NextToBid()
	partner := seat.Partner()
	hand := r.deal[seat]

	fits := []struct {
		shown  *[domain.NumSuits]bool
		needed int
	}{
		{&r.sig.showed4[partner], 4},
		{&r.sig.showed5[partner], 3},
		{&r.sig.showed3[partner], 5},
	}
	for _, fit := range fits {
		for i, strain := range domain.SuitOrder {
			if !fit.shown[i] {
				continue
			}
			if hand[i].Length() < fit.needed {
				continue
			}
			return r.jumpToSix(strain)
		}
	}
	return phaseSuitCascade, nil
}

// suitCascade introduces a new suit up the line, cheapest first: four-card
// suits, then five-card, then a same-level three-card raise of a suit the
// partner has shown. A successful introduction ends the turn and restarts
// the loop for the other seat.
func (r *confiRun) suitCascade() (confiPhase, error) {
	for _, try := range []func() (bool, error){
		r.tryFourCardSuit,
		r.tryFiveCardSuit,
		r.tryThreeCardSuit,
	} {
		made, err := try()
		if err != nil {
			return phaseDone, err
		}
		if made {
			return phaseMinimumCorrection, nil
		}
	}
	return phaseSignoff, nil
}

// signoff retreats to notrump when nothing is left to show. A notrump bid
// already on top is passed out; otherwise the cheapest notrump is offered
// and the loop continues, leaving the partner a last look.
func (r *confiRun) signoff() (confiPhase, error) {
	highest, _ := r.auction.HighestBid()
	if highest.Strain == domain.NoTrump {
		r.auction.AllPass()
		return phaseDone, nil
	}
	signoff, err := cheapestNoTrumpFrom(highest)
	if err != nil {
		return phaseDone, err
	}
	if err := r.bidAndForcePass(signoff); err != nil {
		return phaseDone, err
	}
	return phaseMinimumCorrection, nil
}

// tryFourCardSuit scans the next four non-notrump bids below the six level
// for an undenied, unshown four-card suit. Suits this hand cannot offer are
// marked as denied for the partner's benefit.
func (r *confiRun) tryFourCardSuit() (bool, error) {
	seat := r.auction.NextToBid()
	partner := seat.Partner()
	hand := r.deal[seat]

	bid, _ := r.auction.HighestBid()
	for i := 0; i < domain.NumSuits; i++ {
		var err error
		if bid, err = nextSuitBid(bid); err != nil {
			return false, err
		}
		if bid.Level >= 6 {
			break
		}
		si := bid.Strain.SuitIndex()
		if hand[si].Length() < 4 {
			r.sig.denied4[seat][si] = true
			continue
		}
		if r.sig.denied4[partner][si] {
			continue
		}
		if r.sig.showed4[seat][si] {
			continue
		}
		r.sig.showed4[seat][si] = true
		return true, r.bidAndForcePass(bid)
	}
	return false, nil
}

// tryFiveCardSuit shows an unshown five-card suit once the four-card
// candidates are exhausted.
func (r *confiRun) tryFiveCardSuit() (bool, error) {
	seat := r.auction.NextToBid()
	hand := r.deal[seat]

	bid, _ := r.auction.HighestBid()
	for i := 0; i < domain.NumSuits; i++ {
		var err error
		if bid, err = nextSuitBid(bid); err != nil {
			return false, err
		}
		if bid.Level >= 6 {
			break
		}
		si := bid.Strain.SuitIndex()
		if hand[si].Length() < 5 {
			continue
		}
		if r.sig.showed5[seat][si] {
			continue
		}
		r.sig.showed5[seat][si] = true
		return true, r.bidAndForcePass(bid)
	}
	return false, nil
}

// tryThreeCardSuit raises a suit the partner has shown four of, holding
// three, but only while it does not push the auction a level higher.
func (r *confiRun) tryThreeCardSuit() (bool, error) {
	seat := r.auction.NextToBid()
	partner := seat.Partner()
	hand := r.deal[seat]

	start, _ := r.auction.HighestBid()
	bid := start
	for i := 0; i < domain.NumSuits; i++ {
		var err error
		if bid, err = nextSuitBid(bid); err != nil {
			return false, err
		}
		if bid.Level > start.Level {
			break
		}
		if bid.Level >= 6 {
			break
		}
		si := bid.Strain.SuitIndex()
		if hand[si].Length() < 3 {
			continue
		}
		if r.sig.showed3[seat][si] {
			continue
		}
		if !r.sig.showed4[partner][si] {
			continue
		}
		r.sig.showed3[seat][si] = true
		return true, r.bidAndForcePass(bid)
	}
	return false, nil
}

// jumpToSix places the contract at the six level and ends the auction.
func (r *confiRun) jumpToSix(strain domain.Strain) (confiPhase, error) {
	if err := r.auction.AddBid(domain.Bid{Level: 6, Strain: strain}); err != nil {
		return phaseDone, err
	}
	r.auction.AllPass()
	return phaseDone, nil
}

// bidAndForcePass commits a bid followed by the opposing side's forced pass.
func (r *confiRun) bidAndForcePass(bid domain.Bid) error {
	if err := r.auction.AddBid(bid); err != nil {
		return err
	}
	return r.auction.AddBid(domain.Pass)
}

// nextSuitBid returns the successor of b, skipping over notrump.
func nextSuitBid(b domain.Bid) (domain.Bid, error) {
	next, err := b.Next()
	if err != nil {
		return domain.Bid{}, err
	}
	if next.Strain == domain.NoTrump {
		return next.Next()
	}
	return next, nil
}

// cheapestNoTrumpFrom returns the first notrump bid at or above b. Running
// out of bid space here is an invariant violation, not a playable state.
func cheapestNoTrumpFrom(b domain.Bid) (domain.Bid, error) {
	for {
		if b.Strain == domain.NoTrump {
			return b, nil
		}
		var err error
		if b, err = b.Next(); err != nil {
			return domain.Bid{}, domain.ErrNoSignoff
		}
	}
}
