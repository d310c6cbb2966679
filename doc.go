// Package auctioneer is a deterministic bidding engine for contract bridge.
//
// An Engine loads a bidding system, a decision tree of candidate bids
// guarded by hand-evaluation criteria, and bids North-South deals against
// silent opponents. Tree nodes may hand the auction off to a convention
// state machine, such as the CONFI slam sequence, which then drives the
// partnership to a final contract.
//
// The core is pure and deterministic: the same system and deal always
// produce the same auction. Adapters under pkg/adapters expose the engine
// over HTTP and persist completed deals.
//
// Basic usage:
//
//	engine, err := auctioneer.New("systems/kokish.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	auction, err := engine.Bid("AQ3 AK3 J2 AQ652", "K9742 J2 QJ65 K3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(domain.Notation(auction.Bids()))
package auctioneer
