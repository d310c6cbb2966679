// Package domain holds the pure value types of the bidding engine: bids,
// seats, hands, the auction state machine, and the declarative bidding
// system tree. It has no dependencies on the engine's runtime or adapters.
package domain
