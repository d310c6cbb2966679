/*
Package ports defines the driven ports (interfaces) for the bidding engine.

These interfaces decouple the core logic from external implementations,
allowing the engine to work with various system sources and result stores.

# Key Interfaces

  - SystemLoader: Responsible for loading the bidding system tree (e.g., from YAML or Memory).
  - DealStore: Responsible for persisting completed auctions.
*/
package ports
