package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	auctionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auctioneer_auctions_total",
		Help: "Completed auctions by final contract strain (passout when nobody opened).",
	}, []string{"strain"})

	auctionCalls = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "auctioneer_auction_calls",
		Help:    "Number of calls in a completed auction.",
		Buckets: prometheus.LinearBuckets(4, 2, 10),
	})

	bidErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auctioneer_bid_errors_total",
		Help: "Bidding runs aborted by configuration or invariant errors.",
	})
)
