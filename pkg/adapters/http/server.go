// Package http exposes the bidding engine over a small JSON API.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seatwise/auctioneer/internal/logging"
	"github.com/seatwise/auctioneer/pkg/domain"
	"github.com/seatwise/auctioneer/pkg/ports"
)

// Engine defines the bidding operations the server needs.
type Engine interface {
	BidFrom(dealer domain.Seat, north, south string) (*domain.Auction, error)
}

// BidRequest is the body of POST /v1/bid.
type BidRequest struct {
	North  string `json:"north"`
	South  string `json:"south"`
	Dealer string `json:"dealer,omitempty"`  // seat letter, default "N"
	DealID string `json:"deal_id,omitempty"` // default: derived from the hands
}

// BidResponse is the result of a bidding run.
type BidResponse struct {
	DealID   string   `json:"deal_id"`
	Auction  []string `json:"auction"`
	Contract string   `json:"contract,omitempty"`
}

// Server serves bidding runs and stored deals.
type Server struct {
	engine Engine
	store  ports.DealStore
	logger *slog.Logger
}

// Option configures the server.
type Option func(*Server)

// WithStore sets the deal store completed auctions are saved to.
func WithStore(store ports.DealStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger sets a structured logger for request handling.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{
		engine: engine,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Post("/v1/bid", server.handleBid)
	r.Get("/v1/deals/{id}", server.handleGetDeal)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

func (s *Server) handleBid(w http.ResponseWriter, r *http.Request) {
	var req BidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	dealer := domain.North
	if req.Dealer != "" {
		var err error
		if dealer, err = domain.ParseSeat(req.Dealer); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	auction, err := s.engine.BidFrom(dealer, req.North, req.South)
	if err != nil {
		bidErrors.Inc()
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidHand) {
			status = http.StatusBadRequest
		}
		s.logger.Error("bidding run failed", "error", err)
		writeError(w, status, err)
		return
	}

	resp := BidResponse{
		DealID:  req.DealID,
		Auction: domain.Notation(auction.Bids()),
	}
	if resp.DealID == "" {
		resp.DealID = dealID(dealer, req.North, req.South)
	}
	strain := "passout"
	if contract, ok := auction.FinalContract(); ok {
		resp.Contract = contract.String()
		strain = contract.Strain.String()
	}
	auctionsTotal.WithLabelValues(strain).Inc()
	auctionCalls.Observe(float64(auction.Len()))

	if s.store != nil {
		record := &ports.DealRecord{
			ID:       resp.DealID,
			North:    req.North,
			South:    req.South,
			Dealer:   dealer.String(),
			Auction:  resp.Auction,
			Contract: resp.Contract,
			BidAt:    time.Now().UTC(),
		}
		if err := s.store.Save(r.Context(), record); err != nil {
			s.logger.Error("failed to store deal", "deal", resp.DealID, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetDeal(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotFound, errors.New("no deal store configured"))
		return
	}
	id := chi.URLParam(r, "id")
	record, err := s.store.Get(r.Context(), id)
	if errors.Is(err, domain.ErrDealNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.logger.Error("failed to load deal", "deal", id, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// dealID derives a stable identifier for an unnamed deal.
func dealID(dealer domain.Seat, north, south string) string {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%s|%s|%s", dealer, north, south)
	return fmt.Sprintf("%016x", h.Sum64())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
