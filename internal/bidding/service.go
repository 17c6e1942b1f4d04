package bidding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"art-auction-backend/internal/cache"
	"art-auction-backend/internal/logger"
	"art-auction-backend/internal/metrics"
)

// Service places bids through a Ledger and keeps derived read caches honest.
type Service struct {
	ledger Ledger
	cache  cache.Cache
}

func NewService(ledger Ledger, c cache.Cache) *Service {
	if c == nil {
		c = cache.Noop{}
	}
	return &Service{
		ledger: ledger,
		cache:  c,
	}
}

// PlaceBid validates the request shape, then lets the ledger run the acceptance
// rule and the write atomically.
func (s *Service) PlaceBid(ctx context.Context, req PlaceBidRequest) (*Outcome, error) {
	if req.AuctionID == nil && req.ArtworkID == nil {
		return nil, fmt.Errorf("service: %w", ErrMissingTarget)
	}

	start := time.Now()
	outcome, err := s.ledger.PlaceBid(ctx, req, DecideFor(req.Amount))
	if err != nil {
		result := rejectionLabel(err)
		metrics.RecordBid(result, time.Since(start))
		fields := map[string]any{
			"auction_id": derefID(req.AuctionID),
			"artwork_id": derefID(req.ArtworkID),
			"amount":     req.Amount,
			"error":      err.Error(),
		}
		if result == "error" {
			logger.Error("bid placement failed", fields)
		} else {
			logger.Info("bid rejected", fields)
		}
		return nil, fmt.Errorf("service: failed to place bid: %w", err)
	}

	metrics.RecordBid("accepted", time.Since(start))
	if outcome.AuctionClosed {
		metrics.RecordAuctionClosed()
	}

	if err := s.cache.Delete(ctx,
		cache.LatestBidKey(outcome.Bid.AuctionID),
		cache.ArtworkKey(outcome.ArtworkID),
		cache.ArtworkListKey,
	); err != nil {
		logger.Warn("failed to invalidate bid caches", map[string]any{"error": err.Error()})
	}

	logger.Info("bid accepted", map[string]any{
		"bid_id":         outcome.Bid.ID,
		"auction_id":     outcome.Bid.AuctionID,
		"artwork_id":     outcome.ArtworkID,
		"amount":         outcome.Bid.BidAmount,
		"auction_closed": outcome.AuctionClosed,
	})

	return outcome, nil
}

func rejectionLabel(err error) string {
	switch {
	case errors.Is(err, ErrBidTooLow):
		return "too_low"
	case errors.Is(err, ErrNoActiveAuction):
		return "no_auction"
	case errors.Is(err, ErrInvalidBid), errors.Is(err, ErrMissingTarget):
		return "invalid"
	default:
		return "error"
	}
}

func derefID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}
