package bidding

import (
	"context"

	"github.com/google/uuid"

	"art-auction-backend/internal/models"
)

type PlaceBidRequest struct {
	AuctionID *int64
	ArtworkID *int64
	Amount    float64
	BidderID  *uuid.UUID
}

type Outcome struct {
	Bid           models.Bid
	ArtworkID     int64
	CurrentPrice  float64
	AuctionClosed bool
}

// Ledger records bids. PlaceBid must read the snapshot, call decide and persist the
// bid, the new current price and, when the decision says so, the sold/inactive
// transition as one atomic step with respect to other bids on the same artwork.
type Ledger interface {
	PlaceBid(ctx context.Context, req PlaceBidRequest, decide Decider) (*Outcome, error)
}
