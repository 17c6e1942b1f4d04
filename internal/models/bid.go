package models

import (
	"time"

	"github.com/google/uuid"
)

type Bid struct {
	ID        int64      `json:"id"`
	AuctionID int64      `json:"auction_id"`
	BidAmount float64    `json:"bid_amount"`
	BidderID  *uuid.UUID `json:"bidder_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
