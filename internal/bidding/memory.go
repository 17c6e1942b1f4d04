package bidding

import (
	"context"
	"sort"
	"sync"
	"time"

	"art-auction-backend/internal/models"
)

// MemoryLedger is a concurrency-safe in-memory Ledger. One mutex serializes every
// placement, which gives the same guarantee the Postgres ledger gets from row locks.
type MemoryLedger struct {
	mu        sync.Mutex
	artworks  map[int64]models.Artwork
	auctions  map[int64]models.Auction
	bids      map[int64][]models.Bid // key: auctionID
	nextBidID int64
	now       func() time.Time
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		artworks: make(map[int64]models.Artwork),
		auctions: make(map[int64]models.Auction),
		bids:     make(map[int64][]models.Bid),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (l *MemoryLedger) AddArtwork(a models.Artwork) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.artworks[a.ID] = a
}

func (l *MemoryLedger) AddAuction(a models.Auction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.auctions[a.ID] = a
}

func (l *MemoryLedger) Artwork(id int64) (models.Artwork, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.artworks[id]
	return a, ok
}

func (l *MemoryLedger) Auction(id int64) (models.Auction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.auctions[id]
	return a, ok
}

// Bids returns a copy of the bids recorded against an auction, oldest first.
func (l *MemoryLedger) Bids(auctionID int64) []models.Bid {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Bid(nil), l.bids[auctionID]...)
}

func (l *MemoryLedger) PlaceBid(ctx context.Context, req PlaceBidRequest, decide Decider) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	auction, found := l.resolveAuction(req)
	snapshot := Snapshot{AuctionActive: found && auction.IsActive}
	if found {
		snapshot.AuctionID = auction.ID
		snapshot.ArtworkID = auction.ArtworkID
		if art, ok := l.artworks[auction.ArtworkID]; ok {
			snapshot.CurrentPrice = art.CurrentPrice
			snapshot.StartingPrice = art.StartingPrice
			snapshot.ReservePrice = art.EndPrice
			if art.Status == models.ArtworkSold {
				snapshot.AuctionActive = false
			}
		}
		snapshot.PriorBids = l.artworkBidAmounts(auction.ArtworkID)
	}

	decision, err := decide(snapshot)
	if err != nil {
		return nil, err
	}

	l.nextBidID++
	bid := models.Bid{
		ID:        l.nextBidID,
		AuctionID: auction.ID,
		BidAmount: decision.Amount,
		BidderID:  req.BidderID,
		CreatedAt: l.now(),
	}
	l.bids[auction.ID] = append(l.bids[auction.ID], bid)

	art := l.artworks[auction.ArtworkID]
	art.CurrentPrice = decision.Amount
	if decision.ClosesAuction {
		art.Status = models.ArtworkSold
		auction.IsActive = false
		l.auctions[auction.ID] = auction
	}
	if art.ID != 0 {
		l.artworks[art.ID] = art
	}

	return &Outcome{
		Bid:           bid,
		ArtworkID:     auction.ArtworkID,
		CurrentPrice:  decision.Amount,
		AuctionClosed: decision.ClosesAuction,
	}, nil
}

func (l *MemoryLedger) resolveAuction(req PlaceBidRequest) (models.Auction, bool) {
	if req.AuctionID != nil {
		a, ok := l.auctions[*req.AuctionID]
		return a, ok
	}
	if req.ArtworkID == nil {
		return models.Auction{}, false
	}

	var candidates []models.Auction
	for _, a := range l.auctions {
		if a.ArtworkID == *req.ArtworkID && a.IsActive {
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		return models.Auction{}, false
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	return candidates[0], true
}

func (l *MemoryLedger) artworkBidAmounts(artworkID int64) []float64 {
	var amounts []float64
	for auctionID, bids := range l.bids {
		if l.auctions[auctionID].ArtworkID != artworkID {
			continue
		}
		for _, b := range bids {
			amounts = append(amounts, b.BidAmount)
		}
	}
	return amounts
}
