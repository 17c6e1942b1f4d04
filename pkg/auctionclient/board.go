package auctionclient

import (
	"context"
	"errors"
	"sync"

	"art-auction-backend/internal/bidding"
)

var ErrBoardClosed = errors.New("board closed")

const msgSubmitFailed = "Failed to submit bid"

// Result is the outcome of SubmitBid as shown to the bidder.
type Result struct {
	Success       bool
	Message       string
	AuctionClosed bool
}

// BoardState is a copy of the board's view of one artwork.
type BoardState struct {
	Artwork  Artwork
	Auctions []Auction
	Highest  float64
}

// Board tracks the bidding state of one artwork. The server stays authoritative:
// the local rule check only avoids requests that are bound to fail.
type Board struct {
	client    *Client
	artworkID int64

	mu     sync.Mutex
	state  BoardState
	closed bool
}

func NewBoard(client *Client, artworkID int64) *Board {
	return &Board{client: client, artworkID: artworkID}
}

// Load fetches the artwork, its auctions and their latest bids. The highest known
// amount becomes the current bid. Results arriving after Close are dropped.
func (b *Board) Load(ctx context.Context) error {
	artwork, err := b.client.GetArtwork(ctx, b.artworkID)
	if err != nil {
		return err
	}
	auctions, err := b.client.ListAuctionsByArtwork(ctx, b.artworkID)
	if err != nil {
		return err
	}

	highest := artwork.CurrentPrice
	for _, a := range auctions {
		latest, err := b.client.LatestBid(ctx, a.ID)
		if err != nil {
			// a failing auction does not hide the others
			continue
		}
		if latest != nil && latest.BidAmount > highest {
			highest = latest.BidAmount
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBoardClosed
	}
	b.state = BoardState{
		Artwork:  *artwork,
		Auctions: auctions,
		Highest:  highest,
	}
	return nil
}

func (b *Board) State() BoardState {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.state
	out.Auctions = append([]Auction(nil), b.state.Auctions...)
	return out
}

// SubmitBid checks the amount locally, shows it as the current bid right away and
// posts it. A rejection or failure restores the previous bid unless a newer bid
// has already replaced the optimistic one.
func (b *Board) SubmitBid(ctx context.Context, amount float64) Result {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return Result{Message: ErrBoardClosed.Error()}
	}
	if _, err := bidding.Evaluate(amount, b.snapshot()); err != nil {
		b.mu.Unlock()
		return Result{Message: err.Error()}
	}
	previous := b.state.Highest
	b.state.Highest = amount
	artworkID := b.artworkID
	b.mu.Unlock()

	resp, err := b.client.PlaceBid(ctx, PlaceBidRequest{ArtworkID: &artworkID, BidAmount: &amount})

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return Result{Success: err == nil, Message: resultMessage(err)}
	}

	if err != nil {
		if b.state.Highest == amount {
			b.state.Highest = previous
		}
		return Result{Message: resultMessage(err)}
	}

	if resp.CurrentPrice > b.state.Highest {
		b.state.Highest = resp.CurrentPrice
	}
	b.state.Artwork.CurrentPrice = resp.CurrentPrice
	if resp.AuctionClosed {
		for i := range b.state.Auctions {
			if b.state.Auctions[i].ID == resp.Bid.AuctionID {
				b.state.Auctions[i].IsActive = false
			}
		}
		b.state.Artwork.Status = "sold"
	}
	return Result{Success: true, AuctionClosed: resp.AuctionClosed}
}

// Close detaches the board; pending calls finish without touching its state.
func (b *Board) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
}

// snapshot must be called with b.mu held.
func (b *Board) snapshot() bidding.Snapshot {
	active := false
	for _, a := range b.state.Auctions {
		if a.IsActive {
			active = true
			break
		}
	}
	if b.state.Artwork.Status == "sold" {
		active = false
	}
	return bidding.Snapshot{
		ArtworkID:     b.artworkID,
		AuctionActive: active,
		PriorBids:     []float64{b.state.Highest},
		CurrentPrice:  b.state.Artwork.CurrentPrice,
		StartingPrice: b.state.Artwork.StartingPrice,
	}
}

func resultMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status < 500 && apiErr.Message != "" {
		return apiErr.Message
	}
	return msgSubmitFailed
}
