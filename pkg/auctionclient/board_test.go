package auctionclient

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI serves one artwork with two auctions. placeBid decides each POST /bid/.
type fakeAPI struct {
	mu       sync.Mutex
	posted   []PlaceBidRequest
	placeBid func(req PlaceBidRequest) (int, interface{})
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/artwork/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id": 1, "title": "Dune", "starting_price": 5, "current_price": 15, "status": "available",
		})
	})
	mux.HandleFunc("/auction/artwork/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]interface{}{
			{"id": 10, "artwork_id": 1, "is_active": false},
			{"id": 11, "artwork_id": 1, "is_active": true},
		})
	})
	mux.HandleFunc("/bid/latest/auction/10", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"id": 1, "auction_id": 10, "bid_amount": 10})
	})
	mux.HandleFunc("/bid/latest/auction/11", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"id": 3, "auction_id": 11, "bid_amount": 22})
	})
	mux.HandleFunc("/bid/", func(w http.ResponseWriter, r *http.Request) {
		var req PlaceBidRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.posted = append(f.posted, req)
		f.mu.Unlock()
		status, body := f.placeBid(req)
		writeJSON(w, status, body)
	})
	return mux
}

func loadedBoard(t *testing.T, api *fakeAPI) *Board {
	t.Helper()
	board := NewBoard(newTestClient(t, api.handler()), 1)
	require.NoError(t, board.Load(context.Background()))
	return board
}

func accepted(amount float64, closed bool) (int, interface{}) {
	return http.StatusCreated, map[string]interface{}{
		"bid":            map[string]interface{}{"id": 4, "auction_id": 11, "bid_amount": amount},
		"current_price":  amount,
		"auction_closed": closed,
	}
}

func TestBoard_LoadTakesHighestLatestBid(t *testing.T) {
	board := loadedBoard(t, &fakeAPI{})

	state := board.State()
	assert.Equal(t, 22.0, state.Highest)
	assert.Len(t, state.Auctions, 2)
	assert.Equal(t, "Dune", state.Artwork.Title)
}

func TestBoard_LocalRuleRejectsWithoutPosting(t *testing.T) {
	api := &fakeAPI{}
	board := loadedBoard(t, api)

	for _, amount := range []float64{22, 10, 12.75} {
		res := board.SubmitBid(context.Background(), amount)
		assert.False(t, res.Success)
		assert.Equal(t, "Bid must be higher than the current bid of 22", res.Message)
	}
	assert.Empty(t, api.posted)
	assert.Equal(t, 22.0, board.State().Highest)
}

func TestBoard_SubmitAccepted(t *testing.T) {
	api := &fakeAPI{placeBid: func(req PlaceBidRequest) (int, interface{}) {
		return accepted(*req.BidAmount, false)
	}}
	board := loadedBoard(t, api)

	res := board.SubmitBid(context.Background(), 22.01)

	assert.True(t, res.Success)
	assert.Equal(t, 22.01, board.State().Highest)
	require.Len(t, api.posted, 1)
	assert.Equal(t, int64(1), *api.posted[0].ArtworkID)
}

func TestBoard_ReserveClosesAuction(t *testing.T) {
	api := &fakeAPI{placeBid: func(req PlaceBidRequest) (int, interface{}) {
		return accepted(*req.BidAmount, true)
	}}
	board := loadedBoard(t, api)

	res := board.SubmitBid(context.Background(), 100)
	require.True(t, res.Success)
	assert.True(t, res.AuctionClosed)

	res = board.SubmitBid(context.Background(), 150)
	assert.False(t, res.Success)
	assert.Equal(t, "No auction found for this artwork", res.Message)
	assert.Len(t, api.posted, 1)
}

func TestBoard_ServerRejectionRollsBack(t *testing.T) {
	api := &fakeAPI{placeBid: func(req PlaceBidRequest) (int, interface{}) {
		return http.StatusConflict, map[string]string{"error": "Bid must be higher than the current bid of 30"}
	}}
	board := loadedBoard(t, api)

	res := board.SubmitBid(context.Background(), 25)

	assert.False(t, res.Success)
	assert.Equal(t, "Bid must be higher than the current bid of 30", res.Message)
	assert.Equal(t, 22.0, board.State().Highest)
}

func TestBoard_ServerFailureRollsBack(t *testing.T) {
	api := &fakeAPI{placeBid: func(req PlaceBidRequest) (int, interface{}) {
		return http.StatusInternalServerError, map[string]string{"error": "failed to place bid", "message": "db down"}
	}}
	board := loadedBoard(t, api)

	res := board.SubmitBid(context.Background(), 25)

	assert.False(t, res.Success)
	assert.Equal(t, "Failed to submit bid", res.Message)
	assert.Equal(t, 22.0, board.State().Highest)
	assert.Len(t, api.posted, 1)
}

func TestBoard_OptimisticValueVisibleWhilePending(t *testing.T) {
	release := make(chan struct{})
	seen := make(chan float64, 1)
	var board *Board
	api := &fakeAPI{placeBid: func(req PlaceBidRequest) (int, interface{}) {
		seen <- board.State().Highest
		<-release
		return accepted(*req.BidAmount, false)
	}}
	board = loadedBoard(t, api)

	done := make(chan Result, 1)
	go func() { done <- board.SubmitBid(context.Background(), 40) }()

	assert.Equal(t, 40.0, <-seen)
	close(release)
	assert.True(t, (<-done).Success)
}

func TestBoard_CloseDropsLateResponse(t *testing.T) {
	release := make(chan struct{})
	var board *Board
	api := &fakeAPI{placeBid: func(req PlaceBidRequest) (int, interface{}) {
		board.Close()
		<-release
		return http.StatusConflict, map[string]string{"error": "Bid must be higher than the current bid of 90"}
	}}
	board = loadedBoard(t, api)

	done := make(chan Result, 1)
	go func() { done <- board.SubmitBid(context.Background(), 40) }()
	close(release)
	res := <-done

	assert.False(t, res.Success)
	// no rollback after Close
	assert.Equal(t, 40.0, board.State().Highest)
	assert.Equal(t, ErrBoardClosed.Error(), board.SubmitBid(context.Background(), 50).Message)
	assert.ErrorIs(t, board.Load(context.Background()), ErrBoardClosed)
}
