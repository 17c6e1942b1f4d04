package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"art-auction-backend/internal/bidding"
	"art-auction-backend/internal/cache"
	"art-auction-backend/internal/middleware"
	"art-auction-backend/internal/models"
)

type BidsHandler struct {
	store  Store
	placer BidPlacer
	cache  cache.Cache
	ttl    time.Duration
}

// NewBidsHandler accepts a nil placer when no database is configured; placement
// then answers 503.
func NewBidsHandler(store Store, placer BidPlacer, c cache.Cache, ttl time.Duration) *BidsHandler {
	if c == nil {
		c = cache.Noop{}
	}
	return &BidsHandler{
		store:  store,
		placer: placer,
		cache:  c,
		ttl:    ttl,
	}
}

// ListBids godoc
// @Summary     List bids
// @Tags        bids
// @Produce     json
// @Success     200 {array}  models.Bid
// @Failure     500 {object} models.ErrorResponse
// @Router      /bid/ [get]
func (h *BidsHandler) ListBids(c *gin.Context) {
	bids, err := h.store.ListBids()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list bids", err)
		return
	}
	c.JSON(http.StatusOK, bids)
}

// GetBid godoc
// @Summary     Get bid
// @Tags        bids
// @Produce     json
// @Param       bidId path int true "Bid ID"
// @Success     200 {object} models.Bid
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /bid/{bidId} [get]
func (h *BidsHandler) GetBid(c *gin.Context) {
	bidID, ok := parseIDParam(c, "bidId")
	if !ok {
		return
	}

	bid, err := h.store.GetBid(bidID)
	if err != nil {
		respondStoreError(c, "Bid not found", "failed to get bid", err)
		return
	}
	c.JSON(http.StatusOK, bid)
}

// LatestBidByAuction godoc
// @Summary     Latest bid of an auction
// @Tags        bids
// @Produce     json
// @Param       auctionId path int true "Auction ID"
// @Success     200 {object} models.Bid
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /bid/latest/auction/{auctionId} [get]
func (h *BidsHandler) LatestBidByAuction(c *gin.Context) {
	auctionID, ok := parseIDParam(c, "auctionId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	key := cache.LatestBidKey(auctionID)

	var bid models.Bid
	if !h.cache.Get(ctx, key, &bid) {
		latest, err := h.store.LatestBidByAuction(auctionID)
		if err != nil {
			respondStoreError(c, "No bids found for this auction", "failed to get latest bid", err)
			return
		}
		bid = *latest
		_ = h.cache.Set(ctx, key, bid, h.ttl)
	}

	c.JSON(http.StatusOK, bid)
}

// PlaceBid godoc
// @Summary     Place a bid
// @Description Accepts the bid only if it beats the highest known bid of the artwork. A bid that reaches the reserve sells the artwork and closes its auction in the same transaction.
// @Tags        bids
// @Accept      json
// @Produce     json
// @Param       request body models.PlaceBidRequest true "Bid"
// @Success     201 {object} models.PlaceBidResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     429 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /bid/ [post]
func (h *BidsHandler) PlaceBid(c *gin.Context) {
	if h.placer == nil {
		respondError(c, http.StatusServiceUnavailable, "bidding not available", nil)
		return
	}

	var req models.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if isAmountTypeError(err) {
			respondError(c, http.StatusBadRequest, bidding.ErrInvalidBid.Error(), nil)
			return
		}
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	amount := req.BidAmount
	if amount == nil {
		amount = req.Amount
	}
	if amount == nil {
		respondError(c, http.StatusBadRequest, "bid_amount is required", nil)
		return
	}

	placement := bidding.PlaceBidRequest{
		AuctionID: req.AuctionID,
		ArtworkID: req.ArtworkID,
		Amount:    *amount,
	}
	if userID := c.GetString(middleware.UserIDKey); userID != "" {
		if id, err := uuid.Parse(userID); err == nil {
			placement.BidderID = &id
		}
	}

	outcome, err := h.placer.PlaceBid(c.Request.Context(), placement)
	if err != nil {
		status := bidStatus(err)
		if status == http.StatusInternalServerError {
			respondError(c, status, "failed to place bid", err)
			return
		}
		respondError(c, status, rejectionMessage(err), nil)
		return
	}

	c.JSON(http.StatusCreated, models.PlaceBidResponse{
		Bid:           outcome.Bid,
		CurrentPrice:  outcome.CurrentPrice,
		AuctionClosed: outcome.AuctionClosed,
	})
}

// isAmountTypeError reports whether decoding failed because the bid amount was
// not a JSON number.
func isAmountTypeError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return false
	}
	return typeErr.Field == "bid_amount" || typeErr.Field == "amount"
}

// rejectionMessage returns the bidder-facing text without any wrapping prefixes.
func rejectionMessage(err error) string {
	var tooLow *bidding.BidTooLowError
	switch {
	case errors.As(err, &tooLow):
		return tooLow.Error()
	case errors.Is(err, bidding.ErrNoActiveAuction):
		return bidding.ErrNoActiveAuction.Error()
	case errors.Is(err, bidding.ErrInvalidBid):
		return bidding.ErrInvalidBid.Error()
	case errors.Is(err, bidding.ErrMissingTarget):
		return bidding.ErrMissingTarget.Error()
	}
	return err.Error()
}
