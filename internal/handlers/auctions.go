package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"art-auction-backend/internal/logger"
	"art-auction-backend/internal/models"
)

type AuctionsHandler struct {
	store Store
}

func NewAuctionsHandler(store Store) *AuctionsHandler {
	return &AuctionsHandler{store: store}
}

// ListAuctions godoc
// @Summary     List auctions
// @Tags        auctions
// @Produce     json
// @Success     200 {array}  models.Auction
// @Failure     500 {object} models.ErrorResponse
// @Router      /auction/ [get]
func (h *AuctionsHandler) ListAuctions(c *gin.Context) {
	auctions, err := h.store.ListAuctions()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list auctions", err)
		return
	}
	c.JSON(http.StatusOK, auctions)
}

// GetAuction godoc
// @Summary     Get auction
// @Tags        auctions
// @Produce     json
// @Param       id path int true "Auction ID"
// @Success     200 {object} models.Auction
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /auction/{id} [get]
func (h *AuctionsHandler) GetAuction(c *gin.Context) {
	auctionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	auction, err := h.store.GetAuction(auctionID)
	if err != nil {
		respondStoreError(c, "Auction not found", "failed to get auction", err)
		return
	}
	c.JSON(http.StatusOK, auction)
}

// ListAuctionsByArtwork godoc
// @Summary     List auctions of an artwork
// @Tags        auctions
// @Produce     json
// @Param       artworkId path int true "Artwork ID"
// @Success     200 {array}  models.Auction
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /auction/artwork/{artworkId} [get]
func (h *AuctionsHandler) ListAuctionsByArtwork(c *gin.Context) {
	artworkID, ok := parseIDParam(c, "artworkId")
	if !ok {
		return
	}

	auctions, err := h.store.ListAuctionsByArtwork(artworkID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list auctions", err)
		return
	}
	c.JSON(http.StatusOK, auctions)
}

// CreateAuction godoc
// @Summary     Create auction
// @Tags        auctions
// @Accept      json
// @Produce     json
// @Param       request body models.CreateAuctionRequest true "Auction"
// @Success     201 {object} models.Auction
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /auction/ [post]
func (h *AuctionsHandler) CreateAuction(c *gin.Context) {
	var req models.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	auction, err := h.store.CreateAuction(req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create auction", err)
		return
	}

	logger.Info("auction created", map[string]any{"auction_id": auction.ID, "artwork_id": auction.ArtworkID})
	c.JSON(http.StatusCreated, auction)
}

// UpdateAuction godoc
// @Summary     Update auction
// @Description Only is_active can be changed.
// @Tags        auctions
// @Accept      json
// @Produce     json
// @Param       id      path int    true "Auction ID"
// @Param       request body object true "Fields to update"
// @Success     200 {object} models.Auction
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /auction/{id} [patch]
func (h *AuctionsHandler) UpdateAuction(c *gin.Context) {
	auctionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if len(updates) == 0 {
		respondError(c, http.StatusBadRequest, "no updatable fields provided", nil)
		return
	}
	for key, value := range updates {
		if key != "is_active" {
			respondError(c, http.StatusBadRequest, fmt.Sprintf("field %q cannot be updated", key), nil)
			return
		}
		if _, ok := value.(bool); !ok {
			respondError(c, http.StatusBadRequest, "is_active must be a boolean", nil)
			return
		}
	}

	auction, err := h.store.UpdateAuction(auctionID, updates)
	if err != nil {
		respondStoreError(c, "Auction not found", "failed to update auction", err)
		return
	}
	c.JSON(http.StatusOK, auction)
}

// DeleteAuction godoc
// @Summary     Delete auction
// @Tags        auctions
// @Produce     json
// @Param       id path int true "Auction ID"
// @Success     200 {object} models.DeleteAuctionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /auction/{id} [delete]
func (h *AuctionsHandler) DeleteAuction(c *gin.Context) {
	auctionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	auction, err := h.store.DeleteAuction(auctionID)
	if err != nil {
		respondStoreError(c, "Auction not found", "failed to delete auction", err)
		return
	}

	c.JSON(http.StatusOK, models.DeleteAuctionResponse{
		Message: "Auction deleted successfully",
		Data:    *auction,
	})
}
