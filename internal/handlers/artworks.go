package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"art-auction-backend/internal/bidding"
	"art-auction-backend/internal/cache"
	"art-auction-backend/internal/logger"
	"art-auction-backend/internal/middleware"
	"art-auction-backend/internal/models"
	"art-auction-backend/internal/supabase"
)

// Keys an artist may change through PATCH/PUT. current_price only moves with bids.
var artworkUpdatableKeys = map[string]bool{
	"title":          true,
	"description":    true,
	"image_url":      true,
	"status":         true,
	"end_price":      true,
	"starting_price": true,
}

type ArtworksHandler struct {
	store  Store
	cache  cache.Cache
	ttl    time.Duration
	images ImageResolver
}

func NewArtworksHandler(store Store, c cache.Cache, ttl time.Duration, images ImageResolver) *ArtworksHandler {
	if c == nil {
		c = cache.Noop{}
	}
	if images == nil {
		images = passthroughImages{}
	}
	return &ArtworksHandler{
		store:  store,
		cache:  c,
		ttl:    ttl,
		images: images,
	}
}

func (h *ArtworksHandler) public(a models.Artwork) models.PublicArtwork {
	p := a.Public()
	p.ImageURL = h.images.ResolveImageURL(p.ImageURL)
	return p
}

func (h *ArtworksHandler) publicList(artworks []models.Artwork) []models.PublicArtwork {
	out := make([]models.PublicArtwork, len(artworks))
	for i, a := range artworks {
		out[i] = h.public(a)
	}
	return out
}

func (h *ArtworksHandler) invalidate(c *gin.Context, artworkID int64) {
	keys := []string{cache.ArtworkListKey}
	if artworkID != 0 {
		keys = append(keys, cache.ArtworkKey(artworkID))
	}
	if err := h.cache.Delete(c.Request.Context(), keys...); err != nil {
		logger.Warn("failed to invalidate artwork cache", map[string]any{"error": err.Error()})
	}
}

// ListArtworks godoc
// @Summary     List artworks
// @Description Reserve prices are never included.
// @Tags        artworks
// @Produce     json
// @Success     200 {array}  models.PublicArtwork
// @Failure     500 {object} models.ErrorResponse
// @Router      /artwork/ [get]
func (h *ArtworksHandler) ListArtworks(c *gin.Context) {
	ctx := c.Request.Context()

	var artworks []models.Artwork
	if !h.cache.Get(ctx, cache.ArtworkListKey, &artworks) {
		var err error
		artworks, err = h.store.ListArtworks()
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to list artworks", err)
			return
		}
		_ = h.cache.Set(ctx, cache.ArtworkListKey, artworks, h.ttl)
	}

	c.JSON(http.StatusOK, h.publicList(artworks))
}

// ListArtworksByArtist godoc
// @Summary     List artworks of an artist
// @Tags        artworks
// @Produce     json
// @Param       artist_id path int true "Artist number"
// @Success     200 {array}  models.PublicArtwork
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /artwork/artist/{artist_id} [get]
func (h *ArtworksHandler) ListArtworksByArtist(c *gin.Context) {
	artistID, ok := parseIDParam(c, "artist_id")
	if !ok {
		return
	}

	artworks, err := h.store.ListArtworksByArtist(artistID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list artworks", err)
		return
	}
	c.JSON(http.StatusOK, h.publicList(artworks))
}

// GetArtwork godoc
// @Summary     Get artwork
// @Tags        artworks
// @Produce     json
// @Param       id path int true "Artwork ID"
// @Success     200 {object} models.PublicArtwork
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /artwork/{id} [get]
func (h *ArtworksHandler) GetArtwork(c *gin.Context) {
	artworkID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	key := cache.ArtworkKey(artworkID)

	var artwork models.Artwork
	if !h.cache.Get(ctx, key, &artwork) {
		found, err := h.store.GetArtwork(artworkID)
		if err != nil {
			respondStoreError(c, "Artwork not found", "failed to get artwork", err)
			return
		}
		artwork = *found
		_ = h.cache.Set(ctx, key, artwork, h.ttl)
	}

	c.JSON(http.StatusOK, h.public(artwork))
}

// CreateArtwork godoc
// @Summary     Create artwork
// @Description image_url may be an absolute URL or an object path in the artworks bucket.
// @Tags        artworks
// @Accept      json
// @Produce     json
// @Param       request body models.CreateArtworkRequest true "Artwork"
// @Success     201 {object} models.PublicArtwork
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /artwork/ [post]
func (h *ArtworksHandler) CreateArtwork(c *gin.Context) {
	var req models.CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Status != "" && !models.IsArtworkStatus(req.Status) {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("invalid status %q", req.Status), nil)
		return
	}
	if !bidding.ValidAmount(req.StartingPrice) || (req.EndPrice != nil && !bidding.ValidAmount(*req.EndPrice)) {
		respondError(c, http.StatusBadRequest, "prices must have at most two decimals", nil)
		return
	}

	artwork, err := h.store.CreateArtwork(req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create artwork", err)
		return
	}
	h.invalidate(c, 0)

	logger.Info("artwork created", map[string]any{"artwork_id": artwork.ID, "artist_id": artwork.ArtistID})
	c.JSON(http.StatusCreated, h.public(*artwork))
}

// UpdateArtwork godoc
// @Summary     Update artwork
// @Description Partial update. Allowed keys: title, description, image_url, status, end_price, starting_price.
// @Tags        artworks
// @Accept      json
// @Produce     json
// @Param       id      path int    true "Artwork ID"
// @Param       request body object true "Fields to update"
// @Success     200 {object} models.PublicArtwork
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /artwork/{id} [patch]
func (h *ArtworksHandler) UpdateArtwork(c *gin.Context) {
	artworkID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if msg := validateArtworkUpdates(updates); msg != "" {
		respondError(c, http.StatusBadRequest, msg, nil)
		return
	}

	// A reserve at or below the current bid is rejected; only a bid closes an auction.
	reserve, setsReserve := updates["end_price"].(float64)
	if setsReserve {
		current, err := h.store.GetArtwork(artworkID)
		if err != nil {
			respondStoreError(c, "Artwork not found", "failed to get artwork", err)
			return
		}
		if current.CurrentPrice > 0 && reserve <= current.CurrentPrice {
			respondError(c, http.StatusConflict, reserveConflictMessage(current.CurrentPrice), nil)
			return
		}
	}

	artwork, err := h.store.UpdateArtwork(artworkID, updates)
	if err != nil {
		if setsReserve && errors.Is(err, supabase.ErrNotFound) {
			// the row matched a moment ago, so a bid has since passed the new reserve
			respondError(c, http.StatusConflict, "end_price must be higher than the current bid", nil)
			return
		}
		respondStoreError(c, "Artwork not found", "failed to update artwork", err)
		return
	}
	h.invalidate(c, artworkID)

	c.JSON(http.StatusOK, h.public(*artwork))
}

// GetReserve godoc
// @Summary     Get artwork reserve price
// @Description Only the owning artist can see the reserve.
// @Tags        artworks
// @Produce     json
// @Security    Bearer
// @Param       id path int true "Artwork ID"
// @Success     200 {object} models.ReserveView
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /artwork/{id}/reserve [get]
func (h *ArtworksHandler) GetReserve(c *gin.Context) {
	artworkID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	value, exists := c.Get(middleware.ProfileKey)
	profile, _ := value.(*models.Profile)
	if !exists || profile == nil {
		respondError(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	artwork, err := h.store.GetArtwork(artworkID)
	if err != nil {
		respondStoreError(c, "Artwork not found", "failed to get artwork", err)
		return
	}

	artist, err := h.store.GetArtist(artwork.ArtistID)
	if err != nil {
		respondStoreError(c, "Artist not found", "failed to get artist", err)
		return
	}
	if artist.Email != profile.Email {
		respondError(c, http.StatusForbidden, "You can only view the reserve of your own artworks", nil)
		return
	}

	c.JSON(http.StatusOK, models.ReserveView{
		ArtworkID: artwork.ID,
		EndPrice:  artwork.EndPrice,
		Status:    artwork.Status,
	})
}

func reserveConflictMessage(currentPrice float64) string {
	return "end_price must be higher than the current bid of " + bidding.FormatAmount(currentPrice)
}

func validateArtworkUpdates(updates map[string]interface{}) string {
	if len(updates) == 0 {
		return "no updatable fields provided"
	}
	if _, ok := updates["current_price"]; ok {
		return "current_price is set by bidding and cannot be updated"
	}
	for key, value := range updates {
		if !artworkUpdatableKeys[key] {
			return fmt.Sprintf("field %q cannot be updated", key)
		}
		switch key {
		case "status":
			s, ok := value.(string)
			if !ok || !models.IsArtworkStatus(s) {
				return fmt.Sprintf("invalid status %v", value)
			}
		case "end_price":
			if value == nil {
				continue
			}
			if f, ok := value.(float64); !ok || f < 0 || !bidding.ValidAmount(f) {
				return "end_price must be a non-negative amount with at most two decimals"
			}
		case "starting_price":
			if f, ok := value.(float64); !ok || f < 0 || !bidding.ValidAmount(f) {
				return "starting_price must be a non-negative amount with at most two decimals"
			}
		case "title":
			if s, ok := value.(string); !ok || s == "" {
				return "title must be a non-empty string"
			}
		}
	}
	return ""
}
