package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type ArtistsHandler struct {
	store Store
}

func NewArtistsHandler(store Store) *ArtistsHandler {
	return &ArtistsHandler{store: store}
}

// ListArtists godoc
// @Summary     List artists
// @Tags        artists
// @Produce     json
// @Success     200 {array}  models.Artist
// @Failure     500 {object} models.ErrorResponse
// @Router      /artist/ [get]
func (h *ArtistsHandler) ListArtists(c *gin.Context) {
	artists, err := h.store.ListArtists()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list artists", err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

// GetArtist godoc
// @Summary     Get artist by artist number
// @Tags        artists
// @Produce     json
// @Param       artist_number path int true "Artist number"
// @Success     200 {object} models.Artist
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /artist/{artist_number} [get]
func (h *ArtistsHandler) GetArtist(c *gin.Context) {
	artistID, ok := parseIDParam(c, "artist_number")
	if !ok {
		return
	}

	artist, err := h.store.GetArtist(artistID)
	if err != nil {
		respondStoreError(c, "Artist not found", "failed to get artist", err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

// GetArtistByEmail godoc
// @Summary     Get artist by email
// @Tags        artists
// @Produce     json
// @Param       email path string true "Artist email"
// @Success     200 {object} models.Artist
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /artist/email/{email} [get]
func (h *ArtistsHandler) GetArtistByEmail(c *gin.Context) {
	email := strings.TrimSpace(c.Param("email"))
	if email == "" {
		respondError(c, http.StatusBadRequest, "Missing path param `email`", nil)
		return
	}

	artist, err := h.store.GetArtistByEmail(email)
	if err != nil {
		respondStoreError(c, "Artist not found", "failed to get artist", err)
		return
	}
	c.JSON(http.StatusOK, artist)
}
