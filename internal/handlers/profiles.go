package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProfilesHandler struct {
	store Store
}

func NewProfilesHandler(store Store) *ProfilesHandler {
	return &ProfilesHandler{store: store}
}

// ListProfiles godoc
// @Summary     List profiles
// @Tags        profiles
// @Produce     json
// @Success     200 {array}  models.Profile
// @Failure     500 {object} models.ErrorResponse
// @Router      /profiles/ [get]
func (h *ProfilesHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.store.ListProfiles()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list profiles", err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// ListArtistProfiles godoc
// @Summary     List artist profiles
// @Tags        profiles
// @Produce     json
// @Success     200 {array}  models.Profile
// @Failure     500 {object} models.ErrorResponse
// @Router      /profiles/artists/ [get]
func (h *ProfilesHandler) ListArtistProfiles(c *gin.Context) {
	profiles, err := h.store.ListArtistProfiles()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list artist profiles", err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetProfile godoc
// @Summary     Get profile
// @Tags        profiles
// @Produce     json
// @Param       id path string true "Profile ID"
// @Success     200 {object} models.Profile
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /profiles/{id} [get]
func (h *ProfilesHandler) GetProfile(c *gin.Context) {
	profile, err := h.store.GetProfile(c.Param("id"))
	if err != nil {
		respondStoreError(c, "Profile not found", "failed to get profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
