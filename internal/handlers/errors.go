package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"art-auction-backend/internal/bidding"
	"art-auction-backend/internal/logger"
	"art-auction-backend/internal/models"
	"art-auction-backend/internal/services"
	"art-auction-backend/internal/supabase"
)

// respondError writes the error envelope. The upstream detail goes to message
// except in release mode, where it is only logged.
func respondError(c *gin.Context, status int, summary string, err error) {
	resp := models.ErrorResponse{Error: summary}
	if err != nil {
		if status >= http.StatusInternalServerError {
			logger.Error(summary, map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
		}
		if gin.Mode() != gin.ReleaseMode {
			resp.Message = err.Error()
		}
	}
	c.JSON(status, resp)
}

// respondStoreError maps a store failure to 404 or 500.
func respondStoreError(c *gin.Context, notFound, summary string, err error) {
	if errors.Is(err, supabase.ErrNotFound) {
		respondError(c, http.StatusNotFound, notFound, nil)
		return
	}
	respondError(c, http.StatusInternalServerError, summary, err)
}

// bidStatus maps a bid placement error to its HTTP status.
func bidStatus(err error) int {
	switch {
	case errors.Is(err, bidding.ErrBidTooLow):
		return http.StatusConflict
	case errors.Is(err, bidding.ErrNoActiveAuction):
		return http.StatusNotFound
	case errors.Is(err, bidding.ErrInvalidBid), errors.Is(err, bidding.ErrMissingTarget):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func authStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrProvider):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// parseIDParam reads an integer path parameter, writing a 400 when it is not one.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	if raw == "" {
		respondError(c, http.StatusBadRequest, "Missing path param `"+name+"`", nil)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "`"+name+"` must be an integer", nil)
		return 0, false
	}
	return id, true
}
