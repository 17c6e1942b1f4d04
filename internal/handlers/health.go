package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"art-auction-backend/internal/models"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler godoc
// @Summary     Health check
// @Description Returns the health status of the API and its optional backends
// @Tags        health
// @Accept      json
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Failure     503 {object} models.HealthResponse
// @Router      /health [get]
func HealthHandler(database, cache Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		response := models.HealthResponse{
			Status:   "ok",
			Database: check(ctx, database),
			Cache:    check(ctx, cache),
		}

		status := http.StatusOK
		if response.Database == "down" {
			response.Status = "degraded"
			status = http.StatusServiceUnavailable
		} else if response.Cache == "down" {
			response.Status = "degraded"
		}
		c.JSON(status, response)
	}
}

func check(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
