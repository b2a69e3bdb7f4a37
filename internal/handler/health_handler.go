package handler

import (
	"context"
	"net/http"
	"time"

	"business_manager/internal/logging"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *pgxpool.Pool and by pgxmock pools
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the database answers
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logging.FromContext(ctx).Error("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
}
