package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusHandler serves the index and health endpoints.
type StatusHandler struct {
	health Pinger
}

// NewStatusHandler creates StatusHandler instance.
func NewStatusHandler(health Pinger) *StatusHandler {
	return &StatusHandler{health: health}
}

// Index handles GET /.
func (h *StatusHandler) Index(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"service": "accountd"})
}

// Ping handles GET /ping.
func (h *StatusHandler) Ping(c *gin.Context) {
	if err := h.health.HealthCheck(c.Request.Context()); err != nil {
		respondError(c, http.StatusInternalServerError, "database unavailable")
		return
	}
	respond(c, http.StatusOK, nil)
}
