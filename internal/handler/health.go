package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Health serves liveness, readiness and metrics endpoints.
type Health struct {
	started time.Time
	ready   func() bool
}

// NewHealth builds the health handler. ready reports whether the store
// is reachable; nil means always ready.
func NewHealth(ready func() bool) *Health {
	return &Health{started: time.Now().UTC(), ready: ready}
}

func (h *Health) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
		"uptime": time.Since(h.started).String(),
	})
}

func (h *Health) ReadinessCheck(c *gin.Context) {
	if h.ready != nil && !h.ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (h *Health) MetricsHandler(c *gin.Context) {
	promhttp.Handler().ServeHTTP(c.Writer, c.Request)
}
