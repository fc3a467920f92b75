package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/R3Claimers/InsiderJobs/models"
)

// HealthHandler reports liveness
type HealthHandler struct {
	version string
	now     func() time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version, now: time.Now}
}

// Health returns the server status
// @Summary Health check
// @Description Check if the server is running
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

// Root answers the API root with a plain text banner
// @Summary API root
// @Tags Health
// @Produce plain
// @Success 200 {string} string "API working"
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "API working")
}
