package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler answers liveness probes. The DB ping makes it honest about
// the only dependency these handlers have.
type HealthHandler struct {
	sqlDB *sql.DB
}

func NewHealthHandler(sqlDB *sql.DB) *HealthHandler {
	return &HealthHandler{sqlDB: sqlDB}
}

func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", h.Health)
}

func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
