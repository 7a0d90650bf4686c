package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiz/backend/internal/infrastructure/persistence"
)

// SystemHandler serves operational endpoints
type SystemHandler struct {
	BaseHandler
	db *persistence.Database
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{db: db}
}

// HealthResponse is the body of a health check
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health reports process and database liveness
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{Status: "ok", Database: "up"}
	if err := h.db.Ping(); err != nil {
		resp.Status = "degraded"
		resp.Database = "down"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
