package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/taskportal/backend/internal/errors"
	"github.com/taskportal/backend/internal/services"
)

// AdminHandler serves the dashboard rollups.
type AdminHandler struct {
	statsService *services.StatsService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(statsService *services.StatsService) *AdminHandler {
	return &AdminHandler{
		statsService: statsService,
	}
}

// GetStats returns the aggregate counters for the dashboard cards.
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats(c.Request.Context())
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetRecentUsers returns the five newest users.
func (h *AdminHandler) GetRecentUsers(c *gin.Context) {
	users, err := h.statsService.RecentUsers(c.Request.Context())
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch recent users")
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetRecentTasks returns the five newest tasks with assignee emails.
func (h *AdminHandler) GetRecentTasks(c *gin.Context) {
	tasks, err := h.statsService.RecentTasks(c.Request.Context())
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch recent tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}
