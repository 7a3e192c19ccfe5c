package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taskportal/backend/internal/dto"
	apierrors "github.com/taskportal/backend/internal/errors"
	"github.com/taskportal/backend/internal/middleware"
	"github.com/taskportal/backend/internal/models"
	"github.com/taskportal/backend/internal/services"
)

// UserTaskHandler exposes the logged-in user's task surface: their visible
// task list and the ownership-checked status update.
type UserTaskHandler struct {
	taskService *services.TaskService
}

// NewUserTaskHandler creates a new UserTaskHandler.
func NewUserTaskHandler(taskService *services.TaskService) *UserTaskHandler {
	return &UserTaskHandler{
		taskService: taskService,
	}
}

// ListMyTasks returns the caller's visible tasks wrapped in the
// {success, count, tasks} envelope the user dashboard consumes.
func (h *UserTaskHandler) ListMyTasks(c *gin.Context) {
	principal, exists := middleware.GetPrincipal(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	tasks, err := h.taskService.List(principal, 0, 0)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	rows := dto.ToTaskRowDTOs(tasks)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(rows),
		"tasks":   rows,
	})
}

// UpdateStatus transitions a task's status. Employees may only touch tasks
// assigned to them.
func (h *UserTaskHandler) UpdateStatus(c *gin.Context) {
	principal, exists := middleware.GetPrincipal(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	type UpdateStatusRequest struct {
		Status string `json:"status" binding:"omitempty,oneof='Pending' 'In Progress' 'Completed'"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateStatus(principal, taskID, models.TaskStatus(req.Status))
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task status updated",
		"task":    dto.ToTaskRowDTO(*task),
	})
}
