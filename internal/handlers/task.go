package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskportal/backend/internal/dto"
	apierrors "github.com/taskportal/backend/internal/errors"
	"github.com/taskportal/backend/internal/middleware"
	"github.com/taskportal/backend/internal/models"
	"github.com/taskportal/backend/internal/services"
	"github.com/taskportal/backend/internal/utils"
)

// TaskHandler exposes the admin-facing task lifecycle endpoints.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a task assigned to a user resolved by email. Admin only.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	principal, exists := middleware.GetPrincipal(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateTaskRequest struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority" binding:"omitempty,oneof=High Medium Low"`
		Status      string `json:"status" binding:"omitempty,oneof='Pending' 'In Progress' 'Completed'"`
		DueDate     string `json:"due_date"`
		Email       string `json:"email" binding:"omitempty,email"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid due date")
		return
	}

	task, err := h.taskService.Create(principal, services.CreateTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		Priority:      models.TaskPriority(req.Priority),
		Status:        models.TaskStatus(req.Status),
		DueDate:       dueDate,
		AssigneeEmail: req.Email,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task":    dto.ToTaskRowDTO(*task),
	})
}

// ListTasks returns tasks visible to the caller, newest first. Employees only
// see their own tasks; everyone else sees the full set.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	principal, exists := middleware.GetPrincipal(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	page, pageSize := optionalPagination(c)

	tasks, err := h.taskService.List(principal, page, pageSize)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskRowDTOs(tasks))
}

// UpdateTask applies a partial field update; omitted fields are unchanged.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
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

	type UpdateTaskRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Priority    *string `json:"priority" binding:"omitempty,oneof=High Medium Low"`
		Status      *string `json:"status" binding:"omitempty,oneof='Pending' 'In Progress' 'Completed'"`
		DueDate     *string `json:"due_date"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Priority != nil {
		priority := models.TaskPriority(*req.Priority)
		input.Priority = &priority
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			apierrors.BadRequest(c, "Invalid due date")
			return
		}
		input.DueDate = dueDate
	}

	task, err := h.taskService.Update(principal, taskID, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"task":    dto.ToTaskRowDTO(*task),
	})
}

// DeleteTask removes a task. Admin only.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
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

	if err := h.taskService.Delete(principal, taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

// parseDueDate accepts the date-input format or RFC3339; empty means no due
// date.
func parseDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return &parsed, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// optionalPagination reads page/limit when supplied; zero values mean the
// full, unpaginated list that the task tables historically expect.
func optionalPagination(c *gin.Context) (int, int) {
	if c.Query("page") == "" && c.Query("limit") == "" {
		return 0, 0
	}

	params := utils.GetPaginationParams(c)
	return params.Page, params.Limit
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAdminOnly):
		apierrors.Forbidden(c, "Access denied. Admin only.")
	case errors.Is(err, services.ErrTitleAndEmailRequired):
		apierrors.BadRequest(c, "Title & Email required")
	case errors.Is(err, services.ErrStatusRequired):
		apierrors.BadRequest(c, "Status required")
	case errors.Is(err, services.ErrAssigneeNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrNotTaskAssignee):
		apierrors.Forbidden(c, "Access denied")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
