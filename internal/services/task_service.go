package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/taskportal/backend/internal/models"
	"github.com/taskportal/backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrAdminOnly             = errors.New("access denied, admin only")
	ErrTitleAndEmailRequired = errors.New("title and email are required")
	ErrAssigneeNotFound      = errors.New("assigned user not found")
	ErrStatusRequired        = errors.New("status is required")
	ErrNotTaskAssignee       = errors.New("access denied")
)

// TaskService owns the task lifecycle: creation, visibility, mutation and
// status transitions, all conditioned on the caller's role and identity.
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository

	// updateAdminOnly narrows the generic field update to admins. Off by
	// default: historically the endpoint is open to any authenticated
	// principal, and that ambiguity is surfaced as configuration.
	updateAdminOnly bool
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository, updateAdminOnly bool) *TaskService {
	return &TaskService{
		taskRepo:        taskRepo,
		userRepo:        userRepo,
		updateAdminOnly: updateAdminOnly,
	}
}

// CreateTaskInput represents input for creating a task. The assignee is
// resolved from their email at creation time.
type CreateTaskInput struct {
	Title         string
	Description   string
	Priority      models.TaskPriority
	Status        models.TaskStatus
	DueDate       *time.Time
	AssigneeEmail string
}

// UpdateTaskInput represents a partial task update; nil fields are left
// unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Priority    *models.TaskPriority
	Status      *models.TaskStatus
	DueDate     *time.Time
}

// Create creates a task assigned to the user owning the supplied email.
// Admin principals only.
func (s *TaskService) Create(principal models.Principal, input CreateTaskInput) (*models.Task, error) {
	if principal.Role != models.RoleAdmin {
		return nil, ErrAdminOnly
	}
	if input.Title == "" || input.AssigneeEmail == "" {
		return nil, ErrTitleAndEmailRequired
	}

	assignee, err := s.userRepo.FindByEmail(input.AssigneeEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssigneeNotFound
		}
		return nil, fmt.Errorf("failed to resolve assignee: %w", err)
	}

	if input.Priority == "" {
		input.Priority = models.TaskPriorityMedium
	}
	if input.Status == "" {
		input.Status = models.TaskStatusPending
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
		DueDate:     input.DueDate,
		AssignedTo:  assignee.ID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "Assignee")
}

// List returns tasks visible to the principal, newest first. Employee
// principals only ever see tasks assigned to them; the restriction is part
// of the query, not applied client-side.
func (s *TaskService) List(principal models.Principal, page, pageSize int) ([]models.Task, error) {
	filter := repository.TaskFilter{
		Page:     page,
		PageSize: pageSize,
	}

	if principal.Role == models.RoleEmployee {
		filter.AssignedTo = &principal.ID
	}

	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// Update applies a partial field update. Omitted fields keep their stored
// values; updated_at is refreshed.
func (s *TaskService) Update(principal models.Principal, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	if s.updateAdminOnly && principal.Role != models.RoleAdmin {
		return nil, ErrAdminOnly
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "Assignee")
}

// Delete removes a task. Admin principals only.
func (s *TaskService) Delete(principal models.Principal, taskID uint64) error {
	if principal.Role != models.RoleAdmin {
		return ErrAdminOnly
	}

	deleted, err := s.taskRepo.Delete(taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if !deleted {
		return ErrTaskNotFound
	}

	return nil
}

// UpdateStatus sets a task's status. Employees may only transition tasks
// assigned to them; admins may transition any task. No status is terminal.
func (s *TaskService) UpdateStatus(principal models.Principal, taskID uint64, status models.TaskStatus) (*models.Task, error) {
	if status == "" {
		return nil, ErrStatusRequired
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if principal.Role == models.RoleEmployee && task.AssignedTo != principal.ID {
		return nil, ErrNotTaskAssignee
	}

	task.Status = status
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "Assignee")
}
