package dto

import (
	"time"

	"github.com/taskportal/backend/internal/models"
)

// TaskRowDTO represents a task in list responses, joined with the assignee's
// email the way the task tables render it.
type TaskRowDTO struct {
	ID            uint64              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Priority      models.TaskPriority `json:"priority"`
	Status        models.TaskStatus   `json:"status"`
	DueDate       *time.Time          `json:"due_date"`
	AssignedEmail string              `json:"assigned_email"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// RecentTaskDTO represents a row in the dashboard recent-tasks feed.
type RecentTaskDTO struct {
	ID           uint64              `json:"id"`
	Title        string              `json:"title"`
	Priority     models.TaskPriority `json:"priority"`
	Status       models.TaskStatus   `json:"status"`
	DueDate      *time.Time          `json:"due_date"`
	CreatedAt    time.Time           `json:"created_at"`
	AssignedUser string              `json:"assigned_user"`
}

// ToTaskRowDTO converts a Task model to TaskRowDTO. The assignee email is
// empty when the joined user row is gone.
func ToTaskRowDTO(task models.Task) TaskRowDTO {
	return TaskRowDTO{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		Priority:      task.Priority,
		Status:        task.Status,
		DueDate:       task.DueDate,
		AssignedEmail: task.Assignee.Email,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}
}

// ToTaskRowDTOs converts a slice of tasks to list rows
func ToTaskRowDTOs(tasks []models.Task) []TaskRowDTO {
	rows := make([]TaskRowDTO, len(tasks))
	for i, task := range tasks {
		rows[i] = ToTaskRowDTO(task)
	}
	return rows
}

// ToRecentTaskDTOs converts tasks to recent-feed rows
func ToRecentTaskDTOs(tasks []models.Task) []RecentTaskDTO {
	rows := make([]RecentTaskDTO, len(tasks))
	for i, task := range tasks {
		rows[i] = RecentTaskDTO{
			ID:           task.ID,
			Title:        task.Title,
			Priority:     task.Priority,
			Status:       task.Status,
			DueDate:      task.DueDate,
			CreatedAt:    task.CreatedAt,
			AssignedUser: task.Assignee.Email,
		}
	}
	return rows
}
