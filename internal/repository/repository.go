package repository

import (
	"github.com/taskportal/backend/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// CreateWithQualifications creates a user and their qualification rows
	// within a single transaction. Fails with ErrEmailTaken when the email
	// is already registered; any failure rolls the whole write back.
	CreateWithQualifications(user *models.User, qualifications []models.Qualification) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email (exact, case-sensitive match)
	FindByEmail(email string) (*models.User, error)

	// CountQualificationsByUserID counts the qualification rows owned by a user
	CountQualificationsByUserID(userID uint64) (int64, error)
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	// AssignedTo restricts the result set to one assignee. This is how
	// employee visibility is enforced at the query boundary.
	AssignedTo *uint64
	Page       int
	PageSize   int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks newest-first, joined with the assignee
	List(filter TaskFilter) ([]models.Task, error)

	// Update persists all fields of a task and refreshes updated_at
	Update(task *models.Task) error

	// Delete hard-deletes a task; reports whether a row was removed
	Delete(id uint64) (bool, error)
}

// StatusCount is one bucket of the tasks-by-status rollup
type StatusCount struct {
	Status string
	Count  int64
}

// StatsRepository defines the read-only aggregates behind the dashboard
type StatsRepository interface {
	CountUsers() (int64, error)
	CountDistinctRoles() (int64, error)
	CountTasksByStatus() ([]StatusCount, error)
	RecentUsers(limit int) ([]models.User, error)
	RecentTasks(limit int) ([]models.Task, error)
}
