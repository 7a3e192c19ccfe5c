package repository

import (
	"github.com/taskportal/backend/internal/models"
	"gorm.io/gorm"
)

// GormStatsRepository is a GORM implementation of StatsRepository
type GormStatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &GormStatsRepository{db: db}
}

// CountUsers counts all user rows
func (r *GormStatsRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// CountDistinctRoles counts the distinct role values in use
func (r *GormStatsRepository) CountDistinctRoles() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Distinct("role").Count(&count).Error
	return count, err
}

// CountTasksByStatus groups tasks by status
func (r *GormStatsRepository) CountTasksByStatus() ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.Model(&models.Task{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}

// RecentUsers returns the newest users first
func (r *GormStatsRepository) RecentUsers(limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id DESC").Limit(limit).Find(&users).Error
	return users, err
}

// RecentTasks returns the newest tasks first, with the assignee joined in
func (r *GormStatsRepository) RecentTasks(limit int) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Preload("Assignee").Order("id DESC").Limit(limit).Find(&tasks).Error
	return tasks, err
}
