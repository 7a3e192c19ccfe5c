package services

import (
	"context"
	"fmt"

	"github.com/taskportal/backend/internal/cache"
	"github.com/taskportal/backend/internal/constants"
	"github.com/taskportal/backend/internal/dto"
	"github.com/taskportal/backend/internal/models"
	"github.com/taskportal/backend/internal/repository"
)

const (
	statsCacheKey       = "dashboard:stats"
	recentUsersCacheKey = "dashboard:recent-users"
	recentTasksCacheKey = "dashboard:recent-tasks"
)

// StatsService produces the read-only dashboard rollups. The dashboard polls
// these on a fixed interval, so results go through a short-TTL cache when one
// is configured; reads stay independent and side-effect-free either way.
type StatsService struct {
	statsRepo repository.StatsRepository
	cache     *cache.Cache
}

// NewStatsService creates a new StatsService. A nil cache disables caching.
func NewStatsService(statsRepo repository.StatsRepository, readCache *cache.Cache) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
		cache:     readCache,
	}
}

// GetStats counts users, distinct roles, and tasks grouped by status. A
// status outside the three recognized buckets still counts toward the total
// but lands in no bucket.
func (s *StatsService) GetStats(ctx context.Context) (*dto.StatsDTO, error) {
	var cached dto.StatsDTO
	if s.cache.GetJSON(ctx, statsCacheKey, &cached) {
		return &cached, nil
	}

	totalUsers, err := s.statsRepo.CountUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	totalRoles, err := s.statsRepo.CountDistinctRoles()
	if err != nil {
		return nil, fmt.Errorf("failed to count roles: %w", err)
	}

	statusCounts, err := s.statsRepo.CountTasksByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	stats := dto.StatsDTO{
		TotalUsers: totalUsers,
		TotalRoles: totalRoles,
	}
	for _, bucket := range statusCounts {
		stats.TotalTasks += bucket.Count

		switch models.TaskStatus(bucket.Status) {
		case models.TaskStatusCompleted:
			stats.CompletedTasks = bucket.Count
		case models.TaskStatusPending:
			stats.PendingTasks = bucket.Count
		case models.TaskStatusInProgress:
			stats.InProgressTasks = bucket.Count
		}
	}

	s.cache.SetJSON(ctx, statsCacheKey, stats)
	return &stats, nil
}

// RecentUsers returns the five most recently created users, newest first.
func (s *StatsService) RecentUsers(ctx context.Context) ([]dto.RecentUserDTO, error) {
	var cached []dto.RecentUserDTO
	if s.cache.GetJSON(ctx, recentUsersCacheKey, &cached) {
		return cached, nil
	}

	users, err := s.statsRepo.RecentUsers(constants.RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent users: %w", err)
	}

	rows := dto.ToRecentUserDTOs(users)
	s.cache.SetJSON(ctx, recentUsersCacheKey, rows)
	return rows, nil
}

// RecentTasks returns the five most recently created tasks, newest first,
// joined with the assignee's email.
func (s *StatsService) RecentTasks(ctx context.Context) ([]dto.RecentTaskDTO, error) {
	var cached []dto.RecentTaskDTO
	if s.cache.GetJSON(ctx, recentTasksCacheKey, &cached) {
		return cached, nil
	}

	tasks, err := s.statsRepo.RecentTasks(constants.RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent tasks: %w", err)
	}

	rows := dto.ToRecentTaskDTOs(tasks)
	s.cache.SetJSON(ctx, recentTasksCacheKey, rows)
	return rows, nil
}
