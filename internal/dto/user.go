package dto

import (
	"time"

	"github.com/taskportal/backend/internal/models"
)

// UserSummaryDTO is the reduced profile returned with a successful login.
type UserSummaryDTO struct {
	ID       uint64      `json:"id"`
	FullName string      `json:"fullName"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

// RecentUserDTO represents a row in the dashboard recent-users feed.
type RecentUserDTO struct {
	ID        uint64      `json:"id"`
	FullName  string      `json:"full_name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// ToUserSummaryDTO converts a User model to UserSummaryDTO
func ToUserSummaryDTO(user models.User) UserSummaryDTO {
	return UserSummaryDTO{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// ToRecentUserDTOs converts users to recent-feed rows
func ToRecentUserDTOs(users []models.User) []RecentUserDTO {
	rows := make([]RecentUserDTO, len(users))
	for i, user := range users {
		rows[i] = RecentUserDTO{
			ID:        user.ID,
			FullName:  user.FullName,
			Email:     user.Email,
			Role:      user.Role,
			Status:    user.Status,
			CreatedAt: user.CreatedAt,
		}
	}
	return rows
}
