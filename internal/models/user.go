package models

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleUser     Role = "user"
)

// ParseRole maps a stored role string onto the closed role set. Anything
// unrecognized is treated as employee, the least-privileged role.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleEmployee, RoleUser:
		return Role(s)
	default:
		return RoleEmployee
	}
}

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	FullName     string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"type:varchar(50)" json:"phone"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Gender       string    `gorm:"type:varchar(20)" json:"gender"`
	DateOfBirth  string    `gorm:"type:varchar(20)" json:"dob"`
	Address      string    `gorm:"type:text" json:"address"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Status       string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Qualifications []Qualification `gorm:"foreignKey:UserID" json:"qualifications,omitempty"`
	AssignedTasks  []Task          `gorm:"foreignKey:AssignedTo" json:"-"`
}
