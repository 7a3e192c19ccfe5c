package repository

import (
	"errors"
	"fmt"

	"github.com/taskportal/backend/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrEmailTaken is returned when the registration transaction finds the
	// email already present.
	ErrEmailTaken = errors.New("user repository: email already registered")
	// ErrCreateUser is returned when inserting the user row fails inside the
	// registration transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
	// ErrCreateQualification is returned when inserting a qualification row
	// fails inside the registration transaction.
	ErrCreateQualification = errors.New("user repository: create qualification failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// CreateWithQualifications creates the user row and one qualification row per
// entry, in submitted order, atomically. The email existence check runs inside
// the same transaction; the unique index on users.email backstops the race
// between two concurrent registrations.
func (r *GormUserRepository) CreateWithQualifications(user *models.User, qualifications []models.Qualification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if count > 0 {
			return ErrEmailTaken
		}

		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		for i := range qualifications {
			qualifications[i].UserID = user.ID
			if err := tx.Create(&qualifications[i]).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrCreateQualification, err)
			}
		}

		return nil
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CountQualificationsByUserID counts the qualification rows owned by a user
func (r *GormUserRepository) CountQualificationsByUserID(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Qualification{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
