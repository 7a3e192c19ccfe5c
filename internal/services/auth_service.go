package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taskportal/backend/internal/constants"
	"github.com/taskportal/backend/internal/models"
	"github.com/taskportal/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("user already exists")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidPassword      = errors.New("invalid password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrFullNameRequired     = errors.New("full name is required")
	ErrEmailRequired        = errors.New("email is required")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration and credential authentication.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// QualificationInput is one submitted qualification entry.
type QualificationInput struct {
	Qualification string
	DegreeName    string
	PassingYear   string
	Percentage    string
}

// RegisterInput carries the registration profile plus the qualification list.
type RegisterInput struct {
	FullName       string
	Email          string
	Phone          string
	Password       string
	Gender         string
	DateOfBirth    string
	Address        string
	Role           string
	Qualifications []QualificationInput
}

// Register creates the user and their qualification rows in one transaction.
// Nothing is visible until the whole write commits.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return nil, ErrFullNameRequired
	}
	if input.Email == "" {
		return nil, ErrEmailRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	role := models.RoleUser
	if input.Role != "" {
		role = models.ParseRole(input.Role)
	}

	user := &models.User{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hashedPassword),
		Gender:       input.Gender,
		DateOfBirth:  input.DateOfBirth,
		Address:      input.Address,
		Role:         role,
		Status:       "active",
	}

	qualifications := make([]models.Qualification, len(input.Qualifications))
	for i, q := range input.Qualifications {
		qualifications[i] = models.Qualification{
			Qualification: q.Qualification,
			DegreeName:    q.DegreeName,
			PassingYear:   q.PassingYear,
			Percentage:    q.Percentage,
		}
	}

	if err := s.userRepo.CreateWithQualifications(user, qualifications); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to complete registration: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a session token. The two failure
// kinds stay distinct for client messaging, matching the existing contract.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidEmail
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidPassword
	}

	token, err := s.tokens.Issue(user.ID, models.ParseRole(string(user.Role)))
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}
