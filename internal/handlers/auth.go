package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskportal/backend/internal/constants"
	"github.com/taskportal/backend/internal/dto"
	apierrors "github.com/taskportal/backend/internal/errors"
	"github.com/taskportal/backend/internal/services"
)

// AuthHandler coordinates registration, login and the registration-summary
// download.
type AuthHandler struct {
	authService *services.AuthService
	pdfService  *services.PDFService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, pdfService *services.PDFService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		pdfService:  pdfService,
	}
}

// QualificationRequest is one qualification entry in the registration payload.
type QualificationRequest struct {
	Qualification string `json:"qualification"`
	DegreeName    string `json:"degreeName"`
	PassingYear   string `json:"passingYear"`
	Percentage    string `json:"percentage"`
}

// Register creates a user plus their qualification rows atomically.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		FullName       string                 `json:"fullName" binding:"required"`
		Email          string                 `json:"email" binding:"required,email"`
		Phone          string                 `json:"phone"`
		Password       string                 `json:"password" binding:"required"`
		Gender         string                 `json:"gender"`
		DateOfBirth    string                 `json:"dob"`
		Address        string                 `json:"address"`
		Role           string                 `json:"role"`
		Qualifications []QualificationRequest `json:"qualifications"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	qualifications := make([]services.QualificationInput, len(req.Qualifications))
	for i, q := range req.Qualifications {
		qualifications[i] = services.QualificationInput{
			Qualification: q.Qualification,
			DegreeName:    q.DegreeName,
			PassingYear:   q.PassingYear,
			Percentage:    q.Percentage,
		}
	}

	_, err := h.authService.Register(services.RegisterInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       req.Password,
		Gender:         req.Gender,
		DateOfBirth:    req.DateOfBirth,
		Address:        req.Address,
		Role:           req.Role,
		Qualifications: qualifications,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
	})
}

// Login authenticates credentials and returns a session token with a reduced
// profile projection.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    dto.ToUserSummaryDTO(*user),
	})
}

// DownloadPDF renders the submitted registration details as a PDF attachment.
func (h *AuthHandler) DownloadPDF(c *gin.Context) {
	type DownloadRequest struct {
		FullName       string                 `json:"fullName"`
		Email          string                 `json:"email"`
		Phone          string                 `json:"phone"`
		Gender         string                 `json:"gender"`
		DateOfBirth    string                 `json:"dob"`
		Address        string                 `json:"address"`
		Qualifications []QualificationRequest `json:"qualifications"`
	}

	var req DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	qualifications := make([]services.QualificationInput, len(req.Qualifications))
	for i, q := range req.Qualifications {
		qualifications[i] = services.QualificationInput{
			Qualification: q.Qualification,
			DegreeName:    q.DegreeName,
			PassingYear:   q.PassingYear,
			Percentage:    q.Percentage,
		}
	}

	document, err := h.pdfService.RenderRegistration(services.RegistrationDetails{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Gender:         req.Gender,
		DateOfBirth:    req.DateOfBirth,
		Address:        req.Address,
		Qualifications: qualifications,
	})
	if err != nil {
		apierrors.InternalError(c, "PDF generation failed")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=registration-details.pdf")
	c.Data(http.StatusOK, "application/pdf", document)
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFullNameRequired),
		errors.Is(err, services.ErrEmailRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, "User already exists")
	case errors.Is(err, services.ErrInvalidEmail):
		apierrors.RespondWithError(c, http.StatusUnauthorized,
			apierrors.NewAPIError(apierrors.ErrCodeInvalidCredentials, "Invalid email"))
	case errors.Is(err, services.ErrInvalidPassword):
		apierrors.RespondWithError(c, http.StatusUnauthorized,
			apierrors.NewAPIError(apierrors.ErrCodeInvalidCredentials, "Invalid password"))
	case errors.Is(err, services.ErrFailedToHashPassword):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
