package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/taskportal/backend/internal/constants"
	apierrors "github.com/taskportal/backend/internal/errors"
	"github.com/taskportal/backend/internal/models"
	"github.com/taskportal/backend/internal/services"
)

// RequireAuth verifies the bearer token on every protected request and
// attaches the decoded principal to the request context.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			apierrors.Unauthorized(c, "Authorization token missing")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				apierrors.Unauthorized(c, "Token expired")
			} else {
				apierrors.Unauthorized(c, "Invalid token")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyRole, models.ParseRole(string(claims.Role)))
		c.Next()
	}
}

// RequireAdmin rejects principals without the admin role. It runs after
// RequireAuth; the admin-gated services repeat the check themselves, so the
// middleware and the service agree on who gets through.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, exists := GetPrincipal(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if principal.Role != models.RoleAdmin {
			apierrors.Forbidden(c, "Access denied. Admin only.")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetPrincipal retrieves the authenticated principal from context
func GetPrincipal(c *gin.Context) (models.Principal, bool) {
	rawID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return models.Principal{}, false
	}
	userID, ok := rawID.(uint64)
	if !ok {
		return models.Principal{}, false
	}

	rawRole, exists := c.Get(constants.ContextKeyRole)
	if !exists {
		return models.Principal{}, false
	}
	role, ok := rawRole.(models.Role)
	if !ok {
		return models.Principal{}, false
	}

	return models.Principal{ID: userID, Role: role}, true
}
