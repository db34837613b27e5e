package auth

import (
	"net/http"
	"strings"

	apperrors "cleaning-ops-backend/internal/errors"
	"cleaning-ops-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets the caller's user id on the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		// ValidateJWT has already checked the subject parses
		userID := uuid.MustParse(claims.Subject)
		c.Set(logger.UserIDKey, userID)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// UserIDFromContext returns the authenticated user's id
func UserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	value, exists := c.Get(logger.UserIDKey)
	if !exists {
		return uuid.Nil, apperrors.ErrUserIDNotFound
	}
	userID, ok := value.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, apperrors.ErrUserIDNotFound
	}
	return userID, nil
}
