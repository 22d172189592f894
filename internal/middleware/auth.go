package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
)

// AuthMiddleware verifies the bearer token and stores the caller's
// identity in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// RequireRoles restricts the route to the given roles. Must run after
// AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}
		if !roleSet[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}
		c.Next()
	}
}

// GetUserID extracts the authenticated user id set by AuthMiddleware.
func GetUserID(c *gin.Context) (string, bool) {
	val, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}

// GetUserRole extracts the caller's role; tokens store it as a string.
func GetUserRole(c *gin.Context) (models.UserRole, bool) {
	val, exists := c.Get("role")
	if !exists {
		return "", false
	}
	switch v := val.(type) {
	case models.UserRole:
		return v, true
	case string:
		return models.UserRole(v), true
	default:
		return "", false
	}
}
