package middleware

import (
	"strings"

	"blog-api/helper"
	"blog-api/models"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

var HTTPHelper = &helper.HTTPHelper{}

const userContextKey = "current_user"

// AuthMiddleware requires a valid bearer token (header or cookie) that
// resolves to a live user, and stores that user in the request context.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authorization token required")
			c.Abort()
			return
		}

		user, err := authService.VerifyToken(tokenString)
		if err != nil {
			HTTPHelper.SendError(c, err)
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the user when a valid token is present
// and silently continues as anonymous otherwise.
func OptionalAuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := extractToken(c); tokenString != "" {
			if user, err := authService.VerifyToken(tokenString); err == nil {
				c.Set(userContextKey, user)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil for anonymous
// requests.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return tokenString
		}
		return ""
	}

	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}

	return ""
}
