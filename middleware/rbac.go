package middleware

import (
	"blog-api/authz"

	"github.com/gin-gonic/gin"
)

// RequirePermission gates a route on a permission token. Ownership checks
// stay in the services, since they need the resource loaded first.
func RequirePermission(engine *authz.Engine, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := engine.Decide(CurrentUser(c), permission); err != nil {
			HTTPHelper.SendError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
