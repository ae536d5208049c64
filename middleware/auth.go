package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/PaynestHQ/paynest-mobile/models"
	"github.com/PaynestHQ/paynest-mobile/utils"
)

const userIDKey = "user_id"

// AuthMiddleware validates the Bearer token and stores the user ID on the
// request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"code":    models.CodeUnauthorized,
				"message": "Authorization token required",
			})
			c.Abort()
			return
		}

		userID, err := utils.ParseAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"code":    models.CodeUnauthorized,
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserID returns the authenticated user ID, or "" when unauthenticated.
func GetUserID(c *gin.Context) string {
	id, _ := c.Get(userIDKey)
	s, _ := id.(string)
	return s
}
