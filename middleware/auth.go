// auth.go - JWT authentication middleware

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"feedback-backend/auth"

	"github.com/gin-gonic/gin"
)

// AdminKey is the gin context key holding the authenticated admin username.
const AdminKey = "admin"

// AuthMiddleware gates a route group behind the admin bearer token.
// Missing or malformed header -> 401. Expired token -> 403 with an explicit
// message so the frontend can prompt a re-login. Any other verification
// failure -> 403.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// STEP 1: Extract the Authorization header
		header := c.GetHeader("Authorization")                     // Get Authorization header
		if header == "" || !strings.HasPrefix(header, "Bearer ") { // If missing or invalid format
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access token missing or invalid"}) // Return 401 Unauthorized
			return
		}

		// STEP 2: Verify the token through the token service
		tokenStr := strings.TrimPrefix(header, "Bearer ") // Remove 'Bearer ' prefix
		username, err := auth.VerifyToken(tokenStr, secret)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) { // Expired gets its own message so the frontend can prompt a re-login
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Token expired, please log in again"})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid token"}) // Any other failure
			return
		}

		// STEP 3: Store the admin identity in context and continue
		c.Set(AdminKey, username)
		c.Next()
	}
}
