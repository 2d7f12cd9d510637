package middleware

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"todo_service/internal/token" // Token verification

	"github.com/gin-gonic/gin" // Gin web framework
)

// UserIDKey is the gin context key the authenticated user's id is stored under
const UserIDKey = "userID"

// Verifier validates a bearer token and returns its claims
type Verifier interface {
	Verify(tokenStr string) (*token.Claims, error)
}

// JWTAuthMiddleware validates bearer tokens and extracts user information.
// Expired tokens and invalid/tampered tokens produce distinct 401 messages.
func JWTAuthMiddleware(tokens Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		claims, err := tokens.Verify(tokenStr)                // Verify signature and expiry
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				// Lifetime has passed
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token expired"})
				return
			}
			// Signature mismatch or malformed token
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}
		c.Set(UserIDKey, claims.UserID) // Store userID in context
		c.Next()                        // Proceed to the next handler
	}
}
