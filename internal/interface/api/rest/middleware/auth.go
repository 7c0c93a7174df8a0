package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"user-registration-api/internal/infrastructure/jwt"
)

const (
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
)

// AuthGate is the request-level access gate. Routes on the public
// allow-list pass through untouched; every other request must carry a
// bearer token the token service accepts, otherwise no handler runs.
// Malformed, expired and tampered tokens all collapse to 401.
func AuthGate(jwtService *jwt.Service, public map[string]struct{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := public[c.Request.Method+" "+c.FullPath()]; ok {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserEmail, claims.Email)

		c.Next()
	}
}
