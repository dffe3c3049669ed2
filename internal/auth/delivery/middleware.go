package delivery

import (
	"net/http"
	"strings"

	"staffdir-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates protected routes behind a Bearer access token.
// Missing header is 401, an invalid or expired token is 403; on success
// the decoded claims are attached to the request context.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authUsecase.Authenticate(parts[1])
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
