package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Juls010/bluvi-backend/domain"
)

// AuthMiddleware creates authentication middleware. Tokens are stateless: the
// signature, claims and expiry are the whole validity check.
func AuthMiddleware(tokenSvc domain.TokenService) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(tokenParts[1])
		if err != nil {
			switch err {
			case domain.ErrTokenExpired:
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token expired"})
			case domain.ErrTokenInvalid, domain.ErrTokenMalformed:
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token validation failed"})
			}
			c.Abort()
			return
		}

		// String form for Casbin compatibility
		c.Set("user_id", fmt.Sprintf("%d", claims.UserID))
		c.Set("user_role", claims.Role)

		c.Next()
	})
}
