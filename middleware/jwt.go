package middleware

import (
	"net/http"
	"strings"

	"humanizer-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JwtAuthMiddleware only checks that the token is valid and stashes the
// user id. Credit checks happen per operation, not here: a user with
// zero credits can still read their dashboard.
func JwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			c.Abort()
			return
		}

		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return utils.ApiSecret(), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		// Numeric claims come back as float64
		userIDFloat, okID := claims["user_id"].(float64)
		if !okID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token corrupt (user_id)"})
			c.Abort()
			return
		}

		// Consistent key: "user_id" across the whole app
		c.Set("user_id", uint(userIDFloat))
		c.Next()
	}
}
