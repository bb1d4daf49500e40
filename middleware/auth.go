package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/aquibk580/Shark-Electronics-Backend/models"
)

// RequireSignIn validates the JWT from the Authorization header and stores the
// caller's identity on the context for downstream handlers.
func RequireSignIn(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header is missing"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token claims"})
			c.Abort()
			return
		}

		// JSON numbers decode as float64
		userID, ok := claims["user_id"].(float64)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token claims"})
			c.Abort()
			return
		}
		role, _ := claims["role"].(float64)

		c.Set("user_id", uint(userID))
		c.Set("role", int(role))

		c.Next()
	}
}

// IsAdmin gates admin-only routes. Must run after RequireSignIn.
func IsAdmin(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role.(int) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}

// UserID pulls the authenticated user's id out of the gin context.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
