package middleware

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// CheckLoginMiddleware aborts requests that carry no authenticated identity.
func CheckLoginMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, exists := c.Get("UserID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthenticated",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
