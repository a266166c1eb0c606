package middleware

import (
	"StoreBackend/models"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

// CheckAdminPermissionMiddleware aborts requests from non-admin identities.
func CheckAdminPermissionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("Role")
		if !exists {
			log.Println("role missing from authenticated request")
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Internal server error",
			})
			c.Abort()
			return
		}
		if role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Forbidden",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
