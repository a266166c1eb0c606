package middleware

import (
	"StoreBackend/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"log"
	"strings"
)

// AuthMiddleware resolves the bearer token into a request-scoped identity.
// Requests without a valid token pass through anonymous; the gates below
// decide whether that is acceptable for a route.
func AuthMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tok := strings.TrimPrefix(authHeader, "Bearer ")

		if tok == "" {
			c.Next()
			return
		}

		userID, role, err := token.Validate(db, secret, tok)
		if err != nil {
			log.Printf("token validation failed: %v\n", err)
			c.Next()
			return
		}

		c.Set("Token", tok)
		c.Set("UserID", userID)
		c.Set("Role", role)
		c.Next()
	}
}
