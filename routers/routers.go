package routers

import (
	"StoreBackend/config"
	"StoreBackend/handlers"
	"StoreBackend/mailer"
	"StoreBackend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"net/http"
	"time"
)

const (
	credentialRateLimit  = 10
	credentialRateWindow = time.Minute
)

func SetupRouters(db *gorm.DB, rdb *redis.Client, m mailer.Sender, cfg config.Config) *gin.Engine {
	secret := cfg.App.TokenSecret
	apiBaseURL := cfg.App.APIBaseURL
	frontendURL := cfg.App.FrontendURL

	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Authorization")
		c.Next()
	})
	err := router.SetTrustedProxies(nil)
	if err != nil {
		return nil
	}

	router.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.Use(middleware.AuthMiddleware(db, secret))
	{
		// throttle the endpoints an attacker would hammer
		throttled := router.Group("/api/v1")
		throttled.Use(middleware.RateLimitMiddleware(rdb, credentialRateLimit, credentialRateWindow))
		{
			throttled.POST("/login", func(c *gin.Context) {
				handlers.LoginHandler(c, db, secret)
			})
			throttled.POST("/forgot-password", func(c *gin.Context) {
				handlers.ForgotPasswordHandler(c, db, m, frontendURL)
			})
			throttled.POST("/resend-verification", func(c *gin.Context) {
				handlers.ResendVerificationHandler(c, db, m, secret, apiBaseURL)
			})
		}

		router.POST("/api/v1/register", func(c *gin.Context) {
			handlers.RegisterHandler(c, db, m, secret, apiBaseURL)
		})
		router.POST("/api/v1/reset-password", func(c *gin.Context) {
			handlers.ResetPasswordHandler(c, db)
		})
		router.GET("/api/v1/verify-email/:user_id", func(c *gin.Context) {
			handlers.VerifyEmailHandler(c, db, secret, frontendURL)
		})

		loginRequired := router.Group("/api/v1")
		loginRequired.Use(middleware.CheckLoginMiddleware())
		{
			loginRequired.POST("/logout", func(c *gin.Context) {
				handlers.LogOutHandler(c, db)
			})
			loginRequired.POST("/change-password", func(c *gin.Context) {
				handlers.ChangePasswordHandler(c, db)
			})
			loginRequired.GET("/profile", func(c *gin.Context) {
				handlers.GetProfileHandler(c, db)
			})
			loginRequired.PUT("/profile", func(c *gin.Context) {
				handlers.UpdateProfileHandler(c, db)
			})
			loginRequired.GET("/history/:user_id", func(c *gin.Context) {
				handlers.OrderHistoryHandler(c, db)
			})
		}

		adminRequired := router.Group("/api/v1")
		adminRequired.Use(middleware.CheckLoginMiddleware(), middleware.CheckAdminPermissionMiddleware())
		{
			adminRequired.GET("/customers", func(c *gin.Context) {
				handlers.GetCustomerListHandler(c, db)
			})
		}
	}

	return router
}
