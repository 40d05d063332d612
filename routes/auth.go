// routes/auth.go
package routes

import (
	"alertsystem/controllers"
	"alertsystem/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// SetupAuthRoutes configures authentication-related routes
func SetupAuthRoutes(router *gin.RouterGroup, authController *controllers.AuthController, authMiddleware *middleware.AuthMiddleware, redis *redis.Client) {
	auth := router.Group("/auth")
	auth.Use(middleware.AuthRateLimit(redis))

	// Public authentication endpoints
	auth.POST("/signin", authController.Signin)
	auth.POST("/signup", authController.Signup)

	// Protected authentication endpoints (require valid token)
	protected := auth.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/signout", authController.Signout)
		protected.GET("/me", authController.Me)
	}
}
