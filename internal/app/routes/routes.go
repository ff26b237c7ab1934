// Package routes wires controllers to URL paths
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkaraca/campushub/internal/app/controllers"
	"github.com/mkaraca/campushub/internal/app/models"
	"github.com/mkaraca/campushub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	departmentController *controllers.DepartmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public department routes
	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.List)
		departments.GET("/:id", departmentController.Get)
	}

	// Public auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/verify-email", authController.VerifyEmail)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// Authenticated routes
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		users := authenticated.Group("/users")
		{
			users.GET("/me", userController.GetProfile)
			users.PUT("/me", userController.UpdateProfile)
			users.PUT("/me/picture", userController.UpdateProfilePicture)
		}

		// Department management is reference-data administration
		admin := authenticated.Group("/departments")
		admin.Use(authMiddleware.RequireRole(models.RoleAdmin))
		{
			admin.PUT("", departmentController.Save)
		}
	}
}
