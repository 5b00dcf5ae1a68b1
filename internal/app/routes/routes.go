package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/adjei/scholarhub/internal/app/controllers"
	"github.com/adjei/scholarhub/internal/app/models"
	"github.com/adjei/scholarhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	schemeController *controllers.SchemeController,
	applicationController *controllers.ApplicationController,
	documentController *controllers.DocumentController,
	bankDetailController *controllers.BankDetailController,
	notificationController *controllers.NotificationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// The catalog of open scholarships is browsable without an account.
	schemes := v1.Group("/schemes")
	{
		schemes.GET("", schemeController.ListOpen)
		schemes.GET("/:id", schemeController.Get)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		users := authenticated.Group("/users")
		{
			users.GET("/me", userController.GetProfile)
			users.PUT("/me", userController.UpdateProfile)
			users.PUT("/me/password", userController.ChangePassword)
		}

		applications := authenticated.Group("/applications")
		{
			applications.POST("", applicationController.Submit)
			applications.GET("", applicationController.List)
			applications.GET("/track/:number", applicationController.GetStatus)
			applications.GET("/:id", applicationController.Get)
			applications.POST("/:id/documents", documentController.Upload)
			applications.GET("/:id/documents", documentController.List)
		}

		authenticated.GET("/documents/:id", documentController.Get)
		authenticated.DELETE("/documents/:id", documentController.Delete)

		bankDetails := authenticated.Group("/bank-details")
		{
			bankDetails.POST("", bankDetailController.Submit)
			bankDetails.GET("/:number", bankDetailController.Get)
		}

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.List)
			notifications.PUT("/:id/read", notificationController.MarkRead)
		}

		// --- Admin routes ---
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.GET("/schemes", schemeController.ListAll)
			admin.POST("/schemes", schemeController.Create)
			admin.PUT("/schemes/:id", schemeController.Update)
			admin.DELETE("/schemes/:id", schemeController.Delete)

			admin.GET("/applications/:id", applicationController.AdminGet)
			admin.PUT("/applications/:id/status", applicationController.SetStatus)
			admin.GET("/applications/:id/bank-details", bankDetailController.AdminGet)
		}
	}
}
