package routes

import (
	"github.com/christophe77/NovaBlog/internal/controllers"
	"github.com/christophe77/NovaBlog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.Engine, authController *controllers.AuthController) {
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/login", authController.Login)
		authRoutes.POST("/logout", authController.Logout)
		authRoutes.POST("/forgot-password", authController.ForgotPassword)
		authRoutes.POST("/reset-password", authController.ResetPassword)
		authRoutes.GET("/me", middleware.AuthMiddleware(), authController.Me)
	}
}
