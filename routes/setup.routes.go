package routes

import (
	"github.com/christophe77/NovaBlog/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSetupRoutes(router *gin.Engine, setupController *controllers.SetupController) {
	setupRoutes := router.Group("/api/setup")
	{
		setupRoutes.GET("/status", setupController.Status)
		setupRoutes.POST("/complete", setupController.Complete)
	}
}
