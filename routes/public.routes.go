package routes

import (
	"github.com/christophe77/NovaBlog/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(router *gin.Engine, publicController *controllers.PublicController) {
	publicRoutes := router.Group("/api/public")
	{
		publicRoutes.GET("/articles", publicController.GetPublishedArticles)
		publicRoutes.GET("/articles/:slug", publicController.GetArticleBySlug)
		publicRoutes.GET("/settings", publicController.GetPublicSettings)
		publicRoutes.GET("/homepage/config", publicController.GetHomepageConfig)
		publicRoutes.POST("/contact", publicController.SendContact)
	}
}
