package routes

import (
	"github.com/christophe77/NovaBlog/internal/controllers"
	"github.com/christophe77/NovaBlog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(
	router *gin.Engine,
	articleController *controllers.ArticleController,
	settingsController *controllers.SettingsController,
	dashboardController *controllers.DashboardController,
	homepageController *controllers.HomepageController,
	uploadController *controllers.UploadController,
) {
	adminRoutes := router.Group("/api/admin")
	adminRoutes.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminRoutes.GET("/articles", articleController.GetAllArticles)
		adminRoutes.POST("/articles", articleController.CreateArticle)
		adminRoutes.GET("/articles/:id", articleController.GetArticleByID)
		adminRoutes.PUT("/articles/:id", articleController.UpdateArticle)
		adminRoutes.DELETE("/articles/:id", articleController.DeleteArticle)
		adminRoutes.POST("/articles/:id/publish", articleController.PublishArticle)
		adminRoutes.POST("/articles/:id/regenerate", articleController.RegenerateArticle)

		adminRoutes.POST("/ai/generate-article", articleController.GenerateArticle)

		adminRoutes.GET("/settings", settingsController.GetSettings)
		adminRoutes.PUT("/settings", settingsController.UpdateSettings)

		adminRoutes.GET("/dashboard/stats", dashboardController.GetStats)
		adminRoutes.POST("/scheduler/generate-now", dashboardController.GenerateNow)

		adminRoutes.GET("/homepage/config", homepageController.GetConfig)
		adminRoutes.PUT("/homepage/config", homepageController.UpdateConfig)
		adminRoutes.POST("/homepage/generate-alt", homepageController.GenerateAlt)
		adminRoutes.POST("/homepage/generate-seo", homepageController.GenerateSEO)

		adminRoutes.POST("/upload/article-image", uploadController.UploadArticleImage)
		adminRoutes.POST("/upload/homepage-image", uploadController.UploadHomepageImage)
		adminRoutes.POST("/upload/logo", uploadController.UploadLogo)
	}
}
