package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/christophe77/NovaBlog/database"
	"github.com/christophe77/NovaBlog/internal/cache"
	"github.com/christophe77/NovaBlog/internal/controllers"
	"github.com/christophe77/NovaBlog/internal/mistral"
	"github.com/christophe77/NovaBlog/internal/repository"
	"github.com/christophe77/NovaBlog/internal/services"
	"github.com/christophe77/NovaBlog/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Initialize repositories. Redis is optional: without it public
	// article reads go straight to the database.
	settingRepo := repository.NewSettingRepository(database.DB)
	taskRepo := repository.NewScheduledTaskRepository(database.DB)
	userRepo := repository.NewUserRepository(database.DB)
	resetRepo := repository.NewResetPasswordRepository(database.DB)

	var articleRepo repository.ArticleRepository
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, article cache disabled: %v", err)
		articleRepo = repository.NewArticleRepository(database.DB)
	} else {
		log.Println("Redis connection established successfully")
		articleRepo = repository.NewCachedArticleRepository(database.DB, redisClient)
	}

	// Initialize the text-generation client and the scheduler
	aiClient := mistral.NewClient()
	scheduler := services.NewScheduler(settingRepo, articleRepo, taskRepo, aiClient)

	// The scheduler only runs once the installation is configured; the
	// setup flow starts it when setup completes.
	if controllers.IsSetupComplete(userRepo, settingRepo) {
		scheduler.Start()
	} else {
		log.Println("Setup not completed, scheduler is idle")
	}
	defer scheduler.Stop()

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}

	// Initialize controllers
	publicController := controllers.NewPublicController(articleRepo, settingRepo)
	authController := controllers.NewAuthController(userRepo, resetRepo)
	setupController := controllers.NewSetupController(userRepo, settingRepo, scheduler)
	articleController := controllers.NewArticleController(articleRepo, settingRepo, aiClient)
	settingsController := controllers.NewSettingsController(settingRepo)
	dashboardController := controllers.NewDashboardController(articleRepo, taskRepo, scheduler)
	homepageController := controllers.NewHomepageController(settingRepo, aiClient)
	uploadController := controllers.NewUploadController(settingRepo, uploadsDir)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "NovaBlog API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	router.Static("/uploads", uploadsDir)

	routes.RegisterPublicRoutes(router, publicController)
	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterSetupRoutes(router, setupController)
	routes.RegisterAdminRoutes(router, articleController, settingsController, dashboardController, homepageController, uploadController)
	routes.RegisterSwaggerRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
