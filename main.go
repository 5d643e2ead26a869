package main

import (
	"log"
	"time"

	"doclyn-be/internal/cache"
	"doclyn-be/internal/config"
	"doclyn-be/internal/controllers"
	"doclyn-be/internal/database"
	"doclyn-be/internal/middleware"
	"doclyn-be/internal/repository"
	"doclyn-be/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close() // Close connection when program exits

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repository
	userRepo := repository.NewUserRepository(db)

	// Initialize service
	accountService := service.NewAccountService(
		userRepo,
		cacheClient,
		cfg.AccountMode,
		time.Duration(cfg.CacheTTLMinutes)*time.Minute,
	)

	// Initialize controller
	userController := controllers.NewUserController(accountService)

	// Create a Gin router
	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// API routes group
	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/login", userController.Login)
			users.GET("/health", userController.Health)
		}
	}

	// Start the server on the configured port
	log.Printf("User service starting in %s mode on http://localhost:%s", cfg.AccountMode, cfg.Port)
	router.Run(":" + cfg.Port)
}
