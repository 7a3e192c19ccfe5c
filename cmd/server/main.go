package main

import (
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/taskportal/backend/internal/cache"
	"github.com/taskportal/backend/internal/config"
	"github.com/taskportal/backend/internal/database"
	"github.com/taskportal/backend/internal/handlers"
	"github.com/taskportal/backend/internal/middleware"
	"github.com/taskportal/backend/internal/repository"
	"github.com/taskportal/backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database; a failed connection halts startup
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Printf("Failed to add indexes: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.GetDB())
	taskRepo := repository.NewTaskRepository(database.GetDB())
	statsRepo := repository.NewStatsRepository(database.GetDB())

	// Initialize services
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenExpiry)
	authService := services.NewAuthService(userRepo, tokenService)
	taskService := services.NewTaskService(taskRepo, userRepo, cfg.TaskUpdateAdminOnly)
	statsService := services.NewStatsService(statsRepo, cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.StatsCacheTTL))
	pdfService := services.NewPDFService()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, pdfService)
	taskHandler := handlers.NewTaskHandler(taskService)
	userTaskHandler := handlers.NewUserTaskHandler(taskService)
	adminHandler := handlers.NewAdminHandler(statsService)

	// Initialize Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Portal API is running",
		})
	})

	requireAuth := middleware.RequireAuth(tokenService)
	requireAdmin := middleware.RequireAdmin()

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (register/login are the only unguarded operations)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/download-pdf", requireAuth, authHandler.DownloadPDF)
		}

		// Dashboard routes (protected)
		admin := api.Group("/admin")
		admin.Use(requireAuth)
		{
			admin.GET("/stats", adminHandler.GetStats)
			admin.GET("/recent-users", adminHandler.GetRecentUsers)
			admin.GET("/recent-tasks", adminHandler.GetRecentTasks)
		}

		// Task routes (protected; role checks live in the service)
		tasks := api.Group("/tasks")
		tasks.Use(requireAuth)
		{
			tasks.POST("", requireAdmin, taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", requireAdmin, taskHandler.DeleteTask)
		}

		// Logged-in user's task surface (protected)
		userTasks := api.Group("/user-tasks")
		userTasks.Use(requireAuth)
		{
			userTasks.GET("", userTaskHandler.ListMyTasks)
			userTasks.PUT("/:id/status", userTaskHandler.UpdateStatus)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
