package main

import (
	"log"
	"net/http"
	"time"

	"fitcoach/database"
	"fitcoach/docs"
	"fitcoach/internal/cache"
	"fitcoach/internal/completion"
	"fitcoach/internal/config"
	"fitcoach/internal/controllers"
	"fitcoach/internal/middleware"
	"fitcoach/internal/planner"
	"fitcoach/internal/repository"
	"fitcoach/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Validate configuration before opening any connection: a missing key is
	// reported here, not on the first request that needs it.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	docs.SwaggerInfo.Title = "FitCoach API"
	docs.SwaggerInfo.Description = "AI-generated 7-day workout and diet plans with workout, meal and weight tracking."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	if err := database.ConnectDatabase(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(database.DB)
	planRepo := repository.NewPlanRepository(database.DB)
	workoutLogRepo := repository.NewWorkoutLogRepository(database.DB)
	mealLogRepo := repository.NewMealLogRepository(database.DB)
	weightLogRepo := repository.NewWeightLogRepository(database.DB)

	completionClient, err := completion.NewClient()
	if err != nil {
		log.Fatalf("Failed to create completion client: %v", err)
	}

	var quoteCache *cache.RedisClient
	if cfg.RedisURL != "" {
		quoteCache, err = cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Redis unavailable, quotes will not be cached: %v", err)
			quoteCache = nil
		} else {
			defer quoteCache.Close()
		}
	}

	style := planner.DefaultStyleConfig()

	authController := controllers.NewAuthController(userRepo, cfg.GoogleClientID, cfg.JWTSecret)
	planController := controllers.NewPlanController(planRepo, completionClient, style)
	logController := controllers.NewLogController(workoutLogRepo, mealLogRepo, weightLogRepo)
	quoteController := controllers.NewQuoteController(completionClient, quoteCache)
	imageController := controllers.NewImageController()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "FitCoach API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	auth := middleware.AuthMiddleware(cfg.JWTSecret)

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterPlanRoutes(router, planController, auth)
	routes.RegisterLogRoutes(router, logController, auth)
	routes.RegisterQuoteRoutes(router, quoteController)
	routes.RegisterImageRoutes(router, imageController)
	routes.RegisterSwaggerRoutes(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
