package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"patrimon/internal/config"
	"patrimon/internal/database"
	"patrimon/internal/handlers"
	"patrimon/internal/insights"
	"patrimon/internal/kvstore"
	"patrimon/internal/logger"
	"patrimon/internal/marketdata"
	"patrimon/internal/middleware"
	"patrimon/internal/services"
	"patrimon/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "patrimon/internal/docs" // Import swagger docs
)

// @title           Patrimon API
// @version         1.0
// @description     Patrimon is a personal finance dashboard API covering portfolio reporting, financial goals, institution connections and passive-income simulation.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()
	ctx := context.Background()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Redis backs preferences and the market-data cache. A missing
	// Redis is tolerated: preferences degrade to "not set" and quotes
	// go uncached.
	var rdb *redis.Client
	if client, err := kvstore.NewRedisClient(appConfig.RedisAddr, appConfig.RedisPassword); err != nil {
		log.Warnf("Redis unavailable, preferences and quote caching disabled: %v", err)
	} else {
		rdb = client
	}
	prefs := kvstore.NewStore(rdb, "prefs")

	// Market data and insights both ride on Gemini. Startup does not
	// fail without an API key; simulations fall back to manual entry
	// and insights to the canned message.
	var provider marketdata.Provider
	if gemini, err := marketdata.NewGeminiProvider(ctx, appConfig.GeminiModel); err != nil {
		log.Warnf("Gemini unavailable, simulations require manual entry: %v", err)
	} else {
		provider = marketdata.NewCachingProvider(rdb, 5*time.Minute, gemini, "quotes")
	}

	var generator services.InsightGenerator
	if g, err := insights.NewGenerator(ctx, appConfig.GeminiModel); err != nil {
		log.Warnf("Insight generator unavailable: %v", err)
	} else {
		generator = g
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	institutionService := services.NewInstitutionService(db)
	assetService := services.NewAssetService(db)
	portfolioService := services.NewPortfolioService(assetService)
	goalService := services.NewGoalService(db)
	simulationService := services.NewSimulationService(assetService, provider, prefs)
	insightService := services.NewInsightService(assetService, generator)
	preferenceService := services.NewPreferenceService(prefs)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, insightService)
	assetHandler := handlers.NewAssetHandler(assetService)
	institutionHandler := handlers.NewInstitutionHandler(institutionService, auditService)
	goalHandler := handlers.NewGoalHandler(goalService, auditService)
	simulationHandler := handlers.NewSimulationHandler(simulationService)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/reset-password", authHandler.ResetPassword)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/logout", authHandler.Logout)

	// User profile
	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/profile", authHandler.UpdateProfile)

	// Portfolio reporting routes
	portfolio := protected.Group("/portfolio")
	portfolio.GET("/stats", portfolioHandler.GetStats)
	portfolio.GET("/allocation", portfolioHandler.GetAllocation)
	portfolio.GET("/evolution", portfolioHandler.GetEvolution)
	portfolio.GET("/insights", portfolioHandler.GetInsights)

	// Asset and simulation routes
	assets := protected.Group("/assets")
	assets.GET("", assetHandler.GetAssets)
	assets.GET("/:id", assetHandler.GetAsset)
	assets.GET("/:id/simulation/target", simulationHandler.GetTarget)
	assets.POST("/:id/simulation", simulationHandler.Simulate)
	assets.POST("/:id/simulation/manual", simulationHandler.SimulateManual)

	// Institution routes
	institutions := protected.Group("/institutions")
	institutions.GET("", institutionHandler.GetInstitutions)
	institutions.GET("/catalog", institutionHandler.GetCatalog)
	institutions.POST("/connect", institutionHandler.Connect)

	// Goal routes
	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)
	goals.GET("/:id/progress", goalHandler.GetGoalProgress)

	// Preference routes
	preferences := protected.Group("/preferences")
	preferences.GET("/:key", preferenceHandler.GetPreference)
	preferences.PUT("/:key", preferenceHandler.SetPreference)

	log.Infof("Starting Patrimon backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
