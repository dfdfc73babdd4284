package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"patrimonio/internal/clients/coingecko"
	"patrimonio/internal/clients/gemini"
	"patrimonio/internal/config"
	"patrimonio/internal/database"
	"patrimonio/internal/handlers"
	"patrimonio/internal/logger"
	"patrimonio/internal/middleware"
	"patrimonio/internal/services"
	"patrimonio/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "patrimonio/internal/docs" // Import swagger docs
)

// @title           Patrimonio API
// @version         1.0
// @description     Patrimonio is a personal finance tracker backend: portfolios, target allocations, a transaction ledger, derived analytics, and proxied AI chat and live price feeds.

// @host      localhost:5000
// @BasePath  /api

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

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(appConfig.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	portfolioService := services.NewPortfolioService(db)
	transactionService := services.NewTransactionService(db)
	analyticsService := services.NewAnalyticsService(db)
	chatService := services.NewChatService(db, appConfig.GeminiAPIKey, gemini.NewClient(appConfig.GeminiAPIKey))
	priceService := services.NewPriceService(coingecko.NewClient())

	// Initialize handlers
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	chatHandler := handlers.NewChatHandler(chatService)
	priceHandler := handlers.NewPriceHandler(priceService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(appConfig.AllowedOrigins))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Portfolio Tracker API is running",
			"timestamp": time.Now().UTC(),
		})
	})

	api.POST("/chat", chatHandler.Chat)
	api.GET("/chat/history", chatHandler.GetHistory)
	api.DELETE("/chat/history", chatHandler.ClearHistory)

	portfolios := api.Group("/portfolios")
	portfolios.GET("", portfolioHandler.ListPortfolios)
	portfolios.POST("", portfolioHandler.CreatePortfolio)
	portfolios.GET("/:id", portfolioHandler.GetPortfolio)
	portfolios.PUT("/:id", portfolioHandler.UpdatePortfolio)
	portfolios.DELETE("/:id", portfolioHandler.DeletePortfolio)
	portfolios.GET("/:id/transactions", transactionHandler.ListTransactions)
	portfolios.POST("/:id/transactions", transactionHandler.CreateTransaction)
	portfolios.GET("/:id/analytics", analyticsHandler.GetPortfolioAnalytics)

	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	api.GET("/prices", priceHandler.GetLivePrices)

	log.Infof("Starting Patrimonio backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
