package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"patrimonio/internal/clients/coingecko"
	"patrimonio/internal/handlers"
	"patrimonio/internal/logger"
	"patrimonio/internal/middleware"
	"patrimonio/internal/models"
	"patrimonio/internal/services"
	"patrimonio/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// appOptions customize the upstream dependencies wired into the test stack.
type appOptions struct {
	geminiKey string
	generator services.TextGenerator
	fetcher   services.PriceFetcher
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// stubGenerator returns a fixed reply for every prompt.
type stubGenerator struct {
	reply string
	err   error
}

func (s *stubGenerator) GenerateContent(_ context.Context, _ string) (string, error) {
	return s.reply, s.err
}

// stubFetcher returns fixed quotes for every basket request.
type stubFetcher struct {
	quotes map[string]coingecko.Quote
	err    error
}

func (s *stubFetcher) SimplePrice(_ context.Context, _ []string) (map[string]coingecko.Quote, error) {
	return s.quotes, s.err
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Portfolio{},
		&models.Allocation{},
		&models.Transaction{},
		&models.ChatHistory{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack with stubbed upstreams.
func setupApp(t *testing.T) *testApp {
	t.Helper()
	return setupAppWith(t, appOptions{
		geminiKey: "test-key",
		generator: &stubGenerator{reply: "Respuesta de prueba"},
		fetcher: &stubFetcher{quotes: map[string]coingecko.Quote{
			"bitcoin":     {USD: 95000, USD24hChange: 1.2},
			"ethereum":    {USD: 3400, USD24hChange: -0.4},
			"solana":      {USD: 180, USD24hChange: 2.8},
			"tether-gold": {USD: 2650, USD24hChange: 0.1},
		}},
	})
}

// setupAppWith creates a full application stack backed by an isolated
// in-memory SQLite and the given upstream stubs.
func setupAppWith(t *testing.T, opts appOptions) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	portfolioService := services.NewPortfolioService(db)
	transactionService := services.NewTransactionService(db)
	analyticsService := services.NewAnalyticsService(db)
	chatService := services.NewChatService(db, opts.geminiKey, opts.generator)
	priceService := services.NewPriceService(opts.fetcher)

	// Handlers
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	chatHandler := handlers.NewChatHandler(chatService)
	priceHandler := handlers.NewPriceHandler(priceService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

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

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// parseJSONArray parses the response body into a slice.
func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createPortfolio creates a portfolio through the API and returns its ID.
func (app *testApp) createPortfolio(t *testing.T, body string) float64 {
	t.Helper()
	rec := app.request("POST", "/api/portfolios", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create portfolio failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["id"].(float64)
}
