package services

import (
	"context"
	"time"

	"patrimonio/internal/models"
)

// AllocationInput describes one target allocation nested in a portfolio create.
type AllocationInput struct {
	AssetName  string
	Percentage float64
	Color      string
}

// CreatePortfolioInput holds the fields for creating a portfolio. Nil pointer
// fields fall back to their defaults (expected return 8.0, ten year horizon).
type CreatePortfolioInput struct {
	Name                string
	Mode                models.PortfolioMode
	InitialCapital      float64
	MonthlyContribution float64
	ExpectedReturn      *float64
	YearsProjection     *int
	Allocations         []AllocationInput
}

// UpdatePortfolioInput holds the fields for updating a portfolio.
// Nil fields keep their current value.
type UpdatePortfolioInput struct {
	Name                *string
	Mode                *models.PortfolioMode
	InitialCapital      *float64
	MonthlyContribution *float64
	ExpectedReturn      *float64
	YearsProjection     *int
}

// PortfolioServicer defines the contract for portfolio-related business logic.
type PortfolioServicer interface {
	CreatePortfolio(input CreatePortfolioInput) (*models.Portfolio, error)
	GetPortfolios() ([]models.Portfolio, error)
	GetPortfolioByID(id uint) (*models.Portfolio, error)
	UpdatePortfolio(id uint, input UpdatePortfolioInput) (*models.Portfolio, error)
	DeletePortfolio(id uint) error
}

// CreateTransactionInput holds the fields for recording a ledger transaction.
type CreateTransactionInput struct {
	AssetName          string
	Type               models.TransactionType
	Amount             float64
	Quantity           float64
	PriceAtTransaction float64
	Notes              *string
	Date               *time.Time
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	GetPortfolioTransactions(portfolioID uint) ([]models.Transaction, error)
	CreateTransaction(portfolioID uint, input CreateTransactionInput) (*models.Transaction, error)
	DeleteTransaction(id uint) error
}

// AssetBucket accumulates the net invested amount and quantity for one asset.
type AssetBucket struct {
	Invested float64 `json:"invested"`
	Quantity float64 `json:"quantity"`
}

// PortfolioAnalytics is the aggregate view derived from a portfolio's ledger.
type PortfolioAnalytics struct {
	PortfolioID      uint                   `json:"portfolio_id"`
	PortfolioName    string                 `json:"portfolio_name"`
	TotalInvested    float64                `json:"total_invested"`
	Assets           map[string]AssetBucket `json:"assets"`
	TransactionCount int                    `json:"transaction_count"`
	FirstInvestment  *time.Time             `json:"first_investment"`
	LastInvestment   *time.Time             `json:"last_investment"`
}

// AnalyticsServicer defines the contract for portfolio analytics.
type AnalyticsServicer interface {
	GetPortfolioAnalytics(portfolioID uint) (*PortfolioAnalytics, error)
}

// ChatReply is the response to a successful chat exchange.
type ChatReply struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatServicer defines the contract for the AI chat proxy.
type ChatServicer interface {
	SendMessage(ctx context.Context, message, mode, contextText string) (*ChatReply, error)
	GetHistory() ([]models.ChatHistory, error)
	ClearHistory() error
}

// AssetQuote is one asset's price entry in the live price payload.
type AssetQuote struct {
	Price     float64 `json:"price"`
	Change24h float64 `json:"change_24h"`
}

// PriceBook is the fixed-basket live price payload served to the frontend.
type PriceBook struct {
	Bitcoin   AssetQuote `json:"bitcoin"`
	Ethereum  AssetQuote `json:"ethereum"`
	Solana    AssetQuote `json:"solana"`
	Gold      AssetQuote `json:"gold"`
	SP500     AssetQuote `json:"sp500"`
	Timestamp time.Time  `json:"timestamp"`
	Cached    bool       `json:"cached"`
}

// PriceServicer defines the contract for the cached live price proxy.
type PriceServicer interface {
	GetLivePrices(ctx context.Context) (*PriceBook, error)
}
