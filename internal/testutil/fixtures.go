package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"patrimonio/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestPortfolio creates a portfolio in normie mode with no allocations.
func CreateTestPortfolio(t *testing.T, db *gorm.DB) *models.Portfolio {
	t.Helper()
	return CreateTestPortfolioWithMode(t, db, models.PortfolioModeNormie)
}

// CreateTestPortfolioWithMode creates a portfolio with the given mode.
func CreateTestPortfolioWithMode(t *testing.T, db *gorm.DB, mode models.PortfolioMode) *models.Portfolio {
	t.Helper()

	portfolio := &models.Portfolio{
		Name:            fmt.Sprintf("Test Portfolio %d", nextID()),
		Mode:            mode,
		ExpectedReturn:  8.0,
		YearsProjection: 10,
		IsActive:        true,
	}
	if err := db.Create(portfolio).Error; err != nil {
		t.Fatalf("failed to create test portfolio: %v", err)
	}
	return portfolio
}

// CreateTestAllocation creates an allocation for the given portfolio.
func CreateTestAllocation(t *testing.T, db *gorm.DB, portfolioID uint, assetName string, percentage float64) *models.Allocation {
	t.Helper()

	alloc := &models.Allocation{
		PortfolioID: portfolioID,
		AssetName:   assetName,
		Percentage:  percentage,
		Color:       "#64748B",
	}
	if err := db.Create(alloc).Error; err != nil {
		t.Fatalf("failed to create test allocation: %v", err)
	}
	return alloc
}

// CreateTestTransaction creates a buy transaction for the given asset and amount.
func CreateTestTransaction(t *testing.T, db *gorm.DB, portfolioID uint, assetName string, amount float64) *models.Transaction {
	t.Helper()
	return CreateTestTransactionWithType(t, db, portfolioID, assetName, models.TransactionTypeBuy, amount, time.Now().UTC())
}

// CreateTestTransactionWithType creates a transaction of the given type, amount, and date.
func CreateTestTransactionWithType(t *testing.T, db *gorm.DB, portfolioID uint, assetName string, txType models.TransactionType, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		PortfolioID: portfolioID,
		AssetName:   assetName,
		Type:        txType,
		Amount:      amount,
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestChatEntry creates one chat history row with the given role and content.
func CreateTestChatEntry(t *testing.T, db *gorm.DB, role models.ChatRole, content string) *models.ChatHistory {
	t.Helper()

	entry := &models.ChatHistory{
		Role:    role,
		Content: content,
		Mode:    "normie",
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test chat entry: %v", err)
	}
	return entry
}
