package services

import (
	"testing"
	"time"

	"patrimonio/internal/models"
	"patrimonio/internal/testutil"
)

func TestGetPortfolioAnalytics(t *testing.T) {
	t.Run("buys_and_sells", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAnalyticsService(db)
		portfolio := testutil.CreateTestPortfolio(t, db)

		d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		d2 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		d3 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestTransactionWithType(t, db, portfolio.ID, "Bitcoin", models.TransactionTypeBuy, 100, d1)
		testutil.CreateTestTransactionWithType(t, db, portfolio.ID, "Bitcoin", models.TransactionTypeBuy, 50, d2)
		testutil.CreateTestTransactionWithType(t, db, portfolio.ID, "Bitcoin", models.TransactionTypeSell, 30, d3)

		analytics, err := svc.GetPortfolioAnalytics(portfolio.ID)
		testutil.AssertNoError(t, err)

		bucket := analytics.Assets["Bitcoin"]
		if bucket.Invested != 120 {
			t.Errorf("expected Bitcoin bucket 120, got %f", bucket.Invested)
		}
		// Sells never reduce the running total.
		if analytics.TotalInvested != 150 {
			t.Errorf("expected total invested 150, got %f", analytics.TotalInvested)
		}
		if analytics.TransactionCount != 3 {
			t.Errorf("expected transaction count 3, got %d", analytics.TransactionCount)
		}
	})

	t.Run("contribution_materializes_empty_bucket", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAnalyticsService(db)
		portfolio := testutil.CreateTestPortfolio(t, db)

		date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestTransactionWithType(t, db, portfolio.ID, "Efectivo", models.TransactionTypeContribution, 200, date)

		analytics, err := svc.GetPortfolioAnalytics(portfolio.ID)
		testutil.AssertNoError(t, err)

		// Contributions count toward neither the bucket nor the total,
		// but the asset still appears in the map.
		bucket, ok := analytics.Assets["Efectivo"]
		if !ok {
			t.Fatal("expected Efectivo bucket to exist")
		}
		if bucket.Invested != 0 || bucket.Quantity != 0 {
			t.Errorf("expected zero bucket, got invested %f quantity %f", bucket.Invested, bucket.Quantity)
		}
		if analytics.TotalInvested != 0 {
			t.Errorf("expected total invested 0, got %f", analytics.TotalInvested)
		}
		if analytics.TransactionCount != 1 {
			t.Errorf("expected transaction count 1, got %d", analytics.TransactionCount)
		}
	})

	t.Run("investment_date_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAnalyticsService(db)
		portfolio := testutil.CreateTestPortfolio(t, db)

		earliest := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
		latest := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		middle := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		// Inserted out of order; the range must not depend on insertion order.
		testutil.CreateTestTransactionWithType(t, db, portfolio.ID, "Bitcoin", models.TransactionTypeBuy, 10, middle)
		testutil.CreateTestTransactionWithType(t, db, portfolio.ID, "Bitcoin", models.TransactionTypeBuy, 10, latest)
		testutil.CreateTestTransactionWithType(t, db, portfolio.ID, "Bitcoin", models.TransactionTypeBuy, 10, earliest)

		analytics, err := svc.GetPortfolioAnalytics(portfolio.ID)
		testutil.AssertNoError(t, err)

		if analytics.FirstInvestment == nil || !analytics.FirstInvestment.Equal(earliest) {
			t.Errorf("expected first investment %v, got %v", earliest, analytics.FirstInvestment)
		}
		if analytics.LastInvestment == nil || !analytics.LastInvestment.Equal(latest) {
			t.Errorf("expected last investment %v, got %v", latest, analytics.LastInvestment)
		}
	})

	t.Run("empty_portfolio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAnalyticsService(db)
		portfolio := testutil.CreateTestPortfolio(t, db)

		analytics, err := svc.GetPortfolioAnalytics(portfolio.ID)
		testutil.AssertNoError(t, err)

		if analytics.TotalInvested != 0 {
			t.Errorf("expected total invested 0, got %f", analytics.TotalInvested)
		}
		if len(analytics.Assets) != 0 {
			t.Errorf("expected empty assets map, got %d entries", len(analytics.Assets))
		}
		if analytics.FirstInvestment != nil || analytics.LastInvestment != nil {
			t.Error("expected nil investment dates for empty ledger")
		}
		if analytics.PortfolioName != portfolio.Name {
			t.Errorf("expected portfolio name %q, got %q", portfolio.Name, analytics.PortfolioName)
		}
	})

	t.Run("portfolio_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAnalyticsService(db)

		_, err := svc.GetPortfolioAnalytics(999)
		testutil.AssertAppError(t, err, "PORTFOLIO_NOT_FOUND")
	})
}
