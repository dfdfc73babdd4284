// Command seed initializes the database with two example portfolios so the
// frontend has something to render on a fresh install. It is a no-op when
// portfolios already exist.
package main

import (
	"fmt"
	"os"
	"time"

	"patrimonio/internal/config"
	"patrimonio/internal/database"
	"patrimonio/internal/logger"
	"patrimonio/internal/models"

	"gorm.io/gorm"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbManager, err := database.NewManager(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	db := dbManager.DB()

	var count int64
	if err := db.Model(&models.Portfolio{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if count > 0 {
		logger.Get().Info("Database already has data. Skipping initialization.")
		return nil
	}

	if err := seed(db); err != nil {
		return err
	}

	logger.Get().Info("Database initialized successfully")
	return nil
}

func seed(db *gorm.DB) error {
	notes := func(s string) *string { return &s }

	normie := &models.Portfolio{
		Name:                "Mi Portfolio Clásico",
		Mode:                models.PortfolioModeNormie,
		InitialCapital:      45000,
		MonthlyContribution: 2000,
		ExpectedReturn:      8.6,
		YearsProjection:     10,
		IsActive:            true,
		Allocations: []models.Allocation{
			{AssetName: "S&P 500", Percentage: 60, Color: "#10B981"},
			{AssetName: "Fondo Liquidez", Percentage: 40, Color: "#3B82F6"},
		},
	}

	sovereign := &models.Portfolio{
		Name:                "Protocolo Fortaleza",
		Mode:                models.PortfolioModeSovereign,
		InitialCapital:      45000,
		MonthlyContribution: 2000,
		ExpectedReturn:      10.9,
		YearsProjection:     10,
		IsActive:            true,
		Allocations: []models.Allocation{
			{AssetName: "Bitcoin", Percentage: 35, Color: "#F59E0B"},
			{AssetName: "S&P 500", Percentage: 45, Color: "#10B981"},
			{AssetName: "Fondo Liquidez", Percentage: 20, Color: "#64748B"},
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(normie).Error; err != nil {
			return fmt.Errorf("failed to create normie portfolio: %w", err)
		}
		if err := tx.Create(sovereign).Error; err != nil {
			return fmt.Errorf("failed to create sovereign portfolio: %w", err)
		}

		monthAgo := time.Now().AddDate(0, 0, -30)
		twoWeeksAgo := time.Now().AddDate(0, 0, -15)

		transactions := []models.Transaction{
			{
				PortfolioID:        normie.ID,
				AssetName:          "S&P 500",
				Type:               models.TransactionTypeBuy,
				Amount:             27000,
				Quantity:           5.5,
				PriceAtTransaction: 4900,
				Notes:              notes("Compra inicial VOO"),
				Date:               monthAgo,
			},
			{
				PortfolioID: normie.ID,
				AssetName:   "Fondo Liquidez",
				Type:        models.TransactionTypeBuy,
				Amount:      18000,
				Notes:       notes("Suscripción Fondo Itaú"),
				Date:        monthAgo,
			},
			{
				PortfolioID:        sovereign.ID,
				AssetName:          "Bitcoin",
				Type:               models.TransactionTypeBuy,
				Amount:             15750,
				Quantity:           0.0025,
				PriceAtTransaction: 6300000,
				Notes:              notes("Compra BTC - auto-custodia"),
				Date:               twoWeeksAgo,
			},
			{
				PortfolioID:        sovereign.ID,
				AssetName:          "S&P 500",
				Type:               models.TransactionTypeBuy,
				Amount:             20250,
				Quantity:           4.1,
				PriceAtTransaction: 4939,
				Notes:              notes("VOO via eToro"),
				Date:               twoWeeksAgo,
			},
		}
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create transactions: %w", err)
		}
		return nil
	})
}
