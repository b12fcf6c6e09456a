package database

import (
	"fmt"
	"testing"

	"jadebank/internal/config"
	"jadebank/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestAccount(t *testing.T, db *DB, accountType string, balance string) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:             uuid.New(),
		AccountNumber:      models.GenerateAccountNumber(accountType),
		AccountType:        accountType,
		Balance:            decimal.RequireFromString(balance),
		MinimumBalance:     decimal.RequireFromString("1000.00"),
		DailyTransferLimit: decimal.RequireFromString("100000.00"),
		Currency:           models.CurrencyINR,
		Status:             models.AccountStatusActive,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"loan_emi_payments",
		"loans",
		"daily_transfer_records",
		"transactions",
		"audit_events",
		"accounts",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
