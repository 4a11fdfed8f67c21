package database

import (
	"fmt"
	"testing"
	"time"

	"budgetd/internal/config"
	"budgetd/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
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

func CreateTestAccount(t *testing.T, db *DB, name string, startingBalance decimal.Decimal) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:            name,
		AccountType:     models.AccountTypeChecking,
		StartingBalance: startingBalance,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestCategory(t *testing.T, db *DB, name, categoryType string) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:         name,
		CategoryType: categoryType,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestTransaction(t *testing.T, db *DB, category *models.Category, date time.Time, amount decimal.Decimal, transactionType string) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		Date:            date,
		Amount:          amount,
		TransactionType: transactionType,
		Description:     "test transaction",
	}
	if category != nil {
		txn.CategoryID = &category.ID
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"budget_entries",
		"monthly_budgets",
		"transactions",
		"categories",
		"category_groups",
		"accounts",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
