package services

import (
	"budgetd/internal/models"
	"budgetd/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RolloverServiceInterface defines the monthly carry-forward engine
type RolloverServiceInterface interface {
	// ActualSpending sums a category's expense amounts over a month. Pure
	// over the supplied transaction slice.
	ActualSpending(categoryID uuid.UUID, month models.Month, transactions []models.Transaction) decimal.Decimal

	// GetOrCreateMonthBudget returns the materialized entry for a
	// (category, month) pair, computing and freezing the carry-forward on
	// first access.
	GetOrCreateMonthBudget(categoryID uuid.UUID, month models.Month) (*models.BudgetEntry, error)

	// TotalAvailable is budgeted + carry-forward − spent, unclamped.
	TotalAvailable(entry *models.BudgetEntry, actualSpent decimal.Decimal) decimal.Decimal

	// SetBudgetedAmount materializes the entry if needed and records the
	// user's assignment for the month.
	SetBudgetedAmount(categoryID uuid.UUID, month models.Month, amount decimal.Decimal) (*models.BudgetEntry, error)

	// EntryHistory returns a category's materialized entries across all
	// months, oldest first. Months never opened have no entry.
	EntryHistory(categoryID uuid.UUID) ([]models.BudgetEntry, error)
}

// SummaryServiceInterface defines the aggregation engine over accounts,
// transactions and budget entries
type SummaryServiceInterface interface {
	ReadyToAssign(month models.Month) (decimal.Decimal, error)
	CategoryComparisons(month models.Month) ([]models.CategoryComparison, error)
	RunningBalance(transactions []models.Transaction) []models.RunningBalanceEntry
	MonthSummary(month models.Month) (*models.MonthSummary, error)
}

// AccountServiceInterface defines account-related business operations
type AccountServiceInterface interface {
	CreateAccount(name, accountType string, startingBalance decimal.Decimal) (*models.Account, error)
	GetAccountByID(id uuid.UUID) (*models.Account, error)
	GetAllAccounts() ([]models.Account, error)
	UpdateAccount(account *models.Account) (*models.Account, error)
	DeleteAccount(id uuid.UUID) error
}

// CategoryServiceInterface defines category and group management operations
type CategoryServiceInterface interface {
	CreateCategory(category *models.Category) (*models.Category, error)
	GetCategoryByID(id uuid.UUID) (*models.Category, error)
	GetAllCategories() ([]models.Category, error)
	UpdateCategory(category *models.Category) (*models.Category, error)
	DeleteCategory(id uuid.UUID) error

	CreateGroup(group *models.CategoryGroup) (*models.CategoryGroup, error)
	GetAllGroups() ([]models.CategoryGroup, error)
	UpdateGroup(group *models.CategoryGroup) (*models.CategoryGroup, error)
	DeleteGroup(id uuid.UUID) error
}

// TransactionServiceInterface defines transaction recording operations
type TransactionServiceInterface interface {
	RecordTransaction(txn *models.Transaction) (*models.Transaction, error)
	GetTransactionByID(id uuid.UUID) (*models.Transaction, error)
	GetTransactions(filters repositories.TransactionFilters) ([]models.Transaction, error)
	DeleteTransaction(id uuid.UUID) error
}

// MonthlyBudgetServiceInterface manages the informational per-month records
type MonthlyBudgetServiceInterface interface {
	UpsertMonthlyBudget(month models.Month, startingBalance decimal.Decimal, notes string) (*models.MonthlyBudget, error)
	GetMonthlyBudget(month models.Month) (*models.MonthlyBudget, error)
	GetAllMonthlyBudgets() ([]models.MonthlyBudget, error)
}

// MetricsRecorderInterface abstracts metric collection so services can be
// tested without a live registry
type MetricsRecorderInterface interface {
	RecordEntryMaterialized()
	ObserveRolloverDuration(durationMs float64)
	SetReadyToAssign(amount float64)
	RecordTransaction(transactionType string)
	RecordImportedRows(count int)
}

// SampleDataServiceInterface seeds a development database with generated data
type SampleDataServiceInterface interface {
	Seed() error
}
