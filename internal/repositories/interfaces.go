package repositories

import (
	"budgetd/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepositoryInterface defines persistence operations for accounts
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetAll() ([]models.Account, error)
	Update(account *models.Account) error
	// Delete removes the account and nullifies (not deletes) its
	// transactions' account references.
	Delete(id uuid.UUID) error
	TotalBalance() (decimal.Decimal, error)
}

// CategoryGroupRepositoryInterface defines persistence operations for category groups
type CategoryGroupRepositoryInterface interface {
	Create(group *models.CategoryGroup) error
	GetByID(id uuid.UUID) (*models.CategoryGroup, error)
	GetAll() ([]models.CategoryGroup, error)
	Update(group *models.CategoryGroup) error
	// Delete removes the group and detaches its categories.
	Delete(id uuid.UUID) error
}

// CategoryRepositoryInterface defines persistence operations for categories
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	// GetAll returns categories ordered by group sort order, then category
	// sort order, then name.
	GetAll() ([]models.Category, error)
	Update(category *models.Category) error
	// Delete cascades to the category's transactions and budget entries.
	Delete(id uuid.UUID) error
}

// TransactionFilters narrows transaction listings. Zero values mean "no
// constraint".
type TransactionFilters struct {
	From            *models.Month
	To              *models.Month
	CategoryID      *uuid.UUID
	AccountID       *uuid.UUID
	TransactionType string
}

// TransactionRepositoryInterface defines persistence operations for transactions
type TransactionRepositoryInterface interface {
	// Create posts the transaction and, when an account is referenced,
	// adjusts that account's current balance in the same database
	// transaction.
	Create(txn *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	// GetAll returns transactions ordered by date ascending, ID ascending as
	// a deterministic tiebreak.
	GetAll(filters TransactionFilters) ([]models.Transaction, error)
	GetByCategoryAndMonth(categoryID uuid.UUID, month models.Month) ([]models.Transaction, error)
	// Delete removes the transaction and reverses its effect on the
	// referenced account's current balance.
	Delete(id uuid.UUID) error
}

// BudgetEntryRepositoryInterface defines persistence operations for
// per-category per-month budget entries
type BudgetEntryRepositoryInterface interface {
	Create(entry *models.BudgetEntry) error
	GetByCategoryAndMonth(categoryID uuid.UUID, month models.Month) (*models.BudgetEntry, error)
	GetByMonth(month models.Month) ([]models.BudgetEntry, error)
	GetByCategory(categoryID uuid.UUID) ([]models.BudgetEntry, error)
	UpdateBudgetedAmount(id uuid.UUID, amount decimal.Decimal) error
}

// MonthlyBudgetRepositoryInterface defines persistence operations for
// month-level starting balances
type MonthlyBudgetRepositoryInterface interface {
	Create(mb *models.MonthlyBudget) error
	GetByMonth(month models.Month) (*models.MonthlyBudget, error)
	GetAll() ([]models.MonthlyBudget, error)
	Update(mb *models.MonthlyBudget) error
}
