package repositories

import (
	"errors"
	"fmt"

	"budgetd/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrAccountNotFound = errors.New("account not found")

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{db: db}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	account := &models.Account{ID: id}
	if err := r.db.First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetAll retrieves all accounts ordered by creation time
func (r *accountRepository) GetAll() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Order("created_at ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// Update updates an account
func (r *accountRepository) Update(account *models.Account) error {
	if err := r.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// Delete removes an account. Transactions referencing it keep existing with a
// nullified account reference; their history survives the account.
func (r *accountRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Transaction{}).
			Where("account_id = ?", id).
			Update("account_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach transactions: %w", err)
		}

		result := tx.Delete(&models.Account{ID: id})
		if result.Error != nil {
			return fmt.Errorf("failed to delete account: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrAccountNotFound
		}
		return nil
	})
}

// TotalBalance sums the current balance across all accounts. This live sum is
// the canonical input for ready-to-assign.
func (r *accountRepository) TotalBalance() (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := r.db.Model(&models.Account{}).
		Select("COALESCE(SUM(current_balance), 0) as total").
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum account balances: %w", err)
	}

	return result.Total, nil
}
