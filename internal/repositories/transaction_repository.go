package repositories

import (
	"errors"
	"fmt"

	"budgetd/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

// Create posts a transaction. When the transaction references an account the
// account's current balance moves in the same database transaction, keeping
// the balance invariant (current = starting + income − expense) intact.
func (r *transactionRepository) Create(txn *models.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(txn).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		if txn.AccountID == nil {
			return nil
		}

		account := &models.Account{ID: *txn.AccountID}
		if err := tx.First(account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to load account for posting: %w", err)
		}

		account.Post(txn)
		if err := tx.Save(account).Error; err != nil {
			return fmt.Errorf("failed to update account balance: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	txn := &models.Transaction{ID: id}
	if err := r.db.First(txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// GetAll retrieves transactions matching the filters, ordered by date
// ascending with ID as a deterministic tiebreak.
func (r *transactionRepository) GetAll(filters TransactionFilters) ([]models.Transaction, error) {
	query := r.db.Model(&models.Transaction{})

	if filters.From != nil {
		query = query.Where("date >= ?", filters.From.Start())
	}
	if filters.To != nil {
		query = query.Where("date <= ?", filters.To.End())
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.AccountID != nil {
		query = query.Where("account_id = ?", *filters.AccountID)
	}
	if filters.TransactionType != "" {
		query = query.Where("transaction_type = ?", filters.TransactionType)
	}

	var transactions []models.Transaction
	if err := query.Order("date ASC, id ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetByCategoryAndMonth retrieves a category's transactions whose dates fall
// within the month, bounds inclusive.
func (r *transactionRepository) GetByCategoryAndMonth(categoryID uuid.UUID, month models.Month) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.
		Where("category_id = ? AND date >= ? AND date <= ?", categoryID, month.Start(), month.End()).
		Order("date ASC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions for category month: %w", err)
	}
	return transactions, nil
}

// Delete hard-deletes a transaction and reverses its balance effect on the
// referenced account. Derived aggregates are recomputed on read, so nothing
// else cascades.
func (r *transactionRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txn := &models.Transaction{ID: id}
		if err := tx.First(txn).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransactionNotFound
			}
			return fmt.Errorf("failed to load transaction: %w", err)
		}

		if txn.AccountID != nil {
			account := &models.Account{ID: *txn.AccountID}
			if err := tx.First(account).Error; err == nil {
				account.Unpost(txn)
				if err := tx.Save(account).Error; err != nil {
					return fmt.Errorf("failed to restore account balance: %w", err)
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to load account for unposting: %w", err)
			}
		}

		if err := tx.Delete(txn).Error; err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}
		return nil
	})
}
