package repositories

import (
	"errors"
	"fmt"

	"budgetd/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrBudgetEntryNotFound = errors.New("budget entry not found")
	ErrBudgetEntryExists   = errors.New("budget entry already exists for category and month")
)

// budgetEntryRepository implements BudgetEntryRepositoryInterface
type budgetEntryRepository struct {
	db *gorm.DB
}

// NewBudgetEntryRepository creates a new budget entry repository
func NewBudgetEntryRepository(db *gorm.DB) BudgetEntryRepositoryInterface {
	return &budgetEntryRepository{db: db}
}

// Create inserts a budget entry. The (category, month) pair is unique, so a
// concurrent materialization of the same month surfaces as
// ErrBudgetEntryExists rather than a duplicate row.
func (r *budgetEntryRepository) Create(entry *models.BudgetEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrBudgetEntryExists
		}
		return fmt.Errorf("failed to create budget entry: %w", err)
	}
	return nil
}

// GetByCategoryAndMonth retrieves the entry for a category in a month, or
// ErrBudgetEntryNotFound when the month has not been materialized for it.
func (r *budgetEntryRepository) GetByCategoryAndMonth(categoryID uuid.UUID, month models.Month) (*models.BudgetEntry, error) {
	entry := &models.BudgetEntry{}
	if err := r.db.Where("category_id = ? AND month = ?", categoryID, month.Time()).First(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetEntryNotFound
		}
		return nil, fmt.Errorf("failed to get budget entry: %w", err)
	}
	return entry, nil
}

// GetByMonth retrieves all entries materialized for a month
func (r *budgetEntryRepository) GetByMonth(month models.Month) ([]models.BudgetEntry, error) {
	var entries []models.BudgetEntry
	if err := r.db.Where("month = ?", month.Time()).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get budget entries for month: %w", err)
	}
	return entries, nil
}

// GetByCategory retrieves a category's entries across all months, oldest first
func (r *budgetEntryRepository) GetByCategory(categoryID uuid.UUID) ([]models.BudgetEntry, error) {
	var entries []models.BudgetEntry
	if err := r.db.Where("category_id = ?", categoryID).Order("month ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get budget entries for category: %w", err)
	}
	return entries, nil
}

// UpdateBudgetedAmount sets the budgeted amount on an existing entry. The
// carry-forward column is frozen at materialization and never touched here.
func (r *budgetEntryRepository) UpdateBudgetedAmount(id uuid.UUID, amount decimal.Decimal) error {
	result := r.db.Model(&models.BudgetEntry{}).Where("id = ?", id).Update("budgeted_amount", amount)
	if result.Error != nil {
		return fmt.Errorf("failed to update budgeted amount: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetEntryNotFound
	}
	return nil
}
