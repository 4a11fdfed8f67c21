package repositories

import (
	"errors"
	"fmt"

	"budgetd/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMonthlyBudgetNotFound = errors.New("monthly budget not found")
	ErrMonthlyBudgetExists   = errors.New("monthly budget already exists for month")
)

// monthlyBudgetRepository implements MonthlyBudgetRepositoryInterface
type monthlyBudgetRepository struct {
	db *gorm.DB
}

// NewMonthlyBudgetRepository creates a new monthly budget repository
func NewMonthlyBudgetRepository(db *gorm.DB) MonthlyBudgetRepositoryInterface {
	return &monthlyBudgetRepository{db: db}
}

// Create inserts a monthly budget record
func (r *monthlyBudgetRepository) Create(budget *models.MonthlyBudget) error {
	if err := r.db.Create(budget).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrMonthlyBudgetExists
		}
		return fmt.Errorf("failed to create monthly budget: %w", err)
	}
	return nil
}

// GetByMonth retrieves the monthly budget record for a month
func (r *monthlyBudgetRepository) GetByMonth(month models.Month) (*models.MonthlyBudget, error) {
	budget := &models.MonthlyBudget{}
	if err := r.db.Where("month = ?", month.Time()).First(budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMonthlyBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get monthly budget: %w", err)
	}
	return budget, nil
}

// GetAll retrieves all monthly budget records, oldest first
func (r *monthlyBudgetRepository) GetAll() ([]models.MonthlyBudget, error) {
	var budgets []models.MonthlyBudget
	if err := r.db.Order("month ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get monthly budgets: %w", err)
	}
	return budgets, nil
}

// Update saves changes to a monthly budget record
func (r *monthlyBudgetRepository) Update(budget *models.MonthlyBudget) error {
	result := r.db.Model(budget).Updates(map[string]interface{}{
		"starting_balance": budget.StartingBalance,
		"notes":            budget.Notes,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update monthly budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMonthlyBudgetNotFound
	}
	return nil
}
