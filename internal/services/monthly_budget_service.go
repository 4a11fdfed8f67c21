package services

import (
	"errors"
	"fmt"

	"budgetd/internal/models"
	"budgetd/internal/repositories"

	"github.com/shopspring/decimal"
)

var ErrMonthlyBudgetNotFound = errors.New("monthly budget not found")

type monthlyBudgetService struct {
	monthlyBudgetRepo repositories.MonthlyBudgetRepositoryInterface
}

func NewMonthlyBudgetService(monthlyBudgetRepo repositories.MonthlyBudgetRepositoryInterface) MonthlyBudgetServiceInterface {
	return &monthlyBudgetService{monthlyBudgetRepo: monthlyBudgetRepo}
}

// UpsertMonthlyBudget creates or updates the informational record for a
// month. It never feeds the ready-to-assign computation.
func (s *monthlyBudgetService) UpsertMonthlyBudget(month models.Month, startingBalance decimal.Decimal, notes string) (*models.MonthlyBudget, error) {
	existing, err := s.monthlyBudgetRepo.GetByMonth(month)
	if err == nil {
		existing.StartingBalance = startingBalance
		existing.Notes = notes
		if err := s.monthlyBudgetRepo.Update(existing); err != nil {
			return nil, fmt.Errorf("failed to update monthly budget: %w", err)
		}
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrMonthlyBudgetNotFound) {
		return nil, fmt.Errorf("failed to look up monthly budget: %w", err)
	}

	budget := &models.MonthlyBudget{
		Month:           month,
		StartingBalance: startingBalance,
		Notes:           notes,
	}
	if err := s.monthlyBudgetRepo.Create(budget); err != nil {
		return nil, fmt.Errorf("failed to create monthly budget: %w", err)
	}
	return budget, nil
}

func (s *monthlyBudgetService) GetMonthlyBudget(month models.Month) (*models.MonthlyBudget, error) {
	budget, err := s.monthlyBudgetRepo.GetByMonth(month)
	if err != nil {
		if errors.Is(err, repositories.ErrMonthlyBudgetNotFound) {
			return nil, ErrMonthlyBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get monthly budget: %w", err)
	}
	return budget, nil
}

func (s *monthlyBudgetService) GetAllMonthlyBudgets() ([]models.MonthlyBudget, error) {
	return s.monthlyBudgetRepo.GetAll()
}
