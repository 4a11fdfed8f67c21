package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"budgetd/internal/models"
	"budgetd/internal/repositories"

	"github.com/shopspring/decimal"
)

// summaryService derives the user-facing aggregates: ready-to-assign,
// category comparisons, running balances and the full month view. Live
// account balances are the canonical source for money on hand; the stored
// MonthlyBudget.StartingBalance is surfaced as informational only.
type summaryService struct {
	accountRepo       repositories.AccountRepositoryInterface
	categoryRepo      repositories.CategoryRepositoryInterface
	txnRepo           repositories.TransactionRepositoryInterface
	entryRepo         repositories.BudgetEntryRepositoryInterface
	monthlyBudgetRepo repositories.MonthlyBudgetRepositoryInterface
	rollover          RolloverServiceInterface
	metrics           MetricsRecorderInterface
}

func NewSummaryService(
	accountRepo repositories.AccountRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	txnRepo repositories.TransactionRepositoryInterface,
	entryRepo repositories.BudgetEntryRepositoryInterface,
	monthlyBudgetRepo repositories.MonthlyBudgetRepositoryInterface,
	rollover RolloverServiceInterface,
	metrics MetricsRecorderInterface,
) SummaryServiceInterface {
	return &summaryService{
		accountRepo:       accountRepo,
		categoryRepo:      categoryRepo,
		txnRepo:           txnRepo,
		entryRepo:         entryRepo,
		monthlyBudgetRepo: monthlyBudgetRepo,
		rollover:          rollover,
		metrics:           metrics,
	}
}

// ReadyToAssign is the pool of unassigned money: total live account balances
// minus the committed-but-unspent money across non-income categories for the
// month. An income posting raises it by exactly the posted amount; an expense
// against a budgeted category reduces that category's unspent commitment
// instead, leaving ready-to-assign unchanged.
func (s *summaryService) ReadyToAssign(month models.Month) (decimal.Decimal, error) {
	total, err := s.accountRepo.TotalBalance()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to total account balances: %w", err)
	}

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load categories: %w", err)
	}

	transactions, err := s.monthTransactions(month)
	if err != nil {
		return decimal.Zero, err
	}

	committedUnspent := decimal.Zero
	for i := range categories {
		category := &categories[i]
		if category.IsIncome() {
			continue
		}

		committed, err := s.resolvedCommitted(category, month)
		if err != nil {
			return decimal.Zero, err
		}

		spent := s.rollover.ActualSpending(category.ID, month, transactions)
		unspent := models.ClampNonNegative(committed.Sub(spent))
		committedUnspent = committedUnspent.Add(unspent)
	}

	ready := total.Sub(committedUnspent)
	if s.metrics != nil {
		s.metrics.SetReadyToAssign(ready.InexactFloat64())
	}
	return ready, nil
}

// CategoryComparisons builds the budget-vs-actual rows for every non-income
// category. Read-only: unmaterialized months resolve through the legacy
// fallback rather than being created here. Transactions referencing unknown
// categories simply never match a row.
func (s *summaryService) CategoryComparisons(month models.Month) ([]models.CategoryComparison, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	transactions, err := s.monthTransactions(month)
	if err != nil {
		return nil, err
	}

	comparisons := make([]models.CategoryComparison, 0, len(categories))
	for i := range categories {
		category := &categories[i]
		if category.IsIncome() {
			continue
		}

		budgeted, err := s.resolvedBudgeted(category, month)
		if err != nil {
			return nil, err
		}

		actual := s.rollover.ActualSpending(category.ID, month, transactions)
		comparisons = append(comparisons, models.CategoryComparison{
			CategoryID:     category.ID,
			CategoryName:   category.Name,
			CategoryType:   category.CategoryType,
			GroupID:        category.GroupID,
			Budgeted:       budgeted,
			Actual:         actual,
			Difference:     budgeted.Sub(actual),
			PercentageUsed: models.PercentageOf(actual, budgeted),
			IsOverBudget:   actual.GreaterThan(budgeted),
			DueDate:        category.EffectiveDueDate(month),
		})
	}

	return comparisons, nil
}

// RunningBalance walks transactions in date order, accumulating signed
// amounts. The sort is stable with ID as tiebreak so identical inputs always
// produce identical output. Pure; the input slice is not mutated.
func (s *summaryService) RunningBalance(transactions []models.Transaction) []models.RunningBalanceEntry {
	ordered := make([]models.Transaction, len(transactions))
	copy(ordered, transactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].ID.String() < ordered[j].ID.String()
	})

	entries := make([]models.RunningBalanceEntry, 0, len(ordered))
	balance := decimal.Zero
	for _, txn := range ordered {
		balance = balance.Add(txn.SignedAmount())
		entries = append(entries, models.RunningBalanceEntry{
			Transaction: txn,
			Balance:     balance,
		})
	}
	return entries
}

func (s *summaryService) MonthSummary(month models.Month) (*models.MonthSummary, error) {
	comparisons, err := s.CategoryComparisons(month)
	if err != nil {
		return nil, err
	}

	ready, err := s.ReadyToAssign(month)
	if err != nil {
		return nil, err
	}

	accountTotal, err := s.accountRepo.TotalBalance()
	if err != nil {
		return nil, fmt.Errorf("failed to total account balances: %w", err)
	}

	transactions, err := s.monthTransactions(month)
	if err != nil {
		return nil, err
	}

	totalBudgeted := decimal.Zero
	totalSpent := decimal.Zero
	for _, c := range comparisons {
		totalBudgeted = totalBudgeted.Add(c.Budgeted)
		totalSpent = totalSpent.Add(c.Actual)
	}

	totalIncome := decimal.Zero
	for _, txn := range transactions {
		if txn.TransactionType == models.TransactionTypeIncome {
			totalIncome = totalIncome.Add(txn.Amount)
		}
	}

	startingBalance := decimal.Zero
	if mb, err := s.monthlyBudgetRepo.GetByMonth(month); err == nil {
		startingBalance = mb.StartingBalance
	} else if !errors.Is(err, repositories.ErrMonthlyBudgetNotFound) {
		return nil, fmt.Errorf("failed to load monthly budget: %w", err)
	}

	views, err := s.categoryMonthViews(month, transactions)
	if err != nil {
		return nil, err
	}

	slog.Info("month summary generated",
		"month", month.String(),
		"ready_to_assign", ready.String(),
		"category_count", len(comparisons))

	return &models.MonthSummary{
		Month:           month,
		ReadyToAssign:   ready,
		AccountTotal:    accountTotal,
		TotalBudgeted:   totalBudgeted,
		TotalSpent:      totalSpent,
		TotalIncome:     totalIncome,
		StartingBalance: startingBalance,
		Categories:      views,
		Comparisons:     comparisons,
	}, nil
}

// categoryMonthViews pairs each non-income category's materialized entry
// (when one exists) with its in-month spending.
func (s *summaryService) categoryMonthViews(month models.Month, transactions []models.Transaction) ([]models.CategoryMonthView, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	views := make([]models.CategoryMonthView, 0, len(categories))
	for i := range categories {
		category := &categories[i]
		if category.IsIncome() {
			continue
		}

		budgeted := decimal.Zero
		carry := decimal.Zero
		if entry, err := s.entryRepo.GetByCategoryAndMonth(category.ID, month); err == nil {
			budgeted = entry.BudgetedAmount
			carry = entry.AvailableFromPrevious
		} else if errors.Is(err, repositories.ErrBudgetEntryNotFound) {
			budgeted = category.LegacyMonthlyAmount
		} else {
			return nil, fmt.Errorf("failed to look up budget entry: %w", err)
		}

		spent := s.rollover.ActualSpending(category.ID, month, transactions)
		views = append(views, models.CategoryMonthView{
			CategoryID:            category.ID,
			CategoryName:          category.Name,
			Month:                 month,
			BudgetedAmount:        budgeted,
			AvailableFromPrevious: carry,
			ActualSpent:           spent,
			TotalAvailable:        budgeted.Add(carry).Sub(spent),
		})
	}
	return views, nil
}

func (s *summaryService) monthTransactions(month models.Month) ([]models.Transaction, error) {
	transactions, err := s.txnRepo.GetAll(repositories.TransactionFilters{From: &month, To: &month})
	if err != nil {
		return nil, fmt.Errorf("failed to load month transactions: %w", err)
	}
	return transactions, nil
}

// resolvedBudgeted is the display amount for a category-month: the entry's
// budgeted amount when materialized, else the legacy fallback.
func (s *summaryService) resolvedBudgeted(category *models.Category, month models.Month) (decimal.Decimal, error) {
	entry, err := s.entryRepo.GetByCategoryAndMonth(category.ID, month)
	if err == nil {
		return entry.BudgetedAmount, nil
	}
	if errors.Is(err, repositories.ErrBudgetEntryNotFound) {
		return category.LegacyMonthlyAmount, nil
	}
	return decimal.Zero, fmt.Errorf("failed to look up budget entry: %w", err)
}

// resolvedCommitted is budgeted plus carry-forward for a category-month, with
// the same legacy fallback when no entry was materialized.
func (s *summaryService) resolvedCommitted(category *models.Category, month models.Month) (decimal.Decimal, error) {
	entry, err := s.entryRepo.GetByCategoryAndMonth(category.ID, month)
	if err == nil {
		return entry.Committed(), nil
	}
	if errors.Is(err, repositories.ErrBudgetEntryNotFound) {
		return category.LegacyMonthlyAmount, nil
	}
	return decimal.Zero, fmt.Errorf("failed to look up budget entry: %w", err)
}
