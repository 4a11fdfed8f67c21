package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"budgetd/internal/models"
	"budgetd/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrNegativeBudget   = errors.New("budgeted amount cannot be negative")
)

// rolloverService materializes per-month budget entries. Carry-forward is
// computed once when an entry is first created and then frozen: editing
// historical transactions afterwards does not rewrite already-materialized
// months. That staleness window is deliberate; callers materialize months in
// chronological order so in practice the walk-back depth is one month.
type rolloverService struct {
	entryRepo    repositories.BudgetEntryRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	txnRepo      repositories.TransactionRepositoryInterface
	metrics      MetricsRecorderInterface
	now          func() time.Time
}

// NewRolloverService creates the carry-forward engine. The clock is injected
// so the "never compute carry-forward for past months" rule is testable.
func NewRolloverService(
	entryRepo repositories.BudgetEntryRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	txnRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	now func() time.Time,
) RolloverServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &rolloverService{
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
		txnRepo:      txnRepo,
		metrics:      metrics,
		now:          now,
	}
}

// ActualSpending sums expense amounts for the category whose dates fall
// within the month, bounds inclusive. Income transactions tagged to the
// category are not netted against spending.
func (s *rolloverService) ActualSpending(categoryID uuid.UUID, month models.Month, transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		if txn.CategoryID == nil || *txn.CategoryID != categoryID {
			continue
		}
		if txn.TransactionType != models.TransactionTypeExpense {
			continue
		}
		if !month.Contains(txn.Date) {
			continue
		}
		total = total.Add(txn.Amount)
	}
	return total
}

func (s *rolloverService) GetOrCreateMonthBudget(categoryID uuid.UUID, month models.Month) (*models.BudgetEntry, error) {
	entry, err := s.entryRepo.GetByCategoryAndMonth(categoryID, month)
	if err == nil {
		// Already materialized: returned unchanged, carry-forward frozen.
		return entry, nil
	}
	if !errors.Is(err, repositories.ErrBudgetEntryNotFound) {
		return nil, fmt.Errorf("failed to look up budget entry: %w", err)
	}

	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	start := s.now()
	available := decimal.Zero
	currentMonth := models.MonthOf(s.now())
	if !month.Before(currentMonth) {
		available, err = s.carryForwardInto(category, month)
		if err != nil {
			return nil, err
		}
	}

	entry = &models.BudgetEntry{
		CategoryID:            categoryID,
		Month:                 month,
		BudgetedAmount:        decimal.Zero,
		AvailableFromPrevious: available,
	}
	if err := s.entryRepo.Create(entry); err != nil {
		if errors.Is(err, repositories.ErrBudgetEntryExists) {
			// Lost a materialization race; the winner's entry is canonical.
			return s.entryRepo.GetByCategoryAndMonth(categoryID, month)
		}
		return nil, fmt.Errorf("failed to materialize budget entry: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordEntryMaterialized()
		s.metrics.ObserveRolloverDuration(float64(time.Since(start).Milliseconds()))
	}

	slog.Info("budget entry materialized",
		"category_id", categoryID,
		"month", month.String(),
		"available_from_previous", available.String())

	return entry, nil
}

// carryForwardInto computes the frozen carry-forward for a current-or-future
// month: the previous month's committed money minus its actual spending,
// clamped non-negative so overspending is absorbed rather than propagated.
func (s *rolloverService) carryForwardInto(category *models.Category, month models.Month) (decimal.Decimal, error) {
	previous := month.Previous()

	committed, err := s.previousCommitted(category, previous)
	if err != nil {
		return decimal.Zero, err
	}

	transactions, err := s.txnRepo.GetByCategoryAndMonth(category.ID, previous)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load previous month transactions: %w", err)
	}
	spent := s.ActualSpending(category.ID, previous, transactions)

	return models.ClampNonNegative(committed.Sub(spent)), nil
}

// previousCommitted resolves the previous month's (budgeted + carry-forward).
// When no entry was ever materialized the category's legacy monthly amount
// stands in, a leftover of the pre-monthly-entry schema.
func (s *rolloverService) previousCommitted(category *models.Category, previous models.Month) (decimal.Decimal, error) {
	prevEntry, err := s.entryRepo.GetByCategoryAndMonth(category.ID, previous)
	if err == nil {
		return prevEntry.Committed(), nil
	}
	if errors.Is(err, repositories.ErrBudgetEntryNotFound) {
		return category.LegacyMonthlyAmount, nil
	}
	return decimal.Zero, fmt.Errorf("failed to look up previous month entry: %w", err)
}

// TotalAvailable is budgeted + carry-forward − spent. Deliberately unclamped:
// in-month overspending stays visible until it becomes next month's
// carry-forward input, where clamping applies.
func (s *rolloverService) TotalAvailable(entry *models.BudgetEntry, actualSpent decimal.Decimal) decimal.Decimal {
	return entry.TotalAvailable(actualSpent)
}

func (s *rolloverService) SetBudgetedAmount(categoryID uuid.UUID, month models.Month, amount decimal.Decimal) (*models.BudgetEntry, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeBudget
	}

	entry, err := s.GetOrCreateMonthBudget(categoryID, month)
	if err != nil {
		return nil, err
	}

	if err := s.entryRepo.UpdateBudgetedAmount(entry.ID, amount); err != nil {
		return nil, fmt.Errorf("failed to set budgeted amount: %w", err)
	}
	entry.BudgetedAmount = amount

	slog.Info("budgeted amount set",
		"category_id", categoryID,
		"month", month.String(),
		"amount", amount.String())

	return entry, nil
}

// EntryHistory lists a category's materialized entries, oldest month first
func (s *rolloverService) EntryHistory(categoryID uuid.UUID) ([]models.BudgetEntry, error) {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	entries, err := s.entryRepo.GetByCategory(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget entries: %w", err)
	}
	return entries, nil
}
