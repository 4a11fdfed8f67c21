package dto

import (
	"budgetd/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget Request DTOs

// SetBudgetedAmountRequest represents the request payload for assigning money
// to a category for a month
type SetBudgetedAmountRequest struct {
	Amount string `json:"amount" validate:"required,money"`
}

// UpsertMonthlyBudgetRequest represents the request payload for recording a
// month's informational starting balance and notes
type UpsertMonthlyBudgetRequest struct {
	StartingBalance string `json:"starting_balance" validate:"omitempty,money"`
	Notes           string `json:"notes" validate:"omitempty,max=2000"`
}

// Budget Response DTOs

// ReadyToAssignResponse represents the unallocated money for a month
type ReadyToAssignResponse struct {
	Month         models.Month    `json:"month"`
	ReadyToAssign decimal.Decimal `json:"ready_to_assign"`
}

// MonthSummaryResponse represents the full month view. CurrencyCode is
// display metadata from configuration; every amount stays an exact decimal.
type MonthSummaryResponse struct {
	models.MonthSummary
	CurrencyCode string `json:"currency_code"`
}

// ComparisonListResponse represents budgeted versus actual figures per category
type ComparisonListResponse struct {
	Month       models.Month                `json:"month"`
	Comparisons []models.CategoryComparison `json:"comparisons"`
}

// BudgetEntryListResponse represents a category's entries across months
type BudgetEntryListResponse struct {
	CategoryID uuid.UUID            `json:"category_id"`
	Entries    []models.BudgetEntry `json:"entries"`
}

// MonthlyBudgetListResponse represents all recorded monthly budgets
type MonthlyBudgetListResponse struct {
	MonthlyBudgets []models.MonthlyBudget `json:"monthly_budgets"`
}
