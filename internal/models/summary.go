package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryComparison is the spending-vs-budget view for one category in one
// month.
type CategoryComparison struct {
	CategoryID     uuid.UUID       `json:"category_id"`
	CategoryName   string          `json:"category_name"`
	CategoryType   string          `json:"category_type"`
	GroupID        *uuid.UUID      `json:"group_id,omitempty"`
	Budgeted       decimal.Decimal `json:"budgeted"`
	Actual         decimal.Decimal `json:"actual"`
	Difference     decimal.Decimal `json:"difference"`
	PercentageUsed float64         `json:"percentage_used"`
	IsOverBudget   bool            `json:"is_over_budget"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
}

// CategoryMonthView pairs a materialized budget entry with its in-month
// spending figures.
type CategoryMonthView struct {
	CategoryID            uuid.UUID       `json:"category_id"`
	CategoryName          string          `json:"category_name"`
	Month                 Month           `json:"month"`
	BudgetedAmount        decimal.Decimal `json:"budgeted_amount"`
	AvailableFromPrevious decimal.Decimal `json:"available_from_previous"`
	ActualSpent           decimal.Decimal `json:"actual_spent"`
	TotalAvailable        decimal.Decimal `json:"total_available"`
}

// RunningBalanceEntry is one transaction together with the cumulative balance
// after applying it.
type RunningBalanceEntry struct {
	Transaction Transaction     `json:"transaction"`
	Balance     decimal.Decimal `json:"balance"`
}

// MonthSummary is the aggregate month view served to clients.
type MonthSummary struct {
	Month           Month                `json:"month"`
	ReadyToAssign   decimal.Decimal      `json:"ready_to_assign"`
	AccountTotal    decimal.Decimal      `json:"account_total"`
	TotalBudgeted   decimal.Decimal      `json:"total_budgeted"`
	TotalSpent      decimal.Decimal      `json:"total_spent"`
	TotalIncome     decimal.Decimal      `json:"total_income"`
	StartingBalance decimal.Decimal      `json:"starting_balance"`
	Categories      []CategoryMonthView  `json:"categories"`
	Comparisons     []CategoryComparison `json:"comparisons"`
}
