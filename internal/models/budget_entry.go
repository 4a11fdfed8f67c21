package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEntryCategoryRequired = errors.New("budget entry category is required")
	ErrEntryMonthRequired    = errors.New("budget entry month is required")
	ErrNegativeCarryForward  = errors.New("available from previous must not be negative")
)

// BudgetEntry is the per-category, per-month ledger entry at the heart of the
// rollover model. At most one entry exists per (category, month).
//
// BudgetedAmount is the user's assignment for THIS month only; it starts at
// zero whenever an entry is materialized and is never copied forward
// (zero-based budgeting). AvailableFromPrevious is the carry-forward computed
// once at materialization and frozen: editing prior-month transactions after
// the fact does not silently re-derive it.
type BudgetEntry struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_entries_category_month" json:"category_id"`
	Month                 Month           `gorm:"not null;uniqueIndex:idx_budget_entries_category_month" json:"month"`
	BudgetedAmount        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"budgeted_amount"`
	AvailableFromPrevious decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"available_from_previous"`
	CreatedAt             time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate hook for BudgetEntry
func (e *BudgetEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

// BeforeUpdate hook for BudgetEntry
func (e *BudgetEntry) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return e.Validate()
}

// Validate validates the entry fields
func (e *BudgetEntry) Validate() error {
	if e.CategoryID == uuid.Nil {
		return ErrEntryCategoryRequired
	}

	if e.Month.IsZero() {
		return ErrEntryMonthRequired
	}

	if e.AvailableFromPrevious.LessThan(decimal.Zero) {
		return ErrNegativeCarryForward
	}

	return nil
}

// Committed is the total assigned to the envelope for this month: this
// month's assignment plus the frozen carry-forward.
func (e *BudgetEntry) Committed() decimal.Decimal {
	return e.BudgetedAmount.Add(e.AvailableFromPrevious)
}

// TotalAvailable is what remains spendable this month. It may go negative:
// overspending stays visible within the month and is only clamped when it
// becomes the next month's carry-forward input.
func (e *BudgetEntry) TotalAvailable(actualSpent decimal.Decimal) decimal.Decimal {
	return e.Committed().Sub(actualSpent)
}

// TableName returns the table name for BudgetEntry
func (e *BudgetEntry) TableName() string {
	return "budget_entries"
}
