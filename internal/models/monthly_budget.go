package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyBudget records the user's account-level starting point for a
// calendar month. It is informational: the authoritative "money available"
// figure is always derived from live account balances and transaction
// history, never from this stored value.
type MonthlyBudget struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Month           Month           `gorm:"not null;uniqueIndex" json:"month"`
	StartingBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"starting_balance"`
	Notes           string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for MonthlyBudget
func (m *MonthlyBudget) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}

	if m.Month.IsZero() {
		return ErrEntryMonthRequired
	}

	return nil
}

// BeforeUpdate hook for MonthlyBudget
func (m *MonthlyBudget) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now()
	return nil
}

// TableName returns the table name for MonthlyBudget
func (m *MonthlyBudget) TableName() string {
	return "monthly_budgets"
}
