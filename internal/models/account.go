package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
	AccountTypeCash     = "cash"
	AccountTypeCredit   = "credit"
)

var (
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrAccountNameEmpty   = errors.New("account name is required")
)

// Account represents real-world money that exists today. StartingBalance is
// fixed at creation; CurrentBalance moves exclusively through transaction
// posting and removal, and may go negative (credit cards, overdrafts).
type Account struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name            string          `gorm:"type:varchar(100);not null" json:"name"`
	AccountType     string          `gorm:"type:varchar(20)" json:"account_type,omitempty"`
	StartingBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"starting_balance"`
	CurrentBalance  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_balance"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	// A new account starts at its starting balance until transactions move it.
	if a.CurrentBalance.IsZero() && !a.StartingBalance.IsZero() {
		a.CurrentBalance = a.StartingBalance
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.Name == "" {
		return ErrAccountNameEmpty
	}

	if a.AccountType != "" && !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}

	return nil
}

// Post applies a transaction's effect to the current balance.
func (a *Account) Post(t *Transaction) {
	a.CurrentBalance = a.CurrentBalance.Add(t.SignedAmount())
}

// Unpost reverses a previously posted transaction's effect on the current
// balance.
func (a *Account) Unpost(t *Transaction) {
	a.CurrentBalance = a.CurrentBalance.Sub(t.SignedAmount())
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountType checks if the account type tag is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCash, AccountTypeCredit:
		return true
	default:
		return false
	}
}
