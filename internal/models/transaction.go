package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNegativeAmount         = errors.New("transaction amount must not be negative")
	ErrDescriptionEmpty       = errors.New("transaction description is required")
)

// Transaction is a single posted monetary event. Amount is always stored
// non-negative; direction is carried solely by TransactionType. Category and
// account references are optional: uncategorized and legacy transactions
// simply fall out of category/account-keyed aggregations.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Date            time.Time       `gorm:"not null;index" json:"date"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	TransactionType string          `gorm:"type:varchar(10);not null" json:"transaction_type"`
	CategoryID      *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	AccountID       *uuid.UUID      `gorm:"type:uuid;index" json:"account_id,omitempty"`
	Description     string          `gorm:"type:varchar(255);not null" json:"description"`
	Notes           string          `gorm:"type:text" json:"notes,omitempty"`
	Receipt         []byte          `gorm:"type:bytea" json:"-"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
	Account  *Account  `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Date.IsZero() {
		t.Date = time.Now().UTC()
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThan(decimal.Zero) {
		return ErrNegativeAmount
	}

	if t.Description == "" {
		return ErrDescriptionEmpty
	}

	return nil
}

// IsIncome reports whether the transaction adds money.
func (t *Transaction) IsIncome() bool {
	return t.TransactionType == TransactionTypeIncome
}

// IsExpense reports whether the transaction removes money.
func (t *Transaction) IsExpense() bool {
	return t.TransactionType == TransactionTypeExpense
}

// SignedAmount returns the amount with its direction applied: positive for
// income, negative for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// InMonth reports whether the transaction's date falls within the month.
func (t *Transaction) InMonth(month Month) bool {
	return month.Contains(t.Date)
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
