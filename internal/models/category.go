package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	CategoryTypeFixed     = "fixed"
	CategoryTypeVariable  = "variable"
	CategoryTypeQuarterly = "quarterly"
	CategoryTypeIncome    = "income"
)

var (
	ErrInvalidCategoryType = errors.New("invalid category type")
	ErrCategoryNameEmpty   = errors.New("category name is required")
	ErrInvalidDueDay       = errors.New("due day must be between 1 and 31")
)

// Category is a named budget envelope. Names are unique across all
// categories.
//
// LegacyMonthlyAmount is a migration-era fallback: before per-month budget
// entries existed, each category carried a single repeating amount. It is
// consulted only through resolveBudgeted at the rollover/comparison boundary
// and never written by new code.
type Category struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name                string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	CategoryType        string          `gorm:"type:varchar(20);not null;default:'variable'" json:"category_type"`
	DueDay              *int            `gorm:"type:smallint" json:"due_day,omitempty"`
	DueLastDay          bool            `gorm:"not null;default:false" json:"due_last_day"`
	GroupID             *uuid.UUID      `gorm:"type:uuid;index" json:"group_id,omitempty"`
	SortOrder           int             `gorm:"not null;default:0" json:"sort_order"`
	LegacyMonthlyAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"legacy_monthly_amount"`
	CreatedAt           time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Group        *CategoryGroup `gorm:"foreignKey:GroupID" json:"-"`
	Transactions []Transaction  `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	if c.CategoryType == "" {
		c.CategoryType = CategoryTypeVariable
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// BeforeUpdate hook for Category
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if !IsValidCategoryType(c.CategoryType) {
		return ErrInvalidCategoryType
	}

	if c.DueDay != nil && (*c.DueDay < 1 || *c.DueDay > 31) {
		return ErrInvalidDueDay
	}

	return nil
}

// IsIncome reports whether the category collects income rather than spending.
func (c *Category) IsIncome() bool {
	return c.CategoryType == CategoryTypeIncome
}

// EffectiveDueDate resolves the category's due date within the given month.
// The DueLastDay flag wins over any explicit day; an explicit day is clamped
// into the month's valid range (day 31 in April resolves to April 30, day 29
// in a non-leap February to February 28). Returns nil when the category has
// no due date.
func (c *Category) EffectiveDueDate(month Month) *time.Time {
	day := 0
	switch {
	case c.DueLastDay:
		day = month.Days()
	case c.DueDay != nil:
		day = *c.DueDay
		if day > month.Days() {
			day = month.Days()
		}
		if day < 1 {
			day = 1
		}
	default:
		return nil
	}

	t := time.Date(month.Time().Year(), month.Time().Month(), day, 0, 0, 0, 0, time.UTC)
	return &t
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// IsValidCategoryType checks if the category type is valid
func IsValidCategoryType(categoryType string) bool {
	switch categoryType {
	case CategoryTypeFixed, CategoryTypeVariable, CategoryTypeQuarterly, CategoryTypeIncome:
		return true
	default:
		return false
	}
}
