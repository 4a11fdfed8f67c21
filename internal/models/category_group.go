package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGroupNameEmpty = errors.New("category group name is required")

// CategoryGroup is an organizational container for categories ("Fixed
// Expenses", "Lifestyle"). It is a display aid only and plays no part in the
// calculation invariants.
type CategoryGroup struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	// Associations
	Categories []Category `gorm:"foreignKey:GroupID" json:"-"`
}

// BeforeCreate hook for CategoryGroup
func (g *CategoryGroup) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}
	return g.Validate()
}

// Validate validates the group fields
func (g *CategoryGroup) Validate() error {
	if g.Name == "" {
		return ErrGroupNameEmpty
	}
	return nil
}

// TableName returns the table name for CategoryGroup
func (g *CategoryGroup) TableName() string {
	return "category_groups"
}
