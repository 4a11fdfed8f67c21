package repositories

import (
	"errors"
	"fmt"
	"strings"

	"budgetd/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryNameTaken = errors.New("category name already exists")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{db: db}
}

// Create creates a new category; names are unique across all categories
func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrCategoryNameTaken
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByID retrieves a category by ID
func (r *categoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	category := &models.Category{ID: id}
	if err := r.db.First(category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// GetByName retrieves a category by its unique name
func (r *categoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}
	return &category, nil
}

// GetAll retrieves categories in display order: group sort order first, then
// category sort order, then name
func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.
		Joins("LEFT JOIN category_groups ON category_groups.id = categories.group_id").
		Order("category_groups.sort_order ASC, categories.sort_order ASC, categories.name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// Update updates a category
func (r *categoryRepository) Update(category *models.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrCategoryNameTaken
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

// Delete removes a category together with its transactions and budget
// entries. A category's transactions have no meaning without it; its monthly
// history goes with it too (see DESIGN.md). Account-linked transactions are
// unposted first so current balances keep matching the surviving ledger.
func (r *categoryRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var doomed []models.Transaction
		if err := tx.Where("category_id = ?", id).Find(&doomed).Error; err != nil {
			return fmt.Errorf("failed to load category transactions: %w", err)
		}

		for i := range doomed {
			txn := &doomed[i]
			if txn.AccountID == nil {
				continue
			}
			account := &models.Account{ID: *txn.AccountID}
			if err := tx.First(account).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return fmt.Errorf("failed to load account for unposting: %w", err)
			}
			account.Unpost(txn)
			if err := tx.Save(account).Error; err != nil {
				return fmt.Errorf("failed to restore account balance: %w", err)
			}
		}

		if err := tx.Where("category_id = ?", id).
			Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to delete category transactions: %w", err)
		}

		if err := tx.Where("category_id = ?", id).
			Delete(&models.BudgetEntry{}).Error; err != nil {
			return fmt.Errorf("failed to delete category budget entries: %w", err)
		}

		result := tx.Delete(&models.Category{ID: id})
		if result.Error != nil {
			return fmt.Errorf("failed to delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}

// isUniqueViolation detects unique-constraint errors across the postgres and
// sqlite drivers, which gorm does not always normalize to ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
