package repositories

import (
	"errors"
	"fmt"

	"budgetd/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGroupNotFound = errors.New("category group not found")

type categoryGroupRepository struct {
	db *gorm.DB
}

// NewCategoryGroupRepository creates a new category group repository
func NewCategoryGroupRepository(db *gorm.DB) CategoryGroupRepositoryInterface {
	return &categoryGroupRepository{db: db}
}

func (r *categoryGroupRepository) Create(group *models.CategoryGroup) error {
	if err := r.db.Create(group).Error; err != nil {
		return fmt.Errorf("failed to create category group: %w", err)
	}
	return nil
}

func (r *categoryGroupRepository) GetByID(id uuid.UUID) (*models.CategoryGroup, error) {
	group := &models.CategoryGroup{ID: id}
	if err := r.db.First(group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get category group: %w", err)
	}
	return group, nil
}

func (r *categoryGroupRepository) GetAll() ([]models.CategoryGroup, error) {
	var groups []models.CategoryGroup
	if err := r.db.Order("sort_order ASC, name ASC").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("failed to get category groups: %w", err)
	}
	return groups, nil
}

func (r *categoryGroupRepository) Update(group *models.CategoryGroup) error {
	if err := r.db.Save(group).Error; err != nil {
		return fmt.Errorf("failed to update category group: %w", err)
	}
	return nil
}

// Delete removes the group; member categories survive ungrouped.
func (r *categoryGroupRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Category{}).
			Where("group_id = ?", id).
			Update("group_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach categories: %w", err)
		}

		result := tx.Delete(&models.CategoryGroup{ID: id})
		if result.Error != nil {
			return fmt.Errorf("failed to delete category group: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrGroupNotFound
		}
		return nil
	})
}
