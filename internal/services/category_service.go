package services

import (
	"errors"
	"fmt"
	"log/slog"

	"budgetd/internal/models"
	"budgetd/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrCategoryNameTaken = errors.New("category name already in use")
	ErrGroupNotFound     = errors.New("category group not found")
)

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	groupRepo    repositories.CategoryGroupRepositoryInterface
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	groupRepo repositories.CategoryGroupRepositoryInterface,
) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		groupRepo:    groupRepo,
	}
}

func (s *categoryService) CreateCategory(category *models.Category) (*models.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	if category.GroupID != nil {
		if _, err := s.groupRepo.GetByID(*category.GroupID); err != nil {
			if errors.Is(err, repositories.ErrGroupNotFound) {
				return nil, ErrGroupNotFound
			}
			return nil, fmt.Errorf("failed to verify category group: %w", err)
		}
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryNameTaken) {
			return nil, ErrCategoryNameTaken
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	slog.Info("category created",
		"category_id", category.ID,
		"name", category.Name,
		"type", category.CategoryType)

	return category, nil
}

func (s *categoryService) GetCategoryByID(id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *categoryService) GetAllCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) UpdateCategory(category *models.Category) (*models.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.GetCategoryByID(category.ID); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryNameTaken) {
			return nil, ErrCategoryNameTaken
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes the category together with its transactions and
// budget entries.
func (s *categoryService) DeleteCategory(id uuid.UUID) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	slog.Info("category deleted", "category_id", id)
	return nil
}

func (s *categoryService) CreateGroup(group *models.CategoryGroup) (*models.CategoryGroup, error) {
	if err := group.Validate(); err != nil {
		return nil, err
	}

	if err := s.groupRepo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create category group: %w", err)
	}
	return group, nil
}

func (s *categoryService) GetAllGroups() ([]models.CategoryGroup, error) {
	return s.groupRepo.GetAll()
}

func (s *categoryService) UpdateGroup(group *models.CategoryGroup) (*models.CategoryGroup, error) {
	if err := group.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.groupRepo.GetByID(group.ID); err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to verify category group: %w", err)
	}

	if err := s.groupRepo.Update(group); err != nil {
		return nil, fmt.Errorf("failed to update category group: %w", err)
	}
	return group, nil
}

// DeleteGroup removes the group; member categories are detached, not deleted.
func (s *categoryService) DeleteGroup(id uuid.UUID) error {
	if err := s.groupRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return ErrGroupNotFound
		}
		return fmt.Errorf("failed to delete category group: %w", err)
	}
	return nil
}
