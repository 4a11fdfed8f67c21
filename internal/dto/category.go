package dto

import "budgetd/internal/models"

// Category Request DTOs

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name                string `json:"name" validate:"required,min=1,max=100"`
	CategoryType        string `json:"category_type" validate:"required,oneof=fixed variable quarterly income"`
	DueDay              *int   `json:"due_day" validate:"omitempty,min=1,max=31"`
	DueLastDay          bool   `json:"due_last_day"`
	GroupID             string `json:"group_id" validate:"omitempty,uuid"`
	SortOrder           int    `json:"sort_order"`
	LegacyMonthlyAmount string `json:"legacy_monthly_amount" validate:"omitempty,money"`
}

// UpdateCategoryRequest represents the request payload for updating a category
type UpdateCategoryRequest struct {
	Name                string `json:"name" validate:"required,min=1,max=100"`
	CategoryType        string `json:"category_type" validate:"required,oneof=fixed variable quarterly income"`
	DueDay              *int   `json:"due_day" validate:"omitempty,min=1,max=31"`
	DueLastDay          bool   `json:"due_last_day"`
	GroupID             string `json:"group_id" validate:"omitempty,uuid"`
	SortOrder           int    `json:"sort_order"`
	LegacyMonthlyAmount string `json:"legacy_monthly_amount" validate:"omitempty,money"`
}

// CreateCategoryGroupRequest represents the request payload for creating a group
type CreateCategoryGroupRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	SortOrder int    `json:"sort_order"`
}

// Category Response DTOs

// CategoryListResponse represents all categories
type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
}

// CategoryGroupListResponse represents all category groups
type CategoryGroupListResponse struct {
	Groups []models.CategoryGroup `json:"groups"`
}
