package handlers

import (
	"net/http"

	"budgetd/internal/dto"
	"budgetd/internal/errors"
	"budgetd/internal/models"
	"budgetd/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CategoryHandler handles category and category group HTTP requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory creates a new budget category
// @Summary Create a category
// @Description Create a budget category. The legacy monthly amount acts as the budgeted figure for months without a materialized entry.
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} models.Category "Category created successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_004 - Category group not found"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_002 - Category name already in use"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	category, err := categoryFromRequest(req.Name, req.CategoryType, req.DueDay, req.DueLastDay, req.GroupID, req.SortOrder, req.LegacyMonthlyAmount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Invalid legacy monthly amount"))
	}

	created, err := h.categoryService.CreateCategory(category)
	if err != nil {
		return h.mapCategoryErr(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// GetCategory retrieves a specific category by ID
// @Summary Get category by ID
// @Tags Categories
// @Produce json
// @Param categoryId path string true "Category ID (UUID)"
// @Success 200 {object} models.Category "Category details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid category ID format"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories/{categoryId} [get]
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	categoryID, err := parseUUIDParam(c, "categoryId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	category, err := h.categoryService.GetCategoryByID(categoryID)
	if err != nil {
		return h.mapCategoryErr(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

// ListCategories retrieves all categories
// @Summary List categories
// @Description Retrieve every category ordered by sort order, then name
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse "All categories"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.GetAllCategories()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoryListResponse{Categories: categories})
}

// UpdateCategory updates an existing category
// @Summary Update category
// @Description Replace a category's attributes. Changing the type or due date never rewrites already materialized budget entries.
// @Tags Categories
// @Accept json
// @Produce json
// @Param categoryId path string true "Category ID (UUID)"
// @Param request body dto.UpdateCategoryRequest true "Updated category details"
// @Success 200 {object} models.Category "Updated category"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or category ID"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_002 - Category name already in use"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories/{categoryId} [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	categoryID, err := parseUUIDParam(c, "categoryId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	category, err := h.categoryService.GetCategoryByID(categoryID)
	if err != nil {
		return h.mapCategoryErr(c, err)
	}

	updatedFields, err := categoryFromRequest(req.Name, req.CategoryType, req.DueDay, req.DueLastDay, req.GroupID, req.SortOrder, req.LegacyMonthlyAmount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Invalid legacy monthly amount"))
	}

	category.Name = updatedFields.Name
	category.CategoryType = updatedFields.CategoryType
	category.DueDay = updatedFields.DueDay
	category.DueLastDay = updatedFields.DueLastDay
	category.GroupID = updatedFields.GroupID
	category.SortOrder = updatedFields.SortOrder
	category.LegacyMonthlyAmount = updatedFields.LegacyMonthlyAmount

	updated, err := h.categoryService.UpdateCategory(category)
	if err != nil {
		return h.mapCategoryErr(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteCategory removes a category along with its transactions and entries
// @Summary Delete category
// @Description Delete a category. Its transactions and materialized budget entries are removed with it.
// @Tags Categories
// @Produce json
// @Param categoryId path string true "Category ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Category deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid category ID"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories/{categoryId} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	categoryID, err := parseUUIDParam(c, "categoryId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	if err := h.categoryService.DeleteCategory(categoryID); err != nil {
		return h.mapCategoryErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category deleted successfully"})
}

// Category group endpoints

// CreateGroup creates a new category group
// @Summary Create a category group
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryGroupRequest true "Group details"
// @Success 201 {object} models.CategoryGroup "Group created successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /category-groups [post]
func (h *CategoryHandler) CreateGroup(c echo.Context) error {
	var req dto.CreateCategoryGroupRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	group, err := h.categoryService.CreateGroup(&models.CategoryGroup{
		Name:      req.Name,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, group)
}

// ListGroups retrieves all category groups
// @Summary List category groups
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.CategoryGroupListResponse "All groups"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /category-groups [get]
func (h *CategoryHandler) ListGroups(c echo.Context) error {
	groups, err := h.categoryService.GetAllGroups()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoryGroupListResponse{Groups: groups})
}

// DeleteGroup removes a category group, detaching its categories
// @Summary Delete category group
// @Description Delete a group. Member categories survive with their group reference cleared.
// @Tags Categories
// @Produce json
// @Param groupId path string true "Group ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Group deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid group ID"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_004 - Group not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /category-groups/{groupId} [delete]
func (h *CategoryHandler) DeleteGroup(c echo.Context) error {
	groupID, err := parseUUIDParam(c, "groupId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid group ID"))
	}

	if err := h.categoryService.DeleteGroup(groupID); err != nil {
		if err == services.ErrGroupNotFound {
			return SendError(c, errors.CategoryGroupNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category group deleted successfully"})
}

// categoryFromRequest builds a category model from request fields, parsing
// the optional legacy amount and group reference
func categoryFromRequest(name, categoryType string, dueDay *int, dueLastDay bool, groupID string, sortOrder int, legacyAmount string) (*models.Category, error) {
	amount := decimal.Zero
	if legacyAmount != "" {
		parsed, err := models.ParseMoney(legacyAmount)
		if err != nil {
			return nil, err
		}
		amount = parsed
	}

	category := &models.Category{
		Name:                name,
		CategoryType:        categoryType,
		DueDay:              dueDay,
		DueLastDay:          dueLastDay,
		SortOrder:           sortOrder,
		LegacyMonthlyAmount: amount,
	}

	if groupID != "" {
		id, err := uuid.Parse(groupID)
		if err != nil {
			return nil, err
		}
		category.GroupID = &id
	}

	return category, nil
}

func (h *CategoryHandler) mapCategoryErr(c echo.Context, err error) error {
	switch err {
	case services.ErrCategoryNotFound:
		return SendError(c, errors.CategoryNotFound)
	case services.ErrCategoryNameTaken:
		return SendError(c, errors.CategoryNameTaken)
	case services.ErrGroupNotFound:
		return SendError(c, errors.CategoryGroupNotFound)
	case models.ErrInvalidCategoryType:
		return SendError(c, errors.CategoryInvalidType)
	case models.ErrInvalidDueDay:
		return SendError(c, errors.CategoryInvalidDueDay)
	}
	return SendSystemError(c, err)
}
