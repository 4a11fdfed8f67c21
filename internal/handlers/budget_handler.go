package handlers

import (
	"net/http"

	"budgetd/internal/dto"
	"budgetd/internal/errors"
	"budgetd/internal/models"
	"budgetd/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget month HTTP requests: materialized entries,
// assignment, aggregation and the informational monthly records
type BudgetHandler struct {
	rolloverService      services.RolloverServiceInterface
	summaryService       services.SummaryServiceInterface
	monthlyBudgetService services.MonthlyBudgetServiceInterface
	// currencyCode is echoed in month views for clients; amounts are never
	// converted.
	currencyCode string
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(
	rolloverService services.RolloverServiceInterface,
	summaryService services.SummaryServiceInterface,
	monthlyBudgetService services.MonthlyBudgetServiceInterface,
	currencyCode string,
) *BudgetHandler {
	return &BudgetHandler{
		rolloverService:      rolloverService,
		summaryService:       summaryService,
		monthlyBudgetService: monthlyBudgetService,
		currencyCode:         currencyCode,
	}
}

// GetMonthSummary retrieves the full budget view for a month
// @Summary Get month summary
// @Description Retrieve the complete budget view for a month: ready-to-assign, totals, per-category rows and budgeted-versus-actual comparisons.
// @Tags Budget
// @Produce json
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {object} dto.MonthSummaryResponse "Month summary"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid month format"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budget/{month} [get]
func (h *BudgetHandler) GetMonthSummary(c echo.Context) error {
	month, err := parseMonthParam(c, "month")
	if err != nil {
		return SendError(c, errors.ValidationInvalidMonth)
	}

	summary, err := h.summaryService.MonthSummary(month)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MonthSummaryResponse{
		MonthSummary: *summary,
		CurrencyCode: h.currencyCode,
	})
}

// GetReadyToAssign retrieves the unallocated money for a month
// @Summary Get ready-to-assign
// @Description Retrieve the pool of money not yet assigned to any category for the month.
// @Tags Budget
// @Produce json
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {object} dto.ReadyToAssignResponse "Ready-to-assign amount"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid month format"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budget/{month}/ready-to-assign [get]
func (h *BudgetHandler) GetReadyToAssign(c echo.Context) error {
	month, err := parseMonthParam(c, "month")
	if err != nil {
		return SendError(c, errors.ValidationInvalidMonth)
	}

	amount, err := h.summaryService.ReadyToAssign(month)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ReadyToAssignResponse{
		Month:         month,
		ReadyToAssign: amount,
	})
}

// GetComparisons retrieves budgeted-versus-actual figures for a month
// @Summary Get budget comparisons
// @Description Retrieve budgeted versus actual spending per non-income category. Read-only: months without a materialized entry fall back to the category's legacy monthly amount.
// @Tags Budget
// @Produce json
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {object} dto.ComparisonListResponse "Per-category comparisons"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid month format"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budget/{month}/comparisons [get]
func (h *BudgetHandler) GetComparisons(c echo.Context) error {
	month, err := parseMonthParam(c, "month")
	if err != nil {
		return SendError(c, errors.ValidationInvalidMonth)
	}

	comparisons, err := h.summaryService.CategoryComparisons(month)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ComparisonListResponse{
		Month:       month,
		Comparisons: comparisons,
	})
}

// GetCategoryEntry materializes and retrieves a category's entry for a month
// @Summary Get category budget entry
// @Description Retrieve the budget entry for a category and month, materializing it with its frozen carry-forward on first access.
// @Tags Budget
// @Produce json
// @Param month path string true "Month (YYYY-MM)"
// @Param categoryId path string true "Category ID (UUID)"
// @Success 200 {object} models.BudgetEntry "Budget entry"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid month, VALIDATION_003 - Invalid category ID"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budget/{month}/categories/{categoryId} [get]
func (h *BudgetHandler) GetCategoryEntry(c echo.Context) error {
	month, err := parseMonthParam(c, "month")
	if err != nil {
		return SendError(c, errors.ValidationInvalidMonth)
	}

	categoryID, err := parseUUIDParam(c, "categoryId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	entry, err := h.rolloverService.GetOrCreateMonthBudget(categoryID, month)
	if err != nil {
		if err == services.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, entry)
}

// GetCategoryHistory lists a category's materialized entries across months
// @Summary Get category budget history
// @Description Retrieve every materialized budget entry for a category, oldest month first. Months never opened have no entry and are absent.
// @Tags Budget
// @Produce json
// @Param categoryId path string true "Category ID (UUID)"
// @Success 200 {object} dto.BudgetEntryListResponse "Budget entries"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid category ID"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budget/categories/{categoryId}/history [get]
func (h *BudgetHandler) GetCategoryHistory(c echo.Context) error {
	categoryID, err := parseUUIDParam(c, "categoryId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	entries, err := h.rolloverService.EntryHistory(categoryID)
	if err != nil {
		if err == services.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetEntryListResponse{
		CategoryID: categoryID,
		Entries:    entries,
	})
}

// SetBudgetedAmount assigns money to a category for a month
// @Summary Set budgeted amount
// @Description Assign money to a category for a month. The entry is materialized first, so the frozen carry-forward is never affected by the assignment.
// @Tags Budget
// @Accept json
// @Produce json
// @Param month path string true "Month (YYYY-MM)"
// @Param categoryId path string true "Category ID (UUID)"
// @Param request body dto.SetBudgetedAmountRequest true "Amount to assign"
// @Success 200 {object} models.BudgetEntry "Updated budget entry"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body, BUDGET_002 - Negative amount"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budget/{month}/categories/{categoryId} [put]
func (h *BudgetHandler) SetBudgetedAmount(c echo.Context) error {
	month, err := parseMonthParam(c, "month")
	if err != nil {
		return SendError(c, errors.ValidationInvalidMonth)
	}

	categoryID, err := parseUUIDParam(c, "categoryId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	var req dto.SetBudgetedAmountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := models.ParseMoney(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Invalid amount"))
	}

	entry, err := h.rolloverService.SetBudgetedAmount(categoryID, month, amount)
	if err != nil {
		switch err {
		case services.ErrCategoryNotFound:
			return SendError(c, errors.CategoryNotFound)
		case services.ErrNegativeBudget:
			return SendError(c, errors.BudgetNegativeAmount)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, entry)
}

// Monthly budget record endpoints

// UpsertMonthlyBudget records or updates a month's informational fields
// @Summary Upsert monthly budget record
// @Description Record a month's informational starting balance and notes. Creates the record on first write, updates it afterwards.
// @Tags Budget
// @Accept json
// @Produce json
// @Param month path string true "Month (YYYY-MM)"
// @Param request body dto.UpsertMonthlyBudgetRequest true "Monthly budget fields"
// @Success 200 {object} models.MonthlyBudget "Monthly budget record"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body, VALIDATION_006 - Invalid month"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /monthly-budgets/{month} [put]
func (h *BudgetHandler) UpsertMonthlyBudget(c echo.Context) error {
	month, err := parseMonthParam(c, "month")
	if err != nil {
		return SendError(c, errors.ValidationInvalidMonth)
	}

	var req dto.UpsertMonthlyBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	startingBalance := decimal.Zero
	if req.StartingBalance != "" {
		startingBalance, err = models.ParseMoney(req.StartingBalance)
		if err != nil {
			return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Invalid starting balance"))
		}
	}

	record, err := h.monthlyBudgetService.UpsertMonthlyBudget(month, startingBalance, req.Notes)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, record)
}

// GetMonthlyBudget retrieves a month's informational record
// @Summary Get monthly budget record
// @Tags Budget
// @Produce json
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {object} models.MonthlyBudget "Monthly budget record"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid month format"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_003 - No record for this month"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /monthly-budgets/{month} [get]
func (h *BudgetHandler) GetMonthlyBudget(c echo.Context) error {
	month, err := parseMonthParam(c, "month")
	if err != nil {
		return SendError(c, errors.ValidationInvalidMonth)
	}

	record, err := h.monthlyBudgetService.GetMonthlyBudget(month)
	if err != nil {
		if err == services.ErrMonthlyBudgetNotFound {
			return SendError(c, errors.BudgetMonthNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, record)
}

// ListMonthlyBudgets retrieves all monthly budget records
// @Summary List monthly budget records
// @Tags Budget
// @Produce json
// @Success 200 {object} dto.MonthlyBudgetListResponse "All monthly budget records"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /monthly-budgets [get]
func (h *BudgetHandler) ListMonthlyBudgets(c echo.Context) error {
	records, err := h.monthlyBudgetService.GetAllMonthlyBudgets()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MonthlyBudgetListResponse{MonthlyBudgets: records})
}
