package handlers

import (
	"net/http"
	"time"

	"budgetd/internal/dto"
	"budgetd/internal/errors"
	"budgetd/internal/importer"
	"budgetd/internal/models"
	"budgetd/internal/repositories"
	"budgetd/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	summaryService     services.SummaryServiceInterface
	csvImporter        *importer.CSVImporter
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionService services.TransactionServiceInterface,
	summaryService services.SummaryServiceInterface,
	csvImporter *importer.CSVImporter,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		summaryService:     summaryService,
		csvImporter:        csvImporter,
	}
}

// CreateTransaction records a new transaction
// @Summary Record a transaction
// @Description Record an income or expense. When an account is referenced its balance is adjusted atomically with the posting.
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} models.Transaction "Transaction recorded"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body, TRANSACTION_002 - Invalid amount, TRANSACTION_003 - Invalid type"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found, ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("Date must use the YYYY-MM-DD format"))
	}

	amount, err := models.ParseMoney(req.Amount)
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails("Invalid amount"))
	}

	txn := &models.Transaction{
		Date:            date,
		Amount:          amount,
		TransactionType: req.TransactionType,
		Description:     req.Description,
		Notes:           req.Notes,
	}

	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
		}
		txn.CategoryID = &categoryID
	}

	if req.AccountID != "" {
		accountID, err := uuid.Parse(req.AccountID)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
		}
		txn.AccountID = &accountID
	}

	created, err := h.transactionService.RecordTransaction(txn)
	if err != nil {
		return h.mapTransactionErr(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// ListTransactions retrieves transactions with optional filters
// @Summary List transactions
// @Description Retrieve transactions ordered by date. Supports month range, category, account and type filters.
// @Tags Transactions
// @Produce json
// @Param from query string false "Start month (YYYY-MM, inclusive)"
// @Param to query string false "End month (YYYY-MM, inclusive)"
// @Param category_id query string false "Filter by category ID (UUID)"
// @Param account_id query string false "Filter by account ID (UUID)"
// @Param type query string false "Filter by type" Enums(income, expense)
// @Success 200 {object} dto.TransactionListResponse "Filtered transactions"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid month filter"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	filters, err := h.filtersFromQuery(c)
	if err != nil {
		return err
	}

	transactions, err := h.transactionService.GetTransactions(*filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
	})
}

// GetRunningBalance retrieves transactions annotated with the balance after each
// @Summary Transactions with running balance
// @Description Retrieve filtered transactions oldest first, each annotated with the cumulative balance after applying it.
// @Tags Transactions
// @Produce json
// @Param from query string false "Start month (YYYY-MM, inclusive)"
// @Param to query string false "End month (YYYY-MM, inclusive)"
// @Param category_id query string false "Filter by category ID (UUID)"
// @Param account_id query string false "Filter by account ID (UUID)"
// @Success 200 {object} dto.RunningBalanceResponse "Annotated transactions"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid month filter"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/running-balance [get]
func (h *TransactionHandler) GetRunningBalance(c echo.Context) error {
	filters, err := h.filtersFromQuery(c)
	if err != nil {
		return err
	}

	transactions, err := h.transactionService.GetTransactions(*filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	entries := h.summaryService.RunningBalance(transactions)

	return c.JSON(http.StatusOK, dto.RunningBalanceResponse{Entries: entries})
}

// GetTransaction retrieves a specific transaction by ID
// @Summary Get transaction by ID
// @Tags Transactions
// @Produce json
// @Param transactionId path string true "Transaction ID (UUID)"
// @Success 200 {object} models.Transaction "Transaction details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID format"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{transactionId} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	transactionID, err := parseUUIDParam(c, "transactionId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	txn, err := h.transactionService.GetTransactionByID(transactionID)
	if err != nil {
		return h.mapTransactionErr(c, err)
	}

	return c.JSON(http.StatusOK, txn)
}

// DeleteTransaction removes a transaction, reversing any balance effect
// @Summary Delete transaction
// @Description Delete a transaction. Any balance adjustment on the referenced account is reversed atomically.
// @Tags Transactions
// @Produce json
// @Param transactionId path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Transaction deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{transactionId} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	transactionID, err := parseUUIDParam(c, "transactionId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.DeleteTransaction(transactionID); err != nil {
		return h.mapTransactionErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted successfully"})
}

// ImportTransactions bulk-imports transactions from a CSV request body
// @Summary Import transactions from CSV
// @Description Import transactions from a CSV body with columns date, description, amount, type, category, account. Bad rows are skipped and reported; the remainder is imported.
// @Tags Transactions
// @Accept text/csv
// @Produce json
// @Success 200 {object} dto.ImportResponse "Import outcome with per-row errors"
// @Failure 422 {object} errors.ErrorResponse "IMPORT_001 - Empty import, IMPORT_002 - Too many rows"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/import [post]
func (h *TransactionHandler) ImportTransactions(c echo.Context) error {
	result, err := h.csvImporter.Import(c.Request().Body)
	if err != nil {
		switch err {
		case importer.ErrEmptyImport:
			return SendError(c, errors.ImportEmpty)
		case importer.ErrTooManyRows:
			return SendError(c, errors.ImportTooLarge)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ImportResponse{
		Imported: result.Imported,
		Skipped:  result.Skipped,
		Errors:   result.Errors,
	})
}

// filtersFromQuery parses the shared month/category/account/type query
// filters. On a bad value it sends the error response itself and returns
// the already-sent error.
func (h *TransactionHandler) filtersFromQuery(c echo.Context) (*repositories.TransactionFilters, error) {
	filters := repositories.TransactionFilters{
		TransactionType: c.QueryParam("type"),
	}

	if fromStr := c.QueryParam("from"); fromStr != "" {
		from, err := models.ParseMonth(fromStr)
		if err != nil {
			return nil, SendError(c, errors.ValidationInvalidMonth, errors.WithDetails("Invalid from month"))
		}
		filters.From = &from
	}

	if toStr := c.QueryParam("to"); toStr != "" {
		to, err := models.ParseMonth(toStr)
		if err != nil {
			return nil, SendError(c, errors.ValidationInvalidMonth, errors.WithDetails("Invalid to month"))
		}
		filters.To = &to
	}

	if categoryIDStr := c.QueryParam("category_id"); categoryIDStr != "" {
		categoryID, err := uuid.Parse(categoryIDStr)
		if err != nil {
			return nil, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
		}
		filters.CategoryID = &categoryID
	}

	if accountIDStr := c.QueryParam("account_id"); accountIDStr != "" {
		accountID, err := uuid.Parse(accountIDStr)
		if err != nil {
			return nil, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
		}
		filters.AccountID = &accountID
	}

	return &filters, nil
}

func (h *TransactionHandler) mapTransactionErr(c echo.Context, err error) error {
	switch err {
	case services.ErrTransactionNotFound:
		return SendError(c, errors.TransactionNotFound)
	case services.ErrCategoryNotFound:
		return SendError(c, errors.CategoryNotFound)
	case services.ErrAccountNotFound:
		return SendError(c, errors.AccountNotFound)
	case models.ErrInvalidTransactionType:
		return SendError(c, errors.TransactionInvalidType)
	case models.ErrNegativeAmount:
		return SendError(c, errors.TransactionInvalidAmount)
	case models.ErrDescriptionEmpty:
		return SendError(c, errors.TransactionMissingFields)
	}
	return SendSystemError(c, err)
}
