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

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccount creates a new tracked account
// @Summary Create a new account
// @Description Create a tracked account with an optional starting balance. The current balance is seeded from the starting balance and moves only through transactions.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} models.Account "Account created successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	startingBalance := decimal.Zero
	if req.StartingBalance != "" {
		var err error
		startingBalance, err = models.ParseMoney(req.StartingBalance)
		if err != nil {
			return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Invalid starting balance"))
		}
	}

	account, err := h.accountService.CreateAccount(req.Name, req.AccountType, startingBalance)
	if err != nil {
		if err == models.ErrAccountNameEmpty {
			return SendError(c, errors.AccountNameEmpty)
		}
		if err == models.ErrInvalidAccountType {
			return SendError(c, errors.AccountInvalidType)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, account)
}

// GetAccount retrieves a specific account by ID
// @Summary Get account by ID
// @Description Retrieve a single account with its current balance
// @Tags Accounts
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} models.Account "Account details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID format"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, err := parseUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	account, err := h.accountService.GetAccountByID(accountID)
	if err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}

// ListAccounts retrieves all accounts with their combined balance
// @Summary List accounts
// @Description Retrieve every tracked account together with the total balance across all of them
// @Tags Accounts
// @Produce json
// @Success 200 {object} dto.AccountListResponse "Accounts and total balance"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accountService.GetAllAccounts()
	if err != nil {
		return SendSystemError(c, err)
	}

	total := decimal.Zero
	for _, account := range accounts {
		total = total.Add(account.CurrentBalance)
	}

	return c.JSON(http.StatusOK, dto.AccountListResponse{
		Accounts:     accounts,
		TotalBalance: total,
	})
}

// UpdateAccount renames or retypes an account
// @Summary Update account
// @Description Update an account's name and type. Balances cannot be edited directly.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param request body dto.UpdateAccountRequest true "Updated account details"
// @Success 200 {object} models.Account "Updated account"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or account ID"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId} [put]
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	accountID, err := parseUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	var req dto.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	account, err := h.accountService.GetAccountByID(accountID)
	if err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	account.Name = req.Name
	account.AccountType = req.AccountType

	updated, err := h.accountService.UpdateAccount(account)
	if err != nil {
		if err == models.ErrAccountNameEmpty {
			return SendError(c, errors.AccountNameEmpty)
		}
		if err == models.ErrInvalidAccountType {
			return SendError(c, errors.AccountInvalidType)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteAccount removes an account
// @Summary Delete account
// @Description Delete an account. Its transactions survive with the account reference cleared so category history is preserved.
// @Tags Accounts
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Account deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId} [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	accountID, err := parseUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	if err := h.accountService.DeleteAccount(accountID); err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deleted successfully"})
}
