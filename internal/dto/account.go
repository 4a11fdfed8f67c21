package dto

import (
	"budgetd/internal/models"

	"github.com/shopspring/decimal"
)

// Account Request DTOs

// CreateAccountRequest represents the request payload for creating a new account
type CreateAccountRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=100"`
	AccountType     string `json:"account_type" validate:"omitempty,oneof=checking savings cash credit"`
	StartingBalance string `json:"starting_balance" validate:"omitempty,money"`
}

// UpdateAccountRequest represents the request payload for renaming or
// retyping an account. Balances are never set directly; they move through
// transactions.
type UpdateAccountRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	AccountType string `json:"account_type" validate:"omitempty,oneof=checking savings cash credit"`
}

// Account Response DTOs

// AccountListResponse represents all accounts with their combined balance
type AccountListResponse struct {
	Accounts     []models.Account `json:"accounts"`
	TotalBalance decimal.Decimal  `json:"total_balance"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
