package dto

import "budgetd/internal/models"

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording a transaction
type CreateTransactionRequest struct {
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Amount          string `json:"amount" validate:"required,money"`
	TransactionType string `json:"transaction_type" validate:"required,oneof=income expense"`
	CategoryID      string `json:"category_id" validate:"omitempty,uuid"`
	AccountID       string `json:"account_id" validate:"omitempty,uuid"`
	Description     string `json:"description" validate:"required,min=1,max=255"`
	Notes           string `json:"notes" validate:"omitempty,max=2000"`
}

// TransactionQueryParams contains filtering options for transaction queries.
// Months use the YYYY-MM format.
type TransactionQueryParams struct {
	From            string `query:"from"`
	To              string `query:"to"`
	CategoryID      string `query:"category_id"`
	AccountID       string `query:"account_id"`
	TransactionType string `query:"type"`
}

// Transaction Response DTOs

// TransactionListResponse represents a filtered list of transactions
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
}

// RunningBalanceResponse represents transactions annotated with the balance
// after each one, oldest first
type RunningBalanceResponse struct {
	Entries []models.RunningBalanceEntry `json:"entries"`
}
