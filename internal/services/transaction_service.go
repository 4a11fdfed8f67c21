package services

import (
	"errors"
	"fmt"
	"log/slog"

	"budgetd/internal/models"
	"budgetd/internal/repositories"

	"github.com/google/uuid"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type transactionService struct {
	txnRepo      repositories.TransactionRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
}

func NewTransactionService(
	txnRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		txnRepo:      txnRepo,
		categoryRepo: categoryRepo,
		metrics:      metrics,
	}
}

// RecordTransaction validates and posts a transaction. A referenced category
// must exist; the account reference is checked by the repository inside the
// posting transaction.
func (s *transactionService) RecordTransaction(txn *models.Transaction) (*models.Transaction, error) {
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if txn.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*txn.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, fmt.Errorf("failed to verify category: %w", err)
		}
	}

	if err := s.txnRepo.Create(txn); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordTransaction(txn.TransactionType)
	}

	slog.Info("transaction recorded",
		"transaction_id", txn.ID,
		"type", txn.TransactionType,
		"amount", txn.Amount.String(),
		"date", txn.Date.Format("2006-01-02"))

	return txn, nil
}

func (s *transactionService) GetTransactionByID(id uuid.UUID) (*models.Transaction, error) {
	txn, err := s.txnRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) GetTransactions(filters repositories.TransactionFilters) ([]models.Transaction, error) {
	return s.txnRepo.GetAll(filters)
}

func (s *transactionService) DeleteTransaction(id uuid.UUID) error {
	if err := s.txnRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	slog.Info("transaction deleted", "transaction_id", id)
	return nil
}
