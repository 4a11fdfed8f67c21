package services

import (
	"errors"
	"fmt"
	"log/slog"

	"budgetd/internal/models"
	"budgetd/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrAccountNotFound = errors.New("account not found")

type accountService struct {
	accountRepo repositories.AccountRepositoryInterface
}

func NewAccountService(accountRepo repositories.AccountRepositoryInterface) AccountServiceInterface {
	return &accountService{accountRepo: accountRepo}
}

func (s *accountService) CreateAccount(name, accountType string, startingBalance decimal.Decimal) (*models.Account, error) {
	account := &models.Account{
		Name:            name,
		AccountType:     accountType,
		StartingBalance: startingBalance,
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	slog.Info("account created",
		"account_id", account.ID,
		"name", account.Name,
		"starting_balance", account.StartingBalance.String())

	return account, nil
}

func (s *accountService) GetAccountByID(id uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (s *accountService) GetAllAccounts() ([]models.Account, error) {
	return s.accountRepo.GetAll()
}

func (s *accountService) UpdateAccount(account *models.Account) (*models.Account, error) {
	if err := account.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.GetAccountByID(account.ID); err != nil {
		return nil, err
	}

	if err := s.accountRepo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

func (s *accountService) DeleteAccount(id uuid.UUID) error {
	if err := s.accountRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}

	slog.Info("account deleted", "account_id", id)
	return nil
}
