package repositories

import (
	"testing"
	"time"

	"budgetd/internal/database"
	"budgetd/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositorySuite defines the test suite for TransactionRepository
type TransactionRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     TransactionRepositoryInterface
	account  *models.Account
	category *models.Category
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)

	s.account = database.CreateTestAccount(s.T(), s.db, "Checking", decimal.NewFromFloat(1000.00))
	s.category = database.CreateTestCategory(s.T(), s.db, "Groceries", models.CategoryTypeVariable)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) TestCreate_ExpenseReducesAccountBalance() {
	txn := &models.Transaction{
		Date:            time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromFloat(120.50),
		TransactionType: models.TransactionTypeExpense,
		Description:     "Weekly groceries",
		CategoryID:      &s.category.ID,
		AccountID:       &s.account.ID,
	}

	err := s.repo.Create(txn)
	s.NoError(err)
	s.NotEqual(uuid.Nil, txn.ID)

	var account models.Account
	s.NoError(s.db.DB.First(&account, "id = ?", s.account.ID).Error)
	s.Equal(decimal.NewFromFloat(879.50).String(), account.CurrentBalance.String())
}

func (s *TransactionRepositorySuite) TestCreate_IncomeRaisesAccountBalance() {
	txn := &models.Transaction{
		Date:            time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromFloat(2500.00),
		TransactionType: models.TransactionTypeIncome,
		Description:     "Paycheck",
		AccountID:       &s.account.ID,
	}

	err := s.repo.Create(txn)
	s.NoError(err)

	var account models.Account
	s.NoError(s.db.DB.First(&account, "id = ?", s.account.ID).Error)
	s.Equal(decimal.NewFromFloat(3500.00).String(), account.CurrentBalance.String())
}

func (s *TransactionRepositorySuite) TestCreate_NoAccountLeavesBalancesUntouched() {
	txn := &models.Transaction{
		Date:            time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromFloat(30.00),
		TransactionType: models.TransactionTypeExpense,
		Description:     "Cash purchase",
		CategoryID:      &s.category.ID,
	}

	err := s.repo.Create(txn)
	s.NoError(err)

	var account models.Account
	s.NoError(s.db.DB.First(&account, "id = ?", s.account.ID).Error)
	s.Equal(decimal.NewFromFloat(1000.00).String(), account.CurrentBalance.String())
}

func (s *TransactionRepositorySuite) TestCreate_UnknownAccount() {
	missing := uuid.New()
	txn := &models.Transaction{
		Date:            time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromFloat(30.00),
		TransactionType: models.TransactionTypeExpense,
		Description:     "Orphan",
		AccountID:       &missing,
	}

	err := s.repo.Create(txn)
	s.ErrorIs(err, ErrAccountNotFound)

	// The insert rolled back with the balance update
	var count int64
	s.NoError(s.db.DB.Model(&models.Transaction{}).Count(&count).Error)
	s.Zero(count)
}

func (s *TransactionRepositorySuite) TestGetAll_OrderAndFilters() {
	dates := []time.Time{
		time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		s.NoError(s.repo.Create(&models.Transaction{
			Date:            d,
			Amount:          decimal.NewFromFloat(10.00),
			TransactionType: models.TransactionTypeExpense,
			Description:     "expense",
			CategoryID:      &s.category.ID,
		}))
	}

	all, err := s.repo.GetAll(TransactionFilters{})
	s.NoError(err)
	s.Len(all, 3)
	s.True(all[0].Date.Before(all[1].Date))
	s.True(all[1].Date.Before(all[2].Date))

	july := models.NewMonth(2024, time.July)
	filtered, err := s.repo.GetAll(TransactionFilters{From: &july, To: &july})
	s.NoError(err)
	s.Len(filtered, 2)

	byCategory, err := s.repo.GetAll(TransactionFilters{CategoryID: &s.category.ID})
	s.NoError(err)
	s.Len(byCategory, 3)
}

func (s *TransactionRepositorySuite) TestGetByCategoryAndMonth_BoundsInclusive() {
	cases := []struct {
		date    time.Time
		inMonth bool
	}{
		{time.Date(2024, 6, 30, 23, 0, 0, 0, time.UTC), false},
		{time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2024, 7, 31, 23, 59, 0, 0, time.UTC), true},
		{time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, c := range cases {
		s.NoError(s.repo.Create(&models.Transaction{
			Date:            c.date,
			Amount:          decimal.NewFromFloat(5.00),
			TransactionType: models.TransactionTypeExpense,
			Description:     "boundary",
			CategoryID:      &s.category.ID,
		}))
	}

	july, err := s.repo.GetByCategoryAndMonth(s.category.ID, models.NewMonth(2024, time.July))
	s.NoError(err)
	s.Len(july, 2)
}

func (s *TransactionRepositorySuite) TestDelete_ReversesBalanceEffect() {
	txn := &models.Transaction{
		Date:            time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromFloat(200.00),
		TransactionType: models.TransactionTypeExpense,
		Description:     "Refundable",
		AccountID:       &s.account.ID,
	}
	s.NoError(s.repo.Create(txn))

	var account models.Account
	s.NoError(s.db.DB.First(&account, "id = ?", s.account.ID).Error)
	s.Equal(decimal.NewFromFloat(800.00).String(), account.CurrentBalance.String())

	err := s.repo.Delete(txn.ID)
	s.NoError(err)

	s.NoError(s.db.DB.First(&account, "id = ?", s.account.ID).Error)
	s.Equal(decimal.NewFromFloat(1000.00).String(), account.CurrentBalance.String())

	_, err = s.repo.GetByID(txn.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestDelete_NotFound() {
	err := s.repo.Delete(uuid.New())
	s.ErrorIs(err, ErrTransactionNotFound)
}
