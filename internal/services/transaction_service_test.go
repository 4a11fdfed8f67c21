package services

import (
	"testing"
	"time"

	"budgetd/internal/database"
	"budgetd/internal/models"
	"budgetd/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceSuite struct {
	suite.Suite
	db       *database.DB
	service  TransactionServiceInterface
	account  *models.Account
	category *models.Category
}

func (s *TransactionServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.service = NewTransactionService(
		repositories.NewTransactionRepository(s.db.DB),
		repositories.NewCategoryRepository(s.db.DB),
		nil,
	)
	s.account = database.CreateTestAccount(s.T(), s.db, "Checking", decimal.NewFromFloat(1000.00))
	s.category = database.CreateTestCategory(s.T(), s.db, "Groceries", models.CategoryTypeVariable)
}

func (s *TransactionServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceSuite))
}

func (s *TransactionServiceSuite) TestRecordTransaction() {
	txn, err := s.service.RecordTransaction(&models.Transaction{
		Date:            time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromFloat(42.50),
		TransactionType: models.TransactionTypeExpense,
		CategoryID:      &s.category.ID,
		AccountID:       &s.account.ID,
		Description:     "Market",
	})
	s.NoError(err)
	s.NotEqual(uuid.Nil, txn.ID)

	var account models.Account
	s.NoError(s.db.DB.First(&account, "id = ?", s.account.ID).Error)
	s.Equal(decimal.NewFromFloat(957.50).String(), account.CurrentBalance.String())
}

func (s *TransactionServiceSuite) TestRecordTransaction_InvalidType() {
	_, err := s.service.RecordTransaction(&models.Transaction{
		Date:            time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromFloat(10.00),
		TransactionType: "transfer",
		Description:     "bad type",
	})
	s.ErrorIs(err, models.ErrInvalidTransactionType)
}

func (s *TransactionServiceSuite) TestRecordTransaction_UnknownCategory() {
	missing := uuid.New()
	_, err := s.service.RecordTransaction(&models.Transaction{
		Date:            time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromFloat(10.00),
		TransactionType: models.TransactionTypeExpense,
		CategoryID:      &missing,
		Description:     "orphan",
	})
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *TransactionServiceSuite) TestDeleteTransaction() {
	txn, err := s.service.RecordTransaction(&models.Transaction{
		Date:            time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromFloat(100.00),
		TransactionType: models.TransactionTypeExpense,
		AccountID:       &s.account.ID,
		Description:     "refundable",
	})
	s.NoError(err)

	s.NoError(s.service.DeleteTransaction(txn.ID))

	var account models.Account
	s.NoError(s.db.DB.First(&account, "id = ?", s.account.ID).Error)
	s.Equal(decimal.NewFromFloat(1000.00).String(), account.CurrentBalance.String())

	s.ErrorIs(s.service.DeleteTransaction(txn.ID), ErrTransactionNotFound)
}

type AccountServiceSuite struct {
	suite.Suite
	db      *database.DB
	service AccountServiceInterface
}

func (s *AccountServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.service = NewAccountService(repositories.NewAccountRepository(s.db.DB))
}

func (s *AccountServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

func (s *AccountServiceSuite) TestCreateAccount() {
	account, err := s.service.CreateAccount("Checking", models.AccountTypeChecking, decimal.NewFromFloat(2500.00))
	s.NoError(err)
	s.Equal(decimal.NewFromFloat(2500.00).String(), account.CurrentBalance.String())
}

func (s *AccountServiceSuite) TestCreateAccount_EmptyName() {
	_, err := s.service.CreateAccount("", models.AccountTypeChecking, decimal.Zero)
	s.ErrorIs(err, models.ErrAccountNameEmpty)
}

func (s *AccountServiceSuite) TestDeleteAccount_NotFound() {
	s.ErrorIs(s.service.DeleteAccount(uuid.New()), ErrAccountNotFound)
}

type CategoryServiceSuite struct {
	suite.Suite
	db      *database.DB
	service CategoryServiceInterface
}

func (s *CategoryServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.service = NewCategoryService(
		repositories.NewCategoryRepository(s.db.DB),
		repositories.NewCategoryGroupRepository(s.db.DB),
	)
}

func (s *CategoryServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceSuite))
}

func (s *CategoryServiceSuite) TestCreateCategory_DuplicateName() {
	_, err := s.service.CreateCategory(&models.Category{Name: "Rent", CategoryType: models.CategoryTypeFixed})
	s.NoError(err)

	_, err = s.service.CreateCategory(&models.Category{Name: "Rent", CategoryType: models.CategoryTypeVariable})
	s.ErrorIs(err, ErrCategoryNameTaken)
}

func (s *CategoryServiceSuite) TestCreateCategory_UnknownGroup() {
	missing := uuid.New()
	_, err := s.service.CreateCategory(&models.Category{
		Name:         "Groceries",
		CategoryType: models.CategoryTypeVariable,
		GroupID:      &missing,
	})
	s.ErrorIs(err, ErrGroupNotFound)
}

func (s *CategoryServiceSuite) TestDeleteGroup_DetachesCategories() {
	group, err := s.service.CreateGroup(&models.CategoryGroup{Name: "Everyday"})
	s.NoError(err)

	category, err := s.service.CreateCategory(&models.Category{
		Name:         "Groceries",
		CategoryType: models.CategoryTypeVariable,
		GroupID:      &group.ID,
	})
	s.NoError(err)

	s.NoError(s.service.DeleteGroup(group.ID))

	kept, err := s.service.GetCategoryByID(category.ID)
	s.NoError(err)
	s.Nil(kept.GroupID)
}
