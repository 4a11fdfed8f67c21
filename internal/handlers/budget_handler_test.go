package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"budgetd/internal/database"
	"budgetd/internal/dto"
	"budgetd/internal/models"
	"budgetd/internal/repositories"
	"budgetd/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	db      *database.DB
	handler *BudgetHandler
}

func TestBudgetHandlerSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}

func (s *BudgetHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.db = database.SetupTestDB(s.T())

	accountRepo := repositories.NewAccountRepository(s.db.DB)
	categoryRepo := repositories.NewCategoryRepository(s.db.DB)
	txnRepo := repositories.NewTransactionRepository(s.db.DB)
	entryRepo := repositories.NewBudgetEntryRepository(s.db.DB)
	monthlyBudgetRepo := repositories.NewMonthlyBudgetRepository(s.db.DB)

	// Pin the clock so carry-forward computation sees 2024-08 as current.
	clock := func() time.Time {
		return time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC)
	}

	rollover := services.NewRolloverService(entryRepo, categoryRepo, txnRepo, nil, clock)
	summary := services.NewSummaryService(accountRepo, categoryRepo, txnRepo, entryRepo, monthlyBudgetRepo, rollover, nil)
	monthlyBudget := services.NewMonthlyBudgetService(monthlyBudgetRepo)

	s.handler = NewBudgetHandler(rollover, summary, monthlyBudget, "USD")
}

func (s *BudgetHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *BudgetHandlerTestSuite) newContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *BudgetHandlerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *BudgetHandlerTestSuite) TestSetBudgetedAmount() {
	category := database.CreateTestCategory(s.T(), s.db, "Groceries", "variable")

	c, rec := s.newContext(http.MethodPut, `{"amount":"500.00"}`)
	c.SetParamNames("month", "categoryId")
	c.SetParamValues("2024-08", category.ID.String())

	s.Require().NoError(s.handler.SetBudgetedAmount(c))
	s.Equal(http.StatusOK, rec.Code)

	var entry models.BudgetEntry
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &entry))
	s.True(entry.BudgetedAmount.Equal(decimal.NewFromInt(500)))
	s.Equal(category.ID, entry.CategoryID)
}

func (s *BudgetHandlerTestSuite) TestSetBudgetedAmount_Negative() {
	category := database.CreateTestCategory(s.T(), s.db, "Groceries", "variable")

	c, rec := s.newContext(http.MethodPut, `{"amount":"-10.00"}`)
	c.SetParamNames("month", "categoryId")
	c.SetParamValues("2024-08", category.ID.String())

	s.Require().NoError(s.handler.SetBudgetedAmount(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("BUDGET_002", s.errorCode(rec))
}

func (s *BudgetHandlerTestSuite) TestSetBudgetedAmount_UnknownCategory() {
	c, rec := s.newContext(http.MethodPut, `{"amount":"100.00"}`)
	c.SetParamNames("month", "categoryId")
	c.SetParamValues("2024-08", "6a0f0cb6-3a2f-4f3f-9c69-746a8f4c34c7")

	s.Require().NoError(s.handler.SetBudgetedAmount(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("CATEGORY_001", s.errorCode(rec))
}

func (s *BudgetHandlerTestSuite) TestSetBudgetedAmount_InvalidMonth() {
	c, rec := s.newContext(http.MethodPut, `{"amount":"100.00"}`)
	c.SetParamNames("month", "categoryId")
	c.SetParamValues("August", "6a0f0cb6-3a2f-4f3f-9c69-746a8f4c34c7")

	s.Require().NoError(s.handler.SetBudgetedAmount(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_006", s.errorCode(rec))
}

func (s *BudgetHandlerTestSuite) TestGetCategoryHistory() {
	category := database.CreateTestCategory(s.T(), s.db, "Groceries", "variable")

	for _, month := range []string{"2024-08", "2024-07"} {
		c, _ := s.newContext(http.MethodPut, `{"amount":"300.00"}`)
		c.SetParamNames("month", "categoryId")
		c.SetParamValues(month, category.ID.String())
		s.Require().NoError(s.handler.SetBudgetedAmount(c))
	}

	c, rec := s.newContext(http.MethodGet, "")
	c.SetParamNames("categoryId")
	c.SetParamValues(category.ID.String())

	s.Require().NoError(s.handler.GetCategoryHistory(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.BudgetEntryListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(category.ID, resp.CategoryID)
	s.Require().Len(resp.Entries, 2)
	// Oldest month first
	s.True(resp.Entries[0].Month.Before(resp.Entries[1].Month))
}

func (s *BudgetHandlerTestSuite) TestGetCategoryHistory_UnknownCategory() {
	c, rec := s.newContext(http.MethodGet, "")
	c.SetParamNames("categoryId")
	c.SetParamValues("6a0f0cb6-3a2f-4f3f-9c69-746a8f4c34c7")

	s.Require().NoError(s.handler.GetCategoryHistory(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("CATEGORY_001", s.errorCode(rec))
}

func (s *BudgetHandlerTestSuite) TestGetCategoryEntry_MaterializesCarry() {
	category := database.CreateTestCategory(s.T(), s.db, "Groceries", "variable")

	// July: budgeted 1000, spent 800. August should open with 200 carried.
	july := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	database.CreateTestTransaction(s.T(), s.db, category, july.AddDate(0, 0, 9), decimal.NewFromInt(800), models.TransactionTypeExpense)

	setC, _ := s.newContext(http.MethodPut, `{"amount":"1000.00"}`)
	setC.SetParamNames("month", "categoryId")
	setC.SetParamValues("2024-07", category.ID.String())
	s.Require().NoError(s.handler.SetBudgetedAmount(setC))

	c, rec := s.newContext(http.MethodGet, "")
	c.SetParamNames("month", "categoryId")
	c.SetParamValues("2024-08", category.ID.String())

	s.Require().NoError(s.handler.GetCategoryEntry(c))
	s.Equal(http.StatusOK, rec.Code)

	var entry models.BudgetEntry
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &entry))
	s.True(entry.AvailableFromPrevious.Equal(decimal.NewFromInt(200)),
		"expected carry 200, got %s", entry.AvailableFromPrevious)
	s.True(entry.BudgetedAmount.IsZero())
}

func (s *BudgetHandlerTestSuite) TestGetReadyToAssign() {
	database.CreateTestAccount(s.T(), s.db, "Checking", decimal.NewFromInt(1000))

	c, rec := s.newContext(http.MethodGet, "")
	c.SetParamNames("month")
	c.SetParamValues("2024-08")

	s.Require().NoError(s.handler.GetReadyToAssign(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Month         string          `json:"month"`
		ReadyToAssign decimal.Decimal `json:"ready_to_assign"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("2024-08", resp.Month)
	s.True(resp.ReadyToAssign.Equal(decimal.NewFromInt(1000)))
}

func (s *BudgetHandlerTestSuite) TestGetMonthSummary() {
	database.CreateTestAccount(s.T(), s.db, "Checking", decimal.NewFromInt(2000))
	category := database.CreateTestCategory(s.T(), s.db, "Groceries", "variable")
	august := time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)
	database.CreateTestTransaction(s.T(), s.db, category, august, decimal.NewFromInt(150), models.TransactionTypeExpense)

	c, rec := s.newContext(http.MethodGet, "")
	c.SetParamNames("month")
	c.SetParamValues("2024-08")

	s.Require().NoError(s.handler.GetMonthSummary(c))
	s.Equal(http.StatusOK, rec.Code)

	var summary dto.MonthSummaryResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &summary))
	s.True(summary.AccountTotal.Equal(decimal.NewFromInt(2000)))
	s.True(summary.TotalSpent.Equal(decimal.NewFromInt(150)))
	s.Len(summary.Categories, 1)
	s.Equal("USD", summary.CurrencyCode)
}

func (s *BudgetHandlerTestSuite) TestGetMonthSummary_InvalidMonth() {
	c, rec := s.newContext(http.MethodGet, "")
	c.SetParamNames("month")
	c.SetParamValues("2024-13")

	s.Require().NoError(s.handler.GetMonthSummary(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_006", s.errorCode(rec))
}

func (s *BudgetHandlerTestSuite) TestGetComparisons() {
	category := database.CreateTestCategory(s.T(), s.db, "Groceries", "variable")
	august := time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC)
	database.CreateTestTransaction(s.T(), s.db, category, august, decimal.NewFromInt(75), models.TransactionTypeExpense)

	c, rec := s.newContext(http.MethodGet, "")
	c.SetParamNames("month")
	c.SetParamValues("2024-08")

	s.Require().NoError(s.handler.GetComparisons(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Comparisons []models.CategoryComparison `json:"comparisons"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Comparisons, 1)
	s.True(resp.Comparisons[0].Actual.Equal(decimal.NewFromInt(75)))
}

func (s *BudgetHandlerTestSuite) TestUpsertAndGetMonthlyBudget() {
	c, rec := s.newContext(http.MethodPut, `{"starting_balance":"900.00","notes":"August"}`)
	c.SetParamNames("month")
	c.SetParamValues("2024-08")

	s.Require().NoError(s.handler.UpsertMonthlyBudget(c))
	s.Equal(http.StatusOK, rec.Code)

	getC, getRec := s.newContext(http.MethodGet, "")
	getC.SetParamNames("month")
	getC.SetParamValues("2024-08")

	s.Require().NoError(s.handler.GetMonthlyBudget(getC))
	s.Equal(http.StatusOK, getRec.Code)

	var record models.MonthlyBudget
	s.Require().NoError(json.Unmarshal(getRec.Body.Bytes(), &record))
	s.True(record.StartingBalance.Equal(decimal.NewFromInt(900)))
	s.Equal("August", record.Notes)
}

func (s *BudgetHandlerTestSuite) TestGetMonthlyBudget_NotFound() {
	c, rec := s.newContext(http.MethodGet, "")
	c.SetParamNames("month")
	c.SetParamValues("2024-01")

	s.Require().NoError(s.handler.GetMonthlyBudget(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("BUDGET_003", s.errorCode(rec))
}
