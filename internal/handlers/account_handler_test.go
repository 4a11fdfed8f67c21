package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"budgetd/internal/database"
	"budgetd/internal/models"
	"budgetd/internal/repositories"
	"budgetd/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	db      *database.DB
	handler *AccountHandler
}

func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (s *AccountHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.db = database.SetupTestDB(s.T())

	accountRepo := repositories.NewAccountRepository(s.db.DB)
	s.handler = NewAccountHandler(services.NewAccountService(accountRepo))
}

func (s *AccountHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AccountHandlerTestSuite) newJSONContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *AccountHandlerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *AccountHandlerTestSuite) TestCreateAccount() {
	c, rec := s.newJSONContext(http.MethodPost,
		`{"name":"Checking","account_type":"checking","starting_balance":"2500.00"}`)

	s.Require().NoError(s.handler.CreateAccount(c))
	s.Equal(http.StatusCreated, rec.Code)

	var account models.Account
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &account))
	s.Equal("Checking", account.Name)
	s.True(account.CurrentBalance.Equal(decimal.RequireFromString("2500.00")))
}

func (s *AccountHandlerTestSuite) TestCreateAccount_MissingName() {
	c, rec := s.newJSONContext(http.MethodPost, `{"account_type":"checking"}`)

	s.Require().NoError(s.handler.CreateAccount(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.errorCode(rec))
}

func (s *AccountHandlerTestSuite) TestCreateAccount_BadBalance() {
	c, rec := s.newJSONContext(http.MethodPost,
		`{"name":"Checking","starting_balance":"lots"}`)

	s.Require().NoError(s.handler.CreateAccount(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AccountHandlerTestSuite) TestListAccounts_TotalBalance() {
	database.CreateTestAccount(s.T(), s.db, "Checking", decimal.NewFromInt(1000))
	database.CreateTestAccount(s.T(), s.db, "Savings", decimal.NewFromInt(1850))

	c, rec := s.newJSONContext(http.MethodGet, "")
	s.Require().NoError(s.handler.ListAccounts(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Accounts     []models.Account `json:"accounts"`
		TotalBalance decimal.Decimal  `json:"total_balance"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Accounts, 2)
	s.True(resp.TotalBalance.Equal(decimal.NewFromInt(2850)))
}

func (s *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	c, rec := s.newJSONContext(http.MethodGet, "")
	c.SetParamNames("accountId")
	c.SetParamValues("91f64d0c-3f3b-46a2-ae5c-29e934fb6427")

	s.Require().NoError(s.handler.GetAccount(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("ACCOUNT_001", s.errorCode(rec))
}

func (s *AccountHandlerTestSuite) TestUpdateAccount() {
	account := database.CreateTestAccount(s.T(), s.db, "Checking", decimal.NewFromInt(100))

	c, rec := s.newJSONContext(http.MethodPut, `{"name":"Joint Checking","account_type":"checking"}`)
	c.SetParamNames("accountId")
	c.SetParamValues(account.ID.String())

	s.Require().NoError(s.handler.UpdateAccount(c))
	s.Equal(http.StatusOK, rec.Code)

	var updated models.Account
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Equal("Joint Checking", updated.Name)
	s.True(updated.CurrentBalance.Equal(decimal.NewFromInt(100)))
}

func (s *AccountHandlerTestSuite) TestDeleteAccount() {
	account := database.CreateTestAccount(s.T(), s.db, "Checking", decimal.NewFromInt(100))

	c, rec := s.newJSONContext(http.MethodDelete, "")
	c.SetParamNames("accountId")
	c.SetParamValues(account.ID.String())

	s.Require().NoError(s.handler.DeleteAccount(c))
	s.Equal(http.StatusOK, rec.Code)

	getC, getRec := s.newJSONContext(http.MethodGet, "")
	getC.SetParamNames("accountId")
	getC.SetParamValues(account.ID.String())
	s.Require().NoError(s.handler.GetAccount(getC))
	s.Equal(http.StatusNotFound, getRec.Code)
}

func (s *AccountHandlerTestSuite) TestDeleteAccount_InvalidID() {
	c, rec := s.newJSONContext(http.MethodDelete, "")
	c.SetParamNames("accountId")
	c.SetParamValues("not-a-uuid")

	s.Require().NoError(s.handler.DeleteAccount(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_003", s.errorCode(rec))
}
