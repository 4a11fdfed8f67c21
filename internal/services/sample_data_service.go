package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"budgetd/internal/models"
	"budgetd/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const seedMonths = 3

type sampleCategory struct {
	name         string
	categoryType string
	group        string
	dueDay       int
	dueLastDay   bool
	minSpend     float64
	maxSpend     float64
	monthlyCount int
}

type sampleDataService struct {
	accountRepo  repositories.AccountRepositoryInterface
	groupRepo    repositories.CategoryGroupRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	txnRepo      repositories.TransactionRepositoryInterface
	faker        *gofakeit.Faker
	now          func() time.Time
}

// NewSampleDataService builds a seeder for development databases. A fixed
// faker seed keeps repeated runs recognizable while still varied.
func NewSampleDataService(
	accountRepo repositories.AccountRepositoryInterface,
	groupRepo repositories.CategoryGroupRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	txnRepo repositories.TransactionRepositoryInterface,
	now func() time.Time,
) SampleDataServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &sampleDataService{
		accountRepo:  accountRepo,
		groupRepo:    groupRepo,
		categoryRepo: categoryRepo,
		txnRepo:      txnRepo,
		faker:        gofakeit.New(0),
		now:          now,
	}
}

func sampleCategories() []sampleCategory {
	return []sampleCategory{
		{name: "Rent", categoryType: models.CategoryTypeFixed, group: "Bills", dueDay: 1, minSpend: 1200, maxSpend: 1200, monthlyCount: 1},
		{name: "Electricity", categoryType: models.CategoryTypeFixed, group: "Bills", dueDay: 15, minSpend: 60, maxSpend: 140, monthlyCount: 1},
		{name: "Internet", categoryType: models.CategoryTypeFixed, group: "Bills", dueLastDay: true, minSpend: 55, maxSpend: 55, monthlyCount: 1},
		{name: "Groceries", categoryType: models.CategoryTypeVariable, group: "Everyday", minSpend: 40, maxSpend: 160, monthlyCount: 5},
		{name: "Dining Out", categoryType: models.CategoryTypeVariable, group: "Everyday", minSpend: 12, maxSpend: 80, monthlyCount: 4},
		{name: "Transport", categoryType: models.CategoryTypeVariable, group: "Everyday", minSpend: 20, maxSpend: 70, monthlyCount: 3},
		{name: "Car Insurance", categoryType: models.CategoryTypeQuarterly, group: "Bills", dueDay: 20, minSpend: 0, maxSpend: 0, monthlyCount: 0},
		{name: "Salary", categoryType: models.CategoryTypeIncome, group: "", minSpend: 0, maxSpend: 0, monthlyCount: 0},
	}
}

// Seed populates an empty database with a household's worth of groups,
// categories, accounts and a few months of transactions. Skips entirely if
// any account already exists.
func (s *sampleDataService) Seed() error {
	existing, err := s.accountRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to check existing accounts: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("sample data seed skipped, database is not empty")
		return nil
	}

	checking := &models.Account{
		Name:            "Main Checking",
		AccountType:     models.AccountTypeChecking,
		StartingBalance: decimal.NewFromFloat(s.faker.Price(2000, 6000)).Round(2),
	}
	if err := s.accountRepo.Create(checking); err != nil {
		return fmt.Errorf("failed to seed checking account: %w", err)
	}

	savings := &models.Account{
		Name:            "Savings",
		AccountType:     models.AccountTypeSavings,
		StartingBalance: decimal.NewFromFloat(s.faker.Price(5000, 20000)).Round(2),
	}
	if err := s.accountRepo.Create(savings); err != nil {
		return fmt.Errorf("failed to seed savings account: %w", err)
	}

	groups := map[string]*models.CategoryGroup{}
	for i, name := range []string{"Bills", "Everyday"} {
		group := &models.CategoryGroup{Name: name, SortOrder: i}
		if err := s.groupRepo.Create(group); err != nil {
			return fmt.Errorf("failed to seed category group %q: %w", name, err)
		}
		groups[name] = group
	}

	categories := map[string]*models.Category{}
	for i, sc := range sampleCategories() {
		// Re-running the seeder against a half-seeded database reuses
		// existing categories instead of tripping the unique name index
		existing, err := s.categoryRepo.GetByName(sc.name)
		if err == nil {
			categories[sc.name] = existing
			continue
		}
		if !errors.Is(err, repositories.ErrCategoryNotFound) {
			return fmt.Errorf("failed to look up category %q: %w", sc.name, err)
		}

		category := &models.Category{
			Name:         sc.name,
			CategoryType: sc.categoryType,
			SortOrder:    i,
			DueLastDay:   sc.dueLastDay,
		}
		if sc.dueDay > 0 {
			day := sc.dueDay
			category.DueDay = &day
		}
		if group, ok := groups[sc.group]; ok {
			category.GroupID = &group.ID
		}
		if err := s.categoryRepo.Create(category); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", sc.name, err)
		}
		categories[sc.name] = category
	}

	transactionCount := 0
	month := models.MonthOf(s.now())
	for i := seedMonths - 1; i >= 0; i-- {
		target := month
		for j := 0; j < i; j++ {
			target = target.Previous()
		}
		n, err := s.seedMonth(target, checking, categories)
		if err != nil {
			return err
		}
		transactionCount += n
	}

	slog.Info("sample data seeded",
		"accounts", 2,
		"categories", len(categories),
		"transactions", transactionCount)

	return nil
}

func (s *sampleDataService) seedMonth(month models.Month, account *models.Account, categories map[string]*models.Category) (int, error) {
	count := 0

	salary := categories["Salary"]
	payday := time.Date(month.Time().Year(), month.Time().Month(), 1, 9, 0, 0, 0, time.UTC)
	paycheck := &models.Transaction{
		Date:            payday,
		Amount:          decimal.NewFromFloat(s.faker.Price(3800, 4200)).Round(2),
		TransactionType: models.TransactionTypeIncome,
		CategoryID:      &salary.ID,
		AccountID:       &account.ID,
		Description:     "Paycheck",
	}
	if err := s.txnRepo.Create(paycheck); err != nil {
		return count, fmt.Errorf("failed to seed paycheck: %w", err)
	}
	count++

	for _, sc := range sampleCategories() {
		if sc.monthlyCount == 0 {
			continue
		}
		category := categories[sc.name]
		for j := 0; j < sc.monthlyCount; j++ {
			day := s.faker.Number(1, month.Days())
			txn := &models.Transaction{
				Date:            time.Date(month.Time().Year(), month.Time().Month(), day, 12, 0, 0, 0, time.UTC),
				Amount:          decimal.NewFromFloat(s.faker.Price(sc.minSpend, sc.maxSpend)).Round(2),
				TransactionType: models.TransactionTypeExpense,
				CategoryID:      &category.ID,
				AccountID:       &account.ID,
				Description:     s.faker.Company(),
			}
			if err := s.txnRepo.Create(txn); err != nil {
				return count, fmt.Errorf("failed to seed transaction for %q: %w", sc.name, err)
			}
			count++
		}
	}

	return count, nil
}
