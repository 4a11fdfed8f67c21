package database

import (
	"fmt"
	"log/slog"
	"time"

	"budgetd/internal/config"
	"budgetd/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Account{},
		&models.CategoryGroup{},
		&models.Category{},
		&models.Transaction{},
		&models.BudgetEntry{},
		&models.MonthlyBudget{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		// Account indexes
		"CREATE INDEX IF NOT EXISTS idx_accounts_account_type ON accounts(account_type)",
		// Category indexes
		"CREATE INDEX IF NOT EXISTS idx_categories_group_id ON categories(group_id)",
		"CREATE INDEX IF NOT EXISTS idx_categories_category_type ON categories(category_type)",
		"CREATE INDEX IF NOT EXISTS idx_categories_name_lower ON categories(LOWER(name))",
		// Transaction indexes
		"CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_category_id ON transactions(category_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_account_id ON transactions(account_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(transaction_type)",
		// Budget entry indexes
		"CREATE INDEX IF NOT EXISTS idx_budget_entries_month ON budget_entries(month)",
		"CREATE INDEX IF NOT EXISTS idx_budget_entries_category_id ON budget_entries(category_id)",
		// Monthly budget indexes
		"CREATE INDEX IF NOT EXISTS idx_monthly_budgets_month ON monthly_budgets(month)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("Failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Get the underlying sql.DB for migration runner
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		slog.Warn("Migration runner failed, falling back to AutoMigrate", "error", err)

		// Fallback to GORM AutoMigrate
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("Failed to create some indexes", "error", err)
	}

	slog.Info("Database initialized")

	return db.DB, nil
}
