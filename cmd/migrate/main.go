package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"budgetd/internal/config"
	"budgetd/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// migrate applies schema migrations outside the server process, for
// deployments where AUTO_MIGRATE is disabled.
func main() {
	seed := flag.Bool("seed", false, "load seed data after migrating")
	status := flag.Bool("status", false, "print the current migration version and exit")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		slog.Error("Database not reachable", "error", err)
		os.Exit(1)
	}

	if *status {
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			slog.Error("Failed to read migration status", "error", err)
			os.Exit(1)
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
		return
	}

	if err := runner.RunMigrations(); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	if *seed {
		if err := runner.LoadSeeds(); err != nil {
			slog.Error("Seed loading failed", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Migrations complete")
}
