package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lanternworks/nightmarket/internal/config"
	"github.com/lanternworks/nightmarket/internal/database"
	"github.com/lanternworks/nightmarket/internal/database/postgres"
	"github.com/lanternworks/nightmarket/internal/seed"
)

// Setup prepares a database for the server: creates it when missing,
// applies migrations in order, and syncs the market seed file. Run it
// from the repository root.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	if err := ensureDatabase(ctx, cfg); err != nil {
		log.Fatalf("Failed to ensure database: %v", err)
	}

	pool, err := database.NewPool(
		cfg.Database.ConnString(),
		cfg.Database.MaxConns,
		cfg.Database.MaxConnIdleTime,
		cfg.Database.MaxConnLifetime,
	)
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", cfg.Database.Name, err)
	}
	defer pool.Close()

	fmt.Println("Running migrations...")
	if err := applyMigrations(ctx, pool, "migrations"); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	fmt.Println("Migrations completed.")

	if err := syncSeed(ctx, pool); err != nil {
		log.Fatalf("Failed to sync seed data: %v", err)
	}

	fmt.Println("Setup completed successfully.")
}

// ensureDatabase creates the configured database when it does not exist,
// connecting through the maintenance database.
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	maintenance := fmt.Sprintf("postgres://%s:%s@%s:%d/postgres?sslmode=disable",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
	)

	conn, err := pgx.Connect(ctx, maintenance)
	if err != nil {
		return fmt.Errorf("failed to connect to maintenance database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.Database.Name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.Database.Name)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.Database.Name)
	// Identifiers cannot be parameterized
	quoted := pgx.Identifier{cfg.Database.Name}.Sanitize()
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+quoted); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	fmt.Println("Database created.")
	return nil
}

// applyMigrations executes every .sql file in the migrations directory in
// name order, stripping goose markers and Down sections. A migration whose
// objects already exist is skipped, so setup can rerun against a database
// that was migrated before.
func applyMigrations(ctx context.Context, pool *pgxpool.Pool, migrationsDir string) error {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to read migrations dir: %w", err)
	}

	var migrationFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			migrationFiles = append(migrationFiles, filepath.Join(migrationsDir, entry.Name()))
		}
	}
	sort.Strings(migrationFiles)

	for _, file := range migrationFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		contentStr := string(content)
		contentStr = strings.Replace(contentStr, "-- +goose Up", "", 1)
		if downIdx := strings.Index(contentStr, "-- +goose Down"); downIdx != -1 {
			contentStr = contentStr[:downIdx]
		}
		contentStr = strings.TrimSpace(contentStr)

		fmt.Printf("Applying %s...\n", filepath.Base(file))
		if _, err := pool.Exec(ctx, contentStr); err != nil {
			if isAlreadyApplied(err) {
				fmt.Printf("Skipping %s (already applied).\n", filepath.Base(file))
				continue
			}
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}

// isAlreadyApplied reports whether a migration failed only because its
// objects already exist
func isAlreadyApplied(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// 42P07 duplicate_table, 42710 duplicate_object
	return pgErr.Code == "42P07" || pgErr.Code == "42710"
}

// syncSeed validates and loads the market seed file. A missing file is
// fine; migrations already carry the baseline rows.
func syncSeed(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := os.Stat(seed.DefaultConfigPath); os.IsNotExist(err) {
		fmt.Printf("Seed file %s not found, skipping seed sync.\n", seed.DefaultConfigPath)
		return nil
	}

	loader := seed.NewLoader()
	seedConfig, err := loader.Load(seed.DefaultConfigPath)
	if err != nil {
		return err
	}
	if err := loader.Validate(seedConfig); err != nil {
		return err
	}

	catalogRepo := postgres.NewCatalogRepository(pool)
	result, err := loader.SyncToDatabase(ctx, seedConfig, seed.Stores{
		Catalog:   catalogRepo,
		Quotes:    postgres.NewMarketRepository(pool),
		Merchants: postgres.NewMerchantRepository(pool),
		Sync:      catalogRepo,
	}, seed.DefaultConfigPath)
	if err != nil {
		return err
	}

	fmt.Printf("Seed sync: %d inserted, %d updated, %d skipped.\n", result.Inserted, result.Updated, result.Skipped)
	return nil
}
