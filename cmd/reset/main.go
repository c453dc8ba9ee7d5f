package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/lanternworks/nightmarket/internal/config"
)

// Reset drops and recreates the configured database. Destructive and
// development-only: every player, price and trade record is gone after
// this runs. Follow up with cmd/setup to migrate and reseed.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	maintenance := fmt.Sprintf("postgres://%s:%s@%s:%d/postgres?sslmode=disable",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
	)

	conn, err := pgx.Connect(ctx, maintenance)
	if err != nil {
		log.Fatalf("Failed to connect to maintenance database: %v", err)
	}
	defer conn.Close(ctx)

	dbName := cfg.Database.Name

	// Open sessions hold the drop; kick them first.
	log.Printf("Terminating existing connections to database %s...", dbName)
	_, err = conn.Exec(ctx, `
		SELECT pg_terminate_backend(pg_stat_activity.pid)
		FROM pg_stat_activity
		WHERE pg_stat_activity.datname = $1
		AND pid <> pg_backend_pid()
	`, dbName)
	if err != nil {
		log.Printf("Warning: Failed to terminate connections: %v", err)
	}

	// Identifiers cannot be parameterized
	quoted := pgx.Identifier{dbName}.Sanitize()

	log.Printf("Dropping database %s if it exists...", dbName)
	if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+quoted); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}
	log.Printf("Database %s dropped.", dbName)

	log.Printf("Creating database %s...", dbName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+quoted); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	log.Printf("Database %s created.", dbName)

	log.Println("Database reset complete!")
	log.Println("Next step: run cmd/setup to apply migrations and seed data")
}
