package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/osse101/Stashkeeper_Go/internal/bootstrap"
	"github.com/osse101/Stashkeeper_Go/internal/database"
	"github.com/osse101/Stashkeeper_Go/internal/database/postgres"
)

// seed drops and recreates the database, applies migrations and loads the fixtures.
func main() {
	seedFile := flag.String("file", os.Getenv("SEED_FILE"), "seed YAML (default: embedded fixtures)")
	keep := flag.Bool("keep", false, "keep the existing database and only seed it when empty")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbName := getEnv("DB_NAME", "stashkeeper")
	ctx := context.Background()

	if !*keep {
		recreateDatabase(ctx, dbName)
	}

	pool, err := database.NewPool(connString(dbName), 4, 30*time.Minute, time.Hour)
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", dbName, err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	seeded, err := bootstrap.SeedIfEmpty(ctx, postgres.NewStashStore(pool), *seedFile)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}
	if !seeded {
		log.Println("Database already holds data, nothing seeded")
		return
	}
	log.Println("✅ Database seeded")
}

func recreateDatabase(ctx context.Context, dbName string) {
	// Connect to the maintenance database to manage the target one
	serverPool, err := database.NewPool(connString("postgres"), 2, 30*time.Minute, time.Hour)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}
	defer serverPool.Close()

	log.Printf("Terminating existing connections to database %s...\n", dbName)
	_, err = serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pg_stat_activity.pid)
		FROM pg_stat_activity
		WHERE pg_stat_activity.datname = $1
		AND pid <> pg_backend_pid()
	`, dbName)
	if err != nil {
		log.Printf("Warning: Failed to terminate connections: %v\n", err)
	}

	ident := pgx.Identifier{dbName}.Sanitize()
	if _, err := serverPool.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}
	if _, err := serverPool.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	log.Printf("Database %s recreated.\n", dbName)
}

func connString(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		dbName,
		getEnv("DB_SSLMODE", "disable"),
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
