// Package db opens the Postgres connection and applies pending goose
// migrations on startup.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDB opens the database, verifies the connection, and migrates the schema
// up to the latest version.
func NewDB(dsn, migrationsDir string) (*sql.DB, error) {
	database, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db error: %w", err)
	}
	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("ping db error: %w", err)
	}

	if err := goose.Up(database, migrationsDir); err != nil {
		return nil, fmt.Errorf("goose up error: %w", err)
	}

	return database, nil
}

// NewGormDB wraps an open connection for the ORM layer.
func NewGormDB(database *sql.DB) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: database}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open gorm error: %w", err)
	}
	return gormDB, nil
}
