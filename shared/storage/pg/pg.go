// Package pg provides core PostgreSQL database primitives for storage layers.
//
// Core Components:
//   - Querier: Interface for transaction-agnostic database operations
//   - WithTx: Helper for managing database transactions
//   - Connect: Configurable database connection establishment
package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/itchan-dev/forum/shared/config"
	_ "github.com/lib/pq" // Registers the PostgreSQL driver
)

// =========================================================================
// Core Interfaces
// =========================================================================

// Querier is an interface that abstracts database operations.
// It is satisfied by both *sql.DB (for single operations on the connection
// pool) and *sql.Tx (for operations within a transaction), so the same query
// code runs in both contexts.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// =========================================================================
// Connection Management
// =========================================================================

// ConnectionConfig holds database connection pool settings.
type ConnectionConfig struct {
	MaxOpenConns    int           // Maximum number of open connections to the database
	MaxIdleConns    int           // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration // Maximum amount of time a connection may be reused
	ConnMaxIdleTime time.Duration // Maximum amount of time a connection may be idle
}

// DefaultConnectionConfig returns sensible defaults for a backend API server.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 1 * time.Minute,
	}
}

// ConnectionConfigFrom applies the pool sizes set in config over the defaults.
func ConnectionConfigFrom(cfg *config.Config) ConnectionConfig {
	connCfg := DefaultConnectionConfig()
	if cfg.Public.Pg.MaxOpenConns > 0 {
		connCfg.MaxOpenConns = cfg.Public.Pg.MaxOpenConns
	}
	if cfg.Public.Pg.MaxIdleConns > 0 {
		connCfg.MaxIdleConns = cfg.Public.Pg.MaxIdleConns
	}
	return connCfg
}

// DSN builds the lib/pq connection string from config.
func DSN(cfg *config.Config) string {
	sslMode := cfg.Public.Pg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Public.Pg.Host, cfg.Public.Pg.Port,
		cfg.Public.Pg.User, cfg.PgPassword(),
		cfg.Public.Pg.Dbname, sslMode)
}

// Connect establishes and verifies a connection to the PostgreSQL database.
// It configures the connection pool according to the provided settings and
// verifies connectivity with a ping operation.
//
// Example:
//
//	cfg := config.MustLoad("config")
//	db, err := pg.Connect(ctx, pg.DSN(cfg), pg.ConnectionConfigFrom(cfg))
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
func Connect(ctx context.Context, dsn string, connCfg ConnectionConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(connCfg.MaxOpenConns)
	db.SetMaxIdleConns(connCfg.MaxIdleConns)
	db.SetConnMaxLifetime(connCfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(connCfg.ConnMaxIdleTime)

	// Verify connection
	if err = db.PingContext(ctx); err != nil {
		db.Close() // Close the connection if ping fails
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// =========================================================================
// Transaction Helpers
// =========================================================================

// WithTx executes a function within a database transaction.
// If the provided function returns an error, the transaction is rolled back.
// Otherwise, the transaction is committed. The deferred Rollback() is a no-op
// if the transaction has already been committed.
//
// Usage:
//
//	err := pg.WithTx(ctx, db, func(tx *sql.Tx) error {
//	    if _, err := tx.ExecContext(ctx, query); err != nil {
//	        return err // Triggers rollback
//	    }
//	    return nil // Triggers commit
//	})
func WithTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // No-op if transaction is already committed

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
