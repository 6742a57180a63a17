// Package sqlite stores tenants and cash entries in a single SQLite file
// through the pure Go modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// timestampLayout is fixed width so that text order matches time order.
const timestampLayout = "2006-01-02 15:04:05.000000000"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sql.DB
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (*sql.Tx, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(tx *sql.Tx) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// Ping checks that the database file is reachable.
func (r *BaseRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// sqliteErrorCode returns the extended result code of err, or 0.
func sqliteErrorCode(err error) int {
	var sqlErr *sqlitedriver.Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code()
	}
	return 0
}

// constraintViolation matches the extended result code, falling back to the
// message when the connection reports primary codes only.
func constraintViolation(err error, extended int, text string) bool {
	code := sqliteErrorCode(err)
	if code == extended {
		return true
	}
	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(err.Error(), text)
}

func isUniqueViolation(err error) bool {
	return constraintViolation(err, sqlite3.SQLITE_CONSTRAINT_UNIQUE, "UNIQUE constraint failed") ||
		constraintViolation(err, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return constraintViolation(err, sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, "FOREIGN KEY constraint failed")
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(timestampLayout, s, time.UTC)
}
