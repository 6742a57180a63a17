package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/cashbook_app/migrations"
	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// RunPostgresMigrations applies every pending up migration. It opens its own
// database/sql connection through the pgx stdlib driver so the application
// pool is untouched. It reports whether anything was applied.
func RunPostgresMigrations(databaseURL string) (bool, error) {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return false, fmt.Errorf("open migration database: %w", err)
	}
	if err := migrationDB.Ping(); err != nil {
		migrationDB.Close()
		return false, fmt.Errorf("ping migration database: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		migrationDB.Close()
		return false, fmt.Errorf("create postgres driver: %w", err)
	}
	return runMigrations(migrations.PostgresDir, "postgres", driver)
}

// RunSQLiteMigrations applies every pending up migration to the file at path.
func RunSQLiteMigrations(path string) (bool, error) {
	migrationDB, err := sql.Open("sqlite", SQLiteDSN(path))
	if err != nil {
		return false, fmt.Errorf("open migration database: %w", err)
	}

	driver, err := sqlite.WithInstance(migrationDB, &sqlite.Config{})
	if err != nil {
		migrationDB.Close()
		return false, fmt.Errorf("create sqlite driver: %w", err)
	}
	return runMigrations(migrations.SQLiteDir, "sqlite", driver)
}

func runMigrations(dir, databaseName string, driver migratedb.Driver) (bool, error) {
	source, err := iofs.New(migrations.FS, dir)
	if err != nil {
		driver.Close()
		return false, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, databaseName, driver)
	if err != nil {
		driver.Close()
		return false, fmt.Errorf("create migrate instance: %w", err)
	}

	upErr := m.Up()

	// Check for dirty migrations after running Up.
	sourceErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return false, fmt.Errorf("apply migrations: %w", upErr)
	}
	if sourceErr != nil {
		return false, fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return false, fmt.Errorf("migration database error: %w", dbErr)
	}
	return upErr == nil, nil
}
