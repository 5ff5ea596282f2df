package pricestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"
	_ "modernc.org/sqlite"
)

// migrations are applied in order and tracked in schema_migrations.
var migrations = []struct {
	version int
	sql     string
}{
	{1, `CREATE TABLE IF NOT EXISTS last_good_prices (
		currency TEXT PRIMARY KEY,
		price REAL NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`},
}

// SQLiteStore persists the last known good price table, so fallback data
// survives process restarts.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

// OpenSQLite opens (and if needed creates) the price table at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	store := &SQLiteStore{path: path, db: db}
	if err := store.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) runMigrations() error {
	createMigrationsTable := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := s.db.Exec(createMigrationsTable); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := s.db.Query("SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		return fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, migration := range migrations {
		if applied[migration.version] {
			continue
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		if _, err := tx.Exec(migration.sql); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to execute migration %d: %w", migration.version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", migration.version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.version, err)
		}
	}

	return nil
}

// Get implements Store. Unknown currencies report 0, matching MemoryStore.
func (s *SQLiteStore) Get(ctx context.Context, currency string) (float64, error) {
	var price float64
	err := sqlscan.Get(ctx, s.db, &price,
		"SELECT price FROM last_good_prices WHERE currency = ?", currency)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || sqlscan.NotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read price for %s: %w", currency, err)
	}
	return price, nil
}

// Set implements Store.
func (s *SQLiteStore) Set(ctx context.Context, currency string, price float64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO last_good_prices (currency, price, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(currency) DO UPDATE SET price = excluded.price, updated_at = excluded.updated_at`,
		currency, price)
	if err != nil {
		return fmt.Errorf("failed to record price for %s: %w", currency, err)
	}
	return nil
}

var _ Store = (*SQLiteStore)(nil)
