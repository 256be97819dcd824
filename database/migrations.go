package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yuyalush/agent-instructions-research/dbpool"
)

// HistoryFile is the database file created inside the history directory
const HistoryFile = "deckgen.db"

// Migration represents a database migration
type Migration struct {
	Version     int
	Description string
	Up          string
	Down        string
}

// GetMigrations returns all database migrations in order
func GetMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "Create build_runs table",
			Up: `
				CREATE TABLE IF NOT EXISTS build_runs (
					id TEXT PRIMARY KEY,
					output TEXT NOT NULL,
					slides INTEGER NOT NULL,
					elements INTEGER NOT NULL,
					tables INTEGER NOT NULL,
					bytes INTEGER NOT NULL,
					status TEXT NOT NULL,
					error TEXT NOT NULL DEFAULT '',
					started_at INTEGER NOT NULL,
					duration_ms INTEGER NOT NULL
				);

				CREATE INDEX IF NOT EXISTS idx_build_runs_started ON build_runs(started_at);
			`,
			Down: `
				DROP INDEX IF EXISTS idx_build_runs_started;
				DROP TABLE IF EXISTS build_runs;
			`,
		},
		{
			Version:     2,
			Description: "Add per-slide element counts to build_runs",
			Up:          `ALTER TABLE build_runs ADD COLUMN slide_elements TEXT NOT NULL DEFAULT '[]';`,
			Down:        `ALTER TABLE build_runs DROP COLUMN slide_elements;`,
		},
	}
}

// InitDB opens the history database in dataDir through the pool manager and
// runs pending migrations
func InitDB(ctx context.Context, m *dbpool.DBManager, dataDir string) (*sql.DB, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := m.OpenWritable(ctx, filepath.Join(dataDir, HistoryFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := createMigrationsTable(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := CheckSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// createMigrationsTable creates the schema_migrations table to track applied migrations
func createMigrationsTable(ctx context.Context, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := db.ExecContext(ctx, query)
	return err
}

// AppliedVersions returns the applied migration versions in order
func AppliedVersions(ctx context.Context, db *sql.DB) ([]int, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	var versions []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan migration: %w", err)
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// runMigrations applies all pending migrations
func runMigrations(ctx context.Context, db *sql.DB) error {
	for _, migration := range GetMigrations() {
		var count int
		err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations WHERE version = ?", migration.Version).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to check migration status for version %d: %w", migration.Version, err)
		}
		if count > 0 {
			continue
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if _, err := tx.ExecContext(ctx, migration.Up); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to execute migration %d (%s): %w", migration.Version, migration.Description, err)
		}

		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version, description) VALUES (?, ?)", migration.Version, migration.Description); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// RollbackMigration rolls back a specific migration
func RollbackMigration(ctx context.Context, db *sql.DB, version int) error {
	var target *Migration
	for _, m := range GetMigrations() {
		if m.Version == version {
			target = &m
			break
		}
	}
	if target == nil {
		return fmt.Errorf("migration version %d not found", version)
	}

	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations WHERE version = ?", version).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check migration status: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("migration %d has not been applied", version)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, target.Down); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to rollback migration %d: %w", version, err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM schema_migrations WHERE version = ?", version); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to remove migration record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rollback: %w", err)
	}
	return nil
}
