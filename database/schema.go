package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yuyalush/agent-instructions-research/dbpool"
)

// ErrSchemaMismatch reports a history database missing a table, column or
// index the migrations create.
var ErrSchemaMismatch = errors.New("history schema mismatch")

const (
	runsTable = "build_runs"
	runsIndex = "idx_build_runs_started"
)

var runsColumns = []string{
	"id", "output", "slides", "elements", "tables", "bytes", "status", "error",
	"started_at", "duration_ms", "slide_elements",
}

// CheckSchema confirms the build_runs table, its columns and its index exist.
func CheckSchema(ctx context.Context, db *sql.DB) error {
	d := dbpool.NewDialect(dbpool.EngineSQLite)

	tables, err := queryNames(ctx, db, d.ListTablesQuery())
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}
	if !tables[runsTable] {
		return fmt.Errorf("%w: table %s missing", ErrSchemaMismatch, runsTable)
	}

	indexes, err := queryNames(ctx, db, d.ListIndexesQuery())
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}
	if !indexes[runsIndex] {
		return fmt.Errorf("%w: index %s missing", ErrSchemaMismatch, runsIndex)
	}

	columns, err := tableColumns(ctx, db, d.TableInfoQuery(runsTable))
	if err != nil {
		return fmt.Errorf("failed to read columns of %s: %w", runsTable, err)
	}
	for _, c := range runsColumns {
		if !columns[c] {
			return fmt.Errorf("%w: column %s.%s missing", ErrSchemaMismatch, runsTable, c)
		}
	}
	return nil
}

func queryNames(ctx context.Context, db *sql.DB, query string) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names[name] = true
	}
	return names, rows.Err()
}

// tableColumns reads PRAGMA table_info rows: cid, name, type, notnull,
// dflt_value, pk.
func tableColumns(ctx context.Context, db *sql.DB, query string) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, typ        string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		columns[name] = true
	}
	return columns, rows.Err()
}

// OpenHistory opens an existing history database in dataDir read-only.
func OpenHistory(ctx context.Context, m *dbpool.DBManager, dataDir string) (*sql.DB, error) {
	path := filepath.Join(dataDir, HistoryFile)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no build history in %s: %w", dataDir, err)
	}

	db, err := m.OpenReadOnly(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := CheckSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
