// Package dbpool opens the SQLite database that backs the build history.
//
// All code that needs a *sql.DB should go through DBManager instead of calling
// sql.Open directly. This gives us a single place to:
//   - add retry/backoff for file-lock contention
//   - enforce connection pool settings
package dbpool

import (
	"context"
	"database/sql"
	"fmt"
)

// Engine identifies the database engine to use.
type Engine string

const (
	EngineSQLite Engine = "sqlite"
)

// AccessMode controls whether the connection is read-only or read-write.
type AccessMode int

const (
	ModeReadWrite AccessMode = iota
	ModeReadOnly
)

// OpenOptions configures how a database connection is opened.
type OpenOptions struct {
	// Engine to use. Defaults to the manager's engine if empty.
	Engine Engine
	// Path is the database file path.
	Path string
	// Mode controls read-only vs read-write access.
	Mode AccessMode
	// MaxRetries overrides the default retry count (0 = use default).
	MaxRetries int
	// RetryBaseMs overrides the base retry interval in milliseconds (0 = use default).
	RetryBaseMs int
}

// Logger is a simple logging function signature.
type Logger func(string)

// DBManager is the central connection manager.
type DBManager struct {
	logger Logger
	engine Engine
}

// New creates a new DBManager with the given logger.
func New(logger Logger) *DBManager {
	if logger == nil {
		logger = func(string) {}
	}
	return &DBManager{
		engine: EngineSQLite,
		logger: logger,
	}
}

// DefaultEngine returns the manager's default engine.
func (m *DBManager) DefaultEngine() Engine {
	return m.engine
}

// Open opens a database connection with the given options, retrying while
// the file is locked or the context allows.
func (m *DBManager) Open(ctx context.Context, opts OpenOptions) (*sql.DB, error) {
	eng := opts.Engine
	if eng == "" {
		eng = m.engine
	}

	switch eng {
	case EngineSQLite:
		return m.openSQLite(ctx, opts)
	default:
		return nil, fmt.Errorf("dbpool: unsupported engine %q", eng)
	}
}

// OpenReadOnly is a convenience wrapper for read-only access.
func (m *DBManager) OpenReadOnly(ctx context.Context, path string) (*sql.DB, error) {
	return m.Open(ctx, OpenOptions{Path: path, Mode: ModeReadOnly})
}

// OpenWritable is a convenience wrapper for read-write access.
func (m *DBManager) OpenWritable(ctx context.Context, path string) (*sql.DB, error) {
	return m.Open(ctx, OpenOptions{Path: path, Mode: ModeReadWrite})
}

// configurePool makes Close release the file lock immediately.
func configurePool(db *sql.DB) {
	db.SetMaxIdleConns(0)
	db.SetMaxOpenConns(1)
}

// retryParams returns (maxRetries, baseMs) from opts or defaults.
func retryParams(opts OpenOptions) (int, int) {
	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 8
	}
	baseMs := opts.RetryBaseMs
	if baseMs <= 0 {
		baseMs = 400
	}
	return maxRetries, baseMs
}
