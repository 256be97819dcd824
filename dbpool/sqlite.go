package dbpool

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DSN builds a modernc.org/sqlite connection string with WAL journaling and
// a busy timeout.
func DSN(path string, mode AccessMode) string {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	if mode == ModeReadOnly {
		dsn += "&_pragma=query_only(1)"
	}
	return dsn
}

// openSQLite opens a SQLite database with retry logic. SQLITE_BUSY still
// happens on Windows when another process holds the file.
func (m *DBManager) openSQLite(ctx context.Context, opts OpenOptions) (*sql.DB, error) {
	maxRetries, baseMs := retryParams(opts)
	connStr := DSN(opts.Path, opts.Mode)

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(baseMs*i) * time.Millisecond):
			}
		}

		db, err := sql.Open("sqlite", connStr)
		if err != nil {
			lastErr = err
			m.logger(fmt.Sprintf("[dbpool] SQLite open attempt %d/%d failed: %v", i+1, maxRetries, err))
			continue
		}

		configurePool(db)

		if err := db.PingContext(ctx); err != nil {
			db.Close()
			lastErr = err
			m.logger(fmt.Sprintf("[dbpool] SQLite ping attempt %d/%d failed: %v", i+1, maxRetries, err))
			continue
		}

		return db, nil
	}

	return nil, fmt.Errorf("dbpool: failed to open SQLite %q after %d retries: %w", opts.Path, maxRetries, lastErr)
}
