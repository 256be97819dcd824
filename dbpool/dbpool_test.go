package dbpool

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWritableAndReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	m := New(nil)
	ctx := context.Background()

	db, err := m.OpenWritable(ctx, path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE t (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	ro, err := m.OpenReadOnly(ctx, path)
	require.NoError(t, err)
	defer ro.Close()

	var name string
	require.NoError(t, ro.QueryRow(NewDialect(EngineSQLite).ListTablesQuery()).Scan(&name))
	assert.Equal(t, "t", name)

	_, err = ro.Exec(`INSERT INTO t (id) VALUES (1)`)
	assert.Error(t, err)
}

func TestOpenUnsupportedEngine(t *testing.T) {
	_, err := New(nil).Open(context.Background(), OpenOptions{Engine: "duckdb", Path: "x"})
	assert.ErrorContains(t, err, "unsupported engine")
}

func TestOpenRetriesAndLogs(t *testing.T) {
	var logged []string
	m := New(func(s string) { logged = append(logged, s) })

	// parent directory does not exist, so every ping fails
	path := filepath.Join(t.TempDir(), "missing", "history.db")
	_, err := m.Open(context.Background(), OpenOptions{Path: path, MaxRetries: 2, RetryBaseMs: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 retries")
	assert.Len(t, logged, 2)
}

func TestOpenCancelledBetweenRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := New(func(string) { cancel() })

	path := filepath.Join(t.TempDir(), "missing", "history.db")
	_, err := m.Open(ctx, OpenOptions{Path: path, MaxRetries: 5, RetryBaseMs: 1000})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetryParamsDefaults(t *testing.T) {
	n, ms := retryParams(OpenOptions{})
	assert.Equal(t, 8, n)
	assert.Equal(t, 400, ms)

	n, ms = retryParams(OpenOptions{MaxRetries: 3, RetryBaseMs: 10})
	assert.Equal(t, 3, n)
	assert.Equal(t, 10, ms)
}

func TestDialect(t *testing.T) {
	d := NewDialect(EngineSQLite)
	assert.Equal(t, `"build""runs"`, d.QuoteIdent(`build"runs`))
	assert.True(t, strings.HasPrefix(d.TableInfoQuery("build_runs"), `PRAGMA table_info("build_runs")`))
	assert.Contains(t, DSN("a.db", ModeReadOnly), "query_only(1)")
	assert.NotContains(t, DSN("a.db", ModeReadWrite), "query_only")
}
