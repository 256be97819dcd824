package dbpool

import (
	"fmt"
	"strings"
)

// Dialect provides engine-specific SQL fragments so callers don't need to
// know which engine is in use.
type Dialect struct {
	Engine Engine
}

// NewDialect creates a Dialect for the given engine.
func NewDialect(engine Engine) *Dialect {
	return &Dialect{Engine: engine}
}

// QuoteIdent returns a double-quoted SQL identifier with internal quotes
// doubled.
func (d *Dialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// ListTablesQuery returns the SQL to list user tables.
func (d *Dialect) ListTablesQuery() string {
	return "SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name"
}

// ListIndexesQuery returns the SQL to list existing indexes.
func (d *Dialect) ListIndexesQuery() string {
	return "SELECT name FROM sqlite_master WHERE type='index' AND name NOT LIKE 'sqlite_%' ORDER BY name"
}

// TableInfoQuery returns the SQL to get column info for a table.
func (d *Dialect) TableInfoQuery(tableName string) string {
	return fmt.Sprintf(`PRAGMA table_info(%s)`, d.QuoteIdent(tableName))
}
