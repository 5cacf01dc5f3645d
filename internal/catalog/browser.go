// Package catalog lists the schemas and tables available in the connected
// warehouse via information-schema metadata queries.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/RiyaMate/Master-financial/internal/config"
	"github.com/RiyaMate/Master-financial/internal/domain"
	"github.com/RiyaMate/Master-financial/internal/warehouse"
)

// Browser wraps the warehouse's catalog metadata. Both operations issue a
// single read-only statement; "no rows" is an empty slice, never an error.
// Only connection-level failure is reported, as a ConnectionError.
type Browser struct {
	client *warehouse.Client
	logger *slog.Logger
}

// NewBrowser creates a Browser over the given warehouse client.
func NewBrowser(client *warehouse.Client, logger *slog.Logger) *Browser {
	return &Browser{client: client, logger: logger}
}

// ListSchemas returns the schema names visible in the configured database,
// sorted by name. INFORMATION_SCHEMA itself is excluded — it is navigable but
// never a useful exploration target.
func (b *Browser) ListSchemas(ctx context.Context) ([]string, error) {
	q := "SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA ORDER BY SCHEMA_NAME"
	if db := b.client.Database(); db != "" {
		q = fmt.Sprintf("SELECT SCHEMA_NAME FROM %s.INFORMATION_SCHEMA.SCHEMATA ORDER BY SCHEMA_NAME", warehouse.QuoteIdentifier(db))
	}

	rows, err := b.client.DB().QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrConnection("list schemas: %v", err)
	}
	defer rows.Close() //nolint:errcheck

	names, err := scanNames(rows)
	if err != nil {
		return nil, domain.ErrConnection("list schemas: %v", err)
	}
	return dropInformationSchema(names), nil
}

// ListTables returns the table names in the given schema, sorted by name.
// When the schema is fixed by configuration and the warehouse speaks the
// Snowflake dialect, a SHOW TABLES introspection command is issued instead of
// the information-schema view.
func (b *Browser) ListTables(ctx context.Context, schema string) ([]string, error) {
	if schema == "" {
		return []string{}, nil
	}
	if fixed := b.client.FixedSchema(); fixed == schema && b.client.Dialect() == config.DriverSnowflake {
		return b.showTables(ctx, fixed)
	}

	q := "SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = ? ORDER BY TABLE_NAME"
	if db := b.client.Database(); db != "" {
		q = fmt.Sprintf("SELECT TABLE_NAME FROM %s.INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = ? ORDER BY TABLE_NAME", warehouse.QuoteIdentifier(db))
	}

	rows, err := b.client.DB().QueryContext(ctx, q, schema)
	if err != nil {
		return nil, domain.ErrConnection("list tables in %s: %v", schema, err)
	}
	defer rows.Close() //nolint:errcheck

	names, err := scanNames(rows)
	if err != nil {
		return nil, domain.ErrConnection("list tables in %s: %v", schema, err)
	}
	return names, nil
}

// showTables issues SHOW TABLES for a configuration-fixed schema. The command
// returns a wide metadata row set; only the "name" column is kept.
func (b *Browser) showTables(ctx context.Context, schema string) ([]string, error) {
	scope := warehouse.QuoteIdentifier(schema)
	if db := b.client.Database(); db != "" {
		scope = warehouse.QuoteIdentifier(db) + "." + scope
	}

	rows, err := b.client.DB().QueryContext(ctx, "SHOW TABLES IN SCHEMA "+scope)
	if err != nil {
		return nil, domain.ErrConnection("show tables in %s: %v", schema, err)
	}
	defer rows.Close() //nolint:errcheck

	cols, err := rows.Columns()
	if err != nil {
		return nil, domain.ErrConnection("show tables in %s: %v", schema, err)
	}
	nameIdx := -1
	for i, c := range cols {
		if strings.EqualFold(c, "name") {
			nameIdx = i
			break
		}
	}
	if nameIdx == -1 {
		return nil, domain.ErrConnection("show tables in %s: no name column in result", schema)
	}

	names := []string{}
	vals := make([]interface{}, len(cols))
	ptrs := make([]interface{}, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, domain.ErrConnection("show tables in %s: %v", schema, err)
		}
		switch v := vals[nameIdx].(type) {
		case string:
			names = append(names, v)
		case []byte:
			names = append(names, string(v))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrConnection("show tables in %s: %v", schema, err)
	}
	return names, nil
}

// scanNames collects a single-string-column result set into a slice.
// Always returns a non-nil slice so "no rows" renders as an empty list.
func scanNames(rows *sql.Rows) ([]string, error) {
	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func dropInformationSchema(names []string) []string {
	out := names[:0]
	for _, n := range names {
		if !strings.EqualFold(n, "INFORMATION_SCHEMA") {
			out = append(out, n)
		}
	}
	return out
}
