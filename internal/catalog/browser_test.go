package catalog

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiyaMate/Master-financial/internal/config"
	"github.com/RiyaMate/Master-financial/internal/domain"
	"github.com/RiyaMate/Master-financial/internal/warehouse"
)

var ctx = context.Background()

func newTestBrowser(t *testing.T, cfg *config.Config) (*Browser, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	client := warehouse.NewWithDB(db, cfg, slog.New(slog.DiscardHandler))
	return NewBrowser(client, slog.New(slog.DiscardHandler)), mock, db
}

func snowflakeCfg() *config.Config {
	return &config.Config{Driver: config.DriverSnowflake, Database: "FINANCE"}
}

func TestListSchemas(t *testing.T) {
	b, mock, _ := newTestBrowser(t, snowflakeCfg())

	mock.ExpectQuery(`SELECT SCHEMA_NAME FROM "FINANCE".INFORMATION_SCHEMA.SCHEMATA ORDER BY SCHEMA_NAME`).
		WillReturnRows(sqlmock.NewRows([]string{"SCHEMA_NAME"}).
			AddRow("ACCOUNTING").
			AddRow("INFORMATION_SCHEMA").
			AddRow("PUBLIC"))

	schemas, err := b.ListSchemas(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ACCOUNTING", "PUBLIC"}, schemas)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSchemasEmptyIsNotAnError(t *testing.T) {
	b, mock, _ := newTestBrowser(t, snowflakeCfg())

	mock.ExpectQuery(`SELECT SCHEMA_NAME FROM "FINANCE".INFORMATION_SCHEMA.SCHEMATA ORDER BY SCHEMA_NAME`).
		WillReturnRows(sqlmock.NewRows([]string{"SCHEMA_NAME"}))

	schemas, err := b.ListSchemas(ctx)
	require.NoError(t, err)
	assert.NotNil(t, schemas)
	assert.Empty(t, schemas)
}

func TestListSchemasConnectionFailure(t *testing.T) {
	b, mock, _ := newTestBrowser(t, snowflakeCfg())

	mock.ExpectQuery(`SELECT SCHEMA_NAME FROM "FINANCE".INFORMATION_SCHEMA.SCHEMATA ORDER BY SCHEMA_NAME`).
		WillReturnError(errors.New("network unreachable"))

	_, err := b.ListSchemas(ctx)
	var connErr *domain.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Contains(t, err.Error(), "network unreachable")
}

func TestListTablesBindsSchema(t *testing.T) {
	b, mock, _ := newTestBrowser(t, snowflakeCfg())

	mock.ExpectQuery(`SELECT TABLE_NAME FROM "FINANCE".INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = ? ORDER BY TABLE_NAME`).
		WithArgs("PUBLIC").
		WillReturnRows(sqlmock.NewRows([]string{"TABLE_NAME"}).
			AddRow("LEDGER").
			AddRow("TRADES"))

	tables, err := b.ListTables(ctx, "PUBLIC")
	require.NoError(t, err)
	assert.Equal(t, []string{"LEDGER", "TRADES"}, tables)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTablesEmptySchema(t *testing.T) {
	b, _, _ := newTestBrowser(t, snowflakeCfg())

	tables, err := b.ListTables(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestListTablesFixedSchemaUsesShowTables(t *testing.T) {
	cfg := snowflakeCfg()
	cfg.Schema = "PUBLIC"
	b, mock, _ := newTestBrowser(t, cfg)

	mock.ExpectQuery(`SHOW TABLES IN SCHEMA "FINANCE"."PUBLIC"`).
		WillReturnRows(sqlmock.NewRows([]string{"created_on", "name", "kind"}).
			AddRow("2026-01-01", "LEDGER", "TABLE").
			AddRow("2026-01-02", "TRADES", "TABLE"))

	tables, err := b.ListTables(ctx, "PUBLIC")
	require.NoError(t, err)
	assert.Equal(t, []string{"LEDGER", "TRADES"}, tables)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTablesDuckDBIgnoresShowTablesPath(t *testing.T) {
	cfg := &config.Config{Driver: config.DriverDuckDB, Schema: "main"}
	b, mock, _ := newTestBrowser(t, cfg)

	mock.ExpectQuery(`SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = ? ORDER BY TABLE_NAME`).
		WithArgs("main").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("trades"))

	tables, err := b.ListTables(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, []string{"trades"}, tables)
}
