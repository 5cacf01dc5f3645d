package query

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

func newTestExecutor(t *testing.T) (*Executor, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	cfg := &config.Config{Driver: config.DriverSnowflake, Database: "FINANCE"}
	client := warehouse.NewWithDB(db, cfg, slog.New(slog.DiscardHandler))
	return NewExecutor(client, slog.New(slog.DiscardHandler)), mock, db
}

func TestFetchPagePassesBoundArgs(t *testing.T) {
	e, mock, _ := newTestExecutor(t)

	mock.ExpectQuery(`SELECT * FROM "FINANCE"."PUBLIC"."ORDERS" WHERE "REGION" = ? LIMIT 100 OFFSET 0`).
		WithArgs("EMEA").
		WillReturnRows(sqlmock.NewRows([]string{"ID", "REGION"}).
			AddRow(int64(1), "EMEA").
			AddRow(int64(2), "EMEA"))

	res, err := e.FetchPage(ctx, table(), domain.Page{Limit: 100},
		domain.Filters{"REGION": domain.Equality("EMEA")})
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "REGION"}, res.Columns)
	assert.Equal(t, 2, res.RowCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchPageEmptyIsNotAnError(t *testing.T) {
	e, mock, _ := newTestExecutor(t)

	mock.ExpectQuery(`SELECT * FROM "FINANCE"."PUBLIC"."ORDERS" LIMIT 100 OFFSET 0`).
		WillReturnRows(sqlmock.NewRows([]string{"ID", "REGION"}))

	res, err := e.FetchPage(ctx, table(), domain.Page{Limit: 100}, nil)
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Equal(t, []string{"ID", "REGION"}, res.Columns)
}

func TestFetchPageQueryFailure(t *testing.T) {
	e, mock, _ := newTestExecutor(t)

	mock.ExpectQuery(`SELECT * FROM "FINANCE"."PUBLIC"."ORDERS" LIMIT 100 OFFSET 0`).
		WillReturnError(errors.New("SQL compilation error"))

	_, err := e.FetchPage(ctx, table(), domain.Page{Limit: 100}, nil)
	var qErr *domain.QueryError
	require.ErrorAs(t, err, &qErr)
	assert.Contains(t, err.Error(), "SQL compilation error")
}

func TestFetchSampleUsesCap(t *testing.T) {
	e, mock, _ := newTestExecutor(t)

	mock.ExpectQuery(`SELECT * FROM "FINANCE"."PUBLIC"."ORDERS" LIMIT 5000 OFFSET 0`).
		WillReturnRows(sqlmock.NewRows([]string{"ID"}).AddRow(int64(1)))

	res, err := e.FetchSample(ctx, table(), 5000)
	require.NoError(t, err)
	assert.Equal(t, 1, res.RowCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunExecutesVerbatim(t *testing.T) {
	e, mock, _ := newTestExecutor(t)

	mock.ExpectQuery(`SELECT count(*) AS n FROM orders`).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(int64(42)))

	res, err := e.Run(ctx, `SELECT count(*) AS n FROM orders`)
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.Rows[0][0])
}

func TestRunConvertsBytesToStrings(t *testing.T) {
	e, mock, _ := newTestExecutor(t)

	mock.ExpectQuery(`SELECT name FROM orders`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow([]byte("widget")))

	res, err := e.Run(ctx, `SELECT name FROM orders`)
	require.NoError(t, err)
	assert.Equal(t, "widget", res.Rows[0][0])
}
