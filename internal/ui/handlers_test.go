package ui

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RiyaMate/Master-financial/internal/catalog"
	"github.com/RiyaMate/Master-financial/internal/config"
	"github.com/RiyaMate/Master-financial/internal/explore"
	"github.com/RiyaMate/Master-financial/internal/lookup"
	"github.com/RiyaMate/Master-financial/internal/query"
	"github.com/RiyaMate/Master-financial/internal/warehouse"
)

func newTestRouter(t *testing.T, quarterURL string) (chi.Router, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{Driver: config.DriverSnowflake, Database: "FINANCE"}
	client := warehouse.NewWithDB(db, cfg, logger)
	executor := query.NewExecutor(client, logger)
	explorer := explore.NewService(executor, query.Guard{}, 5000, logger)
	browser := catalog.NewBrowser(client, logger)
	quarter := lookup.NewQuarterClient(quarterURL, logger)

	h := NewHandler(browser, explorer, quarter, NewSessionStore(100), "", "FINANCE")
	r := chi.NewRouter()
	MountRoutes(r, h)
	return r, mock
}

func TestExploreRendersSchemas(t *testing.T) {
	r, mock := newTestRouter(t, "")

	mock.ExpectQuery(`SELECT SCHEMA_NAME FROM "FINANCE".INFORMATION_SCHEMA.SCHEMATA ORDER BY SCHEMA_NAME`).
		WillReturnRows(sqlmock.NewRows([]string{"SCHEMA_NAME"}).AddRow("PUBLIC"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "PUBLIC")
	assert.Contains(t, rec.Body.String(), "Warehouse Explorer")
	assert.NotEmpty(t, rec.Result().Cookies(), "first visit sets the session cookie")
}

func TestExploreWarehouseDown(t *testing.T) {
	r, mock := newTestRouter(t, "")

	mock.ExpectQuery(`SELECT SCHEMA_NAME FROM "FINANCE".INFORMATION_SCHEMA.SCHEMATA ORDER BY SCHEMA_NAME`).
		WillReturnError(assert.AnError)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Warehouse Unavailable")
}

func TestSelectTableRendersSampleAndFilters(t *testing.T) {
	r, mock := newTestRouter(t, "")

	sampleRows := sqlmock.NewRows([]string{"REGION", "AMOUNT"})
	regions := []string{"EMEA", "APAC"}
	for i := 0; i < 20; i++ {
		sampleRows.AddRow(regions[i%2], 10.5+float64(i)*4.25)
	}
	mock.ExpectQuery(`SELECT * FROM "FINANCE"."PUBLIC"."ORDERS" LIMIT 5000 OFFSET 0`).
		WillReturnRows(sampleRows)
	mock.ExpectQuery(`SELECT SCHEMA_NAME FROM "FINANCE".INFORMATION_SCHEMA.SCHEMATA ORDER BY SCHEMA_NAME`).
		WillReturnRows(sqlmock.NewRows([]string{"SCHEMA_NAME"}).AddRow("PUBLIC"))
	mock.ExpectQuery(`SELECT TABLE_NAME FROM "FINANCE".INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = ? ORDER BY TABLE_NAME`).
		WithArgs("PUBLIC").
		WillReturnRows(sqlmock.NewRows([]string{"TABLE_NAME"}).AddRow("ORDERS"))

	form := url.Values{"schema": {"PUBLIC"}, "table": {"ORDERS"}}
	req := httptest.NewRequest(http.MethodPost, "/browse/select", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "FINANCE.PUBLIC.ORDERS")
	assert.Contains(t, body, "f_REGION", "categorical filter control rendered")
	assert.Contains(t, body, "min_AMOUNT", "numeric filter control rendered")
	assert.Contains(t, body, "EMEA")
}

func TestApplyFiltersWithoutTableRedirects(t *testing.T) {
	r, _ := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/browse/apply", strings.NewReader("page=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestSQLConsoleRejectsNonSelect(t *testing.T) {
	r, _ := newTestRouter(t, "")

	form := url.Values{"sql": {"DROP TABLE orders"}}
	req := httptest.NewRequest(http.MethodPost, "/sql/run", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "only SELECT queries are allowed")
}

func TestSQLConsoleRunsSelect(t *testing.T) {
	r, mock := newTestRouter(t, "")

	mock.ExpectQuery(`SELECT 1 AS one`).
		WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(int64(1)))

	form := url.Values{"sql": {"SELECT 1 AS one"}}
	req := httptest.NewRequest(http.MethodPost, "/sql/run", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1 row(s)")
}

func TestSQLConsoleCSVDownload(t *testing.T) {
	r, mock := newTestRouter(t, "")

	mock.ExpectQuery(`SELECT name FROM orders`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("widget").AddRow("gadget"))

	form := url.Values{"sql": {"SELECT name FROM orders"}}
	req := httptest.NewRequest(http.MethodPost, "/sql/download.csv", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "name\nwidget\ngadget")
}

func TestQuarterRoutesAbsentWhenDisabled(t *testing.T) {
	r, _ := newTestRouter(t, "")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quarter", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuarterNavPresentWhenEnabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"year_quarter":"FY26-Q2"}`))
	}))
	defer srv.Close()

	r, _ := newTestRouter(t, srv.URL)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quarter", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Quarter Lookup")

	form := url.Values{"date": {"2026-05-01"}}
	req := httptest.NewRequest(http.MethodPost, "/quarter", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "FY26-Q2")
}
