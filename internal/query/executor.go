package query

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/RiyaMate/Master-financial/internal/domain"
	"github.com/RiyaMate/Master-financial/internal/warehouse"
)

// Executor runs page and sample fetches against the warehouse. One statement
// per call; zero rows yields the explicit empty Result, never an error.
type Executor struct {
	client *warehouse.Client
	logger *slog.Logger
}

// NewExecutor creates an Executor over the given warehouse client.
func NewExecutor(client *warehouse.Client, logger *slog.Logger) *Executor {
	return &Executor{client: client, logger: logger}
}

// FetchPage builds and executes one filtered, paginated SELECT against the
// table. Execution failure is reported as a QueryError carrying the driver
// message; the caller decides whether to show an empty state or abort.
func (e *Executor) FetchPage(ctx context.Context, table domain.TableRef, page domain.Page, filters domain.Filters) (*domain.Result, error) {
	sqlText, args, err := buildSelect(table, page, filters)
	if err != nil {
		return nil, domain.ErrQuery("build query for %s: %v", table, err)
	}

	start := time.Now()
	rows, err := e.client.DB().QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, domain.ErrQuery("fetch %s: %v", table, err)
	}
	defer rows.Close() //nolint:errcheck

	result, err := scanRows(rows)
	if err != nil {
		return nil, domain.ErrQuery("scan %s: %v", table, err)
	}

	e.logger.Debug("page fetched",
		"table", table.String(),
		"offset", page.Offset,
		"limit", page.Limit,
		"filters", filters.ActiveCount(),
		"rows", result.RowCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// FetchSample is the unfiltered convenience form used to derive filter
// domains: FetchPage with offset 0, no filters, and the configured cap.
func (e *Executor) FetchSample(ctx context.Context, table domain.TableRef, capLimit int) (*domain.Result, error) {
	return e.FetchPage(ctx, table, domain.Page{Offset: 0, Limit: capLimit}, nil)
}

// Run executes validated ad-hoc SQL verbatim. The caller must have passed the
// text through the read-only guard first; no parameters apply because the
// user supplies the whole statement.
func (e *Executor) Run(ctx context.Context, sqlText string) (*domain.Result, error) {
	start := time.Now()
	rows, err := e.client.DB().QueryContext(ctx, sqlText)
	if err != nil {
		return nil, domain.ErrQuery("execute query: %v", err)
	}
	defer rows.Close() //nolint:errcheck

	result, err := scanRows(rows)
	if err != nil {
		return nil, domain.ErrQuery("scan results: %v", err)
	}

	e.logger.Debug("ad-hoc query executed",
		"rows", result.RowCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// scanRows drains a result set into a Result. Byte slices are converted to
// strings so values render and serialize cleanly.
func scanRows(rows *sql.Rows) (*domain.Result, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var resultRows [][]interface{}
	for rows.Next() {
		vals := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make([]interface{}, len(vals))
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				row[i] = string(b)
			} else {
				row[i] = v
			}
		}
		resultRows = append(resultRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &domain.Result{
		Columns:  cols,
		Rows:     resultRows,
		RowCount: len(resultRows),
	}, nil
}
