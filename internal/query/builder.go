// Package query builds and executes the bounded, filtered SELECT statements
// behind the table viewer, and guards ad-hoc SQL submitted through the
// console.
package query

import (
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"

	"github.com/RiyaMate/Master-financial/internal/domain"
	"github.com/RiyaMate/Master-financial/internal/warehouse"
)

// builder uses ? placeholders, understood by both the Snowflake and DuckDB
// drivers.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildSelect constructs the paginated, filtered page query:
//
//	SELECT * FROM <db>.<schema>."<table>" [WHERE ...] LIMIT <limit> OFFSET <offset>
//
// Identifiers are validated and quoted; every filter value is a bound
// parameter, never interpolated into the statement text. Predicates are
// emitted in column-name order so the statement is deterministic for a given
// filter set. Unset equality filters contribute nothing; when no predicate
// applies the WHERE clause is omitted entirely.
func buildSelect(table domain.TableRef, page domain.Page, filters domain.Filters) (string, []interface{}, error) {
	for _, id := range []string{table.Database, table.Schema} {
		if id != "" {
			if err := warehouse.ValidateIdentifier(id); err != nil {
				return "", nil, err
			}
		}
	}
	if err := warehouse.ValidateIdentifier(table.Table); err != nil {
		return "", nil, err
	}

	b := builder.Select("*").From(warehouse.QualifyTable(table.Database, table.Schema, table.Table))

	columns := make([]string, 0, len(filters))
	for col := range filters {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	for _, col := range columns {
		f := filters[col]
		if f.Unset() {
			continue
		}
		if err := warehouse.ValidateIdentifier(col); err != nil {
			return "", nil, err
		}
		quoted := warehouse.QuoteIdentifier(col)
		switch f.Kind {
		case domain.FilterEquality:
			b = b.Where(sq.Eq{quoted: f.Value})
		case domain.FilterRange:
			b = b.Where(quoted+" BETWEEN ? AND ?", f.Min, f.Max)
		default:
			return "", nil, fmt.Errorf("unknown filter kind %d for column %s", f.Kind, col)
		}
	}

	if page.Offset < 0 {
		page.Offset = 0
	}
	if page.Limit < 1 {
		page.Limit = domain.DefaultPageSize
	}
	b = b.Limit(uint64(page.Limit)).Offset(uint64(page.Offset))

	return b.ToSql()
}
