// Package chart aggregates a result set into the points a rendered chart
// plots: group by one column, aggregate another.
package chart

import (
	"fmt"

	"github.com/RiyaMate/Master-financial/internal/domain"
)

// Kind selects the rendering style.
type Kind string

const (
	KindBar  Kind = "bar"
	KindLine Kind = "line"
	KindPie  Kind = "pie"
)

// Aggregate selects how grouped values are combined.
type Aggregate string

const (
	AggSum   Aggregate = "sum"
	AggAvg   Aggregate = "avg"
	AggCount Aggregate = "count"
)

// Config describes one chart over a result set.
type Config struct {
	Kind        Kind
	GroupColumn string
	ValueColumn string // ignored for count
	Aggregate   Aggregate
}

// Validate rejects unknown kinds and aggregates, and missing columns. The
// value column is only required when the aggregate reads values.
func (c Config) Validate() error {
	switch c.Kind {
	case KindBar, KindLine, KindPie:
	default:
		return fmt.Errorf("unknown chart kind %q", c.Kind)
	}
	switch c.Aggregate {
	case AggSum, AggAvg, AggCount:
	default:
		return fmt.Errorf("unknown aggregate %q", c.Aggregate)
	}
	if c.GroupColumn == "" {
		return fmt.Errorf("group column is required")
	}
	if c.Aggregate != AggCount && c.ValueColumn == "" {
		return fmt.Errorf("value column is required for %s", c.Aggregate)
	}
	return nil
}

// Point is one plotted group.
type Point struct {
	Label string
	Value float64
}

// Build groups the result by the configured column and aggregates. Groups
// appear in first-seen row order so the chart matches the table the user is
// looking at. Non-numeric values contribute nothing to sum and avg; null
// group labels render as an empty string.
func Build(res *domain.Result, cfg Config) ([]Point, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	groupIdx := res.ColumnIndex(cfg.GroupColumn)
	if groupIdx < 0 {
		return nil, fmt.Errorf("column %q not in result", cfg.GroupColumn)
	}
	valueIdx := -1
	if cfg.Aggregate != AggCount {
		valueIdx = res.ColumnIndex(cfg.ValueColumn)
		if valueIdx < 0 {
			return nil, fmt.Errorf("column %q not in result", cfg.ValueColumn)
		}
	}

	type acc struct {
		sum   float64
		count int
	}
	order := []string{}
	groups := map[string]*acc{}

	for _, row := range res.Rows {
		label := renderLabel(row[groupIdx])
		a, seen := groups[label]
		if !seen {
			a = &acc{}
			groups[label] = a
			order = append(order, label)
		}
		switch cfg.Aggregate {
		case AggCount:
			a.count++
		default:
			if f, ok := asFloat(row[valueIdx]); ok {
				a.sum += f
				a.count++
			}
		}
	}

	points := make([]Point, 0, len(order))
	for _, label := range order {
		a := groups[label]
		var v float64
		switch cfg.Aggregate {
		case AggSum:
			v = a.sum
		case AggAvg:
			if a.count > 0 {
				v = a.sum / float64(a.count)
			}
		case AggCount:
			v = float64(a.count)
		}
		points = append(points, Point{Label: label, Value: v})
	}
	return points, nil
}

func renderLabel(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
