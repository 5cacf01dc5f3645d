// Package filter derives per-column filter controls from a capped sample of a
// table. The sample, not full-table statistics, decides what each control
// offers: a distinct-value dropdown for low-cardinality columns, an integer
// range for numeric ones.
package filter

import (
	"fmt"
	"math"
	"sort"

	"github.com/RiyaMate/Master-financial/internal/domain"
)

// DefaultCategoricalThreshold is the distinct-value count strictly below
// which a column gets a dropdown instead of a range or no control at all.
const DefaultCategoricalThreshold = 15

// Deriver turns a sample result into filter domains.
type Deriver struct {
	// CategoricalThreshold caps dropdown cardinality; zero means the default.
	CategoricalThreshold int
}

// Derive inspects each sample column and classifies it. Cardinality decides
// first: any column with fewer distinct non-null values than the threshold
// yields a sorted dropdown, numeric or not. At or above the threshold,
// all-numeric columns yield a range domain with the sample minimum floored
// and the maximum ceiled to whole numbers; high-cardinality text columns get
// no control. A column with no non-null values in the sample yields an empty
// dropdown.
//
// Output order follows sample column order, and re-deriving from the same
// sample always produces identical domains.
func (d Deriver) Derive(sample *domain.Result) []domain.FilterDomain {
	threshold := d.CategoricalThreshold
	if threshold <= 0 {
		threshold = DefaultCategoricalThreshold
	}

	domains := []domain.FilterDomain{}
	for i, col := range sample.Columns {
		fd, ok := deriveColumn(col, columnValues(sample, i), threshold)
		if ok {
			domains = append(domains, fd)
		}
	}
	return domains
}

func columnValues(sample *domain.Result, idx int) []interface{} {
	vals := make([]interface{}, 0, len(sample.Rows))
	for _, row := range sample.Rows {
		if idx < len(row) && row[idx] != nil {
			vals = append(vals, row[idx])
		}
	}
	return vals
}

func deriveColumn(col string, vals []interface{}, threshold int) (domain.FilterDomain, bool) {
	if len(vals) == 0 {
		return domain.FilterDomain{Column: col, Kind: domain.DomainCategorical, Values: []string{}}, true
	}

	distinct := map[string]struct{}{}
	for _, v := range vals {
		distinct[render(v)] = struct{}{}
	}
	// Cardinality wins over type: a handful of distinct numbers reads as a
	// set of codes, not a continuum.
	if len(distinct) < threshold {
		values := make([]string, 0, len(distinct))
		for v := range distinct {
			values = append(values, v)
		}
		sort.Strings(values)
		return domain.FilterDomain{Column: col, Kind: domain.DomainCategorical, Values: values}, true
	}

	if nums, ok := asNumbers(vals); ok {
		min, max := nums[0], nums[0]
		for _, n := range nums[1:] {
			if n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}
		return domain.FilterDomain{
			Column: col,
			Kind:   domain.DomainNumeric,
			Min:    int64(math.Floor(min)),
			Max:    int64(math.Ceil(max)),
		}, true
	}

	return domain.FilterDomain{}, false
}

// asNumbers converts the column to float64s; a single non-numeric value makes
// the whole column non-numeric.
func asNumbers(vals []interface{}) ([]float64, bool) {
	nums := make([]float64, 0, len(vals))
	for _, v := range vals {
		f, ok := asFloat(v)
		if !ok {
			return nil, false
		}
		nums = append(nums, f)
	}
	return nums, true
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

func render(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprintf("%v", v)
	}
}
