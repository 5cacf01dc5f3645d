package domain

// FilterKind distinguishes the two filter shapes a column can carry.
type FilterKind int

const (
	// FilterEquality constrains a column to a single scalar value.
	FilterEquality FilterKind = iota
	// FilterRange constrains a numeric column to an inclusive [Min, Max] range.
	FilterRange
)

// Filter is a single per-column constraint. An equality filter whose value is
// nil or the empty string is the "unset" sentinel and contributes no predicate.
type Filter struct {
	Kind  FilterKind
	Value interface{} // equality value; nil or "" means unset
	Min   float64     // range lower bound, inclusive
	Max   float64     // range upper bound, inclusive
}

// Equality builds an equality filter for a scalar value.
func Equality(value interface{}) Filter {
	return Filter{Kind: FilterEquality, Value: value}
}

// Range builds an inclusive numeric range filter.
func Range(min, max float64) Filter {
	return Filter{Kind: FilterRange, Min: min, Max: max}
}

// Unset reports whether the filter contributes no predicate.
func (f Filter) Unset() bool {
	if f.Kind != FilterEquality {
		return false
	}
	if f.Value == nil {
		return true
	}
	s, ok := f.Value.(string)
	return ok && s == ""
}

// Filters maps column name to its constraint. A column appears with at most
// one filter kind.
type Filters map[string]Filter

// ActiveCount returns the number of filters that contribute a predicate.
func (fs Filters) ActiveCount() int {
	n := 0
	for _, f := range fs {
		if !f.Unset() {
			n++
		}
	}
	return n
}

// DomainKind classifies the filter control derived for a column.
type DomainKind int

const (
	// DomainCategorical offers a fixed set of selectable values.
	DomainCategorical DomainKind = iota
	// DomainNumeric offers an inclusive integer [Min, Max] range.
	DomainNumeric
)

// FilterDomain is the set or range of selectable values offered to the user
// for one column, derived from an unfiltered sample. Recomputed whenever the
// sample is refetched; never persisted.
type FilterDomain struct {
	Column string
	Kind   DomainKind
	Values []string // categorical: distinct values, ordered for display
	Min    int64    // numeric: floor of the sampled minimum
	Max    int64    // numeric: ceil of the sampled maximum
}
