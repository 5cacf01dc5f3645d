package domain

// Result holds the structured output of a query: ordered named columns, each
// row a slice of scalar values in column order. A Result with zero rows is the
// explicit empty table — distinct from execution failure, which is reported as
// an error instead.
type Result struct {
	Columns  []string
	Rows     [][]interface{}
	RowCount int
}

// Empty reports whether the result holds no rows.
func (r *Result) Empty() bool { return r == nil || r.RowCount == 0 }

// ColumnIndex returns the position of the named column, or -1 when absent.
func (r *Result) ColumnIndex(name string) int {
	for i, c := range r.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
