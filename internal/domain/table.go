package domain

import "strings"

// TableRef identifies a queryable relation in the warehouse. Immutable once
// constructed; created from a user selection and discarded after the query
// that uses it.
type TableRef struct {
	Database string
	Schema   string
	Table    string
}

// String returns the dotted, unquoted form for display and logging.
func (t TableRef) String() string {
	parts := make([]string, 0, 3)
	if t.Database != "" {
		parts = append(parts, t.Database)
	}
	if t.Schema != "" {
		parts = append(parts, t.Schema)
	}
	parts = append(parts, t.Table)
	return strings.Join(parts, ".")
}
