package warehouse

import (
	"fmt"
	"regexp"
	"strings"
)

// identifierRe allows alphanumeric + underscores, starting with a letter or underscore.
var identifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_$]*$`)

// maxIdentifierLen is the maximum length allowed for a SQL identifier.
const maxIdentifierLen = 128

// ValidateIdentifier checks that name is a safe SQL identifier:
//   - Non-empty
//   - At most 128 characters
//   - Matches [a-zA-Z_][a-zA-Z0-9_$]*
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("identifier is required")
	}
	if len(name) > maxIdentifierLen {
		return fmt.Errorf("identifier must be at most %d characters", maxIdentifierLen)
	}
	if !identifierRe.MatchString(name) {
		return fmt.Errorf("identifier %q must match [a-zA-Z_][a-zA-Z0-9_$]*", name)
	}
	return nil
}

// QuoteIdentifier wraps a SQL identifier in double quotes, escaping any
// embedded double-quote characters by doubling them (standard SQL).
//
// Always quotes unconditionally — the caller should validate first if needed.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QualifyTable builds the quoted dotted relation name database.schema."table".
// Empty database or schema segments are omitted.
func QualifyTable(database, schema, table string) string {
	parts := make([]string, 0, 3)
	if database != "" {
		parts = append(parts, QuoteIdentifier(database))
	}
	if schema != "" {
		parts = append(parts, QuoteIdentifier(schema))
	}
	parts = append(parts, QuoteIdentifier(table))
	return strings.Join(parts, ".")
}
