package query

import (
	"strings"

	"github.com/RiyaMate/Master-financial/internal/domain"
)

// Guard screens ad-hoc console SQL before execution. The default mode matches
// a case-insensitive SELECT prefix after trimming whitespace; Strict mode
// additionally rejects statement stacking via semicolons outside string
// literals (one trailing semicolon is tolerated).
type Guard struct {
	Strict bool
}

// Validate returns the statement to execute, or a RejectedQueryError when the
// text is empty or not a single SELECT.
func (g Guard) Validate(sqlText string) (string, error) {
	trimmed := strings.TrimSpace(sqlText)
	if trimmed == "" {
		return "", domain.ErrRejectedQuery("query is empty")
	}
	if !strings.EqualFold(firstN(trimmed, len("select")), "select") {
		return "", domain.ErrRejectedQuery("only SELECT queries are allowed")
	}
	if g.Strict {
		body := strings.TrimSpace(strings.TrimSuffix(trimmed, ";"))
		if containsBareSemicolon(body) {
			return "", domain.ErrRejectedQuery("multiple statements are not allowed")
		}
		return body, nil
	}
	return trimmed, nil
}

func firstN(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

// containsBareSemicolon reports whether a semicolon appears outside of
// single- or double-quoted literals. Quotes escape by doubling, which the
// state machine handles naturally: the second quote reopens the literal.
func containsBareSemicolon(s string) bool {
	var inSingle, inDouble bool
	for _, r := range s {
		switch {
		case inSingle:
			if r == '\'' {
				inSingle = false
			}
		case inDouble:
			if r == '"' {
				inDouble = false
			}
		case r == '\'':
			inSingle = true
		case r == '"':
			inDouble = true
		case r == ';':
			return true
		}
	}
	return false
}
