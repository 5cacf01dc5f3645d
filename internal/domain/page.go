package domain

// DefaultPageSize is the page size used when none is specified.
const DefaultPageSize = 5000

// MaxPageSize is the maximum allowed page size.
const MaxPageSize = 10000

// Page is an offset/limit window over query results.
type Page struct {
	Offset int
	Limit  int
}

// PageFromNumber derives a Page from a 1-based page number and a page size:
// offset = (number - 1) * size. Out-of-range inputs are clamped.
func PageFromNumber(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Offset: (number - 1) * size, Limit: size}
}
