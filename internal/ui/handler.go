package ui

import (
	"net/http"
	"strconv"

	gomponents "maragu.dev/gomponents"

	"github.com/RiyaMate/Master-financial/internal/catalog"
	"github.com/RiyaMate/Master-financial/internal/domain"
	"github.com/RiyaMate/Master-financial/internal/explore"
	"github.com/RiyaMate/Master-financial/internal/lookup"
)

// Handler serves the dashboard pages.
type Handler struct {
	Catalog  *catalog.Browser
	Explorer *explore.Service
	Quarter  *lookup.QuarterClient // nil when the lookup feature is disabled
	Sessions *SessionStore

	FixedSchema string // non-empty when configuration pins the schema
	Database    string
}

func NewHandler(browser *catalog.Browser, explorer *explore.Service, quarter *lookup.QuarterClient, sessions *SessionStore, fixedSchema, database string) *Handler {
	return &Handler{
		Catalog:     browser,
		Explorer:    explorer,
		Quarter:     quarter,
		Sessions:    sessions,
		FixedSchema: fixedSchema,
		Database:    database,
	}
}

func (h *Handler) quarterEnabled() bool {
	return h.Quarter != nil
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

func parseFormOrRenderBadRequest(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Bad Request", "The submitted form could not be parsed."))
		return false
	}
	return true
}

// pageNumberFromForm reads the 1-based page number, defaulting to 1.
func pageNumberFromForm(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// pageSizeFromForm reads the rows-per-page selection, clamped to the allowed
// ceiling; invalid input keeps the current size.
func pageSizeFromForm(raw string, current int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return current
	}
	if n > domain.MaxPageSize {
		return domain.MaxPageSize
	}
	return n
}
