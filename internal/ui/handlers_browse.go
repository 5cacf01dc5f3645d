package ui

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/RiyaMate/Master-financial/internal/domain"
)

// browseContext is everything the explore page renders from.
type browseContext struct {
	Schemas        []string
	SelectedSchema string
	Tables         []string
	Session        *Session
	Result         *domain.Result
	RunError       string
}

// Explore serves the main page: schema and table pickers, and when a table is
// selected, its filter controls and current page of rows.
func (h *Handler) Explore(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Get(w, r)

	state, err := h.browseState(r, sess, strings.TrimSpace(r.URL.Query().Get("schema")))
	if err != nil {
		renderHTML(w, http.StatusBadGateway, errorPage("Warehouse Unavailable", err.Error()))
		return
	}

	if sess.HasTable() {
		page := domain.PageFromNumber(sess.PageNumber, sess.PageSize)
		result, err := h.Explorer.ApplyFilters(r.Context(), sess.Table, sess.Filters, page)
		if err != nil {
			state.RunError = err.Error()
		} else {
			state.Result = result
		}
	}

	renderHTML(w, http.StatusOK, h.browsePage(state))
}

// SelectTable handles the table pick: sample it, derive filter controls, and
// reset the session to page one with no filters.
func (h *Handler) SelectTable(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRenderBadRequest(w, r) {
		return
	}
	sess := h.Sessions.Get(w, r)

	schema := strings.TrimSpace(r.Form.Get("schema"))
	tableName := strings.TrimSpace(r.Form.Get("table"))
	if schema == "" || tableName == "" {
		renderHTML(w, http.StatusBadRequest, errorPage("Bad Request", "Pick a schema and a table first."))
		return
	}

	table := domain.TableRef{Database: h.Database, Schema: schema, Table: tableName}
	view, err := h.Explorer.SelectTable(r.Context(), table)
	if err != nil {
		state, stateErr := h.browseState(r, sess, schema)
		if stateErr != nil {
			renderHTML(w, http.StatusBadGateway, errorPage("Warehouse Unavailable", stateErr.Error()))
			return
		}
		state.RunError = err.Error()
		renderHTML(w, http.StatusOK, h.browsePage(state))
		return
	}

	sess.Table = table
	sess.Domains = view.Domains
	sess.Filters = domain.Filters{}
	sess.PageNumber = 1

	state, err := h.browseState(r, sess, schema)
	if err != nil {
		renderHTML(w, http.StatusBadGateway, errorPage("Warehouse Unavailable", err.Error()))
		return
	}
	state.Result = view.Sample
	renderHTML(w, http.StatusOK, h.browsePage(state))
}

// ApplyFilters handles filter form submission and pagination for the
// currently selected table.
func (h *Handler) ApplyFilters(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRenderBadRequest(w, r) {
		return
	}
	sess := h.Sessions.Get(w, r)
	if !sess.HasTable() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sess.Filters = filtersFromForm(r, sess.Domains)
	sess.PageSize = pageSizeFromForm(r.Form.Get("page_size"), sess.PageSize)
	sess.PageNumber = pageNumberFromForm(r.Form.Get("page"))

	state, err := h.browseState(r, sess, sess.Table.Schema)
	if err != nil {
		renderHTML(w, http.StatusBadGateway, errorPage("Warehouse Unavailable", err.Error()))
		return
	}

	page := domain.PageFromNumber(sess.PageNumber, sess.PageSize)
	result, err := h.Explorer.ApplyFilters(r.Context(), sess.Table, sess.Filters, page)
	if err != nil {
		state.RunError = err.Error()
	} else {
		state.Result = result
	}
	renderHTML(w, http.StatusOK, h.browsePage(state))
}

// browseState loads the picker lists. With a configuration-fixed schema there
// is exactly one choice and no schema query is issued.
func (h *Handler) browseState(r *http.Request, sess *Session, selectedSchema string) (browseContext, error) {
	state := browseContext{Session: sess}

	if h.FixedSchema != "" {
		state.Schemas = []string{h.FixedSchema}
		state.SelectedSchema = h.FixedSchema
	} else {
		schemas, err := h.Catalog.ListSchemas(r.Context())
		if err != nil {
			return browseContext{}, err
		}
		state.Schemas = schemas
		state.SelectedSchema = selectedSchema
		if state.SelectedSchema == "" && sess.HasTable() {
			state.SelectedSchema = sess.Table.Schema
		}
	}

	if state.SelectedSchema != "" {
		tables, err := h.Catalog.ListTables(r.Context(), state.SelectedSchema)
		if err != nil {
			return browseContext{}, err
		}
		state.Tables = tables
	}
	return state, nil
}

// filtersFromForm reads one form value per derived domain: a dropdown pick
// for categorical columns ("" means no filter), a min/max pair for numeric
// ones. Values that fail to parse fall back to the domain bounds.
func filtersFromForm(r *http.Request, domains []domain.FilterDomain) domain.Filters {
	filters := domain.Filters{}
	for _, d := range domains {
		switch d.Kind {
		case domain.DomainCategorical:
			if v := r.Form.Get("f_" + d.Column); v != "" {
				filters[d.Column] = domain.Equality(v)
			}
		case domain.DomainNumeric:
			min := parseBound(r.Form.Get("min_"+d.Column), float64(d.Min))
			max := parseBound(r.Form.Get("max_"+d.Column), float64(d.Max))
			if min != float64(d.Min) || max != float64(d.Max) {
				filters[d.Column] = domain.Range(min, max)
			}
		}
	}
	return filters
}

func parseBound(raw string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fallback
	}
	return v
}
