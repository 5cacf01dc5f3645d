package ui

import (
	"net/http"
	"strings"

	"github.com/RiyaMate/Master-financial/internal/chart"
	"github.com/RiyaMate/Master-financial/internal/domain"
)

// chartContext is what the charts page renders from.
type chartContext struct {
	Session  *Session
	Columns  []string
	Config   chart.Config
	Points   []chart.Point
	RunError string
}

// ChartsPage serves the chart builder. Charts plot the currently filtered
// table, so a table must be selected first.
func (h *Handler) ChartsPage(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Get(w, r)
	state := chartContext{
		Session: sess,
		Config:  chart.Config{Kind: chart.KindBar, Aggregate: chart.AggCount},
	}
	if sess.HasTable() {
		cols, err := h.currentColumns(r, sess)
		if err != nil {
			state.RunError = err.Error()
		} else {
			state.Columns = cols
		}
	}
	renderHTML(w, http.StatusOK, h.chartsPage(state))
}

// ChartsBuild aggregates the current filtered page into chart points and
// renders them.
func (h *Handler) ChartsBuild(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRenderBadRequest(w, r) {
		return
	}
	sess := h.Sessions.Get(w, r)
	if !sess.HasTable() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	cfg := chart.Config{
		Kind:        chart.Kind(strings.TrimSpace(r.Form.Get("kind"))),
		GroupColumn: strings.TrimSpace(r.Form.Get("group")),
		ValueColumn: strings.TrimSpace(r.Form.Get("value")),
		Aggregate:   chart.Aggregate(strings.TrimSpace(r.Form.Get("agg"))),
	}
	state := chartContext{Session: sess, Config: cfg}

	cols, err := h.currentColumns(r, sess)
	if err != nil {
		state.RunError = err.Error()
		renderHTML(w, http.StatusOK, h.chartsPage(state))
		return
	}
	state.Columns = cols

	page := domain.PageFromNumber(sess.PageNumber, sess.PageSize)
	result, err := h.Explorer.ApplyFilters(r.Context(), sess.Table, sess.Filters, page)
	if err != nil {
		state.RunError = err.Error()
		renderHTML(w, http.StatusOK, h.chartsPage(state))
		return
	}

	points, err := chart.Build(result, cfg)
	if err != nil {
		state.RunError = err.Error()
		renderHTML(w, http.StatusOK, h.chartsPage(state))
		return
	}
	state.Points = points
	renderHTML(w, http.StatusOK, h.chartsPage(state))
}

// currentColumns fetches a one-row page just to learn the column list.
func (h *Handler) currentColumns(r *http.Request, sess *Session) ([]string, error) {
	res, err := h.Explorer.ApplyFilters(r.Context(), sess.Table, nil, domain.Page{Offset: 0, Limit: 1})
	if err != nil {
		return nil, err
	}
	return res.Columns, nil
}
