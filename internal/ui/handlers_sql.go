package ui

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
)

const sqlConsoleCSVMaxRows = 5000

// SQLConsolePage serves the ad-hoc query console. The last statement run this
// session is pre-filled.
func (h *Handler) SQLConsolePage(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Get(w, r)
	sqlText := strings.TrimSpace(r.URL.Query().Get("sql"))
	if sqlText == "" {
		sqlText = sess.LastSQL
	}
	if sqlText == "" {
		sqlText = defaultSQLSnippet(r.URL.Query().Get("snippet"), sess)
	}
	renderHTML(w, http.StatusOK, h.sqlConsolePage(sqlText, nil, ""))
}

// SQLConsoleRun executes the submitted statement through the read-only guard.
func (h *Handler) SQLConsoleRun(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRenderBadRequest(w, r) {
		return
	}
	sess := h.Sessions.Get(w, r)

	sqlText := strings.TrimSpace(r.Form.Get("sql"))
	sess.LastSQL = sqlText

	result, err := h.Explorer.RunQuery(r.Context(), sqlText)
	if err != nil {
		renderHTML(w, http.StatusOK, h.sqlConsolePage(sqlText, nil, err.Error()))
		return
	}
	renderHTML(w, http.StatusOK, h.sqlConsolePage(sqlText, result, ""))
}

// SQLConsoleDownloadCSV re-runs the statement and streams the result as a CSV
// attachment, capped so a runaway query cannot produce an unbounded file.
func (h *Handler) SQLConsoleDownloadCSV(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRenderBadRequest(w, r) {
		return
	}

	sqlText := strings.TrimSpace(r.Form.Get("sql"))
	result, err := h.Explorer.RunQuery(r.Context(), sqlText)
	if err != nil {
		renderHTML(w, http.StatusOK, h.sqlConsolePage(sqlText, nil, err.Error()))
		return
	}

	rows := result.Rows
	if len(rows) > sqlConsoleCSVMaxRows {
		rows = rows[:sqlConsoleCSVMaxRows]
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(result.Columns); err != nil {
		renderHTML(w, http.StatusInternalServerError, errorPage("Export Failed", "Failed writing CSV header."))
		return
	}
	for i := range rows {
		record := make([]string, 0, len(rows[i]))
		for j := range rows[i] {
			record = append(record, cellString(rows[i][j]))
		}
		if err := writer.Write(record); err != nil {
			renderHTML(w, http.StatusInternalServerError, errorPage("Export Failed", "Failed writing CSV rows."))
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		renderHTML(w, http.StatusInternalServerError, errorPage("Export Failed", "Failed finalizing CSV."))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "query-results.csv"))
	if len(result.Rows) > sqlConsoleCSVMaxRows {
		w.Header().Set("X-Results-Truncated", "true")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// defaultSQLSnippet pre-fills the console relative to the session's current
// table when one is selected.
func defaultSQLSnippet(snippetID string, sess *Session) string {
	target := "<schema>.<table>"
	if sess.HasTable() {
		target = sess.Table.String()
	}
	switch snippetID {
	case "sample_rows":
		return fmt.Sprintf("SELECT *\nFROM %s\nLIMIT 50;", target)
	case "row_count":
		return fmt.Sprintf("SELECT COUNT(*) AS row_count\nFROM %s;", target)
	case "show_tables":
		schema := "PUBLIC"
		if sess.HasTable() {
			schema = sess.Table.Schema
		}
		return fmt.Sprintf("SELECT table_name\nFROM information_schema.tables\nWHERE table_schema = '%s'\nORDER BY table_name;", schema)
	default:
		return ""
	}
}
