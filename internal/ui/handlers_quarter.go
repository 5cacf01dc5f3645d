package ui

import (
	"net/http"
	"regexp"
	"strings"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// QuarterPage serves the fiscal-quarter lookup form.
func (h *Handler) QuarterPage(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Get(w, r)
	renderHTML(w, http.StatusOK, h.quarterPage("", "", ""))
}

// QuarterLookup posts the date to the quarter service and shows the label, or
// the failure as-is. One attempt only; the user can resubmit.
func (h *Handler) QuarterLookup(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRenderBadRequest(w, r) {
		return
	}

	date := strings.TrimSpace(r.Form.Get("date"))
	if !datePattern.MatchString(date) {
		renderHTML(w, http.StatusOK, h.quarterPage(date, "", "Enter a date as YYYY-MM-DD."))
		return
	}

	label, err := h.Quarter.Lookup(r.Context(), date)
	if err != nil {
		renderHTML(w, http.StatusOK, h.quarterPage(date, "", err.Error()))
		return
	}
	renderHTML(w, http.StatusOK, h.quarterPage(date, label, ""))
}

func (h *Handler) quarterPage(date, label, lookupError string) gomponents.Node {
	body := []gomponents.Node{
		html.Div(
			html.Class("card"),
			html.P(html.Class("muted"), gomponents.Text("Resolve a calendar date to its fiscal year-quarter.")),
			html.Form(
				html.Method("post"),
				html.Action("/quarter"),
				html.Label(gomponents.Text("Date")),
				html.Input(html.Type("date"), html.Name("date"), html.Value(date), html.Required()),
				html.Div(html.Class("button-row"), html.Button(html.Type("submit"), html.Class("primary"), gomponents.Text("Look up"))),
			),
		),
	}
	if lookupError != "" {
		body = append(body, errorCard("Lookup Failed", lookupError))
	}
	if label != "" {
		body = append(body, html.Div(
			html.Class("card"),
			html.H2(gomponents.Text("Result")),
			html.P(gomponents.Text(date+" falls in "+label)),
		))
	}
	return h.appPage("Quarter Lookup", "quarter", body...)
}
