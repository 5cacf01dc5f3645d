package ui

import (
	"fmt"
	"strconv"
	"strings"

	gomponents "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	html "maragu.dev/gomponents/html"

	"github.com/RiyaMate/Master-financial/internal/domain"
)

// browseMaxDisplayRows caps what one page renders; the fetched page itself
// can be larger, and the meta line says so.
const browseMaxDisplayRows = 200

func (h *Handler) browsePage(state browseContext) gomponents.Node {
	body := []gomponents.Node{h.pickerCard(state)}

	if state.Session.HasTable() {
		body = append(body, h.filterCard(state.Session))
	}
	if state.RunError != "" {
		body = append(body, errorCard("Query Error", state.RunError))
	}
	if state.Result != nil {
		body = append(body, quickFilter("Narrow visible rows..."))
		body = append(body, resultTable(state.Result, state.Session.PageNumber))
	}

	return h.appPage("Explore", "explore", body...)
}

func (h *Handler) pickerCard(state browseContext) gomponents.Node {
	schemaOptions := make([]gomponents.Node, 0, len(state.Schemas)+1)
	schemaOptions = append(schemaOptions, optionSelectedValue("", state.SelectedSchema, "(choose schema)"))
	for _, s := range state.Schemas {
		schemaOptions = append(schemaOptions, optionSelectedValue(s, state.SelectedSchema, s))
	}

	tableOptions := make([]gomponents.Node, 0, len(state.Tables)+1)
	selectedTable := ""
	if state.Session.HasTable() && state.Session.Table.Schema == state.SelectedSchema {
		selectedTable = state.Session.Table.Table
	}
	tableOptions = append(tableOptions, optionSelectedValue("", selectedTable, "(choose table)"))
	for _, t := range state.Tables {
		tableOptions = append(tableOptions, optionSelectedValue(t, selectedTable, t))
	}

	nodes := []gomponents.Node{}
	if h.FixedSchema == "" {
		nodes = append(nodes, html.Form(
			html.Method("get"),
			html.Action("/"),
			html.Label(gomponents.Text("Schema")),
			html.Select(html.Name("schema"), gomponents.Group(schemaOptions)),
			html.Div(html.Class("button-row"), html.Button(html.Type("submit"), html.Class("secondary"), gomponents.Text("Load tables"))),
		))
	} else {
		nodes = append(nodes, html.P(html.Class("muted"), gomponents.Text("Schema: "+h.FixedSchema)))
	}

	nodes = append(nodes, html.Form(
		html.Method("post"),
		html.Action("/browse/select"),
		html.Input(html.Type("hidden"), html.Name("schema"), html.Value(state.SelectedSchema)),
		html.Label(gomponents.Text("Table")),
		html.Select(html.Name("table"), gomponents.Group(tableOptions)),
		html.Div(html.Class("button-row"), html.Button(html.Type("submit"), html.Class("primary"), gomponents.Text("Explore table"))),
	))

	return html.Div(
		html.Class("card"),
		html.H2(gomponents.Text("Pick a table")),
		gomponents.Group(nodes),
	)
}

// filterCard renders one control per derived domain plus pagination. The
// whole thing is a single form so Apply, Prev and Next all carry the current
// filter values.
func (h *Handler) filterCard(sess *Session) gomponents.Node {
	controls := make([]gomponents.Node, 0, len(sess.Domains))
	for _, d := range sess.Domains {
		switch d.Kind {
		case domain.DomainCategorical:
			controls = append(controls, categoricalControl(d, sess.Filters))
		case domain.DomainNumeric:
			controls = append(controls, numericControl(d, sess.Filters))
		}
	}
	if len(controls) == 0 {
		controls = append(controls, html.P(html.Class("muted"), gomponents.Text("No filterable columns in the sample.")))
	}

	return html.Div(
		html.Class("card"),
		html.H2(gomponents.Text(sess.Table.String())),
		html.Form(
			html.Method("post"),
			html.Action("/browse/apply"),
			html.Div(html.Class("filter-grid"), gomponents.Group(controls)),
			html.Label(gomponents.Text("Rows per page")),
			html.Input(html.Type("number"), html.Name("page_size"), html.Value(strconv.Itoa(sess.PageSize)), html.Min("1"), html.Max(strconv.Itoa(domain.MaxPageSize))),
			html.Div(
				html.Class("button-row"),
				pageButton("Apply filters", sess.PageNumber, "primary"),
				pageButton("< Prev", maxInt(1, sess.PageNumber-1), "secondary"),
				pageButton("Next >", sess.PageNumber+1, "secondary"),
			),
			html.P(html.Class("muted"), gomponents.Text(fmt.Sprintf("Page %d, %d active filter(s)", sess.PageNumber, sess.Filters.ActiveCount()))),
		),
	)
}

func pageButton(label string, page int, class string) gomponents.Node {
	return html.Button(
		html.Type("submit"),
		html.Class(class),
		html.Name("page"),
		html.Value(strconv.Itoa(page)),
		gomponents.Text(label),
	)
}

func categoricalControl(d domain.FilterDomain, filters domain.Filters) gomponents.Node {
	selected := ""
	if f, ok := filters[d.Column]; ok && !f.Unset() {
		if s, ok := f.Value.(string); ok {
			selected = s
		}
	}
	options := make([]gomponents.Node, 0, len(d.Values)+1)
	options = append(options, optionSelectedValue("", selected, "(all)"))
	for _, v := range d.Values {
		options = append(options, optionSelectedValue(v, selected, v))
	}
	return html.Div(
		html.Label(gomponents.Text(d.Column)),
		html.Select(html.Name("f_"+d.Column), gomponents.Group(options)),
	)
}

func numericControl(d domain.FilterDomain, filters domain.Filters) gomponents.Node {
	min, max := float64(d.Min), float64(d.Max)
	if f, ok := filters[d.Column]; ok && f.Kind == domain.FilterRange {
		min, max = f.Min, f.Max
	}
	return html.Div(
		html.Label(gomponents.Text(fmt.Sprintf("%s (%d to %d)", d.Column, d.Min, d.Max))),
		html.Input(html.Type("number"), html.Name("min_"+d.Column), html.Value(trimFloat(min)), gomponents.Attr("step", "any")),
		html.Input(html.Type("number"), html.Name("max_"+d.Column), html.Value(trimFloat(max)), gomponents.Attr("step", "any")),
	)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func resultTable(res *domain.Result, pageNumber int) gomponents.Node {
	headerCols := make([]gomponents.Node, 0, len(res.Columns))
	for _, c := range res.Columns {
		headerCols = append(headerCols, html.Th(gomponents.Text(c)))
	}

	displayRows := res.Rows
	truncated := false
	if len(displayRows) > browseMaxDisplayRows {
		displayRows = displayRows[:browseMaxDisplayRows]
		truncated = true
	}

	rows := make([]gomponents.Node, 0, len(displayRows))
	for i := range displayRows {
		cells := make([]gomponents.Node, 0, len(displayRows[i]))
		rowText := make([]string, 0, len(displayRows[i]))
		for j := range displayRows[i] {
			s := cellString(displayRows[i][j])
			rowText = append(rowText, s)
			cells = append(cells, html.Td(gomponents.Text(s)))
		}
		rows = append(rows, html.Tr(data.Show(containsExpr(strings.Join(rowText, " "))), gomponents.Group(cells)))
	}

	meta := fmt.Sprintf("Page %d, %d row(s)", pageNumber, res.RowCount)
	if truncated {
		meta = fmt.Sprintf("Page %d, %d row(s), showing first %d", pageNumber, res.RowCount, browseMaxDisplayRows)
	}
	if res.Empty() {
		meta = "No rows match the current filters."
	}

	return html.Div(
		html.Class("card table-wrap"),
		html.H2(gomponents.Text("Rows")),
		html.P(html.Class("muted"), gomponents.Text(meta)),
		html.Table(
			html.THead(html.Tr(gomponents.Group(headerCols))),
			html.TBody(gomponents.Group(rows)),
		),
	)
}

func containsExpr(value string) string {
	lower := strings.ToLower(value)
	return "$q === '' || " + strconv.Quote(lower) + ".includes($q.toLowerCase())"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
