package ui

import (
	"fmt"
	"net/url"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"github.com/RiyaMate/Master-financial/internal/domain"
)

const sqlConsoleMaxDisplayRows = 200

func (h *Handler) sqlConsolePage(sqlText string, result *domain.Result, runError string) gomponents.Node {
	resultNode := gomponents.Node(html.P(html.Class("muted"), gomponents.Text("Run a query to see results.")))

	if runError != "" {
		resultNode = errorCard("Query Error", runError)
	} else if result != nil {
		headerCols := make([]gomponents.Node, 0, len(result.Columns))
		for i := range result.Columns {
			headerCols = append(headerCols, html.Th(gomponents.Text(result.Columns[i])))
		}

		displayRows := result.Rows
		truncated := false
		if len(displayRows) > sqlConsoleMaxDisplayRows {
			displayRows = displayRows[:sqlConsoleMaxDisplayRows]
			truncated = true
		}

		rows := make([]gomponents.Node, 0, len(displayRows))
		for i := range displayRows {
			cells := make([]gomponents.Node, 0, len(displayRows[i]))
			for j := range displayRows[i] {
				cells = append(cells, html.Td(gomponents.Text(cellString(displayRows[i][j]))))
			}
			rows = append(rows, html.Tr(gomponents.Group(cells)))
		}

		meta := fmt.Sprintf("%d row(s)", result.RowCount)
		if truncated {
			meta = fmt.Sprintf("%d row(s), showing first %d", result.RowCount, sqlConsoleMaxDisplayRows)
		}
		if result.Empty() {
			meta = "Query returned no rows."
		}

		resultNode = html.Div(
			html.Class("card table-wrap"),
			html.H2(gomponents.Text("Results")),
			html.P(html.Class("muted"), gomponents.Text(meta)),
			html.Table(
				html.THead(html.Tr(gomponents.Group(headerCols))),
				html.TBody(gomponents.Group(rows)),
			),
		)
	}

	return h.appPage(
		"SQL Console",
		"sql",
		html.Div(
			html.Class("card"),
			html.P(html.Class("muted"), gomponents.Text("Read-only console. Only SELECT statements are executed.")),
			html.H2(gomponents.Text("Snippets")),
			snippetLinks(),
			html.Form(
				html.Method("post"),
				html.Action("/sql/run"),
				html.Label(gomponents.Text("SQL")),
				html.Textarea(html.Name("sql"), html.Required(), gomponents.Text(sqlText)),
				html.Div(
					html.Class("button-row"),
					html.Button(html.Type("submit"), html.Class("primary"), gomponents.Text("Run query")),
					html.Button(html.Type("submit"), html.Class("secondary"), html.FormAction("/sql/download.csv"), gomponents.Text("Download CSV")),
				),
			),
		),
		resultNode,
	)
}

func snippetLinks() gomponents.Node {
	snippets := []struct {
		ID    string
		Label string
	}{
		{ID: "sample_rows", Label: "Sample rows"},
		{ID: "row_count", Label: "Row count"},
		{ID: "show_tables", Label: "Show tables"},
	}

	links := make([]gomponents.Node, 0, len(snippets))
	for i := range snippets {
		q := url.Values{}
		q.Set("snippet", snippets[i].ID)
		links = append(links, html.A(html.Href("/sql?"+q.Encode()), gomponents.Text(snippets[i].Label)))
	}
	return html.Div(html.Class("snippet-list"), gomponents.Group(links))
}
