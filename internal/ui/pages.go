package ui

import (
	"fmt"

	gomponents "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	html "maragu.dev/gomponents/html"
)

type navItem struct {
	Label string
	Href  string
	Key   string
}

func (h *Handler) navItems() []navItem {
	items := []navItem{
		{Label: "Explore", Href: "/", Key: "explore"},
		{Label: "SQL Console", Href: "/sql", Key: "sql"},
		{Label: "Charts", Href: "/charts", Key: "charts"},
	}
	if h.quarterEnabled() {
		items = append(items, navItem{Label: "Quarter Lookup", Href: "/quarter", Key: "quarter"})
	}
	return items
}

func (h *Handler) appPage(title, active string, body ...gomponents.Node) gomponents.Node {
	items := h.navItems()
	nav := make([]gomponents.Node, 0, len(items))
	for _, item := range items {
		className := ""
		if item.Key == active {
			className = "active"
		}
		nav = append(nav, html.A(html.Href(item.Href), html.Class(className), gomponents.Text(item.Label)))
	}

	subtitle := "Browse, filter and chart warehouse tables"
	if h.Database != "" {
		subtitle = "Connected to " + h.Database
	}

	return html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text(title+" | Warehouse Explorer")),
			html.Link(html.Rel("stylesheet"), html.Href("/static/app.css")),
			html.Script(
				html.Type("module"),
				html.Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"),
			),
		),
		html.Body(
			html.Main(
				html.Class("layout"),
				html.Div(
					html.Class("topbar"),
					html.Div(
						html.Strong(gomponents.Text("Warehouse Explorer")),
						html.P(html.Class("muted"), gomponents.Text(subtitle)),
					),
				),
				html.Nav(html.Class("nav"), gomponents.Group(nav)),
				html.H1(html.Class("page-title"), gomponents.Text(title)),
				gomponents.Group(body),
			),
		),
	)
}

func errorPage(title, message string) gomponents.Node {
	return html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text(title+" | Warehouse Explorer")),
			html.Link(html.Rel("stylesheet"), html.Href("/static/app.css")),
		),
		html.Body(
			html.Main(
				html.Class("layout"),
				html.H1(html.Class("page-title"), gomponents.Text(title)),
				html.P(gomponents.Text(message)),
				html.P(html.A(html.Href("/"), gomponents.Text("Back to explorer"))),
			),
		),
	)
}

func errorCard(title, message string) gomponents.Node {
	return html.Div(
		html.Class("card error"),
		html.H2(gomponents.Text(title)),
		html.Pre(gomponents.Text(message)),
	)
}

func optionSelectedValue(value, selected, label string) gomponents.Node {
	if value == selected {
		return html.Option(html.Value(value), html.Selected(), gomponents.Text(label))
	}
	return html.Option(html.Value(value), gomponents.Text(label))
}

// quickFilter renders the client-side row filter. The signal drives per-row
// visibility expressions; no round trip involved.
func quickFilter(placeholder string) gomponents.Node {
	return html.Div(
		html.Class("card"),
		data.Signals(map[string]any{"q": ""}),
		html.Label(gomponents.Text("Quick filter")),
		html.Input(html.Type("text"), html.Placeholder(placeholder), data.Bind("q")),
	)
}

func cellString(value interface{}) string {
	if value == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", value)
}
