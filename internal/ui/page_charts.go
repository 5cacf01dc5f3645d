package ui

import (
	"fmt"
	"strconv"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"github.com/RiyaMate/Master-financial/internal/chart"
)

func (h *Handler) chartsPage(state chartContext) gomponents.Node {
	if !state.Session.HasTable() {
		return h.appPage("Charts", "charts",
			html.Div(
				html.Class("card"),
				html.P(gomponents.Text("Pick a table on the Explore page first, then come back to chart it.")),
				html.P(html.A(html.Href("/"), gomponents.Text("Go to Explore"))),
			),
		)
	}

	body := []gomponents.Node{h.chartFormCard(state)}
	if state.RunError != "" {
		body = append(body, errorCard("Chart Error", state.RunError))
	}
	if state.Points != nil {
		body = append(body, chartCard(state.Config, state.Points))
	}
	return h.appPage("Charts", "charts", body...)
}

func (h *Handler) chartFormCard(state chartContext) gomponents.Node {
	groupOptions := make([]gomponents.Node, 0, len(state.Columns))
	valueOptions := make([]gomponents.Node, 0, len(state.Columns))
	for _, c := range state.Columns {
		groupOptions = append(groupOptions, optionSelectedValue(c, state.Config.GroupColumn, c))
		valueOptions = append(valueOptions, optionSelectedValue(c, state.Config.ValueColumn, c))
	}

	kindOptions := []gomponents.Node{
		optionSelectedValue(string(chart.KindBar), string(state.Config.Kind), "Bar"),
		optionSelectedValue(string(chart.KindLine), string(state.Config.Kind), "Line"),
		optionSelectedValue(string(chart.KindPie), string(state.Config.Kind), "Pie"),
	}
	aggOptions := []gomponents.Node{
		optionSelectedValue(string(chart.AggCount), string(state.Config.Aggregate), "Count"),
		optionSelectedValue(string(chart.AggSum), string(state.Config.Aggregate), "Sum"),
		optionSelectedValue(string(chart.AggAvg), string(state.Config.Aggregate), "Average"),
	}

	return html.Div(
		html.Class("card"),
		html.H2(gomponents.Text("Chart "+state.Session.Table.String())),
		html.P(html.Class("muted"), gomponents.Text("Charts aggregate the currently filtered page of rows.")),
		html.Form(
			html.Method("post"),
			html.Action("/charts"),
			html.Label(gomponents.Text("Chart type")),
			html.Select(html.Name("kind"), gomponents.Group(kindOptions)),
			html.Label(gomponents.Text("Group by")),
			html.Select(html.Name("group"), gomponents.Group(groupOptions)),
			html.Label(gomponents.Text("Aggregate")),
			html.Select(html.Name("agg"), gomponents.Group(aggOptions)),
			html.Label(gomponents.Text("Value column (ignored for count)")),
			html.Select(html.Name("value"), gomponents.Group(valueOptions)),
			html.Div(html.Class("button-row"), html.Button(html.Type("submit"), html.Class("primary"), gomponents.Text("Build chart"))),
		),
	)
}

// chartCard renders the points. Bar charts get proportional CSS bars; line
// and pie fall back to the points table, which carries the same information.
func chartCard(cfg chart.Config, points []chart.Point) gomponents.Node {
	if len(points) == 0 {
		return html.Div(
			html.Class("card"),
			html.H2(gomponents.Text("Chart")),
			html.P(html.Class("muted"), gomponents.Text("Nothing to plot for the current filters.")),
		)
	}

	nodes := []gomponents.Node{html.H2(gomponents.Text(chartTitle(cfg)))}
	if cfg.Kind == chart.KindBar {
		nodes = append(nodes, barChart(points))
	}
	nodes = append(nodes, pointsTable(points))

	return html.Div(html.Class("card"), gomponents.Group(nodes))
}

func chartTitle(cfg chart.Config) string {
	if cfg.Aggregate == chart.AggCount {
		return fmt.Sprintf("count by %s", cfg.GroupColumn)
	}
	return fmt.Sprintf("%s of %s by %s", cfg.Aggregate, cfg.ValueColumn, cfg.GroupColumn)
}

func barChart(points []chart.Point) gomponents.Node {
	maxVal := points[0].Value
	for _, p := range points[1:] {
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}

	bars := make([]gomponents.Node, 0, len(points))
	for _, p := range points {
		width := 0
		if maxVal > 0 {
			width = int(p.Value / maxVal * 100)
		}
		if width < 1 {
			width = 1
		}
		bars = append(bars,
			html.Div(
				html.Class("bar-row"),
				html.Span(html.Class("bar-label"), gomponents.Text(p.Label)),
				html.Div(
					html.Class("bar"),
					gomponents.Attr("style", "width: "+strconv.Itoa(width)+"%"),
				),
				html.Span(html.Class("bar-value"), gomponents.Text(formatPoint(p.Value))),
			),
		)
	}
	return html.Div(html.Class("bar-chart"), gomponents.Group(bars))
}

func pointsTable(points []chart.Point) gomponents.Node {
	rows := make([]gomponents.Node, 0, len(points))
	for _, p := range points {
		rows = append(rows, html.Tr(
			html.Td(gomponents.Text(p.Label)),
			html.Td(gomponents.Text(formatPoint(p.Value))),
		))
	}
	return html.Table(
		html.THead(html.Tr(html.Th(gomponents.Text("Group")), html.Th(gomponents.Text("Value")))),
		html.TBody(gomponents.Group(rows)),
	)
}

func formatPoint(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
