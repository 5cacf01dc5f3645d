package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountRoutes wires the dashboard pages onto the router. The quarter lookup
// routes exist only when the feature is configured.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/static/app.css", stylesheetHandler)

	r.Get("/", h.Explore)
	r.Post("/browse/select", h.SelectTable)
	r.Post("/browse/apply", h.ApplyFilters)

	r.Get("/sql", h.SQLConsolePage)
	r.Post("/sql/run", h.SQLConsoleRun)
	r.Post("/sql/download.csv", h.SQLConsoleDownloadCSV)

	r.Get("/charts", h.ChartsPage)
	r.Post("/charts", h.ChartsBuild)

	if h.quarterEnabled() {
		r.Get("/quarter", h.QuarterPage)
		r.Post("/quarter", h.QuarterLookup)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		renderHTML(w, http.StatusNotFound, errorPage("Not Found", "No such page."))
	})
}
