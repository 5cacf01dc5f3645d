// Package app provides application-level wiring: it turns the external
// dependencies main() owns into the fully-constructed services the router
// mounts.
package app

import (
	"log/slog"

	"github.com/RiyaMate/Master-financial/internal/catalog"
	"github.com/RiyaMate/Master-financial/internal/config"
	"github.com/RiyaMate/Master-financial/internal/explore"
	"github.com/RiyaMate/Master-financial/internal/lookup"
	"github.com/RiyaMate/Master-financial/internal/query"
	"github.com/RiyaMate/Master-financial/internal/ui"
	"github.com/RiyaMate/Master-financial/internal/warehouse"
)

// Deps holds the external dependencies that main() must provide: the open
// warehouse connection, config, and the logger.
type Deps struct {
	Cfg    *config.Config
	Client *warehouse.Client
	Logger *slog.Logger
}

// App holds the fully-wired application.
type App struct {
	Catalog  *catalog.Browser
	Explorer *explore.Service
	Quarter  *lookup.QuarterClient // nil when the lookup feature is disabled
	UI       *ui.Handler
}

// New wires the services from the provided deps.
func New(deps Deps) *App {
	cfg := deps.Cfg
	logger := deps.Logger

	executor := query.NewExecutor(deps.Client, logger.With("component", "query"))
	guard := query.Guard{Strict: cfg.StrictGuard}

	browser := catalog.NewBrowser(deps.Client, logger.With("component", "catalog"))
	explorer := explore.NewService(executor, guard, cfg.SampleLimit, logger.With("component", "explore"))

	var quarter *lookup.QuarterClient
	if cfg.QuarterLookupEnabled() {
		quarter = lookup.NewQuarterClient(cfg.QuarterLookupURL, logger.With("component", "lookup"))
	}

	sessions := ui.NewSessionStore(cfg.DefaultPageSize)
	handler := ui.NewHandler(browser, explorer, quarter, sessions, cfg.Schema, cfg.Database)

	return &App{
		Catalog:  browser,
		Explorer: explorer,
		Quarter:  quarter,
		UI:       handler,
	}
}
