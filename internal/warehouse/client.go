// Package warehouse encapsulates the analytical warehouse connection: driver
// selection, credential wiring, and identifier hygiene.
package warehouse

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver
	"github.com/snowflakedb/gosnowflake"

	"github.com/RiyaMate/Master-financial/internal/config"
	"github.com/RiyaMate/Master-financial/internal/domain"
)

// loginTimeout bounds the initial Snowflake handshake, mirroring the
// connector's own network timeout. No other timeout applies to queries.
const loginTimeout = 60 * time.Second

// Client wraps a database/sql pool for the configured warehouse. Each logical
// operation still executes exactly one statement on a connection checked out
// for that call, so a failed query never poisons a connection reused by a
// later, unrelated one.
type Client struct {
	db     *sql.DB
	cfg    *config.Config
	logger *slog.Logger
}

// Open creates a Client for the configured driver. It does not dial the
// warehouse; call Ping to verify connectivity.
func Open(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	var (
		db  *sql.DB
		err error
	)
	switch cfg.Driver {
	case config.DriverSnowflake:
		dsn, dsnErr := gosnowflake.DSN(&gosnowflake.Config{
			Account:      cfg.Account,
			User:         cfg.User,
			Password:     cfg.Password,
			Database:     cfg.Database,
			Schema:       cfg.Schema,
			Warehouse:    cfg.Warehouse,
			Role:         cfg.Role,
			LoginTimeout: loginTimeout,
		})
		if dsnErr != nil {
			return nil, domain.ErrConnection("build snowflake DSN: %v", dsnErr)
		}
		db, err = sql.Open("snowflake", dsn)
	case config.DriverDuckDB:
		db, err = sql.Open("duckdb", cfg.DuckDBPath)
	default:
		return nil, domain.ErrConfig("unknown warehouse driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, domain.ErrConnection("open %s: %v", cfg.Driver, err)
	}

	// Small pool: one interactive analyst session, one statement per call.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &Client{db: db, cfg: cfg, logger: logger}, nil
}

// NewWithDB wraps an existing database handle. Used by tests and by callers
// that manage the pool themselves.
func NewWithDB(db *sql.DB, cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{db: db, cfg: cfg, logger: logger}
}

// Ping verifies the warehouse is reachable and credentials are accepted.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return domain.ErrConnection("warehouse connection failed: %v", err)
	}
	return nil
}

// DB exposes the underlying pool for single-statement execution.
func (c *Client) DB() *sql.DB { return c.db }

// Database returns the configured database name ("" for local DuckDB).
func (c *Client) Database() string { return c.cfg.Database }

// Dialect returns the configured driver name.
func (c *Client) Dialect() string { return c.cfg.Driver }

// FixedSchema returns the configuration-pinned schema, or "" when the user
// selects schemas at runtime.
func (c *Client) FixedSchema() string { return c.cfg.Schema }

// Close releases the pool.
func (c *Client) Close() error { return c.db.Close() }
