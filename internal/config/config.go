// Package config handles application configuration and environment loading.
package config

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/RiyaMate/Master-financial/internal/domain"
)

// Driver names accepted by WAREHOUSE_DRIVER.
const (
	DriverSnowflake = "snowflake"
	DriverDuckDB    = "duckdb"
)

// Config holds the configuration for the HTTP server and the warehouse
// connection. Connection parameters are supplied out-of-band (environment or
// profile file) and validated before any component runs.
type Config struct {
	// Warehouse connection.
	Driver    string // "snowflake" (default) or "duckdb" for local development
	User      string
	Password  string
	Account   string
	Warehouse string
	Database  string
	Schema    string // when set, schema selection is fixed by configuration
	Role      string

	DuckDBPath string // duckdb driver only; empty means in-memory

	// Server.
	ListenAddr string // HTTP listen address (default ":8080")
	LogLevel   string // debug, info, warn, error (default "info")
	Env        string // "development" (default) or "production"

	// Exploration.
	SampleLimit     int // cap on the unfiltered preview fetch (default 5000)
	DefaultPageSize int // rows per page when the user has not chosen (default 5000)

	// Ad-hoc query guard.
	StrictGuard bool // also reject multi-statement text

	// Optional quarter lookup microservice; feature disabled when empty.
	QuarterLookupURL string

	// Rate limiting.
	RateLimitRPS   float64 // sustained requests per second (default 10)
	RateLimitBurst int     // burst capacity (default 20)

	// CORS.
	CORSAllowedOrigins []string // default ["*"]

	// Warnings collects non-fatal warnings generated during loading.
	// Logged by the caller after the logger is initialised.
	Warnings []string
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction returns true when the server is running in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// SchemaFixed reports whether the schema is pinned by configuration, which
// hides the schema selector and switches table listing to the SHOW TABLES
// style introspection command.
func (c *Config) SchemaFixed() bool { return c.Schema != "" }

// QuarterLookupEnabled reports whether the quarter lookup collaborator is
// configured.
func (c *Config) QuarterLookupEnabled() bool { return c.QuarterLookupURL != "" }

// Validate checks that all connection parameters required by the selected
// driver are present. Missing fields halt startup with a ConfigError rather
// than a crash deeper in the stack.
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverSnowflake:
		missing := make([]string, 0, 4)
		if c.User == "" {
			missing = append(missing, "SNOWFLAKE_USER")
		}
		if c.Password == "" {
			missing = append(missing, "SNOWFLAKE_PASSWORD")
		}
		if c.Account == "" {
			missing = append(missing, "SNOWFLAKE_ACCOUNT")
		}
		if c.Database == "" {
			missing = append(missing, "SNOWFLAKE_DATABASE")
		}
		if len(missing) > 0 {
			return domain.ErrConfig("missing warehouse credentials: %s", strings.Join(missing, ", "))
		}
	case DriverDuckDB:
		// In-memory DuckDB needs nothing; a path is optional.
	default:
		return domain.ErrConfig("unknown warehouse driver %q (want %q or %q)", c.Driver, DriverSnowflake, DriverDuckDB)
	}
	if c.SampleLimit < 1 {
		return domain.ErrConfig("SAMPLE_LIMIT must be positive, got %d", c.SampleLimit)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables, applying an
// optional profile file first (WAREHOUSE_PROFILE) — environment variables
// take precedence over profile values.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Driver:           strings.ToLower(os.Getenv("WAREHOUSE_DRIVER")),
		User:             os.Getenv("SNOWFLAKE_USER"),
		Password:         os.Getenv("SNOWFLAKE_PASSWORD"),
		Account:          os.Getenv("SNOWFLAKE_ACCOUNT"),
		Warehouse:        os.Getenv("SNOWFLAKE_WAREHOUSE"),
		Database:         os.Getenv("SNOWFLAKE_DATABASE"),
		Schema:           os.Getenv("SNOWFLAKE_SCHEMA"),
		Role:             os.Getenv("SNOWFLAKE_ROLE"),
		DuckDBPath:       os.Getenv("DUCKDB_PATH"),
		ListenAddr:       os.Getenv("LISTEN_ADDR"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		Env:              os.Getenv("ENV"),
		QuarterLookupURL: strings.TrimRight(os.Getenv("QUARTER_LOOKUP_URL"), "/"),
		StrictGuard:      parseBoolEnvDefault("GUARD_STRICT", false),
	}

	if path := os.Getenv("WAREHOUSE_PROFILE"); path != "" {
		if err := applyProfile(cfg, path); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("SAMPLE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SampleLimit = n
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("ignoring invalid SAMPLE_LIMIT %q", v))
		}
	}
	if v := os.Getenv("PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DefaultPageSize = n
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("ignoring invalid PAGE_SIZE %q", v))
		}
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimitRPS = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitBurst = n
		}
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORSAllowedOrigins = origins
	}

	// Defaults.
	if cfg.Driver == "" {
		cfg.Driver = DriverSnowflake
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.SampleLimit == 0 {
		cfg.SampleLimit = 5000
	}
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = domain.DefaultPageSize
	}
	if cfg.DefaultPageSize > domain.MaxPageSize {
		cfg.DefaultPageSize = domain.MaxPageSize
	}
	if cfg.RateLimitRPS == 0 {
		cfg.RateLimitRPS = 10
	}
	if cfg.RateLimitBurst == 0 {
		cfg.RateLimitBurst = 20
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	if cfg.IsProduction() && len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		return nil, domain.ErrConfig("CORS wildcard (*) is not allowed in production (ENV=production)")
	}

	return cfg, nil
}

func parseBoolEnvDefault(key string, defaultVal bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch v {
	case "0", "false", "no", "off":
		return false
	case "1", "true", "yes", "on":
		return true
	default:
		return defaultVal
	}
}

// LoadDotEnv reads a .env file and sets any variables not already in the
// environment. Lines must be in KEY=VALUE format. Comments (#) and blank
// lines are skipped. A missing file is not an error.
func LoadDotEnv(path string) error {
	f, err := os.Open(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = stripQuotes(strings.TrimSpace(value))
		// Env vars take precedence over .env values.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("setenv %s: %w", key, err)
			}
		}
	}
	return scanner.Err()
}

// stripQuotes removes surrounding double or single quotes from a value.
// Only strips if both the first and last characters are matching quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
