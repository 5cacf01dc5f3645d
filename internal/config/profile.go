package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RiyaMate/Master-financial/internal/domain"
)

// Profile is an optional YAML connection profile, an alternative to setting
// every SNOWFLAKE_* variable individually. Environment variables win over
// profile values.
type Profile struct {
	Driver     string `yaml:"driver,omitempty"`
	User       string `yaml:"user,omitempty"`
	Password   string `yaml:"password,omitempty"`
	Account    string `yaml:"account,omitempty"`
	Warehouse  string `yaml:"warehouse,omitempty"`
	Database   string `yaml:"database,omitempty"`
	Schema     string `yaml:"schema,omitempty"`
	Role       string `yaml:"role,omitempty"`
	DuckDBPath string `yaml:"duckdb-path,omitempty"`
}

// applyProfile reads the profile file at path and fills any connection field
// the environment left empty.
func applyProfile(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is operator-controlled
	if err != nil {
		return domain.ErrConfig("read profile %s: %v", path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return domain.ErrConfig("parse profile %s: %v", path, err)
	}

	setIfEmpty(&cfg.Driver, p.Driver)
	setIfEmpty(&cfg.User, p.User)
	setIfEmpty(&cfg.Password, p.Password)
	setIfEmpty(&cfg.Account, p.Account)
	setIfEmpty(&cfg.Warehouse, p.Warehouse)
	setIfEmpty(&cfg.Database, p.Database)
	setIfEmpty(&cfg.Schema, p.Schema)
	setIfEmpty(&cfg.Role, p.Role)
	setIfEmpty(&cfg.DuckDBPath, p.DuckDBPath)
	return nil
}

func setIfEmpty(dst *string, value string) {
	if *dst == "" && value != "" {
		*dst = value
	}
}
