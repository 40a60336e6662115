package config

import (
	"os"
	"strconv"

	"lakedash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Warehouse WarehouseConfig
	Server    ServerConfig
	Data      DataConfig
	Profiling ProfilingConfig
}

// WarehouseConfig holds SQL warehouse connection settings.
// Databricks connections are addressed by hostname + HTTP path + token;
// the postgres driver takes a plain URL and exists for local development.
type WarehouseConfig struct {
	Driver      string // "databricks" or "postgres"
	Hostname    string
	HTTPPath    string
	Token       string
	PostgresDSN string

	// Default three-level table address for the dashboard query
	Catalog string
	Schema  string
	Table   string

	MaxRows int
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds sample data settings
type DataConfig struct {
	Seed          int64
	SampleDays    int
	DefaultSource string // "sample" or "warehouse"
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Warehouse: loadWarehouseConfig(),
		Server:    loadServerConfig(),
		Data:      loadDataConfig(),
		Profiling: loadProfilingConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// WarehouseConfigured reports whether enough settings are present to open a
// warehouse connection. When false the app serves sample data only.
func (c *Config) WarehouseConfigured() bool {
	switch c.Warehouse.Driver {
	case "postgres":
		return c.Warehouse.PostgresDSN != ""
	default:
		return c.Warehouse.Hostname != "" && c.Warehouse.HTTPPath != "" && c.Warehouse.Token != ""
	}
}

func loadWarehouseConfig() WarehouseConfig {
	return WarehouseConfig{
		Driver:      getEnvOrDefault("WAREHOUSE_DRIVER", "databricks"),
		Hostname:    getEnvOrDefault("DATABRICKS_SERVER_HOSTNAME", ""),
		HTTPPath:    getEnvOrDefault("DATABRICKS_HTTP_PATH", ""),
		Token:       getEnvOrDefault("DATABRICKS_TOKEN", ""),
		PostgresDSN: getEnvOrDefault("WAREHOUSE_POSTGRES_DSN", ""),
		Catalog:     getEnvOrDefault("WAREHOUSE_CATALOG", "main"),
		Schema:      getEnvOrDefault("WAREHOUSE_SCHEMA", "sales"),
		Table:       getEnvOrDefault("WAREHOUSE_TABLE", "transactions"),
		MaxRows:     getEnvIntOrDefault("WAREHOUSE_MAX_ROWS", 10000),
	}
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadDataConfig() DataConfig {
	return DataConfig{
		Seed:          int64(getEnvIntOrDefault("SAMPLE_SEED", 42)),
		SampleDays:    getEnvIntOrDefault("SAMPLE_DAYS", 30),
		DefaultSource: getEnvOrDefault("DEFAULT_SOURCE", "sample"),
	}
}

func loadProfilingConfig() ProfilingConfig {
	return ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	switch config.Warehouse.Driver {
	case "databricks", "postgres":
	default:
		return errors.ConfigInvalid("WAREHOUSE_DRIVER must be databricks or postgres")
	}
	switch config.Data.DefaultSource {
	case "sample", "warehouse":
	default:
		return errors.ConfigInvalid("DEFAULT_SOURCE must be sample or warehouse")
	}
	if config.Data.DefaultSource == "warehouse" && !config.WarehouseConfigured() {
		return errors.ConfigInvalid("DEFAULT_SOURCE=warehouse requires warehouse credentials")
	}
	if config.Warehouse.MaxRows <= 0 {
		return errors.ConfigInvalid("WAREHOUSE_MAX_ROWS must be positive")
	}
	if config.Data.SampleDays <= 0 {
		return errors.ConfigInvalid("SAMPLE_DAYS must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
