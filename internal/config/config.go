// Package config loads environment variables into structured, validated
// configuration.
//
// Variables use the NHLCOMPANION_ prefix; a double underscore separates
// nesting levels (NHLCOMPANION_DATABASE__HOST -> database.host). A .env
// file, when present, is loaded automatically before anything is read.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads .env into the process environment
	// before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "NHLCOMPANION_"

// Config is the root configuration object.
//
// Observability is a pointer because the whole block is optional;
// defaults are injected when it is absent.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Auth          AuthConfig           `koanf:"auth"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// DatabaseConfig contains PostgreSQL connection parameters, pool tuning
// and the per-call query timeout.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
	// QueryTimeout bounds each repository call, in seconds. Zero means
	// no explicit timeout beyond the driver's defaults.
	QueryTimeout int `koanf:"query_timeout"`
}

// AuthConfig stores the shared API credential.
//
// BearerToken is deliberately not tagged required: an unset token is a
// service misconfiguration that must surface as a 500 on data routes,
// not prevent the process from booting its health endpoint.
type AuthConfig struct {
	BearerToken string `koanf:"bearer_token"`
}

// Load reads, unmarshals and validates the application configuration.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}

	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are not configurable; telemetry must
	// see consistent values regardless of what the env says.
	cfg.Observability.ServiceName = "nhl-companion-api"
	cfg.Observability.Environment = cfg.Primary.Env

	if err := cfg.Observability.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
