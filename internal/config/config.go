package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultJWTSecret is the fallback signing key used when JWT_SECRET is
// unset. It exists so the service runs out of the box; production
// deployments must override it.
const DefaultJWTSecret = "your-secret-key-change-in-production"

// Config contains server configuration parameters.
type Config struct {
	Port       string  `env:"PORT" envDefault:"3000"`
	LogLevel   int     `env:"LOG_LEVEL" envDefault:"0"`
	CORSOrigin string  `env:"CORS_ORIGIN" envDefault:"*"`
	BcryptCost int     `env:"BCRYPT_COST" envDefault:"10"`
	Storage    Storage `envPrefix:"STORAGE_"`
	JWT        JWT     `envPrefix:"JWT_"`
}

// Storage selects and parameterizes the collection backend.
type Storage struct {
	// Backend is "json" (flat files under DataDir) or "sqlite".
	Backend    string `env:"BACKEND" envDefault:"json"`
	DataDir    string `env:"DATA_DIR" envDefault:"data"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"notekeep.db"`
}

// JWT contains token signing parameters.
type JWT struct {
	Secret string        `env:"SECRET" envDefault:"your-secret-key-change-in-production"`
	TTL    time.Duration `env:"TTL" envDefault:"24h"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Storage.Backend != "json" && cfg.Storage.Backend != "sqlite" {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", cfg.BcryptCost)
	}

	return &cfg, nil
}
