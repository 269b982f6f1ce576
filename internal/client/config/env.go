package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is a DTO for environment parsing. Unset variables leave the
// corresponding Config field untouched.
type envConfig struct {
	ServerBaseURL  string        `env:"AUTHGATE_SERVER_BASE_URL"`
	DatabaseDSN    string        `env:"AUTHGATE_DATABASE_DSN"`
	RequestTimeout time.Duration `env:"AUTHGATE_REQUEST_TIMEOUT"`
}

// parseEnv overlays Config with values from the environment. Parse errors
// panic, same as the JSON stage.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.DatabaseDSN != "" {
		cfg.DatabaseDSN = ec.DatabaseDSN
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
}
