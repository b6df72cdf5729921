package config

import (
	"strconv"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors the environment. Numeric values are read as strings so a
// malformed value falls back instead of aborting startup.
type envConfig struct {
	EndpointAddrGRPC string `env:"GRPC_ADDRESS"`
	DatabaseDSN      string `env:"DATABASE_DSN"`
	SecretKey        string `env:"JWT_SECRET_KEY"`
	Issuer           string `env:"JWT_ISSUER"`
	Audience         string `env:"JWT_AUDIENCE"`
	ExpiryMinutes    string `env:"JWT_EXPIRY_MINUTES"`
	BcryptCost       string `env:"BCRYPT_COST"`
	LogLevel         string `env:"LOG_LEVEL"`
}

// parseEnv overlays non-empty environment variables onto config.
func parseEnv(config *Config) {
	e, err := env.ParseAs[envConfig]()
	if err != nil {
		panic(err)
	}

	setNonEmpty(&config.EndpointAddrGRPC, e.EndpointAddrGRPC)
	setNonEmpty(&config.DatabaseDSN, e.DatabaseDSN)
	setNonEmpty(&config.SecretKey, e.SecretKey)
	setNonEmpty(&config.Issuer, e.Issuer)
	setNonEmpty(&config.Audience, e.Audience)
	setNonEmpty(&config.LogLevel, e.LogLevel)

	if e.ExpiryMinutes != "" {
		config.ExpiryMinutes = ParseExpiryMinutes(e.ExpiryMinutes)
	}
	if e.BcryptCost != "" {
		if n, err := strconv.Atoi(e.BcryptCost); err == nil {
			config.BcryptCost = n
		}
	}
}

func setNonEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
