// Package config handles configuration for the server component: defaults,
// a JSON file overlay, environment variables and command-line flags, applied
// in that order.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/userauth/internal/common"
	"github.com/dmitrijs2005/userauth/internal/server/auth"
	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the userauth server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty means the in-memory directory.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required.
//   - Issuer / Audience: iss and aud claims of issued tokens.
//   - ExpiryMinutes: token lifetime.
//   - BcryptCost: password hashing cost.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrGRPC string
	DatabaseDSN      string
	SecretKey        string
	Issuer           string
	Audience         string
	ExpiryMinutes    int
	BcryptCost       int
	LogLevel         string
}

// LoadDefaults populates Config with development defaults. There is no
// default signing secret.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = ""
	c.Issuer = "userauth"
	c.Audience = "userauth-clients"
	c.ExpiryMinutes = auth.DefaultExpiryMinutes
	c.BcryptCost = bcrypt.DefaultCost
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SecretKey) == "" {
		return fmt.Errorf("%w: JWT secret key is required", common.ErrConfiguration)
	}
	return nil
}

// TokenConfig extracts the token issuer settings.
func (c *Config) TokenConfig() auth.TokenConfig {
	return auth.TokenConfig{
		SecretKey:     c.SecretKey,
		Issuer:        c.Issuer,
		Audience:      c.Audience,
		ExpiryMinutes: c.ExpiryMinutes,
	}
}

// ParseExpiryMinutes reads a token lifetime in minutes. Anything that is not
// a positive integer yields auth.DefaultExpiryMinutes.
func ParseExpiryMinutes(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return auth.DefaultExpiryMinutes
	}
	return n
}
