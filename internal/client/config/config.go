package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the userauth CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - RequestTimeout: deadline applied to every call.
//   - SessionFile: where the access token from the last login is kept.
//   - AccessToken: explicit token; overrides the session file when set.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	SessionFile        string
	AccessToken        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.SessionFile = defaultSessionFile()
	c.AccessToken = ""
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".userauth_session"
	}
	return filepath.Join(home, ".userauth_session")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
