package config

import "github.com/caarlos0/env/v11"

type envConfig struct {
	ServerEndpointAddr string `env:"USERAUTH_SERVER"`
	SessionFile        string `env:"USERAUTH_SESSION_FILE"`
	AccessToken        string `env:"USERAUTH_TOKEN"`
}

// parseEnv overlays non-empty USERAUTH_* variables onto cfg.
func parseEnv(cfg *Config) {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		panic(err)
	}

	if e.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = e.ServerEndpointAddr
	}
	if e.SessionFile != "" {
		cfg.SessionFile = e.SessionFile
	}
	if e.AccessToken != "" {
		cfg.AccessToken = e.AccessToken
	}
}
