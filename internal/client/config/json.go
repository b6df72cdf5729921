package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/userauth/internal/flagx"
)

// JsonConfig is the on-disk shape of the client config file.
type JsonConfig struct {
	ServerEndpointAddr    string `json:"server_endpoint_addr"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	SessionFile           string `json:"session_file"`
}

// parseJson loads the file named by -c / -config into cfg. Only non-zero
// values override. Unreadable or invalid files panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = c.ServerEndpointAddr
	}
	if c.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(c.RequestTimeoutSeconds) * time.Second
	}
	if c.SessionFile != "" {
		cfg.SessionFile = c.SessionFile
	}
}
