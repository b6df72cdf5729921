package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/dmitrijs2005/userauth/internal/flagx"
)

// expiryValue accepts the token lifetime either as a JSON number or as a
// string such as "30".
type expiryValue struct {
	Minutes int
}

func (e *expiryValue) UnmarshalJSON(b []byte) error {
	e.Minutes = ParseExpiryMinutes(strings.Trim(string(b), `"`))
	return nil
}

// JsonConfig is the on-disk shape of the config file. Pointer fields tell
// an absent key from an empty one, so only keys present in the file override
// earlier layers.
type JsonConfig struct {
	EndpointAddrGRPC *string      `json:"endpoint_addr_grpc"`
	DatabaseDSN      *string      `json:"database_dsn"`
	SecretKey        *string      `json:"secret_key"`
	Issuer           *string      `json:"issuer"`
	Audience         *string      `json:"audience"`
	ExpiryMinutes    *expiryValue `json:"expiry_minutes"`
	BcryptCost       *int         `json:"bcrypt_cost"`
	LogLevel         *string      `json:"log_level"`
}

// parseJson loads the file named by -c / -config, if any, into config.
// An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
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

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.Issuer, c.Issuer)
	setString(&config.Audience, c.Audience)
	setString(&config.LogLevel, c.LogLevel)
	if c.ExpiryMinutes != nil {
		config.ExpiryMinutes = c.ExpiryMinutes.Minutes
	}
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
