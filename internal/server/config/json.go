package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/blogapi/internal/flagx"
	"github.com/dmitrijs2005/blogapi/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so they can be written as "1h", "3600" or "7d".
// Fields left out of the file keep their previous values.
type JsonConfig struct {
	EndpointAddrHTTP            string          `json:"endpoint_addr_http"`
	DatabaseDSN                 string          `json:"database_dsn"`
	DatabaseName                string          `json:"database_name"`
	SecretKey                   string          `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	AllowedOrigins              []string        `json:"allowed_origins"`
	ShutdownTimeout             *timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays config with the file named by -c/-config. Without the
// flag it does nothing. Unreadable or invalid files cause a panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.DatabaseName, c.DatabaseName)
	setString(&config.SecretKey, c.SecretKey)

	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.AllowedOrigins != nil {
		config.AllowedOrigins = c.AllowedOrigins
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
