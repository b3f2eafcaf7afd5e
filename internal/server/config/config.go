// Package config handles configuration for the API server: defaults, an
// optional JSON file, environment variables and command-line flags, applied
// in that order.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/blogapi/internal/common"
)

// Config holds runtime settings for the API server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the HTTP endpoint.
//   - DatabaseDSN: store connection string; the scheme picks the backend
//     (postgres://, postgresql://, mongodb://, memory://).
//   - DatabaseName: database name used by the MongoDB backend.
//   - SecretKey: HMAC secret for signing JWTs (HS256).
//   - AccessTokenValidityDuration: lifetime of issued tokens.
//   - AllowedOrigins: origins allowed to make credentialed cross-origin calls.
//   - ShutdownTimeout: how long in-flight requests may drain on shutdown.
type Config struct {
	EndpointAddrHTTP            string
	DatabaseDSN                 string
	DatabaseName                string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	AllowedOrigins              []string
	ShutdownTimeout             time.Duration
}

// LoadDefaults populates Config with development defaults. DatabaseDSN and
// SecretKey are left empty on purpose: they must be supplied explicitly.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5000"
	c.DatabaseName = "authentication"
	c.AccessTokenValidityDuration = time.Hour
	c.AllowedOrigins = []string{"https://my-port-folio-nine-inky.vercel.app", "http://localhost:3000"}
	c.ShutdownTimeout = 5 * time.Second
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

var supportedSchemes = []string{"postgres://", "postgresql://", "mongodb://", "memory://"}

// Validate reports missing or malformed required settings. The returned error
// wraps common.ErrStartupConfig.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return fmt.Errorf("%w: database DSN is required", common.ErrStartupConfig)
	}
	if !hasSupportedScheme(c.DatabaseDSN) {
		return fmt.Errorf("%w: unsupported database DSN scheme, want one of %s",
			common.ErrStartupConfig, strings.Join(supportedSchemes, ", "))
	}
	if c.SecretKey == "" {
		return fmt.Errorf("%w: secret key is required", common.ErrStartupConfig)
	}
	if c.AccessTokenValidityDuration <= 0 {
		return fmt.Errorf("%w: access token validity must be positive", common.ErrStartupConfig)
	}
	if c.EndpointAddrHTTP == "" {
		return fmt.Errorf("%w: listen address is required", common.ErrStartupConfig)
	}
	return nil
}

func hasSupportedScheme(dsn string) bool {
	for _, s := range supportedSchemes {
		if strings.HasPrefix(dsn, s) {
			return true
		}
	}
	return false
}
