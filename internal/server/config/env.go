package config

import (
	"os"

	"github.com/dmitrijs2005/blogapi/internal/flagx"
	"github.com/dmitrijs2005/blogapi/internal/timex"
)

// parseEnv overlays config with environment variables:
//
//	PORT            listen port, turned into ":PORT"
//	DATABASE_DSN    store connection string (MONGODB_URI is accepted as a fallback)
//	DATABASE_NAME   MongoDB database name
//	JWT_SECRET      token signing secret
//	EXPIRES_IN      token lifetime ("1h", "3600", "7d", "2 days")
//	CORS_ORIGINS    comma separated list of allowed origins
//
// A malformed EXPIRES_IN causes a panic, like a malformed config file.
func parseEnv(config *Config) {
	if port := os.Getenv("PORT"); port != "" {
		config.EndpointAddrHTTP = ":" + port
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		config.DatabaseDSN = dsn
	} else if dsn := os.Getenv("MONGODB_URI"); dsn != "" {
		config.DatabaseDSN = dsn
	}

	setString(&config.DatabaseName, os.Getenv("DATABASE_NAME"))
	setString(&config.SecretKey, os.Getenv("JWT_SECRET"))

	if v := os.Getenv("EXPIRES_IN"); v != "" {
		d, err := timex.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.AccessTokenValidityDuration = d
	}

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		config.AllowedOrigins = flagx.SplitList(v)
	}
}
