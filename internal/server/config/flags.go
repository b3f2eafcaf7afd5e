package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/blogapi/internal/flagx"
	"github.com/dmitrijs2005/blogapi/internal/timex"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   store DSN
//	-n string   MongoDB database name
//	-s string   JWT HMAC secret key
//	-t string   access token validity ("1h", "3600", "7d")
//	-o string   comma separated allowed CORS origins
//
// Only the flags above are picked out of os.Args via flagx.FilterArgs.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-n", "-s", "-t", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DatabaseName, "n", config.DatabaseName, "database name (mongodb)")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	fs.Func("t", "access token validity (e.g. 1h, 3600, 7d)", func(v string) error {
		d, err := timex.ParseDuration(v)
		if err != nil {
			return err
		}
		config.AccessTokenValidityDuration = d
		return nil
	})

	fs.Func("o", "comma separated allowed CORS origins", func(v string) error {
		config.AllowedOrigins = flagx.SplitList(v)
		return nil
	})

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
