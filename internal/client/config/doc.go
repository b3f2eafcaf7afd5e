// Package config loads runtime configuration for the blog API CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the blog API
//	-i int      request timeout (seconds)
//
// # JSON schema
//
// Durations may be strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:5000",
//	  "request_timeout": "10s"
//	}
package config
