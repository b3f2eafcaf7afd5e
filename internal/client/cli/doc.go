// Package cli provides the interactive command-line client for the blog API.
//
// It wires configuration, the HTTP API client, client-side services and a
// small REPL. Typical flow: register or log in, post a blog, list blogs.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
