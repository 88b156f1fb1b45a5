// Package client is the HTTP client the CLI uses to talk to a running server.
package client
