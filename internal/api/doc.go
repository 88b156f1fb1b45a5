// Package api defines wire-format types and converters for the HTTP API.
// It translates store models into transport DTOs so HTTP consumers and the
// CLI never couple to internal types.
package api
